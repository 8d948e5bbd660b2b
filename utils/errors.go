package utils

import (
	"errors"
	"fmt"

	"github.com/go-stack/stack"
	"github.com/rs/zerolog"
)

// CustomError is an error that already knows its HTTP status.
type CustomError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

func (e *CustomError) Error() string {
	return e.Message
}

// NewCustomError builds a CustomError.
func NewCustomError(statusCode int, message string) *CustomError {
	return &CustomError{StatusCode: statusCode, Message: message}
}

// ErrorKind classifies service failures independently of the transport.
type ErrorKind int

const (
	KindServerError ErrorKind = iota
	KindValidationFailed
	KindAlreadyExists
	KindUnauthorized
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidationFailed:
		return "validation_failed"
	case KindAlreadyExists:
		return "already_exists"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	default:
		return "server_error"
	}
}

// AppError is returned by the service layer. It carries the call stack of
// the place it was created so the fallback handler can report it.
type AppError struct {
	Kind    ErrorKind
	Message string
	Wrapped error
	Stack   CallStack
}

func (e *AppError) Error() string {
	if e.Wrapped == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Wrapped)
}

func (e *AppError) Unwrap() error {
	return e.Wrapped
}

// NewAppError creates an AppError of the given kind, wrapping an optional cause.
func NewAppError(kind ErrorKind, wrapped error, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Message: message,
		Wrapped: wrapped,
		Stack:   Trace(),
	}
}

// KindOf reports the kind of the first AppError in err's chain. Errors that
// are not AppErrors are server errors.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindServerError
}

// MessageOf returns the user-facing message of the first AppError in err's
// chain, falling back to err.Error().
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

type CallStack []StackFrame

type StackFrame struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Function string `json:"function"`
}

func (s CallStack) MarshalZerologArray(a *zerolog.Array) {
	for _, frame := range s {
		a.Object(frame)
	}
}

func (f StackFrame) MarshalZerologObject(e *zerolog.Event) {
	e.
		Str("file", f.File).
		Int("line", f.Line).
		Str("function", f.Function)
}

// Trace captures the caller's stack, without runtime frames and without
// Trace itself.
func Trace() CallStack {
	trace := stack.Trace().TrimRuntime()
	if len(trace) > 0 {
		trace = trace[1:]
	}
	frames := make(CallStack, len(trace))
	for i, call := range trace {
		callFrame := call.Frame()
		frames[i] = StackFrame{
			File:     callFrame.File,
			Line:     callFrame.Line,
			Function: callFrame.Function,
		}
	}
	return frames
}

// StackOf returns the stack recorded on err, or nil.
func StackOf(err error) CallStack {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Stack
	}
	return nil
}

// ZerologStackMarshaler lets zerolog's .Stack() print AppError stacks.
var ZerologStackMarshaler = func(err error) interface{} {
	if stack := StackOf(err); stack != nil {
		return stack
	}
	return nil
}
