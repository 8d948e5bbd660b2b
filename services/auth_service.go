package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ExpenseAPI/logging"
	"ExpenseAPI/models"
	"ExpenseAPI/repositories"
	"ExpenseAPI/utils"
)

// TokenIssuer creates session tokens for a user id.
type TokenIssuer interface {
	Generate(userID string) (string, error)
}

type AuthService struct {
	users  repositories.UserRepository
	tokens TokenIssuer
}

func NewAuthService(users repositories.UserRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
	}
}

// Register creates a user after checking that neither the email nor the
// username is taken.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = normalizeEmail(email)

	existing, err := s.users.FindByEmailOrUsername(ctx, email, username)
	if err != nil {
		return nil, utils.NewAppError(utils.KindServerError, err, utils.MsgServerError)
	}
	if existing != nil {
		return nil, utils.NewAppError(utils.KindAlreadyExists, nil, utils.MsgAlreadyExists)
	}

	hash, err := utils.HashPassword(password)
	if errors.Is(err, utils.ErrPasswordTooLong) {
		return nil, utils.NewAppError(utils.KindValidationFailed, err,
			fmt.Sprintf("%s: password must be at most %d bytes", utils.MsgValidationFailed, utils.MaxPasswordLength))
	}
	if err != nil {
		return nil, utils.NewAppError(utils.KindServerError, err, utils.MsgServerError)
	}

	user, err := s.users.Create(ctx, &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, utils.NewAppError(utils.KindAlreadyExists, err, utils.MsgAlreadyExists)
		}
		return nil, utils.NewAppError(utils.KindServerError, err, utils.MsgServerError)
	}

	logging.Info().Str("userId", user.ID).Msg("user registered")
	return user, nil
}

// Login verifies the credentials and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, utils.NewAppError(utils.KindServerError, err, utils.MsgServerError)
	}
	if user == nil {
		return nil, utils.NewAppError(utils.KindUnauthorized, nil, utils.MsgUnauthorized)
	}

	ok, err := utils.ComparePassword(password, user.PasswordHash)
	if err != nil || !ok {
		return nil, utils.NewAppError(utils.KindUnauthorized, err, utils.MsgUnauthorized)
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, utils.NewAppError(utils.KindServerError, err, utils.MsgServerError)
	}
	return &models.LoginResponse{Token: token}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
