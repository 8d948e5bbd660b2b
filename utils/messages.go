package utils

// Messages returned to API clients.
const (
	MsgUnauthorized     = "Unauthorized access"
	MsgNotFound         = "Resource not found"
	MsgValidationFailed = "Validation error"
	MsgServerError      = "An internal server error occurred"
	MsgAlreadyExists    = "Resource already exist"

	MsgCreated  = "Resource created successfully"
	MsgUpdated  = "Resource updated successfully"
	MsgDeleted  = "Resource deleted successfully"
	MsgLoggedIn = "Logged in successfully"
	MsgFetched  = "Resource fetched successfully"

	MsgRegistered   = "User registered successfully"
	MsgNoToken      = "No token, authorization denied"
	MsgInvalidToken = "Token is not valid"
)
