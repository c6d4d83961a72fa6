package dto

// SignUpRequest represents the request payload for user registration
type SignUpRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// SignInRequest represents the request payload for user sign-in. Either
// username or email may identify the account.
type SignInRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" validate:"required"`
}

// SignInResponse represents the sign-in outcome. Token is null when the
// password does not verify.
type SignInResponse struct {
	Auth  bool    `json:"auth"`
	Token *string `json:"token"`
}

// MessageResponse represents a plain confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
