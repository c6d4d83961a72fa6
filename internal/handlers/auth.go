package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"health-monitoring-backend/internal/config"
	"health-monitoring-backend/internal/dto"
	"health-monitoring-backend/internal/middleware"
	"health-monitoring-backend/internal/repository"
	"health-monitoring-backend/internal/utils"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	users  repository.UserRepository
	jwtCfg *config.JWTConfig
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(users repository.UserRepository, jwtCfg *config.JWTConfig) *AuthHandler {
	return &AuthHandler{users: users, jwtCfg: jwtCfg}
}

// SignUp handles user registration
// @Summary Register a new user
// @Description Create a new user account with username, email, and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.SignUpRequest true "User registration data"
// @Success 200 {object} dto.MessageResponse "User registered"
// @Failure 400 {object} dto.MessageResponse "Username or email already exist"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /signup [post]
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req dto.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields", "Username, email, and password are required")
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		internalError(w, "hash password", err)
		return
	}

	if _, err := h.users.Create(r.Context(), req.Username, req.Email, hashed); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			utils.WriteJSONResponse(w, http.StatusBadRequest, dto.MessageResponse{Message: "Username or email already exist"})
			return
		}
		internalError(w, "create user", err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "User has been registered successfully"})
}

// SignIn handles user authentication and token issuance
// @Summary Sign a user in
// @Description Verify credentials by username or email and issue a JWT
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.SignInRequest true "Login credentials"
// @Success 200 {object} dto.SignInResponse "Authenticated, token issued"
// @Failure 400 {object} dto.SignInResponse "Unknown user or invalid password"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /signin [post]
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req dto.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	user, err := h.users.FindByUsernameOrEmail(r.Context(), req.Username, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			utils.WriteJSONResponse(w, http.StatusBadRequest, dto.MessageResponse{Message: "Incorrect username or email"})
			return
		}
		internalError(w, "find user", err)
		return
	}

	if !utils.VerifyPassword(user.Password, req.Password) {
		utils.WriteJSONResponse(w, http.StatusBadRequest, dto.SignInResponse{Auth: false, Token: nil})
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Username, user.Email, h.jwtCfg)
	if err != nil {
		internalError(w, "generate token", err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.SignInResponse{Auth: true, Token: &token})
}
