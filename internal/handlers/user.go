package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"health-monitoring-backend/internal/dto"
	"health-monitoring-backend/internal/models"
	"health-monitoring-backend/internal/repository"
	"health-monitoring-backend/internal/utils"
)

// UserHandler handles user record and profile requests
type UserHandler struct {
	users repository.UserRepository
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(users repository.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

// Get returns a full user record
// @Summary Get user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} dto.ErrorResponse "user not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /user/{id} [get]
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid user id", err.Error())
		return
	}

	user, err := h.users.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "user not found", "")
			return
		}
		internalError(w, "find user", err)
		return
	}

	// The password hash is excluded via the model's json tag.
	utils.WriteJSONResponse(w, http.StatusOK, user)
}

// GetProfile returns the profile subset of a user record
// @Summary Get user profile fields
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /userinfo/{id} [get]
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid user id", err.Error())
		return
	}

	profile, err := h.users.ProfileByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "User not found", "")
			return
		}
		internalError(w, "find profile", err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.ProfileResponse{
		FullName:   profile.FullName,
		Age:        profile.Age,
		Gender:     profile.Gender,
		Height:     profile.Height,
		Weight:     profile.Weight,
		OngoingMed: profile.OngoingMed,
	})
}

// UpdateProfile overwrites a user's profile fields
// @Summary Update user profile fields
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body dto.ProfileUpdateRequest true "Profile fields"
// @Success 200 {object} models.User
// @Failure 400 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /userinfo/{id} [put]
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid user id", err.Error())
		return
	}

	var req dto.ProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	user, err := h.users.UpdateProfile(r.Context(), id, models.Profile{
		FullName:   req.FullName,
		Age:        req.Age,
		Gender:     req.Gender,
		Height:     req.Height,
		Weight:     req.Weight,
		OngoingMed: req.OngoingMed,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "User not found", "")
			return
		}
		internalError(w, "update profile", err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, user)
}
