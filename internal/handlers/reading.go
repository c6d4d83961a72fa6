package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"health-monitoring-backend/internal/dto"
	"health-monitoring-backend/internal/models"
	"health-monitoring-backend/internal/repository"
	"health-monitoring-backend/internal/utils"
)

const dateLayout = "2006-01-02"

// ReadingHandler handles blood-pressure reading requests
type ReadingHandler struct {
	readings repository.ReadingRepository
}

// NewReadingHandler creates a new ReadingHandler instance
func NewReadingHandler(readings repository.ReadingRepository) *ReadingHandler {
	return &ReadingHandler{readings: readings}
}

// ListByUser returns every reading owned by a user
// @Summary List readings for a user
// @Tags readings
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {array} models.Reading
// @Failure 404 {object} dto.ErrorResponse "No data found for this user"
// @Failure 500 {object} dto.ErrorResponse
// @Router /highBP/user/{user_id} [get]
func (h *ReadingHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid user id", err.Error())
		return
	}

	readings, err := h.readings.ListByUser(r.Context(), userID)
	if err != nil {
		internalError(w, "list readings", err)
		return
	}
	if len(readings) == 0 {
		utils.WriteErrorResponse(w, http.StatusNotFound, "No data found for this user", "")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, readings)
}

// Create records a reading for the user named in the path
// @Summary Create a reading for a user
// @Tags readings
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body dto.ReadingRequest true "Measurement fields"
// @Success 200 {object} dto.ReadingResponse
// @Failure 400 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /highBP/user/{id} [post]
func (h *ReadingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid user id", err.Error())
		return
	}

	input, ok := decodeReadingInput(w, r)
	if !ok {
		return
	}

	reading, err := h.readings.Create(r.Context(), userID, input)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "User not found", "")
			return
		}
		internalError(w, "create reading", err)
		return
	}

	// This variant renders the observation date as a plain calendar date.
	utils.WriteJSONResponse(w, http.StatusOK, formatReading(reading))
}

// CreateFlat records a reading for the user named in the body
// @Summary Create a reading (user id in body)
// @Tags readings
// @Accept json
// @Produce json
// @Param request body dto.FlatReadingRequest true "Measurement fields with owner id"
// @Success 200 {object} models.Reading
// @Failure 400 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /highBP [post]
func (h *ReadingHandler) CreateFlat(w http.ResponseWriter, r *http.Request) {
	var req dto.FlatReadingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	input, ok := parseReadingInput(w, req.ReadingRequest)
	if !ok {
		return
	}

	reading, err := h.readings.Create(r.Context(), req.UserID, input)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "User not found", "")
			return
		}
		internalError(w, "create reading", err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, reading)
}

// Update overwrites a reading's measurement fields
// @Summary Update a reading
// @Tags readings
// @Accept json
// @Produce json
// @Param id path int true "Reading ID"
// @Param request body dto.ReadingRequest true "Measurement fields"
// @Success 200 {object} models.Reading
// @Failure 400 {object} dto.ErrorResponse "High blood pressure post not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /highBP/{id} [put]
func (h *ReadingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid reading id", err.Error())
		return
	}

	input, ok := decodeReadingInput(w, r)
	if !ok {
		return
	}

	reading, err := h.readings.Update(r.Context(), id, input)
	if err != nil {
		if errors.Is(err, repository.ErrReadingNotFound) {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "High blood pressure post not found", "")
			return
		}
		internalError(w, "update reading", err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, reading)
}

// Delete removes a reading
// @Summary Delete a reading
// @Tags readings
// @Produce json
// @Param id path int true "Reading ID"
// @Success 200 {object} dto.MessageResponse "Successfully deleted"
// @Failure 400 {object} dto.ErrorResponse "High blood pressure post not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /highBP/{id} [delete]
func (h *ReadingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid reading id", err.Error())
		return
	}

	if err := h.readings.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrReadingNotFound) {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "High blood pressure post not found", "")
			return
		}
		internalError(w, "delete reading", err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Successfully deleted"})
}

func decodeReadingInput(w http.ResponseWriter, r *http.Request) (models.ReadingInput, bool) {
	var req dto.ReadingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return models.ReadingInput{}, false
	}
	return parseReadingInput(w, req)
}

func parseReadingInput(w http.ResponseWriter, req dto.ReadingRequest) (models.ReadingInput, bool) {
	date, err := time.Parse(dateLayout, req.InputDate)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", "input_date must be YYYY-MM-DD")
		return models.ReadingInput{}, false
	}
	return models.ReadingInput{
		InputDate: date,
		InputTime: req.InputTime,
		Systolic:  req.Systolic,
		Diastolic: req.Diastolic,
		PulseRate: req.PulseRate,
	}, true
}

func formatReading(rd *models.Reading) dto.ReadingResponse {
	var updated *string
	if rd.UpdatedAt != nil {
		s := rd.UpdatedAt.Format(time.RFC3339)
		updated = &s
	}
	return dto.ReadingResponse{
		ID:        rd.ID,
		UserID:    rd.UserID,
		InputDate: rd.InputDate.Format(dateLayout),
		InputTime: rd.InputTime,
		Systolic:  rd.Systolic,
		Diastolic: rd.Diastolic,
		PulseRate: rd.PulseRate,
		CreatedAt: rd.CreatedAt.Format(time.RFC3339),
		UpdatedAt: updated,
	}
}
