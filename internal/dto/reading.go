package dto

// ReadingRequest represents the measurement fields for creating or updating
// a blood-pressure reading. The date is a plain calendar date (YYYY-MM-DD);
// the time is a clock time (HH:MM or HH:MM:SS).
type ReadingRequest struct {
	InputDate string `json:"input_date" validate:"required"`
	InputTime string `json:"input_time" validate:"required"`
	Systolic  int    `json:"systolic"`
	Diastolic int    `json:"dystolic"`
	PulseRate int    `json:"pulse_rate"`
}

// FlatReadingRequest is the body-scoped create variant: the owning user is
// identified in the payload instead of the path.
type FlatReadingRequest struct {
	UserID int64 `json:"user_id"`
	ReadingRequest
}

// ReadingResponse represents a reading with the observation date rendered
// as a plain calendar date.
type ReadingResponse struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"user_id"`
	InputDate string  `json:"input_date"`
	InputTime string  `json:"input_time"`
	Systolic  int     `json:"systolic"`
	Diastolic int     `json:"dystolic"`
	PulseRate int     `json:"pulse_rate"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt *string `json:"updated_at"`
}
