package models

import "time"

// Reading represents one blood-pressure measurement owned by a user.
// The diastolic column is spelled "dystolic" in the existing schema; the
// JSON key keeps that spelling so current clients stay compatible.
type Reading struct {
	ID        int64      `json:"id" db:"id"`
	UserID    int64      `json:"user_id" db:"user_id"`
	InputDate time.Time  `json:"input_date" db:"input_date"`
	InputTime string     `json:"input_time" db:"input_time"`
	Systolic  int        `json:"systolic" db:"systolic"`
	Diastolic int        `json:"dystolic" db:"dystolic"`
	PulseRate int        `json:"pulse_rate" db:"pulse_rate"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at" db:"updated_at"`
}

// ReadingInput carries the caller-supplied measurement fields for inserts
// and updates.
type ReadingInput struct {
	InputDate time.Time
	InputTime string
	Systolic  int
	Diastolic int
	PulseRate int
}
