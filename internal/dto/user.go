package dto

// ProfileResponse represents the profile subset of a user record
type ProfileResponse struct {
	FullName   *string  `json:"full_name"`
	Age        *int     `json:"age"`
	Gender     *string  `json:"gender"`
	Height     *float64 `json:"height"`
	Weight     *float64 `json:"weight"`
	OngoingMed *string  `json:"ongoing_med"`
}

// ProfileUpdateRequest represents the request payload for a profile update.
// Absent fields are written as NULL, mirroring a full-row update.
type ProfileUpdateRequest struct {
	FullName   *string  `json:"full_name"`
	Age        *int     `json:"age"`
	Gender     *string  `json:"gender"`
	Height     *float64 `json:"height"`
	Weight     *float64 `json:"weight"`
	OngoingMed *string  `json:"ongoing_med"`
}
