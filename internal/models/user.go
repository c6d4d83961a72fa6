package models

// User represents a registered user in the system. The bcrypt hash is never
// serialized into API responses.
type User struct {
	ID         int64    `json:"id" db:"id"`
	Username   string   `json:"username" db:"username"`
	Email      string   `json:"email" db:"email"`
	Password   string   `json:"-" db:"password"` // bcrypt hash
	FullName   *string  `json:"full_name" db:"full_name"`
	Age        *int     `json:"age" db:"age"`
	Gender     *string  `json:"gender" db:"gender"`
	Height     *float64 `json:"height" db:"height"`
	Weight     *float64 `json:"weight" db:"weight"`
	OngoingMed *string  `json:"ongoing_med" db:"ongoing_med"`
}

// Profile is the editable subset of a user record.
type Profile struct {
	FullName   *string  `json:"full_name" db:"full_name"`
	Age        *int     `json:"age" db:"age"`
	Gender     *string  `json:"gender" db:"gender"`
	Height     *float64 `json:"height" db:"height"`
	Weight     *float64 `json:"weight" db:"weight"`
	OngoingMed *string  `json:"ongoing_med" db:"ongoing_med"`
}
