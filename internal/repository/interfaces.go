package repository

import (
	"context"

	"health-monitoring-backend/internal/models"
)

// UserRepository provides access to user records.
type UserRepository interface {
	// Create inserts a new user and returns its assigned id.
	// Returns ErrDuplicateUser when the username or email is taken.
	Create(ctx context.Context, username, email, passwordHash string) (int64, error)

	// FindByUsernameOrEmail looks a user up by either unique key.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error)

	// FindByID looks a user up by id.
	FindByID(ctx context.Context, id int64) (*models.User, error)

	// ProfileByID returns the profile subset of a user record.
	ProfileByID(ctx context.Context, id int64) (*models.Profile, error)

	// UpdateProfile overwrites the profile fields of an existing user and
	// returns the updated record. Returns ErrUserNotFound when the user does
	// not exist; the check is part of the update statement itself.
	UpdateProfile(ctx context.Context, id int64, profile models.Profile) (*models.User, error)
}

// ReadingRepository provides access to blood-pressure readings.
type ReadingRepository interface {
	// ListByUser returns all readings owned by the given user.
	ListByUser(ctx context.Context, userID int64) ([]models.Reading, error)

	// Create inserts a reading for an existing user. The owner-existence
	// check is folded into the insert; ErrUserNotFound is returned when the
	// user is absent and no row is written.
	Create(ctx context.Context, userID int64, input models.ReadingInput) (*models.Reading, error)

	// Update overwrites the measurement fields of an existing reading and
	// stamps updated_at. Returns ErrReadingNotFound when no row matches.
	Update(ctx context.Context, id int64, input models.ReadingInput) (*models.Reading, error)

	// Delete removes a reading. Returns ErrReadingNotFound when no row matches.
	Delete(ctx context.Context, id int64) error
}
