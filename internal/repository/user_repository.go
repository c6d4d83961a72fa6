package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"health-monitoring-backend/internal/models"
)

const userColumns = `id, username, email, password, full_name, age, gender, height, weight, ongoing_med`

// PostgresUserRepository implements UserRepository on a pgx pool.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PostgresUserRepository instance
func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

func (r *PostgresUserRepository) Create(ctx context.Context, username, email, passwordHash string) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (username, email, password) VALUES ($1, $2, $3) RETURNING id`,
		username, email, passwordHash).Scan(&id)
	if err != nil {
		// Unique violations on username or email mean the account exists;
		// the constraint replaces a separate existence query.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, ErrDuplicateUser
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return id, nil
}

func (r *PostgresUserRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1 OR email = $2`,
		username, email)
	return scanUser(row)
}

func (r *PostgresUserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *PostgresUserRepository) ProfileByID(ctx context.Context, id int64) (*models.Profile, error) {
	var p models.Profile
	err := r.pool.QueryRow(ctx,
		`SELECT full_name, age, gender, height, weight, ongoing_med FROM users WHERE id = $1`,
		id).Scan(&p.FullName, &p.Age, &p.Gender, &p.Height, &p.Weight, &p.OngoingMed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("select profile: %w", err)
	}
	return &p, nil
}

func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, id int64, profile models.Profile) (*models.User, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE users SET full_name = $1, age = $2, gender = $3, height = $4, weight = $5, ongoing_med = $6
		 WHERE id = $7
		 RETURNING `+userColumns,
		profile.FullName, profile.Age, profile.Gender, profile.Height, profile.Weight, profile.OngoingMed, id)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return user, nil
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password,
		&u.FullName, &u.Age, &u.Gender, &u.Height, &u.Weight, &u.OngoingMed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
