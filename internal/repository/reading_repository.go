package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"health-monitoring-backend/internal/models"
)

// input_time is a TIME column; it is selected as text so readings carry the
// clock value exactly as clients submitted it.
const readingColumns = `id, user_id, input_date, input_time::text, systolic, dystolic, pulse_rate, created_at, updated_at`

// PostgresReadingRepository implements ReadingRepository on a pgx pool.
type PostgresReadingRepository struct {
	pool *pgxpool.Pool
}

// NewReadingRepository creates a new PostgresReadingRepository instance
func NewReadingRepository(pool *pgxpool.Pool) *PostgresReadingRepository {
	return &PostgresReadingRepository{pool: pool}
}

func (r *PostgresReadingRepository) ListByUser(ctx context.Context, userID int64) ([]models.Reading, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+readingColumns+` FROM high_bp WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("select readings: %w", err)
	}
	defer rows.Close()

	var readings []models.Reading
	for rows.Next() {
		rd, err := scanReading(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reading: %w", err)
		}
		readings = append(readings, *rd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select readings: %w", err)
	}
	return readings, nil
}

func (r *PostgresReadingRepository) Create(ctx context.Context, userID int64, input models.ReadingInput) (*models.Reading, error) {
	// The owner-existence check is part of the insert: when the user id does
	// not exist the SELECT produces no row and nothing is written.
	row := r.pool.QueryRow(ctx,
		`INSERT INTO high_bp (user_id, input_date, input_time, systolic, dystolic, pulse_rate, created_at)
		 SELECT $1, $2, $3::time, $4, $5, $6, CURRENT_TIMESTAMP
		 WHERE EXISTS (SELECT 1 FROM users WHERE id = $1)
		 RETURNING `+readingColumns,
		userID, input.InputDate, input.InputTime, input.Systolic, input.Diastolic, input.PulseRate)
	rd, err := scanReading(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("insert reading: %w", err)
	}
	return rd, nil
}

func (r *PostgresReadingRepository) Update(ctx context.Context, id int64, input models.ReadingInput) (*models.Reading, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE high_bp SET input_date = $1, input_time = $2::time, systolic = $3, dystolic = $4, pulse_rate = $5, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $6
		 RETURNING `+readingColumns,
		input.InputDate, input.InputTime, input.Systolic, input.Diastolic, input.PulseRate, id)
	rd, err := scanReading(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrReadingNotFound
		}
		return nil, fmt.Errorf("update reading: %w", err)
	}
	return rd, nil
}

func (r *PostgresReadingRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM high_bp WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete reading: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrReadingNotFound
	}
	return nil
}

func scanReading(row pgx.Row) (*models.Reading, error) {
	var rd models.Reading
	err := row.Scan(&rd.ID, &rd.UserID, &rd.InputDate, &rd.InputTime,
		&rd.Systolic, &rd.Diastolic, &rd.PulseRate, &rd.CreatedAt, &rd.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rd, nil
}
