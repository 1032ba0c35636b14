package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ds124wfegd/activity-registration/internal/entity"
)

type activityRepository struct {
	db *sql.DB
}

func NewActivityRepository(db *sql.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	if !activity.StartsAt.Before(activity.EndsAt) {
		return entity.ErrInvalidInterval
	}

	query := `
		INSERT INTO activities (name, starts_at, ends_at, rooms, place_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		activity.Name,
		activity.StartsAt,
		activity.EndsAt,
		activity.Rooms,
		activity.PlaceID,
		now,
		now,
	).Scan(&activity.ID)
	if err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}

	activity.CreatedAt = now
	activity.UpdatedAt = now
	return nil
}

func (r *activityRepository) GetByID(ctx context.Context, id int64) (*entity.Activity, error) {
	query := `
		SELECT id, name, starts_at, ends_at, rooms, place_id, created_at, updated_at
		FROM activities
		WHERE id = $1
	`

	var activity entity.Activity
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&activity.ID,
		&activity.Name,
		&activity.StartsAt,
		&activity.EndsAt,
		&activity.Rooms,
		&activity.PlaceID,
		&activity.CreatedAt,
		&activity.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrActivityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}

	return &activity, nil
}

func (r *activityRepository) GetAll(ctx context.Context) ([]*entity.Activity, error) {
	query := `
		SELECT id, name, starts_at, ends_at, rooms, place_id, created_at, updated_at
		FROM activities
		ORDER BY starts_at ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	return scanActivities(rows)
}

func (r *activityRepository) GetByStartRange(ctx context.Context, from, to time.Time) ([]*entity.Activity, error) {
	query := `
		SELECT id, name, starts_at, ends_at, rooms, place_id, created_at, updated_at
		FROM activities
		WHERE starts_at BETWEEN $1 AND $2
		ORDER BY starts_at ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities by start range: %w", err)
	}
	defer rows.Close()

	return scanActivities(rows)
}

func (r *activityRepository) UpdateRooms(ctx context.Context, id int64, rooms int) error {
	query := `UPDATE activities SET rooms = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, rooms, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update activity rooms: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrActivityNotFound
	}

	return nil
}

func scanActivities(rows *sql.Rows) ([]*entity.Activity, error) {
	var activities []*entity.Activity
	for rows.Next() {
		var activity entity.Activity
		err := rows.Scan(
			&activity.ID,
			&activity.Name,
			&activity.StartsAt,
			&activity.EndsAt,
			&activity.Rooms,
			&activity.PlaceID,
			&activity.CreatedAt,
			&activity.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, &activity)
	}

	return activities, rows.Err()
}
