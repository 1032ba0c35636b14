package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ds124wfegd/activity-registration/internal/entity"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) GetByUserAndActivity(ctx context.Context, userID, activityID int64) (*entity.Reservation, error) {
	query := `
		SELECT id, user_id, activity_id, created_at
		FROM activity_reservations
		WHERE user_id = $1 AND activity_id = $2
	`

	var reservation entity.Reservation
	err := r.db.QueryRowContext(ctx, query, userID, activityID).Scan(
		&reservation.ID,
		&reservation.UserID,
		&reservation.ActivityID,
		&reservation.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrReservationMissing
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}

	return &reservation, nil
}

func (r *reservationRepository) GetByUserWithActivity(ctx context.Context, userID int64) ([]*entity.ReservationWithActivity, error) {
	query := `
		SELECT
			r.id, r.user_id, r.activity_id, r.created_at,
			a.id, a.name, a.starts_at, a.ends_at, a.rooms, a.place_id, a.created_at, a.updated_at
		FROM activity_reservations r
		JOIN activities a ON a.id = r.activity_id
		WHERE r.user_id = $1
		ORDER BY a.starts_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user reservations: %w", err)
	}
	defer rows.Close()

	var reservations []*entity.ReservationWithActivity
	for rows.Next() {
		var res entity.ReservationWithActivity
		err := rows.Scan(
			&res.ID,
			&res.UserID,
			&res.ActivityID,
			&res.CreatedAt,
			&res.Activity.ID,
			&res.Activity.Name,
			&res.Activity.StartsAt,
			&res.Activity.EndsAt,
			&res.Activity.Rooms,
			&res.Activity.PlaceID,
			&res.Activity.CreatedAt,
			&res.Activity.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		reservations = append(reservations, &res)
	}

	return reservations, rows.Err()
}

// Enroll commits the room decrement and the reservation insert together.
// The activity row is locked with FOR UPDATE and capacity is re-checked under
// the lock, so two attempts racing for the last room cannot both succeed.
func (r *reservationRepository) Enroll(ctx context.Context, userID, activityID int64) (*entity.Reservation, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelReadCommitted,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var rooms int
	query := `SELECT rooms FROM activities WHERE id = $1 FOR UPDATE`
	err = tx.QueryRowContext(ctx, query, activityID).Scan(&rooms)
	if err == sql.ErrNoRows {
		return nil, entity.ErrActivityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock activity: %w", err)
	}

	if rooms <= 0 {
		return nil, entity.ErrNoRooms
	}

	now := time.Now()
	query = `UPDATE activities SET rooms = rooms - 1, updated_at = $1 WHERE id = $2`
	if _, err := tx.ExecContext(ctx, query, now, activityID); err != nil {
		return nil, fmt.Errorf("failed to decrement activity rooms: %w", err)
	}

	reservation := &entity.Reservation{
		UserID:     userID,
		ActivityID: activityID,
		CreatedAt:  now,
	}

	query = `
		INSERT INTO activity_reservations (user_id, activity_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err = tx.QueryRowContext(ctx, query, userID, activityID, now).Scan(&reservation.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
			return nil, entity.ErrAlreadyEnrolled
		}
		return nil, fmt.Errorf("failed to insert reservation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit enrollment: %w", err)
	}

	return reservation, nil
}
