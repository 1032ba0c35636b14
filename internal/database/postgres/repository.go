package repository

import (
	"context"
	"time"

	"github.com/ds124wfegd/activity-registration/internal/entity"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *entity.Activity) error
	GetByID(ctx context.Context, id int64) (*entity.Activity, error)
	GetAll(ctx context.Context) ([]*entity.Activity, error)
	GetByStartRange(ctx context.Context, from, to time.Time) ([]*entity.Activity, error)
	UpdateRooms(ctx context.Context, id int64, rooms int) error
}

type PlaceRepository interface {
	Create(ctx context.Context, place *entity.Place) error
	GetAll(ctx context.Context) ([]*entity.Place, error)
}

type ReservationRepository interface {
	GetByUserAndActivity(ctx context.Context, userID, activityID int64) (*entity.Reservation, error)
	GetByUserWithActivity(ctx context.Context, userID int64) ([]*entity.ReservationWithActivity, error)

	// Enroll decrements the activity room counter and inserts the reservation
	// inside one transaction, re-checking capacity under a row lock.
	Enroll(ctx context.Context, userID, activityID int64) (*entity.Reservation, error)
}
