package service

import (
	"context"

	"github.com/ds124wfegd/activity-registration/internal/entity"
)

type ActivityService interface {
	CreateActivity(ctx context.Context, req *CreateActivityRequest) (*entity.Activity, error)
	CreatePlace(ctx context.Context, req *CreatePlaceRequest) (*entity.Place, error)
	GetActivity(ctx context.Context, id int64) (*entity.Activity, error)
	GetAllActivities(ctx context.Context) ([]*entity.Activity, error)
	GetAllPlaces(ctx context.Context) ([]*entity.Place, error)
}

type EnrollmentService interface {
	// Enroll reserves one seat in the activity for the user. Checks run in a
	// fixed order and the first failure wins: activity exists, rooms left, not
	// already enrolled, no schedule conflict.
	Enroll(ctx context.Context, userID, activityID int64) (*entity.Reservation, error)
	GetUserReservations(ctx context.Context, userID int64) ([]*entity.ReservationWithActivity, error)
}

type AgendaService interface {
	// GetByDate returns the place-grouped agenda for one calendar day.
	GetByDate(ctx context.Context, dateKey string) ([]*entity.PlaceAgenda, error)

	// GroupByPlace partitions activities under every known place, in place
	// enumeration order, keeping places with no activities.
	GroupByPlace(ctx context.Context, activities []*entity.Activity) ([]*entity.PlaceAgenda, error)

	// DistinctDays lists each day with at least one activity, first-seen
	// order, deduplicated. Loads all activities when none are supplied.
	DistinctDays(ctx context.Context, activities []*entity.Activity) ([]string, error)

	// Summarize computes the whole-event date span and total active hours.
	// Returns nil when there are no activities.
	Summarize(ctx context.Context) (*entity.EventSummary, error)
}
