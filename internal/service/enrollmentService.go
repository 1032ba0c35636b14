package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	repository "github.com/ds124wfegd/activity-registration/internal/database/postgres"
	cache "github.com/ds124wfegd/activity-registration/internal/database/redis"
	"github.com/ds124wfegd/activity-registration/internal/entity"
	"github.com/ds124wfegd/activity-registration/internal/pkg/kafka"
	"github.com/ds124wfegd/activity-registration/internal/schedule"
	"github.com/ds124wfegd/activity-registration/pkg/datetime"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ReservationCreatedEvent is published to Kafka after a successful enrollment.
type ReservationCreatedEvent struct {
	EventID       string    `json:"event_id"`
	ReservationID int64     `json:"reservation_id"`
	UserID        int64     `json:"user_id"`
	ActivityID    int64     `json:"activity_id"`
	ActivityName  string    `json:"activity_name"`
	StartsAt      time.Time `json:"starts_at"`
	CreatedAt     time.Time `json:"created_at"`
}

type enrollmentService struct {
	activityRepo    repository.ActivityRepository
	reservationRepo repository.ReservationRepository
	agendaCache     *cache.AgendaCache
	producer        kafka.Producer
}

// NewEnrollmentService creates a new instance of EnrollmentService. Cache and
// producer are optional; nil disables the corresponding side channel.
func NewEnrollmentService(
	activityRepo repository.ActivityRepository,
	reservationRepo repository.ReservationRepository,
	agendaCache *cache.AgendaCache,
	producer kafka.Producer,
) EnrollmentService {
	return &enrollmentService{
		activityRepo:    activityRepo,
		reservationRepo: reservationRepo,
		agendaCache:     agendaCache,
		producer:        producer,
	}
}

func (s *enrollmentService) Enroll(ctx context.Context, userID, activityID int64) (*entity.Reservation, error) {
	// 1. Activity must exist
	activity, err := s.activityRepo.GetByID(ctx, activityID)
	if err != nil {
		if errors.Is(err, entity.ErrActivityNotFound) {
			return nil, entity.ErrActivityNotFound
		}
		return nil, fmt.Errorf("failed to look up activity: %w", err)
	}

	// 2. Rooms must be left
	if activity.Rooms == 0 {
		return nil, entity.ErrNoRooms
	}

	// 3. No duplicate reservation for this user and activity
	existing, err := s.reservationRepo.GetByUserAndActivity(ctx, userID, activityID)
	if err != nil && !errors.Is(err, entity.ErrReservationMissing) {
		return nil, fmt.Errorf("failed to check existing reservation: %w", err)
	}
	if existing != nil {
		return nil, entity.ErrAlreadyEnrolled
	}

	// 4. No schedule conflict against any of the user's reservations,
	// regardless of place
	reservations, err := s.reservationRepo.GetByUserWithActivity(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user reservations: %w", err)
	}

	candidate := schedule.Interval{Start: activity.StartsAt, End: activity.EndsAt}
	slots := make([]schedule.Interval, 0, len(reservations))
	for _, res := range reservations {
		slots = append(slots, schedule.Interval{
			Start: res.Activity.StartsAt,
			End:   res.Activity.EndsAt,
		})
	}
	if schedule.HasConflict(candidate, slots) {
		return nil, entity.ErrScheduleConflict
	}

	// 5. Decrement rooms and insert the reservation in one transaction. The
	// repository re-checks capacity under a row lock, so a lost race surfaces
	// as ErrNoRooms here.
	reservation, err := s.reservationRepo.Enroll(ctx, userID, activityID)
	if err != nil {
		return nil, err
	}

	s.invalidateAgenda(ctx, activity)
	s.publishReservationCreated(ctx, reservation, activity)

	return reservation, nil
}

func (s *enrollmentService) GetUserReservations(ctx context.Context, userID int64) ([]*entity.ReservationWithActivity, error) {
	reservations, err := s.reservationRepo.GetByUserWithActivity(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user reservations: %w", err)
	}
	return reservations, nil
}

func (s *enrollmentService) invalidateAgenda(ctx context.Context, activity *entity.Activity) {
	if s.agendaCache == nil {
		return
	}

	dateKey := datetime.DateKey(activity.StartsAt)
	if err := s.agendaCache.DeleteDayAgenda(ctx, dateKey); err != nil {
		logrus.Warnf("Failed to invalidate agenda cache for %s: %v", dateKey, err)
	}
	if err := s.agendaCache.DeleteSummary(ctx); err != nil {
		logrus.Warnf("Failed to invalidate summary cache: %v", err)
	}
}

// publishReservationCreated is best-effort: a broker outage must not fail an
// enrollment that is already committed.
func (s *enrollmentService) publishReservationCreated(ctx context.Context, reservation *entity.Reservation, activity *entity.Activity) {
	if s.producer == nil {
		return
	}

	event := &ReservationCreatedEvent{
		EventID:       uuid.NewString(),
		ReservationID: reservation.ID,
		UserID:        reservation.UserID,
		ActivityID:    activity.ID,
		ActivityName:  activity.Name,
		StartsAt:      activity.StartsAt,
		CreatedAt:     reservation.CreatedAt,
	}

	if err := s.producer.SendMessage(ctx, "reservation.created", event); err != nil {
		logrus.Errorf("Failed to publish reservation event %s: %v", event.EventID, err)
	}
}
