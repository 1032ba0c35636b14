package service

import (
	"context"
	"fmt"
	"math"

	repository "github.com/ds124wfegd/activity-registration/internal/database/postgres"
	cache "github.com/ds124wfegd/activity-registration/internal/database/redis"
	"github.com/ds124wfegd/activity-registration/internal/entity"
	"github.com/ds124wfegd/activity-registration/pkg/datetime"

	"github.com/sirupsen/logrus"
)

const millisPerHour = 3600000

type agendaService struct {
	activityRepo repository.ActivityRepository
	placeRepo    repository.PlaceRepository
	agendaCache  *cache.AgendaCache
}

// NewAgendaService creates a new instance of AgendaService. The cache is
// optional; nil means every read goes to postgres.
func NewAgendaService(
	activityRepo repository.ActivityRepository,
	placeRepo repository.PlaceRepository,
	agendaCache *cache.AgendaCache,
) AgendaService {
	return &agendaService{
		activityRepo: activityRepo,
		placeRepo:    placeRepo,
		agendaCache:  agendaCache,
	}
}

func (s *agendaService) GetByDate(ctx context.Context, dateKey string) ([]*entity.PlaceAgenda, error) {
	if s.agendaCache != nil {
		if agenda, err := s.agendaCache.GetDayAgenda(ctx, dateKey); err == nil {
			return agenda, nil
		}
	}

	from, err := datetime.StartOfDay(dateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: bad date %q", entity.ErrInvalidInput, dateKey)
	}
	to, err := datetime.EndOfDay(dateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: bad date %q", entity.ErrInvalidInput, dateKey)
	}

	activities, err := s.activityRepo.GetByStartRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get activities for %s: %w", dateKey, err)
	}

	agenda, err := s.GroupByPlace(ctx, activities)
	if err != nil {
		return nil, err
	}

	if s.agendaCache != nil {
		if err := s.agendaCache.SetDayAgenda(ctx, dateKey, agenda); err != nil {
			logrus.Warnf("Failed to cache agenda for %s: %v", dateKey, err)
		}
	}

	return agenda, nil
}

func (s *agendaService) GroupByPlace(ctx context.Context, activities []*entity.Activity) ([]*entity.PlaceAgenda, error) {
	places, err := s.placeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get places: %w", err)
	}

	groups := make([]*entity.PlaceAgenda, 0, len(places))
	groupIndex := make(map[int64]int, len(places))
	for i, place := range places {
		groupIndex[place.ID] = i
		groups = append(groups, &entity.PlaceAgenda{
			Name:       place.Name,
			Activities: make([]entity.ActivitySlot, 0),
		})
	}

	for _, activity := range activities {
		i, ok := groupIndex[activity.PlaceID]
		if !ok {
			return nil, fmt.Errorf("%w: activity %d references place %d",
				entity.ErrUnknownPlace, activity.ID, activity.PlaceID)
		}

		groups[i].Activities = append(groups[i].Activities, entity.ActivitySlot{
			ID:       activity.ID,
			Name:     activity.Name,
			StartsAt: datetime.HourMinute(activity.StartsAt),
			EndsAt:   datetime.HourMinute(activity.EndsAt),
			Rooms:    activity.Rooms,
		})
	}

	return groups, nil
}

func (s *agendaService) DistinctDays(ctx context.Context, activities []*entity.Activity) ([]string, error) {
	if activities == nil {
		all, err := s.activityRepo.GetAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get activities: %w", err)
		}
		activities = all
	}

	days := make([]string, 0)
	seen := make(map[string]bool)
	for _, activity := range activities {
		day := datetime.DateKey(activity.StartsAt)
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}

	return days, nil
}

// daySpan tracks the true earliest start and latest end of one calendar day.
type daySpan struct {
	first entity.Activity
	last  entity.Activity
}

func (s *agendaService) Summarize(ctx context.Context) (*entity.EventSummary, error) {
	if s.agendaCache != nil {
		if summary, err := s.agendaCache.GetSummary(ctx); err == nil {
			return summary, nil
		}
	}

	activities, err := s.activityRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get activities: %w", err)
	}
	if len(activities) == 0 {
		return nil, nil
	}

	// Single pass per-day min(start)/max(end). GetAll orders by start, so
	// first-seen day order is ascending.
	var dayOrder []string
	spans := make(map[string]*daySpan)
	for _, activity := range activities {
		day := datetime.DateKey(activity.StartsAt)
		span, ok := spans[day]
		if !ok {
			dayOrder = append(dayOrder, day)
			spans[day] = &daySpan{first: *activity, last: *activity}
			continue
		}
		if activity.StartsAt.Before(span.first.StartsAt) {
			span.first = *activity
		}
		if activity.EndsAt.After(span.last.EndsAt) {
			span.last = *activity
		}
	}

	var totalMillis int64
	for _, day := range dayOrder {
		span := spans[day]
		diff := datetime.DurationMillis(span.first.StartsAt, span.last.EndsAt)
		if diff < 0 {
			diff = -diff
		}
		totalMillis += diff
	}

	firstDay := spans[dayOrder[0]]
	lastDay := spans[dayOrder[len(dayOrder)-1]]

	summary := &entity.EventSummary{
		Year:       datetime.Year(firstDay.first.StartsAt),
		StartDay:   datetime.Day(firstDay.first.StartsAt),
		StartMonth: datetime.Month(firstDay.first.StartsAt),
		EndDay:     datetime.Day(lastDay.last.StartsAt),
		EndMonth:   datetime.Month(lastDay.last.StartsAt),
		TotalHours: math.Abs(float64(totalMillis) / millisPerHour),
	}

	if s.agendaCache != nil {
		if err := s.agendaCache.SetSummary(ctx, summary); err != nil {
			logrus.Warnf("Failed to cache event summary: %v", err)
		}
	}

	return summary, nil
}
