package service

import (
	"context"
	"fmt"
	"time"

	repository "github.com/ds124wfegd/activity-registration/internal/database/postgres"
	cache "github.com/ds124wfegd/activity-registration/internal/database/redis"
	"github.com/ds124wfegd/activity-registration/internal/entity"
	"github.com/ds124wfegd/activity-registration/pkg/datetime"

	"github.com/sirupsen/logrus"
)

// CreateActivityRequest represents the data needed to create an activity
type CreateActivityRequest struct {
	Name     string    `json:"name" binding:"required,min=1,max=255"`
	StartsAt time.Time `json:"starts_at" binding:"required"`
	EndsAt   time.Time `json:"ends_at" binding:"required"`
	Rooms    int       `json:"rooms" binding:"min=0,max=10000"`
	PlaceID  int64     `json:"place_id" binding:"required"`
}

// CreatePlaceRequest represents the data needed to create a place
type CreatePlaceRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

type activityService struct {
	activityRepo repository.ActivityRepository
	placeRepo    repository.PlaceRepository
	agendaCache  *cache.AgendaCache
}

// NewActivityService creates a new instance of ActivityService
func NewActivityService(
	activityRepo repository.ActivityRepository,
	placeRepo repository.PlaceRepository,
	agendaCache *cache.AgendaCache,
) ActivityService {
	return &activityService{
		activityRepo: activityRepo,
		placeRepo:    placeRepo,
		agendaCache:  agendaCache,
	}
}

func (s *activityService) CreateActivity(ctx context.Context, req *CreateActivityRequest) (*entity.Activity, error) {
	if !req.StartsAt.Before(req.EndsAt) {
		return nil, entity.ErrInvalidInterval
	}

	places, err := s.placeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get places: %w", err)
	}

	known := false
	for _, place := range places {
		if place.ID == req.PlaceID {
			known = true
			break
		}
	}
	if !known {
		return nil, entity.ErrPlaceNotFound
	}

	activity := &entity.Activity{
		Name:     req.Name,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
		Rooms:    req.Rooms,
		PlaceID:  req.PlaceID,
	}

	if err := s.activityRepo.Create(ctx, activity); err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	if s.agendaCache != nil {
		dateKey := datetime.DateKey(activity.StartsAt)
		if err := s.agendaCache.DeleteDayAgenda(ctx, dateKey); err != nil {
			logrus.Warnf("Failed to invalidate agenda cache for %s: %v", dateKey, err)
		}
		if err := s.agendaCache.DeleteSummary(ctx); err != nil {
			logrus.Warnf("Failed to invalidate summary cache: %v", err)
		}
	}

	return activity, nil
}

func (s *activityService) CreatePlace(ctx context.Context, req *CreatePlaceRequest) (*entity.Place, error) {
	place := &entity.Place{Name: req.Name}

	if err := s.placeRepo.Create(ctx, place); err != nil {
		return nil, fmt.Errorf("failed to create place: %w", err)
	}

	return place, nil
}

func (s *activityService) GetActivity(ctx context.Context, id int64) (*entity.Activity, error) {
	activity, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *activityService) GetAllActivities(ctx context.Context) ([]*entity.Activity, error) {
	activities, err := s.activityRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all activities: %w", err)
	}
	return activities, nil
}

func (s *activityService) GetAllPlaces(ctx context.Context) ([]*entity.Place, error) {
	places, err := s.placeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all places: %w", err)
	}
	return places, nil
}
