package service

import (
	"context"
	"sync"
	"time"

	"github.com/ds124wfegd/activity-registration/internal/entity"
)

// fakeStore is an in-memory stand-in for the postgres repositories. Enroll
// serializes on the mutex the way the real repository serializes on the
// activity row lock.
type fakeStore struct {
	mu           sync.Mutex
	activities   []*entity.Activity
	places       []*entity.Place
	reservations []*entity.Reservation
	nextID       int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextID: 1}
}

func (s *fakeStore) addPlace(name string) *entity.Place {
	s.mu.Lock()
	defer s.mu.Unlock()

	place := &entity.Place{ID: s.nextID, Name: name}
	s.nextID++
	s.places = append(s.places, place)
	return place
}

func (s *fakeStore) addActivity(name string, placeID int64, starts, ends time.Time, rooms int) *entity.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity := &entity.Activity{
		ID:       s.nextID,
		Name:     name,
		StartsAt: starts,
		EndsAt:   ends,
		Rooms:    rooms,
		PlaceID:  placeID,
	}
	s.nextID++
	s.activities = append(s.activities, activity)
	return activity
}

// ActivityRepository

func (s *fakeStore) Create(ctx context.Context, activity *entity.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity.ID = s.nextID
	s.nextID++
	s.activities = append(s.activities, activity)
	return nil
}

func (s *fakeStore) GetByID(ctx context.Context, id int64) (*entity.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, activity := range s.activities {
		if activity.ID == id {
			copied := *activity
			return &copied, nil
		}
	}
	return nil, entity.ErrActivityNotFound
}

func (s *fakeStore) GetAll(ctx context.Context) ([]*entity.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entity.Activity, len(s.activities))
	copy(out, s.activities)
	return out, nil
}

func (s *fakeStore) GetByStartRange(ctx context.Context, from, to time.Time) ([]*entity.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*entity.Activity
	for _, activity := range s.activities {
		if !activity.StartsAt.Before(from) && !activity.StartsAt.After(to) {
			out = append(out, activity)
		}
	}
	return out, nil
}

func (s *fakeStore) UpdateRooms(ctx context.Context, id int64, rooms int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, activity := range s.activities {
		if activity.ID == id {
			activity.Rooms = rooms
			return nil
		}
	}
	return entity.ErrActivityNotFound
}

// PlaceRepository

func (s *fakeStore) CreatePlace(ctx context.Context, place *entity.Place) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	place.ID = s.nextID
	s.nextID++
	s.places = append(s.places, place)
	return nil
}

func (s *fakeStore) GetAllPlaces(ctx context.Context) ([]*entity.Place, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entity.Place, len(s.places))
	copy(out, s.places)
	return out, nil
}

// ReservationRepository

func (s *fakeStore) GetByUserAndActivity(ctx context.Context, userID, activityID int64) (*entity.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, res := range s.reservations {
		if res.UserID == userID && res.ActivityID == activityID {
			copied := *res
			return &copied, nil
		}
	}
	return nil, entity.ErrReservationMissing
}

func (s *fakeStore) GetByUserWithActivity(ctx context.Context, userID int64) ([]*entity.ReservationWithActivity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*entity.ReservationWithActivity
	for _, res := range s.reservations {
		if res.UserID != userID {
			continue
		}
		joined := &entity.ReservationWithActivity{Reservation: *res}
		for _, activity := range s.activities {
			if activity.ID == res.ActivityID {
				joined.Activity = *activity
				break
			}
		}
		out = append(out, joined)
	}
	return out, nil
}

func (s *fakeStore) Enroll(ctx context.Context, userID, activityID int64) (*entity.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var activity *entity.Activity
	for _, a := range s.activities {
		if a.ID == activityID {
			activity = a
			break
		}
	}
	if activity == nil {
		return nil, entity.ErrActivityNotFound
	}
	if activity.Rooms <= 0 {
		return nil, entity.ErrNoRooms
	}
	for _, res := range s.reservations {
		if res.UserID == userID && res.ActivityID == activityID {
			return nil, entity.ErrAlreadyEnrolled
		}
	}

	activity.Rooms--
	reservation := &entity.Reservation{
		ID:         s.nextID,
		UserID:     userID,
		ActivityID: activityID,
		CreatedAt:  time.Now(),
	}
	s.nextID++
	s.reservations = append(s.reservations, reservation)
	return reservation, nil
}

// placeRepoView adapts fakeStore to the PlaceRepository method names.
type placeRepoView struct {
	*fakeStore
}

func (v placeRepoView) Create(ctx context.Context, place *entity.Place) error {
	return v.CreatePlace(ctx, place)
}

func (v placeRepoView) GetAll(ctx context.Context) ([]*entity.Place, error) {
	return v.GetAllPlaces(ctx)
}
