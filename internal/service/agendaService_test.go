package service

import (
	"context"
	"testing"
	"time"

	"github.com/ds124wfegd/activity-registration/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByPlaceKeepsPlaceOrder(t *testing.T) {
	store := newFakeStore()
	placeA := store.addPlace("Auditorium A")
	store.addPlace("Auditorium B")

	opening := store.addActivity("Opening Talk", placeA.ID, at(1, 9), at(1, 10), 30)
	store.addActivity("Go Basics", placeA.ID, at(1, 10), at(1, 12), 20)

	svc := NewAgendaService(store, placeRepoView{store}, nil)

	activities, err := store.GetAll(context.Background())
	require.NoError(t, err)

	groups, err := svc.GroupByPlace(context.Background(), activities)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "Auditorium A", groups[0].Name)
	assert.Equal(t, "Auditorium B", groups[1].Name)

	// Place B has no activities but still gets an (empty) group
	require.Len(t, groups[0].Activities, 2)
	assert.Empty(t, groups[1].Activities)
	assert.NotNil(t, groups[1].Activities)

	// Timestamps are replaced by formatted local time of day, input order kept
	assert.Equal(t, entity.ActivitySlot{
		ID:       opening.ID,
		Name:     "Opening Talk",
		StartsAt: "09:00",
		EndsAt:   "10:00",
		Rooms:    30,
	}, groups[0].Activities[0])
	assert.Equal(t, "Go Basics", groups[0].Activities[1].Name)
}

func TestGroupByPlaceUnknownPlace(t *testing.T) {
	store := newFakeStore()
	store.addPlace("Auditorium A")

	orphan := &entity.Activity{
		ID:       99,
		Name:     "Ghost Talk",
		StartsAt: at(1, 9),
		EndsAt:   at(1, 10),
		PlaceID:  1234,
	}

	svc := NewAgendaService(store, placeRepoView{store}, nil)

	_, err := svc.GroupByPlace(context.Background(), []*entity.Activity{orphan})
	assert.ErrorIs(t, err, entity.ErrUnknownPlace)
}

func TestDistinctDaysFirstSeenOrder(t *testing.T) {
	store := newFakeStore()
	place := store.addPlace("Hall")

	// Creation order deliberately not chronological
	a1 := store.addActivity("Talk 1", place.ID, time.Date(2024, 1, 2, 9, 0, 0, 0, time.Local), time.Date(2024, 1, 2, 10, 0, 0, 0, time.Local), 5)
	a2 := store.addActivity("Talk 2", place.ID, time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local), time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local), 5)
	a3 := store.addActivity("Talk 3", place.ID, time.Date(2024, 1, 2, 11, 0, 0, 0, time.Local), time.Date(2024, 1, 2, 12, 0, 0, 0, time.Local), 5)

	svc := NewAgendaService(store, placeRepoView{store}, nil)

	days, err := svc.DistinctDays(context.Background(), []*entity.Activity{a1, a2, a3})
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-02", "2024-01-01"}, days)
}

func TestDistinctDaysLoadsStoreWhenNil(t *testing.T) {
	store := newFakeStore()
	place := store.addPlace("Hall")
	store.addActivity("Talk", place.ID, at(5, 9), at(5, 10), 5)

	svc := NewAgendaService(store, placeRepoView{store}, nil)

	days, err := svc.DistinctDays(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-05"}, days)
}

func TestSummarizeSingleDay(t *testing.T) {
	store := newFakeStore()
	place := store.addPlace("Hall")
	store.addActivity("Morning", place.ID, at(1, 9), at(1, 12), 5)
	store.addActivity("Afternoon", place.ID, at(1, 13), at(1, 17), 5)

	svc := NewAgendaService(store, placeRepoView{store}, nil)

	summary, err := svc.Summarize(context.Background())
	require.NoError(t, err)
	require.NotNil(t, summary)

	// One day from 09:00 to 17:00 counts as 8 active hours
	assert.Equal(t, 2024, summary.Year)
	assert.Equal(t, 1, summary.StartDay)
	assert.Equal(t, 3, summary.StartMonth)
	assert.Equal(t, 1, summary.EndDay)
	assert.Equal(t, 3, summary.EndMonth)
	assert.InDelta(t, 8.0, summary.TotalHours, 0.001)
}

func TestSummarizeMultipleDays(t *testing.T) {
	store := newFakeStore()
	place := store.addPlace("Hall")
	// Day 1: 09:00-17:00 (8h), day 3: 10:00-12:30 (2.5h)
	store.addActivity("D1 Morning", place.ID, at(1, 9), at(1, 12), 5)
	store.addActivity("D1 Afternoon", place.ID, at(1, 14), at(1, 17), 5)
	store.addActivity("D3 Talk", place.ID,
		time.Date(2024, 3, 3, 10, 0, 0, 0, time.Local),
		time.Date(2024, 3, 3, 12, 30, 0, 0, time.Local), 5)

	svc := NewAgendaService(store, placeRepoView{store}, nil)

	summary, err := svc.Summarize(context.Background())
	require.NoError(t, err)
	require.NotNil(t, summary)

	assert.Equal(t, 1, summary.StartDay)
	assert.Equal(t, 3, summary.EndDay)
	assert.Equal(t, 3, summary.EndMonth)
	assert.InDelta(t, 10.5, summary.TotalHours, 0.001)
}

func TestSummarizeEmpty(t *testing.T) {
	store := newFakeStore()
	svc := NewAgendaService(store, placeRepoView{store}, nil)

	summary, err := svc.Summarize(context.Background())
	require.NoError(t, err)
	assert.Nil(t, summary)
}

func TestGetByDateFiltersByDayBounds(t *testing.T) {
	store := newFakeStore()
	place := store.addPlace("Hall")
	store.addActivity("In Range", place.ID,
		time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local),
		time.Date(2024, 3, 1, 10, 0, 0, 0, time.Local), 5)
	store.addActivity("Next Day", place.ID,
		time.Date(2024, 3, 2, 0, 30, 0, 0, time.Local),
		time.Date(2024, 3, 2, 1, 30, 0, 0, time.Local), 5)
	store.addActivity("Previous Day", place.ID,
		time.Date(2024, 2, 29, 23, 0, 0, 0, time.Local),
		time.Date(2024, 2, 29, 23, 45, 0, 0, time.Local), 5)

	svc := NewAgendaService(store, placeRepoView{store}, nil)

	groups, err := svc.GetByDate(context.Background(), "2024-03-01")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Activities, 1)
	assert.Equal(t, "In Range", groups[0].Activities[0].Name)
}

func TestGetByDateBadInput(t *testing.T) {
	store := newFakeStore()
	svc := NewAgendaService(store, placeRepoView{store}, nil)

	_, err := svc.GetByDate(context.Background(), "03/01/2024")
	assert.ErrorIs(t, err, entity.ErrInvalidInput)
}
