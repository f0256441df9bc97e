package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfare/internal/knowledge"
	"wayfare/internal/models/request_models"
	"wayfare/internal/models/response_models"
	"wayfare/internal/models/trip_models"
	"wayfare/internal/repositories"
	mem "wayfare/pkg/memcache"
	"wayfare/pkg/utils"
)

const testOwner = "owner-1"

func newTestTripService(client utils.ChatClientInterface) TripServiceInterface {
	suggestions := NewSuggestionService(knowledge.NewStaticSource(), 42)
	return NewTripService(
		repositories.NewTripSessionRepository(time.Hour),
		NewPlannerService(client, suggestions),
		suggestions,
		NewSpendingService(nil),
		mem.NewShareTokens(),
		"http://localhost:8080",
	)
}

func createTestTrip(t *testing.T, svc TripServiceInterface) *response_models.TripCreateResponse {
	t.Helper()
	resp, err := svc.CreateTrip(context.Background(), testOwner, request_models.CreateTripRequest{
		Destination: "Paris, France",
		StartDate:   "2026-06-01",
		EndDate:     "2026-06-03",
		TripType:    "cultural",
	})
	require.NoError(t, err)
	return resp
}

func TestCreateTripFallbackCoversEveryDay(t *testing.T) {
	svc := newTestTripService(nil)

	resp := createTestTrip(t, svc)

	assert.Equal(t, response_models.PlanSourceFallback, resp.Source)
	assert.NotEmpty(t, resp.Advisory)
	require.Len(t, resp.Days, 3)
	assert.Equal(t, "2026-06-01", resp.Days[0].Date)
	assert.Equal(t, "2026-06-03", resp.Days[2].Date)
	assert.Equal(t, "Trip to Paris, France", resp.Trip.Title)
	for _, day := range resp.Days {
		assert.Equal(t, resp.Trip.ID, day.TripID)
		assert.NotEmpty(t, day.Activities)
	}
}

func TestCreateTripRejectsBadDates(t *testing.T) {
	svc := newTestTripService(nil)

	cases := map[string]request_models.CreateTripRequest{
		"unparseable start": {Destination: "Paris", StartDate: "June 1st", EndDate: "2026-06-03"},
		"end before start":  {Destination: "Paris", StartDate: "2026-06-03", EndDate: "2026-06-01"},
		"too long":          {Destination: "Paris", StartDate: "2026-06-01", EndDate: "2026-08-01"},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.CreateTrip(context.Background(), testOwner, req)
			assert.ErrorIs(t, err, utils.ErrInvalidInput)
		})
	}
}

func TestGetTripEnforcesOwnership(t *testing.T) {
	svc := newTestTripService(nil)
	resp := createTestTrip(t, svc)

	_, err := svc.GetTrip(resp.Trip.ID, "someone-else")
	assert.ErrorIs(t, err, utils.ErrTripNotFound)

	detail, err := svc.GetTrip(resp.Trip.ID, testOwner)
	require.NoError(t, err)
	assert.Equal(t, resp.Trip.ID, detail.Trip.ID)
}

func TestGetTripSortsActivitiesByStartTime(t *testing.T) {
	svc := newTestTripService(nil)
	resp := createTestTrip(t, svc)

	_, err := svc.AddActivity(resp.Trip.ID, testOwner, resp.Days[0].ID, request_models.ActivityRequest{
		Title:     "Early espresso",
		StartTime: "07:30",
		EndTime:   "08:00",
		Category:  "restaurant",
	})
	require.NoError(t, err)

	detail, err := svc.GetTrip(resp.Trip.ID, testOwner)
	require.NoError(t, err)
	assert.Equal(t, "Early espresso", detail.Days[0].Activities[0].Title)
}

func TestActivityCRUD(t *testing.T) {
	svc := newTestTripService(nil)
	resp := createTestTrip(t, svc)
	dayID := resp.Days[0].ID

	added, err := svc.AddActivity(resp.Trip.ID, testOwner, dayID, request_models.ActivityRequest{
		Title:     "Wine tasting",
		StartTime: "17:30",
		EndTime:   "18:30",
		Category:  "activity",
	})
	require.NoError(t, err)
	require.NotEmpty(t, added.ID)
	assert.Equal(t, trip_models.BookedStatusNotBooked, added.BookedStatus)

	updated, err := svc.UpdateActivity(resp.Trip.ID, testOwner, dayID, added.ID, request_models.ActivityRequest{
		Title:        "Champagne tasting",
		StartTime:    "17:30",
		EndTime:      "19:00",
		Category:     "activity",
		BookedStatus: "booked",
	})
	require.NoError(t, err)
	assert.Equal(t, "Champagne tasting", updated.Title)
	assert.Equal(t, trip_models.BookedStatusBooked, updated.BookedStatus)

	require.NoError(t, svc.DeleteActivity(resp.Trip.ID, testOwner, dayID, added.ID))
	err = svc.DeleteActivity(resp.Trip.ID, testOwner, dayID, added.ID)
	assert.ErrorIs(t, err, utils.ErrActivityNotFound)
}

func TestAddActivityRejectsUnknownCategory(t *testing.T) {
	svc := newTestTripService(nil)
	resp := createTestTrip(t, svc)

	_, err := svc.AddActivity(resp.Trip.ID, testOwner, resp.Days[0].ID, request_models.ActivityRequest{
		Title:     "Skydiving",
		StartTime: "10:00",
		EndTime:   "12:00",
		Category:  "extreme",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestUpdateDayNotes(t *testing.T) {
	svc := newTestTripService(nil)
	resp := createTestTrip(t, svc)

	require.NoError(t, svc.UpdateDayNotes(resp.Trip.ID, testOwner, resp.Days[1].ID, "Pack an umbrella"))

	detail, err := svc.GetTrip(resp.Trip.ID, testOwner)
	require.NoError(t, err)
	assert.Equal(t, "Pack an umbrella", detail.Days[1].Notes)

	err = svc.UpdateDayNotes(resp.Trip.ID, testOwner, "missing-day", "x")
	assert.ErrorIs(t, err, utils.ErrDayNotFound)
}

func TestSuggestAlternativeAndUndo(t *testing.T) {
	svc := newTestTripService(nil)
	resp := createTestTrip(t, svc)
	dayID := resp.Days[0].ID
	original := resp.Days[0].Activities[0]
	require.True(t, original.IsAICurated())

	replacement, err := svc.SuggestAlternative(resp.Trip.ID, testOwner, dayID, original.ID)
	require.NoError(t, err)
	assert.Equal(t, original.ID, replacement.ID)
	assert.Equal(t, original.StartTime, replacement.StartTime)
	assert.Equal(t, original.EndTime, replacement.EndTime)

	restored, err := svc.UndoSuggestion(resp.Trip.ID, testOwner, dayID, original.ID)
	require.NoError(t, err)
	assert.Equal(t, original.Title, restored.Title)

	_, err = svc.UndoSuggestion(resp.Trip.ID, testOwner, dayID, original.ID)
	assert.ErrorIs(t, err, utils.ErrNothingToUndo)
}

func TestSuggestAlternativeRejectsManualActivities(t *testing.T) {
	svc := newTestTripService(nil)
	resp := createTestTrip(t, svc)
	dayID := resp.Days[0].ID

	added, err := svc.AddActivity(resp.Trip.ID, testOwner, dayID, request_models.ActivityRequest{
		Title:     "Visit grandma",
		StartTime: "15:00",
		EndTime:   "16:00",
		Category:  "other",
	})
	require.NoError(t, err)

	_, err = svc.SuggestAlternative(resp.Trip.ID, testOwner, dayID, added.ID)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestActivityMapLink(t *testing.T) {
	svc := newTestTripService(nil)
	resp := createTestTrip(t, svc)
	dayID := resp.Days[0].ID

	added, err := svc.AddActivity(resp.Trip.ID, testOwner, dayID, request_models.ActivityRequest{
		Title:     "Dinner",
		Location:  "5 Rue de la Paix, Paris",
		StartTime: "19:00",
		EndTime:   "21:00",
		Category:  "restaurant",
	})
	require.NoError(t, err)

	link, err := svc.ActivityMapLink(resp.Trip.ID, testOwner, dayID, added.ID)
	require.NoError(t, err)
	assert.Contains(t, link, "https://www.google.com/maps/search/")
	assert.Contains(t, link, "Rue+de+la+Paix")

	_, err = svc.ActivityMapLink(resp.Trip.ID, testOwner, dayID, "missing")
	assert.ErrorIs(t, err, utils.ErrActivityNotFound)
}

func TestShareAndResolve(t *testing.T) {
	svc := newTestTripService(nil)
	resp := createTestTrip(t, svc)

	link, err := svc.ShareTrip(resp.Trip.ID, testOwner, request_models.ShareTripRequest{})
	require.NoError(t, err)
	assert.Contains(t, link.ShareURL, link.Token)

	shared, err := svc.ResolveShare(link.Token)
	require.NoError(t, err)
	assert.Equal(t, "Trip to Paris, France", shared.Title)
	assert.Len(t, shared.Days, 3)

	_, err = svc.ResolveShare("bogus-token")
	assert.ErrorIs(t, err, utils.ErrShareTokenNotFound)
}

func TestResolveShareReturnsSnapshotNotLiveState(t *testing.T) {
	svc := newTestTripService(nil)
	resp := createTestTrip(t, svc)
	dayID := resp.Days[0].ID

	added, err := svc.AddActivity(resp.Trip.ID, testOwner, dayID, request_models.ActivityRequest{
		Title:     "Original title",
		StartTime: "16:00",
		EndTime:   "17:00",
		Category:  "activity",
	})
	require.NoError(t, err)

	link, err := svc.ShareTrip(resp.Trip.ID, testOwner, request_models.ShareTripRequest{})
	require.NoError(t, err)
	shared, err := svc.ResolveShare(link.Token)
	require.NoError(t, err)

	_, err = svc.UpdateActivity(resp.Trip.ID, testOwner, dayID, added.ID, request_models.ActivityRequest{
		Title:     "Edited after sharing",
		StartTime: "16:00",
		EndTime:   "17:00",
		Category:  "activity",
	})
	require.NoError(t, err)

	titles := make([]string, 0)
	for _, activity := range shared.Days[0].Activities {
		titles = append(titles, activity.Title)
	}
	assert.Contains(t, titles, "Original title")
	assert.NotContains(t, titles, "Edited after sharing")
}

func TestSharedReadsConcurrentWithOwnerEdits(t *testing.T) {
	svc := newTestTripService(nil)
	resp := createTestTrip(t, svc)
	dayID := resp.Days[0].ID

	added, err := svc.AddActivity(resp.Trip.ID, testOwner, dayID, request_models.ActivityRequest{
		Title:     "Seed",
		StartTime: "16:00",
		EndTime:   "17:00",
		Category:  "activity",
	})
	require.NoError(t, err)

	link, err := svc.ShareTrip(resp.Trip.ID, testOwner, request_models.ShareTripRequest{})
	require.NoError(t, err)

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-done:
				return
			default:
			}
			_, err := svc.UpdateActivity(resp.Trip.ID, testOwner, dayID, added.ID, request_models.ActivityRequest{
				Title:     fmt.Sprintf("Edit %d", i),
				StartTime: "16:00",
				EndTime:   "17:00",
				Category:  "activity",
			})
			if err != nil {
				t.Errorf("update failed: %v", err)
				return
			}
		}
	}()

	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
			}
			shared, err := svc.ResolveShare(link.Token)
			if err != nil {
				t.Errorf("resolve failed: %v", err)
				return
			}
			for _, day := range shared.Days {
				for _, activity := range day.Activities {
					_ = activity.Title
				}
			}
		}
	}()

	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
			}
			if _, err := svc.Summarize(context.Background(), resp.Trip.ID, testOwner); err != nil {
				t.Errorf("summarize failed: %v", err)
				return
			}
		}
	}()

	time.Sleep(100 * time.Millisecond)
	close(done)
	wg.Wait()
}

func TestDeleteTripRevokesShareLinks(t *testing.T) {
	svc := newTestTripService(nil)
	resp := createTestTrip(t, svc)

	link, err := svc.ShareTrip(resp.Trip.ID, testOwner, request_models.ShareTripRequest{})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTrip(resp.Trip.ID, testOwner))

	_, err = svc.GetTrip(resp.Trip.ID, testOwner)
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
	_, err = svc.ResolveShare(link.Token)
	assert.ErrorIs(t, err, utils.ErrShareTokenNotFound)
}

func TestSummarizeTripSpending(t *testing.T) {
	svc := newTestTripService(nil)
	resp := createTestTrip(t, svc)

	summary, err := svc.Summarize(context.Background(), resp.Trip.ID, testOwner)
	require.NoError(t, err)
	assert.Greater(t, summary.Summary.TotalBudget, 0.0)
	assert.NotEmpty(t, summary.Summary.CategoryBreakdown)

	_, err = svc.Summarize(context.Background(), resp.Trip.ID, "someone-else")
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}
