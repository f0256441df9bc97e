package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"wayfare/internal/models/request_models"
	"wayfare/internal/models/response_models"
	"wayfare/internal/models/trip_models"
	"wayfare/internal/repositories"
	mem "wayfare/pkg/memcache"
	"wayfare/pkg/utils"
)

const (
	defaultShareTTLHours = 72
	maxTripDays          = 30

	fallbackAdvisory = "The AI planner was unavailable, so a starter itinerary was generated from local destination knowledge. You can edit every activity."
)

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, ownerID string, req request_models.CreateTripRequest) (*response_models.TripCreateResponse, error)
	GetTrip(tripID string, ownerID string) (*response_models.TripDetailResponse, error)
	DeleteTrip(tripID string, ownerID string) error

	AddActivity(tripID string, ownerID string, dayID string, req request_models.ActivityRequest) (*trip_models.Activity, error)
	UpdateActivity(tripID string, ownerID string, dayID string, activityID string, req request_models.ActivityRequest) (*trip_models.Activity, error)
	DeleteActivity(tripID string, ownerID string, dayID string, activityID string) error
	UpdateDayNotes(tripID string, ownerID string, dayID string, notes string) error

	ActivityMapLink(tripID string, ownerID string, dayID string, activityID string) (string, error)

	SuggestAlternative(tripID string, ownerID string, dayID string, activityID string) (*trip_models.Activity, error)
	UndoSuggestion(tripID string, ownerID string, dayID string, activityID string) (*trip_models.Activity, error)

	ShareTrip(tripID string, ownerID string, req request_models.ShareTripRequest) (*response_models.ShareLinkResponse, error)
	ResolveShare(token string) (*response_models.SharedTripResponse, error)

	Summarize(ctx context.Context, tripID string, ownerID string) (*response_models.SpendingResponse, error)
}

type TripService struct {
	sessions    repositories.TripSessionRepositoryInterface
	planner     PlannerServiceInterface
	suggestions SuggestionServiceInterface
	spending    SpendingServiceInterface
	shareTokens mem.ShareTokenStore
	shareBase   string

	// One mutex across all sessions; mutations are short and cheap.
	mu sync.Mutex
}

func NewTripService(
	sessions repositories.TripSessionRepositoryInterface,
	planner PlannerServiceInterface,
	suggestions SuggestionServiceInterface,
	spending SpendingServiceInterface,
	shareTokens mem.ShareTokenStore,
	shareBase string,
) TripServiceInterface {
	return &TripService{
		sessions:    sessions,
		planner:     planner,
		suggestions: suggestions,
		spending:    spending,
		shareTokens: shareTokens,
		shareBase:   shareBase,
	}
}

func (s *TripService) CreateTrip(ctx context.Context, ownerID string, req request_models.CreateTripRequest) (*response_models.TripCreateResponse, error) {
	params, err := buildTripParameters(req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	trip := trip_models.Trip{
		ID:            uuid.New().String(),
		Title:         fmt.Sprintf("Trip to %s", params.Destination),
		Destination:   params.Destination,
		StartDate:     utils.FormatDate(params.StartDate),
		EndDate:       utils.FormatDate(params.EndDate),
		TripType:      params.TripType,
		Collaborators: params.Collaborators,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	shells := lo.Map(utils.DateSpan(params.StartDate, params.EndDate), func(date time.Time, _ int) trip_models.DayItinerary {
		return trip_models.DayItinerary{
			ID:     uuid.New().String(),
			TripID: trip.ID,
			Date:   utils.FormatDate(date),
		}
	})

	session := &repositories.TripSession{
		Trip:       trip,
		TripType:   params.TripType,
		OwnerID:    ownerID,
		Generating: true,
		UndoStacks: make(map[string][]trip_models.Activity),
	}
	s.sessions.Put(session)

	result := s.planner.GeneratePlan(ctx, params, trip, shells)

	s.mu.Lock()
	session.Days = result.Days
	session.Insights = result.Insights
	session.Source = result.Source
	session.Generating = false
	s.mu.Unlock()
	s.sessions.Put(session)

	log.Printf("trip %s created for %s, %d days, source=%s", trip.ID, params.Destination, len(result.Days), result.Source)

	resp := &response_models.TripCreateResponse{
		Trip:     trip,
		Days:     result.Days,
		Insights: result.Insights,
		Source:   result.Source,
	}
	if result.Source == response_models.PlanSourceFallback {
		resp.Advisory = fallbackAdvisory
	}
	return resp, nil
}

func buildTripParameters(req request_models.CreateTripRequest) (trip_models.TripParameters, error) {
	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return trip_models.TripParameters{}, fmt.Errorf("%w: start_date must be YYYY-MM-DD", utils.ErrInvalidInput)
	}
	end, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return trip_models.TripParameters{}, fmt.Errorf("%w: end_date must be YYYY-MM-DD", utils.ErrInvalidInput)
	}
	if end.Before(start) {
		return trip_models.TripParameters{}, fmt.Errorf("%w: end_date before start_date", utils.ErrInvalidInput)
	}
	if utils.InclusiveDays(start, end) > maxTripDays {
		return trip_models.TripParameters{}, fmt.Errorf("%w: trips are limited to %d days", utils.ErrInvalidInput, maxTripDays)
	}

	return trip_models.TripParameters{
		Destination:   req.Destination,
		StartDate:     start,
		EndDate:       end,
		TripType:      trip_models.TripType(req.TripType),
		Collaborators: req.Collaborators,
	}, nil
}

func (s *TripService) GetTrip(tripID string, ownerID string) (*response_models.TripDetailResponse, error) {
	session, err := s.ownedSession(tripID, ownerID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	days := snapshotDays(session.Days)
	for i := range days {
		sort.SliceStable(days[i].Activities, func(a, b int) bool {
			return days[i].Activities[a].StartTime < days[i].Activities[b].StartTime
		})
	}

	return &response_models.TripDetailResponse{
		Trip:     session.Trip,
		Days:     days,
		Insights: session.Insights,
		Source:   session.Source,
	}, nil
}

func (s *TripService) DeleteTrip(tripID string, ownerID string) error {
	if _, err := s.ownedSession(tripID, ownerID); err != nil {
		return err
	}
	s.shareTokens.Revoke(tripID)
	s.sessions.Delete(tripID)
	return nil
}

func (s *TripService) AddActivity(tripID string, ownerID string, dayID string, req request_models.ActivityRequest) (*trip_models.Activity, error) {
	activity, err := activityFromRequest(req)
	if err != nil {
		return nil, err
	}
	activity.ID = uuid.New().String()

	err = s.mutateDay(tripID, ownerID, dayID, func(_ *repositories.TripSession, day *trip_models.DayItinerary) error {
		day.Activities = append(day.Activities, *activity)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *TripService) UpdateActivity(tripID string, ownerID string, dayID string, activityID string, req request_models.ActivityRequest) (*trip_models.Activity, error) {
	updated, err := activityFromRequest(req)
	if err != nil {
		return nil, err
	}
	updated.ID = activityID

	err = s.mutateDay(tripID, ownerID, dayID, func(_ *repositories.TripSession, day *trip_models.DayItinerary) error {
		idx := indexOfActivity(day.Activities, activityID)
		if idx < 0 {
			return utils.ErrActivityNotFound
		}
		day.Activities[idx] = *updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *TripService) DeleteActivity(tripID string, ownerID string, dayID string, activityID string) error {
	return s.mutateDay(tripID, ownerID, dayID, func(session *repositories.TripSession, day *trip_models.DayItinerary) error {
		idx := indexOfActivity(day.Activities, activityID)
		if idx < 0 {
			return utils.ErrActivityNotFound
		}
		day.Activities = append(day.Activities[:idx], day.Activities[idx+1:]...)
		delete(session.UndoStacks, activityID)
		return nil
	})
}

func (s *TripService) UpdateDayNotes(tripID string, ownerID string, dayID string, notes string) error {
	return s.mutateDay(tripID, ownerID, dayID, func(_ *repositories.TripSession, day *trip_models.DayItinerary) error {
		day.Notes = notes
		return nil
	})
}

// ActivityMapLink resolves a maps search URL for the activity's location,
// falling back to its title when no location was recorded.
func (s *TripService) ActivityMapLink(tripID string, ownerID string, dayID string, activityID string) (string, error) {
	session, err := s.ownedSession(tripID, ownerID)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range session.Days {
		if session.Days[i].ID != dayID {
			continue
		}
		idx := indexOfActivity(session.Days[i].Activities, activityID)
		if idx < 0 {
			return "", utils.ErrActivityNotFound
		}
		activity := session.Days[i].Activities[idx]
		address := activity.Location
		if address == "" {
			address = activity.Title
		}
		return utils.MapSearchURL(address), nil
	}
	return "", utils.ErrDayNotFound
}

func (s *TripService) SuggestAlternative(tripID string, ownerID string, dayID string, activityID string) (*trip_models.Activity, error) {
	var replacement trip_models.Activity

	err := s.mutateDay(tripID, ownerID, dayID, func(session *repositories.TripSession, day *trip_models.DayItinerary) error {
		idx := indexOfActivity(day.Activities, activityID)
		if idx < 0 {
			return utils.ErrActivityNotFound
		}
		current := day.Activities[idx]
		if !current.IsAICurated() {
			return fmt.Errorf("%w: alternatives are only offered for generated activities", utils.ErrInvalidInput)
		}

		dayNumber := dayNumberOf(session.Days, dayID)
		replacement = s.suggestions.ReplaceActivity(session.Trip.Destination, session.TripType, dayNumber, current)

		session.UndoStacks[activityID] = append(session.UndoStacks[activityID], current)
		day.Activities[idx] = replacement
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &replacement, nil
}

func (s *TripService) UndoSuggestion(tripID string, ownerID string, dayID string, activityID string) (*trip_models.Activity, error) {
	var restored trip_models.Activity

	err := s.mutateDay(tripID, ownerID, dayID, func(session *repositories.TripSession, day *trip_models.DayItinerary) error {
		idx := indexOfActivity(day.Activities, activityID)
		if idx < 0 {
			return utils.ErrActivityNotFound
		}

		stack := session.UndoStacks[activityID]
		if len(stack) == 0 {
			return utils.ErrNothingToUndo
		}
		restored = stack[len(stack)-1]
		session.UndoStacks[activityID] = stack[:len(stack)-1]

		day.Activities[idx] = restored
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &restored, nil
}

func (s *TripService) ShareTrip(tripID string, ownerID string, req request_models.ShareTripRequest) (*response_models.ShareLinkResponse, error) {
	if _, err := s.ownedSession(tripID, ownerID); err != nil {
		return nil, err
	}

	ttlHours := req.TTLHours
	if ttlHours <= 0 {
		ttlHours = defaultShareTTLHours
	}

	token, err := utils.GenerateSecureToken(16)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	s.shareTokens.Set(token, tripID, time.Duration(ttlHours)*time.Hour)

	return &response_models.ShareLinkResponse{
		Token:    token,
		ShareURL: fmt.Sprintf("%s/shared/%s", s.shareBase, token),
	}, nil
}

func (s *TripService) ResolveShare(token string) (*response_models.SharedTripResponse, error) {
	tripID := s.shareTokens.Resolve(token)
	if tripID == "" {
		return nil, utils.ErrShareTokenNotFound
	}

	session, found := s.sessions.Get(tripID)
	if !found {
		return nil, utils.ErrShareTokenNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	start, _ := utils.ParseDate(session.Trip.StartDate)
	end, _ := utils.ParseDate(session.Trip.EndDate)

	return &response_models.SharedTripResponse{
		Title:       session.Trip.Title,
		Destination: session.Trip.Destination,
		DateRange:   utils.FormatDateRange(start, end),
		Days:        snapshotDays(session.Days),
	}, nil
}

func (s *TripService) Summarize(ctx context.Context, tripID string, ownerID string) (*response_models.SpendingResponse, error) {
	session, err := s.ownedSession(tripID, ownerID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	days := snapshotDays(session.Days)
	destination := session.Trip.Destination
	s.mu.Unlock()

	summary := s.spending.Summarize(ctx, destination, days)
	return &response_models.SpendingResponse{Summary: summary}, nil
}

// snapshotDays deep-copies days down to the activity elements. Every read
// path that outlives the session lock must return a snapshot, never the
// live slices, since mutateDay keeps writing them under the lock.
func snapshotDays(days []trip_models.DayItinerary) []trip_models.DayItinerary {
	out := make([]trip_models.DayItinerary, len(days))
	copy(out, days)
	for i := range out {
		activities := make([]trip_models.Activity, len(out[i].Activities))
		copy(activities, out[i].Activities)
		out[i].Activities = activities
	}
	return out
}

// ownedSession resolves a session and enforces ownership. Unknown trips and
// trips owned by someone else are indistinguishable to the caller.
func (s *TripService) ownedSession(tripID string, ownerID string) (*repositories.TripSession, error) {
	session, found := s.sessions.Get(tripID)
	if !found || session.OwnerID != ownerID {
		return nil, utils.ErrTripNotFound
	}
	return session, nil
}

// mutateDay runs fn on the addressed day under the session lock and persists
// the session afterwards. Mutations are rejected while the plan pipeline is
// still populating the session.
func (s *TripService) mutateDay(tripID string, ownerID string, dayID string, fn func(*repositories.TripSession, *trip_models.DayItinerary) error) error {
	session, err := s.ownedSession(tripID, ownerID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if session.Generating {
		return fmt.Errorf("%w: itinerary is still being generated", utils.ErrInvalidInput)
	}

	for i := range session.Days {
		if session.Days[i].ID == dayID {
			if err := fn(session, &session.Days[i]); err != nil {
				return err
			}
			session.Trip.UpdatedAt = time.Now()
			s.sessions.Put(session)
			return nil
		}
	}
	return utils.ErrDayNotFound
}

func activityFromRequest(req request_models.ActivityRequest) (*trip_models.Activity, error) {
	category := trip_models.ActivityCategory(req.Category)
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", utils.ErrInvalidInput, req.Category)
	}

	status := trip_models.BookedStatus(req.BookedStatus)
	switch status {
	case trip_models.BookedStatusNotBooked, trip_models.BookedStatusBooked, trip_models.BookedStatusConfirmed:
	case "":
		status = trip_models.BookedStatusNotBooked
	default:
		return nil, fmt.Errorf("%w: unknown booked status %q", utils.ErrInvalidInput, req.BookedStatus)
	}

	return &trip_models.Activity{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Category:     category,
		Notes:        req.Notes,
		Cost:         req.Cost,
		BookedStatus: status,
	}, nil
}

func indexOfActivity(activities []trip_models.Activity, activityID string) int {
	_, idx, found := lo.FindIndexOf(activities, func(a trip_models.Activity) bool { return a.ID == activityID })
	if !found {
		return -1
	}
	return idx
}

func dayNumberOf(days []trip_models.DayItinerary, dayID string) int {
	for i := range days {
		if days[i].ID == dayID {
			return i + 1
		}
	}
	return 1
}
