package repositories

import (
	"time"

	"github.com/patrickmn/go-cache"

	"wayfare/internal/models/response_models"
	"wayfare/internal/models/trip_models"
)

// TripSession is the full working state of one planned trip. Sessions live
// in process memory for the lifetime of the planning flow.
type TripSession struct {
	Trip     trip_models.Trip
	TripType trip_models.TripType
	Days     []trip_models.DayItinerary
	Insights response_models.TripInsights
	Source   response_models.PlanSource
	OwnerID  string

	// Generating is set while the plan pipeline is running so the session
	// is visible but not yet editable.
	Generating bool

	// UndoStacks keeps prior versions of activities replaced through the
	// suggest-alternative flow, keyed by activity id.
	UndoStacks map[string][]trip_models.Activity
}

type TripSessionRepositoryInterface interface {
	Put(session *TripSession)
	Get(tripID string) (*TripSession, bool)
	Delete(tripID string)
}

type TripSessionRepository struct {
	store *cache.Cache
}

func NewTripSessionRepository(ttl time.Duration) TripSessionRepositoryInterface {
	return &TripSessionRepository{
		store: cache.New(ttl, 10*time.Minute),
	}
}

func (r *TripSessionRepository) Put(session *TripSession) {
	r.store.Set(session.Trip.ID, session, cache.DefaultExpiration)
}

func (r *TripSessionRepository) Get(tripID string) (*TripSession, bool) {
	raw, found := r.store.Get(tripID)
	if !found {
		return nil, false
	}
	return raw.(*TripSession), true
}

func (r *TripSessionRepository) Delete(tripID string) {
	r.store.Delete(tripID)
}
