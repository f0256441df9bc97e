package trip_fx

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/fx"

	"wayfare/internal/api/controllers"
	"wayfare/internal/repositories"
	"wayfare/internal/services"
	mem "wayfare/pkg/memcache"
)

const defaultSessionTTLHours = 24

var Module = fx.Provide(
	provideTripSessionRepo,
	provideTripService,
	provideTripController,
	provideSpendingController)

func provideTripSessionRepo() repositories.TripSessionRepositoryInterface {
	ttlHours := defaultSessionTTLHours
	if raw := os.Getenv("SESSION_TTL_HOURS"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			ttlHours = parsed
		}
	}
	return repositories.NewTripSessionRepository(time.Duration(ttlHours) * time.Hour)
}

func provideTripService(
	sessions repositories.TripSessionRepositoryInterface,
	planner services.PlannerServiceInterface,
	suggestions services.SuggestionServiceInterface,
	spending services.SpendingServiceInterface,
	shareTokens mem.ShareTokenStore,
) services.TripServiceInterface {
	shareBase := os.Getenv("SHARE_BASE_URL")
	if shareBase == "" {
		shareBase = "http://localhost:" + os.Getenv("PORT")
	}
	return services.NewTripService(sessions, planner, suggestions, spending, shareTokens, shareBase)
}

func provideTripController(tripService services.TripServiceInterface) *controllers.TripController {
	return controllers.NewTripController(tripService)
}

func provideSpendingController(tripService services.TripServiceInterface) *controllers.SpendingController {
	return controllers.NewSpendingController(tripService)
}
