package fx

import (
	"time"

	"github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/domain/demo"
	"github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/domain/emissions"
	"github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/domain/gamification"
	"github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/domain/recommendation"
	"github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/middleware"
	"github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/routes"

	"go.uber.org/fx"
)

// RoutesModule fornece o handler e o rate limiter
var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
		newAPIRateLimiter,
	),
)

func newHandler(
	emissionsSvc *emissions.Service,
	gamificationSvc *gamification.Service,
	recommendationSvc *recommendation.Service,
	demoSvc *demo.Service,
) *routes.Handler {
	return &routes.Handler{
		EmissionsService:      emissionsSvc,
		GamificationService:   gamificationSvc,
		RecommendationService: recommendationSvc,
		DemoService:           demoSvc,
	}
}

func newAPIRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(100, time.Minute)
}
