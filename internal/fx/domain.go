package fx

import (
	"github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/domain/demo"
	"github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/domain/emissions"
	"github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/domain/gamification"
	"github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/domain/recommendation"

	"go.uber.org/fx"
)

// DomainModule fornece todos os services do domínio.
// Todos são puros e sem estado compartilhado; requisições concorrentes
// não precisam de coordenação.
var DomainModule = fx.Module("domain",
	fx.Provide(
		newEmissionsService,
		newGamificationService,
		newRecommendationService,
		newDemoService,
	),
)

func newEmissionsService() *emissions.Service {
	return emissions.NewService()
}

func newGamificationService() *gamification.Service {
	return gamification.NewService()
}

func newRecommendationService() *recommendation.Service {
	return recommendation.NewService()
}

func newDemoService(
	emissionsSvc *emissions.Service,
	gamificationSvc *gamification.Service,
	recommendationSvc *recommendation.Service,
) *demo.Service {
	return demo.NewService(emissionsSvc, gamificationSvc, recommendationSvc)
}
