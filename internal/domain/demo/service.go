package demo

import (
	"context"
	"fmt"

	"github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/domain/emissions"
	"github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/domain/gamification"
	"github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/domain/recommendation"
	"github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/pkg"
)

// Service executa o ciclo completo de demonstração:
// emissões → gamificação → prompt de recomendações.
type Service struct {
	Emissions      *emissions.Service
	Gamification   *gamification.Service
	Recommendation *recommendation.Service
}

func NewService(
	emissionsSvc *emissions.Service,
	gamificationSvc *gamification.Service,
	recommendationSvc *recommendation.Service,
) *Service {
	return &Service{
		Emissions:      emissionsSvc,
		Gamification:   gamificationSvc,
		Recommendation: recommendationSvc,
	}
}

type RunRequest struct {
	TransportMode string
	Distance      float64
	FoodType      string
	FoodQuantity  float64
	EnergyKwh     float64
}

type RunResult struct {
	TransportEmission    float64
	FoodEmission         float64
	EnergyEmission       float64
	TotalEmission        float64
	DailyScore           int
	Badges               []gamification.Badge
	RecommendationPrompt string
}

// Run calcula as três emissões individualmente (valores únicos, não
// listas), deriva nota e conquistas do total sem arredondamento e monta
// o prompt a partir do detalhamento em 2 casas. No prompt o total
// exibido é a soma das categorias já arredondadas — distinção herdada
// do fluxo original e preservada de propósito.
func (s *Service) Run(ctx context.Context, req *RunRequest) (*RunResult, error) {
	transportEmission := s.Emissions.TransportEmissions(req.TransportMode, req.Distance, nil)
	foodEmission := s.Emissions.FoodEmissions(req.FoodType, req.FoodQuantity, nil)
	// A requisição só informa o consumo; o tipo é sempre electricity.
	energyEmission := s.Emissions.EnergyEmissions("electricity", req.EnergyKwh, nil)

	totalEmission := transportEmission + foodEmission + energyEmission

	breakdown := recommendation.Breakdown{
		Transport: pkg.Round(transportEmission, 2),
		Food:      pkg.Round(foodEmission, 2),
		Energy:    pkg.Round(energyEmission, 2),
		Total:     pkg.Round(totalEmission, 2),
	}

	dailyScore := s.Gamification.DailyScore(totalEmission)
	// streak fixo em 1 dia: a demo não acompanha histórico de atividade
	badges := s.Gamification.Badges(totalEmission, 1, transportEmission, req.EnergyKwh)

	habitSummary := fmt.Sprintf(
		"I traveled %gkm by %s, consumed %gkg of %s, and used %gkWh of electricity.",
		req.Distance, req.TransportMode, req.FoodQuantity, req.FoodType, req.EnergyKwh,
	)
	prompt := s.Recommendation.BuildRecommendationPrompt(breakdown, habitSummary)

	return &RunResult{
		TransportEmission:    pkg.Round(transportEmission, 4),
		FoodEmission:         pkg.Round(foodEmission, 4),
		EnergyEmission:       pkg.Round(energyEmission, 4),
		TotalEmission:        pkg.Round(totalEmission, 4),
		DailyScore:           dailyScore,
		Badges:               badges,
		RecommendationPrompt: prompt,
	}, nil
}
