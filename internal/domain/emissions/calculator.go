package emissions

import (
	"context"
	"strings"

	"github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/pkg"
)

type TransportEntry struct {
	Mode     string
	Distance float64
}

type FoodEntry struct {
	Type     string
	Quantity float64
}

type EnergyEntry struct {
	Type string
	Kwh  float64
}

// Breakdown traz os totais por categoria já arredondados para apresentação.
type Breakdown struct {
	Transport float64 `json:"transport"`
	Food      float64 `json:"food"`
	Energy    float64 `json:"energy"`
}

type FootprintResult struct {
	TotalKgCO2e float64   `json:"total_kg_co2e"`
	Breakdown   Breakdown `json:"breakdown"`
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// TransportEmissions calcula a emissão de transporte em kg CO2e.
// Modo desconhecido resolve para fator 0.0 sem erro — degradação
// silenciosa da qual os consumidores dependem. Distância negativa é
// responsabilidade de quem chama.
func (s *Service) TransportEmissions(mode string, distanceKm float64, factors Table) float64 {
	if factors == nil {
		factors = DefaultFactors.Transport
	}
	return distanceKm * factors[strings.ToLower(mode)]
}

// FoodEmissions calcula a emissão de alimentação em kg CO2e.
func (s *Service) FoodEmissions(foodType string, quantityKg float64, factors Table) float64 {
	if factors == nil {
		factors = DefaultFactors.Food
	}
	return quantityKg * factors[strings.ToLower(foodType)]
}

// EnergyEmissions calcula a emissão de energia em kg CO2e.
func (s *Service) EnergyEmissions(energyType string, kwh float64, factors Table) float64 {
	if factors == nil {
		factors = DefaultFactors.Energy
	}
	return kwh * factors[strings.ToLower(energyType)]
}

// TotalFootprint soma as emissões das listas de atividades e devolve o
// total com o detalhamento por categoria. O total é calculado sobre as
// somas sem arredondamento; o arredondamento (4 casas) acontece só na
// montagem do resultado.
func (s *Service) TotalFootprint(
	ctx context.Context,
	transport []TransportEntry,
	food []FoodEntry,
	energy []EnergyEntry,
	custom *Catalog,
) (*FootprintResult, error) {
	var tFactors, fFactors, eFactors Table
	if custom != nil {
		tFactors = custom.Transport
		fFactors = custom.Food
		eFactors = custom.Energy
	}

	var transportTotal float64
	for _, e := range transport {
		transportTotal += s.TransportEmissions(e.Mode, e.Distance, tFactors)
	}

	var foodTotal float64
	for _, e := range food {
		foodTotal += s.FoodEmissions(e.Type, e.Quantity, fFactors)
	}

	var energyTotal float64
	for _, e := range energy {
		energyTotal += s.EnergyEmissions(e.Type, e.Kwh, eFactors)
	}

	total := transportTotal + foodTotal + energyTotal

	return &FootprintResult{
		TotalKgCO2e: pkg.Round(total, 4),
		Breakdown: Breakdown{
			Transport: pkg.Round(transportTotal, 4),
			Food:      pkg.Round(foodTotal, 4),
			Energy:    pkg.Round(energyTotal, 4),
		},
	}, nil
}
