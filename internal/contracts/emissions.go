package contracts

// TransportRequest corpo de POST /transport
type TransportRequest struct {
	Mode     string  `json:"mode" binding:"required"`
	Distance float64 `json:"distance"`
}

// FoodRequest corpo de POST /food
type FoodRequest struct {
	Type     string  `json:"type" binding:"required"`
	Quantity float64 `json:"quantity"`
}

// EnergyRequest corpo de POST /energy
type EnergyRequest struct {
	Type string  `json:"type" binding:"required"`
	Kwh  float64 `json:"kwh"`
}

// EmissionResponse resposta das três rotas de categoria única
type EmissionResponse struct {
	CarbonFootprintKg float64 `json:"carbon_footprint_kg"`
}

type TransportEntryRequest struct {
	Mode     string  `json:"mode" binding:"required"`
	Distance float64 `json:"distance"`
}

type FoodEntryRequest struct {
	Type     string  `json:"type" binding:"required"`
	Quantity float64 `json:"quantity"`
}

type EnergyEntryRequest struct {
	Type string  `json:"type" binding:"required"`
	Kwh  float64 `json:"kwh"`
}

// CustomFactorsRequest tem o mesmo formato do catálogo default.
// Categorias ausentes caem nas tabelas embutidas.
type CustomFactorsRequest struct {
	Transport map[string]float64 `json:"transport"`
	Food      map[string]float64 `json:"food"`
	Energy    map[string]float64 `json:"energy"`
}

// TotalCalculationRequest corpo de POST /calculate-total
type TotalCalculationRequest struct {
	Transport     []TransportEntryRequest `json:"transport"`
	Food          []FoodEntryRequest      `json:"food"`
	Energy        []EnergyEntryRequest    `json:"energy"`
	CustomFactors *CustomFactorsRequest   `json:"custom_factors,omitempty"`
}

type BreakdownResponse struct {
	Transport float64 `json:"transport"`
	Food      float64 `json:"food"`
	Energy    float64 `json:"energy"`
}

type TotalCalculationResponse struct {
	TotalKgCO2e float64           `json:"total_kg_co2e"`
	Breakdown   BreakdownResponse `json:"breakdown"`
}

// FactorsResponse expõe o catálogo default para consulta dos clientes.
type FactorsResponse struct {
	Transport map[string]float64 `json:"transport"`
	Food      map[string]float64 `json:"food"`
	Energy    map[string]float64 `json:"energy"`
}
