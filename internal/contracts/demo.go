package contracts

// DemoRunRequest corpo de POST /api/demo-run
type DemoRunRequest struct {
	TransportMode string  `json:"transport_mode" binding:"required"`
	Distance      float64 `json:"distance"`
	FoodType      string  `json:"food_type" binding:"required"`
	FoodQuantity  float64 `json:"food_quantity"`
	EnergyKwh     float64 `json:"energy_kwh"`
}

type DemoRunResponse struct {
	TransportEmission    float64         `json:"transport_emission"`
	FoodEmission         float64         `json:"food_emission"`
	EnergyEmission       float64         `json:"energy_emission"`
	TotalEmission        float64         `json:"total_emission"`
	DailyScore           int             `json:"daily_score"`
	Badges               []BadgeResponse `json:"badges"`
	RecommendationPrompt string          `json:"recommendation_prompt"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
