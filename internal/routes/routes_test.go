package routes_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/domain/demo"
	"github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/domain/emissions"
	"github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/domain/gamification"
	"github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/domain/recommendation"
	"github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/middleware"
	"github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/routes"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	emissionsSvc := emissions.NewService()
	gamificationSvc := gamification.NewService()
	recommendationSvc := recommendation.NewService()

	handler := &routes.Handler{
		EmissionsService:      emissionsSvc,
		GamificationService:   gamificationSvc,
		RecommendationService: recommendationSvc,
		DemoService:           demo.NewService(emissionsSvc, gamificationSvc, recommendationSvc),
	}

	router := gin.New()
	router.Use(middleware.CORSMiddleware([]string{"*"}))
	router.Use(middleware.RequestID())

	router.POST("/transport", handler.TransportEmissions)
	router.POST("/food", handler.FoodEmissions)
	router.POST("/energy", handler.EnergyEmissions)
	router.POST("/calculate-total", handler.CalculateTotal)
	router.GET("/health", handler.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/demo-run", handler.DemoRun)
		api.GET("/factors", handler.ListFactors)
		api.POST("/gamification/streak", handler.WeeklyStreak)
		api.GET("/gamification/level", handler.ProgressLevel)
	}

	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestTransportEndpoint(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodPost, "/transport", `{"mode":"car","distance":10}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]float64
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("resposta inválida: %v", err)
	}
	if resp["carbon_footprint_kg"] != 1.7 {
		t.Errorf("carbon_footprint_kg = %v, esperado 1.7", resp["carbon_footprint_kg"])
	}
}

func TestTransportEndpointUnknownModeIsNotAnError(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodPost, "/transport", `{"mode":"teleport","distance":500}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200", rec.Code)
	}

	var resp map[string]float64
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("resposta inválida: %v", err)
	}
	if resp["carbon_footprint_kg"] != 0 {
		t.Errorf("modo desconhecido deveria render 0, veio %v", resp["carbon_footprint_kg"])
	}
}

func TestTransportEndpointRejectsMalformedBody(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name string
		body string
	}{
		{"tipo errado", `{"mode":"car","distance":"dez"}`},
		{"campo obrigatório ausente", `{"distance":10}`},
		{"JSON quebrado", `{"mode":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, "/transport", tt.body)
			if rec.Code != http.StatusUnprocessableEntity {
				t.Errorf("status = %d, esperado 422: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestCalculateTotalEndpoint(t *testing.T) {
	router := newTestRouter()

	body := `{
		"transport": [{"mode":"car","distance":10},{"mode":"flight","distance":100}],
		"food": [{"type":"beef","quantity":0.5},{"type":"vegetables","quantity":2}],
		"energy": [{"type":"electricity","kwh":50}]
	}`

	rec := doRequest(t, router, http.MethodPost, "/calculate-total", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		TotalKgCO2e float64 `json:"total_kg_co2e"`
		Breakdown   struct {
			Transport float64 `json:"transport"`
			Food      float64 `json:"food"`
			Energy    float64 `json:"energy"`
		} `json:"breakdown"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("resposta inválida: %v", err)
	}

	if resp.TotalKgCO2e != 62.5 {
		t.Errorf("total = %v, esperado 62.5", resp.TotalKgCO2e)
	}
	if resp.Breakdown.Transport != 25.7 {
		t.Errorf("transporte = %v, esperado 25.7", resp.Breakdown.Transport)
	}
}

func TestCalculateTotalWithCustomFactors(t *testing.T) {
	router := newTestRouter()

	body := `{
		"transport": [{"mode":"car","distance":10}],
		"food": [],
		"energy": [],
		"custom_factors": {"transport": {"car": 1.0}}
	}`

	rec := doRequest(t, router, http.MethodPost, "/calculate-total", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		TotalKgCO2e float64 `json:"total_kg_co2e"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("resposta inválida: %v", err)
	}
	if resp.TotalKgCO2e != 10.0 {
		t.Errorf("total com fator customizado = %v, esperado 10.0", resp.TotalKgCO2e)
	}
}

func TestDemoRunEndpoint(t *testing.T) {
	router := newTestRouter()

	body := `{"transport_mode":"car","distance":10,"food_type":"beef","food_quantity":0.5,"energy_kwh":50}`
	rec := doRequest(t, router, http.MethodPost, "/api/demo-run", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		TransportEmission    float64 `json:"transport_emission"`
		FoodEmission         float64 `json:"food_emission"`
		EnergyEmission       float64 `json:"energy_emission"`
		TotalEmission        float64 `json:"total_emission"`
		DailyScore           int     `json:"daily_score"`
		Badges               []any   `json:"badges"`
		RecommendationPrompt string  `json:"recommendation_prompt"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("resposta inválida: %v", err)
	}

	if resp.TransportEmission != 1.7 || resp.FoodEmission != 13.5 || resp.EnergyEmission != 22.5 {
		t.Errorf("emissões = (%v, %v, %v), esperado (1.7, 13.5, 22.5)",
			resp.TransportEmission, resp.FoodEmission, resp.EnergyEmission)
	}
	if resp.TotalEmission != 37.7 {
		t.Errorf("total = %v, esperado 37.7", resp.TotalEmission)
	}
	if resp.DailyScore != 0 {
		t.Errorf("nota = %d, esperado 0", resp.DailyScore)
	}
	if !strings.Contains(resp.RecommendationPrompt, "Act as a Sustainability Expert") {
		t.Error("prompt de recomendação ausente na resposta")
	}
}

func TestDemoRunRejectsMissingFields(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodPost, "/api/demo-run", `{"distance":10}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, esperado 422: %s", rec.Code, rec.Body.String())
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("corpo = %s, esperado status ok", rec.Body.String())
	}
}

func TestStreakEndpoint(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodPost, "/api/gamification/streak", `{"active_days_count":7}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200", rec.Code)
	}

	var resp struct {
		Status      string `json:"status"`
		BonusPoints int    `json:"bonus_points"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("resposta inválida: %v", err)
	}
	if resp.BonusPoints != 150 {
		t.Errorf("bônus = %d, esperado 150", resp.BonusPoints)
	}
	if !strings.Contains(resp.Status, "Master Streak: 7 days!") {
		t.Errorf("status = %q", resp.Status)
	}
}

func TestLevelEndpoint(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodGet, "/api/gamification/level?points=2000", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200", rec.Code)
	}

	var resp struct {
		LevelName   string `json:"level_name"`
		LevelNumber int    `json:"level_number"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("resposta inválida: %v", err)
	}
	if resp.LevelName != "Oak" || resp.LevelNumber != 3 {
		t.Errorf("nível = (%q, %d), esperado (Oak, 3)", resp.LevelName, resp.LevelNumber)
	}
}

func TestLevelEndpointRejectsNonInteger(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodGet, "/api/gamification/level?points=muitos", "")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, esperado 422: %s", rec.Code, rec.Body.String())
	}
}

func TestFactorsEndpoint(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodGet, "/api/factors", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200", rec.Code)
	}

	var resp struct {
		Transport map[string]float64 `json:"transport"`
		Food      map[string]float64 `json:"food"`
		Energy    map[string]float64 `json:"energy"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("resposta inválida: %v", err)
	}
	if resp.Transport["car"] != 0.17 || resp.Food["beef"] != 27.0 || resp.Energy["gas"] != 0.18 {
		t.Errorf("catálogo default não bate: %+v", resp)
	}
}

func TestCORSHeadersOnEveryResponse(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(t, router, http.MethodGet, "/health", "")
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, esperado *", got)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID ausente na resposta")
	}
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/transport", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, esperado 204", rec.Code)
	}
}
