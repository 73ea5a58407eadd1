package routes

import (
	"net/http"

	"github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/contracts"
	"github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/domain/emissions"
	appErrors "github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/errors"
	"github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) TransportEmissions(c *gin.Context) {
	var body contracts.TransportRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseBindingError(err))
		return
	}

	result := h.EmissionsService.TransportEmissions(body.Mode, body.Distance, nil)
	c.JSON(http.StatusOK, contracts.EmissionResponse{CarbonFootprintKg: pkg.Round(result, 4)})
}

func (h *Handler) FoodEmissions(c *gin.Context) {
	var body contracts.FoodRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseBindingError(err))
		return
	}

	result := h.EmissionsService.FoodEmissions(body.Type, body.Quantity, nil)
	c.JSON(http.StatusOK, contracts.EmissionResponse{CarbonFootprintKg: pkg.Round(result, 4)})
}

func (h *Handler) EnergyEmissions(c *gin.Context) {
	var body contracts.EnergyRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseBindingError(err))
		return
	}

	result := h.EmissionsService.EnergyEmissions(body.Type, body.Kwh, nil)
	c.JSON(http.StatusOK, contracts.EmissionResponse{CarbonFootprintKg: pkg.Round(result, 4)})
}

func (h *Handler) CalculateTotal(c *gin.Context) {
	var body contracts.TotalCalculationRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseBindingError(err))
		return
	}

	transport := make([]emissions.TransportEntry, 0, len(body.Transport))
	for _, e := range body.Transport {
		transport = append(transport, emissions.TransportEntry{Mode: e.Mode, Distance: e.Distance})
	}

	food := make([]emissions.FoodEntry, 0, len(body.Food))
	for _, e := range body.Food {
		food = append(food, emissions.FoodEntry{Type: e.Type, Quantity: e.Quantity})
	}

	energy := make([]emissions.EnergyEntry, 0, len(body.Energy))
	for _, e := range body.Energy {
		energy = append(energy, emissions.EnergyEntry{Type: e.Type, Kwh: e.Kwh})
	}

	var custom *emissions.Catalog
	if body.CustomFactors != nil {
		custom = &emissions.Catalog{
			Transport: body.CustomFactors.Transport,
			Food:      body.CustomFactors.Food,
			Energy:    body.CustomFactors.Energy,
		}
	}

	ctx := c.Request.Context()
	result, err := h.EmissionsService.TotalFootprint(ctx, transport, food, energy, custom)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.TotalCalculationResponse{
		TotalKgCO2e: result.TotalKgCO2e,
		Breakdown: contracts.BreakdownResponse{
			Transport: result.Breakdown.Transport,
			Food:      result.Breakdown.Food,
			Energy:    result.Breakdown.Energy,
		},
	})
}

func (h *Handler) ListFactors(c *gin.Context) {
	c.JSON(http.StatusOK, contracts.FactorsResponse{
		Transport: emissions.DefaultFactors.Transport,
		Food:      emissions.DefaultFactors.Food,
		Energy:    emissions.DefaultFactors.Energy,
	})
}
