package routes

import (
	"net/http"

	"github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/contracts"
	"github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/domain/demo"
	appErrors "github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/errors"

	"github.com/gin-gonic/gin"
)

// DemoRun executa o ciclo completo: emissões → gamificação → prompt.
// Qualquer falha inesperada do fluxo vira 500 com a mensagem no corpo.
func (h *Handler) DemoRun(c *gin.Context) {
	var body contracts.DemoRunRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseBindingError(err))
		return
	}

	req := demo.RunRequest{
		TransportMode: body.TransportMode,
		Distance:      body.Distance,
		FoodType:      body.FoodType,
		FoodQuantity:  body.FoodQuantity,
		EnergyKwh:     body.EnergyKwh,
	}

	ctx := c.Request.Context()
	result, err := h.DemoService.Run(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	badges := make([]contracts.BadgeResponse, 0, len(result.Badges))
	for _, b := range result.Badges {
		badges = append(badges, contracts.BadgeResponse{
			ID:          b.ID,
			Name:        b.Name,
			Description: b.Description,
		})
	}

	c.JSON(http.StatusOK, contracts.DemoRunResponse{
		TransportEmission:    result.TransportEmission,
		FoodEmission:         result.FoodEmission,
		EnergyEmission:       result.EnergyEmission,
		TotalEmission:        result.TotalEmission,
		DailyScore:           result.DailyScore,
		Badges:               badges,
		RecommendationPrompt: result.RecommendationPrompt,
	})
}
