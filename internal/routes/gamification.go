package routes

import (
	"net/http"

	"github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/contracts"
	appErrors "github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/errors"
	"github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) WeeklyStreak(c *gin.Context) {
	var body contracts.StreakRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseBindingError(err))
		return
	}

	status, bonus := h.GamificationService.WeeklyStreak(body.ActiveDaysCount)
	c.JSON(http.StatusOK, contracts.StreakResponse{
		Status:      status,
		BonusPoints: bonus,
	})
}

func (h *Handler) ProgressLevel(c *gin.Context) {
	points, err := pkg.ParseInt(c.DefaultQuery("points", "0"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("points", "pontos deve ser um inteiro"))
		return
	}

	level := h.GamificationService.ProgressLevel(points)
	c.JSON(http.StatusOK, contracts.LevelResponse{
		LevelName:   level.LevelName,
		LevelNumber: level.LevelNumber,
		TotalPoints: level.TotalPoints,
	})
}
