package routes

import (
	"net/http"

	"github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/contracts"
	"github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/domain/demo"
	"github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/domain/emissions"
	"github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/domain/gamification"
	"github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/domain/recommendation"
	appErrors "github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/errors"
	"github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/logger"
	"github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	EmissionsService      *emissions.Service
	GamificationService   *gamification.Service
	RecommendationService *recommendation.Service
	DemoService           *demo.Service
}

func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	event := logger.Error().Str("code", appErr.Code).Str("path", c.FullPath())
	if requestID := c.GetString(middleware.RequestIDKey); requestID != "" {
		event = event.Str("request_id", requestID)
	}
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.Msg("request_error")

	payload := gin.H{
		"error":   appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		payload["details"] = appErr.Details
	}
	c.JSON(appErr.StatusCode, payload)
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, contracts.HealthResponse{Status: "ok"})
}
