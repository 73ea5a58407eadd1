package fx

import (
	"context"

	"github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/config"
	"github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/logger"
	"github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/middleware"
	"github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/internal/routes"

	docs "github.com/avikcodes/Smart-Personal-Carbon-Footprint-Tracker/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"go.uber.org/fx"
)

// ServerModule fornece a configuração do servidor HTTP
var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
	),
)

func newRouter(cfg *config.Config) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	return gin.Default()
}

func setupRoutes(
	lc fx.Lifecycle,
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	apiRateLimiter *middleware.RateLimiter,
) {
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	router.Use(middleware.RequestID())

	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Rotas da calculadora no nível raiz (compatibilidade com os
	// clientes existentes) e o restante sob /api.
	router.POST("/transport", handler.TransportEmissions)
	router.POST("/food", handler.FoodEmissions)
	router.POST("/energy", handler.EnergyEmissions)
	router.POST("/calculate-total", handler.CalculateTotal)
	router.GET("/health", handler.HealthCheck)

	api := router.Group("/api")
	api.Use(middleware.RateLimit(apiRateLimiter))
	{
		api.POST("/demo-run", handler.DemoRun)
		api.GET("/factors", handler.ListFactors)

		gamification := api.Group("/gamification")
		{
			gamification.POST("/streak", handler.WeeklyStreak)
			gamification.GET("/level", handler.ProgressLevel)
		}
	}

	serverAddr := ":" + cfg.Server.Port
	logger.Info().
		Str("address", serverAddr).
		Str("environment", cfg.App.Environment).
		Msg("Servidor iniciando")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(serverAddr); err != nil {
					logger.Fatal().Err(err).Msg("Falha ao iniciar servidor")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Servidor parando...")
			return nil
		},
	})
}
