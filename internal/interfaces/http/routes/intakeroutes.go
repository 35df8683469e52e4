package routes

import (
	"github.com/gin-gonic/gin"

	intakehandlers "tickform/internal/interfaces/http/handlers/intake"
	"tickform/internal/interfaces/http/middleware"
)

type IntakeRouteConfig struct {
	IntakeHandler *intakehandlers.IntakeHandler
	AIRateLimiter *middleware.RateLimiter
}

func SetupIntakeRoutes(engine *gin.Engine, config *IntakeRouteConfig) {
	api := engine.Group("/api")
	{
		api.GET("/ping", config.IntakeHandler.Ping)

		api.POST("/draft/start", config.IntakeHandler.StartDraft)

		api.POST("/tickets", config.IntakeHandler.CreateTicket)
		api.GET("/tickets", config.IntakeHandler.ListTickets)

		ai := api.Group("/ai")
		if config.AIRateLimiter != nil {
			ai.Use(config.AIRateLimiter.Limit())
		}
		{
			ai.POST("/followups", config.IntakeHandler.RequestFollowups)
			ai.POST("/finalize", config.IntakeHandler.FinalizeTicket)
		}
	}
}
