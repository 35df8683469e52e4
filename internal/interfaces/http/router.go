package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"tickform/internal/application/intake/usecases"
	"tickform/internal/infrastructure/config"
	"tickform/internal/infrastructure/repository"
	intakehandlers "tickform/internal/interfaces/http/handlers/intake"
	"tickform/internal/interfaces/http/middleware"
	"tickform/internal/interfaces/http/routes"
	"tickform/internal/shared/db"
	"tickform/internal/shared/logger"
)

// Router wires repositories, use cases and handlers into a Gin engine.
type Router struct {
	engine         *gin.Engine
	intakeHandler  *intakehandlers.IntakeHandler
	aiRateLimiter  *middleware.RateLimiter
	allowedOrigins []string
	logger         logger.Interface
}

func NewRouter(
	cfg *config.Config,
	database *gorm.DB,
	redisClient *redis.Client,
	assistant usecases.Assistant,
	log logger.Interface,
) *Router {
	draftRepo := repository.NewDraftRepository(database)
	ticketRepo := repository.NewTicketRepository(database)
	userRepo := repository.NewUserRepository(database)
	txManager := db.NewTransactionManager(database)

	startDraftUC := usecases.NewStartDraftUseCase(draftRepo, userRepo, log)
	createTicketUC := usecases.NewCreateTicketUseCase(draftRepo, ticketRepo, txManager, log)
	requestFollowupsUC := usecases.NewRequestFollowupsUseCase(
		draftRepo, assistant, log, cfg.Intake.MinDescriptionChars)
	finalizeTicketUC := usecases.NewFinalizeTicketUseCase(
		draftRepo, ticketRepo, assistant, txManager, log)
	listTicketsUC := usecases.NewListTicketsUseCase(ticketRepo, log)

	intakeHandler := intakehandlers.NewIntakeHandler(
		startDraftUC,
		createTicketUC,
		requestFollowupsUC,
		finalizeTicketUC,
		listTicketsUC,
	)

	var aiRateLimiter *middleware.RateLimiter
	if redisClient != nil && cfg.Intake.AIRateLimitPerMinute > 0 {
		aiRateLimiter = middleware.NewRateLimiter(
			redisClient, cfg.Intake.AIRateLimitPerMinute, time.Minute)
	}

	return &Router{
		engine:         gin.New(),
		intakeHandler:  intakeHandler,
		aiRateLimiter:  aiRateLimiter,
		allowedOrigins: cfg.Server.AllowedOrigins,
		logger:         log,
	}
}

// SetupRoutes registers middleware and all API routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestLogger(r.logger))
	r.engine.Use(middleware.CORS(r.allowedOrigins))

	routes.SetupIntakeRoutes(r.engine, &routes.IntakeRouteConfig{
		IntakeHandler: r.intakeHandler,
		AIRateLimiter: r.aiRateLimiter,
	})
}

// GetEngine returns the underlying Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
