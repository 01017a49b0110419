package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	activityUC "dunner/internal/application/activity/usecases"
	invoiceUC "dunner/internal/application/invoice/usecases"
	ticketUC "dunner/internal/application/ticket/usecases"
	"dunner/internal/infrastructure/auth"
	"dunner/internal/infrastructure/config"
	"dunner/internal/infrastructure/pubsub"
	"dunner/internal/infrastructure/repository"
	"dunner/internal/infrastructure/services"
	activityhandlers "dunner/internal/interfaces/http/handlers/activity"
	invoicehandlers "dunner/internal/interfaces/http/handlers/invoice"
	tickethandlers "dunner/internal/interfaces/http/handlers/ticket"
	"dunner/internal/interfaces/http/middleware"
	"dunner/internal/interfaces/http/routes"
	sharedDB "dunner/internal/shared/db"
	"dunner/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine          *gin.Engine
	ticketHandler   *tickethandlers.TicketHandler
	invoiceHandler  *invoicehandlers.InvoiceHandler
	activityHandler *activityhandlers.ActivityHandler
	authMiddleware  *middleware.AuthMiddleware
	cfg             *config.Config
	log             logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()
	if err := registerCustomValidators(); err != nil {
		log.Errorw("failed to register custom validators", "error", err)
	}

	ticketRepo := repository.NewTicketRepository(db)
	historyRepo := repository.NewStatusHistoryRepository(db)
	mergeRepo := repository.NewMergeEventRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	memoRepo := repository.NewMemoRepository(db)
	reminderRepo := repository.NewReminderRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	txManager := sharedDB.NewTransactionManager(db)
	numberGen := services.NewTicketNumberGenerator(db)

	createTicketUC := ticketUC.NewCreateTicketUseCase(ticketRepo, historyRepo, assignmentRepo, activityRepo, numberGen, txManager, log)
	resolveUC := ticketUC.NewResolveAssignmentUseCase(ticketRepo, invoiceRepo, createTicketUC, log)
	mergeUC := ticketUC.NewMergeInvoicesUseCase(ticketRepo, mergeRepo, assignmentRepo, activityRepo, txManager, log)
	changeStatusUC := ticketUC.NewChangeStatusUseCase(ticketRepo, historyRepo, activityRepo, txManager, log)
	getTicketUC := ticketUC.NewGetTicketUseCase(ticketRepo, historyRepo, mergeRepo, activityRepo, log)
	listTicketsUC := ticketUC.NewListTicketsUseCase(ticketRepo, log)

	setColorUC := invoiceUC.NewSetColorUseCase(invoiceRepo, assignmentRepo, activityRepo, txManager, log)
	batchSetColorUC := invoiceUC.NewBatchSetColorUseCase(invoiceRepo, activityRepo, txManager, log)
	batchNoteUC := invoiceUC.NewBatchNoteUseCase(invoiceRepo, assignmentRepo, memoRepo, reminderRepo, activityRepo, txManager, log)
	listInvoicesUC := invoiceUC.NewListInvoicesUseCase(invoiceRepo, assignmentRepo, log)

	listActivitiesUC := activityUC.NewListActivitiesUseCase(activityRepo, log)

	var eventPublisher pubsub.TicketEventPublisher
	if redisClient != nil {
		eventPublisher = pubsub.NewRedisTicketEventBus(redisClient, log)
	}

	ticketHandler := tickethandlers.NewTicketHandler(
		resolveUC, createTicketUC, mergeUC, changeStatusUC, getTicketUC, listTicketsUC,
		eventPublisher,
	)
	invoiceHandler := invoicehandlers.NewInvoiceHandler(
		setColorUC, batchSetColorUC, batchNoteUC, listInvoicesUC,
	)
	activityHandler := activityhandlers.NewActivityHandler(listActivitiesUC)

	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, 0, 0)
	authMiddleware := middleware.NewAuthMiddleware(jwtSvc, log)

	return &Router{
		engine:          engine,
		ticketHandler:   ticketHandler,
		invoiceHandler:  invoiceHandler,
		activityHandler: activityHandler,
		authMiddleware:  authMiddleware,
		cfg:             cfg,
		log:             log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.CustomLogger(r.log))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().UnixMilli(),
		})
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupInvoiceRoutes(r.engine, &routes.InvoiceRouteConfig{
		InvoiceHandler: r.invoiceHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupActivityRoutes(r.engine, &routes.ActivityRouteConfig{
		ActivityHandler: r.activityHandler,
		AuthMiddleware:  r.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

// registerCustomValidators wires request tag validators into Gin's binding layer.
func registerCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}

	return v.RegisterValidation("tagcolor", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "red", "yellow", "green":
			return true
		}
		return false
	})
}
