package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	reminderUC "dunner/internal/application/reminder/usecases"
	"dunner/internal/infrastructure/config"
	"dunner/internal/infrastructure/database"
	"dunner/internal/infrastructure/email"
	"dunner/internal/infrastructure/persistence/migrations"
	"dunner/internal/infrastructure/pubsub"
	"dunner/internal/infrastructure/repository"
	"dunner/internal/infrastructure/scheduler"
	httpRouter "dunner/internal/interfaces/http"
	"dunner/internal/shared/logger"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the Dunner HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Automatically run database migrations on startup (not recommended for production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	ginMode := mapEnvToGinMode(env)

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Server.Mode = ginMode

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting server",
		"environment", env,
		"auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)

	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
	}

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer database.Close()

	if autoMigrate {
		if env == "production" {
			logger.Warn("auto-migration is enabled in production environment - this is not recommended!")
		}
		logger.Info("running auto-migration")
		if err := migrations.RunMigrations(database.Get()); err != nil {
			logger.Fatal("auto-migration failed", "error", err)
		}
		logger.Info("auto-migration completed successfully")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		// Event publishing and subscription degrade gracefully without redis.
		logger.Warn("redis unavailable, ticket change events disabled", "error", err)
		redisClient = nil
	}
	cancel()

	log := logger.NewLogger()

	reminderScheduler := newReminderScheduler(cfg, log)
	go reminderScheduler.Start(ctx)
	defer reminderScheduler.Stop()

	if redisClient != nil {
		eventBus := pubsub.NewRedisTicketEventBus(redisClient, log)
		go func() {
			err := eventBus.Subscribe(ctx, func(ctx context.Context, event pubsub.TicketChangeEvent) {
				logger.Debug("ticket change event received",
					"ticket_id", event.TicketID,
					"change_type", event.ChangeType)
			})
			if err != nil && ctx.Err() == nil {
				logger.Error("ticket event subscription terminated", "error", err)
			}
		}()
	}

	router := httpRouter.NewRouter(database.Get(), redisClient, cfg, log)
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()

	logger.Info("shutting down server...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

func newReminderScheduler(cfg *config.Config, log logger.Interface) *scheduler.ReminderScheduler {
	reminderRepo := repository.NewReminderRepository(database.Get())

	var emailSender reminderUC.EmailSender
	if cfg.Reminder.EmailEnabled {
		emailSender = email.NewSMTPEmailService(email.SMTPConfig{
			Host:             cfg.Email.SMTPHost,
			Port:             cfg.Email.SMTPPort,
			Username:         cfg.Email.SMTPUser,
			Password:         cfg.Email.SMTPPassword,
			FromAddress:      cfg.Email.FromAddress,
			FromName:         cfg.Email.FromName,
			CollectionsInbox: cfg.Email.CollectionsInbox,
		})
	}

	processUC := reminderUC.NewProcessRemindersUseCase(reminderRepo, emailSender, log)

	return scheduler.NewReminderScheduler(
		processUC,
		log,
		time.Duration(cfg.Reminder.IntervalSeconds)*time.Second,
		cfg.Reminder.BatchSize,
	)
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod":
		return "release"
	case "development", "dev":
		return "debug"
	case "test", "testing":
		return "test"
	case "debug":
		return "debug"
	case "release":
		return "release"
	default:
		return "debug"
	}
}
