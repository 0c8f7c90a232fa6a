package main

import (
	"github.com/revolutionrp/community/internal/config"
	"github.com/revolutionrp/community/internal/handlers"
	"github.com/revolutionrp/community/internal/middleware"
	"github.com/revolutionrp/community/internal/models"
	"github.com/revolutionrp/community/internal/services"
	"github.com/revolutionrp/community/internal/utils"
	"github.com/revolutionrp/community/pkg/logger"
)

// appServices holds all initialized services and handlers needed by the application.
type appServices struct {
	taskQueue services.TaskQueue
	worker    *services.Worker

	authHandler        *handlers.AuthHandler
	statsHandler       *handlers.StatsHandler
	applicationHandler *handlers.ApplicationHandler
	submissionHandler  *handlers.SubmissionHandler
	userHandler        *handlers.UserHandler
	changelogHandler   *handlers.ChangelogHandler
	systemLogHandler   *handlers.SystemLogHandler
	healthHandler      *handlers.HealthHandler

	loginLimiter  *middleware.RateLimiter
	submitLimiter *middleware.RateLimiter
}

// bootstrap initializes all application dependencies: database, services,
// queue and schedulers.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.JWT.Secret)

	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	db := models.GetDB()

	services.InitSystemLogger(db)
	services.StartLogCleanupScheduler(db, cfg.Log.RetentionDays)

	// Task queue for webhook notifications (Redis if enabled, sync otherwise)
	discordService := services.NewDiscordService(db)
	taskQueue := services.InitTaskQueue(cfg)
	if syncQueue, ok := taskQueue.(*services.SyncQueue); ok {
		syncQueue.SetProcessor(discordService.ProcessNotifyTask)
	}

	var worker *services.Worker
	if cfg.Redis.Enabled && taskQueue.IsAsync() {
		worker = services.NewWorker(&cfg.Redis)
		if worker != nil {
			worker.SetProcessor(discordService.ProcessNotifyTask)
			worker.Start()
		}
	}

	authService := services.NewAuthService(db, &cfg.JWT)
	if err := authService.CreateAdminIfNotExists(&cfg.Admin); err != nil {
		logger.Warn().Err(err).Msg("Failed to create admin user")
	}

	submissionService := services.NewSubmissionService(db, services.NewQueueNotifier(taskQueue))

	return &appServices{
		taskQueue: taskQueue,
		worker:    worker,

		authHandler:        handlers.NewAuthHandler(authService),
		statsHandler:       handlers.NewStatsHandler(services.NewStatsService(&cfg.FiveM)),
		applicationHandler: handlers.NewApplicationHandler(services.NewFormService(db)),
		submissionHandler:  handlers.NewSubmissionHandler(submissionService, authService),
		userHandler:        handlers.NewUserHandler(services.NewUserService(db)),
		changelogHandler:   handlers.NewChangelogHandler(services.NewChangelogService(db)),
		systemLogHandler:   handlers.NewSystemLogHandler(services.NewSystemLogService(db)),
		healthHandler:      handlers.NewHealthHandler(db),

		loginLimiter:  middleware.NewRateLimiter(1, 5),
		submitLimiter: middleware.NewRateLimiter(2, 5),
	}
}

// shutdown gracefully stops all background services.
func (s *appServices) shutdown() {
	services.StopLogCleanupScheduler()

	if s.worker != nil {
		s.worker.Stop()
	}
	if s.taskQueue != nil {
		s.taskQueue.Close()
	}
	logger.Info().Msg("Server shut down")
}
