package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/talentdesk/recruitment-service/internal/api/http"
	"github.com/talentdesk/recruitment-service/internal/api/http/handlers"
	"github.com/talentdesk/recruitment-service/internal/auth"
	"github.com/talentdesk/recruitment-service/internal/config"
	"github.com/talentdesk/recruitment-service/internal/events"
	"github.com/talentdesk/recruitment-service/internal/observability"
	"github.com/talentdesk/recruitment-service/internal/persistence"
	"github.com/talentdesk/recruitment-service/internal/repository"
	"github.com/talentdesk/recruitment-service/internal/service"
	"github.com/talentdesk/recruitment-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	staffRepo := repository.NewStaffRepository(pool)
	candidateRepo := repository.NewCandidateRepository(pool)
	companyRepo := repository.NewCompanyRepository(pool)
	jobRepo := repository.NewJobRepository(pool)
	applicationRepo := repository.NewApplicationRepository(pool)
	skillRepo := repository.NewSkillRepository(pool)
	taskRepo := repository.NewCalendarTaskRepository(pool)
	projectRepo := repository.NewProjectRepository(pool)
	resetRepo := repository.NewPasswordResetRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		StaffRepo:         staffRepo,
		CandidateRepo:     candidateRepo,
		CompanyRepo:       companyRepo,
		PasswordResetRepo: resetRepo,
		Dispatcher:        dispatcher,
		Redis:             redis.Client,
		Logger:            logger,
	})
	resolver := auth.NewResolver(staffRepo, candidateRepo, companyRepo)
	authMiddleware := auth.NewMiddleware(authService.TokenManager(), resolver)

	staffService := service.NewStaffService(*cfg, staffRepo)
	applicationService := service.NewApplicationService(applicationRepo, jobRepo, dispatcher)
	completionService := service.NewCompletionService(cfg.Completion, logger)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Staff:          handlers.NewStaffHandler(staffService),
		Candidates:     handlers.NewCandidatesHandler(candidateRepo),
		Companies:      handlers.NewCompaniesHandler(companyRepo),
		Jobs:           handlers.NewJobsHandler(jobRepo),
		Applications:   handlers.NewApplicationsHandler(applicationRepo, applicationService),
		Skills:         handlers.NewSkillsHandler(skillRepo),
		CalendarTasks:  handlers.NewCalendarTasksHandler(taskRepo, dispatcher),
		Projects:       handlers.NewProjectsHandler(projectRepo),
		AI:             handlers.NewAIHandler(completionService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
