package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/vedavayu/clinic-backend/internal/api/http"
	"github.com/vedavayu/clinic-backend/internal/api/http/handlers"
	"github.com/vedavayu/clinic-backend/internal/auth"
	"github.com/vedavayu/clinic-backend/internal/config"
	"github.com/vedavayu/clinic-backend/internal/events"
	"github.com/vedavayu/clinic-backend/internal/media"
	"github.com/vedavayu/clinic-backend/internal/observability"
	"github.com/vedavayu/clinic-backend/internal/persistence"
	"github.com/vedavayu/clinic-backend/internal/repository"
	"github.com/vedavayu/clinic-backend/internal/service"
	"github.com/vedavayu/clinic-backend/internal/worker"
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

	store, err := media.NewCloudinaryStore(cfg.Cloudinary)
	if err != nil {
		logger.Fatal("failed to init media store", zap.Error(err))
	}
	stager, err := media.NewStager(cfg.Uploads.Dir)
	if err != nil {
		logger.Fatal("failed to prepare uploads dir", zap.Error(err))
	}

	dispatcher := events.NewInMemoryDispatcher()
	uploads := media.NewCoordinator(store, stager, logger, dispatcher)

	reconciler := worker.NewOrphanReconciler(store, redis.Client, logger, cfg.Uploads.SweepInterval())
	reconciler.Register(dispatcher)
	go reconciler.Run(ctx)

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	doctorRepo := repository.NewDoctorRepository(pool)
	serviceRepo := repository.NewServiceRepository(pool)
	bannerRepo := repository.NewBannerRepository(pool)
	galleryRepo := repository.NewGalleryRepository(pool)
	partnerRepo := repository.NewPartnerRepository(pool)
	statsRepo := repository.NewStatisticsRepository(pool)
	aboutRepo := repository.NewAboutRepository(pool)

	authService := service.NewAuthService(cfg.Auth, userRepo)
	authMiddleware := auth.NewMiddleware(authService.TokenManager())

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{
		BodyLimit: cfg.Uploads.MaxFileSizeMB * 1024 * 1024,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.CORS, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Users:          handlers.NewUsersHandler(userRepo, cfg.Auth.BcryptCost),
		Doctors:        handlers.NewDoctorsHandler(doctorRepo, uploads),
		Services:       handlers.NewServicesHandler(serviceRepo),
		Banners:        handlers.NewBannersHandler(bannerRepo),
		Gallery:        handlers.NewGalleryHandler(galleryRepo, uploads),
		Partners:       handlers.NewPartnersHandler(partnerRepo, uploads),
		Statistics:     handlers.NewStatisticsHandler(statsRepo),
		About:          handlers.NewAboutHandler(aboutRepo, uploads),
		AuthMiddleware: authMiddleware,
		UploadsDir:     cfg.Uploads.Dir,
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
