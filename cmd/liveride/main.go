package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tumpangan/liveride/internal/pkg/config"
	"github.com/tumpangan/liveride/internal/pkg/database"
	"github.com/tumpangan/liveride/internal/pkg/health"
	"github.com/tumpangan/liveride/internal/pkg/logger"
	"github.com/tumpangan/liveride/internal/pkg/middleware"
	natspkg "github.com/tumpangan/liveride/internal/pkg/nats"
	"github.com/tumpangan/liveride/internal/pkg/server"
	wspkg "github.com/tumpangan/liveride/internal/pkg/websocket"
	"github.com/tumpangan/liveride/services/liveride/gateway"
	"github.com/tumpangan/liveride/services/liveride/handler"
	"github.com/tumpangan/liveride/services/liveride/repository"
	"github.com/tumpangan/liveride/services/liveride/usecase"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/liveride.env"
	}
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(logger.ZapConfig{
		Level:    configs.Logger.Level,
		FilePath: configs.Logger.FilePath,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", configs.App.Name),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Repositories
	rideRepo := repository.NewRideRepository(configs, postgresClient.GetDB())
	trackingRepo := repository.NewTrackingRepository(configs, postgresClient.GetDB())
	trackingCache := repository.NewTrackingCacheRepository(redisClient)

	// WebSocket hub and fanout gateway
	hub := wspkg.NewManager(configs.JWT)
	fanoutGW := gateway.NewFanoutGW(hub, natsClient, zapLogger)
	fanoutGW.Start()

	// Use cases
	trackingUC, err := usecase.NewTrackingUC(configs, rideRepo, trackingRepo, trackingCache, fanoutGW, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to create tracking use case", logger.Err(err))
	}
	rideUC, err := usecase.NewRideUC(configs, rideRepo, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to create ride use case", logger.Err(err))
	}

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Health endpoints
	healthSvc := health.NewService(zapLogger)
	healthSvc.AddChecker("postgres", health.NewPostgresChecker(postgresClient))
	healthSvc.AddChecker("redis", health.NewRedisChecker(redisClient))
	healthSvc.AddChecker("nats", health.NewNATSChecker(natsClient))
	health.RegisterEndpoints(e, configs.App.Name, configs.App.Version, healthSvc)

	// Service routes
	handler.NewHandler(trackingUC, rideUC, hub, configs.JWT).RegisterRoutes(e)

	// Shutdown order: stop accepting requests, then drain the fanout queue
	shutdown := server.NewShutdownManager(zapLogger)
	shutdown.Register(fanoutGW.Stop)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := shutdown.Shutdown(ctx); err != nil {
		zapLogger.Error("Component shutdown failed", logger.Err(err))
	}
}
