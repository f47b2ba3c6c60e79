package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/saan-system/services/routing/internal/cache"
	"github.com/saan-system/services/routing/internal/config"
	"github.com/saan-system/services/routing/internal/events"
	"github.com/saan-system/services/routing/internal/hub"
	"github.com/saan-system/services/routing/internal/jobs"
	"github.com/saan-system/services/routing/internal/logging"
	"github.com/saan-system/services/routing/internal/matrix"
	"github.com/saan-system/services/routing/internal/reroute"
	"github.com/saan-system/services/routing/internal/store"
	transporthttp "github.com/saan-system/services/routing/internal/transport/http"
	"github.com/saan-system/services/routing/internal/transport/http/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	cfg := config.Load()

	logger, err := logging.New(cfg.Server.Environment)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	db, err := store.NewConnection(cfg.Database.URL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	redisClient, err := cache.NewRedisClient(cfg.Redis.URL)
	if err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}

	var eventPublisher events.Publisher
	if len(cfg.Kafka.Brokers) > 0 && cfg.Kafka.Brokers[0] != "" {
		eventPublisher = events.NewEventPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		logger.Info("kafka event publisher initialized")
	} else {
		logger.Warn("kafka brokers not configured, events will not be published")
		eventPublisher = events.NewNoOpPublisher()
	}
	defer eventPublisher.Close()

	depots := store.NewDepotRepository(db)
	vehicles := store.NewVehicleRepository(db)
	stops := store.NewStopRepository(db)
	routes := store.NewRouteRepository(db)

	provider := matrix.NewSelectingProvider(cfg.Routing.ORSAPIKey, cfg.Routing.ORSBaseURL, logger)

	jobQueue := jobs.NewQueue(redisClient.Client())
	pipeline := &jobs.Pipeline{Depots: depots, Vehicles: vehicles, Stops: stops, Routes: routes, Provider: provider, Publisher: eventPublisher}
	workerPool := jobs.NewWorkerPool(jobQueue, pipeline, cfg.Routing.NumWorkers, logger)

	rerouter := &reroute.Rerouter{Depots: depots, Vehicles: vehicles, Stops: stops, Routes: routes, Provider: provider, Publisher: eventPublisher}
	subscriptionHub := hub.New()

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	go workerPool.Run(workerCtx)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logger(logger), middleware.Recovery(logger), middleware.CORS())

	transporthttp.SetupRoutes(router, &transporthttp.Dependencies{
		Depots:   depots,
		Vehicles: vehicles,
		Stops:    stops,
		Routes:   routes,
		Queue:    jobQueue,
		Rerouter: rerouter,
		Hub:      subscriptionHub,
	})

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logger.Info("starting routing service", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancelWorkers()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}
