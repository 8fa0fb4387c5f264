package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/roster-engine/internal/api/handlers"
	"github.com/stitts-dev/roster-engine/internal/cache"
	"github.com/stitts-dev/roster-engine/internal/config"
	"github.com/stitts-dev/roster-engine/internal/forecast"
	"github.com/stitts-dev/roster-engine/internal/schedule"
	"github.com/stitts-dev/roster-engine/internal/types"
	"github.com/stitts-dev/roster-engine/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	structuredLogger := logger.InitLogger(cfg.LogLevel, cfg.IsDevelopment())
	logger.WithComponent("server").WithFields(logrus.Fields{
		"environment":      cfg.Env,
		"port":             cfg.Port,
		"weekly_start_cap": cfg.WeeklyStartCap,
	}).Info("Starting roster engine")

	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Redis is optional; a single-node deployment runs on the in-memory
	// cache.
	var redisClient *redis.Client
	var store cache.Provider
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.WithComponent("server").Fatalf("Failed to parse Redis URL: %v", err)
		}
		redisClient = redis.NewClient(opt)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			cancel()
			logger.WithComponent("server").Fatalf("Failed to connect to Redis: %v", err)
		}
		cancel()
		defer redisClient.Close()
		store = cache.NewRedisProvider(redisClient, "roster-engine")
	} else {
		store = cache.NewMemoryProvider()
	}

	// Game calendar source. The static provider serves calendars loaded by
	// the (external) fetcher; the cache keeps repeated week aggregations
	// from re-reading it.
	gamesProvider := schedule.NewCachedGamesProvider(
		schedule.NewStaticGamesProvider(map[string]types.DayGameSet{}),
		store,
		cfg.GamesCacheTTL,
	)

	engine := forecast.NewEngineWithThresholds(cfg.PercentThreshold, cfg.CountingThreshold)

	lineupHandler := handlers.NewLineupHandler(cfg, gamesProvider, schedule.DefaultTeamCodes(), structuredLogger)
	forecastHandler := handlers.NewForecastHandler(engine, structuredLogger)
	healthHandler := handlers.NewHealthHandler(redisClient, structuredLogger)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	apiV1 := router.Group("/api/v1")
	{
		// Lineup optimization endpoints
		apiV1.POST("/lineup/day", lineupHandler.OptimizeDay)
		apiV1.POST("/lineup/week", lineupHandler.OptimizeWeek)
		apiV1.POST("/lineup/cap", lineupHandler.AllocateCap)

		// Ranking and forecast endpoints
		apiV1.POST("/rankings", forecastHandler.Rankings)
		apiV1.POST("/forecast/compare", forecastHandler.Compare)
		apiV1.POST("/forecast/standings", forecastHandler.Standings)
		apiV1.POST("/forecast/bracket", forecastHandler.Bracket)
		apiV1.POST("/schedule/parse", forecastHandler.ParseSchedule)
	}

	router.GET("/health", healthHandler.GetHealth)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	go func() {
		logger.WithComponent("server").WithField("port", cfg.Port).Info("Roster engine started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithComponent("server").Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.WithComponent("server").Info("Shutting down roster engine...")

	// The server has 5 seconds to finish the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.WithComponent("server").Fatalf("Roster engine forced to shutdown: %v", err)
	}

	logger.WithComponent("server").Info("Roster engine exited")
}
