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
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/JacobBurge13/sounders-depth-chart/internal/api"
	"github.com/JacobBurge13/sounders-depth-chart/internal/api/handlers"
	"github.com/JacobBurge13/sounders-depth-chart/internal/api/middleware"
	"github.com/JacobBurge13/sounders-depth-chart/internal/services"
	"github.com/JacobBurge13/sounders-depth-chart/internal/store"
	"github.com/JacobBurge13/sounders-depth-chart/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Setup logging
	if cfg.IsDevelopment() {
		logrus.SetLevel(logrus.DebugLevel)
		gin.SetMode(gin.DebugMode)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
		gin.SetMode(gin.ReleaseMode)
	}

	// Load the data artifacts. A bad initial load is the one fatal
	// condition; after startup, failed reloads keep the previous snapshot.
	st := store.New(cfg.DataDir, logrus.StandardLogger())
	if err := st.Load(); err != nil {
		logrus.Fatalf("Failed to load data snapshot: %v", err)
	}

	// Connect to Redis when configured; the API runs uncached without it.
	var cacheService *services.CacheService
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logrus.Fatalf("Failed to parse Redis URL: %v", err)
		}
		redisClient := redis.NewClient(opt)
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logrus.Warnf("Redis unavailable, running without response cache: %v", err)
		} else {
			cacheService = services.NewCacheService(redisClient)
			defer redisClient.Close()
		}
	}

	// Websocket hub for snapshot-reload notifications
	hub := services.NewHub()
	go hub.Run()
	st.OnReload(func(snap *store.Snapshot) {
		if err := hub.Broadcast("snapshot_reloaded", gin.H{"version": snap.Version}); err != nil {
			logrus.Errorf("Failed to broadcast reload: %v", err)
		}
	})

	// Scheduled reloads pick up rewritten artifacts
	if err := st.StartReloader(cfg.ReloadInterval); err != nil {
		logrus.Errorf("Failed to start snapshot reloader: %v", err)
	}
	defer st.Stop()

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(cfg.CorsOrigins))
	router.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	healthHandler := handlers.NewHealthHandler(st)
	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup API routes under /api/v1
	apiV1 := router.Group("/api/v1")
	api.SetupRoutes(apiV1, st, cacheService, cfg)

	// Websocket endpoint at root level
	wsHandler := handlers.NewWebSocketHandler(hub)
	router.GET("/ws", wsHandler.HandleWebSocket)

	// Setup server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited")
}
