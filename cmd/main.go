package main

import (
	"strconv"
	"time"

	"inventory-service/internal/handler"
	"inventory-service/internal/middleware"
	"inventory-service/internal/store"
	"inventory-service/pkg/config"
	"inventory-service/pkg/database"
	"inventory-service/pkg/logger"
	"inventory-service/prometheus"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	logger.InitLogger(cfg)
	log := logger.GetLogger()
	log.Info("Starting inventory service...", zap.String("environment", cfg.Server.Env))

	// Initialize Prometheus metrics
	prometheus.InitMetrics(cfg)
	log.Info("Prometheus metrics initialized")

	// Open the database with an explicit lifecycle
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()
	log.Info("Database connection established",
		zap.String("driver", cfg.DB.Driver),
		zap.String("db_name", cfg.DB.Name))

	// Build the record store (runs migrations)
	recordStore, err := store.New(db)
	if err != nil {
		log.Fatal("Failed to migrate database schema", zap.Error(err))
	}
	log.Info("Database migrations completed")

	h := handler.New(recordStore)

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware)

	// Request logging middleware
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			// Process request
			err := next(c)

			// Calculate duration
			duration := time.Since(start).Seconds()
			status := strconv.Itoa(c.Response().Status)

			// Log request details
			log := logger.FromContext(c)
			log.Info("HTTP Request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.String("status", status),
				zap.Float64("duration_s", duration),
				zap.String("ip", c.RealIP()),
			)

			prometheus.HttpRequestsTotal.WithLabelValues(
				c.Request().Method,
				c.Path(),
				status,
			).Inc()

			prometheus.HttpRequestDuration.WithLabelValues(
				c.Request().Method,
				c.Path(),
				status,
			).Observe(duration)

			return err
		}
	})

	// Routes
	e.GET("/", h.Hello)
	e.GET("/health", h.Hello)

	// Prometheus metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Entity form routes
	h.Register(e)

	// Start server
	port := cfg.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
