package main

import (
	"time"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"retail-analytics/config"
	"retail-analytics/handlers"
	"retail-analytics/middleware"
	"retail-analytics/services"
	"retail-analytics/store"
	ws "retail-analytics/websocket"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Warnf(".env file not found, using system environment variables")
	}

	cfg := config.Load()

	// Build the in-memory record store. The synthetic generator stands
	// in for the spreadsheet ingestion collaborator.
	st := store.Generate(store.GeneratorConfig{
		Seed:    cfg.DataSeed,
		Records: cfg.DataRecords,
	})

	service := services.NewAnalyticsService(st)

	hub := ws.NewHub()
	go hub.Run()
	service.SetReadyCallback(hub.BroadcastAnalyticsReady)

	// Start the expensive product aggregation before the first request.
	service.Warm()

	handler := handlers.NewAnalyticsHandler(service, hub)

	router := gin.Default()
	router.GET("/health", handler.HealthCheck)
	router.GET("/ws/analytics", handler.ListenAnalytics)

	api := router.Group("/api")
	api.Use(middleware.RateLimitMiddleware(cfg.RateLimit, time.Duration(cfg.RateWindowSeconds)*time.Second))
	{
		api.GET("/retailers", handler.GetRetailers)
		api.GET("/products", handler.GetProducts)
		api.GET("/products/lite", handler.GetProductsLite)
		api.GET("/filters", handler.GetFilters)
		api.GET("/export", handler.Export)
	}

	addr := cfg.Host + ":" + cfg.Port
	log.Infof("Starting retail-analytics service on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
