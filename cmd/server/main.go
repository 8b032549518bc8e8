package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/mhenders/finback/internal/config"
	"github.com/mhenders/finback/internal/handlers"
	"github.com/mhenders/finback/internal/logger"
	"github.com/mhenders/finback/internal/providers"
	"github.com/mhenders/finback/internal/providers/yahoo"
	"github.com/mhenders/finback/internal/services"
	"github.com/mhenders/finback/internal/treasury"

	"github.com/gorilla/mux"
)

func main() {
	cfg := config.Load()

	// Initialize proper logging with config level and file path
	if err := logger.InitWithConfig(cfg.Logging.LogLevel, cfg.Logging.LogFile); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	logger.Always.Printf("🚀 Finback option pricer starting - Port: %s", cfg.Port)

	// Market data provider
	var provider providers.MarketProvider
	switch cfg.MarketData.Provider {
	case "yahoo", "":
		provider = yahoo.NewYahooProvider()
	default:
		log.Fatalf("Unknown market data provider: %s", cfg.MarketData.Provider)
	}
	defer provider.Close()

	logger.Info.Printf("📡 Market data provider: %s", provider.GetProviderName())

	market := providers.NewProviderManager(provider)
	rates := treasury.NewClient(cfg.Pricing.FallbackRiskFreeRate)

	// Wire services and handlers
	pricingService := services.NewPricingService(cfg, market, rates)
	requestService := services.NewRequestService(cfg.Pricing)
	pricingHandler := handlers.NewPricingHandler(cfg, requestService, pricingService)

	// Setup router
	r := mux.NewRouter()

	r.HandleFunc("/health", pricingHandler.HealthHandler).Methods("GET")

	// Pricing API
	r.HandleFunc("/api/market-data", pricingHandler.MarketDataHandler).Methods("POST")
	r.HandleFunc("/api/simulate", pricingHandler.SimulateHandler).Methods("POST")
	r.HandleFunc("/api/convergence", pricingHandler.ConvergenceHandler).Methods("POST")

	// HTML chart pages
	r.HandleFunc("/charts/paths", pricingHandler.PathsChartHandler).Methods("GET")
	r.HandleFunc("/charts/convergence", pricingHandler.ConvergenceChartHandler).Methods("GET")

	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // large simulations take a while
	}

	fmt.Printf("🌐 Server starting on http://localhost:%s\n", cfg.Port)
	logger.Always.Printf("🌐 Server starting on http://localhost:%s", cfg.Port)

	if err := srv.ListenAndServe(); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
