package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/aosipenko-sketch/fleet-dashboard/internal/adapters"
	"github.com/aosipenko-sketch/fleet-dashboard/internal/auth"
	"github.com/aosipenko-sketch/fleet-dashboard/internal/config"
	"github.com/aosipenko-sketch/fleet-dashboard/internal/dashboard"
	"github.com/aosipenko-sketch/fleet-dashboard/internal/handlers"
	"github.com/aosipenko-sketch/fleet-dashboard/internal/middleware"
	"github.com/aosipenko-sketch/fleet-dashboard/internal/reconciler"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment variables")
	}

	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)
	if os.Getenv("LOG_LEVEL") == "debug" {
		log.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	var issues reconciler.IssueSource
	if cfg.Fleetio.Configured() {
		issues = adapters.NewFleetioClient(cfg.Fleetio)
		log.Info("Fleetio integration enabled")
	} else {
		log.Info("Fleetio credentials not set, maintenance data will come from the seed generator")
	}

	var telematics reconciler.TelematicsSource
	if cfg.Geotab.Configured() {
		telematics = adapters.NewGeotabClient(cfg.Geotab)
		log.Info("Geotab integration enabled")
	} else {
		log.Info("Geotab credentials not set, vehicle data will come from the seed generator")
	}

	rec := reconciler.New(cfg.Companies, issues, telematics)
	sessions := dashboard.NewRegistry(rec, cfg.Server.SessionTTL)
	authService, err := auth.NewService(cfg.JWTSecret, cfg.JWTExpiry, cfg.DemoPassword)
	if err != nil {
		log.WithError(err).Fatal("Failed to create auth service")
	}

	authHandler := handlers.NewAuthHandler(authService, sessions)
	dashHandler := handlers.NewDashboardHandler(sessions, cfg.Companies)
	listHandler := handlers.NewListViewHandler(sessions)
	maintHandler := handlers.NewMaintenanceHandler(sessions)
	feedsHandler := handlers.NewFeedsHandler(sessions, cfg.GoogleMapsAPIKey)

	mux := http.NewServeMux()

	mux.HandleFunc("/api/auth/login", authHandler.Login)
	mux.HandleFunc("/api/auth/logout", authHandler.Logout)

	mux.HandleFunc("/api/companies", dashHandler.Companies)
	mux.HandleFunc("/api/dashboard", dashHandler.Dashboard)
	mux.HandleFunc("/api/dashboard/company", dashHandler.SelectCompany)
	mux.HandleFunc("/api/dashboard/banner/dismiss", dashHandler.DismissBanner)

	mux.HandleFunc("/api/dashboard/widgets/edit-mode", dashHandler.ToggleEditMode)
	mux.HandleFunc("/api/dashboard/widgets/reorder", dashHandler.ReorderWidgets)
	mux.HandleFunc("/api/dashboard/widgets/remove", dashHandler.RemoveWidget)

	mux.HandleFunc("/api/vehicles", listHandler.Vehicles)
	mux.HandleFunc("/api/vehicles/expand", listHandler.VehicleExpand)
	mux.HandleFunc("/api/vehicles/edit", listHandler.VehicleEdit)
	mux.HandleFunc("/api/vehicles/draft", listHandler.VehicleDraft)
	mux.HandleFunc("/api/vehicles/save", listHandler.VehicleSave)
	mux.HandleFunc("/api/vehicles/cancel", listHandler.VehicleCancel)

	mux.HandleFunc("/api/drivers", listHandler.Drivers)
	mux.HandleFunc("/api/drivers/expand", listHandler.DriverExpand)
	mux.HandleFunc("/api/drivers/edit", listHandler.DriverEdit)
	mux.HandleFunc("/api/drivers/draft", listHandler.DriverDraft)
	mux.HandleFunc("/api/drivers/save", listHandler.DriverSave)
	mux.HandleFunc("/api/drivers/cancel", listHandler.DriverCancel)

	mux.HandleFunc("/api/maintenance", maintHandler.Board)
	mux.HandleFunc("/api/maintenance/tasks", maintHandler.SaveTask)

	mux.HandleFunc("/api/feeds/mail", feedsHandler.Mail)
	mux.HandleFunc("/api/feeds/calendar", feedsHandler.Calendar)
	mux.HandleFunc("/api/map/markers", feedsHandler.MapMarkers)

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"healthy","timestamp":"%s"}`, time.Now().Format(time.RFC3339))
	})

	authMiddleware := middleware.NewAuthMiddleware(authService)
	limiter := middleware.NewIPRateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst)
	handler := limiter.RateLimit(authMiddleware.Authenticate(mux))

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Server.Port).Info("Starting dashboard server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Forced shutdown")
	}
	log.Info("Server stopped")
}
