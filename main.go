package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"airbnb-stats/config"
	"airbnb-stats/models"
	"airbnb-stats/server"
	"airbnb-stats/services"
	"airbnb-stats/storage"
	"airbnb-stats/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ================== Bootstrap ====================
	cfg, err := config.Load()
	if err != nil {
		utils.NewLogger(utils.LevelInfo).Error("Invalid configuration: %v", err)
		os.Exit(1)
	}
	logger := utils.NewLogger(utils.ParseLevel(cfg.LogLevel))

	logger.Info("London Property Statistics")
	logger.Info("Source: %s | Price range: %s to %s | Borough: %s",
		cfg.DataSource, services.FormatPriceOption(cfg.MinPrice), services.FormatPriceOption(cfg.MaxPrice), cfg.Borough)

	// =============== Listings ===================================
	listings, err := loadListings(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to load listings: %v", err)
		os.Exit(1)
	}
	if len(listings) == 0 {
		logger.Warn("No usable listings found; every statistic will be empty")
	}

	// =========== Statistics ======================
	dashboard := services.NewDashboard(logger)
	if err := dashboard.Load(listings); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
	if _, err := dashboard.SetPriceRange(cfg.MinPrice, cfg.MaxPrice); err != nil {
		logger.Error("Failed to compute statistics: %v", err)
		os.Exit(1)
	}
	view, err := dashboard.SelectBorough(cfg.Borough)
	if err != nil {
		logger.Error("Cannot select borough: %v", err)
		os.Exit(1)
	}

	services.PrintStatisticsReport(os.Stdout, view, dashboard.Table())

	if cfg.StatsCSVPath != "" {
		csvWriter := storage.NewCSVWriter(cfg.StatsCSVPath, logger)
		if err := csvWriter.WriteBoroughStats(dashboard.Table()); err != nil {
			// Non-fatal: the report was already printed
			logger.Error("Failed to export statistics: %v", err)
		}
	}

	// ==== HTTP ============================
	if cfg.HTTPPort == "" {
		return
	}
	if err := serve(ctx, cfg, dashboard, logger); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

// loadListings reads listings from the configured source, importing CSV data
// into PostgreSQL when asked to
func loadListings(ctx context.Context, cfg *config.Config, logger *utils.Logger) ([]*models.Listing, error) {
	var store storage.ListingStore
	if cfg.DataSource == config.SourcePostgres || cfg.ImportToDB {
		pg, err := storage.NewPostgresStore(ctx, cfg.DatabaseURL, cfg.MaxRetries, logger)
		if err != nil {
			return nil, err
		}
		defer pg.Close()
		if err := pg.CreateTable(ctx); err != nil {
			return nil, err
		}
		store = pg
	}

	if cfg.DataSource == config.SourcePostgres {
		return store.LoadListings(ctx)
	}

	var source storage.ListingSource = storage.NewCSVReader(cfg.ListingsCSV, logger)
	raw, err := source.LoadRaw(ctx)
	if err != nil {
		return nil, err
	}
	listings := services.NewDataCleaner(logger).Clean(raw)

	if cfg.ImportToDB {
		if err := store.SaveListings(ctx, listings); err != nil {
			return nil, err
		}
	}
	return listings, nil
}

func serve(ctx context.Context, cfg *config.Config, dashboard *services.Dashboard, logger *utils.Logger) error {
	gin.SetMode(cfg.GinMode)
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: server.NewRouter(dashboard),
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	logger.Info("Dashboard API listening on :%s", cfg.HTTPPort)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("Server exited")
	return nil
}
