// README: Entry point; loads config, wires providers, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"tripsmith/internal/ai"
	"tripsmith/internal/climate"
	"tripsmith/internal/config"
	"tripsmith/internal/geo"
	httptransport "tripsmith/internal/http"
	"tripsmith/internal/itinerary"
)

func main() {
	// .env is a development convenience; production sets env vars directly.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gen, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
	if err != nil {
		logger.Fatal("gemini init failed", zap.Error(err))
	}
	defer gen.Close()

	// Geocoding is optional: without a Maps key every geocode lookup
	// resolves as unavailable and climate text degrades accordingly.
	var geocoder geo.Geocoder
	if cfg.Maps.APIKey != "" {
		g, err := geo.NewGoogleGeocoder(cfg.Maps.APIKey)
		if err != nil {
			logger.Fatal("maps init failed", zap.Error(err))
		}
		geocoder = g
	} else {
		logger.Warn("MAPS_API_KEY not set, geocoding disabled")
	}

	resolver := geo.NewResolver(geocoder, logger)
	fetcher := climate.NewFetcher(climate.NewOpenMeteoClient(cfg.Weather.ArchiveURL), logger)
	composer := itinerary.NewComposer(gen, resolver, fetcher, logger)

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Composer:   composer,
		Log:        logger,
		CORSOrigin: cfg.CORS.Origin,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("tripsmith listening", zap.String("addr", cfg.HTTP.Addr))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if lvl, err := zap.ParseAtomicLevel(level); err == nil {
		cfg.Level = lvl
	}
	return cfg.Build()
}
