// README: Config loader with env defaults for HTTP, CORS, and provider settings.
package config

import (
	"fmt"
	"os"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	CORS struct {
		// Origin is the single trusted browser origin.
		Origin string
	}
	AI struct {
		GeminiKey string
	}
	Maps struct {
		// APIKey may be empty; geocoding then resolves as unavailable.
		APIKey string
	}
	Weather struct {
		ArchiveURL string
	}
	Log struct {
		Level string
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("TRIPSMITH_HTTP_ADDR", ":8080")
	cfg.CORS.Origin = envOrDefault("TRIPSMITH_CORS_ORIGIN", "http://localhost:3000")
	cfg.Maps.APIKey = os.Getenv("MAPS_API_KEY")
	cfg.Weather.ArchiveURL = os.Getenv("TRIPSMITH_WEATHER_URL")
	cfg.Log.Level = envOrDefault("TRIPSMITH_LOG_LEVEL", "info")

	key := os.Getenv("GEMINI_API_KEY")
	if key == "" {
		return Config{}, fmt.Errorf("environment variable GEMINI_API_KEY is required")
	}
	cfg.AI.GeminiKey = key

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
