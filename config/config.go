package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port       string
	DBPath     string
	JWTSecret  string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] no .env file loaded: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getDur := func(k, def string) time.Duration {
		d, err := time.ParseDuration(get(k, def))
		if err != nil {
			log.Printf("[cfg] bad duration for %s, using %s: %v", k, def, err)
			d, _ = time.ParseDuration(def)
		}
		return d
	}
	cfg := AppConfig{
		Port:       get("PORT", "8080"),
		DBPath:     get("DB_PATH", "agrisync.db"),
		JWTSecret:  get("JWT_SECRET", "dev-secret-change-me"),
		AccessTTL:  getDur("JWT_ACCESS_TTL", "30m"),
		RefreshTTL: getDur("JWT_REFRESH_TTL", "24h"),
	}
	log.Printf("[cfg] port=%s db=%s access_ttl=%s refresh_ttl=%s", cfg.Port, cfg.DBPath, cfg.AccessTTL, cfg.RefreshTTL)
	return cfg
}
