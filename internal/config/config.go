package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr             string
	DatabaseURL          string
	CORSAllowedOrigins   []string
	CORSAllowCredentials bool

	JWTSecret string

	// Analytics warehouse service (optional). Empty = compute from the store only.
	WarehouseURL   string
	WarehouseToken string

	// Freshness window for precomputed coping-tools snapshots.
	SnapshotTTL time.Duration

	// "legacy" reports 100% growth over a zero-count previous month,
	// "undefined" reports no rate at all for that case.
	GrowthZeroBaseline string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:             getenv("HTTP_ADDR", ":8080"),
		DatabaseURL:          mustGetenv("DATABASE_URL"),
		CORSAllowCredentials: getenv("CORS_ALLOW_CREDENTIALS", "false") == "true",
		WarehouseURL:         getenv("WAREHOUSE_URL", ""),
		WarehouseToken:       getenv("WAREHOUSE_TOKEN", ""),
		GrowthZeroBaseline:   getenv("GROWTH_ZERO_BASELINE", "legacy"),
	}

	origins := strings.Split(getenv("CORS_ALLOWED_ORIGINS", ""), ",")
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	ttlMin := 15
	if v := getenv("SNAPSHOT_TTL_MINUTES", ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttlMin = n
		}
	}
	cfg.SnapshotTTL = time.Duration(ttlMin) * time.Minute

	cfg.JWTSecret = mustGetenv("JWT_SECRET")
	return cfg, nil
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func mustGetenv(key string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		panic("missing env: " + key)
	}
	return v
}
