package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is built once at startup and handed to every component through fx.
// Nothing else in the process reads environment variables.
type Config struct {
	Port string

	// Generative provider: "gemini" or "openrouter".
	LLMProvider string
	LLMAPIKey   string
	LLMModel    string
	LLMTimeout  time.Duration

	// Directory holding per-city seed datasets ({city}.json).
	CityDataDir string

	// Optional Postgres-backed itinerary cache. Empty means in-memory.
	PostgresURL string

	// Fixed delay returned with cache hits so hit/miss latency looks alike.
	CacheHitDelay time.Duration

	ClusterThresholdKm   float64
	HalfDaySpreadKm      float64
	EffortIsolationKm    float64
	MandatoryTopN        int
	DailyFoodAllowance   float64
	DailyTransportBudget float64
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:                 getEnv("PORT", "8080"),
		LLMProvider:          getEnv("LLM_PROVIDER", "gemini"),
		LLMAPIKey:            os.Getenv("LLM_API_KEY"),
		LLMModel:             getEnv("LLM_MODEL", "gemini-1.5-flash"),
		LLMTimeout:           getEnvDuration("LLM_TIMEOUT", 60*time.Second),
		CityDataDir:          getEnv("CITY_DATA_DIR", "data/cities"),
		PostgresURL:          os.Getenv("POSTGRES_URL"),
		CacheHitDelay:        getEnvDuration("CACHE_HIT_DELAY", 1200*time.Millisecond),
		ClusterThresholdKm:   getEnvFloat("CLUSTER_THRESHOLD_KM", 3.0),
		HalfDaySpreadKm:      getEnvFloat("HALF_DAY_SPREAD_KM", 8.0),
		EffortIsolationKm:    getEnvFloat("EFFORT_ISOLATION_KM", 15.0),
		MandatoryTopN:        getEnvInt("MANDATORY_TOP_N", 4),
		DailyFoodAllowance:   getEnvFloat("DAILY_FOOD_ALLOWANCE", 700),
		DailyTransportBudget: getEnvFloat("DAILY_TRANSPORT_BUDGET", 700),
	}

	if cfg.LLMAPIKey == "" {
		return nil, fmt.Errorf("LLM_API_KEY is not set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
