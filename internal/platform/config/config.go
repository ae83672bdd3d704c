package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	Environment     string
	Version         string
	LogLevel        string
	ShutdownTimeout time.Duration
	MetricsEnabled  bool
}

// ServiceName is reported in logs, the health endpoint and API info.
const ServiceName = "Package Classification API"

// APIVersion is the version advertised by /api/v1/packages/info.
const APIVersion = "1.0.0"

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	return Server{
		Addr:            getEnv("PARCELSORT_ADDR", ":8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		Version:         getEnv("VERSION", APIVersion),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		MetricsEnabled:  getBool("METRICS_ENABLED", true),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil && d > 0 {
		return d
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return fallback
}
