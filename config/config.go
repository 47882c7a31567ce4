package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/yeremiapane/restaurant-system/utils"
)

// Supported values of DB_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

type Config struct {
	Port        string
	GinMode     string
	LogLevel    string
	DBDriver    string
	DBDSN       string
	DBLogLevel  string
	CORSOrigins []string
	RateLimit   float64
	RateBurst   int
	KafkaBroker []string
	KafkaTopic  string
	SeedData    bool
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Debugf(".env file not loaded: %v", err)
	}
	return FromEnv()
}

// FromEnv builds the config from the environment only.
func FromEnv() *Config {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		GinMode:     getEnv("GIN_MODE", "debug"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		DBDriver:    strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
		DBDSN:       getEnv("DB_DSN", "restaurant.db"),
		DBLogLevel:  getEnv("DB_LOG_LEVEL", "warn"),
		CORSOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		RateLimit:   getEnvFloat("RATE_LIMIT_RPS", 50),
		RateBurst:   getEnvInt("RATE_LIMIT_BURST", 100),
		KafkaBroker: splitList(getEnv("KAFKA_BROKERS", "")),
		KafkaTopic:  getEnv("KAFKA_TOPIC", "restaurant.events"),
		SeedData:    getEnvBool("SEED_DATA", true),
	}

	if cfg.DBDriver == DriverSQLite && cfg.DBDSN == "restaurant.db" {
		utils.InfoLogger.Warn("DB_DSN not set, using local sqlite file restaurant.db")
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		utils.InfoLogger.Warnf("invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

func getEnvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		utils.InfoLogger.Warnf("invalid %s=%q, using %g", key, v, def)
		return def
	}
	return f
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		utils.InfoLogger.Warnf("invalid %s=%q, using %t", key, v, def)
		return def
	}
	return b
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
