package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers accepted in STORE_DRIVER.
const (
	StoreDriverMySQL    = "mysql"
	StoreDriverEmbedded = "embedded"
	StoreDriverBadger   = "badger"
	StoreDriverMemory   = "memory"
	StoreDriverNone     = "none"
)

// AppConfig holds application configuration loaded from environment variables and .env file.
type AppConfig struct {
	Port string

	// Persistence medium for the integration store
	StoreDriver string
	DBHost      string
	DBPort      int
	DBUser      string
	DBPass      string
	DBName      string
	BadgerPath  string

	// Seed empty collections with the built-in sample datasets
	SeedSampleData bool

	// Simulated network latency applied by the integration services
	LatencyMin time.Duration
	LatencyMax time.Duration

	// Dashboard auto-refresh interval, 0 disables the loop
	DashboardRefreshInterval time.Duration

	// Logging config
	LogLevel      string
	LogFile       string
	LogMaxSize    int // MB
	LogMaxBackups int
	LogMaxAge     int // days
	LogCompress   bool
}

// Cfg is the global application configuration instance.
var Cfg AppConfig

// LoadConfig loads and validates application configuration from .env file and environment variables.
func LoadConfig() error {
	if err := godotenv.Load(); err != nil {
		// logger is not initialized yet
		log.Printf("[WARN] .env file not found or cannot be loaded: %v", err)
	} else {
		log.Printf("[INFO] .env file loaded successfully")
	}

	Cfg.Port = getEnv("PORT", "8081")

	Cfg.StoreDriver = normalizeDriver(getEnv("STORE_DRIVER", StoreDriverEmbedded))
	Cfg.DBHost = getEnv("DB_HOST", "127.0.0.1")
	Cfg.DBPort = getEnvInt("DB_PORT", 3306)
	Cfg.DBUser = getEnv("DB_USER", "root")
	Cfg.DBPass = getEnv("DB_PASS", "")
	Cfg.DBName = getEnv("DB_NAME", "nara_integration")
	Cfg.BadgerPath = getEnv("BADGER_PATH", "data/badger")

	Cfg.SeedSampleData = getEnvBool("SEED_SAMPLE_DATA", true)

	Cfg.LatencyMin = time.Duration(getEnvInt("LATENCY_MIN_MS", 100)) * time.Millisecond
	Cfg.LatencyMax = time.Duration(getEnvInt("LATENCY_MAX_MS", 150)) * time.Millisecond
	if Cfg.LatencyMax < Cfg.LatencyMin {
		Cfg.LatencyMax = Cfg.LatencyMin
	}

	Cfg.DashboardRefreshInterval = time.Duration(getEnvInt("DASHBOARD_REFRESH_SECONDS", 60)) * time.Second

	Cfg.LogLevel = getEnv("LOG_LEVEL", "INFO")
	Cfg.LogFile = getEnv("LOG_FILE", "")
	Cfg.LogMaxSize = getEnvInt("LOG_MAX_SIZE", 10)
	Cfg.LogMaxBackups = getEnvInt("LOG_MAX_BACKUPS", 3)
	Cfg.LogMaxAge = getEnvInt("LOG_MAX_AGE", 28)
	Cfg.LogCompress = getEnvBool("LOG_COMPRESS", true)

	log.Printf("[INFO] Config loaded - Store: %s, DB: %s@%s:%d/%s, Seed: %t, LogLevel: %s",
		Cfg.StoreDriver, Cfg.DBUser, Cfg.DBHost, Cfg.DBPort, Cfg.DBName, Cfg.SeedSampleData, Cfg.LogLevel)
	log.Printf("[INFO] Latency %v-%v, dashboard refresh every %v",
		Cfg.LatencyMin, Cfg.LatencyMax, Cfg.DashboardRefreshInterval)

	return nil
}

func normalizeDriver(driver string) string {
	switch d := strings.ToLower(strings.TrimSpace(driver)); d {
	case StoreDriverMySQL, StoreDriverEmbedded, StoreDriverBadger, StoreDriverMemory, StoreDriverNone:
		return d
	default:
		log.Printf("[WARN] unknown STORE_DRIVER %q, using %s", driver, StoreDriverMemory)
		return StoreDriverMemory
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if boolVal, err := strconv.ParseBool(val); err == nil {
			return boolVal
		}
	}
	return defaultVal
}
