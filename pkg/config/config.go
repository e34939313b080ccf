package config

import (
	"log"
	"os"
	"slices"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	AppEnv       string
	IsStaging    bool
	IsProduction bool

	// persistence and fan-out backends
	DatabaseDSN string
	RedisAddr   string

	JWTSecret string
	Port      string

	// runtime tunables
	RateLimitWindowSeconds int
	RateLimitCapacity      int
	HistoryPageSize        int
	UserCacheTTLSeconds    int
)

// loadAppEnv loads .env for non-production environments only; production
// reads from the host environment.
func loadAppEnv() {
	AppEnv = os.Getenv("APP_ENV")
	if AppEnv == "production" {
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Printf("[config] no .env file loaded: %v", err)
	}
}

func init() {
	loadAppEnv()

	AppEnv = os.Getenv("APP_ENV")
	if AppEnv == "" {
		AppEnv = "staging"
	}
	if !slices.Contains([]string{"staging", "production"}, AppEnv) {
		log.Fatal("environment variable APP_ENV must be 'staging' or 'production'")
	}
	IsStaging = AppEnv == "staging"
	IsProduction = AppEnv == "production"

	DatabaseDSN = os.Getenv("DATABASE_DSN")
	RedisAddr = os.Getenv("REDIS_ADDR")

	JWTSecret = os.Getenv("JWT_SECRET_KEY")
	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "5000"
	}

	RateLimitWindowSeconds = atoiOr(os.Getenv("RATE_LIMIT_WINDOW_SECONDS"), 10)
	RateLimitCapacity = atoiOr(os.Getenv("RATE_LIMIT_CAPACITY"), 5)
	HistoryPageSize = atoiOr(os.Getenv("HISTORY_PAGE_SIZE"), 50)
	UserCacheTTLSeconds = atoiOr(os.Getenv("USER_CACHE_TTL_SECONDS"), 30)

	if IsProduction && JWTSecret == "" {
		log.Fatal("JWT_SECRET_KEY must be set in production")
	}

	log.Printf("[config] AppEnv=%s IsStaging=%v IsProduction=%v", AppEnv, IsStaging, IsProduction)
	log.Printf("[config] RedisBackplane=%v", RedisAddr != "")
	log.Printf("[config] RateLimit window=%ds capacity=%d pageSize=%d userCacheTTL=%ds",
		RateLimitWindowSeconds, RateLimitCapacity, HistoryPageSize, UserCacheTTLSeconds)
}

func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}
