package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr  string
	GinMode  string
	LogLevel string

	DB DBEnv

	JWTSecret string
	JWTTTL    time.Duration

	CORSOrigins []string

	Costs CostsEnv
}

type DBEnv struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// CostsEnv configures the external cost signals and their cache.
type CostsEnv struct {
	CacheTTL        time.Duration
	CachePath       string
	WorldBankURL    string
	ExchangeRateURL string
	HTTPTimeout     time.Duration
	Retries         int
}

var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

// LoadEnv reads an optional .env file and then the process environment.
func LoadEnv() Env {
	for _, f := range []string{".env", "../.env", "../../.env"} {
		if err := godotenv.Load(f); err == nil {
			break
		}
	}

	env := Env{
		AppAddr:  getEnv("APP_ADDR", ":8080"),
		GinMode:  getEnv("GIN_MODE", ""),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		DB: DBEnv{
			Host:     getEnv("DB_HOST", "127.0.0.1"),
			Port:     getEnv("DB_PORT", "3306"),
			User:     getEnv("DB_USER", "root"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "tripplanner"),
		},
		JWTSecret:   getEnv("JWT_SECRET", "change-me-in-production"),
		JWTTTL:      time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour,
		CORSOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "")),
		Costs: CostsEnv{
			CacheTTL:        time.Duration(getEnvInt("COST_CACHE_TTL_MINUTES", 60)) * time.Minute,
			CachePath:       getEnv("COST_CACHE_PATH", "data/cost_cache.db"),
			WorldBankURL:    getEnv("WORLDBANK_URL", "https://api.worldbank.org/v2"),
			ExchangeRateURL: getEnv("EXCHANGE_RATE_URL", "https://open.er-api.com/v6"),
			HTTPTimeout:     time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", 8)) * time.Second,
			Retries:         getEnvInt("HTTP_RETRIES", 2),
		},
	}
	if len(env.CORSOrigins) == 0 {
		env.CORSOrigins = defaultCORSOrigins
	}
	return env
}

func getEnv(key, defaultValue string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue
	}
	return n
}

func splitList(raw string) []string {
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
