package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config is everything the server reads from the environment.
type Config struct {
	Port    string
	GinMode string

	DBDriver string // "mysql" or "sqlite"
	DBDSN    string

	JWTSecret string

	MidtransServerKey string
	MidtransEnv       string // "sandbox" or "production"

	FirebaseCredentials string // path to the service account JSON, empty disables push

	RateLimit float64 // requests per second per IP
	RateBurst int

	LogLevel   string
	CORSOrigin string
}

// Load reads the environment. Call godotenv.Load before it so .env values
// are visible.
func Load() Config {
	cfg := Config{
		Port:                getEnv("PORT", "8080"),
		GinMode:             getEnv("GIN_MODE", "release"),
		DBDriver:            getEnv("DB_DRIVER", "mysql"),
		DBDSN:               os.Getenv("DB_DSN"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		MidtransServerKey:   os.Getenv("MIDTRANS_SERVER_KEY"),
		MidtransEnv:         getEnv("MIDTRANS_ENV", "sandbox"),
		FirebaseCredentials: os.Getenv("FIREBASE_CREDENTIALS"),
		RateLimit:           getEnvFloat("RATE_LIMIT", 5),
		RateBurst:           getEnvInt("RATE_BURST", 10),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		CORSOrigin:          getEnv("CORS_ORIGIN", "*"),
	}

	if cfg.DBDSN == "" {
		switch cfg.DBDriver {
		case "sqlite":
			cfg.DBDSN = "kdos.db"
		default:
			cfg.DBDSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
				getEnv("DB_USER", "root"),
				os.Getenv("DB_PASSWORD"),
				getEnv("DB_HOST", "127.0.0.1"),
				getEnv("DB_PORT", "3306"),
				getEnv("DB_NAME", "kdos"),
			)
		}
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return defaultValue
}
