package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting the service reads from the environment.
type Config struct {
	Port     string
	GinMode  string
	DBSource string
	// DBMaxOpenConns caps the pool handed to gorm.
	DBMaxOpenConns int
	// DBLogLevel is one of silent, error, warn, info.
	DBLogLevel string

	JWTSecret []byte
	JWTTTL    time.Duration
	// AuthPasswordHash is a bcrypt hash; when empty /token accepts any password.
	AuthPasswordHash string

	StrictStatusTransitions bool
	CORSOrigins             []string
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("⚠️ could not read .env: %v", err)
	}

	return &Config{
		Port:                    getEnv("PORT", "8080"),
		GinMode:                 getEnv("GIN_MODE", "debug"),
		DBSource:                getEnv("DB_SOURCE", "orders_and_categories.db"),
		DBMaxOpenConns:          getEnvInt("DB_MAX_OPEN_CONNS", 4),
		DBLogLevel:              getEnv("DB_LOG_LEVEL", "warn"),
		JWTSecret:               []byte(getEnv("JWT_SECRET", "restaurant_orders_secret_2024")),
		JWTTTL:                  getEnvDuration("JWT_TTL", 24*time.Hour),
		AuthPasswordHash:        getEnv("AUTH_PASSWORD_HASH", ""),
		StrictStatusTransitions: getEnvBool("STRICT_STATUS_TRANSITIONS", false),
		CORSOrigins:             splitList(getEnv("CORS_ORIGINS", "*")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
