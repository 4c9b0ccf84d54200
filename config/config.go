package config

import (
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Config carries everything the server reads from the environment. The JWT
// secret and admin credentials live here and nowhere else in the code.
type Config struct {
	Port          string
	DataFile      string
	JWTSecret     string
	TokenTTL      time.Duration
	AdminAccNo    string
	AdminPassword string
	DemoMode      bool
	SignupBonus   decimal.Decimal
	ReadTimeout   time.Duration
	WriteTimeout  time.Duration
	IdleTimeout   time.Duration
}

// Load reads configuration from the environment with demo-friendly defaults.
// DEMO_MODE gates the passwordless voice-login endpoint and is off unless
// explicitly enabled.
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "3000"),
		DataFile:      getEnv("DATA_FILE", "data.json"),
		JWTSecret:     getEnv("JWT_SECRET", "supersecretjwtkey"),
		TokenTTL:      getDurationEnv("TOKEN_TTL", 2*time.Hour),
		AdminAccNo:    getEnv("ADMIN_ACCNO", "ADMIN001"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		DemoMode:      getBoolEnv("DEMO_MODE", false),
		SignupBonus:   getDecimalEnv("SIGNUP_BONUS", decimal.NewFromInt(10000)),
		ReadTimeout:   getDurationEnv("READ_TIMEOUT", 30*time.Second),
		WriteTimeout:  getDurationEnv("WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:   getDurationEnv("IDLE_TIMEOUT", 120*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getDecimalEnv(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if d, err := decimal.NewFromString(value); err == nil {
			return d
		}
	}
	return defaultValue
}
