package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds everything the portal reads from the environment.
type Config struct {
	Environment string
	ServerHost  string
	ServerPort  string

	JWTSecret    string
	TokenTTL     time.Duration
	CEOEmail     string
	CEOPasswords []string

	ProcessingDelay time.Duration
	MaxFileSize     int64 // bytes
}

// Load reads configuration from environment variables and an optional local
// .env file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables only")
	}

	viper.SetDefault("ENV", "development")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_PORT", "8081")

	viper.SetDefault("JWT_SECRET", "dev-insecure-secret-change")
	viper.SetDefault("TOKEN_TTL_HOURS", 24)
	viper.SetDefault("CEO_EMAIL", "ceo@hugamara.com")
	// The demo deployment accepts the current and the previous CEO password.
	viper.SetDefault("CEO_PASSWORDS", "CEO@2026!,CEO@2024!")

	viper.SetDefault("PROCESSING_DELAY_MS", 2500)
	viper.SetDefault("MAX_FILE_SIZE_MB", 50)

	viper.AutomaticEnv()

	cfg := &Config{
		Environment:     viper.GetString("ENV"),
		ServerHost:      viper.GetString("SERVER_HOST"),
		ServerPort:      viper.GetString("SERVER_PORT"),
		JWTSecret:       viper.GetString("JWT_SECRET"),
		TokenTTL:        time.Duration(viper.GetInt("TOKEN_TTL_HOURS")) * time.Hour,
		CEOEmail:        strings.ToLower(strings.TrimSpace(viper.GetString("CEO_EMAIL"))),
		CEOPasswords:    splitList(viper.GetString("CEO_PASSWORDS")),
		ProcessingDelay: time.Duration(viper.GetInt("PROCESSING_DELAY_MS")) * time.Millisecond,
		MaxFileSize:     viper.GetInt64("MAX_FILE_SIZE_MB") * 1024 * 1024,
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must not be empty")
	}
	if len(cfg.CEOPasswords) == 0 {
		return nil, fmt.Errorf("CEO_PASSWORDS must contain at least one password")
	}
	if cfg.MaxFileSize <= 0 {
		return nil, fmt.Errorf("MAX_FILE_SIZE_MB must be positive")
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
