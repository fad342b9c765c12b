package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Client ClientConfig
	Server ServerConfig
	Logger LoggerConfig
}

// ClientConfig configures the API client side.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
	// TokenFile is where the token pair is persisted between runs. Mock and
	// real backends use separate files so their sessions never mix.
	TokenFile string
	// TokenKey, when exactly 32 bytes long, enables at-rest encryption of
	// the token file.
	TokenKey string
}

// ServerConfig configures the bundled mock backend.
type ServerConfig struct {
	Port       string
	JWTSecret  string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	// Seed loads the demo fixtures (demo user, actors, transactions).
	Seed bool
	// AllowedOrigin is the UI origin allowed by CORS.
	AllowedOrigin string
}

type LoggerConfig struct {
	Level string
}

// Load reads configuration from a .env file if present, falling back to
// environment variables with defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional; plain environment variables work too
	}

	accessTTL, _ := strconv.Atoi(getEnv("JWT_ACCESS_TTL_MINUTES", "30"))
	refreshTTL, _ := strconv.Atoi(getEnv("JWT_REFRESH_TTL_HOURS", "168"))
	timeout, _ := strconv.Atoi(getEnv("CLIENT_TIMEOUT_SECONDS", "30"))
	seed := getEnv("MOCK_SEED", "true") == "true"

	return &Config{
		Client: ClientConfig{
			BaseURL:   getEnv("API_BASE_URL", "http://127.0.0.1:8000"),
			Timeout:   time.Duration(timeout) * time.Second,
			TokenFile: getEnv("TOKEN_FILE", defaultTokenFile()),
			TokenKey:  os.Getenv("TOKEN_ENCRYPTION_KEY"),
		},
		Server: ServerConfig{
			Port:          getEnv("PORT", "8000"),
			JWTSecret:     getEnv("JWT_SECRET", "fintrack-dev-secret-change-me"),
			AccessTTL:     time.Duration(accessTTL) * time.Minute,
			RefreshTTL:    time.Duration(refreshTTL) * time.Hour,
			Seed:          seed,
			AllowedOrigin: getEnv("FRONTEND_URL", "http://localhost:3000"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".fintrack_tokens.json"
	}
	return filepath.Join(home, ".fintrack", "tokens.json")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
