package server

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the HTTP server configuration, read from the environment.
type Config struct {
	Addr    string `env:"KSA_HTTP_ADDR" envDefault:":8080"`
	LogMode string `env:"KSA_LOG_MODE" envDefault:"dev"`
	LogFile string `env:"KSA_LOG_FILE"`

	CORSOrigins []string `env:"KSA_CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:5173"`

	// StartRate is how many assessments one client IP may start per minute.
	StartRate int `env:"KSA_START_RATE" envDefault:"10"`

	// DefaultSectors seed a new user's phase map when the request names none.
	DefaultSectors []string `env:"KSA_DEFAULT_SECTORS" envSeparator:"," envDefault:"Cloud Computing,Project Management,Soft Skills"`

	SessionIdleTimeout time.Duration `env:"KSA_SESSION_IDLE_TIMEOUT" envDefault:"2h"`
	ShutdownTimeout    time.Duration `env:"KSA_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LoadConfig parses Config from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.StartRate <= 0 {
		return Config{}, fmt.Errorf("KSA_START_RATE must be positive, got %d", cfg.StartRate)
	}
	return cfg, nil
}
