package config

import (
	"fmt"
	"strings"
	"time"

	"project_tracker/internal/logger"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	AppPort     string `env:"APP_PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	JWTSecret   string `env:"JWT_SECRET,required,notEmpty"`
	JWTIssuer   string `env:"JWT_ISSUER" envDefault:"project-tracker"`
	JWTAudience string `env:"JWT_AUDIENCE" envDefault:"project-tracker-web"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogJSON  bool   `env:"LOG_JSON" envDefault:"false"`

	// Rate limiting. An empty RedisAddr selects the in-process limiter.
	RedisAddr       string        `env:"REDIS_ADDR"`
	RedisPassword   string        `env:"REDIS_PASSWORD"`
	RedisDB         int           `env:"REDIS_DB" envDefault:"0"`
	APIRateLimit    int           `env:"API_RATE_LIMIT" envDefault:"120"`
	APIRateWindow   time.Duration `env:"API_RATE_WINDOW" envDefault:"1m"`
	AuthRateLimit   int           `env:"AUTH_RATE_LIMIT" envDefault:"5"`
	AuthRateWindow  time.Duration `env:"AUTH_RATE_WINDOW" envDefault:"1m"`
	CORSAllowOrigin []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	AutoMigrate     bool          `env:"AUTO_MIGRATE" envDefault:"false"`
	SeedDemoUsers   bool          `env:"SEED_DEMO_USERS" envDefault:"false"`
	BcryptCost      int           `env:"BCRYPT_COST" envDefault:"12"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Parse reads an optional .env file and then the process environment.
func Parse() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load is Parse for main packages: a bad environment stops the process.
func Load() *Config {
	cfg, err := Parse()
	if err != nil {
		logger.Fatal("invalid configuration", "error", err)
	}
	return cfg
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET is blank")
	}
	if c.APIRateLimit <= 0 || c.AuthRateLimit <= 0 {
		return fmt.Errorf("rate limits must be positive")
	}
	if c.APIRateWindow <= 0 || c.AuthRateWindow <= 0 {
		return fmt.Errorf("rate windows must be positive")
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("BCRYPT_COST %d out of range [4,31]", c.BcryptCost)
	}
	return nil
}
