package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds every runtime setting. It is loaded once in main and passed
// explicitly into constructors; nothing reads the environment after Load.
type Config struct {
	Port        string `env:"PORT,         default=8080"`
	Env         string `env:"APP_ENV,      default=development"`
	CORSOrigins string `env:"CORS_ORIGINS, default=http://localhost:3000,http://localhost:5173"`
	SentryDSN   string `env:"SENTRY_DSN"`

	JWTSecret string        `env:"JWT_SECRET"`
	JWTExpiry time.Duration `env:"JWT_EXPIRY, default=168h"`

	LogLevel     string        `env:"LOG_LEVEL,     default=info"`
	LogRetention time.Duration `env:"LOG_RETENTION, default=720h"`

	DB DBConfig
}

type DBConfig struct {
	Host     string `env:"DB_HOST,    default=localhost"`
	Port     string `env:"DB_PORT,    default=5432"`
	User     string `env:"DB_USER,    default=postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME,    default=kampus_admin"`
	SSLMode  string `env:"DB_SSLMODE, default=disable"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (c *DBConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=UTC"
}
