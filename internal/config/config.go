package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters. It is built once at
// startup and passed into each component that needs it.
type Config struct {
	Port     string   `env:"PORT" envDefault:"3000"`
	LogLevel int      `env:"LOG_LEVEL" envDefault:"0"`
	MediaDir string   `env:"MEDIA_DIR" envDefault:"mp3"`
	Database Database `envPrefix:"POSTGRES_"`
	JWT      JWT      `envPrefix:"JWT_"`
	SMTP     SMTP     `envPrefix:"SMTP_"`
	Mail     Mail     `envPrefix:"EMAIL_"`
}

// Database contains database connection parameters.
type Database struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"5432"`
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	Name     string `env:"DB"`
}

// DSN builds the connection string for lib/pq.
func (d Database) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", d.User, d.Password, d.Host, d.Port, d.Name)
}

// JWT contains token signing parameters.
type JWT struct {
	Secret string `env:"SECRET"`
}

// SMTP contains outbound email transport parameters.
type SMTP struct {
	Host     string `env:"HOST"`
	Port     string `env:"PORT" envDefault:"465"`
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
}

// Mail contains message addressing parameters.
type Mail struct {
	From  string `env:"FROM"`
	Admin string `env:"ADMIN"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
