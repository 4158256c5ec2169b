package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const DefaultJWTSecret = "your-secret-key-change-this-in-production"

type Config struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Port     string `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     int    `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"newsroom"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	JWTSecret string `env:"JWT_SECRET" envDefault:"your-secret-key-change-this-in-production"`
	MediaRoot string `env:"MEDIA_ROOT" envDefault:"./media"`

	// Front page reading windows, as HH:MM or HH:MM:SS time-of-day.
	MorningStart string `env:"FRONTPAGE_MORNING_START" envDefault:"11:00:00"`
	MiddayStart  string `env:"FRONTPAGE_MIDDAY_START" envDefault:"11:00:00"`
	MiddayEnd    string `env:"FRONTPAGE_MIDDAY_END" envDefault:"16:00:00"`
	EveningStart string `env:"FRONTPAGE_EVENING_START" envDefault:"16:00:00"`
	Timezone     string `env:"FRONTPAGE_TIMEZONE" envDefault:"Local"`

	SectionFrontpageLimit int `env:"SECTION_FRONTPAGE_LIMIT" envDefault:"3"`
}

// Load reads an optional .env file and parses the environment.
func Load() (*Config, bool, error) {
	dotenv := godotenv.Load() == nil

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, dotenv, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.SectionFrontpageLimit < 1 {
		return nil, dotenv, fmt.Errorf("SECTION_FRONTPAGE_LIMIT must be positive, got %d", cfg.SectionFrontpageLimit)
	}
	if _, err := cfg.Location(); err != nil {
		return nil, dotenv, err
	}
	return cfg, dotenv, nil
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// Location resolves the timezone used to decide the time of day for the
// front page.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading FRONTPAGE_TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}
