package config

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	Postgres struct {
		Port    int    `env:"POSTGRES_PORT" env-default:"5432"`
		Host    string `env:"POSTGRES_HOST"`
		User    string `env:"POSTGRES_USER"`
		Pass    string `env:"POSTGRES_PASS"`
		Name    string `env:"POSTGRES_NAME"`
		SslMode string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	}
	Telegram struct {
		User    int64  `env:"TELEGRAM_USER"`
		Token   string `env:"TELEGRAM_TOKEN"`
		Channel string `env:"TELEGRAM_CHANNEL"`
	}
	Threads struct {
		Host              string        `env:"THREADS_HOST" env-default:"www.threads.net"`
		UserAgent         string        `env:"THREADS_USER_AGENT" env-default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/114.0.0.0 Safari/537.36"`
		ViewportWidth     int           `env:"THREADS_VIEWPORT_WIDTH" env-default:"1920"`
		ViewportHeight    int           `env:"THREADS_VIEWPORT_HEIGHT" env-default:"1080"`
		NavigationTimeout time.Duration `env:"THREADS_NAVIGATION_TIMEOUT" env-default:"30s"`
		SettleTimeout     time.Duration `env:"THREADS_SETTLE_TIMEOUT" env-default:"10s"`
		SettleInterval    time.Duration `env:"THREADS_SETTLE_INTERVAL" env-default:"500ms"`
	}
	Parser struct {
		SearchQueries       string `env:"PARSER_SEARCH_QUERIES"`
		SearchCronInterval  string `env:"PARSER_SEARCH_CRON_INTERVAL" env-default:"*/30 * * * *"`
		MaxPostsPerSearch   int    `env:"PARSER_MAX_POSTS_PER_SEARCH" env-default:"10"`
		CleanupOlderThanDay int    `env:"PARSER_CLEANUP_OLDER_THAN_DAYS" env-default:"30"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}

// GetDSN returns the postgres connection string used by goose and database/sql.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("dbname=%s user=%s password=%s host=%s port=%d sslmode=%s",
		c.Postgres.Name, c.Postgres.User, c.Postgres.Pass, c.Postgres.Host, c.Postgres.Port, c.Postgres.SslMode,
	)
}
