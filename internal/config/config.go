package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL,required"`
	ServerPort  string `env:"SERVER_PORT"`

	// DBDriver выбирает реализацию хранилища: "sqlx" или "gorm".
	DBDriver       string `env:"DB_DRIVER" envDefault:"sqlx"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"file://internal/database/postgres/migrations"`

	// Настройки сессий
	SessionSecret     string `env:"SESSION_SECRET,required"`
	SessionCookieName string `env:"SESSION_COOKIE_NAME" envDefault:"fb_session"`
	SessionMaxAge     int    `env:"SESSION_MAX_AGE" envDefault:"86400"` // секунды

	// Стоимость bcrypt-хеширования паролей
	BcryptCost int `env:"BCRYPT_COST" envDefault:"12"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// LoadConfig загружает конфигурацию из переменных окружения.
// В режиме разработки пытается загрузить .env файл.
func LoadConfig() (*Config, error) {
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("ошибка загрузки .env файла: %w", err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("ошибка парсинга конфигурации из окружения: %w", err)
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}

	if cfg.DBDriver != "sqlx" && cfg.DBDriver != "gorm" {
		return nil, fmt.Errorf("неизвестный DB_DRIVER: %s (используйте 'sqlx' или 'gorm')", cfg.DBDriver)
	}

	return &cfg, nil
}
