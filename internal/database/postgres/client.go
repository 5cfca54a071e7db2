package postgres

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/GoArmGo/FeedbackApp/internal/config"
)

// NewGormDB открывает подключение к PostgreSQL через GORM.
// Перевод ошибок GORM не включается: хранилища разбирают исходную
// ошибку драйвера, где доступно имя нарушенного ограничения.
func NewGormDB(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	start := time.Now()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		logger.Error("failed to open GORM connection", "error", err)
		return nil, fmt.Errorf("ошибка открытия соединения с БД через GORM: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("ошибка получения sql.DB из GORM: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	logger.Info("GORM connection established successfully",
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return db, nil
}
