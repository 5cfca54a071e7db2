package di

import (
	"github.com/GoArmGo/FeedbackApp/internal/app"
	"github.com/GoArmGo/FeedbackApp/internal/auth"
	"github.com/GoArmGo/FeedbackApp/internal/config"
	"github.com/GoArmGo/FeedbackApp/internal/core/ports"
	"github.com/GoArmGo/FeedbackApp/internal/database/client"
	"github.com/GoArmGo/FeedbackApp/internal/database/postgres"
	"github.com/GoArmGo/FeedbackApp/internal/database/storage"
	"github.com/GoArmGo/FeedbackApp/internal/handler"
	"github.com/GoArmGo/FeedbackApp/internal/logger"
	"github.com/GoArmGo/FeedbackApp/internal/session"
	"github.com/GoArmGo/FeedbackApp/internal/usecase"
)

// BuildApp инициализирует все зависимости и возвращает готовый объект App.
func BuildApp() (*app.App, error) {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogCfg := logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	}
	slogger := logger.NewSlog(slogCfg)

	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	// 2. Инициализация хранилищ. Драйвер выбирается конфигурацией:
	// основной путь — sqlx, альтернативный — GORM.
	var (
		userStorage     ports.UserStorage
		feedbackStorage ports.FeedbackStorage
		closers         []func() error
	)

	switch cfg.DBDriver {
	case "gorm":
		if err := client.ApplyMigrations(cfg.DatabaseURL, cfg.MigrationsPath, slogger); err != nil {
			return nil, err
		}
		gormDB, err := postgres.NewGormDB(cfg, slogger)
		if err != nil {
			return nil, err
		}
		userStorage = postgres.NewGormUserStorage(gormDB, slogger)
		feedbackStorage = postgres.NewGormFeedbackStorage(gormDB, slogger)
		if sqlDB, err := gormDB.DB(); err == nil {
			closers = append(closers, sqlDB.Close)
		}
	default:
		dbClient, err := client.NewClient(cfg, slogger)
		if err != nil {
			return nil, err
		}
		userStorage = storage.NewUserStorage(dbClient.DB, slogger)
		feedbackStorage = storage.NewFeedbackStorage(dbClient.DB, slogger)
		closers = append(closers, dbClient.Close)
	}

	// 3. Аутентификация и сессии
	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	authenticator := auth.NewAuthenticator(userStorage, hasher, slogger)
	sessionManager := session.NewManager(
		[]byte(cfg.SessionSecret),
		cfg.SessionCookieName,
		cfg.SessionMaxAge,
		slogger,
	)

	// 4. Инициализация бизнес-логики (usecases)
	accountUseCase := usecase.NewAccountUseCase(authenticator, userStorage, feedbackStorage, slogger)
	feedbackUseCase := usecase.NewFeedbackUseCase(feedbackStorage, slogger)

	// 5. Обработчик HTTP-запросов
	feedbackHandler := handler.NewFeedbackHandler(accountUseCase, feedbackUseCase, sessionManager, slogger)

	// 6. Сборка итогового приложения
	application := app.NewApp(cfg, slogger, feedbackHandler, closers...)

	slogger.Info("dependencies initialized", "db_driver", cfg.DBDriver)
	return application, nil
}
