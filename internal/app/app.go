package app

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/GoArmGo/FeedbackApp/internal/config"
	"github.com/GoArmGo/FeedbackApp/internal/handler"
)

// App собирает конфигурацию и готовый обработчик запросов.
type App struct {
	cfg     *config.Config
	logger  *slog.Logger
	handler *handler.FeedbackHandler
	closers []func() error
}

// NewApp создает приложение. closers закрываются при завершении
// в порядке добавления (подключения к бд и т.п.).
func NewApp(
	cfg *config.Config,
	logger *slog.Logger,
	h *handler.FeedbackHandler,
	closers ...func() error,
) *App {
	return &App{
		cfg:     cfg,
		logger:  logger,
		handler: h,
		closers: closers,
	}
}

// LoggerIns возвращает основной логгер приложения.
func (a *App) LoggerIns() *slog.Logger {
	return a.logger
}

// Run запускает HTTP-сервер и блокируется до сигнала завершения.
func (a *App) Run(ctx context.Context) error {
	// канал для graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := runServer(ctx, a.cfg, a.handler, a.logger); err != nil {
		return err
	}

	a.logger.Info("shutting down application")

	if err := a.Shutdown(); err != nil {
		a.logger.Error("shutdown error", "error", err)
	}

	a.logger.Info("application stopped")
	return nil
}

// Shutdown закрывает все ресурсы приложения
func (a *App) Shutdown() error {
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			return fmt.Errorf("ошибка закрытия ресурса: %w", err)
		}
	}
	return nil
}
