package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/GoArmGo/FeedbackApp/internal/config"
	"github.com/GoArmGo/FeedbackApp/internal/handler"
)

// runServer запускает HTTP сервер и блокируется до отмены контекста
func runServer(
	ctx context.Context,
	cfg *config.Config,
	h *handler.FeedbackHandler,
	logger *slog.Logger,
) error {
	serverAddr := fmt.Sprintf(":%s", cfg.ServerPort)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: h.Routes(cfg.RequestTimeout),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started", "addr", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("ошибка при запуске сервера: %w", err)
	case <-ctx.Done():
	}

	logger.Info("termination signal received, stopping server")

	ctxServer, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxServer); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("server stopped gracefully")
	return nil
}
