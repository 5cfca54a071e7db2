package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/GoArmGo/FeedbackApp/internal/domain"
)

// FeedbackStorage реализует интерфейс ports.FeedbackStorage поверх sqlx
type FeedbackStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewFeedbackStorage создает новый экземпляр FeedbackStorage
func NewFeedbackStorage(db *sqlx.DB, logger *slog.Logger) *FeedbackStorage {
	return &FeedbackStorage{db: db, logger: logger}
}

// CreateFeedback сохраняет отзыв и получает назначенный базой ID.
// ID выдает identity-колонка, поэтому два одновременных создания
// не могут получить одинаковый идентификатор.
func (s *FeedbackStorage) CreateFeedback(ctx context.Context, feedback *domain.Feedback) error {
	start := time.Now()

	query := `
	INSERT INTO feedbacks (title, content, owner_username, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id
	`

	err := s.db.QueryRowxContext(ctx, query,
		feedback.Title,
		feedback.Content,
		feedback.OwnerUsername,
		feedback.CreatedAt,
		feedback.UpdatedAt,
	).Scan(&feedback.ID)
	if err != nil {
		s.logger.Error("failed to save feedback", "owner", feedback.OwnerUsername, "error", err)
		return fmt.Errorf("ошибка при сохранении отзыва: %w", err)
	}

	s.logger.Info("feedback saved successfully",
		"id", feedback.ID,
		"owner", feedback.OwnerUsername,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// GetFeedbackByID получает отзыв по ID.
func (s *FeedbackStorage) GetFeedbackByID(ctx context.Context, id int64) (*domain.Feedback, error) {
	var feedback domain.Feedback
	err := s.db.GetContext(ctx, &feedback, `SELECT * FROM feedbacks WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("feedback not found by id", "id", id)
			return nil, domain.ErrNotFound
		}
		s.logger.Error("failed to get feedback by id", "id", id, "error", err)
		return nil, fmt.Errorf("ошибка при получении отзыва по ID: %w", err)
	}
	return &feedback, nil
}

// ListFeedbackByOwner получает все отзывы пользователя.
func (s *FeedbackStorage) ListFeedbackByOwner(ctx context.Context, username string) ([]domain.Feedback, error) {
	start := time.Now()

	q := `
	SELECT * FROM feedbacks
	WHERE owner_username = $1
	ORDER BY created_at ASC, id ASC
	`

	feedbacks := []domain.Feedback{}
	if err := s.db.SelectContext(ctx, &feedbacks, q, username); err != nil {
		s.logger.Error("failed to list feedback by owner", "owner", username, "error", err)
		return nil, fmt.Errorf("ошибка при получении отзывов пользователя: %w", err)
	}

	s.logger.Info("feedback listed",
		"owner", username,
		"count", len(feedbacks),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return feedbacks, nil
}

// UpdateFeedback сохраняет измененные title и content отзыва.
func (s *FeedbackStorage) UpdateFeedback(ctx context.Context, feedback *domain.Feedback) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE feedbacks SET title = $1, content = $2, updated_at = $3 WHERE id = $4
	`, feedback.Title, feedback.Content, feedback.UpdatedAt, feedback.ID)
	if err != nil {
		s.logger.Error("failed to update feedback", "id", feedback.ID, "error", err)
		return fmt.Errorf("ошибка при обновлении отзыва: %w", err)
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteFeedback удаляет отзыв по ID.
func (s *FeedbackStorage) DeleteFeedback(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM feedbacks WHERE id = $1`, id)
	if err != nil {
		s.logger.Error("failed to delete feedback", "id", id, "error", err)
		return fmt.Errorf("ошибка при удалении отзыва: %w", err)
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteFeedbackByOwner удаляет все отзывы пользователя.
func (s *FeedbackStorage) DeleteFeedbackByOwner(ctx context.Context, username string) (int64, error) {
	start := time.Now()

	res, err := s.db.ExecContext(ctx, `DELETE FROM feedbacks WHERE owner_username = $1`, username)
	if err != nil {
		s.logger.Error("failed to delete feedback by owner", "owner", username, "error", err)
		return 0, fmt.Errorf("ошибка при удалении отзывов пользователя: %w", err)
	}

	affected, _ := res.RowsAffected()
	s.logger.Info("feedback removed for owner",
		"owner", username,
		"count", affected,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return affected, nil
}
