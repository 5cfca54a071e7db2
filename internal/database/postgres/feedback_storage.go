package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/GoArmGo/FeedbackApp/internal/domain"
)

// GormFeedbackStorage реализует интерфейс ports.FeedbackStorage с использованием GORM
type GormFeedbackStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormFeedbackStorage создает новый экземпляр GormFeedbackStorage
func NewGormFeedbackStorage(db *gorm.DB, logger *slog.Logger) *GormFeedbackStorage {
	return &GormFeedbackStorage{db: db, logger: logger}
}

// CreateFeedback сохраняет отзыв; автоинкрементный ID заполняет GORM.
func (s *GormFeedbackStorage) CreateFeedback(ctx context.Context, feedback *domain.Feedback) error {
	result := s.db.WithContext(ctx).Create(feedback)
	if result.Error != nil {
		return fmt.Errorf("ошибка при сохранении отзыва с GORM: %w", result.Error)
	}

	s.logger.Info("feedback saved successfully", "id", feedback.ID, "owner", feedback.OwnerUsername)
	return nil
}

// GetFeedbackByID получает отзыв по ID с помощью GORM.
func (s *GormFeedbackStorage) GetFeedbackByID(ctx context.Context, id int64) (*domain.Feedback, error) {
	var feedback domain.Feedback
	result := s.db.WithContext(ctx).First(&feedback, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			s.logger.Warn("feedback not found by id", "id", id)
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении отзыва по ID с GORM: %w", result.Error)
	}
	return &feedback, nil
}

// ListFeedbackByOwner получает все отзывы пользователя с помощью GORM.
func (s *GormFeedbackStorage) ListFeedbackByOwner(ctx context.Context, username string) ([]domain.Feedback, error) {
	feedbacks := []domain.Feedback{}
	result := s.db.WithContext(ctx).
		Where("owner_username = ?", username).
		Order("created_at ASC, id ASC").
		Find(&feedbacks)
	if result.Error != nil {
		return nil, fmt.Errorf("ошибка при получении отзывов пользователя с GORM: %w", result.Error)
	}
	return feedbacks, nil
}

// UpdateFeedback сохраняет измененные поля отзыва с помощью GORM.
func (s *GormFeedbackStorage) UpdateFeedback(ctx context.Context, feedback *domain.Feedback) error {
	result := s.db.WithContext(ctx).
		Model(&domain.Feedback{}).
		Where("id = ?", feedback.ID).
		Updates(map[string]interface{}{
			"title":      feedback.Title,
			"content":    feedback.Content,
			"updated_at": feedback.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("ошибка при обновлении отзыва с GORM: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteFeedback удаляет отзыв по ID с помощью GORM.
func (s *GormFeedbackStorage) DeleteFeedback(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Delete(&domain.Feedback{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("ошибка при удалении отзыва с GORM: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteFeedbackByOwner удаляет все отзывы пользователя с помощью GORM.
func (s *GormFeedbackStorage) DeleteFeedbackByOwner(ctx context.Context, username string) (int64, error) {
	result := s.db.WithContext(ctx).Delete(&domain.Feedback{}, "owner_username = ?", username)
	if result.Error != nil {
		return 0, fmt.Errorf("ошибка при удалении отзывов пользователя с GORM: %w", result.Error)
	}

	s.logger.Info("feedback removed for owner", "owner", username, "count", result.RowsAffected)
	return result.RowsAffected, nil
}
