package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/GoArmGo/FeedbackApp/internal/auth"
	"github.com/GoArmGo/FeedbackApp/internal/core/ports"
	"github.com/GoArmGo/FeedbackApp/internal/domain"
	"github.com/GoArmGo/FeedbackApp/internal/forms"
)

// feedbackUseCase implements FeedbackUseCase
type feedbackUseCase struct {
	feedbackStorage ports.FeedbackStorage
	logger          *slog.Logger
}

// NewFeedbackUseCase создает новый экземпляр FeedbackUseCase.
func NewFeedbackUseCase(feedbackStorage ports.FeedbackStorage, logger *slog.Logger) FeedbackUseCase {
	return &feedbackUseCase{feedbackStorage: feedbackStorage, logger: logger}
}

// AddFeedback создает отзыв от имени identity на его собственной странице.
func (uc *feedbackUseCase) AddFeedback(ctx context.Context, identity, username string, form forms.FeedbackForm) (*domain.Feedback, error) {
	if !auth.CanPostFeedback(identity, username) {
		return nil, domain.ErrUnauthorized
	}

	if err := form.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	feedback := &domain.Feedback{
		Title:         form.Title,
		Content:       form.Content,
		OwnerUsername: identity,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.feedbackStorage.CreateFeedback(ctx, feedback); err != nil {
		return nil, err
	}

	uc.logger.Info("feedback created", "id", feedback.ID, "owner", identity)
	return feedback, nil
}

// UpdateFeedback изменяет отзыв после проверки владельца.
// Сначала загрузка (NotFound для неизвестного id), затем авторизация.
func (uc *feedbackUseCase) UpdateFeedback(ctx context.Context, identity string, id int64, form forms.FeedbackForm) (*domain.Feedback, error) {
	feedback, err := uc.feedbackStorage.GetFeedbackByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !auth.CanModifyFeedback(identity, feedback.OwnerUsername) {
		return nil, domain.ErrUnauthorized
	}

	if err := form.Validate(); err != nil {
		return nil, err
	}

	feedback.Title = form.Title
	feedback.Content = form.Content
	feedback.UpdatedAt = time.Now()

	if err := uc.feedbackStorage.UpdateFeedback(ctx, feedback); err != nil {
		return nil, err
	}

	uc.logger.Info("feedback updated", "id", feedback.ID, "owner", identity)
	return feedback, nil
}

// DeleteFeedback удаляет отзыв после проверки владельца.
func (uc *feedbackUseCase) DeleteFeedback(ctx context.Context, identity string, id int64) error {
	feedback, err := uc.feedbackStorage.GetFeedbackByID(ctx, id)
	if err != nil {
		return err
	}

	if !auth.CanModifyFeedback(identity, feedback.OwnerUsername) {
		return domain.ErrUnauthorized
	}

	if err := uc.feedbackStorage.DeleteFeedback(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("feedback deleted", "id", id, "owner", identity)
	return nil
}
