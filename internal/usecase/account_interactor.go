package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/FeedbackApp/internal/auth"
	"github.com/GoArmGo/FeedbackApp/internal/core/ports"
	"github.com/GoArmGo/FeedbackApp/internal/domain"
	"github.com/GoArmGo/FeedbackApp/internal/forms"
)

// accountUseCase implements AccountUseCase
type accountUseCase struct {
	authenticator   *auth.Authenticator
	userStorage     ports.UserStorage
	feedbackStorage ports.FeedbackStorage
	logger          *slog.Logger
}

// NewAccountUseCase создает новый экземпляр AccountUseCase.
func NewAccountUseCase(
	authenticator *auth.Authenticator,
	userStorage ports.UserStorage,
	feedbackStorage ports.FeedbackStorage,
	logger *slog.Logger,
) AccountUseCase {
	return &accountUseCase{
		authenticator:   authenticator,
		userStorage:     userStorage,
		feedbackStorage: feedbackStorage,
		logger:          logger,
	}
}

// RegisterUser регистрирует пользователя через Authenticator.
func (uc *accountUseCase) RegisterUser(ctx context.Context, form forms.RegisterForm) (*domain.User, error) {
	return uc.authenticator.Register(ctx, form)
}

// LoginUser проверяет учетные данные через Authenticator.
func (uc *accountUseCase) LoginUser(ctx context.Context, form forms.LoginForm) (*domain.User, error) {
	return uc.authenticator.Authenticate(ctx, form)
}

// GetProfile загружает пользователя и все его отзывы.
func (uc *accountUseCase) GetProfile(ctx context.Context, identity, username string) (*ProfilePage, error) {
	if !auth.CanViewProfile(identity, username) {
		return nil, domain.ErrUnauthorized
	}

	user, err := uc.userStorage.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	feedbacks, err := uc.feedbackStorage.ListFeedbackByOwner(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки отзывов пользователя %s: %w", username, err)
	}

	return &ProfilePage{User: user, Feedbacks: feedbacks}, nil
}

// DeleteAccount удаляет сначала все отзывы пользователя, затем самого
// пользователя. Каскад выполняется на уровне приложения, как и при
// исходном поведении, а не внешним ключом в схеме.
func (uc *accountUseCase) DeleteAccount(ctx context.Context, identity, username string) error {
	if !auth.CanDeleteAccount(identity, username) {
		return domain.ErrUnauthorized
	}

	if _, err := uc.userStorage.GetUserByUsername(ctx, username); err != nil {
		return err
	}

	removed, err := uc.feedbackStorage.DeleteFeedbackByOwner(ctx, username)
	if err != nil {
		return fmt.Errorf("ошибка каскадного удаления отзывов пользователя %s: %w", username, err)
	}

	if err := uc.userStorage.DeleteUser(ctx, username); err != nil {
		return fmt.Errorf("ошибка удаления пользователя %s: %w", username, err)
	}

	uc.logger.Info("account deleted", "username", username, "feedback_removed", removed)
	return nil
}
