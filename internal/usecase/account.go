package usecase

import (
	"context"

	"github.com/GoArmGo/FeedbackApp/internal/domain"
	"github.com/GoArmGo/FeedbackApp/internal/forms"
)

// ProfilePage — данные страницы профиля: пользователь и все его отзывы.
type ProfilePage struct {
	User      *domain.User      `json:"user"`
	Feedbacks []domain.Feedback `json:"feedbacks"`
}

// AccountUseCase определяет интерфейс бизнес-логики работы с аккаунтом.
// identity — имя пользователя из сессии; пустая строка означает,
// что клиент не аутентифицирован.
type AccountUseCase interface {
	// RegisterUser регистрирует нового пользователя.
	// Возвращает domain.ValidationErrors или *domain.ConflictError при отказе.
	RegisterUser(ctx context.Context, form forms.RegisterForm) (*domain.User, error)

	// LoginUser проверяет учетные данные.
	// Возвращает domain.ErrBadCredentials при любом несовпадении.
	LoginUser(ctx context.Context, form forms.LoginForm) (*domain.User, error)

	// GetProfile возвращает профиль username вместе с его отзывами.
	// Если identity не совпадает с username, возвращает domain.ErrUnauthorized.
	GetProfile(ctx context.Context, identity, username string) (*ProfilePage, error)

	// DeleteAccount удаляет пользователя и каскадно все его отзывы.
	// Если identity не совпадает с username, возвращает domain.ErrUnauthorized.
	DeleteAccount(ctx context.Context, identity, username string) error
}

// FeedbackUseCase определяет интерфейс бизнес-логики работы с отзывами.
type FeedbackUseCase interface {
	// AddFeedback создает отзыв, принадлежащий identity.
	// Отзыв можно добавить только на собственной странице (username == identity).
	AddFeedback(ctx context.Context, identity, username string, form forms.FeedbackForm) (*domain.Feedback, error)

	// UpdateFeedback изменяет title и content существующего отзыва.
	// Возвращает domain.ErrNotFound для неизвестного id и
	// domain.ErrUnauthorized, если identity не владелец.
	UpdateFeedback(ctx context.Context, identity string, id int64, form forms.FeedbackForm) (*domain.Feedback, error)

	// DeleteFeedback удаляет отзыв. Те же ошибки, что и у UpdateFeedback.
	DeleteFeedback(ctx context.Context, identity string, id int64) error
}
