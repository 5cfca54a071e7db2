package ports

import (
	"context"

	"github.com/GoArmGo/FeedbackApp/internal/domain"
)

// UserStorage определяет методы для взаимодействия с хранилищем пользователей
type UserStorage interface {
	// CreateUser сохраняет нового пользователя. Дубликат username или email
	// возвращается как *domain.ConflictError.
	CreateUser(ctx context.Context, user *domain.User) error

	// GetUserByUsername возвращает пользователя по имени.
	// Если пользователь не найден, возвращает domain.ErrNotFound.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetUserByEmail возвращает пользователя по email.
	// Если пользователь не найден, возвращает domain.ErrNotFound.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// DeleteUser удаляет пользователя по имени.
	DeleteUser(ctx context.Context, username string) error
}

// FeedbackStorage определяет методы для взаимодействия с хранилищем отзывов
type FeedbackStorage interface {
	// CreateFeedback сохраняет новый отзыв и заполняет feedback.ID
	// значением, назначенным базой данных.
	CreateFeedback(ctx context.Context, feedback *domain.Feedback) error

	// GetFeedbackByID возвращает отзыв по ID.
	// Если отзыв не найден, возвращает domain.ErrNotFound.
	GetFeedbackByID(ctx context.Context, id int64) (*domain.Feedback, error)

	// ListFeedbackByOwner возвращает все отзывы пользователя.
	ListFeedbackByOwner(ctx context.Context, username string) ([]domain.Feedback, error)

	// UpdateFeedback сохраняет новые title и content отзыва.
	UpdateFeedback(ctx context.Context, feedback *domain.Feedback) error

	// DeleteFeedback удаляет отзыв по ID.
	DeleteFeedback(ctx context.Context, id int64) error

	// DeleteFeedbackByOwner удаляет все отзывы пользователя и возвращает
	// количество удаленных строк. Используется при каскадном удалении аккаунта.
	DeleteFeedbackByOwner(ctx context.Context, username string) (int64, error)
}
