package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/FeedbackApp/internal/core/ports"
	"github.com/GoArmGo/FeedbackApp/internal/domain"
	"github.com/GoArmGo/FeedbackApp/internal/forms"
)

// Authenticator отвечает за регистрацию и проверку учетных данных.
// Сырой пароль живет только внутри Register/Authenticate: он хешируется
// или сравнивается с хешем и никогда не сохраняется и не логируется.
type Authenticator struct {
	users  ports.UserStorage
	hasher PasswordHasher
	logger *slog.Logger
}

// NewAuthenticator создает новый экземпляр Authenticator.
func NewAuthenticator(users ports.UserStorage, hasher PasswordHasher, logger *slog.Logger) *Authenticator {
	return &Authenticator{users: users, hasher: hasher, logger: logger}
}

// Register валидирует форму, проверяет занятость username и email,
// хеширует пароль и сохраняет нового пользователя.
// Возвращает domain.ValidationErrors или *domain.ConflictError при отказе.
func (a *Authenticator) Register(ctx context.Context, form forms.RegisterForm) (*domain.User, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	// Предварительные проверки дают точную привязку конфликта к полю.
	// Гонку двух одновременных регистраций разрешает уникальный индекс в бд:
	// CreateUser вернет тот же *domain.ConflictError.
	if _, err := a.users.GetUserByUsername(ctx, form.Username); err == nil {
		return nil, &domain.ConflictError{Field: "username"}
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("ошибка проверки занятости имени пользователя: %w", err)
	}

	if _, err := a.users.GetUserByEmail(ctx, form.Email); err == nil {
		return nil, &domain.ConflictError{Field: "email"}
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("ошибка проверки занятости email: %w", err)
	}

	hash, err := a.hasher.Hash(form.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		Username:     form.Username,
		PasswordHash: hash,
		Email:        form.Email,
		FirstName:    form.FirstName,
		LastName:     form.LastName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := a.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	a.logger.Info("user registered", "username", user.Username)
	return user, nil
}

// Authenticate ищет пользователя и сравнивает пароль с сохраненным хешем.
// Неизвестное имя и неверный пароль дают одну и ту же ошибку
// domain.ErrBadCredentials, чтобы не раскрывать, какое поле было неверным.
func (a *Authenticator) Authenticate(ctx context.Context, form forms.LoginForm) (*domain.User, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	user, err := a.users.GetUserByUsername(ctx, form.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrBadCredentials
		}
		return nil, fmt.Errorf("ошибка поиска пользователя: %w", err)
	}

	if !a.hasher.Compare(user.PasswordHash, form.Password) {
		a.logger.Warn("authentication failed", "username", form.Username)
		return nil, domain.ErrBadCredentials
	}

	a.logger.Info("user authenticated", "username", user.Username)
	return user, nil
}
