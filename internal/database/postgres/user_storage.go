package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/GoArmGo/FeedbackApp/internal/domain"
)

// Код ошибки PostgreSQL для нарушения уникального ограничения.
const uniqueViolation = "23505"

// GormUserStorage реализует интерфейс ports.UserStorage с использованием GORM
type GormUserStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormUserStorage создает новый экземпляр GormUserStorage
func NewGormUserStorage(db *gorm.DB, logger *slog.Logger) *GormUserStorage {
	return &GormUserStorage{db: db, logger: logger}
}

// CreateUser сохраняет нового пользователя с помощью GORM.
func (s *GormUserStorage) CreateUser(ctx context.Context, user *domain.User) error {
	result := s.db.WithContext(ctx).Create(user)
	if result.Error != nil {
		if conflict := asConflict(result.Error); conflict != nil {
			s.logger.Warn("duplicate user rejected", "username", user.Username, "field", conflict.Field)
			return conflict
		}
		return fmt.Errorf("ошибка при создании пользователя с GORM: %w", result.Error)
	}

	s.logger.Info("user saved successfully", "username", user.Username)
	return nil
}

// asConflict переводит нарушение уникального ограничения в доменный
// ConflictError. Поле определяется по имени ограничения из исходной
// ошибки драйвера.
func asConflict(err error) *domain.ConflictError {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return nil
	}
	if strings.Contains(pgErr.ConstraintName, "email") {
		return &domain.ConflictError{Field: "email"}
	}
	return &domain.ConflictError{Field: "username"}
}

// GetUserByUsername получает пользователя по имени с помощью GORM.
func (s *GormUserStorage) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	result := s.db.WithContext(ctx).Where("username = ?", username).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при поиске пользователя с GORM: %w", result.Error)
	}
	return &user, nil
}

// GetUserByEmail получает пользователя по email с помощью GORM.
func (s *GormUserStorage) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	result := s.db.WithContext(ctx).Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при поиске пользователя по email с GORM: %w", result.Error)
	}
	return &user, nil
}

// DeleteUser удаляет пользователя по имени с помощью GORM.
func (s *GormUserStorage) DeleteUser(ctx context.Context, username string) error {
	result := s.db.WithContext(ctx).Where("username = ?", username).Delete(&domain.User{})
	if result.Error != nil {
		return fmt.Errorf("ошибка при удалении пользователя с GORM: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	s.logger.Info("user deleted", "username", username)
	return nil
}
