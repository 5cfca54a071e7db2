package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/GoArmGo/FeedbackApp/internal/domain"
)

// uniqueViolation — код ошибки PostgreSQL для нарушения уникального индекса.
const uniqueViolation = "23505"

// UserStorage реализует интерфейс ports.UserStorage поверх sqlx
type UserStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewUserStorage создает новый экземпляр UserStorage
func NewUserStorage(db *sqlx.DB, logger *slog.Logger) *UserStorage {
	return &UserStorage{db: db, logger: logger}
}

// CreateUser сохраняет нового пользователя в бд.
// Нарушение уникальности username или email отдается как ConflictError:
// индекс в бд — последний арбитр при одновременных регистрациях.
func (s *UserStorage) CreateUser(ctx context.Context, user *domain.User) error {
	start := time.Now()

	_, err := s.db.NamedExecContext(ctx, `
        INSERT INTO users (username, password_hash, email, first_name, last_name, created_at, updated_at)
        VALUES (:username, :password_hash, :email, :first_name, :last_name, :created_at, :updated_at)
    `, user)
	if err != nil {
		if conflict := asConflict(err); conflict != nil {
			s.logger.Warn("duplicate user rejected", "username", user.Username, "field", conflict.Field)
			return conflict
		}
		s.logger.Error("failed to insert user", "username", user.Username, "error", err)
		return fmt.Errorf("ошибка при сохранении пользователя: %w", err)
	}

	s.logger.Info("user saved successfully",
		"username", user.Username,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// GetUserByUsername получает пользователя по имени.
func (s *UserStorage) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := s.db.GetContext(ctx, &user, `SELECT * FROM users WHERE username = $1`, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		s.logger.Error("failed to get user by username", "username", username, "error", err)
		return nil, fmt.Errorf("ошибка при получении пользователя по имени: %w", err)
	}
	return &user, nil
}

// GetUserByEmail получает пользователя по email.
func (s *UserStorage) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := s.db.GetContext(ctx, &user, `SELECT * FROM users WHERE email = $1`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		s.logger.Error("failed to get user by email", "error", err)
		return nil, fmt.Errorf("ошибка при получении пользователя по email: %w", err)
	}
	return &user, nil
}

// DeleteUser удаляет пользователя по имени.
func (s *UserStorage) DeleteUser(ctx context.Context, username string) error {
	start := time.Now()

	res, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE username = $1`, username)
	if err != nil {
		s.logger.Error("failed to delete user", "username", username, "error", err)
		return fmt.Errorf("ошибка при удалении пользователя: %w", err)
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.ErrNotFound
	}

	s.logger.Info("user deleted",
		"username", username,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// asConflict переводит нарушение уникального индекса в доменный ConflictError.
// Поле определяется по имени индекса из ошибки PostgreSQL.
func asConflict(err error) *domain.ConflictError {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || string(pqErr.Code) != uniqueViolation {
		return nil
	}
	if strings.Contains(pqErr.Constraint, "email") {
		return &domain.ConflictError{Field: "email"}
	}
	return &domain.ConflictError{Field: "username"}
}
