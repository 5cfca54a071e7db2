package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher определяет интерфейс хеширования паролей.
// Алгоритм и стоимость задаются реализацией, бизнес-логика
// работает только с непрозрачным хешем.
type PasswordHasher interface {
	// Hash вычисляет односторонний соленый хеш пароля.
	Hash(password string) (string, error)

	// Compare сравнивает сохраненный хеш с введенным паролем.
	// Возвращает true только при совпадении.
	Compare(hash, password string) bool
}

// BcryptHasher реализует PasswordHasher поверх bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher создает хешер с указанной стоимостью.
// Если cost вне допустимого диапазона bcrypt, используется bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("ошибка хеширования пароля: %w", err)
	}
	return string(hashed), nil
}

func (h *BcryptHasher) Compare(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
