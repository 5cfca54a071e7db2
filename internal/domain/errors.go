package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Ошибки уровня домена. Каждая привязана к одному запросу и не фатальна
// для процесса: обработчики переводят их в редирект или HTTP-статус.
var (
	// ErrNotFound — неизвестный отзыв или пользователь.
	ErrNotFound = errors.New("запись не найдена")

	// ErrBadCredentials — неверные учетные данные. Намеренно одна и та же
	// ошибка для неизвестного имени и для неверного пароля.
	ErrBadCredentials = errors.New("неверное имя пользователя или пароль")

	// ErrUnauthorized — аутентифицирован, но не владелец ресурса.
	ErrUnauthorized = errors.New("доступ запрещен")
)

// ConflictError — дубликат username или email при регистрации.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("значение поля %s уже занято", e.Field)
}

// ValidationError описывает нарушение ограничения одного поля формы.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors собирает все нарушения формы в одну ошибку.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, ve := range e {
		msgs = append(msgs, ve.Error())
	}
	return "ошибка валидации формы: " + strings.Join(msgs, "; ")
}
