// Package session реализует привязку имени пользователя к клиенту
// через подписанную cookie. Состояние хранится на стороне клиента,
// подпись secret-ключом делает его защищенным от подделки: cookie
// с измененным именем пользователя не пройдет проверку подписи.
package session

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	keyUsername  = "username"
	keySessionID = "sid"
)

// Manager управляет сессиями поверх gorilla CookieStore.
type Manager struct {
	store      *sessions.CookieStore
	cookieName string
	logger     *slog.Logger
}

// NewManager создает менеджер сессий.
// maxAge задается в секундах и ограничивает срок жизни cookie.
func NewManager(secret []byte, cookieName string, maxAge int, logger *slog.Logger) *Manager {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store, cookieName: cookieName, logger: logger}
}

// Establish привязывает сессию клиента к username.
// Вызывается только после успешной регистрации или аутентификации.
// Каждая сессия получает корреляционный идентификатор, по которому
// записи о выдаче и отзыве сессии связываются в логах.
func (m *Manager) Establish(w http.ResponseWriter, r *http.Request, username string) error {
	sid := uuid.NewString()

	sess, _ := m.store.Get(r, m.cookieName)
	sess.Values[keyUsername] = username
	sess.Values[keySessionID] = sid

	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("ошибка сохранения сессии: %w", err)
	}

	m.logger.Info("session established", "username", username, "sid", sid)
	return nil
}

// Current возвращает имя пользователя, привязанное к сессии.
// Для отсутствующей, просроченной или подделанной cookie возвращает ("", false).
func (m *Manager) Current(r *http.Request) (string, bool) {
	sess, err := m.store.Get(r, m.cookieName)
	if err != nil {
		// Неверная подпись — считаем клиента неаутентифицированным.
		return "", false
	}

	username, ok := sess.Values[keyUsername].(string)
	if !ok || username == "" {
		return "", false
	}
	return username, true
}

// Clear отвязывает сессию (выход или удаление аккаунта).
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, _ := m.store.Get(r, m.cookieName)
	sid, _ := sess.Values[keySessionID].(string)
	delete(sess.Values, keyUsername)
	delete(sess.Values, keySessionID)
	sess.Options.MaxAge = -1

	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("ошибка удаления сессии: %w", err)
	}

	m.logger.Info("session cleared", "sid", sid)
	return nil
}
