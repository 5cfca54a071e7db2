package session

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestManager() *Manager {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewManager([]byte("test-secret-key-0123456789abcdef"), "fb_session", 3600, logger)
}

// establish выполняет Establish и возвращает выданную cookie.
func establish(t *testing.T, m *Manager, username string) *http.Cookie {
	t.Helper()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/login", nil)
	if err := m.Establish(w, r, username); err != nil {
		t.Fatalf("Establish returned error: %v", err)
	}

	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("Establish set no cookie")
	}
	return cookies[0]
}

func TestEstablishThenCurrent(t *testing.T) {
	m := newTestManager()
	cookie := establish(t, m, "alice")

	r := httptest.NewRequest(http.MethodGet, "/users/alice", nil)
	r.AddCookie(cookie)

	username, ok := m.Current(r)
	if !ok || username != "alice" {
		t.Fatalf("Current = (%q, %v), want (alice, true)", username, ok)
	}
}

func TestCurrentWithoutSession(t *testing.T) {
	m := newTestManager()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if username, ok := m.Current(r); ok {
		t.Fatalf("Current returned %q for a request without cookie", username)
	}
}

func TestClearUnbindsSession(t *testing.T) {
	m := newTestManager()
	cookie := establish(t, m, "alice")

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/logout", nil)
	r.AddCookie(cookie)
	if err := m.Clear(w, r); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}

	// Клиент получает затертую cookie; повторный запрос с ней не дает идентичности.
	cleared := w.Result().Cookies()
	if len(cleared) == 0 {
		t.Fatal("Clear set no cookie")
	}

	r2 := httptest.NewRequest(http.MethodGet, "/", nil)
	r2.AddCookie(cleared[0])
	if username, ok := m.Current(r2); ok {
		t.Fatalf("Current returned %q after Clear", username)
	}
}

func TestSessionLifecycleSharesCorrelationID(t *testing.T) {
	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, nil))
	m := NewManager([]byte("test-secret-key-0123456789abcdef"), "fb_session", 3600, logger)

	cookie := establish(t, m, "alice")

	// Из записи о выдаче сессии извлекается корреляционный идентификатор.
	idx := strings.Index(logs.String(), "sid=")
	if idx < 0 {
		t.Fatalf("establish log carries no sid: %q", logs.String())
	}
	sid := strings.Fields(logs.String()[idx+len("sid="):])[0]
	if sid == "" {
		t.Fatal("empty sid in establish log")
	}

	logs.Reset()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/logout", nil)
	r.AddCookie(cookie)
	if err := m.Clear(w, r); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}

	if !strings.Contains(logs.String(), "sid="+sid) {
		t.Fatalf("clear log does not reference sid %q: %q", sid, logs.String())
	}
}

func TestTamperedCookieRejected(t *testing.T) {
	m := newTestManager()
	cookie := establish(t, m, "alice")

	// Переворачиваем часть значения: подпись перестает сходиться.
	tampered := *cookie
	if len(tampered.Value) < 10 {
		t.Fatalf("cookie value too short to tamper: %q", tampered.Value)
	}
	tampered.Value = tampered.Value[:len(tampered.Value)-4] + strings.Repeat("A", 4)

	r := httptest.NewRequest(http.MethodGet, "/users/alice", nil)
	r.AddCookie(&tampered)

	if username, ok := m.Current(r); ok {
		t.Fatalf("tampered cookie yielded identity %q", username)
	}
}

func TestForeignKeyCookieRejected(t *testing.T) {
	// Cookie, подписанная другим ключом, не должна приниматься.
	other := NewManager([]byte("another-secret-key-fedcba98765432"), "fb_session", 3600,
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	cookie := establish(t, other, "mallory")

	m := newTestManager()
	r := httptest.NewRequest(http.MethodGet, "/users/mallory", nil)
	r.AddCookie(cookie)

	if username, ok := m.Current(r); ok {
		t.Fatalf("cookie signed with a foreign key yielded identity %q", username)
	}
}
