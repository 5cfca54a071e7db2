package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/GoArmGo/FeedbackApp/internal/domain"
	"github.com/GoArmGo/FeedbackApp/internal/forms"
)

type memUserStorage struct {
	users map[string]*domain.User
}

func newMemUserStorage() *memUserStorage {
	return &memUserStorage{users: make(map[string]*domain.User)}
}

func (s *memUserStorage) CreateUser(ctx context.Context, user *domain.User) error {
	if _, ok := s.users[user.Username]; ok {
		return &domain.ConflictError{Field: "username"}
	}
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return &domain.ConflictError{Field: "email"}
		}
	}
	cp := *user
	s.users[user.Username] = &cp
	return nil
}

func (s *memUserStorage) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, ok := s.users[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *user
	return &cp, nil
}

func (s *memUserStorage) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *memUserStorage) DeleteUser(ctx context.Context, username string) error {
	if _, ok := s.users[username]; !ok {
		return domain.ErrNotFound
	}
	delete(s.users, username)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestAuthenticator() (*Authenticator, *memUserStorage) {
	store := newMemUserStorage()
	return NewAuthenticator(store, NewBcryptHasher(bcrypt.MinCost), testLogger()), store
}

func aliceForm() forms.RegisterForm {
	return forms.RegisterForm{
		Username:  "alice",
		Password:  "longpass1",
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Anderson",
	}
}

func TestRegisterThenAuthenticate(t *testing.T) {
	a, _ := newTestAuthenticator()
	ctx := context.Background()

	registered, err := a.Register(ctx, aliceForm())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if registered.Username != "alice" {
		t.Fatalf("unexpected username: %q", registered.Username)
	}

	user, err := a.Authenticate(ctx, forms.LoginForm{Username: "alice", Password: "longpass1"})
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if user.Username != registered.Username || user.Email != registered.Email {
		t.Fatalf("authenticated user differs from registered: %+v", user)
	}
}

func TestRegisterStoresHashNotPassword(t *testing.T) {
	a, store := newTestAuthenticator()

	if _, err := a.Register(context.Background(), aliceForm()); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	stored := store.users["alice"]
	if stored.PasswordHash == "longpass1" {
		t.Fatal("raw password stored instead of a hash")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("longpass1")); err != nil {
		t.Fatalf("stored hash does not verify against the password: %v", err)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	a, store := newTestAuthenticator()
	ctx := context.Background()

	if _, err := a.Register(ctx, aliceForm()); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}

	dup := aliceForm()
	dup.Email = "other@example.com"
	_, err := a.Register(ctx, dup)

	var conflict *domain.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if conflict.Field != "username" {
		t.Fatalf("conflict field = %q, want username", conflict.Field)
	}
	if len(store.users) != 1 {
		t.Fatalf("partial user persisted: %d users stored", len(store.users))
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	a, _ := newTestAuthenticator()
	ctx := context.Background()

	if _, err := a.Register(ctx, aliceForm()); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}

	dup := aliceForm()
	dup.Username = "alice2"
	_, err := a.Register(ctx, dup)

	var conflict *domain.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if conflict.Field != "email" {
		t.Fatalf("conflict field = %q, want email", conflict.Field)
	}
}

func TestRegisterRejectsInvalidForm(t *testing.T) {
	a, store := newTestAuthenticator()

	form := aliceForm()
	form.Username = "abc" // короче пяти символов
	_, err := a.Register(context.Background(), form)

	var verrs domain.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if len(store.users) != 0 {
		t.Fatal("user persisted despite validation failure")
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	a, _ := newTestAuthenticator()
	ctx := context.Background()

	if _, err := a.Register(ctx, aliceForm()); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	user, err := a.Authenticate(ctx, forms.LoginForm{Username: "alice", Password: "wrongpass"})
	if !errors.Is(err, domain.ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials, got %v", err)
	}
	if user != nil {
		t.Fatal("user returned despite wrong password")
	}
}

func TestAuthenticateUnknownUserSameError(t *testing.T) {
	a, _ := newTestAuthenticator()

	_, unknownErr := a.Authenticate(context.Background(), forms.LoginForm{Username: "nobody", Password: "whatever1"})
	if !errors.Is(unknownErr, domain.ErrBadCredentials) {
		t.Fatalf("unknown user: expected ErrBadCredentials, got %v", unknownErr)
	}
}
