package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GoArmGo/FeedbackApp/internal/domain"
	"github.com/GoArmGo/FeedbackApp/internal/forms"
	"github.com/GoArmGo/FeedbackApp/internal/session"
	"github.com/GoArmGo/FeedbackApp/internal/usecase"
)

// FeedbackHandler — обработчик HTTP-запросов приложения.
// Читает идентичность из сессии один раз на запрос и передает ее
// в бизнес-логику явным аргументом.
type FeedbackHandler struct {
	accounts  usecase.AccountUseCase
	feedbacks usecase.FeedbackUseCase
	sessions  *session.Manager
	logger    *slog.Logger
}

// NewFeedbackHandler создаёт новый экземпляр FeedbackHandler.
func NewFeedbackHandler(
	accounts usecase.AccountUseCase,
	feedbacks usecase.FeedbackUseCase,
	sessions *session.Manager,
	logger *slog.Logger,
) *FeedbackHandler {
	return &FeedbackHandler{
		accounts:  accounts,
		feedbacks: feedbacks,
		sessions:  sessions,
		logger:    logger,
	}
}

// respondWithJSON — отправляет JSON-ответ клиенту.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		logger.Error("failed to marshal JSON response", "error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(response); err != nil {
		logger.Error("failed to write HTTP response", "error", err)
	}
}

// respondWithError — отправляет JSON-ответ с ошибкой.
func respondWithError(w http.ResponseWriter, code int, message string, logger *slog.Logger) {
	respondWithJSON(w, code, map[string]string{"error": message}, logger)
}

// respondWithFormError переводит доменные ошибки форм в HTTP-статусы.
// Возвращает false, если ошибка не относится к форме.
func respondWithFormError(w http.ResponseWriter, err error, logger *slog.Logger) bool {
	var verrs domain.ValidationErrors
	if errors.As(err, &verrs) {
		respondWithJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":  "форма заполнена неверно",
			"fields": verrs,
		}, logger)
		return true
	}

	var conflict *domain.ConflictError
	if errors.As(err, &conflict) {
		respondWithJSON(w, http.StatusConflict, map[string]string{
			"error": conflict.Error(),
			"field": conflict.Field,
		}, logger)
		return true
	}

	return false
}

// Homepage — редирект на форму регистрации.
func (h *FeedbackHandler) Homepage(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/register", http.StatusFound)
}

// Register — регистрирует пользователя и привязывает сессию.
func (h *FeedbackHandler) Register(w http.ResponseWriter, r *http.Request) {
	form := forms.RegisterForm{
		Username:  r.PostFormValue("username"),
		Password:  r.PostFormValue("password"),
		Email:     r.PostFormValue("email"),
		FirstName: r.PostFormValue("first_name"),
		LastName:  r.PostFormValue("last_name"),
	}

	user, err := h.accounts.RegisterUser(r.Context(), form)
	if err != nil {
		if respondWithFormError(w, err, h.logger) {
			return
		}
		h.logger.Error("failed to register user", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Ошибка регистрации пользователя", h.logger)
		return
	}

	if err := h.sessions.Establish(w, r, user.Username); err != nil {
		h.logger.Error("failed to establish session", "username", user.Username, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Ошибка создания сессии", h.logger)
		return
	}

	http.Redirect(w, r, "/users/"+user.Username, http.StatusSeeOther)
}

// Login — проверяет учетные данные и привязывает сессию.
// Сообщение об ошибке одно и то же для неизвестного имени и неверного
// пароля: ответ не раскрывает, какое поле было неверным.
func (h *FeedbackHandler) Login(w http.ResponseWriter, r *http.Request) {
	form := forms.LoginForm{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	user, err := h.accounts.LoginUser(r.Context(), form)
	if err != nil {
		if errors.Is(err, domain.ErrBadCredentials) {
			respondWithError(w, http.StatusUnauthorized, "Invalid credentials. Please try again.", h.logger)
			return
		}
		if respondWithFormError(w, err, h.logger) {
			return
		}
		h.logger.Error("failed to login user", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Ошибка входа", h.logger)
		return
	}

	if err := h.sessions.Establish(w, r, user.Username); err != nil {
		h.logger.Error("failed to establish session", "username", user.Username, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Ошибка создания сессии", h.logger)
		return
	}

	http.Redirect(w, r, "/users/"+user.Username, http.StatusSeeOther)
}

// Logout — отвязывает сессию и возвращает на главную.
func (h *FeedbackHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Clear(w, r); err != nil {
		h.logger.Error("failed to clear session", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Ошибка завершения сессии", h.logger)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// UserProfile — страница профиля: пользователь и все его отзывы.
// Неавторизованный доступ отправляется на форму входа.
func (h *FeedbackHandler) UserProfile(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	identity, _ := h.sessions.Current(r)

	page, err := h.accounts.GetProfile(r.Context(), identity, username)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Пользователь не найден", h.logger)
			return
		}
		h.logger.Error("failed to load profile", "username", username, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Ошибка загрузки профиля", h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, page, h.logger)
}

// DeleteUser — удаляет аккаунт вместе со всеми отзывами и очищает сессию.
func (h *FeedbackHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	identity, _ := h.sessions.Current(r)

	if err := h.accounts.DeleteAccount(r.Context(), identity, username); err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Пользователь не найден", h.logger)
			return
		}
		h.logger.Error("failed to delete account", "username", username, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Ошибка удаления аккаунта", h.logger)
		return
	}

	if err := h.sessions.Clear(w, r); err != nil {
		h.logger.Error("failed to clear session after account deletion", "error", err)
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// AddFeedback — создает отзыв на странице пользователя.
func (h *FeedbackHandler) AddFeedback(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	identity, _ := h.sessions.Current(r)

	form := forms.FeedbackForm{
		Title:   r.PostFormValue("title"),
		Content: r.PostFormValue("content"),
	}

	if _, err := h.feedbacks.AddFeedback(r.Context(), identity, username, form); err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		if respondWithFormError(w, err, h.logger) {
			return
		}
		h.logger.Error("failed to add feedback", "owner", identity, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Ошибка создания отзыва", h.logger)
		return
	}

	http.Redirect(w, r, "/users/"+username, http.StatusSeeOther)
}

// UpdateFeedback — изменяет отзыв. Чужой отзыв дает жесткий 401,
// а не редирект: так вело себя приложение изначально.
func (h *FeedbackHandler) UpdateFeedback(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "feedbackID"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Некорректный ID отзыва", h.logger)
		return
	}

	identity, _ := h.sessions.Current(r)
	form := forms.FeedbackForm{
		Title:   r.PostFormValue("title"),
		Content: r.PostFormValue("content"),
	}

	if _, err := h.feedbacks.UpdateFeedback(r.Context(), identity, id, form); err != nil {
		h.respondFeedbackMutationError(w, id, err)
		return
	}

	http.Redirect(w, r, "/users/"+identity, http.StatusSeeOther)
}

// DeleteFeedback — удаляет отзыв. Та же семантика отказа, что и у UpdateFeedback.
func (h *FeedbackHandler) DeleteFeedback(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "feedbackID"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Некорректный ID отзыва", h.logger)
		return
	}

	identity, _ := h.sessions.Current(r)

	if err := h.feedbacks.DeleteFeedback(r.Context(), identity, id); err != nil {
		h.respondFeedbackMutationError(w, id, err)
		return
	}

	http.Redirect(w, r, "/users/"+identity, http.StatusSeeOther)
}

func (h *FeedbackHandler) respondFeedbackMutationError(w http.ResponseWriter, id int64, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "Отзыв не найден", h.logger)
	case errors.Is(err, domain.ErrUnauthorized):
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", h.logger)
	default:
		if respondWithFormError(w, err, h.logger) {
			return
		}
		h.logger.Error("failed to mutate feedback", "id", id, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Ошибка изменения отзыва", h.logger)
	}
}
