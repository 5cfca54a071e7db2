package handler

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Routes собирает маршрутизатор приложения.
// Набор маршрутов повторяет страницы приложения один в один.
func (h *FeedbackHandler) Routes(timeout time.Duration) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))
	r.Use(h.requestLogger)

	r.Get("/", h.Homepage)
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Get("/logout", h.Logout)
	r.Get("/users/{username}", h.UserProfile)
	r.Post("/users/{username}/delete", h.DeleteUser)
	r.Post("/users/{username}/feedback/add", h.AddFeedback)
	r.Post("/feedback/{feedbackID}/update", h.UpdateFeedback)
	r.Post("/feedback/{feedbackID}/delete", h.DeleteFeedback)

	return r
}
