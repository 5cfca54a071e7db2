package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// requestLogger логирует каждый запрос вместе с признаком наличия
// идентичности в сессии. Идентичность здесь только читается,
// решение о доступе остается за обработчиками.
func (h *FeedbackHandler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		identity, authenticated := h.sessions.Current(r)

		next.ServeHTTP(ww, r)

		attrs := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"authenticated", authenticated,
		}
		if authenticated {
			attrs = append(attrs, "identity", identity)
		}
		h.logger.Info("http request", attrs...)
	})
}
