// Package logout реализует HTTP-обработчик выхода.
package logout

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/eduglow/internal/http/response"
	"github.com/magabrotheeeer/eduglow/internal/http/sessioncookie"
	"github.com/magabrotheeeer/eduglow/internal/lib/sl"
)

// Service завершение сессии.
type Service interface {
	Logout(ctx context.Context, token string) error
}

// Handler обрабатывает выход. Без сессии тоже отвечает успехом.
type Handler struct {
	log     *slog.Logger
	service Service
	cookie  sessioncookie.Cookie
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service, cookie sessioncookie.Cookie) *Handler {
	return &Handler{
		log:     log,
		service: service,
		cookie:  cookie,
	}
}

// ServeHTTP godoc
// @Summary Выход
// @Tags Auth
// @Produce json
// @Success 200 {object} response.MessageResponse
// @Router /api/auth/logout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := h.service.Logout(r.Context(), h.cookie.Read(r)); err != nil {
		log.Error("failed to destroy session", sl.Err(err))
	}
	h.cookie.Clear(w)
	render.JSON(w, r, response.Message("logged_out"))
}
