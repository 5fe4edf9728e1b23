// Package reset меняет пароль по одноразовому токену из письма.
package reset

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/eduglow/internal/http/request"
	"github.com/magabrotheeeer/eduglow/internal/http/response"
	"github.com/magabrotheeeer/eduglow/internal/lib/sl"
)

// Request токен из ссылки и новый пароль.
type Request struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// Service смена пароля по токену.
type Service interface {
	ConsumePasswordReset(ctx context.Context, token, newPassword string) error
}

// Handler обрабатывает POST /api/auth/reset.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Установка нового пароля
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body Request true "Токен и новый пароль"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse "Токен недействителен или просрочен"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Router /api/auth/reset [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.reset"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	req, err := request.DecodeJSON[Request](r)
	if err != nil {
		log.Warn("malformed request body, treating as empty", sl.Err(err))
	}

	if err := h.service.ConsumePasswordReset(r.Context(), req.Token, req.NewPassword); err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	render.JSON(w, r, response.Message("password_updated"))
}
