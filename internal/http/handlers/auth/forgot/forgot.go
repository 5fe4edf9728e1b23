// Package forgot запускает сброс пароля: выпускает токен и отправляет письмо.
package forgot

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

// Request тело запроса сброса пароля.
type Request struct {
	Email string `json:"email"`
}

// Service запрос сброса пароля.
type Service interface {
	RequestPasswordReset(ctx context.Context, email string) error
}

// Handler обрабатывает POST /api/auth/forgot.
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
// @Summary Запрос сброса пароля
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body Request true "Почта учётной записи"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse "Почта не найдена"
// @Failure 500 {object} response.ErrorResponse "Письмо не отправлено"
// @Router /api/auth/forgot [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.forgot"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	req, err := request.DecodeJSON[Request](r)
	if err != nil {
		log.Warn("malformed request body, treating as empty", sl.Err(err))
	}

	if err := h.service.RequestPasswordReset(r.Context(), req.Email); err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	render.JSON(w, r, response.Message("reset_email_sent"))
}
