// Package create принимает заявку на пробный урок. Сессия необязательна:
// если она есть, заявка привязывается к пользователю.
package create

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/eduglow/internal/http/middlewarectx"
	"github.com/magabrotheeeer/eduglow/internal/http/request"
	"github.com/magabrotheeeer/eduglow/internal/http/response"
	"github.com/magabrotheeeer/eduglow/internal/lib/sl"
	"github.com/magabrotheeeer/eduglow/internal/models"
)

// Request форма пробного урока. Телефон может прийти числом.
type Request struct {
	Name    models.LooseString `json:"name"`
	Phone   models.LooseString `json:"phone"`
	Subject models.LooseString `json:"subject"`
}

// Service приём заявок.
type Service interface {
	Submit(ctx context.Context, identity *models.Identity, in models.TrialInput) error
}

// Handler обрабатывает POST /api/trials.
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
// @Summary Заявка на пробный урок
// @Tags Trials
// @Accept json
// @Produce json
// @Param request body Request true "Имя, телефон и предмет"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse "Не хватает полей или телефон не числовой"
// @Router /api/trials [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.trials.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	req, err := request.DecodeJSON[Request](r)
	if err != nil {
		log.Warn("malformed request body, treating as empty", sl.Err(err))
	}

	var identity *models.Identity
	if id, ok := middlewarectx.IdentityFrom(r.Context()); ok {
		identity = &id
	}

	err = h.service.Submit(r.Context(), identity, models.TrialInput{
		Name:    req.Name.String(),
		Phone:   req.Phone.String(),
		Subject: req.Subject.String(),
	})
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	render.JSON(w, r, response.Message("trial_submitted"))
}
