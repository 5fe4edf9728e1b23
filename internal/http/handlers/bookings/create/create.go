// Package create создаёт бронирование учителя от имени студента.
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

// Request тело бронирования. teacher_id число, строка или "teacher-<id>".
type Request struct {
	TeacherID models.LooseString `json:"teacher_id"`
	Subject   models.LooseString `json:"subject"`
	Phone     models.LooseString `json:"phone"`
}

// Response ответ с id созданного бронирования.
type Response struct {
	Message   string `json:"message" example:"booking_created"`
	BookingID int64  `json:"booking_id"`
}

// Service создание бронирований.
type Service interface {
	CreateBooking(ctx context.Context, identity models.Identity, in models.BookingInput) (int64, error)
}

// Handler обрабатывает POST /api/bookings. Доступен только студентам.
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
// @Summary Бронирование учителя
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body Request true "Учитель, тема и телефон"
// @Success 200 {object} Response
// @Failure 400 {object} response.ErrorResponse "Некорректные данные"
// @Failure 401 {object} response.ErrorResponse "Нет сессии"
// @Failure 403 {object} response.ErrorResponse "Не студент"
// @Failure 404 {object} response.ErrorResponse "Учитель не найден"
// @Router /api/bookings [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.bookings.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	identity, ok := middlewarectx.IdentityFrom(r.Context())
	if !ok {
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	req, err := request.DecodeJSON[Request](r)
	if err != nil {
		log.Warn("malformed request body, treating as empty", sl.Err(err))
	}

	id, err := h.service.CreateBooking(r.Context(), identity, models.BookingInput{
		TeacherID: req.TeacherID.String(),
		Subject:   req.Subject.String(),
		Phone:     req.Phone.String(),
	})
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	log.Info("booking created", slog.Int64("booking_id", id))
	render.JSON(w, r, Response{Message: "booking_created", BookingID: id})
}
