// Package register реализует HTTP-обработчик регистрации пользователя.
//
// Тело запроса разбирается в Request, проверка полей выполняется сервисом.
// Некорректный JSON считается пустым телом.
package register

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/eduglow/internal/http/request"
	"github.com/magabrotheeeer/eduglow/internal/http/response"
	"github.com/magabrotheeeer/eduglow/internal/lib/apperr"
	"github.com/magabrotheeeer/eduglow/internal/lib/sl"
	"github.com/magabrotheeeer/eduglow/internal/models"
)

// Request структура входных данных для регистрации.
type Request struct {
	Email    string  `json:"email" validate:"required"`
	Password string  `json:"password" validate:"required"`
	Role     string  `json:"role" validate:"omitempty,oneof=student teacher"`
	Name     *string `json:"name"`
}

// Response ответ на успешную регистрацию.
type Response struct {
	Message string            `json:"message" example:"registered"`
	User    models.PublicUser `json:"user"`
}

// Service описывает интерфейс бизнес-логики регистрации.
type Service interface {
	Register(ctx context.Context, in models.Registration) (models.PublicUser, error)
}

// Handler обрабатывает HTTP-запросы для регистрации.
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
// @Summary Регистрация пользователя
// @Description Создаёт учётную запись студента или учителя. Сессия не открывается.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body Request true "Данные регистрации"
// @Success 200 {object} Response
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации или почта занята"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/auth/register [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	req, err := request.DecodeJSON[Request](r)
	if err != nil {
		log.Warn("malformed request body, treating as empty", sl.Err(err))
	}
	if errs := request.Validate(req); errs != nil {
		response.WriteError(w, r, log, apperr.Validation(validationMessage(errs)))
		return
	}

	user, err := h.service.Register(r.Context(), models.Registration{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Name:     req.Name,
	})
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}

	log.Info("user registered", slog.Int64("user_id", user.ID))
	render.JSON(w, r, Response{Message: "registered", User: user})
}

// validationMessage сообщение в тех же формулировках, что и у сервиса.
func validationMessage(errs validator.ValidationErrors) string {
	for _, fe := range errs {
		if fe.Field() == "Email" || fe.Field() == "Password" {
			return "email and password required"
		}
	}
	return "invalid role"
}
