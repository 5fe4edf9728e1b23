// Package login реализует HTTP-обработчик входа.
//
// При успешной проверке пароля открывается серверная сессия,
// её токен уходит клиенту в HttpOnly cookie.
package login

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/eduglow/internal/http/request"
	"github.com/magabrotheeeer/eduglow/internal/http/response"
	"github.com/magabrotheeeer/eduglow/internal/http/sessioncookie"
	"github.com/magabrotheeeer/eduglow/internal/lib/sl"
	"github.com/magabrotheeeer/eduglow/internal/models"
)

// Request структура входных данных для входа.
// Role необязательна: если задана, она должна совпасть с ролью учётной записи.
type Request struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Response ответ на успешный вход.
type Response struct {
	Message string            `json:"message" example:"logged_in"`
	User    models.PublicUser `json:"user"`
}

// Service описывает интерфейс бизнес-логики входа.
type Service interface {
	Login(ctx context.Context, email, password, role string) (models.PublicUser, string, error)
}

// Handler обрабатывает HTTP-запросы для входа.
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
// @Summary Вход пользователя
// @Description Проверяет почту и пароль, открывает сессию и ставит cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body Request true "Учетные данные пользователя"
// @Success 200 {object} Response
// @Failure 401 {object} response.ErrorResponse "Неверные учетные данные"
// @Failure 403 {object} response.ErrorResponse "Роль не совпадает"
// @Failure 429 {object} response.ErrorResponse "Слишком много запросов"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/auth/login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	req, err := request.DecodeJSON[Request](r)
	if err != nil {
		log.Warn("malformed request body, treating as empty", sl.Err(err))
	}

	user, token, err := h.service.Login(r.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}

	h.cookie.Set(w, token)
	log.Info("login success", slog.Int64("user_id", user.ID))
	render.JSON(w, r, Response{Message: "logged_in", User: user})
}
