// Package response содержит вспомогательные типы и функции для формирования
// JSON‑ответов HTTP‑обработчиков. Доменные ошибки переводятся в HTTP статус
// и тело {"error": "..."}.
package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/eduglow/internal/lib/apperr"
	"github.com/magabrotheeeer/eduglow/internal/lib/sl"
)

// InternalMessage сообщение клиенту для ошибок без доменного вида.
const InternalMessage = "internal error"

// ErrorResponse тело ответа с ошибкой.
// Используется в аннотациях @Failure как возвращаемый тип ошибки.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid credentials"`
}

// MessageResponse тело ответа с кодом результата.
type MessageResponse struct {
	Message string `json:"message" example:"logged_out"`
}

// Error возвращает ErrorResponse с переданным сообщением.
func Error(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

// Message возвращает MessageResponse с переданным кодом.
func Message(msg string) MessageResponse {
	return MessageResponse{Message: msg}
}

var statuses = []struct {
	kind   error
	status int
}{
	{apperr.ErrValidation, http.StatusBadRequest},
	{apperr.ErrConflict, http.StatusBadRequest},
	{apperr.ErrInvalidToken, http.StatusBadRequest},
	{apperr.ErrAuth, http.StatusUnauthorized},
	{apperr.ErrUnauthorized, http.StatusUnauthorized},
	{apperr.ErrForbidden, http.StatusForbidden},
	{apperr.ErrNotFound, http.StatusNotFound},
	{apperr.ErrServiceUnavailable, http.StatusInternalServerError},
}

// Status HTTP статус для ошибки. Ошибки без доменного вида дают 500.
func Status(err error) int {
	for _, s := range statuses {
		if errors.Is(err, s.kind) {
			return s.status
		}
	}
	return http.StatusInternalServerError
}

// WriteError пишет ответ для ошибки сервиса. Сообщение доменной ошибки
// уходит клиенту как есть, прочие ошибки скрываются за InternalMessage.
func WriteError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status := Status(err)
	msg, ok := apperr.Message(err)
	if !ok {
		msg = InternalMessage
	}

	if status >= http.StatusInternalServerError {
		log.Error("request failed", slog.Int("status", status), sl.Err(err))
	} else {
		log.Info("request rejected", slog.Int("status", status), slog.String("reason", msg))
	}

	render.Status(r, status)
	render.JSON(w, r, Error(msg))
}

// BadRequest пишет 400 с переданным сообщением.
func BadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, Error(msg))
}
