// Package apperr описывает доменные ошибки сервиса.
//
// Каждая ошибка несёт вид (Kind) и сообщение для клиента. Вид сравнивается
// через errors.Is с сентинелами пакета, сообщение уходит в тело ответа как есть.
package apperr

import (
	"errors"
	"fmt"
)

// Виды доменных ошибок.
var (
	ErrValidation         = errors.New("validation")
	ErrAuth               = errors.New("auth")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidToken       = errors.New("invalid token")
	ErrServiceUnavailable = errors.New("service unavailable")
)

// Error доменная ошибка с видом и клиентским сообщением.
type Error struct {
	Kind error
	Msg  string
	// Cause исходная ошибка, только для логов.
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}
	return e.Msg
}

// Is сопоставляет ошибку с видом.
func (e *Error) Is(target error) bool {
	return e.Kind == target
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New создаёт ошибку заданного вида.
func New(kind error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap создаёт ошибку заданного вида, сохраняя причину.
func Wrap(kind error, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Cause: cause}
}

func Validation(msg string) *Error   { return New(ErrValidation, msg) }
func Auth(msg string) *Error         { return New(ErrAuth, msg) }
func Unauthorized(msg string) *Error { return New(ErrUnauthorized, msg) }
func Forbidden(msg string) *Error    { return New(ErrForbidden, msg) }
func NotFound(msg string) *Error     { return New(ErrNotFound, msg) }
func Conflict(msg string) *Error     { return New(ErrConflict, msg) }
func InvalidToken(msg string) *Error { return New(ErrInvalidToken, msg) }

// ServiceUnavailable оборачивает отказ внешнего транспорта.
func ServiceUnavailable(msg string, cause error) *Error {
	return Wrap(ErrServiceUnavailable, msg, cause)
}

// Message возвращает клиентское сообщение доменной ошибки.
// Для прочих ошибок ok == false.
func Message(err error) (string, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Msg, true
	}
	return "", false
}
