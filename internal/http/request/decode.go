// Package request разбирает JSON тела запросов.
package request

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/render"
)

// DecodeJSON разбирает тело запроса в T. Пустое тело не ошибка.
// При ошибке разбора возвращается нулевое значение T вместе с ошибкой,
// обработчик решает, считать ли такое тело пустым.
func DecodeJSON[T any](r *http.Request) (T, error) {
	var v T
	if r.Body == nil {
		return v, nil
	}
	err := render.DecodeJSON(r.Body, &v)
	if errors.Is(err, io.EOF) {
		var zero T
		return zero, nil
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}
