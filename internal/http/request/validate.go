package request

import (
	"errors"

	"github.com/go-playground/validator"
)

var validate = validator.New()

// Validate проверяет теги validate у структуры запроса.
// Возвращает nil, если нарушений нет.
func Validate(v any) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if errors.As(validate.Struct(v), &errs) {
		return errs
	}
	return nil
}
