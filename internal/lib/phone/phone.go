// Package phone нормализует телефонные номера из форм заявок и бронирований.
package phone

import (
	"errors"
	"strings"
)

// ErrInvalid номер после очистки содержит не только цифры или пуст.
var ErrInvalid = errors.New("phone must contain digits only")

var stripper = strings.NewReplacer(" ", "", "-", "", "+", "")

// Normalize убирает пробелы, дефисы и плюсы и проверяет, что остались только цифры.
func Normalize(raw string) (string, error) {
	digits := stripper.Replace(raw)
	if digits == "" {
		return "", ErrInvalid
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", ErrInvalid
		}
	}
	return digits, nil
}
