package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// LooseString поле запроса, которое клиенты присылают то строкой, то числом.
// Число сохраняется в исходной записи, null и отсутствие дают пустую строку.
type LooseString string

// UnmarshalJSON принимает строку, число или null.
func (s *LooseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = LooseString(v)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*s = LooseString(n.String())
		return nil
	}
}

// String возвращает значение без пробелов по краям.
func (s LooseString) String() string {
	return strings.TrimSpace(string(s))
}

// TrialInput данные формы пробного урока.
type TrialInput struct {
	Name    string
	Phone   string
	Subject string
}

// BookingInput данные запроса на бронирование.
//
// TeacherID принимает число, числовую строку или "teacher-<id>".
type BookingInput struct {
	TeacherID string
	Subject   string
	Phone     string
}
