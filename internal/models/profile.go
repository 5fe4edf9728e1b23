package models

import (
	"bytes"
	"encoding/json"
)

// Optional поле запроса, различающее "не передано" и "передано null".
type Optional[T any] struct {
	Value *T
	Set   bool
}

// UnmarshalJSON вызывается только для присутствующих ключей, поэтому Set == true.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// ProfileUpdate частичное обновление профиля учителя.
//
// Rating приходит числом или строкой и разбирается в сервисе.
type ProfileUpdate struct {
	Name    Optional[string]          `json:"name"`
	Subject Optional[string]          `json:"subject"`
	Price   Optional[string]          `json:"price"`
	City    Optional[string]          `json:"city"`
	Image   Optional[string]          `json:"image"`
	Rating  Optional[json.RawMessage] `json:"rating"`
}

// Apply переносит переданные текстовые поля в пользователя.
func (p ProfileUpdate) Apply(u *User) {
	apply := func(dst **string, o Optional[string]) {
		if o.Set {
			*dst = o.Value
		}
	}
	apply(&u.Name, p.Name)
	apply(&u.Subject, p.Subject)
	apply(&u.Price, p.Price)
	apply(&u.City, p.City)
	apply(&u.Image, p.Image)
}
