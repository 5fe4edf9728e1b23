// Package sessioncookie читает и записывает сессионную cookie.
package sessioncookie

import (
	"net/http"
	"time"
)

// Cookie параметры сессионной cookie.
//
// Фронтенд живёт на другом домене, поэтому при Secure используется
// SameSite=None. Без Secure браузеры отвергают None, и ставится Lax.
type Cookie struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

// New создает новый экземпляр Cookie.
func New(name string, secure bool, ttl time.Duration) Cookie {
	return Cookie{Name: name, Secure: secure, TTL: ttl}
}

// Set выставляет cookie с токеном сессии.
func (c Cookie) Set(w http.ResponseWriter, token string) {
	http.SetCookie(w, c.build(token, int(c.TTL.Seconds())))
}

// Clear удаляет cookie в браузере.
func (c Cookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, c.build("", -1))
}

// Read возвращает токен из запроса или пустую строку.
func (c Cookie) Read(r *http.Request) string {
	cookie, err := r.Cookie(c.Name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (c Cookie) build(value string, maxAge int) *http.Cookie {
	sameSite := http.SameSiteLaxMode
	if c.Secure {
		sameSite = http.SameSiteNoneMode
	}
	return &http.Cookie{
		Name:     c.Name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: sameSite,
	}
}
