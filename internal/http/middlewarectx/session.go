// Package middlewarectx содержит HTTP middleware сервиса: загрузку сессии
// из cookie, проверку роли, ограничение частоты запросов и метрики.
//
// LoadSession кладёт личность пользователя в контекст запроса, если cookie
// содержит действующую сессию. RequireSession пропускает запрос дальше
// только при наличии личности с нужной ролью.
package middlewarectx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/eduglow/internal/http/response"
	"github.com/magabrotheeeer/eduglow/internal/lib/sl"
	"github.com/magabrotheeeer/eduglow/internal/models"
	"github.com/magabrotheeeer/eduglow/internal/services/session"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// IdentityKey ключ личности пользователя в контексте.
const IdentityKey Key = "identity"

// SessionResolver проверяет значение сессионной cookie.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (models.Identity, error)
}

// WithIdentity возвращает контекст с личностью пользователя.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, identity)
}

// IdentityFrom достаёт личность из контекста запроса.
func IdentityFrom(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(models.Identity)
	return identity, ok
}

// LoadSession читает cookie cookieName и, если сессия действующая, кладёт
// личность в контекст. Запрос без сессии проходит дальше анонимным.
func LoadSession(log *slog.Logger, resolver SessionResolver, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.LoadSession"

			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := resolver.Resolve(r.Context(), cookie.Value)
			if errors.Is(err, session.ErrNoSession) {
				next.ServeHTTP(w, r)
				return
			}
			if err != nil {
				log.Error("failed to resolve session",
					slog.String("op", op),
					slog.String("request_id", middleware.GetReqID(r.Context())),
					sl.Err(err),
				)
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error(response.InternalMessage))
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// RequireSession отвечает 401 без сессии и 403, если роль не совпадает.
// Пустая role пропускает любую роль.
func RequireSession(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFrom(r.Context())
			if !ok {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthorized"))
				return
			}
			if role != "" && identity.Role != role {
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("forbidden"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
