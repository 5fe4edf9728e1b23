// Package session хранит серверные сессии в Redis.
//
// Клиент получает подписанный токен с идентификатором сессии, сама запись
// (id пользователя и роль) лежит в кэше под ключом "session:<id>".
// Удаление записи завершает сессию, даже если токен ещё не истёк.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/eduglow/internal/lib/jwt"
	"github.com/magabrotheeeer/eduglow/internal/models"
)

// ErrNoSession токен не прошёл проверку или сессия уже завершена.
var ErrNoSession = errors.New("no active session")

const keyPrefix = "session:"

// Cache хранилище записей сессий.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// Store выдаёт, проверяет и завершает сессии.
type Store struct {
	cache Cache
	maker jwt.Maker
	ttl   time.Duration
	newID func() string
}

// New создает новый экземпляр Store.
func New(cache Cache, maker jwt.Maker, ttl time.Duration) *Store {
	return &Store{
		cache: cache,
		maker: maker,
		ttl:   ttl,
		newID: uuid.NewString,
	}
}

// TTL время жизни сессии.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Create заводит новую сессию и возвращает значение cookie.
func (s *Store) Create(ctx context.Context, identity models.Identity) (string, error) {
	const op = "services.session.Create"
	sid := s.newID()
	if err := s.cache.Set(ctx, keyPrefix+sid, identity, s.ttl); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	token, err := s.maker.GenerateToken(sid, identity.UserID, identity.Role)
	if err != nil {
		_ = s.cache.Invalidate(ctx, keyPrefix+sid)
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// Resolve проверяет токен и возвращает личность активной сессии.
// Несовпадение данных токена и записи считается отсутствием сессии.
func (s *Store) Resolve(ctx context.Context, token string) (models.Identity, error) {
	const op = "services.session.Resolve"
	claims, err := s.maker.ParseToken(token)
	if err != nil {
		return models.Identity{}, ErrNoSession
	}

	var identity models.Identity
	found, err := s.cache.Get(ctx, keyPrefix+claims.SessionID, &identity)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%s: %w", op, err)
	}
	if !found || identity.UserID != claims.UserID || identity.Role != claims.Role {
		return models.Identity{}, ErrNoSession
	}
	return identity, nil
}

// Destroy завершает сессию. Недействительный токен не ошибка.
func (s *Store) Destroy(ctx context.Context, token string) error {
	const op = "services.session.Destroy"
	claims, err := s.maker.ParseToken(token)
	if err != nil {
		return nil
	}
	if err := s.cache.Invalidate(ctx, keyPrefix+claims.SessionID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
