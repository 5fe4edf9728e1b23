// Package jwt подписывает и проверяет значение сессионной cookie.
//
// Токен несёт идентификатор серверной сессии, id пользователя и роль.
// Сама сессия живёт в Redis, подпись защищает cookie от подделки.
package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Maker описывает генерацию и разбор токенов сессии.
type Maker interface {
	GenerateToken(sessionID string, userID int64, role string) (string, error)
	ParseToken(tokenStr string) (*SessionClaims, error)
}

// SessionClaims данные, хранящиеся в подписанной cookie.
type SessionClaims struct {
	SessionID string `json:"sid"`
	UserID    int64  `json:"uid"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// MakerImpl реализует Maker на HS256.
type MakerImpl struct {
	secretKey string
	tokenTTL  time.Duration
}

// NewJWTMaker создаёт Maker на основе секретного ключа и времени жизни сессии.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
