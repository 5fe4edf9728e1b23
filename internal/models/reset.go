package models

import "time"

// ResetTokenTTL срок жизни токена сброса пароля.
const ResetTokenTTL = time.Hour

// PasswordResetToken одноразовый токен сброса пароля.
type PasswordResetToken struct {
	ID        int64
	UserID    int64
	Token     string
	ExpiresAt time.Time
}

// IsExpired истекает строго после ExpiresAt.
func (t *PasswordResetToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}

// ResetEmail сообщение для очереди писем.
type ResetEmail struct {
	Email string `json:"email"`
	Link  string `json:"link"`
}
