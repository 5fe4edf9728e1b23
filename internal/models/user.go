// Package models содержит доменные структуры сервиса: пользователей,
// каталог репетиторов, заявки на пробный урок, бронирования и токены сброса пароля.
package models

import "time"

// Роли пользователей.
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
)

// ValidRole сообщает, допустима ли роль при регистрации.
func ValidRole(role string) bool {
	return role == RoleStudent || role == RoleTeacher
}

// User зарегистрированный пользователь. Поля профиля необязательны.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         string
	Name         *string
	Subject      *string
	Rating       *float64
	Price        *string
	City         *string
	Image        *string
	CreatedAt    time.Time
}

// PublicUser публичная проекция пользователя, без хеша пароля.
type PublicUser struct {
	ID      int64    `json:"id"`
	Email   string   `json:"email"`
	Role    string   `json:"role"`
	Name    *string  `json:"name"`
	Subject *string  `json:"subject"`
	Rating  *float64 `json:"rating"`
	Price   *string  `json:"price"`
	City    *string  `json:"city"`
	Image   *string  `json:"image"`
}

// Public возвращает публичную проекцию.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:      u.ID,
		Email:   u.Email,
		Role:    u.Role,
		Name:    u.Name,
		Subject: u.Subject,
		Rating:  u.Rating,
		Price:   u.Price,
		City:    u.City,
		Image:   u.Image,
	}
}

// Identity личность из активной сессии, передаётся в сервисы явно.
type Identity struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
}

// Registration данные регистрации. Пустая роль означает студента.
type Registration struct {
	Email    string
	Password string
	Role     string
	Name     *string
}
