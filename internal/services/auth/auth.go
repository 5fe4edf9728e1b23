// Package auth содержит регистрацию, вход, выход и сброс пароля.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/magabrotheeeer/eduglow/internal/lib/apperr"
	"github.com/magabrotheeeer/eduglow/internal/lib/password"
	"github.com/magabrotheeeer/eduglow/internal/lib/sl"
	"github.com/magabrotheeeer/eduglow/internal/lib/smtp"
	"github.com/magabrotheeeer/eduglow/internal/models"
	"github.com/magabrotheeeer/eduglow/internal/storage"
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	Create(ctx context.Context, user models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// ResetTokenRepository хранилище токенов сброса пароля.
type ResetTokenRepository interface {
	// Replace удаляет прежние токены пользователя и сохраняет новый.
	Replace(ctx context.Context, userID int64, token string, expiresAt time.Time) error
	GetByToken(ctx context.Context, token string) (*models.PasswordResetToken, error)
	Delete(ctx context.Context, id int64) error
	// Consume удаляет токен и меняет хеш пароля в одной транзакции.
	Consume(ctx context.Context, tokenID, userID int64, passwordHash string) error
}

// Notifier доставляет письмо со ссылкой сброса.
type Notifier interface {
	SendPasswordReset(ctx context.Context, email, link string) error
}

// SessionStore выдаёт и завершает сессии.
type SessionStore interface {
	Create(ctx context.Context, identity models.Identity) (string, error)
	Destroy(ctx context.Context, token string) error
}

// AuthService отвечает за учётные записи и сессии.
type AuthService struct {
	users    UserRepository
	resets   ResetTokenRepository
	sessions SessionStore
	notifier Notifier
	baseURL  string
	log      *slog.Logger

	now      func() time.Time
	newToken func() (string, error)
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(log *slog.Logger, users UserRepository, resets ResetTokenRepository,
	sessions SessionStore, notifier Notifier, baseURL string) *AuthService {
	return &AuthService{
		users:    users,
		resets:   resets,
		sessions: sessions,
		notifier: notifier,
		baseURL:  strings.TrimRight(baseURL, "/"),
		log:      log,
		now:      time.Now,
		newToken: randomToken,
	}
}

// Register создаёт учётную запись. Почта хранится в нижнем регистре без пробелов.
func (s *AuthService) Register(ctx context.Context, in models.Registration) (models.PublicUser, error) {
	const op = "services.auth.Register"
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return models.PublicUser{}, apperr.Validation("email and password required")
	}
	role := in.Role
	if role == "" {
		role = models.RoleStudent
	}
	if !models.ValidRole(role) {
		return models.PublicUser{}, apperr.Validation("invalid role")
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("%s: %w", op, err)
	}
	if exists {
		return models.PublicUser{}, apperr.Conflict("email already registered")
	}

	hashed, err := password.GetHash(in.Password)
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("%s: %w", op, err)
	}
	// Параллельная регистрация может проскочить проверку, её ловит уникальный индекс.
	user, err := s.users.Create(ctx, models.User{
		Email:        email,
		PasswordHash: hashed,
		Role:         role,
		Name:         in.Name,
	})
	if errors.Is(err, storage.ErrAlreadyExists) {
		return models.PublicUser{}, apperr.Conflict("email already registered")
	}
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("user registered", slog.String("op", op), slog.Int64("user_id", user.ID))
	return user.Public(), nil
}

// Login проверяет пароль и роль, затем открывает сессию.
// Возвращает пользователя и значение сессионной cookie.
func (s *AuthService) Login(ctx context.Context, email, rawPassword, role string) (models.PublicUser, string, error) {
	const op = "services.auth.Login"
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, storage.ErrNotFound) {
		return models.PublicUser{}, "", apperr.Auth("invalid credentials")
	}
	if err != nil {
		return models.PublicUser{}, "", fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		if !errors.Is(err, password.ErrMismatch) {
			s.log.Error("stored hash is broken", slog.String("op", op), slog.Int64("user_id", user.ID), sl.Err(err))
		}
		return models.PublicUser{}, "", apperr.Auth("invalid credentials")
	}
	if role != "" && role != user.Role {
		return models.PublicUser{}, "", apperr.Forbidden("role mismatch")
	}

	token, err := s.sessions.Create(ctx, models.Identity{UserID: user.ID, Role: user.Role})
	if err != nil {
		return models.PublicUser{}, "", fmt.Errorf("%s: %w", op, err)
	}
	return user.Public(), token, nil
}

// Logout завершает сессию. Пустой токен ничего не делает.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	const op = "services.auth.Logout"
	if token == "" {
		return nil
	}
	if err := s.sessions.Destroy(ctx, token); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetUser возвращает пользователя текущей сессии.
func (s *AuthService) GetUser(ctx context.Context, identity models.Identity) (models.PublicUser, error) {
	const op = "services.auth.GetUser"
	user, err := s.users.GetByID(ctx, identity.UserID)
	if errors.Is(err, storage.ErrNotFound) {
		return models.PublicUser{}, apperr.NotFound("not found")
	}
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("%s: %w", op, err)
	}
	return user.Public(), nil
}

// RequestPasswordReset выпускает новый токен (прежние удаляются) и отправляет ссылку.
// Токен остаётся в базе, даже если письмо не ушло.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	const op = "services.auth.RequestPasswordReset"
	log := s.log.With(slog.String("op", op))

	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, storage.ErrNotFound) {
		return apperr.NotFound("email not found")
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	token, err := s.newToken()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	expiresAt := s.now().UTC().Add(models.ResetTokenTTL)
	if err := s.resets.Replace(ctx, user.ID, token, expiresAt); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	link := s.baseURL + "/reset/" + token
	if err := s.notifier.SendPasswordReset(ctx, user.Email, link); err != nil {
		log.Error("failed to send reset email", slog.Int64("user_id", user.ID), sl.Err(err))
		if errors.Is(err, smtp.ErrNotConfigured) {
			return apperr.ServiceUnavailable("SMTP not configured", err)
		}
		return apperr.ServiceUnavailable("failed to send reset email", err)
	}
	log.Info("reset email sent", slog.Int64("user_id", user.ID))
	return nil
}

// ConsumePasswordReset меняет пароль по токену. Токен одноразовый,
// просроченный токен удаляется при обращении.
func (s *AuthService) ConsumePasswordReset(ctx context.Context, token, newPassword string) error {
	const op = "services.auth.ConsumePasswordReset"
	token = strings.TrimSpace(token)
	if token == "" || newPassword == "" {
		return apperr.Validation("token and new_password required")
	}

	reset, err := s.resets.GetByToken(ctx, token)
	if errors.Is(err, storage.ErrNotFound) {
		return apperr.InvalidToken("invalid or expired token")
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if reset.IsExpired(s.now().UTC()) {
		if err := s.resets.Delete(ctx, reset.ID); err != nil {
			s.log.Error("failed to delete expired token", slog.String("op", op), sl.Err(err))
		}
		return apperr.InvalidToken("invalid or expired token")
	}

	if _, err := s.users.GetByID(ctx, reset.UserID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperr.NotFound("user not found")
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	hashed, err := password.GetHash(newPassword)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	err = s.resets.Consume(ctx, reset.ID, reset.UserID, hashed)
	if errors.Is(err, storage.ErrNotFound) {
		return apperr.InvalidToken("invalid or expired token")
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("password updated", slog.String("op", op), slog.Int64("user_id", reset.UserID))
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// randomToken 24 случайных байта в URL-безопасном base64.
func randomToken() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
