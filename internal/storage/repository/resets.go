package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/magabrotheeeer/eduglow/internal/models"
	"github.com/magabrotheeeer/eduglow/internal/storage"
)

// ResetTokenRepository хранит токены сброса пароля.
type ResetTokenRepository struct {
	db storage.Pool
}

// NewResetTokenRepository создаёт репозиторий токенов сброса.
func NewResetTokenRepository(db storage.Pool) *ResetTokenRepository {
	return &ResetTokenRepository{db: db}
}

// Replace удаляет прежние токены пользователя и сохраняет новый в одной транзакции.
func (r *ResetTokenRepository) Replace(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	const op = "repository.ResetTokenRepository.Replace"

	err := storage.WithTx(ctx, r.db, func(ctx context.Context, tx storage.DBTX) error {
		if _, err := tx.Exec(ctx, `DELETE FROM password_reset_tokens WHERE user_id = $1`, userID); err != nil {
			return err
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO password_reset_tokens (user_id, token, expires_at) VALUES ($1, $2, $3)`,
			userID, token, expiresAt)
		return err
	})
	if err != nil {
		if storage.IsUniqueViolation(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetByToken ищет запись токена.
func (r *ResetTokenRepository) GetByToken(ctx context.Context, token string) (*models.PasswordResetToken, error) {
	const op = "repository.ResetTokenRepository.GetByToken"

	t := &models.PasswordResetToken{}
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, token, expires_at FROM password_reset_tokens WHERE token = $1`, token).
		Scan(&t.ID, &t.UserID, &t.Token, &t.ExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, notFound(err))
	}
	return t, nil
}

// Delete удаляет запись токена по id. Отсутствие записи не ошибка.
func (r *ResetTokenRepository) Delete(ctx context.Context, id int64) error {
	const op = "repository.ResetTokenRepository.Delete"

	if _, err := r.db.Exec(ctx, `DELETE FROM password_reset_tokens WHERE id = $1`, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Consume удаляет токен и записывает новый хеш пароля в одной транзакции.
// Если токен уже удалён параллельным запросом или пользователя нет,
// возвращает storage.ErrNotFound и ничего не меняет.
func (r *ResetTokenRepository) Consume(ctx context.Context, tokenID, userID int64, passwordHash string) error {
	const op = "repository.ResetTokenRepository.Consume"

	err := storage.WithTx(ctx, r.db, func(ctx context.Context, tx storage.DBTX) error {
		tag, err := tx.Exec(ctx, `DELETE FROM password_reset_tokens WHERE id = $1`, tokenID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return storage.ErrNotFound
		}
		tag, err = tx.Exec(ctx, `UPDATE users SET password_hash = $2 WHERE id = $1`, userID, passwordHash)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return storage.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
