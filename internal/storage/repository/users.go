// Package repository реализует доступ к таблицам PostgreSQL через pgx.
//
// Репозитории принимают storage.Pool, поэтому в тестах вместо пула
// подставляется pgxmock. Отсутствие строки возвращается как storage.ErrNotFound,
// нарушение уникальности как storage.ErrAlreadyExists.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/magabrotheeeer/eduglow/internal/models"
	"github.com/magabrotheeeer/eduglow/internal/storage"
)

const userColumns = `id, email, password_hash, role, name, subject, rating, price, city, image, created_at`

// UserRepository хранит пользователей.
type UserRepository struct {
	db storage.Pool
}

// NewUserRepository создаёт репозиторий пользователей.
func NewUserRepository(db storage.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.Name, &u.Subject,
		&u.Rating, &u.Price, &u.City, &u.Image, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Create сохраняет пользователя и возвращает его с id и датой создания.
func (r *UserRepository) Create(ctx context.Context, user models.User) (*models.User, error) {
	const op = "repository.UserRepository.Create"

	query := `INSERT INTO users (email, password_hash, role, name, subject, rating, price, city, image)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING ` + userColumns
	u, err := scanUser(r.db.QueryRow(ctx, query,
		user.Email, user.PasswordHash, user.Role, user.Name, user.Subject,
		user.Rating, user.Price, user.City, user.Image))
	if err != nil {
		if storage.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// GetByEmail ищет пользователя по email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "repository.UserRepository.GetByEmail"

	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, notFound(err))
	}
	return u, nil
}

// GetByID ищет пользователя по id.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	const op = "repository.UserRepository.GetByID"

	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, notFound(err))
	}
	return u, nil
}

// GetTeacher ищет пользователя с ролью teacher.
func (r *UserRepository) GetTeacher(ctx context.Context, id int64) (*models.User, error) {
	const op = "repository.UserRepository.GetTeacher"

	u, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1 AND role = $2`, id, models.RoleTeacher))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, notFound(err))
	}
	return u, nil
}

// ListTeachers возвращает всех учителей в порядке регистрации.
func (r *UserRepository) ListTeachers(ctx context.Context) ([]models.User, error) {
	const op = "repository.UserRepository.ListTeachers"

	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE role = $1 ORDER BY id`, models.RoleTeacher)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, *u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateProfile перезаписывает поля профиля и возвращает актуальную запись.
func (r *UserRepository) UpdateProfile(ctx context.Context, user models.User) (*models.User, error) {
	const op = "repository.UserRepository.UpdateProfile"

	query := `UPDATE users
			  SET name = $2, subject = $3, rating = $4, price = $5, city = $6, image = $7
			  WHERE id = $1
			  RETURNING ` + userColumns
	u, err := scanUser(r.db.QueryRow(ctx, query,
		user.ID, user.Name, user.Subject, user.Rating, user.Price, user.City, user.Image))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, notFound(err))
	}
	return u, nil
}

// ExistsByEmail проверяет, занят ли email.
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const op = "repository.UserRepository.ExistsByEmail"

	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return storage.ErrNotFound
	}
	return err
}
