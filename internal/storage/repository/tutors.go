package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/eduglow/internal/models"
	"github.com/magabrotheeeer/eduglow/internal/storage"
)

// TutorRepository хранит статический каталог репетиторов.
type TutorRepository struct {
	db storage.Pool
}

// NewTutorRepository создаёт репозиторий каталога.
func NewTutorRepository(db storage.Pool) *TutorRepository {
	return &TutorRepository{db: db}
}

// List возвращает каталог целиком.
func (r *TutorRepository) List(ctx context.Context) ([]models.Tutor, error) {
	const op = "repository.TutorRepository.List"

	rows, err := r.db.Query(ctx,
		`SELECT id, name, subject, level, rating, price, city, image FROM tutors ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []models.Tutor
	for rows.Next() {
		var t models.Tutor
		if err = rows.Scan(&t.ID, &t.Name, &t.Subject, &t.Level, &t.Rating, &t.Price, &t.City, &t.Image); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// Count возвращает размер каталога.
func (r *TutorRepository) Count(ctx context.Context) (int, error) {
	const op = "repository.TutorRepository.Count"

	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM tutors`).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

// CreateMany добавляет записи каталога одной транзакцией.
func (r *TutorRepository) CreateMany(ctx context.Context, tutors []models.Tutor) error {
	const op = "repository.TutorRepository.CreateMany"

	err := storage.WithTx(ctx, r.db, func(ctx context.Context, tx storage.DBTX) error {
		for _, t := range tutors {
			if _, err := tx.Exec(ctx,
				`INSERT INTO tutors (name, subject, level, rating, price, city, image)
				 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				t.Name, t.Subject, t.Level, t.Rating, t.Price, t.City, t.Image); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
