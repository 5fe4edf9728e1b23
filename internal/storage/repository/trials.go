package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/magabrotheeeer/eduglow/internal/models"
	"github.com/magabrotheeeer/eduglow/internal/storage"
)

// TrialRepository хранит заявки на пробный урок.
type TrialRepository struct {
	db storage.Pool
}

// NewTrialRepository создаёт репозиторий заявок.
func NewTrialRepository(db storage.Pool) *TrialRepository {
	return &TrialRepository{db: db}
}

// Create сохраняет заявку и возвращает её id.
func (r *TrialRepository) Create(ctx context.Context, trial models.TrialRequest) (int64, error) {
	const op = "repository.TrialRepository.Create"

	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO trial_requests (name, phone, subject, user_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		trial.Name, trial.Phone, trial.Subject, trial.UserID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// ListByUser возвращает заявки пользователя, новые первыми.
func (r *TrialRepository) ListByUser(ctx context.Context, userID int64) ([]models.TrialRequest, error) {
	const op = "repository.TrialRepository.ListByUser"

	rows, err := r.db.Query(ctx,
		`SELECT id, name, phone, subject, user_id, created_at
		 FROM trial_requests
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	result := []models.TrialRequest{}
	for rows.Next() {
		var t models.TrialRequest
		if err = rows.Scan(&t.ID, &t.Name, &t.Phone, &t.Subject, &t.UserID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListMatching возвращает заявки, в теме которых встречается хотя бы один
// из terms без учёта регистра. Пустой terms даёт пустой результат без запроса.
func (r *TrialRepository) ListMatching(ctx context.Context, terms []string) ([]models.TeacherTrial, error) {
	const op = "repository.TrialRepository.ListMatching"

	result := []models.TeacherTrial{}
	if len(terms) == 0 {
		return result, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT t.id, t.subject, t.created_at, COALESCE(u.name, t.name), t.phone
		 FROM trial_requests t
		 LEFT JOIN users u ON u.id = t.user_id
		 WHERE lower(t.subject) LIKE ANY($1)
		 ORDER BY t.created_at DESC, t.id DESC`, LikePatterns(terms))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var t models.TeacherTrial
		if err = rows.Scan(&t.ID, &t.Subject, &t.CreatedAt, &t.StudentName, &t.StudentPhone); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// Count возвращает общее число заявок.
func (r *TrialRepository) Count(ctx context.Context) (int, error) {
	const op = "repository.TrialRepository.Count"

	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM trial_requests`).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// LikePatterns превращает термины в шаблоны "%term%" для LIKE в нижнем регистре.
// Метасимволы LIKE экранируются, поэтому совпадение строго подстрочное.
func LikePatterns(terms []string) []string {
	patterns := make([]string, 0, len(terms))
	for _, term := range terms {
		patterns = append(patterns, "%"+likeEscaper.Replace(strings.ToLower(term))+"%")
	}
	return patterns
}
