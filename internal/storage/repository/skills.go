package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/eduglow/internal/storage"
)

// SkillRepository хранит навыки учителей.
type SkillRepository struct {
	db storage.Pool
}

// NewSkillRepository создаёт репозиторий навыков.
func NewSkillRepository(db storage.Pool) *SkillRepository {
	return &SkillRepository{db: db}
}

// ListByTeacher возвращает навыки учителя в порядке добавления.
func (r *SkillRepository) ListByTeacher(ctx context.Context, teacherID int64) ([]string, error) {
	const op = "repository.SkillRepository.ListByTeacher"

	rows, err := r.db.Query(ctx,
		`SELECT name FROM teacher_skills WHERE teacher_id = $1 ORDER BY id`, teacherID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	skills := []string{}
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		skills = append(skills, name)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return skills, nil
}

// ListByTeachers возвращает навыки сразу для нескольких учителей.
func (r *SkillRepository) ListByTeachers(ctx context.Context, teacherIDs []int64) (map[int64][]string, error) {
	const op = "repository.SkillRepository.ListByTeachers"

	result := make(map[int64][]string, len(teacherIDs))
	if len(teacherIDs) == 0 {
		return result, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT teacher_id, name FROM teacher_skills WHERE teacher_id = ANY($1) ORDER BY id`, teacherIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			teacherID int64
			name      string
		)
		if err = rows.Scan(&teacherID, &name); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result[teacherID] = append(result[teacherID], name)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// Add добавляет навык, если у учителя его ещё нет.
// added == false означает, что навык уже был.
func (r *SkillRepository) Add(ctx context.Context, teacherID int64, name string) (bool, error) {
	const op = "repository.SkillRepository.Add"

	query := `INSERT INTO teacher_skills (teacher_id, name)
			  SELECT $1::bigint, $2::varchar
			  WHERE NOT EXISTS (
			      SELECT 1 FROM teacher_skills WHERE teacher_id = $1::bigint AND name = $2::varchar
			  )`
	tag, err := r.db.Exec(ctx, query, teacherID, name)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return tag.RowsAffected() > 0, nil
}

// Remove удаляет навык. removed == false, если такого навыка не было.
func (r *SkillRepository) Remove(ctx context.Context, teacherID int64, name string) (bool, error) {
	const op = "repository.SkillRepository.Remove"

	tag, err := r.db.Exec(ctx,
		`DELETE FROM teacher_skills WHERE teacher_id = $1 AND name = $2`, teacherID, name)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return tag.RowsAffected() > 0, nil
}
