// Package trials принимает заявки на пробный урок и подбирает их учителям
// по предмету и навыкам.
package trials

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/eduglow/internal/lib/apperr"
	"github.com/magabrotheeeer/eduglow/internal/lib/phone"
	"github.com/magabrotheeeer/eduglow/internal/models"
	"github.com/magabrotheeeer/eduglow/internal/storage"
)

// TrialRepository хранилище заявок.
type TrialRepository interface {
	Create(ctx context.Context, trial models.TrialRequest) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]models.TrialRequest, error)
	ListMatching(ctx context.Context, terms []string) ([]models.TeacherTrial, error)
	Count(ctx context.Context) (int, error)
}

// UserRepository профиль учителя.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// SkillRepository навыки учителя.
type SkillRepository interface {
	ListByTeacher(ctx context.Context, teacherID int64) ([]string, error)
}

// Service заявки на пробный урок.
type Service struct {
	trials TrialRepository
	users  UserRepository
	skills SkillRepository
	log    *slog.Logger
}

// New создает новый экземпляр Service.
func New(log *slog.Logger, trials TrialRepository, users UserRepository, skills SkillRepository) *Service {
	return &Service{trials: trials, users: users, skills: skills, log: log}
}

// Submit сохраняет заявку. identity == nil для анонимного посетителя,
// иначе заявка привязывается к пользователю. Телефон хранится нормализованным.
func (s *Service) Submit(ctx context.Context, identity *models.Identity, in models.TrialInput) error {
	const op = "services.trials.Submit"
	if in.Name == "" || in.Phone == "" || in.Subject == "" {
		return apperr.Validation("name, phone, and subject required")
	}
	clean, err := phone.Normalize(in.Phone)
	if err != nil {
		return apperr.Validation("phone must be numeric")
	}

	trial := models.TrialRequest{
		Name:    in.Name,
		Phone:   clean,
		Subject: in.Subject,
	}
	if identity != nil {
		uid := identity.UserID
		trial.UserID = &uid
	}
	id, err := s.trials.Create(ctx, trial)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("trial submitted", slog.String("op", op), slog.Int64("trial_id", id))
	return nil
}

// ListForTeacher заявки, тема которых содержит предмет учителя или один из его навыков.
func (s *Service) ListForTeacher(ctx context.Context, identity models.Identity) ([]models.TeacherTrial, error) {
	const op = "services.trials.ListForTeacher"
	teacher, err := s.users.GetByID(ctx, identity.UserID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperr.NotFound("not found")
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	skills, err := s.skills.ListByTeacher(ctx, teacher.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	list, err := s.trials.ListMatching(ctx, MatchTerms(teacher.Subject, skills))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return list, nil
}

// ListForStudent собственные заявки студента, новые первыми.
func (s *Service) ListForStudent(ctx context.Context, identity models.Identity) ([]models.TrialRequest, error) {
	const op = "services.trials.ListForStudent"
	list, err := s.trials.ListByUser(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return list, nil
}

// CountAll общее число заявок в системе.
func (s *Service) CountAll(ctx context.Context) (int, error) {
	const op = "services.trials.CountAll"
	n, err := s.trials.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

// MatchTerms предмет и навыки без пустых значений и пробелов по краям.
func MatchTerms(subject *string, skills []string) []string {
	candidates := make([]string, 0, len(skills)+1)
	if subject != nil {
		candidates = append(candidates, *subject)
	}
	candidates = append(candidates, skills...)

	terms := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c = strings.TrimSpace(c); c != "" {
			terms = append(terms, c)
		}
	}
	return terms
}
