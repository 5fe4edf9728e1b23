// Package profile управляет профилями студентов и учителей и навыками учителей.
package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/magabrotheeeer/eduglow/internal/lib/apperr"
	"github.com/magabrotheeeer/eduglow/internal/models"
	"github.com/magabrotheeeer/eduglow/internal/storage"
)

// UserRepository чтение и обновление профилей.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	UpdateProfile(ctx context.Context, user models.User) (*models.User, error)
}

// SkillRepository навыки учителя.
type SkillRepository interface {
	ListByTeacher(ctx context.Context, teacherID int64) ([]string, error)
	Add(ctx context.Context, teacherID int64, name string) (bool, error)
	Remove(ctx context.Context, teacherID int64, name string) (bool, error)
}

// Service профили пользователей.
type Service struct {
	users  UserRepository
	skills SkillRepository
	log    *slog.Logger
}

// New создает новый экземпляр Service.
func New(log *slog.Logger, users UserRepository, skills SkillRepository) *Service {
	return &Service{users: users, skills: skills, log: log}
}

// GetStudentProfile профиль текущего студента.
func (s *Service) GetStudentProfile(ctx context.Context, identity models.Identity) (models.PublicUser, error) {
	const op = "services.profile.GetStudentProfile"
	user, err := s.get(ctx, identity)
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("%s: %w", op, err)
	}
	return user.Public(), nil
}

// GetTeacherProfile профиль текущего учителя и его навыки.
func (s *Service) GetTeacherProfile(ctx context.Context, identity models.Identity) (models.PublicUser, []string, error) {
	const op = "services.profile.GetTeacherProfile"
	user, err := s.get(ctx, identity)
	if err != nil {
		return models.PublicUser{}, nil, fmt.Errorf("%s: %w", op, err)
	}
	skills, err := s.skills.ListByTeacher(ctx, user.ID)
	if err != nil {
		return models.PublicUser{}, nil, fmt.Errorf("%s: %w", op, err)
	}
	return user.Public(), skills, nil
}

// UpdateTeacherProfile применяет переданные поля. null очищает поле.
// Некорректный рейтинг отклоняет всё обновление целиком.
func (s *Service) UpdateTeacherProfile(ctx context.Context, identity models.Identity,
	upd models.ProfileUpdate) (models.PublicUser, error) {
	const op = "services.profile.UpdateTeacherProfile"

	var rating *float64
	if upd.Rating.Set {
		r, err := ParseRating(upd.Rating.Value)
		if err != nil {
			return models.PublicUser{}, apperr.Validation("rating must be a number")
		}
		rating = &r
	}

	user, err := s.get(ctx, identity)
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("%s: %w", op, err)
	}
	upd.Apply(user)
	if rating != nil {
		user.Rating = rating
	}

	updated, err := s.users.UpdateProfile(ctx, *user)
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("profile updated", slog.String("op", op), slog.Int64("user_id", updated.ID))
	return updated.Public(), nil
}

// AddSkill добавляет навык. added == false, если такой навык уже был.
func (s *Service) AddSkill(ctx context.Context, identity models.Identity, name string) (string, bool, error) {
	const op = "services.profile.AddSkill"
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false, apperr.Validation("skill name required")
	}
	added, err := s.skills.Add(ctx, identity.UserID, name)
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", op, err)
	}
	return name, added, nil
}

// RemoveSkill удаляет навык по точному имени.
func (s *Service) RemoveSkill(ctx context.Context, identity models.Identity, name string) (string, error) {
	const op = "services.profile.RemoveSkill"
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperr.Validation("skill name required")
	}
	removed, err := s.skills.Remove(ctx, identity.UserID, name)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if !removed {
		return "", apperr.NotFound("skill not found")
	}
	return name, nil
}

func (s *Service) get(ctx context.Context, identity models.Identity) (*models.User, error) {
	user, err := s.users.GetByID(ctx, identity.UserID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperr.NotFound("not found")
	}
	return user, err
}

var errNotNumber = errors.New("not a number")

// ParseRating принимает число или строку с числом. null, булевы значения,
// NaN и бесконечности не принимаются.
func ParseRating(raw *json.RawMessage) (float64, error) {
	if raw == nil {
		return 0, errNotNumber
	}

	var v any
	if err := json.Unmarshal(*raw, &v); err != nil {
		return 0, errNotNumber
	}

	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, errNotNumber
		}
		f = parsed
	default:
		return 0, errNotNumber
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errNotNumber
	}
	return f, nil
}
