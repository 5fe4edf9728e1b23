// Package directory собирает общую выдачу репетиторов: статический каталог
// плюс зарегистрированные учителя с навыками.
package directory

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/magabrotheeeer/eduglow/internal/models"
)

// TutorRepository каталог репетиторов.
type TutorRepository interface {
	List(ctx context.Context) ([]models.Tutor, error)
}

// TeacherRepository учётные записи учителей.
type TeacherRepository interface {
	ListTeachers(ctx context.Context) ([]models.User, error)
}

// SkillRepository навыки учителей.
type SkillRepository interface {
	ListByTeachers(ctx context.Context, teacherIDs []int64) (map[int64][]string, error)
}

// Service выдача репетиторов.
type Service struct {
	tutors   TutorRepository
	teachers TeacherRepository
	skills   SkillRepository
}

// New создает новый экземпляр Service.
func New(tutors TutorRepository, teachers TeacherRepository, skills SkillRepository) *Service {
	return &Service{tutors: tutors, teachers: teachers, skills: skills}
}

// ListTutors возвращает сначала каталог, затем учителей.
func (s *Service) ListTutors(ctx context.Context) ([]models.Listing, error) {
	const op = "services.directory.ListTutors"

	tutors, err := s.tutors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	teachers, err := s.teachers.ListTeachers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ids := make([]int64, 0, len(teachers))
	for _, t := range teachers {
		ids = append(ids, t.ID)
	}
	skills, err := s.skills.ListByTeachers(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	listings := make([]models.Listing, 0, len(tutors)+len(teachers))
	for _, t := range tutors {
		listings = append(listings, catalogListing(t))
	}
	for _, t := range teachers {
		listings = append(listings, TeacherListing(models.TeacherCard{User: t, Skills: skills[t.ID]}))
	}
	return listings, nil
}

func catalogListing(t models.Tutor) models.Listing {
	return models.Listing{
		ID:      t.ID,
		Name:    t.Name,
		Subject: t.Subject,
		Level:   t.Level,
		Rating:  t.Rating,
		Price:   t.Price,
		City:    t.City,
		Image:   t.Image,
		Skills:  []string{},
	}
}

// TeacherListing карточка учителя с подстановкой значений для пустых полей.
// Уровень составляется из навыков.
func TeacherListing(card models.TeacherCard) models.Listing {
	u := card.User
	skills := card.Skills
	if skills == nil {
		skills = []string{}
	}

	level := strings.Join(skills, ", ")
	if level == "" {
		level = models.DefaultTeacherLevel
	}
	rating := models.DefaultTeacherRating
	if u.Rating != nil && *u.Rating != 0 {
		rating = *u.Rating
	}

	return models.Listing{
		ID:      "teacher-" + strconv.FormatInt(u.ID, 10),
		Name:    orDefault(u.Name, models.DefaultTeacherName),
		Subject: orDefault(u.Subject, models.DefaultTeacherSubject),
		Level:   level,
		Rating:  rating,
		Price:   orDefault(u.Price, models.DefaultTeacherPrice),
		City:    orDefault(u.City, models.DefaultTeacherCity),
		Image:   orDefault(u.Image, models.DefaultTeacherImage),
		Skills:  skills,
	}
}

func orDefault(v *string, def string) string {
	if v == nil || *v == "" {
		return def
	}
	return *v
}
