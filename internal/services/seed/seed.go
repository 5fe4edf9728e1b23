// Package seed наполняет пустую базу демонстрационными данными.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/eduglow/internal/lib/password"
	"github.com/magabrotheeeer/eduglow/internal/models"
)

// Учётные записи для демонстрации.
const (
	DemoTeacherEmail = "teacher@example.com"
	DemoStudentEmail = "student@example.com"
	DemoPassword     = "password123"
)

// TutorRepository каталог репетиторов.
type TutorRepository interface {
	Count(ctx context.Context) (int, error)
	CreateMany(ctx context.Context, tutors []models.Tutor) error
}

// UserRepository учётные записи.
type UserRepository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user models.User) (*models.User, error)
}

// SkillRepository навыки учителя.
type SkillRepository interface {
	Add(ctx context.Context, teacherID int64, name string) (bool, error)
}

// Service заполняет каталог и демо-аккаунты. Повторный запуск ничего не меняет.
type Service struct {
	tutors TutorRepository
	users  UserRepository
	skills SkillRepository
	log    *slog.Logger
}

// New создает новый экземпляр Service.
func New(log *slog.Logger, tutors TutorRepository, users UserRepository, skills SkillRepository) *Service {
	return &Service{tutors: tutors, users: users, skills: skills, log: log}
}

// Catalog стартовый каталог репетиторов.
func Catalog() []models.Tutor {
	return []models.Tutor{
		{Name: "Priya Sharma", Subject: "Mathematics", Level: "Class 9-12", Rating: 4.9, Price: "INR 600/hr", City: "Delhi", Image: "http://static.photos/people/200x200/1"},
		{Name: "Rohan Verma", Subject: "Physics", Level: "Class 11-12", Rating: 4.8, Price: "INR 700/hr", City: "Delhi", Image: "http://static.photos/people/200x200/2"},
		{Name: "Neha Gupta", Subject: "English", Level: "All", Rating: 4.7, Price: "INR 450/hr", City: "Bengaluru", Image: "http://static.photos/people/200x200/3"},
		{Name: "Amit Joshi", Subject: "Chemistry", Level: "Class 9-12", Rating: 4.6, Price: "INR 550/hr", City: "Mumbai", Image: "http://static.photos/people/200x200/4"},
		{Name: "Sakshi Rao", Subject: "Computer Science", Level: "College", Rating: 4.8, Price: "INR 800/hr", City: "Kolkata", Image: "http://static.photos/people/200x200/5"},
		{Name: "Vikram Patel", Subject: "Maths", Level: "Class 6-10", Rating: 4.5, Price: "INR 300/hr", City: "Delhi", Image: "http://static.photos/people/200x200/6"},
	}
}

// Run добавляет каталог, если он пуст, и демо-аккаунты, если их нет.
func (s *Service) Run(ctx context.Context) error {
	const op = "services.seed.Run"
	log := s.log.With(slog.String("op", op))

	n, err := s.tutors.Count(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		if err := s.tutors.CreateMany(ctx, Catalog()); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		log.Info("tutor catalog seeded")
	}

	teacher, err := s.ensureUser(ctx, models.User{
		Email:   DemoTeacherEmail,
		Role:    models.RoleTeacher,
		Name:    ptr("John Doe"),
		Subject: ptr("Mathematics"),
		Rating:  ptr(4.8),
		Price:   ptr("INR 600/hr"),
		City:    ptr("Delhi"),
		Image:   ptr(models.DefaultTeacherImage),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if teacher != nil {
		for _, skill := range []string{"Algebra", "Calculus", "Trigonometry"} {
			if _, err := s.skills.Add(ctx, teacher.ID, skill); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
		}
		log.Info("demo teacher created", slog.Int64("user_id", teacher.ID))
	}

	student, err := s.ensureUser(ctx, models.User{
		Email: DemoStudentEmail,
		Role:  models.RoleStudent,
		Name:  ptr("Student User"),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if student != nil {
		log.Info("demo student created", slog.Int64("user_id", student.ID))
	}
	return nil
}

// ensureUser создаёт пользователя, если почта свободна. Возвращает nil, если он уже был.
func (s *Service) ensureUser(ctx context.Context, user models.User) (*models.User, error) {
	exists, err := s.users.ExistsByEmail(ctx, user.Email)
	if err != nil || exists {
		return nil, err
	}
	hash, err := password.GetHash(DemoPassword)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = hash
	return s.users.Create(ctx, user)
}

func ptr[T any](v T) *T {
	return &v
}
