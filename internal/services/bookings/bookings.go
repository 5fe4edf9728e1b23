// Package bookings оформляет бронирования учителей студентами
// и показывает их учителю.
package bookings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/magabrotheeeer/eduglow/internal/lib/apperr"
	"github.com/magabrotheeeer/eduglow/internal/lib/phone"
	"github.com/magabrotheeeer/eduglow/internal/models"
	"github.com/magabrotheeeer/eduglow/internal/storage"
)

const defaultSubject = "General"

// TeacherRepository поиск учителя по id.
type TeacherRepository interface {
	GetTeacher(ctx context.Context, id int64) (*models.User, error)
}

// BookingRepository хранилище бронирований.
type BookingRepository interface {
	Create(ctx context.Context, b models.Booking) (int64, error)
	ListForTeacher(ctx context.Context, teacherID int64) ([]models.TeacherBooking, error)
}

// Service бронирования.
type Service struct {
	teachers TeacherRepository
	bookings BookingRepository
	log      *slog.Logger
}

// New создает новый экземпляр Service.
func New(log *slog.Logger, teachers TeacherRepository, bookings BookingRepository) *Service {
	return &Service{teachers: teachers, bookings: bookings, log: log}
}

// CreateBooking создаёт бронирование со статусом requested от имени студента.
// Тема берётся из запроса, затем из профиля учителя, цена только из профиля.
func (s *Service) CreateBooking(ctx context.Context, identity models.Identity, in models.BookingInput) (int64, error) {
	const op = "services.bookings.CreateBooking"

	ref := strings.TrimSpace(in.TeacherID)
	if ref == "" || ref == "0" {
		return 0, apperr.Validation("teacher_id required")
	}
	rawPhone := strings.TrimSpace(in.Phone)
	if rawPhone == "" {
		return 0, apperr.Validation("phone required")
	}
	if _, err := phone.Normalize(rawPhone); err != nil {
		return 0, apperr.Validation("phone must be numeric")
	}

	teacherID, ok := ParseTeacherRef(ref)
	if !ok {
		return 0, apperr.NotFound("teacher not found")
	}
	teacher, err := s.teachers.GetTeacher(ctx, teacherID)
	if errors.Is(err, storage.ErrNotFound) {
		return 0, apperr.NotFound("teacher not found")
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	subject := in.Subject
	if subject == "" && teacher.Subject != nil {
		subject = *teacher.Subject
	}
	if subject == "" {
		subject = defaultSubject
	}
	price := models.DefaultTeacherPrice
	if teacher.Price != nil && *teacher.Price != "" {
		price = *teacher.Price
	}

	id, err := s.bookings.Create(ctx, models.Booking{
		StudentID: identity.UserID,
		TeacherID: teacher.ID,
		Subject:   subject,
		Price:     price,
		Phone:     rawPhone,
		Status:    models.BookingStatusRequested,
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("booking created", slog.String("op", op),
		slog.Int64("booking_id", id), slog.Int64("teacher_id", teacher.ID))
	return id, nil
}

// ListTeacherBookings бронирования учителя, новые первыми.
func (s *Service) ListTeacherBookings(ctx context.Context, identity models.Identity) ([]models.TeacherBooking, error) {
	const op = "services.bookings.ListTeacherBookings"
	list, err := s.bookings.ListForTeacher(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return list, nil
}

// ParseTeacherRef разбирает id учителя: "5" или "teacher-5".
func ParseTeacherRef(ref string) (int64, bool) {
	ref = strings.TrimPrefix(strings.TrimSpace(ref), "teacher-")
	id, err := strconv.ParseInt(ref, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
