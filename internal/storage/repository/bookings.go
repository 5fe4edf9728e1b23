package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/eduglow/internal/models"
	"github.com/magabrotheeeer/eduglow/internal/storage"
)

// BookingRepository хранит бронирования.
type BookingRepository struct {
	db storage.Pool
}

// NewBookingRepository создаёт репозиторий бронирований.
func NewBookingRepository(db storage.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create сохраняет бронирование и возвращает его id.
func (r *BookingRepository) Create(ctx context.Context, b models.Booking) (int64, error) {
	const op = "repository.BookingRepository.Create"

	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO bookings (student_id, teacher_id, subject, price, phone, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		b.StudentID, b.TeacherID, b.Subject, b.Price, b.Phone, b.Status).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// ListForTeacher возвращает бронирования учителя, новые первыми,
// вместе с именем и почтой студента.
func (r *BookingRepository) ListForTeacher(ctx context.Context, teacherID int64) ([]models.TeacherBooking, error) {
	const op = "repository.BookingRepository.ListForTeacher"

	rows, err := r.db.Query(ctx,
		`SELECT b.id, COALESCE(b.subject, ''), COALESCE(b.price, ''), b.status, b.created_at,
		        CASE WHEN u.id IS NULL THEN 'Student' ELSE u.name END,
		        COALESCE(u.email, ''), COALESCE(b.phone, '')
		 FROM bookings b
		 LEFT JOIN users u ON u.id = b.student_id
		 WHERE b.teacher_id = $1
		 ORDER BY b.created_at DESC, b.id DESC`, teacherID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	result := []models.TeacherBooking{}
	for rows.Next() {
		var b models.TeacherBooking
		if err = rows.Scan(&b.ID, &b.Subject, &b.Price, &b.Status, &b.CreatedAt,
			&b.StudentName, &b.StudentEmail, &b.StudentPhone); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
