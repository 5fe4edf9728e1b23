package models

import "time"

// BookingStatusRequested единственный статус, который создаёт сервис.
const BookingStatusRequested = "requested"

// Booking бронирование учителя студентом. Price копируется из профиля
// учителя в момент создания.
type Booking struct {
	ID        int64
	StudentID int64
	TeacherID int64
	Subject   string
	Price     string
	Phone     string
	Status    string
	CreatedAt time.Time
}

// TeacherBooking бронирование в выдаче для учителя.
//
// Если студента нет в базе, имя "Student", почта пустая.
// Если студент есть, но без имени, StudentName == nil.
type TeacherBooking struct {
	ID           int64
	Subject      string
	Price        string
	Status       string
	CreatedAt    time.Time
	StudentName  *string
	StudentEmail string
	StudentPhone string
}
