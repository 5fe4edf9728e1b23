package models

import "time"

// TrialRequest заявка на пробный урок. UserID пуст для анонимных заявок.
type TrialRequest struct {
	ID        int64
	Name      string
	Phone     string
	Subject   string
	UserID    *int64
	CreatedAt time.Time
}

// TeacherTrial заявка в выдаче для учителя. StudentName берётся
// из учётной записи, если она есть, иначе из формы.
type TeacherTrial struct {
	ID           int64
	Subject      string
	CreatedAt    time.Time
	StudentName  string
	StudentPhone string
}
