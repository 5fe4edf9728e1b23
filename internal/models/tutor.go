package models

// Tutor запись статического каталога, не связанная с учётной записью.
type Tutor struct {
	ID      int64
	Name    string
	Subject string
	Level   string
	Rating  float64
	Price   string
	City    string
	Image   string
}

// Listing элемент общей выдачи /api/tutors.
//
// ID у записей каталога числовой, у учителей строка вида "teacher-<id>".
type Listing struct {
	ID      any      `json:"id"`
	Name    string   `json:"name"`
	Subject string   `json:"subject"`
	Level   string   `json:"level"`
	Rating  float64  `json:"rating"`
	Price   string   `json:"price"`
	City    string   `json:"city"`
	Image   string   `json:"image"`
	Skills  []string `json:"skills"`
}

// TeacherCard учитель вместе с навыками, сырьё для Listing.
type TeacherCard struct {
	User   User
	Skills []string
}

// Значения карточки учителя, если поле профиля не заполнено.
const (
	DefaultTeacherName    = "Teacher"
	DefaultTeacherSubject = "Subject"
	DefaultTeacherPrice   = "INR 500/hr"
	DefaultTeacherCity    = "City"
	DefaultTeacherRating  = 4.5
	DefaultTeacherImage   = "http://static.photos/people/200x200/10"
	DefaultTeacherLevel   = "All levels"
)
