package model

const (
	EnrollmentActive   = "active"
	EnrollmentInactive = "inactive"
)

// swagger:model Student
type Student struct {
	BaseModel
	RollNo string `gorm:"size:50;uniqueIndex;not null" json:"rollNo"`
	Name   string `gorm:"size:255;not null" json:"name"`
	Email  string `gorm:"size:255" json:"email"`
}

func (Student) TableName() string {
	return "students"
}

// swagger:model Enrollment
type Enrollment struct {
	BaseModel
	StudentID    uint   `gorm:"uniqueIndex:idx_student_course_term;not null" json:"studentId"`
	CourseID     uint   `gorm:"uniqueIndex:idx_student_course_term;not null" json:"courseId"`
	Section      string `gorm:"size:20" json:"section"`
	AcademicYear string `gorm:"size:20;uniqueIndex:idx_student_course_term" json:"academicYear"`
	Semester     int    `gorm:"uniqueIndex:idx_student_course_term;default:0" json:"semester"`
	Status       string `gorm:"size:20;default:'active'" json:"status"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
