package model

// StudentMark records the marks a student obtained on one question. Absence
// of a row means the student did not attempt the question, which is distinct
// from a recorded zero; the attainment engine relies on that distinction.
//
// swagger:model StudentMark
type StudentMark struct {
	BaseModel
	StudentID     uint    `gorm:"uniqueIndex:idx_student_question;not null" json:"studentId"`
	QuestionID    uint    `gorm:"uniqueIndex:idx_student_question;not null" json:"questionId"`
	ObtainedMarks float64 `gorm:"not null" json:"obtainedMarks"`
}

func (StudentMark) TableName() string {
	return "student_marks"
}

const (
	ImportStatusCompleted = "completed"
	ImportStatusPartial   = "partial"
	ImportStatusFailed    = "failed"
)

// MarkImportJob is the audit record of one CSV bulk import of marks.
//
// swagger:model MarkImportJob
type MarkImportJob struct {
	UUIDBase
	CourseID  uint   `gorm:"index;not null" json:"courseId"`
	FileName  string `gorm:"size:255" json:"fileName"`
	FileURL   string `gorm:"size:512" json:"fileUrl"`
	TotalRows int    `gorm:"default:0" json:"totalRows"`
	Imported  int    `gorm:"default:0" json:"imported"`
	Failed    int    `gorm:"default:0" json:"failed"`
	Status    string `gorm:"size:20" json:"status"`
}

func (MarkImportJob) TableName() string {
	return "mark_import_jobs"
}
