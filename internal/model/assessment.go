package model

// swagger:model Assessment
type Assessment struct {
	BaseModel
	CourseID  uint    `gorm:"index;not null" json:"courseId"`
	Name      string  `gorm:"size:255;not null" json:"name"`
	Kind      string  `gorm:"size:50;default:'internal'" json:"kind"` // internal, external, assignment
	MaxMarks  float64 `gorm:"not null" json:"maxMarks"`
	Weightage float64 `gorm:"default:0" json:"weightage"` // relative contribution toward the course grade
}

func (Assessment) TableName() string {
	return "assessments"
}

// swagger:model Question
type Question struct {
	BaseModel
	AssessmentID uint    `gorm:"index;not null" json:"assessmentId"`
	Number       int     `gorm:"default:0" json:"number"`
	Text         string  `gorm:"type:text" json:"text"`
	MaxMarks     float64 `gorm:"not null" json:"maxMarks"`
}

func (Question) TableName() string {
	return "questions"
}

// QuestionCOMapping links a question to an outcome it evidences. A question
// may map to several outcomes and an outcome is evidenced by questions
// across several assessments.
type QuestionCOMapping struct {
	BaseModel
	QuestionID      uint `gorm:"uniqueIndex:idx_question_outcome;not null" json:"questionId"`
	CourseOutcomeID uint `gorm:"uniqueIndex:idx_question_outcome;not null" json:"courseOutcomeId"`
}

func (QuestionCOMapping) TableName() string {
	return "question_co_mappings"
}
