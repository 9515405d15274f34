package model

// swagger:model Course
type Course struct {
	BaseModel
	Code string `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Name string `gorm:"size:255;not null" json:"name"`

	// Attainment band thresholds, percentages in [0,100], strictly increasing.
	Level1Threshold float64 `gorm:"not null" json:"level1Threshold"`
	Level2Threshold float64 `gorm:"not null" json:"level2Threshold"`
	Level3Threshold float64 `gorm:"not null" json:"level3Threshold"`

	// Minimum share of evaluated students that must clear a level for the
	// class to be assigned that level.
	TargetPercentage float64 `gorm:"not null;default:60" json:"targetPercentage"`

	// Minimum acceptable attainment level for the target check.
	TargetLevel int `gorm:"not null;default:1" json:"targetLevel"`

	Outcomes []CourseOutcome `json:"outcomes,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}

// swagger:model CourseOutcome
type CourseOutcome struct {
	BaseModel
	CourseID    uint   `gorm:"index;not null" json:"courseId"`
	Code        string `gorm:"size:20;not null" json:"code"` // display code, e.g. "CO1"
	Description string `gorm:"type:text" json:"description"`
}

func (CourseOutcome) TableName() string {
	return "course_outcomes"
}
