package model

// Derived attainment result types. These are computed fresh per request and
// never persisted; the caller owns them for the duration of one response.

// RosterFilters optionally narrows the class roster for aggregation. Zero
// values mean "no filter".
type RosterFilters struct {
	AcademicYear string `form:"academicYear" json:"academicYear,omitempty"`
	Semester     int    `form:"semester" json:"semester,omitempty"`
}

// COQuestion is the projection of a question mapped to an outcome within a
// course, as served by the mark repository.
type COQuestion struct {
	QuestionID   uint    `json:"questionId"`
	AssessmentID uint    `json:"assessmentId"`
	MaxMarks     float64 `json:"maxMarks"`
}

// CourseThresholds carries a course's attainment configuration.
type CourseThresholds struct {
	Level1Threshold  float64 `json:"level1Threshold"`
	Level2Threshold  float64 `json:"level2Threshold"`
	Level3Threshold  float64 `json:"level3Threshold"`
	TargetPercentage float64 `json:"targetPercentage"`
	TargetLevel      int     `json:"targetLevel"`
}

// LevelFor classifies a percentage into an attainment level 0-3. Band edges
// are inclusive at the lower bound: a score equal to a threshold earns that
// level.
func (t *CourseThresholds) LevelFor(percentage float64) int {
	switch {
	case percentage >= t.Level3Threshold:
		return 3
	case percentage >= t.Level2Threshold:
		return 2
	case percentage >= t.Level1Threshold:
		return 1
	default:
		return 0
	}
}

// RequiredLevel is the minimum acceptable level for the target check,
// defaulting to 1 when the course does not configure one.
func (t *CourseThresholds) RequiredLevel() int {
	if t.TargetLevel >= 1 && t.TargetLevel <= 3 {
		return t.TargetLevel
	}
	return 1
}

// StudentCOAttainment is one student's computed attainment of one outcome.
type StudentCOAttainment struct {
	StudentID       uint    `json:"studentId"`
	OutcomeID       uint    `json:"coId"`
	Percentage      float64 `json:"percentage"`
	AttainmentLevel int     `json:"attainmentLevel"`
	TargetMet       bool    `json:"targetMet"`
}

// ClassCOAttainment aggregates attainment over a course roster. Students who
// attempted no mapped question are excluded from TotalStudents entirely.
type ClassCOAttainment struct {
	OutcomeID         uint        `json:"coId"`
	TotalStudents     int         `json:"totalStudents"`
	LevelDistribution map[int]int `json:"levelDistribution"`
	AttainmentLevel   int         `json:"attainmentLevel"`
	TargetMet         bool        `json:"targetMet"`
}
