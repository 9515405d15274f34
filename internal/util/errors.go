package util

import "errors"

var (
	ErrCourseNotFound     = errors.New("course not found")
	ErrOutcomeNotFound    = errors.New("course outcome not found")
	ErrStudentNotFound    = errors.New("student not found")
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrMarkNotFound       = errors.New("no mark recorded for student and question")

	// The student is neither enrolled in the course nor has any recorded mark in it.
	ErrStudentNotEligible = errors.New("student not eligible for course")

	// No evaluable data: zero mapped questions, zero attempted questions or
	// zero evaluable students. Distinct from a computed zero result.
	ErrNoAttainmentData = errors.New("no evaluable attainment data")

	// Course threshold configuration is unusable; computations must abort
	// rather than assume an ordering.
	ErrInvalidThresholds = errors.New("course thresholds must be strictly increasing within [0,100]")

	ErrMarkOutOfRange     = errors.New("obtained marks outside question range")
	ErrInvalidStatus      = errors.New("invalid enrollment status")
	ErrDuplicateCourse    = errors.New("course code already exists")
	ErrDuplicateQuestion  = errors.New("question already mapped to outcome")
	ErrOutcomeHasMappings = errors.New("outcome still has question mappings")
)

// IsNotFound reports whether err belongs to the not-found family that
// controllers translate to a 404.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCourseNotFound) ||
		errors.Is(err, ErrOutcomeNotFound) ||
		errors.Is(err, ErrStudentNotFound) ||
		errors.Is(err, ErrAssessmentNotFound) ||
		errors.Is(err, ErrQuestionNotFound) ||
		errors.Is(err, ErrEnrollmentNotFound) ||
		errors.Is(err, ErrMarkNotFound) ||
		errors.Is(err, ErrStudentNotEligible) ||
		errors.Is(err, ErrNoAttainmentData)
}
