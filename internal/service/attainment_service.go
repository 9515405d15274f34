package service

import (
	"context"
	"errors"
	"time"

	"obe_portal_backend/internal/model"
	"obe_portal_backend/internal/util"
	"obe_portal_backend/pkg/monitoring"

	"golang.org/x/sync/errgroup"
)

// MarkReader is the read-only fact source the attainment engine computes
// over. The gorm implementation lives in internal/repository; tests inject
// an in-memory fixture.
type MarkReader interface {
	GetCOQuestions(ctx context.Context, courseID, coID uint) ([]model.COQuestion, error)
	GetStudentMarks(ctx context.Context, studentID uint, questionIDs []uint) (map[uint]float64, error)
	GetEligibleStudents(ctx context.Context, courseID uint, filters model.RosterFilters) ([]uint, error)
	GetCourseThresholds(ctx context.Context, courseID uint) (*model.CourseThresholds, error)
	GetCourseOutcome(ctx context.Context, courseID, coID uint) (*model.CourseOutcome, error)
	IsStudentEligible(ctx context.Context, courseID, studentID uint) (bool, error)
}

// AttainmentService derives CO attainment from raw marks. It holds no
// mutable state and never writes; results are computed fresh per call.
type AttainmentService struct {
	Marks   MarkReader
	Workers int
}

func NewAttainmentService(marks MarkReader, workers int) *AttainmentService {
	if workers <= 0 {
		workers = 8
	}
	return &AttainmentService{Marks: marks, Workers: workers}
}

func validateThresholds(t *model.CourseThresholds) error {
	if t.Level1Threshold < 0 || t.Level3Threshold > 100 {
		return util.ErrInvalidThresholds
	}
	if t.Level1Threshold >= t.Level2Threshold || t.Level2Threshold >= t.Level3Threshold {
		return util.ErrInvalidThresholds
	}
	return nil
}

func observeComputation(scope string, start time.Time, err error) {
	monitoring.AttainmentDuration.WithLabelValues(scope).Observe(time.Since(start).Seconds())

	result := "ok"
	if err != nil {
		result = "error"
		if util.IsNotFound(err) {
			result = "not_found"
		}
	}
	monitoring.AttainmentComputations.WithLabelValues(scope, result).Inc()
}

// scoreStudent computes the marks-weighted percentage over the CO-mapped
// questions the student attempted. A question with no mark is excluded from
// numerator and denominator both: not-attempted never counts as zero. When
// nothing was attempted no attainment exists, rather than a degenerate 0%.
func scoreStudent(studentID uint, questions []model.COQuestion, marks map[uint]float64, th *model.CourseThresholds) (*model.StudentCOAttainment, error) {
	var obtained, maximum float64
	for _, q := range questions {
		m, ok := marks[q.QuestionID]
		if !ok {
			continue
		}
		obtained += m
		maximum += q.MaxMarks
	}

	if maximum == 0 {
		return nil, util.ErrNoAttainmentData
	}

	percentage := obtained / maximum * 100
	return &model.StudentCOAttainment{
		StudentID:       studentID,
		Percentage:      percentage,
		AttainmentLevel: th.LevelFor(percentage),
	}, nil
}

// ResolveStudent computes one student's attainment for one course outcome.
func (s *AttainmentService) ResolveStudent(ctx context.Context, courseID, coID, studentID uint) (*model.StudentCOAttainment, error) {
	start := time.Now()
	att, err := s.resolveStudent(ctx, courseID, coID, studentID)
	observeComputation("student", start, err)
	return att, err
}

func (s *AttainmentService) resolveStudent(ctx context.Context, courseID, coID, studentID uint) (*model.StudentCOAttainment, error) {
	th, err := s.Marks.GetCourseThresholds(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if err := validateThresholds(th); err != nil {
		return nil, err
	}

	if _, err := s.Marks.GetCourseOutcome(ctx, courseID, coID); err != nil {
		return nil, err
	}

	eligible, err := s.Marks.IsStudentEligible(ctx, courseID, studentID)
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, util.ErrStudentNotEligible
	}

	questions, err := s.Marks.GetCOQuestions(ctx, courseID, coID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, util.ErrNoAttainmentData
	}

	marks, err := s.Marks.GetStudentMarks(ctx, studentID, questionIDs(questions))
	if err != nil {
		return nil, err
	}

	att, err := scoreStudent(studentID, questions, marks, th)
	if err != nil {
		return nil, err
	}
	att.OutcomeID = coID
	return att, nil
}

// ResolveClass aggregates attainment over every evaluable student on the
// course roster. Per-student resolutions read disjoint data, so they fan out
// over a bounded worker pool; the outcome is identical to sequential
// execution.
func (s *AttainmentService) ResolveClass(ctx context.Context, courseID, coID uint, filters model.RosterFilters) (*model.ClassCOAttainment, error) {
	start := time.Now()
	att, err := s.resolveClass(ctx, courseID, coID, filters)
	observeComputation("class", start, err)
	return att, err
}

func (s *AttainmentService) resolveClass(ctx context.Context, courseID, coID uint, filters model.RosterFilters) (*model.ClassCOAttainment, error) {
	th, err := s.Marks.GetCourseThresholds(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if err := validateThresholds(th); err != nil {
		return nil, err
	}

	if _, err := s.Marks.GetCourseOutcome(ctx, courseID, coID); err != nil {
		return nil, err
	}

	students, err := s.Marks.GetEligibleStudents(ctx, courseID, filters)
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return nil, util.ErrNoAttainmentData
	}

	questions, err := s.Marks.GetCOQuestions(ctx, courseID, coID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, util.ErrNoAttainmentData
	}
	qIDs := questionIDs(questions)

	// Slots stay nil for students who attempted nothing; they are excluded
	// from the class denominator instead of being scored 0.
	results := make([]*model.StudentCOAttainment, len(students))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.Workers)
	for i, studentID := range students {
		i, studentID := i, studentID
		g.Go(func() error {
			marks, err := s.Marks.GetStudentMarks(gctx, studentID, qIDs)
			if err != nil {
				return err
			}
			att, err := scoreStudent(studentID, questions, marks, th)
			if err != nil {
				if errors.Is(err, util.ErrNoAttainmentData) {
					return nil
				}
				return err
			}
			results[i] = att
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	distribution := map[int]int{0: 0, 1: 0, 2: 0, 3: 0}
	evaluated := 0
	for _, r := range results {
		if r == nil {
			continue
		}
		distribution[r.AttainmentLevel]++
		evaluated++
	}
	if evaluated == 0 {
		return nil, util.ErrNoAttainmentData
	}

	return &model.ClassCOAttainment{
		OutcomeID:         coID,
		TotalStudents:     evaluated,
		LevelDistribution: distribution,
		AttainmentLevel:   classLevel(distribution, evaluated, th.TargetPercentage),
	}, nil
}

// classLevel assigns the highest level 1-3 cleared by at least
// targetPercentage of the evaluated students, counting everyone at or above
// that level; 0 when no level qualifies.
func classLevel(distribution map[int]int, evaluated int, targetPercentage float64) int {
	atOrAbove := 0
	for level := 3; level >= 1; level-- {
		atOrAbove += distribution[level]
		share := float64(atOrAbove) / float64(evaluated) * 100
		if share >= targetPercentage {
			return level
		}
	}
	return 0
}

// ApplyStudentTarget annotates whether the student's level reaches the
// course's minimum acceptable level. The already computed level is reused;
// nothing is recomputed.
func (s *AttainmentService) ApplyStudentTarget(ctx context.Context, courseID uint, att *model.StudentCOAttainment) error {
	th, err := s.Marks.GetCourseThresholds(ctx, courseID)
	if err != nil {
		return err
	}
	att.TargetMet = att.AttainmentLevel >= th.RequiredLevel()
	return nil
}

// ApplyClassTarget annotates the class result against the course's minimum
// acceptable level, reusing the class-assigned level.
func (s *AttainmentService) ApplyClassTarget(ctx context.Context, courseID uint, att *model.ClassCOAttainment) error {
	th, err := s.Marks.GetCourseThresholds(ctx, courseID)
	if err != nil {
		return err
	}
	att.TargetMet = att.AttainmentLevel >= th.RequiredLevel()
	return nil
}

func questionIDs(questions []model.COQuestion) []uint {
	ids := make([]uint, len(questions))
	for i, q := range questions {
		ids[i] = q.QuestionID
	}
	return ids
}
