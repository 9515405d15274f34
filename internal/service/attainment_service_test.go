package service

import (
	"context"
	"testing"

	"obe_portal_backend/internal/model"
	"obe_portal_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMarkReader serves attainment inputs from memory. Marks are keyed
// student -> question; a missing key is "not attempted".
type fakeMarkReader struct {
	thresholds *model.CourseThresholds
	outcomes   map[uint]bool
	questions  []model.COQuestion
	marks      map[uint]map[uint]float64
	students   []uint
	eligible   map[uint]bool

	lastFilters model.RosterFilters
}

func (f *fakeMarkReader) GetCOQuestions(ctx context.Context, courseID, coID uint) ([]model.COQuestion, error) {
	return f.questions, nil
}

func (f *fakeMarkReader) GetStudentMarks(ctx context.Context, studentID uint, questionIDs []uint) (map[uint]float64, error) {
	out := make(map[uint]float64)
	for _, qID := range questionIDs {
		if m, ok := f.marks[studentID][qID]; ok {
			out[qID] = m
		}
	}
	return out, nil
}

func (f *fakeMarkReader) GetEligibleStudents(ctx context.Context, courseID uint, filters model.RosterFilters) ([]uint, error) {
	f.lastFilters = filters
	return f.students, nil
}

func (f *fakeMarkReader) GetCourseThresholds(ctx context.Context, courseID uint) (*model.CourseThresholds, error) {
	if f.thresholds == nil {
		return nil, util.ErrCourseNotFound
	}
	return f.thresholds, nil
}

func (f *fakeMarkReader) GetCourseOutcome(ctx context.Context, courseID, coID uint) (*model.CourseOutcome, error) {
	if !f.outcomes[coID] {
		return nil, util.ErrOutcomeNotFound
	}
	return &model.CourseOutcome{CourseID: courseID}, nil
}

func (f *fakeMarkReader) IsStudentEligible(ctx context.Context, courseID, studentID uint) (bool, error) {
	return f.eligible[studentID], nil
}

func defaultThresholds() *model.CourseThresholds {
	return &model.CourseThresholds{
		Level1Threshold:  40,
		Level2Threshold:  60,
		Level3Threshold:  75,
		TargetPercentage: 60,
		TargetLevel:      1,
	}
}

func newFake() *fakeMarkReader {
	return &fakeMarkReader{
		thresholds: defaultThresholds(),
		outcomes:   map[uint]bool{1: true},
		questions: []model.COQuestion{
			{QuestionID: 10, AssessmentID: 1, MaxMarks: 10},
			{QuestionID: 11, AssessmentID: 1, MaxMarks: 20},
		},
		marks:    map[uint]map[uint]float64{},
		eligible: map[uint]bool{},
	}
}

func TestResolveStudentWeightedPercentage(t *testing.T) {
	fake := newFake()
	fake.eligible[100] = true
	fake.marks[100] = map[uint]float64{10: 8, 11: 15}

	svc := NewAttainmentService(fake, 4)
	att, err := svc.ResolveStudent(context.Background(), 1, 1, 100)
	require.NoError(t, err)

	// 23 of 30, not the mean of 80% and 75%
	assert.InDelta(t, 76.6667, att.Percentage, 0.001)
	assert.Equal(t, 3, att.AttainmentLevel)
	assert.Equal(t, uint(1), att.OutcomeID)
	assert.Equal(t, uint(100), att.StudentID)
}

func TestResolveStudentIgnoresUnattemptedQuestions(t *testing.T) {
	fake := newFake()
	fake.eligible[100] = true
	fake.marks[100] = map[uint]float64{10: 5} // question 11 never attempted

	svc := NewAttainmentService(fake, 4)
	att, err := svc.ResolveStudent(context.Background(), 1, 1, 100)
	require.NoError(t, err)

	// 5 of 10, not 5 of 30
	assert.InDelta(t, 50.0, att.Percentage, 0.001)
	assert.Equal(t, 1, att.AttainmentLevel)
}

func TestResolveStudentBoundaryScoreEarnsLevel(t *testing.T) {
	fake := newFake()
	fake.eligible[100] = true
	fake.marks[100] = map[uint]float64{10: 6} // exactly 60%

	svc := NewAttainmentService(fake, 4)
	att, err := svc.ResolveStudent(context.Background(), 1, 1, 100)
	require.NoError(t, err)

	assert.InDelta(t, 60.0, att.Percentage, 0.001)
	assert.Equal(t, 2, att.AttainmentLevel)
}

func TestResolveStudentNoMarksIsNotZero(t *testing.T) {
	fake := newFake()
	fake.eligible[100] = true

	svc := NewAttainmentService(fake, 4)
	_, err := svc.ResolveStudent(context.Background(), 1, 1, 100)
	require.ErrorIs(t, err, util.ErrNoAttainmentData)
}

func TestResolveStudentNoMappedQuestions(t *testing.T) {
	fake := newFake()
	fake.eligible[100] = true
	fake.questions = nil

	svc := NewAttainmentService(fake, 4)
	_, err := svc.ResolveStudent(context.Background(), 1, 1, 100)
	require.ErrorIs(t, err, util.ErrNoAttainmentData)
}

func TestResolveStudentNotEligible(t *testing.T) {
	fake := newFake()
	fake.marks[100] = map[uint]float64{10: 8}

	svc := NewAttainmentService(fake, 4)
	_, err := svc.ResolveStudent(context.Background(), 1, 1, 100)
	require.ErrorIs(t, err, util.ErrStudentNotEligible)
}

func TestResolveStudentUnknownOutcome(t *testing.T) {
	fake := newFake()
	fake.eligible[100] = true

	svc := NewAttainmentService(fake, 4)
	_, err := svc.ResolveStudent(context.Background(), 1, 99, 100)
	require.ErrorIs(t, err, util.ErrOutcomeNotFound)
}

func TestInvalidThresholdsRejected(t *testing.T) {
	cases := []struct {
		name string
		th   model.CourseThresholds
	}{
		{"equal bands", model.CourseThresholds{Level1Threshold: 50, Level2Threshold: 50, Level3Threshold: 75}},
		{"descending", model.CourseThresholds{Level1Threshold: 75, Level2Threshold: 60, Level3Threshold: 40}},
		{"negative", model.CourseThresholds{Level1Threshold: -5, Level2Threshold: 60, Level3Threshold: 75}},
		{"above hundred", model.CourseThresholds{Level1Threshold: 40, Level2Threshold: 60, Level3Threshold: 110}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fake := newFake()
			th := tc.th
			fake.thresholds = &th
			fake.eligible[100] = true
			fake.marks[100] = map[uint]float64{10: 8}
			fake.students = []uint{100}

			svc := NewAttainmentService(fake, 4)

			_, err := svc.ResolveStudent(context.Background(), 1, 1, 100)
			require.ErrorIs(t, err, util.ErrInvalidThresholds)

			_, err = svc.ResolveClass(context.Background(), 1, 1, model.RosterFilters{})
			require.ErrorIs(t, err, util.ErrInvalidThresholds)
		})
	}
}

func TestResolveStudentIsIdempotent(t *testing.T) {
	fake := newFake()
	fake.eligible[100] = true
	fake.marks[100] = map[uint]float64{10: 8, 11: 15}

	svc := NewAttainmentService(fake, 4)
	first, err := svc.ResolveStudent(context.Background(), 1, 1, 100)
	require.NoError(t, err)
	second, err := svc.ResolveStudent(context.Background(), 1, 1, 100)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestResolveClassDistributionAndLevel(t *testing.T) {
	fake := newFake()
	fake.questions = []model.COQuestion{{QuestionID: 10, AssessmentID: 1, MaxMarks: 10}}

	// 3 students at level 3, 4 at level 2, 2 at level 1, 1 at level 0.
	scores := []float64{8, 8.5, 9, 6.5, 6.5, 6, 7, 5, 4.5, 2}
	for i, score := range scores {
		id := uint(100 + i)
		fake.students = append(fake.students, id)
		fake.marks[id] = map[uint]float64{10: score}
	}

	svc := NewAttainmentService(fake, 4)
	att, err := svc.ResolveClass(context.Background(), 1, 1, model.RosterFilters{})
	require.NoError(t, err)

	assert.Equal(t, 10, att.TotalStudents)
	assert.Equal(t, map[int]int{0: 1, 1: 2, 2: 4, 3: 3}, att.LevelDistribution)

	// 30% reach level 3, short of the 60% target; 70% reach level 2.
	assert.Equal(t, 2, att.AttainmentLevel)
	assert.Equal(t, uint(1), att.OutcomeID)
}

func TestResolveClassExcludesStudentsWithoutMarks(t *testing.T) {
	fake := newFake()
	fake.questions = []model.COQuestion{{QuestionID: 10, AssessmentID: 1, MaxMarks: 10}}
	fake.students = []uint{100, 101, 102}
	fake.marks[100] = map[uint]float64{10: 8}
	fake.marks[101] = map[uint]float64{10: 6}
	// student 102 attempted nothing

	svc := NewAttainmentService(fake, 4)
	att, err := svc.ResolveClass(context.Background(), 1, 1, model.RosterFilters{})
	require.NoError(t, err)

	assert.Equal(t, 2, att.TotalStudents)
	sum := 0
	for _, n := range att.LevelDistribution {
		sum += n
	}
	assert.Equal(t, 2, sum)
}

func TestResolveClassEmptyRoster(t *testing.T) {
	fake := newFake()

	svc := NewAttainmentService(fake, 4)
	_, err := svc.ResolveClass(context.Background(), 1, 1, model.RosterFilters{})
	require.ErrorIs(t, err, util.ErrNoAttainmentData)
}

func TestResolveClassNoMarksAtAll(t *testing.T) {
	fake := newFake()
	fake.students = []uint{100, 101}

	svc := NewAttainmentService(fake, 4)
	_, err := svc.ResolveClass(context.Background(), 1, 1, model.RosterFilters{})
	require.ErrorIs(t, err, util.ErrNoAttainmentData)
}

func TestResolveClassNoLevelCleared(t *testing.T) {
	fake := newFake()
	fake.questions = []model.COQuestion{{QuestionID: 10, AssessmentID: 1, MaxMarks: 10}}
	fake.students = []uint{100, 101, 102}
	for _, id := range fake.students {
		fake.marks[id] = map[uint]float64{10: 2} // 20%, below every band
	}

	svc := NewAttainmentService(fake, 4)
	att, err := svc.ResolveClass(context.Background(), 1, 1, model.RosterFilters{})
	require.NoError(t, err)

	assert.Equal(t, 0, att.AttainmentLevel)
	assert.Equal(t, 3, att.LevelDistribution[0])

	require.NoError(t, svc.ApplyClassTarget(context.Background(), 1, att))
	assert.False(t, att.TargetMet)
}

func TestResolveClassForwardsRosterFilters(t *testing.T) {
	fake := newFake()
	fake.questions = []model.COQuestion{{QuestionID: 10, AssessmentID: 1, MaxMarks: 10}}
	fake.students = []uint{100}
	fake.marks[100] = map[uint]float64{10: 8}

	svc := NewAttainmentService(fake, 4)
	filters := model.RosterFilters{AcademicYear: "2025-26", Semester: 5}
	_, err := svc.ResolveClass(context.Background(), 1, 1, filters)
	require.NoError(t, err)

	assert.Equal(t, filters, fake.lastFilters)
}

func TestResolveClassMatchesSequentialResult(t *testing.T) {
	fake := newFake()
	fake.questions = []model.COQuestion{{QuestionID: 10, AssessmentID: 1, MaxMarks: 10}}
	for i := 0; i < 50; i++ {
		id := uint(100 + i)
		fake.students = append(fake.students, id)
		fake.marks[id] = map[uint]float64{10: float64(i % 11)}
	}

	wide := NewAttainmentService(fake, 16)
	narrow := NewAttainmentService(fake, 1)

	got, err := wide.ResolveClass(context.Background(), 1, 1, model.RosterFilters{})
	require.NoError(t, err)
	want, err := narrow.ResolveClass(context.Background(), 1, 1, model.RosterFilters{})
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestApplyStudentTarget(t *testing.T) {
	fake := newFake()
	svc := NewAttainmentService(fake, 4)

	att := &model.StudentCOAttainment{AttainmentLevel: 1}
	require.NoError(t, svc.ApplyStudentTarget(context.Background(), 1, att))
	assert.True(t, att.TargetMet)

	fake.thresholds.TargetLevel = 2
	require.NoError(t, svc.ApplyStudentTarget(context.Background(), 1, att))
	assert.False(t, att.TargetMet)

	att.AttainmentLevel = 3
	require.NoError(t, svc.ApplyStudentTarget(context.Background(), 1, att))
	assert.True(t, att.TargetMet)
}

func TestRequiredLevelDefaultsToOne(t *testing.T) {
	th := defaultThresholds()
	th.TargetLevel = 0
	assert.Equal(t, 1, th.RequiredLevel())

	th.TargetLevel = 7
	assert.Equal(t, 1, th.RequiredLevel())

	th.TargetLevel = 3
	assert.Equal(t, 3, th.RequiredLevel())
}
