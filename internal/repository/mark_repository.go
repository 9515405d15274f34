package repository

import (
	"context"
	"errors"

	"obe_portal_backend/internal/model"
	"obe_portal_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MarkRepository answers the read-only query contract the attainment engine
// depends on, plus the write paths used by mark entry and bulk import.
type MarkRepository struct {
	DB *gorm.DB
}

func NewMarkRepository(db *gorm.DB) *MarkRepository {
	return &MarkRepository{DB: db}
}

// GetCOQuestions returns every question mapped to the outcome, restricted to
// assessments belonging to the course.
func (r *MarkRepository) GetCOQuestions(ctx context.Context, courseID, coID uint) ([]model.COQuestion, error) {
	var rows []model.COQuestion
	err := r.DB.WithContext(ctx).
		Table("questions").
		Select("questions.id AS question_id, questions.assessment_id AS assessment_id, questions.max_marks AS max_marks").
		Joins("JOIN question_co_mappings ON question_co_mappings.question_id = questions.id AND question_co_mappings.deleted_at IS NULL").
		Joins("JOIN assessments ON assessments.id = questions.assessment_id AND assessments.deleted_at IS NULL").
		Where("question_co_mappings.course_outcome_id = ?", coID).
		Where("assessments.course_id = ?", courseID).
		Where("questions.deleted_at IS NULL").
		Scan(&rows).Error
	return rows, err
}

// GetStudentMarks returns the student's marks keyed by question id. A missing
// key means the question was not attempted; no zero is ever substituted.
func (r *MarkRepository) GetStudentMarks(ctx context.Context, studentID uint, questionIDs []uint) (map[uint]float64, error) {
	marks := make(map[uint]float64, len(questionIDs))
	if len(questionIDs) == 0 {
		return marks, nil
	}

	var records []model.StudentMark
	err := r.DB.WithContext(ctx).
		Where("student_id = ? AND question_id IN ?", studentID, questionIDs).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	for _, m := range records {
		marks[m.QuestionID] = m.ObtainedMarks
	}
	return marks, nil
}

// GetEligibleStudents returns the ids of students with an active enrollment
// in the course, optionally narrowed by academic year and semester. An empty
// roster is not an error.
func (r *MarkRepository) GetEligibleStudents(ctx context.Context, courseID uint, filters model.RosterFilters) ([]uint, error) {
	query := r.DB.WithContext(ctx).
		Model(&model.Enrollment{}).
		Where("course_id = ? AND status = ?", courseID, model.EnrollmentActive)

	if filters.AcademicYear != "" {
		query = query.Where("academic_year = ?", filters.AcademicYear)
	}
	if filters.Semester > 0 {
		query = query.Where("semester = ?", filters.Semester)
	}

	var ids []uint
	err := query.Order("student_id asc").Pluck("student_id", &ids).Error
	return ids, err
}

func (r *MarkRepository) GetCourseThresholds(ctx context.Context, courseID uint) (*model.CourseThresholds, error) {
	var course model.Course
	err := r.DB.WithContext(ctx).First(&course, courseID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}

	return &model.CourseThresholds{
		Level1Threshold:  course.Level1Threshold,
		Level2Threshold:  course.Level2Threshold,
		Level3Threshold:  course.Level3Threshold,
		TargetPercentage: course.TargetPercentage,
		TargetLevel:      course.TargetLevel,
	}, nil
}

func (r *MarkRepository) GetCourseOutcome(ctx context.Context, courseID, coID uint) (*model.CourseOutcome, error) {
	var co model.CourseOutcome
	err := r.DB.WithContext(ctx).
		Where("id = ? AND course_id = ?", coID, courseID).
		First(&co).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrOutcomeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &co, nil
}

// IsStudentEligible reports whether the student is enrolled in the course or
// has at least one recorded mark on one of its questions.
func (r *MarkRepository) IsStudentEligible(ctx context.Context, courseID, studentID uint) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.Enrollment{}).
		Where("course_id = ? AND student_id = ?", courseID, studentID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}

	err = r.DB.WithContext(ctx).
		Table("student_marks").
		Joins("JOIN questions ON questions.id = student_marks.question_id AND questions.deleted_at IS NULL").
		Joins("JOIN assessments ON assessments.id = questions.assessment_id AND assessments.deleted_at IS NULL").
		Where("student_marks.student_id = ? AND assessments.course_id = ?", studentID, courseID).
		Where("student_marks.deleted_at IS NULL").
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpsertMark inserts or overwrites the mark for one (student, question) pair.
func (r *MarkRepository) UpsertMark(ctx context.Context, mark *model.StudentMark) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "student_id"}, {Name: "question_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"obtained_marks", "updated_at"}),
		}).
		Create(mark).Error
}

func (r *MarkRepository) FindMark(ctx context.Context, studentID, questionID uint) (*model.StudentMark, error) {
	var mark model.StudentMark
	err := r.DB.WithContext(ctx).
		Where("student_id = ? AND question_id = ?", studentID, questionID).
		First(&mark).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &mark, nil
}

// DeleteMark removes the record entirely. Hard delete: a soft-deleted row
// would still occupy the (student, question) unique index and block the next
// upsert.
func (r *MarkRepository) DeleteMark(ctx context.Context, studentID, questionID uint) error {
	return r.DB.WithContext(ctx).
		Unscoped().
		Where("student_id = ? AND question_id = ?", studentID, questionID).
		Delete(&model.StudentMark{}).Error
}

func (r *MarkRepository) CreateImportJob(ctx context.Context, job *model.MarkImportJob) error {
	return r.DB.WithContext(ctx).Create(job).Error
}

func (r *MarkRepository) UpdateImportJob(ctx context.Context, job *model.MarkImportJob) error {
	return r.DB.WithContext(ctx).Save(job).Error
}

func (r *MarkRepository) ListImportJobs(ctx context.Context, courseID uint) ([]model.MarkImportJob, error) {
	var jobs []model.MarkImportJob
	err := r.DB.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("created_at desc").
		Find(&jobs).Error
	return jobs, err
}
