package repository

import (
	"errors"

	"obe_portal_backend/internal/model"
	"obe_portal_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AssessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: db}
}

func (r *AssessmentRepository) Create(a *model.Assessment) error {
	return r.DB.Create(a).Error
}

func (r *AssessmentRepository) FindByID(id uint) (*model.Assessment, error) {
	var a model.Assessment
	err := r.DB.First(&a, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAssessmentNotFound
	}
	return &a, err
}

func (r *AssessmentRepository) ListByCourse(courseID uint) ([]model.Assessment, error) {
	var as []model.Assessment
	err := r.DB.Where("course_id = ?", courseID).Order("created_at asc").Find(&as).Error
	return as, err
}

func (r *AssessmentRepository) Update(a *model.Assessment) error {
	return r.DB.Save(a).Error
}

func (r *AssessmentRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Assessment{}, id).Error
}

func (r *AssessmentRepository) CreateQuestion(q *model.Question) error {
	return r.DB.Create(q).Error
}

func (r *AssessmentRepository) FindQuestionByID(id uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.First(&q, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuestionNotFound
	}
	return &q, err
}

func (r *AssessmentRepository) ListQuestions(assessmentID uint) ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.Where("assessment_id = ?", assessmentID).Order("number asc, created_at asc").Find(&qs).Error
	return qs, err
}

func (r *AssessmentRepository) UpdateQuestion(q *model.Question) error {
	return r.DB.Save(q).Error
}

func (r *AssessmentRepository) DeleteQuestion(id uint) error {
	return r.DB.Delete(&model.Question{}, id).Error
}

// MapQuestionToOutcome is idempotent: re-mapping an existing pair is a no-op.
func (r *AssessmentRepository) MapQuestionToOutcome(questionID, coID uint) error {
	mapping := model.QuestionCOMapping{
		QuestionID:      questionID,
		CourseOutcomeID: coID,
	}
	return r.DB.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&mapping).Error
}

// UnmapQuestionFromOutcome hard-deletes so the pair's unique index is freed
// for a later re-mapping.
func (r *AssessmentRepository) UnmapQuestionFromOutcome(questionID, coID uint) error {
	return r.DB.
		Unscoped().
		Where("question_id = ? AND course_outcome_id = ?", questionID, coID).
		Delete(&model.QuestionCOMapping{}).Error
}

func (r *AssessmentRepository) ListQuestionOutcomes(questionID uint) ([]model.CourseOutcome, error) {
	var cos []model.CourseOutcome
	err := r.DB.
		Table("course_outcomes").
		Joins("JOIN question_co_mappings ON question_co_mappings.course_outcome_id = course_outcomes.id AND question_co_mappings.deleted_at IS NULL").
		Where("question_co_mappings.question_id = ?", questionID).
		Where("course_outcomes.deleted_at IS NULL").
		Find(&cos).Error
	return cos, err
}
