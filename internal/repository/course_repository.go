package repository

import (
	"errors"

	"obe_portal_backend/internal/model"
	"obe_portal_backend/internal/util"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.Preload("Outcomes").First(&course, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	return &course, err
}

func (r *CourseRepository) FindByCode(code string) (*model.Course, error) {
	var course model.Course
	err := r.DB.Where("code = ?", code).First(&course).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	return &course, err
}

func (r *CourseRepository) List(page, limit int) ([]model.Course, int64, error) {
	var courses []model.Course
	var total int64
	query := r.DB.Model(&model.Course{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("code asc").Offset(offset).Limit(limit).Find(&courses).Error
	return courses, total, err
}

func (r *CourseRepository) Update(course *model.Course) error {
	return r.DB.Save(course).Error
}

func (r *CourseRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Course{}, id).Error
}

func (r *CourseRepository) CreateOutcome(co *model.CourseOutcome) error {
	return r.DB.Create(co).Error
}

func (r *CourseRepository) FindOutcome(courseID, coID uint) (*model.CourseOutcome, error) {
	var co model.CourseOutcome
	err := r.DB.Where("id = ? AND course_id = ?", coID, courseID).First(&co).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrOutcomeNotFound
	}
	return &co, err
}

func (r *CourseRepository) ListOutcomes(courseID uint) ([]model.CourseOutcome, error) {
	var cos []model.CourseOutcome
	err := r.DB.Where("course_id = ?", courseID).Order("code asc").Find(&cos).Error
	return cos, err
}

func (r *CourseRepository) UpdateOutcome(co *model.CourseOutcome) error {
	return r.DB.Save(co).Error
}

func (r *CourseRepository) DeleteOutcome(courseID, coID uint) error {
	return r.DB.Where("id = ? AND course_id = ?", coID, courseID).Delete(&model.CourseOutcome{}).Error
}

func (r *CourseRepository) CountOutcomeMappings(coID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.QuestionCOMapping{}).
		Where("course_outcome_id = ?", coID).
		Count(&count).Error
	return count, err
}
