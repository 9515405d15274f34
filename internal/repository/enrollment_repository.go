package repository

import (
	"errors"

	"obe_portal_backend/internal/model"
	"obe_portal_backend/internal/util"

	"gorm.io/gorm"
)

type EnrollmentRepository struct {
	DB *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

func (r *EnrollmentRepository) Create(e *model.Enrollment) error {
	return r.DB.Create(e).Error
}

func (r *EnrollmentRepository) FindByID(id uint) (*model.Enrollment, error) {
	var e model.Enrollment
	err := r.DB.First(&e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrEnrollmentNotFound
	}
	return &e, err
}

func (r *EnrollmentRepository) ListByCourse(courseID uint, filters model.RosterFilters) ([]model.Enrollment, error) {
	query := r.DB.Where("course_id = ?", courseID)
	if filters.AcademicYear != "" {
		query = query.Where("academic_year = ?", filters.AcademicYear)
	}
	if filters.Semester > 0 {
		query = query.Where("semester = ?", filters.Semester)
	}

	var es []model.Enrollment
	err := query.Order("student_id asc").Find(&es).Error
	return es, err
}

func (r *EnrollmentRepository) UpdateStatus(id uint, status string) error {
	result := r.DB.Model(&model.Enrollment{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return util.ErrEnrollmentNotFound
	}
	return nil
}

func (r *EnrollmentRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Enrollment{}, id).Error
}
