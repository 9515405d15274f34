package repository

import (
	"errors"

	"obe_portal_backend/internal/model"
	"obe_portal_backend/internal/util"

	"gorm.io/gorm"
)

type StudentRepository struct {
	DB *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{DB: db}
}

func (r *StudentRepository) Create(s *model.Student) error {
	return r.DB.Create(s).Error
}

func (r *StudentRepository) FindByID(id uint) (*model.Student, error) {
	var s model.Student
	err := r.DB.First(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrStudentNotFound
	}
	return &s, err
}

func (r *StudentRepository) FindByRollNo(rollNo string) (*model.Student, error) {
	var s model.Student
	err := r.DB.Where("roll_no = ?", rollNo).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrStudentNotFound
	}
	return &s, err
}

func (r *StudentRepository) List(page, limit int) ([]model.Student, int64, error) {
	var students []model.Student
	var total int64
	query := r.DB.Model(&model.Student{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("roll_no asc").Offset(offset).Limit(limit).Find(&students).Error
	return students, total, err
}

func (r *StudentRepository) Update(s *model.Student) error {
	return r.DB.Save(s).Error
}

func (r *StudentRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Student{}, id).Error
}
