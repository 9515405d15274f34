package service

import (
	"obe_portal_backend/internal/model"
	"obe_portal_backend/internal/repository"
	"obe_portal_backend/internal/util"
)

type EnrollmentService struct {
	Repo     *repository.EnrollmentRepository
	Courses  *repository.CourseRepository
	Students *repository.StudentRepository
}

func NewEnrollmentService(repo *repository.EnrollmentRepository, courses *repository.CourseRepository, students *repository.StudentRepository) *EnrollmentService {
	return &EnrollmentService{Repo: repo, Courses: courses, Students: students}
}

type EnrollmentRequest struct {
	StudentID    uint   `json:"studentId" binding:"required"`
	Section      string `json:"section"`
	AcademicYear string `json:"academicYear"`
	Semester     int    `json:"semester"`
}

func (s *EnrollmentService) Enroll(courseID uint, req EnrollmentRequest) (*model.Enrollment, error) {
	if _, err := s.Courses.FindByID(courseID); err != nil {
		return nil, err
	}
	if _, err := s.Students.FindByID(req.StudentID); err != nil {
		return nil, err
	}

	e := &model.Enrollment{
		StudentID:    req.StudentID,
		CourseID:     courseID,
		Section:      req.Section,
		AcademicYear: req.AcademicYear,
		Semester:     req.Semester,
		Status:       model.EnrollmentActive,
	}
	if err := s.Repo.Create(e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EnrollmentService) ListRoster(courseID uint, filters model.RosterFilters) ([]model.Enrollment, error) {
	if _, err := s.Courses.FindByID(courseID); err != nil {
		return nil, err
	}
	return s.Repo.ListByCourse(courseID, filters)
}

func (s *EnrollmentService) SetStatus(id uint, status string) error {
	if status != model.EnrollmentActive && status != model.EnrollmentInactive {
		return util.ErrInvalidStatus
	}
	return s.Repo.UpdateStatus(id, status)
}

func (s *EnrollmentService) Remove(id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}

type StudentRequest struct {
	RollNo string `json:"rollNo" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email"`
}

func (s *EnrollmentService) CreateStudent(req StudentRequest) (*model.Student, error) {
	student := &model.Student{
		RollNo: req.RollNo,
		Name:   req.Name,
		Email:  req.Email,
	}
	if err := s.Students.Create(student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *EnrollmentService) ListStudents(page, limit int) ([]model.Student, int64, error) {
	return s.Students.List(page, limit)
}
