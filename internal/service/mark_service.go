package service

import (
	"context"

	"obe_portal_backend/internal/model"
	"obe_portal_backend/internal/repository"
	"obe_portal_backend/internal/util"
)

// MarkService handles single-mark entry. Deleting a mark removes the record
// entirely so "not attempted" stays distinguishable from a recorded zero.
type MarkService struct {
	Marks       *repository.MarkRepository
	Assessments *repository.AssessmentRepository
	Students    *repository.StudentRepository
}

func NewMarkService(marks *repository.MarkRepository, assessments *repository.AssessmentRepository, students *repository.StudentRepository) *MarkService {
	return &MarkService{Marks: marks, Assessments: assessments, Students: students}
}

type MarkRequest struct {
	StudentID     uint    `json:"studentId" binding:"required"`
	QuestionID    uint    `json:"questionId" binding:"required"`
	ObtainedMarks float64 `json:"obtainedMarks"`
}

func (s *MarkService) UpsertMark(ctx context.Context, req MarkRequest) (*model.StudentMark, error) {
	if _, err := s.Students.FindByID(req.StudentID); err != nil {
		return nil, err
	}
	question, err := s.Assessments.FindQuestionByID(req.QuestionID)
	if err != nil {
		return nil, err
	}
	if req.ObtainedMarks < 0 || req.ObtainedMarks > question.MaxMarks {
		return nil, util.ErrMarkOutOfRange
	}

	mark := &model.StudentMark{
		StudentID:     req.StudentID,
		QuestionID:    req.QuestionID,
		ObtainedMarks: req.ObtainedMarks,
	}
	if err := s.Marks.UpsertMark(ctx, mark); err != nil {
		return nil, err
	}
	return s.Marks.FindMark(ctx, req.StudentID, req.QuestionID)
}

// GetMark returns nil without error when no mark is recorded; the controller
// maps that to a 404 so absence is never presented as a zero.
func (s *MarkService) GetMark(ctx context.Context, studentID, questionID uint) (*model.StudentMark, error) {
	return s.Marks.FindMark(ctx, studentID, questionID)
}

func (s *MarkService) DeleteMark(ctx context.Context, studentID, questionID uint) error {
	mark, err := s.Marks.FindMark(ctx, studentID, questionID)
	if err != nil {
		return err
	}
	if mark == nil {
		return util.ErrMarkNotFound
	}
	return s.Marks.DeleteMark(ctx, studentID, questionID)
}
