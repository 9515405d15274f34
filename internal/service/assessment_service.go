package service

import (
	"obe_portal_backend/internal/model"
	"obe_portal_backend/internal/repository"
)

type AssessmentService struct {
	Repo    *repository.AssessmentRepository
	Courses *repository.CourseRepository
}

func NewAssessmentService(repo *repository.AssessmentRepository, courses *repository.CourseRepository) *AssessmentService {
	return &AssessmentService{Repo: repo, Courses: courses}
}

type AssessmentRequest struct {
	Name      string  `json:"name" binding:"required"`
	Kind      string  `json:"kind"`
	MaxMarks  float64 `json:"maxMarks" binding:"required"`
	Weightage float64 `json:"weightage"`
}

func (s *AssessmentService) CreateAssessment(courseID uint, req AssessmentRequest) (*model.Assessment, error) {
	if _, err := s.Courses.FindByID(courseID); err != nil {
		return nil, err
	}

	kind := req.Kind
	if kind == "" {
		kind = "internal"
	}

	a := &model.Assessment{
		CourseID:  courseID,
		Name:      req.Name,
		Kind:      kind,
		MaxMarks:  req.MaxMarks,
		Weightage: req.Weightage,
	}
	if err := s.Repo.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AssessmentService) GetAssessment(id uint) (*model.Assessment, error) {
	return s.Repo.FindByID(id)
}

func (s *AssessmentService) ListAssessments(courseID uint) ([]model.Assessment, error) {
	if _, err := s.Courses.FindByID(courseID); err != nil {
		return nil, err
	}
	return s.Repo.ListByCourse(courseID)
}

func (s *AssessmentService) UpdateAssessment(id uint, req AssessmentRequest) (*model.Assessment, error) {
	a, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	a.Name = req.Name
	if req.Kind != "" {
		a.Kind = req.Kind
	}
	a.MaxMarks = req.MaxMarks
	a.Weightage = req.Weightage

	if err := s.Repo.Update(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AssessmentService) DeleteAssessment(id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}

type QuestionRequest struct {
	Number     int     `json:"number"`
	Text       string  `json:"text"`
	MaxMarks   float64 `json:"maxMarks" binding:"required"`
	OutcomeIDs []uint  `json:"outcomeIds"`
}

func (s *AssessmentService) CreateQuestion(assessmentID uint, req QuestionRequest) (*model.Question, error) {
	a, err := s.Repo.FindByID(assessmentID)
	if err != nil {
		return nil, err
	}

	// Outcomes must belong to the same course as the assessment.
	for _, coID := range req.OutcomeIDs {
		if _, err := s.Courses.FindOutcome(a.CourseID, coID); err != nil {
			return nil, err
		}
	}

	q := &model.Question{
		AssessmentID: assessmentID,
		Number:       req.Number,
		Text:         req.Text,
		MaxMarks:     req.MaxMarks,
	}
	if err := s.Repo.CreateQuestion(q); err != nil {
		return nil, err
	}

	for _, coID := range req.OutcomeIDs {
		if err := s.Repo.MapQuestionToOutcome(q.ID, coID); err != nil {
			return nil, err
		}
	}
	return q, nil
}

func (s *AssessmentService) GetQuestion(id uint) (*model.Question, error) {
	return s.Repo.FindQuestionByID(id)
}

func (s *AssessmentService) ListQuestions(assessmentID uint) ([]model.Question, error) {
	if _, err := s.Repo.FindByID(assessmentID); err != nil {
		return nil, err
	}
	return s.Repo.ListQuestions(assessmentID)
}

func (s *AssessmentService) UpdateQuestion(id uint, req QuestionRequest) (*model.Question, error) {
	q, err := s.Repo.FindQuestionByID(id)
	if err != nil {
		return nil, err
	}

	q.Number = req.Number
	q.Text = req.Text
	q.MaxMarks = req.MaxMarks

	if err := s.Repo.UpdateQuestion(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *AssessmentService) DeleteQuestion(id uint) error {
	if _, err := s.Repo.FindQuestionByID(id); err != nil {
		return err
	}
	return s.Repo.DeleteQuestion(id)
}

// MapQuestion attaches a question to an outcome of the same course.
func (s *AssessmentService) MapQuestion(questionID, coID uint) error {
	q, err := s.Repo.FindQuestionByID(questionID)
	if err != nil {
		return err
	}
	a, err := s.Repo.FindByID(q.AssessmentID)
	if err != nil {
		return err
	}
	if _, err := s.Courses.FindOutcome(a.CourseID, coID); err != nil {
		return err
	}
	return s.Repo.MapQuestionToOutcome(questionID, coID)
}

func (s *AssessmentService) UnmapQuestion(questionID, coID uint) error {
	if _, err := s.Repo.FindQuestionByID(questionID); err != nil {
		return err
	}
	return s.Repo.UnmapQuestionFromOutcome(questionID, coID)
}

func (s *AssessmentService) ListQuestionOutcomes(questionID uint) ([]model.CourseOutcome, error) {
	if _, err := s.Repo.FindQuestionByID(questionID); err != nil {
		return nil, err
	}
	return s.Repo.ListQuestionOutcomes(questionID)
}
