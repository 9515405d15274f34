package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"obe_portal_backend/internal/model"
	"obe_portal_backend/internal/repository"
	"obe_portal_backend/internal/util"
	"obe_portal_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	courseCatalogKey = "obe:courses:catalog"
	courseCatalogTTL = 10 * time.Minute
)

// CourseService manages course and outcome records. The engine never reads
// through here; the redis cache only serves the catalog listing.
type CourseService struct {
	Repo  *repository.CourseRepository
	Redis *redis.Client
}

func NewCourseService(repo *repository.CourseRepository, rdb *redis.Client) *CourseService {
	return &CourseService{Repo: repo, Redis: rdb}
}

type CourseRequest struct {
	Code             string  `json:"code" binding:"required"`
	Name             string  `json:"name" binding:"required"`
	Level1Threshold  float64 `json:"level1Threshold"`
	Level2Threshold  float64 `json:"level2Threshold"`
	Level3Threshold  float64 `json:"level3Threshold"`
	TargetPercentage float64 `json:"targetPercentage"`
	TargetLevel      int     `json:"targetLevel"`
}

func (req *CourseRequest) thresholds() *model.CourseThresholds {
	return &model.CourseThresholds{
		Level1Threshold:  req.Level1Threshold,
		Level2Threshold:  req.Level2Threshold,
		Level3Threshold:  req.Level3Threshold,
		TargetPercentage: req.TargetPercentage,
		TargetLevel:      req.TargetLevel,
	}
}

func (s *CourseService) CreateCourse(ctx context.Context, req CourseRequest) (*model.Course, error) {
	if err := validateThresholds(req.thresholds()); err != nil {
		return nil, err
	}

	existing, err := s.Repo.FindByCode(req.Code)
	if err != nil && !errors.Is(err, util.ErrCourseNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, util.ErrDuplicateCourse
	}

	targetPercentage := req.TargetPercentage
	if targetPercentage == 0 {
		targetPercentage = 60
	}
	targetLevel := req.TargetLevel
	if targetLevel == 0 {
		targetLevel = 1
	}

	course := &model.Course{
		Code:             req.Code,
		Name:             req.Name,
		Level1Threshold:  req.Level1Threshold,
		Level2Threshold:  req.Level2Threshold,
		Level3Threshold:  req.Level3Threshold,
		TargetPercentage: targetPercentage,
		TargetLevel:      targetLevel,
	}
	if err := s.Repo.Create(course); err != nil {
		return nil, err
	}
	s.invalidateCatalog(ctx)
	return course, nil
}

func (s *CourseService) GetCourse(id uint) (*model.Course, error) {
	return s.Repo.FindByID(id)
}

func (s *CourseService) ListCourses(page, limit int) ([]model.Course, int64, error) {
	return s.Repo.List(page, limit)
}

// Catalog returns the full course list, served from redis when warm.
func (s *CourseService) Catalog(ctx context.Context) ([]model.Course, error) {
	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, courseCatalogKey).Result()
		if err == nil {
			var courses []model.Course
			if err := json.Unmarshal([]byte(cached), &courses); err == nil {
				return courses, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			logger.Log.Warn("course catalog cache read failed", zap.Error(err))
		}
	}

	courses, _, err := s.Repo.List(1, 1000)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(courses); err == nil {
			if err := s.Redis.Set(ctx, courseCatalogKey, payload, courseCatalogTTL).Err(); err != nil {
				logger.Log.Warn("course catalog cache write failed", zap.Error(err))
			}
		}
	}
	return courses, nil
}

func (s *CourseService) UpdateCourse(ctx context.Context, id uint, req CourseRequest) (*model.Course, error) {
	if err := validateThresholds(req.thresholds()); err != nil {
		return nil, err
	}

	course, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	course.Code = req.Code
	course.Name = req.Name
	course.Level1Threshold = req.Level1Threshold
	course.Level2Threshold = req.Level2Threshold
	course.Level3Threshold = req.Level3Threshold
	if req.TargetPercentage > 0 {
		course.TargetPercentage = req.TargetPercentage
	}
	if req.TargetLevel > 0 {
		course.TargetLevel = req.TargetLevel
	}

	if err := s.Repo.Update(course); err != nil {
		return nil, err
	}
	s.invalidateCatalog(ctx)
	return course, nil
}

func (s *CourseService) DeleteCourse(ctx context.Context, id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.invalidateCatalog(ctx)
	return nil
}

func (s *CourseService) invalidateCatalog(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, courseCatalogKey).Err(); err != nil {
		logger.Log.Warn("course catalog cache invalidation failed", zap.Error(err))
	}
}

type OutcomeRequest struct {
	Code        string `json:"code" binding:"required"`
	Description string `json:"description"`
}

func (s *CourseService) AddOutcome(courseID uint, req OutcomeRequest) (*model.CourseOutcome, error) {
	if _, err := s.Repo.FindByID(courseID); err != nil {
		return nil, err
	}

	co := &model.CourseOutcome{
		CourseID:    courseID,
		Code:        req.Code,
		Description: req.Description,
	}
	if err := s.Repo.CreateOutcome(co); err != nil {
		return nil, err
	}
	return co, nil
}

func (s *CourseService) GetOutcome(courseID, coID uint) (*model.CourseOutcome, error) {
	return s.Repo.FindOutcome(courseID, coID)
}

func (s *CourseService) ListOutcomes(courseID uint) ([]model.CourseOutcome, error) {
	if _, err := s.Repo.FindByID(courseID); err != nil {
		return nil, err
	}
	return s.Repo.ListOutcomes(courseID)
}

func (s *CourseService) UpdateOutcome(courseID, coID uint, req OutcomeRequest) (*model.CourseOutcome, error) {
	co, err := s.Repo.FindOutcome(courseID, coID)
	if err != nil {
		return nil, err
	}
	co.Code = req.Code
	co.Description = req.Description
	if err := s.Repo.UpdateOutcome(co); err != nil {
		return nil, err
	}
	return co, nil
}

// DeleteOutcome refuses while question mappings still reference the outcome;
// attainment history would silently vanish otherwise.
func (s *CourseService) DeleteOutcome(courseID, coID uint) error {
	if _, err := s.Repo.FindOutcome(courseID, coID); err != nil {
		return err
	}
	count, err := s.Repo.CountOutcomeMappings(coID)
	if err != nil {
		return err
	}
	if count > 0 {
		return util.ErrOutcomeHasMappings
	}
	return s.Repo.DeleteOutcome(courseID, coID)
}
