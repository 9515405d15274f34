package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"obe_portal_backend/internal/model"
	"obe_portal_backend/internal/repository"
	"obe_portal_backend/internal/util"
	"obe_portal_backend/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MarkImportService ingests marks in bulk from CSV uploads. The raw file is
// archived through the storage provider and every import leaves an audit
// record with per-row outcome counts.
type MarkImportService struct {
	Marks       *repository.MarkRepository
	Students    *repository.StudentRepository
	Assessments *repository.AssessmentRepository
	Courses     *repository.CourseRepository
	Storage     *StorageService
}

func NewMarkImportService(
	marks *repository.MarkRepository,
	students *repository.StudentRepository,
	assessments *repository.AssessmentRepository,
	courses *repository.CourseRepository,
	storage *StorageService,
) *MarkImportService {
	return &MarkImportService{
		Marks:       marks,
		Students:    students,
		Assessments: assessments,
		Courses:     courses,
		Storage:     storage,
	}
}

// MarkImportRow is one parsed CSV line: roll_no, question_id, obtained_marks.
type MarkImportRow struct {
	RollNo        string
	QuestionID    uint
	ObtainedMarks float64
}

// ParseMarksCSV reads rows of roll_no,question_id,obtained_marks. A header
// line is detected and skipped when the second column is not numeric.
func ParseMarksCSV(r io.Reader) ([]MarkImportRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	var rows []MarkImportRow
	for i, record := range records {
		if len(record) < 3 {
			return nil, fmt.Errorf("line %d: expected 3 columns, got %d", i+1, len(record))
		}
		if i == 0 {
			if _, err := strconv.ParseUint(strings.TrimSpace(record[1]), 10, 32); err != nil {
				continue // header line
			}
		}

		questionID, err := strconv.ParseUint(strings.TrimSpace(record[1]), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid question id %q", i+1, record[1])
		}
		marks, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid marks %q", i+1, record[2])
		}

		rows = append(rows, MarkImportRow{
			RollNo:        strings.TrimSpace(record[0]),
			QuestionID:    uint(questionID),
			ObtainedMarks: marks,
		})
	}
	return rows, nil
}

// ImportCSV parses, validates and upserts the uploaded marks, archiving the
// raw file alongside the audit record. Row failures do not abort the import;
// they are counted and logged.
func (s *MarkImportService) ImportCSV(ctx context.Context, courseID uint, fileName string, r io.Reader) (*model.MarkImportJob, error) {
	if _, err := s.Courses.FindByID(courseID); err != nil {
		return nil, err
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	rows, err := ParseMarksCSV(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}

	objectName := fmt.Sprintf("imports/%s_%s", uuid.New().String(), fileName)
	fileURL, err := s.Storage.Upload(ctx, objectName, bytes.NewReader(raw), int64(len(raw)), util.MimeCSV)
	if err != nil {
		logger.Log.Error("mark import archive upload failed", zap.Error(err))
		fileURL = ""
	}

	job := &model.MarkImportJob{
		CourseID:  courseID,
		FileName:  fileName,
		FileURL:   fileURL,
		TotalRows: len(rows),
	}

	for _, row := range rows {
		if err := s.importRow(ctx, row); err != nil {
			job.Failed++
			logger.Log.Warn("mark import row rejected",
				zap.String("rollNo", row.RollNo),
				zap.Uint("questionId", row.QuestionID),
				zap.Error(err),
			)
			continue
		}
		job.Imported++
	}

	switch {
	case job.Imported == 0 && job.TotalRows > 0:
		job.Status = model.ImportStatusFailed
	case job.Failed > 0:
		job.Status = model.ImportStatusPartial
	default:
		job.Status = model.ImportStatusCompleted
	}

	if err := s.Marks.CreateImportJob(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *MarkImportService) importRow(ctx context.Context, row MarkImportRow) error {
	student, err := s.Students.FindByRollNo(row.RollNo)
	if err != nil {
		return err
	}
	question, err := s.Assessments.FindQuestionByID(row.QuestionID)
	if err != nil {
		return err
	}
	if row.ObtainedMarks < 0 || row.ObtainedMarks > question.MaxMarks {
		return fmt.Errorf("marks %.2f outside [0, %.2f]", row.ObtainedMarks, question.MaxMarks)
	}

	return s.Marks.UpsertMark(ctx, &model.StudentMark{
		StudentID:     student.ID,
		QuestionID:    row.QuestionID,
		ObtainedMarks: row.ObtainedMarks,
	})
}

func (s *MarkImportService) ListJobs(ctx context.Context, courseID uint) ([]model.MarkImportJob, error) {
	if _, err := s.Courses.FindByID(courseID); err != nil {
		return nil, err
	}
	return s.Marks.ListImportJobs(ctx, courseID)
}
