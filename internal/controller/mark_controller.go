package controller

import (
	"obe_portal_backend/internal/service"
	"obe_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MarkController struct {
	Marks  *service.MarkService
	Import *service.MarkImportService
}

func NewMarkController(marks *service.MarkService, importSvc *service.MarkImportService) *MarkController {
	return &MarkController{Marks: marks, Import: importSvc}
}

// @Summary Record or overwrite a student's mark on a question
// @Tags marks
// @Accept json
// @Produce json
// @Param body body service.MarkRequest true "Mark payload"
// @Success 200 {object} util.Response{data=model.StudentMark}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /marks [put]
func (c *MarkController) UpsertMark(ctx *gin.Context) {
	var req service.MarkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	mark, err := c.Marks.UpsertMark(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, mark)
}

// @Summary Get a student's mark on a question
// @Description 404 when no mark is recorded; absence is not a zero
// @Tags marks
// @Produce json
// @Param studentId path int true "Student ID"
// @Param questionId path int true "Question ID"
// @Success 200 {object} util.Response{data=model.StudentMark}
// @Failure 404 {object} util.Response
// @Router /marks/students/{studentId}/questions/{questionId} [get]
func (c *MarkController) GetMark(ctx *gin.Context) {
	studentID, ok := util.ParseUintParam(ctx.Param("studentId"))
	if !ok {
		util.BadRequest(ctx, "invalid student id")
		return
	}
	questionID, ok := util.ParseUintParam(ctx.Param("questionId"))
	if !ok {
		util.BadRequest(ctx, "invalid question id")
		return
	}

	mark, err := c.Marks.GetMark(ctx.Request.Context(), studentID, questionID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if mark == nil {
		util.NotFound(ctx, util.ErrMarkNotFound.Error())
		return
	}
	util.Success(ctx, mark)
}

// @Summary Delete a student's mark on a question
// @Description Removes the record entirely, restoring "not attempted"
// @Tags marks
// @Produce json
// @Param studentId path int true "Student ID"
// @Param questionId path int true "Question ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /marks/students/{studentId}/questions/{questionId} [delete]
func (c *MarkController) DeleteMark(ctx *gin.Context) {
	studentID, ok := util.ParseUintParam(ctx.Param("studentId"))
	if !ok {
		util.BadRequest(ctx, "invalid student id")
		return
	}
	questionID, ok := util.ParseUintParam(ctx.Param("questionId"))
	if !ok {
		util.BadRequest(ctx, "invalid question id")
		return
	}

	if err := c.Marks.DeleteMark(ctx.Request.Context(), studentID, questionID); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

// @Summary Bulk-import marks for a course from CSV
// @Description Columns: roll_no,question_id,obtained_marks. Row failures are counted, not fatal.
// @Tags marks
// @Accept multipart/form-data
// @Produce json
// @Param courseId path int true "Course ID"
// @Param file formData file true "CSV file"
// @Success 200 {object} util.Response{data=model.MarkImportJob}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /courses/{courseId}/marks/import [post]
func (c *MarkController) ImportMarks(ctx *gin.Context) {
	courseID, ok := util.ParseUintParam(ctx.Param("courseId"))
	if !ok {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "missing file upload")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	job, err := c.Import.ImportCSV(ctx.Request.Context(), courseID, fileHeader.Filename, file)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, job)
}

// @Summary List a course's mark import jobs
// @Tags marks
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {object} util.Response{data=[]model.MarkImportJob}
// @Failure 404 {object} util.Response
// @Router /courses/{courseId}/marks/imports [get]
func (c *MarkController) ListImportJobs(ctx *gin.Context) {
	courseID, ok := util.ParseUintParam(ctx.Param("courseId"))
	if !ok {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	jobs, err := c.Import.ListJobs(ctx.Request.Context(), courseID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, jobs)
}
