package controller

import (
	"obe_portal_backend/internal/service"
	"obe_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	Assessments *service.AssessmentService
}

func NewAssessmentController(assessments *service.AssessmentService) *AssessmentController {
	return &AssessmentController{Assessments: assessments}
}

// @Summary Create an assessment under a course
// @Tags assessments
// @Accept json
// @Produce json
// @Param courseId path int true "Course ID"
// @Param body body service.AssessmentRequest true "Assessment payload"
// @Success 201 {object} util.Response{data=model.Assessment}
// @Failure 404 {object} util.Response
// @Router /courses/{courseId}/assessments [post]
func (c *AssessmentController) CreateAssessment(ctx *gin.Context) {
	courseID, ok := util.ParseUintParam(ctx.Param("courseId"))
	if !ok {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	var req service.AssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	a, err := c.Assessments.CreateAssessment(courseID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, a)
}

// @Summary List a course's assessments
// @Tags assessments
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {object} util.Response{data=[]model.Assessment}
// @Failure 404 {object} util.Response
// @Router /courses/{courseId}/assessments [get]
func (c *AssessmentController) ListAssessments(ctx *gin.Context) {
	courseID, ok := util.ParseUintParam(ctx.Param("courseId"))
	if !ok {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	as, err := c.Assessments.ListAssessments(courseID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, as)
}

// @Summary Update an assessment
// @Tags assessments
// @Accept json
// @Produce json
// @Param id path int true "Assessment ID"
// @Param body body service.AssessmentRequest true "Assessment payload"
// @Success 200 {object} util.Response{data=model.Assessment}
// @Failure 404 {object} util.Response
// @Router /assessments/{id} [put]
func (c *AssessmentController) UpdateAssessment(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx.Param("id"))
	if !ok {
		util.BadRequest(ctx, "invalid assessment id")
		return
	}

	var req service.AssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	a, err := c.Assessments.UpdateAssessment(id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, a)
}

// @Summary Delete an assessment
// @Tags assessments
// @Produce json
// @Param id path int true "Assessment ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /assessments/{id} [delete]
func (c *AssessmentController) DeleteAssessment(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx.Param("id"))
	if !ok {
		util.BadRequest(ctx, "invalid assessment id")
		return
	}

	if err := c.Assessments.DeleteAssessment(id); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

// @Summary Add a question to an assessment
// @Description Optionally maps the question to course outcomes in the same request
// @Tags questions
// @Accept json
// @Produce json
// @Param id path int true "Assessment ID"
// @Param body body service.QuestionRequest true "Question payload"
// @Success 201 {object} util.Response{data=model.Question}
// @Failure 404 {object} util.Response
// @Router /assessments/{id}/questions [post]
func (c *AssessmentController) CreateQuestion(ctx *gin.Context) {
	assessmentID, ok := util.ParseUintParam(ctx.Param("id"))
	if !ok {
		util.BadRequest(ctx, "invalid assessment id")
		return
	}

	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.Assessments.CreateQuestion(assessmentID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, q)
}

// @Summary List an assessment's questions
// @Tags questions
// @Produce json
// @Param id path int true "Assessment ID"
// @Success 200 {object} util.Response{data=[]model.Question}
// @Failure 404 {object} util.Response
// @Router /assessments/{id}/questions [get]
func (c *AssessmentController) ListQuestions(ctx *gin.Context) {
	assessmentID, ok := util.ParseUintParam(ctx.Param("id"))
	if !ok {
		util.BadRequest(ctx, "invalid assessment id")
		return
	}

	qs, err := c.Assessments.ListQuestions(assessmentID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, qs)
}

// @Summary Update a question
// @Tags questions
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param body body service.QuestionRequest true "Question payload"
// @Success 200 {object} util.Response{data=model.Question}
// @Failure 404 {object} util.Response
// @Router /questions/{id} [put]
func (c *AssessmentController) UpdateQuestion(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx.Param("id"))
	if !ok {
		util.BadRequest(ctx, "invalid question id")
		return
	}

	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.Assessments.UpdateQuestion(id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, q)
}

// @Summary Delete a question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /questions/{id} [delete]
func (c *AssessmentController) DeleteQuestion(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx.Param("id"))
	if !ok {
		util.BadRequest(ctx, "invalid question id")
		return
	}

	if err := c.Assessments.DeleteQuestion(id); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

// @Summary Map a question to a course outcome
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Param coId path int true "Course outcome ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /questions/{id}/outcomes/{coId} [post]
func (c *AssessmentController) MapQuestion(ctx *gin.Context) {
	questionID, ok := util.ParseUintParam(ctx.Param("id"))
	if !ok {
		util.BadRequest(ctx, "invalid question id")
		return
	}
	coID, ok := util.ParseUintParam(ctx.Param("coId"))
	if !ok {
		util.BadRequest(ctx, "invalid outcome id")
		return
	}

	if err := c.Assessments.MapQuestion(questionID, coID); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"mapped": true})
}

// @Summary Unmap a question from a course outcome
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Param coId path int true "Course outcome ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /questions/{id}/outcomes/{coId} [delete]
func (c *AssessmentController) UnmapQuestion(ctx *gin.Context) {
	questionID, ok := util.ParseUintParam(ctx.Param("id"))
	if !ok {
		util.BadRequest(ctx, "invalid question id")
		return
	}
	coID, ok := util.ParseUintParam(ctx.Param("coId"))
	if !ok {
		util.BadRequest(ctx, "invalid outcome id")
		return
	}

	if err := c.Assessments.UnmapQuestion(questionID, coID); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"unmapped": true})
}

// @Summary List the outcomes a question evidences
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} util.Response{data=[]model.CourseOutcome}
// @Failure 404 {object} util.Response
// @Router /questions/{id}/outcomes [get]
func (c *AssessmentController) ListQuestionOutcomes(ctx *gin.Context) {
	questionID, ok := util.ParseUintParam(ctx.Param("id"))
	if !ok {
		util.BadRequest(ctx, "invalid question id")
		return
	}

	cos, err := c.Assessments.ListQuestionOutcomes(questionID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, cos)
}
