package controller

import (
	"strconv"

	"obe_portal_backend/internal/model"
	"obe_portal_backend/internal/service"
	"obe_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type EnrollmentController struct {
	Enrollments *service.EnrollmentService
}

func NewEnrollmentController(enrollments *service.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{Enrollments: enrollments}
}

// @Summary Enroll a student in a course
// @Tags enrollments
// @Accept json
// @Produce json
// @Param courseId path int true "Course ID"
// @Param body body service.EnrollmentRequest true "Enrollment payload"
// @Success 201 {object} util.Response{data=model.Enrollment}
// @Failure 404 {object} util.Response
// @Router /courses/{courseId}/enrollments [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	courseID, ok := util.ParseUintParam(ctx.Param("courseId"))
	if !ok {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	var req service.EnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	e, err := c.Enrollments.Enroll(courseID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, e)
}

// @Summary List a course's roster
// @Tags enrollments
// @Produce json
// @Param courseId path int true "Course ID"
// @Param academicYear query string false "Narrow to an academic year"
// @Param semester query int false "Narrow to a semester"
// @Success 200 {object} util.Response{data=[]model.Enrollment}
// @Failure 404 {object} util.Response
// @Router /courses/{courseId}/enrollments [get]
func (c *EnrollmentController) ListRoster(ctx *gin.Context) {
	courseID, ok := util.ParseUintParam(ctx.Param("courseId"))
	if !ok {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	var filters model.RosterFilters
	if err := ctx.ShouldBindQuery(&filters); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	roster, err := c.Enrollments.ListRoster(courseID, filters)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, roster)
}

// @Summary Change an enrollment's status
// @Tags enrollments
// @Accept json
// @Produce json
// @Param id path int true "Enrollment ID"
// @Param body body object true "{status: active|inactive}"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /enrollments/{id}/status [patch]
func (c *EnrollmentController) SetStatus(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx.Param("id"))
	if !ok {
		util.BadRequest(ctx, "invalid enrollment id")
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.Enrollments.SetStatus(id, body.Status); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"updated": true})
}

// @Summary Remove an enrollment
// @Tags enrollments
// @Produce json
// @Param id path int true "Enrollment ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /enrollments/{id} [delete]
func (c *EnrollmentController) Remove(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx.Param("id"))
	if !ok {
		util.BadRequest(ctx, "invalid enrollment id")
		return
	}

	if err := c.Enrollments.Remove(id); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

// @Summary Register a student
// @Tags students
// @Accept json
// @Produce json
// @Param body body service.StudentRequest true "Student payload"
// @Success 201 {object} util.Response{data=model.Student}
// @Failure 400 {object} util.Response
// @Router /students [post]
func (c *EnrollmentController) CreateStudent(ctx *gin.Context) {
	var req service.StudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	student, err := c.Enrollments.CreateStudent(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, student)
}

// @Summary List students
// @Tags students
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /students [get]
func (c *EnrollmentController) ListStudents(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	students, total, err := c.Enrollments.ListStudents(page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: students, Total: total, Page: page, Limit: limit})
}
