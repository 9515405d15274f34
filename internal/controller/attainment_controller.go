package controller

import (
	"obe_portal_backend/internal/model"
	"obe_portal_backend/internal/service"
	"obe_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AttainmentController struct {
	Attainment *service.AttainmentService
}

func NewAttainmentController(attainment *service.AttainmentService) *AttainmentController {
	return &AttainmentController{Attainment: attainment}
}

// @Summary Student attainment for a course outcome
// @Description Marks-weighted percentage and level over the CO-mapped questions the student attempted
// @Tags attainment
// @Produce json
// @Param courseId path int true "Course ID"
// @Param coId path int true "Course outcome ID"
// @Param studentId path int true "Student ID"
// @Success 200 {object} util.Response{data=model.StudentCOAttainment}
// @Failure 404 {object} util.Response
// @Failure 422 {object} util.Response
// @Router /courses/{courseId}/outcomes/{coId}/attainment/students/{studentId} [get]
func (c *AttainmentController) GetStudentAttainment(ctx *gin.Context) {
	courseID, ok := util.ParseUintParam(ctx.Param("courseId"))
	if !ok {
		util.BadRequest(ctx, "invalid course id")
		return
	}
	coID, ok := util.ParseUintParam(ctx.Param("coId"))
	if !ok {
		util.BadRequest(ctx, "invalid outcome id")
		return
	}
	studentID, ok := util.ParseUintParam(ctx.Param("studentId"))
	if !ok {
		util.BadRequest(ctx, "invalid student id")
		return
	}

	reqCtx := ctx.Request.Context()
	attainment, err := c.Attainment.ResolveStudent(reqCtx, courseID, coID, studentID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if err := c.Attainment.ApplyStudentTarget(reqCtx, courseID, attainment); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, attainment)
}

// @Summary Class attainment for a course outcome
// @Description Level distribution and class-assigned level over all evaluable enrolled students
// @Tags attainment
// @Produce json
// @Param courseId path int true "Course ID"
// @Param coId path int true "Course outcome ID"
// @Param academicYear query string false "Narrow roster to an academic year"
// @Param semester query int false "Narrow roster to a semester"
// @Success 200 {object} util.Response{data=model.ClassCOAttainment}
// @Failure 404 {object} util.Response
// @Failure 422 {object} util.Response
// @Router /courses/{courseId}/outcomes/{coId}/attainment/class [get]
func (c *AttainmentController) GetClassAttainment(ctx *gin.Context) {
	courseID, ok := util.ParseUintParam(ctx.Param("courseId"))
	if !ok {
		util.BadRequest(ctx, "invalid course id")
		return
	}
	coID, ok := util.ParseUintParam(ctx.Param("coId"))
	if !ok {
		util.BadRequest(ctx, "invalid outcome id")
		return
	}

	var filters model.RosterFilters
	if err := ctx.ShouldBindQuery(&filters); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	reqCtx := ctx.Request.Context()
	attainment, err := c.Attainment.ResolveClass(reqCtx, courseID, coID, filters)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if err := c.Attainment.ApplyClassTarget(reqCtx, courseID, attainment); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, attainment)
}
