package controller

import (
	"strconv"

	"obe_portal_backend/internal/service"
	"obe_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	Courses *service.CourseService
}

func NewCourseController(courses *service.CourseService) *CourseController {
	return &CourseController{Courses: courses}
}

// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Param body body service.CourseRequest true "Course payload"
// @Success 201 {object} util.Response{data=model.Course}
// @Failure 400 {object} util.Response
// @Failure 422 {object} util.Response
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req service.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.Courses.CreateCourse(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, course)
}

// @Summary List courses
// @Tags courses
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	courses, total, err := c.Courses.ListCourses(page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: courses, Total: total, Page: page, Limit: limit})
}

// @Summary Course catalog
// @Description Full course list, cached
// @Tags courses
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /courses/catalog [get]
func (c *CourseController) Catalog(ctx *gin.Context) {
	courses, err := c.Courses.Catalog(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// @Summary Get a course
// @Tags courses
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response
// @Router /courses/{courseId} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx.Param("courseId"))
	if !ok {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	course, err := c.Courses.GetCourse(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// @Summary Update a course
// @Tags courses
// @Accept json
// @Produce json
// @Param courseId path int true "Course ID"
// @Param body body service.CourseRequest true "Course payload"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response
// @Failure 422 {object} util.Response
// @Router /courses/{courseId} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx.Param("courseId"))
	if !ok {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	var req service.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.Courses.UpdateCourse(ctx.Request.Context(), id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// @Summary Delete a course
// @Tags courses
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /courses/{courseId} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := util.ParseUintParam(ctx.Param("courseId"))
	if !ok {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	if err := c.Courses.DeleteCourse(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

// @Summary Add a course outcome
// @Tags outcomes
// @Accept json
// @Produce json
// @Param courseId path int true "Course ID"
// @Param body body service.OutcomeRequest true "Outcome payload"
// @Success 201 {object} util.Response{data=model.CourseOutcome}
// @Failure 404 {object} util.Response
// @Router /courses/{courseId}/outcomes [post]
func (c *CourseController) AddOutcome(ctx *gin.Context) {
	courseID, ok := util.ParseUintParam(ctx.Param("courseId"))
	if !ok {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	var req service.OutcomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	co, err := c.Courses.AddOutcome(courseID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, co)
}

// @Summary List course outcomes
// @Tags outcomes
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {object} util.Response{data=[]model.CourseOutcome}
// @Failure 404 {object} util.Response
// @Router /courses/{courseId}/outcomes [get]
func (c *CourseController) ListOutcomes(ctx *gin.Context) {
	courseID, ok := util.ParseUintParam(ctx.Param("courseId"))
	if !ok {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	cos, err := c.Courses.ListOutcomes(courseID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, cos)
}

// @Summary Update a course outcome
// @Tags outcomes
// @Accept json
// @Produce json
// @Param courseId path int true "Course ID"
// @Param coId path int true "Course outcome ID"
// @Param body body service.OutcomeRequest true "Outcome payload"
// @Success 200 {object} util.Response{data=model.CourseOutcome}
// @Failure 404 {object} util.Response
// @Router /courses/{courseId}/outcomes/{coId} [put]
func (c *CourseController) UpdateOutcome(ctx *gin.Context) {
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

	var req service.OutcomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	co, err := c.Courses.UpdateOutcome(courseID, coID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, co)
}

// @Summary Delete a course outcome
// @Tags outcomes
// @Produce json
// @Param courseId path int true "Course ID"
// @Param coId path int true "Course outcome ID"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /courses/{courseId}/outcomes/{coId} [delete]
func (c *CourseController) DeleteOutcome(ctx *gin.Context) {
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

	if err := c.Courses.DeleteOutcome(courseID, coID); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}
