package app

import (
	"obe_portal_backend/docs"
	"obe_portal_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		// Courses and outcomes
		api.POST("/courses", c.course.CreateCourse)
		api.GET("/courses", c.course.ListCourses)
		api.GET("/courses/catalog", c.course.Catalog)
		api.GET("/courses/:courseId", c.course.GetCourse)
		api.PUT("/courses/:courseId", c.course.UpdateCourse)
		api.DELETE("/courses/:courseId", c.course.DeleteCourse)
		api.POST("/courses/:courseId/outcomes", c.course.AddOutcome)
		api.GET("/courses/:courseId/outcomes", c.course.ListOutcomes)
		api.PUT("/courses/:courseId/outcomes/:coId", c.course.UpdateOutcome)
		api.DELETE("/courses/:courseId/outcomes/:coId", c.course.DeleteOutcome)

		// Attainment engine
		api.GET("/courses/:courseId/outcomes/:coId/attainment/class", c.attainment.GetClassAttainment)
		api.GET("/courses/:courseId/outcomes/:coId/attainment/students/:studentId", c.attainment.GetStudentAttainment)

		// Assessments and questions
		api.POST("/courses/:courseId/assessments", c.assessment.CreateAssessment)
		api.GET("/courses/:courseId/assessments", c.assessment.ListAssessments)
		api.PUT("/assessments/:id", c.assessment.UpdateAssessment)
		api.DELETE("/assessments/:id", c.assessment.DeleteAssessment)
		api.POST("/assessments/:id/questions", c.assessment.CreateQuestion)
		api.GET("/assessments/:id/questions", c.assessment.ListQuestions)
		api.PUT("/questions/:id", c.assessment.UpdateQuestion)
		api.DELETE("/questions/:id", c.assessment.DeleteQuestion)
		api.GET("/questions/:id/outcomes", c.assessment.ListQuestionOutcomes)
		api.POST("/questions/:id/outcomes/:coId", c.assessment.MapQuestion)
		api.DELETE("/questions/:id/outcomes/:coId", c.assessment.UnmapQuestion)

		// Students and enrollments
		api.POST("/students", c.enrollment.CreateStudent)
		api.GET("/students", c.enrollment.ListStudents)
		api.POST("/courses/:courseId/enrollments", c.enrollment.Enroll)
		api.GET("/courses/:courseId/enrollments", c.enrollment.ListRoster)
		api.PATCH("/enrollments/:id/status", c.enrollment.SetStatus)
		api.DELETE("/enrollments/:id", c.enrollment.Remove)

		// Marks
		api.PUT("/marks", c.mark.UpsertMark)
		api.GET("/marks/students/:studentId/questions/:questionId", c.mark.GetMark)
		api.DELETE("/marks/students/:studentId/questions/:questionId", c.mark.DeleteMark)
		api.POST("/courses/:courseId/marks/import", c.mark.ImportMarks)
		api.GET("/courses/:courseId/marks/imports", c.mark.ListImportJobs)
	}
}
