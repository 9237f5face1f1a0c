package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mahadqr/timetable-api/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	classController *controllers.ClassController,
	assignmentController *controllers.AssignmentController,
	userClassController *controllers.UserClassController,
	userController *controllers.UserController,
) {
	api := router.Group("/api")

	// Class session routes
	classes := api.Group("/classes")
	{
		classes.GET("", classController.ListClasses)
		classes.POST("/bulk", classController.BulkCreateClasses)
	}

	// Assignment tracker routes
	assignments := api.Group("/assignments")
	{
		assignments.GET("", assignmentController.ListAssignments)
		assignments.POST("", assignmentController.CreateAssignment)
		assignments.PATCH("/:id", assignmentController.UpdateAssignment)
		assignments.DELETE("/:id", assignmentController.DeleteAssignment)
	}

	// "My classes" link routes
	userClasses := api.Group("/user-classes")
	{
		userClasses.GET("/:userId", userClassController.ListUserClasses)
		userClasses.POST("", userClassController.AddUserClass)
		userClasses.DELETE("/:userId/:classId", userClassController.RemoveUserClass)
	}

	// User routes
	users := api.Group("/users")
	{
		users.POST("", userController.Register)
		users.GET("/:id", userController.GetUser)
	}
}
