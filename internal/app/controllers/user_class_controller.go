package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mahadqr/timetable-api/internal/app/models/dto"
	"github.com/mahadqr/timetable-api/internal/app/services"
	"github.com/mahadqr/timetable-api/internal/middleware"
)

// UserClassController handles "my classes" link operations
type UserClassController struct {
	userClassService services.UserClassService
}

// NewUserClassController creates a new UserClassController
func NewUserClassController(userClassService services.UserClassService) *UserClassController {
	return &UserClassController{
		userClassService: userClassService,
	}
}

// ListUserClasses lists the class links of a user.
func (c *UserClassController) ListUserClasses(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.userClassService.ListUserClasses(ctx.Param("userId")))
}

// AddUserClass links a class to a user's tracked set.
func (c *UserClassController) AddUserClass(ctx *gin.Context) {
	var req dto.CreateUserClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid user class data"))
		return
	}

	ctx.JSON(http.StatusOK, c.userClassService.AddUserClass(req.UserID, req.ClassID))
}

// RemoveUserClass unlinks a class from a user's tracked set.
func (c *UserClassController) RemoveUserClass(ctx *gin.Context) {
	if err := c.userClassService.RemoveUserClass(ctx.Param("userId"), ctx.Param("classId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Class removed from user"})
}
