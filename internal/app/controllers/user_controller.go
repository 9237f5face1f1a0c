package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mahadqr/timetable-api/internal/app/models/dto"
	"github.com/mahadqr/timetable-api/internal/app/services"
	"github.com/mahadqr/timetable-api/internal/middleware"
)

// UserController handles user registration and lookup
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// Register creates a new user account. The stored password hash never
// appears in the response body.
func (c *UserController) Register(ctx *gin.Context) {
	var req dto.RegisterUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid user data"))
		return
	}

	user, err := c.userService.Register(req.Username, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// GetUser retrieves a user by ID.
func (c *UserController) GetUser(ctx *gin.Context) {
	user, err := c.userService.GetUser(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}
