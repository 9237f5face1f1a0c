package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mahadqr/timetable-api/internal/app/models/dto"
	"github.com/mahadqr/timetable-api/internal/app/services"
	"github.com/mahadqr/timetable-api/internal/middleware"
)

// AssignmentController handles assignment tracker operations
type AssignmentController struct {
	assignmentService services.AssignmentService
}

// NewAssignmentController creates a new AssignmentController
func NewAssignmentController(assignmentService services.AssignmentService) *AssignmentController {
	return &AssignmentController{
		assignmentService: assignmentService,
	}
}

// ListAssignments lists all assignments
// @Summary List assignments
// @Tags assignments
// @Produce json
// @Success 200 {array} models.Assignment
// @Router /assignments [get]
func (c *AssignmentController) ListAssignments(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.assignmentService.ListAssignments())
}

// CreateAssignment creates a new assignment
// @Summary Create an assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Param request body dto.CreateAssignmentRequest true "Assignment without identifier"
// @Success 200 {object} models.Assignment
// @Failure 400 {object} dto.ErrorResponse "Invalid assignment data"
// @Router /assignments [post]
func (c *AssignmentController) CreateAssignment(ctx *gin.Context) {
	var req dto.CreateAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid assignment data"))
		return
	}

	ctx.JSON(http.StatusOK, c.assignmentService.CreateAssignment(req))
}

// UpdateAssignment partially updates an assignment
// @Summary Update an assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID"
// @Param request body dto.UpdateAssignmentRequest true "Fields to merge"
// @Success 200 {object} models.Assignment
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Router /assignments/{id} [patch]
func (c *AssignmentController) UpdateAssignment(ctx *gin.Context) {
	var req dto.UpdateAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid assignment data"))
		return
	}

	assignment, err := c.assignmentService.UpdateAssignment(ctx.Param("id"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, assignment)
}

// DeleteAssignment deletes an assignment
// @Summary Delete an assignment
// @Tags assignments
// @Produce json
// @Param id path string true "Assignment ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Router /assignments/{id} [delete]
func (c *AssignmentController) DeleteAssignment(ctx *gin.Context) {
	if err := c.assignmentService.DeleteAssignment(ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Assignment deleted"})
}
