package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/mahadqr/timetable-api/internal/app/models"
	"github.com/mahadqr/timetable-api/internal/app/models/dto"
	"github.com/mahadqr/timetable-api/internal/app/services"
	"github.com/mahadqr/timetable-api/internal/middleware"
)

// validate checks bodies that gin's binding cannot cover, such as the
// elements of a top-level JSON array.
var validate = validator.New()

// ClassController handles class-session operations
type ClassController struct {
	classService services.ClassService
}

// NewClassController creates a new ClassController
func NewClassController(classService services.ClassService) *ClassController {
	return &ClassController{
		classService: classService,
	}
}

// ListClasses lists class sessions with optional filters
// @Summary List class sessions
// @Description Lists sessions filtered by day, free-text search, or class code. Search takes precedence over classCode; day narrows either result set and accepts "all" for no restriction.
// @Tags classes
// @Produce json
// @Param day query string false "Weekday filter (Monday-Friday, or all)"
// @Param search query string false "Case-insensitive substring over classCode, subject, teacher, and room"
// @Param classCode query string false "Case-insensitive class-code substring"
// @Success 200 {array} models.ClassSession "Matching sessions"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes [get]
func (c *ClassController) ListClasses(ctx *gin.Context) {
	var query dto.ListClassesQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid query parameters"))
		return
	}

	classes := c.classService.ListClasses(services.ListClassesParams{
		Day:       query.Day,
		Search:    query.Search,
		ClassCode: query.ClassCode,
	})

	ctx.JSON(http.StatusOK, classes)
}

// BulkCreateClasses ingests a batch of class sessions
// @Summary Bulk-ingest class sessions
// @Description Inserts sessions, deduplicating against the (classCode, subject, teacher, room, day, timeSlot) tuple. Sessions already stored are returned as-is, so re-ingestion is idempotent.
// @Tags classes
// @Accept json
// @Produce json
// @Param request body []dto.CreateClassRequest true "Sessions without identifiers"
// @Success 200 {array} models.ClassSession "Created or matched sessions, in input order"
// @Failure 400 {object} dto.ErrorResponse "Invalid class data"
// @Router /classes/bulk [post]
func (c *ClassController) BulkCreateClasses(ctx *gin.Context) {
	var reqs []dto.CreateClassRequest
	if err := ctx.ShouldBindJSON(&reqs); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid class data"))
		return
	}

	// Binding a top-level array skips per-element validation, so run it here.
	for _, req := range reqs {
		if err := validate.Struct(req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid class data"))
			return
		}
	}

	classes := make([]models.ClassSession, 0, len(reqs))
	for _, req := range reqs {
		classes = append(classes, models.ClassSession{
			ClassCode: req.ClassCode,
			Subject:   req.Subject,
			Teacher:   req.Teacher,
			Room:      req.Room,
			Day:       req.Day,
			TimeSlot:  req.TimeSlot,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
		})
	}

	created, err := c.classService.BulkCreateClasses(classes)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, created)
}
