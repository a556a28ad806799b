package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vwings/eduadmin/internal/app/models/dto"
	"github.com/vwings/eduadmin/internal/app/services"
	"github.com/vwings/eduadmin/internal/middleware"
	"github.com/vwings/eduadmin/internal/pkg/helpers"
)

// CourseController handles course endpoints.
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new CourseController.
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// CreateCourse creates a course
// @Summary Create course
// @Description Creates a course from a multipart form; photo and intro video are optional
// @Tags courses
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param coursePhoto formData file false "Course photo"
// @Param courseVideo formData file false "Intro video"
// @Success 201 {object} dto.APIResponse{data=models.Course} "Course created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Course code already in use"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	photo, _ := ctx.FormFile("coursePhoto")
	video, _ := ctx.FormFile("courseVideo")

	course, err := c.courseService.Create(ctx.Request.Context(), &req, photo, video)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: course, Timestamp: time.Now()})
}

// GetCourse retrieves one course
// @Summary Get course by ID
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID" example(CRS0001)
// @Success 200 {object} dto.APIResponse{data=models.Course}
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	course, err := c.courseService.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: course, Timestamp: time.Now()})
}

// ListCourses retrieves a page of courses
// @Summary List courses
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=[]models.Course}
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	courses, total, err := c.courseService.List(ctx.Request.Context(), offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	pagination := helpers.NewPaginationInfo(total, page, size)
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: courses, Pagination: &pagination, Timestamp: time.Now()})
}

// UpdateCourse partially updates a course
// @Summary Update course
// @Tags courses
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 200 {object} dto.APIResponse{data=models.Course}
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 409 {object} dto.ErrorResponse "Course code already in use"
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	photo, _ := ctx.FormFile("coursePhoto")
	video, _ := ctx.FormFile("courseVideo")

	course, err := c.courseService.Update(ctx.Request.Context(), ctx.Param("id"), &req, photo, video)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: course, Timestamp: time.Now()})
}

// DeleteCourse removes a course
// @Summary Delete course
// @Description Fails with a conflict while students are still enrolled in the course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 409 {object} dto.ErrorResponse "Course still has enrolled students"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	if err := c.courseService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Course deleted"}, Timestamp: time.Now()})
}
