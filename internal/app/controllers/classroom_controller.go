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

// ClassroomController handles classroom and chat endpoints.
type ClassroomController struct {
	classroomService *services.ClassroomService
}

// NewClassroomController creates a new ClassroomController.
func NewClassroomController(classroomService *services.ClassroomService) *ClassroomController {
	return &ClassroomController{classroomService: classroomService}
}

// CreateClassroom creates a classroom
// @Summary Create classroom
// @Tags classrooms
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param classPhoto formData file false "Class photo"
// @Success 201 {object} dto.APIResponse{data=models.Classroom} "Classroom created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /classrooms [post]
func (c *ClassroomController) CreateClassroom(ctx *gin.Context) {
	var req dto.CreateClassroomRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	photo, _ := ctx.FormFile("classPhoto")

	classroom, err := c.classroomService.Create(ctx.Request.Context(), &req, photo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: classroom, Timestamp: time.Now()})
}

// GetClassroom retrieves one classroom
// @Summary Get classroom by ID
// @Tags classrooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Classroom ID" example(CLS0001)
// @Success 200 {object} dto.APIResponse{data=models.Classroom}
// @Failure 404 {object} dto.ErrorResponse "Classroom not found"
// @Router /classrooms/{id} [get]
func (c *ClassroomController) GetClassroom(ctx *gin.Context) {
	classroom, err := c.classroomService.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: classroom, Timestamp: time.Now()})
}

// ListClassrooms retrieves a page of classrooms
// @Summary List classrooms
// @Tags classrooms
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=[]models.Classroom}
// @Router /classrooms [get]
func (c *ClassroomController) ListClassrooms(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	classrooms, total, err := c.classroomService.List(ctx.Request.Context(), offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	pagination := helpers.NewPaginationInfo(total, page, size)
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: classrooms, Pagination: &pagination, Timestamp: time.Now()})
}

// UpdateClassroom partially updates a classroom
// @Summary Update classroom
// @Tags classrooms
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Classroom ID"
// @Success 200 {object} dto.APIResponse{data=models.Classroom}
// @Failure 404 {object} dto.ErrorResponse "Classroom not found"
// @Router /classrooms/{id} [put]
func (c *ClassroomController) UpdateClassroom(ctx *gin.Context) {
	var req dto.UpdateClassroomRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	photo, _ := ctx.FormFile("classPhoto")

	classroom, err := c.classroomService.Update(ctx.Request.Context(), ctx.Param("id"), &req, photo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: classroom, Timestamp: time.Now()})
}

// DeleteClassroom removes a classroom along with its chat history
// @Summary Delete classroom
// @Tags classrooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Classroom ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Classroom not found"
// @Router /classrooms/{id} [delete]
func (c *ClassroomController) DeleteClassroom(ctx *gin.Context) {
	if err := c.classroomService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Classroom deleted"}, Timestamp: time.Now()})
}

// AddMember enrolls a student into a classroom
// @Summary Add classroom member
// @Tags classrooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Classroom ID"
// @Param request body dto.MembershipRequest true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Classroom}
// @Failure 404 {object} dto.ErrorResponse "Classroom or student not found"
// @Failure 409 {object} dto.ErrorResponse "Student already a member"
// @Router /classrooms/{id}/members [post]
func (c *ClassroomController) AddMember(ctx *gin.Context) {
	var req dto.MembershipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	classroom, err := c.classroomService.AddMember(ctx.Request.Context(), ctx.Param("id"), req.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: classroom, Timestamp: time.Now()})
}

// RemoveMember removes a student from a classroom
// @Summary Remove classroom member
// @Description Removing a student that is not a member is a no-op
// @Tags classrooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Classroom ID"
// @Param userId path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Classroom}
// @Failure 404 {object} dto.ErrorResponse "Classroom not found"
// @Router /classrooms/{id}/members/{userId} [delete]
func (c *ClassroomController) RemoveMember(ctx *gin.Context) {
	classroom, err := c.classroomService.RemoveMember(ctx.Request.Context(), ctx.Param("id"), ctx.Param("userId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: classroom, Timestamp: time.Now()})
}

// AddAdmin grants a teacher admin rights in a classroom
// @Summary Add classroom admin
// @Tags classrooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Classroom ID"
// @Param request body dto.MembershipRequest true "Teacher ID"
// @Success 200 {object} dto.APIResponse{data=models.Classroom}
// @Failure 404 {object} dto.ErrorResponse "Classroom or teacher not found"
// @Failure 409 {object} dto.ErrorResponse "Teacher already an admin"
// @Router /classrooms/{id}/admins [post]
func (c *ClassroomController) AddAdmin(ctx *gin.Context) {
	var req dto.MembershipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	classroom, err := c.classroomService.AddAdmin(ctx.Request.Context(), ctx.Param("id"), req.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: classroom, Timestamp: time.Now()})
}

// RemoveAdmin revokes a teacher's admin rights in a classroom
// @Summary Remove classroom admin
// @Tags classrooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Classroom ID"
// @Param userId path string true "Teacher ID"
// @Success 200 {object} dto.APIResponse{data=models.Classroom}
// @Failure 404 {object} dto.ErrorResponse "Classroom not found"
// @Router /classrooms/{id}/admins/{userId} [delete]
func (c *ClassroomController) RemoveAdmin(ctx *gin.Context) {
	classroom, err := c.classroomService.RemoveAdmin(ctx.Request.Context(), ctx.Param("id"), ctx.Param("userId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: classroom, Timestamp: time.Now()})
}

// PostMessage posts a chat message to a classroom
// @Summary Post chat message
// @Description Persists the message and makes it visible to connected chat clients
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Classroom ID"
// @Param request body dto.PostMessageRequest true "Message"
// @Success 201 {object} dto.APIResponse{data=models.ChatMessage} "Message stored"
// @Failure 404 {object} dto.ErrorResponse "Classroom or sender not found"
// @Router /classrooms/{id}/messages [post]
func (c *ClassroomController) PostMessage(ctx *gin.Context) {
	var req dto.PostMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	message, err := c.classroomService.PostMessage(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: message, Timestamp: time.Now()})
}

// ListMessages retrieves a classroom's chat history, oldest first
// @Summary List chat messages
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param id path string true "Classroom ID"
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=[]models.ChatMessage}
// @Failure 404 {object} dto.ErrorResponse "Classroom not found"
// @Router /classrooms/{id}/messages [get]
func (c *ClassroomController) ListMessages(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	messages, total, err := c.classroomService.ListMessages(ctx.Request.Context(), ctx.Param("id"), offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	pagination := helpers.NewPaginationInfo(total, page, size)
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: messages, Pagination: &pagination, Timestamp: time.Now()})
}

// DeleteMessage removes a single chat message
// @Summary Delete chat message
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param id path string true "Classroom ID"
// @Param messageId path string true "Message ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Message not found"
// @Router /classrooms/{id}/messages/{messageId} [delete]
func (c *ClassroomController) DeleteMessage(ctx *gin.Context) {
	if err := c.classroomService.DeleteMessage(ctx.Request.Context(), ctx.Param("messageId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Message deleted"}, Timestamp: time.Now()})
}
