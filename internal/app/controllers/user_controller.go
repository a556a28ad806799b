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

// UserController handles admin, student, teacher and counsellor endpoints.
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController.
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// --- Admins ---

// CreateAdmin creates an administrator account
// @Summary Create admin
// @Tags admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAdminRequest true "Admin information"
// @Success 201 {object} dto.APIResponse{data=models.Admin} "Admin created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Router /admins [post]
func (c *UserController) CreateAdmin(ctx *gin.Context) {
	var req dto.CreateAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	admin, err := c.userService.CreateAdmin(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: admin, Timestamp: time.Now()})
}

// GetAdmin retrieves one admin
// @Summary Get admin by ID
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admin ID" example(ADM0001)
// @Success 200 {object} dto.APIResponse{data=models.Admin}
// @Failure 404 {object} dto.ErrorResponse "Admin not found"
// @Router /admins/{id} [get]
func (c *UserController) GetAdmin(ctx *gin.Context) {
	admin, err := c.userService.GetAdmin(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: admin, Timestamp: time.Now()})
}

// ListAdmins retrieves a page of admins
// @Summary List admins
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=[]models.Admin}
// @Router /admins [get]
func (c *UserController) ListAdmins(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	admins, total, err := c.userService.ListAdmins(ctx.Request.Context(), offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	pagination := helpers.NewPaginationInfo(total, page, size)
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: admins, Pagination: &pagination, Timestamp: time.Now()})
}

// UpdateAdmin partially updates an admin
// @Summary Update admin
// @Tags admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admin ID"
// @Param request body dto.UpdateAdminRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Admin}
// @Failure 404 {object} dto.ErrorResponse "Admin not found"
// @Router /admins/{id} [put]
func (c *UserController) UpdateAdmin(ctx *gin.Context) {
	var req dto.UpdateAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	admin, err := c.userService.UpdateAdmin(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: admin, Timestamp: time.Now()})
}

// DeleteAdmin removes an admin
// @Summary Delete admin
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admin ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Admin not found"
// @Router /admins/{id} [delete]
func (c *UserController) DeleteAdmin(ctx *gin.Context) {
	if err := c.userService.DeleteAdmin(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Admin deleted"}, Timestamp: time.Now()})
}

// --- Students ---

// CreateStudent creates a student account
// @Summary Create student
// @Description Creates a student from a multipart form; the profile photo is optional
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param profilePhoto formData file false "Profile photo"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Student created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 413 {object} dto.ErrorResponse "Photo exceeds the size limit"
// @Router /students [post]
func (c *UserController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	photo, _ := ctx.FormFile("profilePhoto")

	student, err := c.userService.CreateStudent(ctx.Request.Context(), &req, photo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: student, Timestamp: time.Now()})
}

// GetStudent retrieves one student
// @Summary Get student by ID
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID" example(STU0001)
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *UserController) GetStudent(ctx *gin.Context) {
	student, err := c.userService.GetStudent(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: student, Timestamp: time.Now()})
}

// ListStudents retrieves a page of students
// @Summary List students
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=[]models.Student}
// @Router /students [get]
func (c *UserController) ListStudents(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	students, total, err := c.userService.ListStudents(ctx.Request.Context(), offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	pagination := helpers.NewPaginationInfo(total, page, size)
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: students, Pagination: &pagination, Timestamp: time.Now()})
}

// UpdateStudent partially updates a student
// @Summary Update student
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [put]
func (c *UserController) UpdateStudent(ctx *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	photo, _ := ctx.FormFile("profilePhoto")

	student, err := c.userService.UpdateStudent(ctx.Request.Context(), ctx.Param("id"), &req, photo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: student, Timestamp: time.Now()})
}

// DeleteStudent removes a student
// @Summary Delete student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [delete]
func (c *UserController) DeleteStudent(ctx *gin.Context) {
	if err := c.userService.DeleteStudent(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Student deleted"}, Timestamp: time.Now()})
}

// BulkDeleteStudents removes several students at once
// @Summary Bulk delete students
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BulkDeleteRequest true "Student IDs"
// @Success 200 {object} dto.APIResponse{data=dto.BulkDeleteResult}
// @Router /students/bulk-delete [post]
func (c *UserController) BulkDeleteStudents(ctx *gin.Context) {
	var req dto.BulkDeleteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	deleted, err := c.userService.BulkDeleteStudents(ctx.Request.Context(), req.IDs)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.BulkDeleteResult{Requested: len(req.IDs), Deleted: deleted},
		Timestamp: time.Now(),
	})
}

// --- Teachers ---

// CreateTeacher creates a teacher account
// @Summary Create teacher
// @Tags teachers
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param profilePhoto formData file false "Profile photo"
// @Success 201 {object} dto.APIResponse{data=models.Teacher} "Teacher created"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Router /teachers [post]
func (c *UserController) CreateTeacher(ctx *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	photo, _ := ctx.FormFile("profilePhoto")

	teacher, err := c.userService.CreateTeacher(ctx.Request.Context(), &req, photo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: teacher, Timestamp: time.Now()})
}

// GetTeacher retrieves one teacher
// @Summary Get teacher by ID
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Teacher ID" example(TCH0001)
// @Success 200 {object} dto.APIResponse{data=models.Teacher}
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Router /teachers/{id} [get]
func (c *UserController) GetTeacher(ctx *gin.Context) {
	teacher, err := c.userService.GetTeacher(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: teacher, Timestamp: time.Now()})
}

// ListTeachers retrieves a page of teachers
// @Summary List teachers
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Teacher}
// @Router /teachers [get]
func (c *UserController) ListTeachers(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	teachers, total, err := c.userService.ListTeachers(ctx.Request.Context(), offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	pagination := helpers.NewPaginationInfo(total, page, size)
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: teachers, Pagination: &pagination, Timestamp: time.Now()})
}

// UpdateTeacher partially updates a teacher
// @Summary Update teacher
// @Tags teachers
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Teacher ID"
// @Success 200 {object} dto.APIResponse{data=models.Teacher}
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Router /teachers/{id} [put]
func (c *UserController) UpdateTeacher(ctx *gin.Context) {
	var req dto.UpdateTeacherRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	photo, _ := ctx.FormFile("profilePhoto")

	teacher, err := c.userService.UpdateTeacher(ctx.Request.Context(), ctx.Param("id"), &req, photo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: teacher, Timestamp: time.Now()})
}

// DeleteTeacher removes a teacher
// @Summary Delete teacher
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Teacher ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Router /teachers/{id} [delete]
func (c *UserController) DeleteTeacher(ctx *gin.Context) {
	if err := c.userService.DeleteTeacher(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Teacher deleted"}, Timestamp: time.Now()})
}

// BulkDeleteTeachers removes several teachers at once
// @Summary Bulk delete teachers
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BulkDeleteRequest true "Teacher IDs"
// @Success 200 {object} dto.APIResponse{data=dto.BulkDeleteResult}
// @Router /teachers/bulk-delete [post]
func (c *UserController) BulkDeleteTeachers(ctx *gin.Context) {
	var req dto.BulkDeleteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	deleted, err := c.userService.BulkDeleteTeachers(ctx.Request.Context(), req.IDs)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.BulkDeleteResult{Requested: len(req.IDs), Deleted: deleted},
		Timestamp: time.Now(),
	})
}

// --- Counsellors ---

// CreateCounsellor creates a counsellor account
// @Summary Create counsellor
// @Tags counsellors
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param profilePhoto formData file false "Profile photo"
// @Success 201 {object} dto.APIResponse{data=models.Counsellor} "Counsellor created"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Router /counsellors [post]
func (c *UserController) CreateCounsellor(ctx *gin.Context) {
	var req dto.CreateCounsellorRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	photo, _ := ctx.FormFile("profilePhoto")

	counsellor, err := c.userService.CreateCounsellor(ctx.Request.Context(), &req, photo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: counsellor, Timestamp: time.Now()})
}

// GetCounsellor retrieves one counsellor
// @Summary Get counsellor by ID
// @Tags counsellors
// @Produce json
// @Security BearerAuth
// @Param id path string true "Counsellor ID" example(CNS0001)
// @Success 200 {object} dto.APIResponse{data=models.Counsellor}
// @Failure 404 {object} dto.ErrorResponse "Counsellor not found"
// @Router /counsellors/{id} [get]
func (c *UserController) GetCounsellor(ctx *gin.Context) {
	counsellor, err := c.userService.GetCounsellor(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: counsellor, Timestamp: time.Now()})
}

// ListCounsellors retrieves a page of counsellors
// @Summary List counsellors
// @Tags counsellors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Counsellor}
// @Router /counsellors [get]
func (c *UserController) ListCounsellors(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	counsellors, total, err := c.userService.ListCounsellors(ctx.Request.Context(), offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	pagination := helpers.NewPaginationInfo(total, page, size)
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: counsellors, Pagination: &pagination, Timestamp: time.Now()})
}

// UpdateCounsellor partially updates a counsellor
// @Summary Update counsellor
// @Tags counsellors
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Counsellor ID"
// @Success 200 {object} dto.APIResponse{data=models.Counsellor}
// @Failure 404 {object} dto.ErrorResponse "Counsellor not found"
// @Router /counsellors/{id} [put]
func (c *UserController) UpdateCounsellor(ctx *gin.Context) {
	var req dto.UpdateCounsellorRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	photo, _ := ctx.FormFile("profilePhoto")

	counsellor, err := c.userService.UpdateCounsellor(ctx.Request.Context(), ctx.Param("id"), &req, photo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: counsellor, Timestamp: time.Now()})
}

// DeleteCounsellor removes a counsellor
// @Summary Delete counsellor
// @Tags counsellors
// @Produce json
// @Security BearerAuth
// @Param id path string true "Counsellor ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Counsellor not found"
// @Router /counsellors/{id} [delete]
func (c *UserController) DeleteCounsellor(ctx *gin.Context) {
	if err := c.userService.DeleteCounsellor(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Counsellor deleted"}, Timestamp: time.Now()})
}
