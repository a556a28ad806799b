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

// FinanceController handles fee, salary and commission endpoints.
type FinanceController struct {
	financeService *services.FinanceService
}

// NewFinanceController creates a new FinanceController.
func NewFinanceController(financeService *services.FinanceService) *FinanceController {
	return &FinanceController{financeService: financeService}
}

// --- Fees ---

// CreateFee records a fee payment
// @Summary Create fee receipt
// @Description Records a payment; the amount due is derived from total fees minus the amount paid
// @Tags fees
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param receipt formData file false "Payment receipt"
// @Success 201 {object} dto.APIResponse{data=models.FeeReceipt} "Fee recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or paid amount exceeds total"
// @Router /fees [post]
func (c *FinanceController) CreateFee(ctx *gin.Context) {
	var req dto.CreateFeeRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	receipt, _ := ctx.FormFile("receipt")

	fee, err := c.financeService.CreateFee(ctx.Request.Context(), &req, receipt)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: fee, Timestamp: time.Now()})
}

// GetFee retrieves one fee receipt
// @Summary Get fee receipt by ID
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param id path string true "Fee ID" example(FEE0001)
// @Success 200 {object} dto.APIResponse{data=models.FeeReceipt}
// @Failure 404 {object} dto.ErrorResponse "Fee receipt not found"
// @Router /fees/{id} [get]
func (c *FinanceController) GetFee(ctx *gin.Context) {
	fee, err := c.financeService.GetFee(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: fee, Timestamp: time.Now()})
}

// ListFees retrieves fee receipts, optionally for one student
// @Summary List fee receipts
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param studentId query string false "Filter by student"
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=[]models.FeeReceipt}
// @Router /fees [get]
func (c *FinanceController) ListFees(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	fees, total, err := c.financeService.ListFees(ctx.Request.Context(), ctx.Query("studentId"), offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	pagination := helpers.NewPaginationInfo(total, page, size)
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: fees, Pagination: &pagination, Timestamp: time.Now()})
}

// UpdateFee partially updates a fee receipt
// @Summary Update fee receipt
// @Tags fees
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Fee ID"
// @Success 200 {object} dto.APIResponse{data=models.FeeReceipt}
// @Failure 404 {object} dto.ErrorResponse "Fee receipt not found"
// @Router /fees/{id} [put]
func (c *FinanceController) UpdateFee(ctx *gin.Context) {
	var req dto.UpdateFeeRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	receipt, _ := ctx.FormFile("receipt")

	fee, err := c.financeService.UpdateFee(ctx.Request.Context(), ctx.Param("id"), &req, receipt)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: fee, Timestamp: time.Now()})
}

// DeleteFee removes a fee receipt
// @Summary Delete fee receipt
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param id path string true "Fee ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Fee receipt not found"
// @Router /fees/{id} [delete]
func (c *FinanceController) DeleteFee(ctx *gin.Context) {
	if err := c.financeService.DeleteFee(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Fee receipt deleted"}, Timestamp: time.Now()})
}

// --- Salaries ---

// CreateSalary records a month's salary for a teacher
// @Summary Create salary record
// @Description Records a salary; when the amount is omitted the teacher's monthly salary is used
// @Tags salaries
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param slip formData file false "Salary slip"
// @Success 201 {object} dto.APIResponse{data=models.Salary} "Salary recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /salaries [post]
func (c *FinanceController) CreateSalary(ctx *gin.Context) {
	var req dto.CreateSalaryRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	slip, _ := ctx.FormFile("slip")

	salary, err := c.financeService.CreateSalary(ctx.Request.Context(), &req, slip)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: salary, Timestamp: time.Now()})
}

// GetSalary retrieves one salary record
// @Summary Get salary by ID
// @Tags salaries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Salary ID" example(SAL0001)
// @Success 200 {object} dto.APIResponse{data=models.Salary}
// @Failure 404 {object} dto.ErrorResponse "Salary record not found"
// @Router /salaries/{id} [get]
func (c *FinanceController) GetSalary(ctx *gin.Context) {
	salary, err := c.financeService.GetSalary(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: salary, Timestamp: time.Now()})
}

// ListSalaries retrieves salary records, optionally for one teacher
// @Summary List salaries
// @Tags salaries
// @Produce json
// @Security BearerAuth
// @Param teacherId query string false "Filter by teacher"
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=[]models.Salary}
// @Router /salaries [get]
func (c *FinanceController) ListSalaries(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	salaries, total, err := c.financeService.ListSalaries(ctx.Request.Context(), ctx.Query("teacherId"), offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	pagination := helpers.NewPaginationInfo(total, page, size)
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: salaries, Pagination: &pagination, Timestamp: time.Now()})
}

// UpdateSalary partially updates a salary record
// @Summary Update salary
// @Tags salaries
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Salary ID"
// @Success 200 {object} dto.APIResponse{data=models.Salary}
// @Failure 404 {object} dto.ErrorResponse "Salary record not found"
// @Router /salaries/{id} [put]
func (c *FinanceController) UpdateSalary(ctx *gin.Context) {
	var req dto.UpdateSalaryRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	slip, _ := ctx.FormFile("slip")

	salary, err := c.financeService.UpdateSalary(ctx.Request.Context(), ctx.Param("id"), &req, slip)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: salary, Timestamp: time.Now()})
}

// DeleteSalary removes a salary record
// @Summary Delete salary
// @Tags salaries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Salary ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Salary record not found"
// @Router /salaries/{id} [delete]
func (c *FinanceController) DeleteSalary(ctx *gin.Context) {
	if err := c.financeService.DeleteSalary(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Salary record deleted"}, Timestamp: time.Now()})
}

// --- Commissions ---

// CreateCommission records a counsellor commission
// @Summary Create commission record
// @Description Records a commission; the amount is derived from course fees and the commission percentage
// @Tags commissions
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param slip formData file false "Commission slip"
// @Success 201 {object} dto.APIResponse{data=models.Commission} "Commission recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /commissions [post]
func (c *FinanceController) CreateCommission(ctx *gin.Context) {
	var req dto.CreateCommissionRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	slip, _ := ctx.FormFile("slip")

	commission, err := c.financeService.CreateCommission(ctx.Request.Context(), &req, slip)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: commission, Timestamp: time.Now()})
}

// GetCommission retrieves one commission record
// @Summary Get commission by ID
// @Tags commissions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Commission ID" example(COM0001)
// @Success 200 {object} dto.APIResponse{data=models.Commission}
// @Failure 404 {object} dto.ErrorResponse "Commission not found"
// @Router /commissions/{id} [get]
func (c *FinanceController) GetCommission(ctx *gin.Context) {
	commission, err := c.financeService.GetCommission(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: commission, Timestamp: time.Now()})
}

// ListCommissions retrieves commission records, optionally for one counsellor
// @Summary List commissions
// @Tags commissions
// @Produce json
// @Security BearerAuth
// @Param counsellorId query string false "Filter by counsellor"
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=[]models.Commission}
// @Router /commissions [get]
func (c *FinanceController) ListCommissions(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	commissions, total, err := c.financeService.ListCommissions(ctx.Request.Context(), ctx.Query("counsellorId"), offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	pagination := helpers.NewPaginationInfo(total, page, size)
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: commissions, Pagination: &pagination, Timestamp: time.Now()})
}

// UpdateCommission partially updates a commission record
// @Summary Update commission
// @Tags commissions
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Commission ID"
// @Success 200 {object} dto.APIResponse{data=models.Commission}
// @Failure 404 {object} dto.ErrorResponse "Commission not found"
// @Router /commissions/{id} [put]
func (c *FinanceController) UpdateCommission(ctx *gin.Context) {
	var req dto.UpdateCommissionRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	slip, _ := ctx.FormFile("slip")

	commission, err := c.financeService.UpdateCommission(ctx.Request.Context(), ctx.Param("id"), &req, slip)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: commission, Timestamp: time.Now()})
}

// DeleteCommission removes a commission record
// @Summary Delete commission
// @Tags commissions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Commission ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Commission not found"
// @Router /commissions/{id} [delete]
func (c *FinanceController) DeleteCommission(ctx *gin.Context) {
	if err := c.financeService.DeleteCommission(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Commission deleted"}, Timestamp: time.Now()})
}
