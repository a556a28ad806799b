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

// AdmissionController handles admission code and enquiry endpoints.
type AdmissionController struct {
	admissionService *services.AdmissionService
}

// NewAdmissionController creates a new AdmissionController.
func NewAdmissionController(admissionService *services.AdmissionService) *AdmissionController {
	return &AdmissionController{admissionService: admissionService}
}

// --- Admission codes ---

// CreateCode creates an admission code
// @Summary Create admission code
// @Tags admission-codes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAdmissionCodeRequest true "Code information"
// @Success 201 {object} dto.APIResponse{data=models.AdmissionCode} "Code created"
// @Failure 409 {object} dto.ErrorResponse "Code value already exists"
// @Router /admission-codes [post]
func (c *AdmissionController) CreateCode(ctx *gin.Context) {
	var req dto.CreateAdmissionCodeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	code, err := c.admissionService.CreateCode(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: code, Timestamp: time.Now()})
}

// GetCode retrieves one admission code
// @Summary Get admission code by ID
// @Tags admission-codes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admission code ID" example(ADC0001)
// @Success 200 {object} dto.APIResponse{data=models.AdmissionCode}
// @Failure 404 {object} dto.ErrorResponse "Admission code not found"
// @Router /admission-codes/{id} [get]
func (c *AdmissionController) GetCode(ctx *gin.Context) {
	code, err := c.admissionService.GetCode(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: code, Timestamp: time.Now()})
}

// ListCodes retrieves a page of admission codes
// @Summary List admission codes
// @Tags admission-codes
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=[]models.AdmissionCode}
// @Router /admission-codes [get]
func (c *AdmissionController) ListCodes(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	codes, total, err := c.admissionService.ListCodes(ctx.Request.Context(), offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	pagination := helpers.NewPaginationInfo(total, page, size)
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: codes, Pagination: &pagination, Timestamp: time.Now()})
}

// UpdateCode partially updates an admission code
// @Summary Update admission code
// @Tags admission-codes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admission code ID"
// @Param request body dto.UpdateAdmissionCodeRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.AdmissionCode}
// @Failure 404 {object} dto.ErrorResponse "Admission code not found"
// @Router /admission-codes/{id} [put]
func (c *AdmissionController) UpdateCode(ctx *gin.Context) {
	var req dto.UpdateAdmissionCodeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	code, err := c.admissionService.UpdateCode(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: code, Timestamp: time.Now()})
}

// DeleteCode removes an admission code
// @Summary Delete admission code
// @Tags admission-codes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admission code ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Admission code not found"
// @Router /admission-codes/{id} [delete]
func (c *AdmissionController) DeleteCode(ctx *gin.Context) {
	if err := c.admissionService.DeleteCode(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Admission code deleted"}, Timestamp: time.Now()})
}

// --- Enquiries ---

// CreateEnquiry creates an admission enquiry
// @Summary Create enquiry
// @Description The referenced admission code must exist and be active
// @Tags enquiries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEnquiryRequest true "Enquiry information"
// @Success 201 {object} dto.APIResponse{data=models.AdmissionEnquiry} "Enquiry created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or inactive admission code"
// @Router /enquiries [post]
func (c *AdmissionController) CreateEnquiry(ctx *gin.Context) {
	var req dto.CreateEnquiryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	enquiry, err := c.admissionService.CreateEnquiry(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: enquiry, Timestamp: time.Now()})
}

// GetEnquiry retrieves one enquiry
// @Summary Get enquiry by ID
// @Tags enquiries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Enquiry ID" example(ENQ0001)
// @Success 200 {object} dto.APIResponse{data=models.AdmissionEnquiry}
// @Failure 404 {object} dto.ErrorResponse "Enquiry not found"
// @Router /enquiries/{id} [get]
func (c *AdmissionController) GetEnquiry(ctx *gin.Context) {
	enquiry, err := c.admissionService.GetEnquiry(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: enquiry, Timestamp: time.Now()})
}

// ListEnquiries retrieves enquiries, filterable by counsellor and status
// @Summary List enquiries
// @Tags enquiries
// @Produce json
// @Security BearerAuth
// @Param counsellorId query string false "Filter by counsellor"
// @Param status query string false "Filter by status" Enums(pending, contacted, converted, cancelled)
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=[]models.AdmissionEnquiry}
// @Router /enquiries [get]
func (c *AdmissionController) ListEnquiries(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	enquiries, total, err := c.admissionService.ListEnquiries(
		ctx.Request.Context(), ctx.Query("counsellorId"), ctx.Query("status"), offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	pagination := helpers.NewPaginationInfo(total, page, size)
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: enquiries, Pagination: &pagination, Timestamp: time.Now()})
}

// UpdateEnquiry partially updates an enquiry's details
// @Summary Update enquiry
// @Description Updates enquiry details; the status moves through its own endpoint
// @Tags enquiries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Enquiry ID"
// @Param request body dto.UpdateEnquiryRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.AdmissionEnquiry}
// @Failure 404 {object} dto.ErrorResponse "Enquiry not found"
// @Router /enquiries/{id} [put]
func (c *AdmissionController) UpdateEnquiry(ctx *gin.Context) {
	var req dto.UpdateEnquiryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	enquiry, err := c.admissionService.UpdateEnquiry(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: enquiry, Timestamp: time.Now()})
}

// UpdateEnquiryStatus moves an enquiry through its workflow
// @Summary Update enquiry status
// @Description Pending enquiries may be contacted, converted or cancelled; contacted ones converted or cancelled; converted and cancelled are terminal
// @Tags enquiries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Enquiry ID"
// @Param request body dto.UpdateEnquiryStatusRequest true "Target status"
// @Success 200 {object} dto.APIResponse{data=models.AdmissionEnquiry}
// @Failure 404 {object} dto.ErrorResponse "Enquiry not found"
// @Failure 409 {object} dto.ErrorResponse "Transition not allowed"
// @Router /enquiries/{id}/status [patch]
func (c *AdmissionController) UpdateEnquiryStatus(ctx *gin.Context) {
	var req dto.UpdateEnquiryStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	enquiry, err := c.admissionService.UpdateEnquiryStatus(ctx.Request.Context(), ctx.Param("id"), req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: enquiry, Timestamp: time.Now()})
}

// DeleteEnquiry removes an enquiry
// @Summary Delete enquiry
// @Tags enquiries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Enquiry ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Enquiry not found"
// @Router /enquiries/{id} [delete]
func (c *AdmissionController) DeleteEnquiry(ctx *gin.Context) {
	if err := c.admissionService.DeleteEnquiry(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Enquiry deleted"}, Timestamp: time.Now()})
}
