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

// ContentController handles announcements, advertisements, about-us sections
// and help center queries.
type ContentController struct {
	contentService *services.ContentService
}

// NewContentController creates a new ContentController.
func NewContentController(contentService *services.ContentService) *ContentController {
	return &ContentController{contentService: contentService}
}

// --- Announcements ---

// CreateAnnouncement creates an announcement
// @Summary Create announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAnnouncementRequest true "Announcement"
// @Success 201 {object} dto.APIResponse{data=models.Announcement} "Announcement created"
// @Router /announcements [post]
func (c *ContentController) CreateAnnouncement(ctx *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	announcement, err := c.contentService.CreateAnnouncement(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: announcement, Timestamp: time.Now()})
}

// GetAnnouncement retrieves one announcement
// @Summary Get announcement by ID
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Announcement ID" example(ANN0001)
// @Success 200 {object} dto.APIResponse{data=models.Announcement}
// @Failure 404 {object} dto.ErrorResponse "Announcement not found"
// @Router /announcements/{id} [get]
func (c *ContentController) GetAnnouncement(ctx *gin.Context) {
	announcement, err := c.contentService.GetAnnouncement(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: announcement, Timestamp: time.Now()})
}

// ListAnnouncements retrieves announcements, newest first
// @Summary List announcements
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=[]models.Announcement}
// @Router /announcements [get]
func (c *ContentController) ListAnnouncements(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	announcements, total, err := c.contentService.ListAnnouncements(ctx.Request.Context(), offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	pagination := helpers.NewPaginationInfo(total, page, size)
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: announcements, Pagination: &pagination, Timestamp: time.Now()})
}

// UpdateAnnouncement partially updates an announcement
// @Summary Update announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Announcement ID"
// @Param request body dto.UpdateAnnouncementRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Announcement}
// @Failure 404 {object} dto.ErrorResponse "Announcement not found"
// @Router /announcements/{id} [put]
func (c *ContentController) UpdateAnnouncement(ctx *gin.Context) {
	var req dto.UpdateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	announcement, err := c.contentService.UpdateAnnouncement(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: announcement, Timestamp: time.Now()})
}

// DeleteAnnouncement removes an announcement
// @Summary Delete announcement
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Announcement ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Announcement not found"
// @Router /announcements/{id} [delete]
func (c *ContentController) DeleteAnnouncement(ctx *gin.Context) {
	if err := c.contentService.DeleteAnnouncement(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Announcement deleted"}, Timestamp: time.Now()})
}

// --- Advertisements ---

// CreateAdvertisement creates an advertisement
// @Summary Create advertisement
// @Tags advertisements
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param banner formData file false "Banner image"
// @Success 201 {object} dto.APIResponse{data=models.Advertisement} "Advertisement created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /advertisements [post]
func (c *ContentController) CreateAdvertisement(ctx *gin.Context) {
	var req dto.CreateAdvertisementRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	banner, _ := ctx.FormFile("banner")

	ad, err := c.contentService.CreateAdvertisement(ctx.Request.Context(), &req, banner)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: ad, Timestamp: time.Now()})
}

// GetAdvertisement retrieves one advertisement
// @Summary Get advertisement by ID
// @Tags advertisements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Advertisement ID" example(ADV0001)
// @Success 200 {object} dto.APIResponse{data=models.Advertisement}
// @Failure 404 {object} dto.ErrorResponse "Advertisement not found"
// @Router /advertisements/{id} [get]
func (c *ContentController) GetAdvertisement(ctx *gin.Context) {
	ad, err := c.contentService.GetAdvertisement(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: ad, Timestamp: time.Now()})
}

// ListAdvertisements retrieves advertisements, newest first
// @Summary List advertisements
// @Tags advertisements
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=[]models.Advertisement}
// @Router /advertisements [get]
func (c *ContentController) ListAdvertisements(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	ads, total, err := c.contentService.ListAdvertisements(ctx.Request.Context(), offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	pagination := helpers.NewPaginationInfo(total, page, size)
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: ads, Pagination: &pagination, Timestamp: time.Now()})
}

// UpdateAdvertisement partially updates an advertisement
// @Summary Update advertisement
// @Tags advertisements
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Advertisement ID"
// @Success 200 {object} dto.APIResponse{data=models.Advertisement}
// @Failure 404 {object} dto.ErrorResponse "Advertisement not found"
// @Router /advertisements/{id} [put]
func (c *ContentController) UpdateAdvertisement(ctx *gin.Context) {
	var req dto.UpdateAdvertisementRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	banner, _ := ctx.FormFile("banner")

	ad, err := c.contentService.UpdateAdvertisement(ctx.Request.Context(), ctx.Param("id"), &req, banner)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: ad, Timestamp: time.Now()})
}

// DeleteAdvertisement removes an advertisement
// @Summary Delete advertisement
// @Tags advertisements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Advertisement ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Advertisement not found"
// @Router /advertisements/{id} [delete]
func (c *ContentController) DeleteAdvertisement(ctx *gin.Context) {
	if err := c.contentService.DeleteAdvertisement(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Advertisement deleted"}, Timestamp: time.Now()})
}

// --- About us ---

// CreateAboutUs creates an about-us section
// @Summary Create about-us section
// @Tags about-us
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param photo formData file false "Section photo"
// @Success 201 {object} dto.APIResponse{data=models.AboutUsSection} "Section created"
// @Router /about-us [post]
func (c *ContentController) CreateAboutUs(ctx *gin.Context) {
	var req dto.CreateAboutUsRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	photo, _ := ctx.FormFile("photo")

	section, err := c.contentService.CreateAboutUs(ctx.Request.Context(), &req, photo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: section, Timestamp: time.Now()})
}

// GetAboutUs retrieves one about-us section
// @Summary Get about-us section by ID
// @Tags about-us
// @Produce json
// @Security BearerAuth
// @Param id path string true "Section ID" example(ABT0001)
// @Success 200 {object} dto.APIResponse{data=models.AboutUsSection}
// @Failure 404 {object} dto.ErrorResponse "Section not found"
// @Router /about-us/{id} [get]
func (c *ContentController) GetAboutUs(ctx *gin.Context) {
	section, err := c.contentService.GetAboutUs(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: section, Timestamp: time.Now()})
}

// ListAboutUs retrieves about-us sections in display order
// @Summary List about-us sections
// @Tags about-us
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=[]models.AboutUsSection}
// @Router /about-us [get]
func (c *ContentController) ListAboutUs(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	sections, total, err := c.contentService.ListAboutUs(ctx.Request.Context(), offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	pagination := helpers.NewPaginationInfo(total, page, size)
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: sections, Pagination: &pagination, Timestamp: time.Now()})
}

// UpdateAboutUs partially updates an about-us section
// @Summary Update about-us section
// @Tags about-us
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Section ID"
// @Success 200 {object} dto.APIResponse{data=models.AboutUsSection}
// @Failure 404 {object} dto.ErrorResponse "Section not found"
// @Router /about-us/{id} [put]
func (c *ContentController) UpdateAboutUs(ctx *gin.Context) {
	var req dto.UpdateAboutUsRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	photo, _ := ctx.FormFile("photo")

	section, err := c.contentService.UpdateAboutUs(ctx.Request.Context(), ctx.Param("id"), &req, photo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: section, Timestamp: time.Now()})
}

// DeleteAboutUs removes an about-us section
// @Summary Delete about-us section
// @Tags about-us
// @Produce json
// @Security BearerAuth
// @Param id path string true "Section ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Section not found"
// @Router /about-us/{id} [delete]
func (c *ContentController) DeleteAboutUs(ctx *gin.Context) {
	if err := c.contentService.DeleteAboutUs(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Section deleted"}, Timestamp: time.Now()})
}

// --- Help center ---

// CreateHelpQuery submits a help center query
// @Summary Create help query
// @Tags help-center
// @Accept json
// @Produce json
// @Param request body dto.CreateHelpQueryRequest true "Query"
// @Success 201 {object} dto.APIResponse{data=models.HelpCenterQuery} "Query submitted"
// @Router /help-queries [post]
func (c *ContentController) CreateHelpQuery(ctx *gin.Context) {
	var req dto.CreateHelpQueryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	query, err := c.contentService.CreateHelpQuery(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: query, Timestamp: time.Now()})
}

// GetHelpQuery retrieves one help query
// @Summary Get help query by ID
// @Tags help-center
// @Produce json
// @Security BearerAuth
// @Param id path string true "Query ID" example(HLP0001)
// @Success 200 {object} dto.APIResponse{data=models.HelpCenterQuery}
// @Failure 404 {object} dto.ErrorResponse "Query not found"
// @Router /help-queries/{id} [get]
func (c *ContentController) GetHelpQuery(ctx *gin.Context) {
	query, err := c.contentService.GetHelpQuery(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: query, Timestamp: time.Now()})
}

// ListHelpQueries retrieves help queries, filterable by status
// @Summary List help queries
// @Tags help-center
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(open, resolved)
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=[]models.HelpCenterQuery}
// @Router /help-queries [get]
func (c *ContentController) ListHelpQueries(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	queries, total, err := c.contentService.ListHelpQueries(ctx.Request.Context(), ctx.Query("status"), offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	pagination := helpers.NewPaginationInfo(total, page, size)
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: queries, Pagination: &pagination, Timestamp: time.Now()})
}

// UpdateHelpQuery replies to or resolves a help query
// @Summary Update help query
// @Description Attaching a reply without an explicit status marks the query resolved
// @Tags help-center
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Query ID"
// @Param request body dto.UpdateHelpQueryRequest true "Reply and status"
// @Success 200 {object} dto.APIResponse{data=models.HelpCenterQuery}
// @Failure 404 {object} dto.ErrorResponse "Query not found"
// @Router /help-queries/{id} [put]
func (c *ContentController) UpdateHelpQuery(ctx *gin.Context) {
	var req dto.UpdateHelpQueryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	query, err := c.contentService.UpdateHelpQuery(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: query, Timestamp: time.Now()})
}

// DeleteHelpQuery removes a help query
// @Summary Delete help query
// @Tags help-center
// @Produce json
// @Security BearerAuth
// @Param id path string true "Query ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Query not found"
// @Router /help-queries/{id} [delete]
func (c *ContentController) DeleteHelpQuery(ctx *gin.Context) {
	if err := c.contentService.DeleteHelpQuery(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Query deleted"}, Timestamp: time.Now()})
}
