package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vwings/eduadmin/internal/app/models/dto"
	"github.com/vwings/eduadmin/internal/app/repositories"
	"github.com/vwings/eduadmin/internal/pkg/apperrors"
	"github.com/vwings/eduadmin/internal/pkg/dberrors"
	"github.com/vwings/eduadmin/internal/pkg/entityid"
	"github.com/vwings/eduadmin/internal/pkg/filestorage"
	"github.com/vwings/eduadmin/internal/pkg/logger"
)

// HandleAPIError translates an application error into the standard error
// envelope. Controllers call it for every service failure.
func HandleAPIError(c *gin.Context, err error) {
	status, detail := classify(err)

	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
	}

	c.JSON(status, dto.APIResponse{
		Error:     detail,
		Timestamp: time.Now(),
	})
}

func classify(err error) (int, *dto.ErrorDetail) {
	msg := err.Error()

	switch {
	// Authentication
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid email or password")
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")

	// Not found
	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrTeacherNotFound),
		errors.Is(err, apperrors.ErrCounsellorNotFound),
		errors.Is(err, apperrors.ErrClassroomNotFound),
		errors.Is(err, apperrors.ErrEnquiryNotFound),
		errors.Is(err, repositories.ErrNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, msg)

	// Referenced-entity validation: a missing course on create is the
	// caller's mistake, not a missing resource.
	case errors.Is(err, apperrors.ErrCourseNotFound):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, msg)

	// Conflicts
	case errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, repositories.ErrDuplicate):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, msg)
	case errors.Is(err, apperrors.ErrIdentifierExists):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeIdentifierConflict, msg)

	// Validation
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, msg)

	// Uploads
	case errors.Is(err, filestorage.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, dto.NewErrorDetail(dto.ErrorCodeUploadTooLarge, msg)
	case errors.Is(err, filestorage.ErrContentTypeNotAllowed), errors.Is(err, apperrors.ErrUploadRejected):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeUploadBadType, msg)

	// Corrupt stored identifiers abort the operation rather than guessing.
	case errors.Is(err, entityid.ErrMalformedID), errors.Is(err, apperrors.ErrCorruptIdentifier):
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Stored identifier is corrupt")

	// Store availability
	case errors.Is(err, apperrors.ErrStoreUnavailable), dberrors.IsUnavailable(err):
		return http.StatusServiceUnavailable, dto.NewErrorDetail(dto.ErrorCodeStoreUnavailable, "Store is unavailable, retry later")
	}

	return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
}
