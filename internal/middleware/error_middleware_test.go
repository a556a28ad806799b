package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vwings/eduadmin/internal/app/models/dto"
	"github.com/vwings/eduadmin/internal/app/repositories"
	"github.com/vwings/eduadmin/internal/pkg/apperrors"
	"github.com/vwings/eduadmin/internal/pkg/entityid"
	"github.com/vwings/eduadmin/internal/pkg/filestorage"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{
			name:       "invalid credentials",
			err:        apperrors.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantCode:   dto.ErrorCodeInvalidCredentials,
		},
		{
			name:       "permission denied",
			err:        apperrors.ErrPermissionDenied,
			wantStatus: http.StatusForbidden,
			wantCode:   dto.ErrorCodeForbidden,
		},
		{
			name:       "wrapped not found",
			err:        apperrors.NewResourceNotFoundError("Student STU0042 not found"),
			wantStatus: http.StatusNotFound,
			wantCode:   dto.ErrorCodeResourceNotFound,
		},
		{
			name:       "repository not found",
			err:        repositories.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   dto.ErrorCodeResourceNotFound,
		},
		{
			name:       "missing referenced course is a validation failure",
			err:        &apperrors.CustomError{Err: apperrors.ErrCourseNotFound, Message: "Referenced course CRS0009 does not exist"},
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeValidationFailed,
		},
		{
			name:       "email conflict",
			err:        apperrors.ErrEmailAlreadyExists,
			wantStatus: http.StatusConflict,
			wantCode:   dto.ErrorCodeResourceAlreadyExists,
		},
		{
			name:       "identifier conflict",
			err:        apperrors.ErrIdentifierExists,
			wantStatus: http.StatusConflict,
			wantCode:   dto.ErrorCodeIdentifierConflict,
		},
		{
			name:       "validation failure",
			err:        apperrors.NewValidationError("Amount paid cannot exceed total fees"),
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeValidationFailed,
		},
		{
			name:       "oversized upload",
			err:        filestorage.ErrFileTooLarge,
			wantStatus: http.StatusRequestEntityTooLarge,
			wantCode:   dto.ErrorCodeUploadTooLarge,
		},
		{
			name:       "disallowed upload type",
			err:        filestorage.ErrContentTypeNotAllowed,
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeUploadBadType,
		},
		{
			name:       "corrupt stored identifier",
			err:        entityid.ErrMalformedID,
			wantStatus: http.StatusInternalServerError,
			wantCode:   dto.ErrorCodeInternalServer,
		},
		{
			name:       "store unavailable",
			err:        apperrors.ErrStoreUnavailable,
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   dto.ErrorCodeStoreUnavailable,
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   dto.ErrorCodeInternalServer,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)

			var resp dto.APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestUnknownErrorMessageIsNotLeaked(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, errors.New("pq: secret internals"))

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Internal server error", resp.Error.Message)
}
