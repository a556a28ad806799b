package services

import (
	"errors"

	"github.com/vwings/eduadmin/internal/app/repositories"
	"github.com/vwings/eduadmin/internal/pkg/apperrors"
	"github.com/vwings/eduadmin/internal/pkg/auth"
	"github.com/vwings/eduadmin/internal/pkg/filestorage"
	"github.com/vwings/eduadmin/internal/pkg/logger"
)

// Services holds all the service instances.
type Services struct {
	AuthService      *AuthService
	UserService      *UserService
	CourseService    *CourseService
	ClassroomService *ClassroomService
	FinanceService   *FinanceService
	AdmissionService *AdmissionService
	ContentService   *ContentService
}

// NewServices initializes all services.
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, storage filestorage.FileStorage) *Services {
	return &Services{
		AuthService:      NewAuthService(repos.UserRepository, jwtService),
		UserService:      NewUserService(repos.UserRepository, repos.CourseRepository, repos.Allocator, storage),
		CourseService:    NewCourseService(repos.CourseRepository, repos.Allocator, storage),
		ClassroomService: NewClassroomService(repos.ClassroomRepository, repos.ChatRepository, repos.UserRepository, repos.Allocator, storage),
		FinanceService:   NewFinanceService(repos.FinanceRepository, repos.UserRepository, repos.CourseRepository, repos.AdmissionRepository, repos.Allocator, storage),
		AdmissionService: NewAdmissionService(repos.AdmissionRepository, repos.UserRepository, repos.CourseRepository),
		ContentService:   NewContentService(repos.ContentRepository, repos.Allocator, storage),
	}
}

// notFound converts a repository not-found into the API error taxonomy,
// passing every other error through untouched.
func notFound(err error, message string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return apperrors.NewResourceNotFoundError(message)
	}
	return err
}

// discardUpload removes a file written for a create that failed afterwards.
// Best effort: the record does not exist, so a leftover file is only noise.
func discardUpload(storage filestorage.FileStorage, path *string) {
	if path == nil {
		return
	}
	if err := storage.Delete(*path); err != nil {
		logger.Warn().Err(err).Str("path", *path).Msg("Failed to remove upload of failed create")
	}
}
