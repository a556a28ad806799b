package services

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/vwings/eduadmin/internal/app/models"
	"github.com/vwings/eduadmin/internal/app/models/dto"
	"github.com/vwings/eduadmin/internal/app/repositories"
	"github.com/vwings/eduadmin/internal/pkg/apperrors"
	"github.com/vwings/eduadmin/internal/pkg/filestorage"
	"github.com/vwings/eduadmin/internal/pkg/logger"
)

// CourseService manages the course catalog.
type CourseService struct {
	courseRepo *repositories.CourseRepository
	alloc      *repositories.Allocator
	storage    filestorage.FileStorage
}

// NewCourseService creates a new CourseService.
func NewCourseService(courseRepo *repositories.CourseRepository, alloc *repositories.Allocator, storage filestorage.FileStorage) *CourseService {
	return &CourseService{courseRepo: courseRepo, alloc: alloc, storage: storage}
}

func courseConflict(err error) error {
	switch {
	case errors.Is(err, repositories.ErrCourseCodeExists):
		return apperrors.NewConflictError("Course code is already taken")
	case errors.Is(err, repositories.ErrCourseHasStudents):
		return apperrors.NewConflictError("Course has enrolled students and cannot be deleted")
	}
	return err
}

// Create adds a course with optional photo and video attachments.
func (s *CourseService) Create(ctx context.Context, req *dto.CreateCourseRequest, photo, video *multipart.FileHeader) (*models.Course, error) {
	id, err := s.alloc.NextID(ctx, models.CourseIDSpec)
	if err != nil {
		return nil, err
	}

	course := &models.Course{
		ID:                   id,
		Name:                 req.Name,
		Code:                 req.Code,
		Description:          req.Description,
		WeightRequirements:   req.WeightRequirements,
		HeightRequirements:   req.HeightRequirements,
		VisionStandards:      req.VisionStandards,
		MedicalRequirements:  req.MedicalRequirements,
		MinQualification:     req.MinQualification,
		AgeCriteria:          req.AgeCriteria,
		Fees:                 req.Fees,
		InternshipIncluded:   req.InternshipIncluded,
		InstallmentAvailable: req.InstallmentAvailable,
		InstallmentPolicy:    req.InstallmentPolicy,
	}

	if photo != nil {
		path, err := s.storage.Save(photo, filestorage.ClassImage, "courses", id)
		if err != nil {
			return nil, err
		}
		course.Photo = &path
	}
	if video != nil {
		path, err := s.storage.Save(video, filestorage.ClassVideo, "courses", id)
		if err != nil {
			return nil, err
		}
		course.Video = &path
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		discardUpload(s.storage, course.Photo)
		discardUpload(s.storage, course.Video)
		return nil, courseConflict(err)
	}
	logger.Info().Str("courseID", course.ID).Str("courseCode", course.Code).Msg("Course created")
	return course, nil
}

// Get retrieves one course.
func (s *CourseService) Get(ctx context.Context, id string) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Course not found")
	}
	return course, nil
}

// List retrieves a page of courses.
func (s *CourseService) List(ctx context.Context, offset, limit uint64) ([]*models.Course, int64, error) {
	return s.courseRepo.List(ctx, offset, limit)
}

// Update partially updates a course.
func (s *CourseService) Update(ctx context.Context, id string, req *dto.UpdateCourseRequest, photo, video *multipart.FileHeader) (*models.Course, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["course_name"] = *req.Name
	}
	if req.Code != nil {
		fields["course_code"] = *req.Code
	}
	if req.Description != nil {
		fields["course_description"] = *req.Description
	}
	if req.WeightRequirements != nil {
		fields["weight_requirements"] = *req.WeightRequirements
	}
	if req.HeightRequirements != nil {
		fields["height_requirements"] = *req.HeightRequirements
	}
	if req.VisionStandards != nil {
		fields["vision_standards"] = *req.VisionStandards
	}
	if req.MedicalRequirements != nil {
		fields["medical_requirements"] = *req.MedicalRequirements
	}
	if req.MinQualification != nil {
		fields["min_qualification"] = *req.MinQualification
	}
	if req.AgeCriteria != nil {
		fields["age_criteria"] = *req.AgeCriteria
	}
	if req.Fees != nil {
		fields["fees"] = *req.Fees
	}
	if req.InternshipIncluded != nil {
		fields["internship_included"] = *req.InternshipIncluded
	}
	if req.InstallmentAvailable != nil {
		fields["installment_available"] = *req.InstallmentAvailable
	}
	if req.InstallmentPolicy != nil {
		fields["installment_policy"] = *req.InstallmentPolicy
	}
	if photo != nil {
		path, err := s.storage.Save(photo, filestorage.ClassImage, "courses", id)
		if err != nil {
			return nil, err
		}
		fields["course_photo"] = path
	}
	if video != nil {
		path, err := s.storage.Save(video, filestorage.ClassVideo, "courses", id)
		if err != nil {
			return nil, err
		}
		fields["course_video"] = path
	}

	if err := s.courseRepo.Update(ctx, id, fields); err != nil {
		return nil, courseConflict(notFound(err, "Course not found"))
	}
	return s.Get(ctx, id)
}

// Delete removes a course that no student references.
func (s *CourseService) Delete(ctx context.Context, id string) error {
	return courseConflict(notFound(s.courseRepo.Delete(ctx, id), "Course not found"))
}
