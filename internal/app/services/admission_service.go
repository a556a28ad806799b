package services

import (
	"context"
	"errors"

	"github.com/vwings/eduadmin/internal/app/models"
	"github.com/vwings/eduadmin/internal/app/models/dto"
	"github.com/vwings/eduadmin/internal/app/repositories"
	"github.com/vwings/eduadmin/internal/pkg/apperrors"
	"github.com/vwings/eduadmin/internal/pkg/logger"
)

// enquiryTransitions lists the allowed status moves. Converted and cancelled
// are terminal.
var enquiryTransitions = map[string][]string{
	models.EnquiryStatusPending:   {models.EnquiryStatusContacted, models.EnquiryStatusConverted, models.EnquiryStatusCancelled},
	models.EnquiryStatusContacted: {models.EnquiryStatusConverted, models.EnquiryStatusCancelled},
}

// AdmissionService manages referral codes and admission enquiries.
type AdmissionService struct {
	admissionRepo *repositories.AdmissionRepository
	userRepo      *repositories.UserRepository
	courseRepo    *repositories.CourseRepository
}

// NewAdmissionService creates a new AdmissionService.
func NewAdmissionService(admissionRepo *repositories.AdmissionRepository, userRepo *repositories.UserRepository,
	courseRepo *repositories.CourseRepository) *AdmissionService {
	return &AdmissionService{
		admissionRepo: admissionRepo,
		userRepo:      userRepo,
		courseRepo:    courseRepo,
	}
}

func codeConflict(err error) error {
	if errors.Is(err, repositories.ErrCodeAlreadyExists) {
		return apperrors.NewConflictError("Admission code is already taken")
	}
	return err
}

// --- Admission codes ---

// CreateCode adds a referral code. New codes default to active.
func (s *AdmissionService) CreateCode(ctx context.Context, req *dto.CreateAdmissionCodeRequest) (*models.AdmissionCode, error) {
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	code := &models.AdmissionCode{
		Code:        req.Code,
		Description: req.Description,
		Active:      active,
	}
	if err := s.admissionRepo.CreateCode(ctx, code); err != nil {
		return nil, codeConflict(err)
	}
	logger.Info().Str("codeID", code.ID).Str("code", code.Code).Msg("Admission code created")
	return code, nil
}

// GetCode retrieves one referral code.
func (s *AdmissionService) GetCode(ctx context.Context, id string) (*models.AdmissionCode, error) {
	code, err := s.admissionRepo.GetCodeByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Admission code not found")
	}
	return code, nil
}

// ListCodes retrieves a page of referral codes.
func (s *AdmissionService) ListCodes(ctx context.Context, offset, limit uint64) ([]*models.AdmissionCode, int64, error) {
	return s.admissionRepo.ListCodes(ctx, offset, limit)
}

// UpdateCode partially updates a referral code.
func (s *AdmissionService) UpdateCode(ctx context.Context, id string, req *dto.UpdateAdmissionCodeRequest) (*models.AdmissionCode, error) {
	fields := map[string]interface{}{}
	if req.Code != nil {
		fields["code"] = *req.Code
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Active != nil {
		fields["active"] = *req.Active
	}

	if err := s.admissionRepo.UpdateCode(ctx, id, fields); err != nil {
		return nil, codeConflict(notFound(err, "Admission code not found"))
	}
	return s.GetCode(ctx, id)
}

// DeleteCode removes a referral code.
func (s *AdmissionService) DeleteCode(ctx context.Context, id string) error {
	return notFound(s.admissionRepo.DeleteCode(ctx, id), "Admission code not found")
}

// --- Enquiries ---

// CreateEnquiry opens an enquiry. The counsellor and admission code must
// exist and the code must be active; the optional course must exist.
func (s *AdmissionService) CreateEnquiry(ctx context.Context, req *dto.CreateEnquiryRequest) (*models.AdmissionEnquiry, error) {
	if _, err := s.userRepo.GetCounsellorByID(ctx, req.CounsellorID); err != nil {
		return nil, notFound(err, "Counsellor not found")
	}

	code, err := s.admissionRepo.GetCodeByValue(ctx, req.AdmissionCode)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewValidationError("Admission code is not recognized")
		}
		return nil, err
	}
	if !code.Active {
		return nil, apperrors.NewValidationError("Admission code is no longer active")
	}

	if req.CourseID != nil {
		if _, err := s.courseRepo.GetByID(ctx, *req.CourseID); err != nil {
			return nil, notFound(err, "Course not found")
		}
	}

	enq := &models.AdmissionEnquiry{
		CounsellorID:      req.CounsellorID,
		StudentName:       req.StudentName,
		StudentPhoneNo:    req.StudentPhoneNo,
		StudentAltPhoneNo: req.StudentAltPhoneNo,
		StudentEmail:      req.StudentEmail,
		StudentAddress:    req.StudentAddress,
		GuardianName:      req.GuardianName,
		GuardianPhoneNo:   req.GuardianPhoneNo,
		FitMedically:      req.FitMedically,
		MeetsHeightReq:    req.MeetsHeightReq,
		MeetsWeightReq:    req.MeetsWeightReq,
		MeetsVisionStd:    req.MeetsVisionStd,
		AdmissionCode:     req.AdmissionCode,
		CourseID:          req.CourseID,
		Status:            models.EnquiryStatusPending,
	}
	if err := s.admissionRepo.CreateEnquiry(ctx, enq); err != nil {
		return nil, err
	}
	logger.Info().Str("enquiryID", enq.ID).Str("counsellorID", enq.CounsellorID).Msg("Admission enquiry created")
	return enq, nil
}

// GetEnquiry retrieves one enquiry.
func (s *AdmissionService) GetEnquiry(ctx context.Context, id string) (*models.AdmissionEnquiry, error) {
	enq, err := s.admissionRepo.GetEnquiryByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Admission enquiry not found")
	}
	return enq, nil
}

// ListEnquiries retrieves a page of enquiries with optional counsellor and
// status filters.
func (s *AdmissionService) ListEnquiries(ctx context.Context, counsellorID, status string, offset, limit uint64) ([]*models.AdmissionEnquiry, int64, error) {
	return s.admissionRepo.ListEnquiries(ctx, counsellorID, status, offset, limit)
}

// UpdateEnquiry partially updates an enquiry's contact and fitness details.
// Status changes go through UpdateEnquiryStatus.
func (s *AdmissionService) UpdateEnquiry(ctx context.Context, id string, req *dto.UpdateEnquiryRequest) (*models.AdmissionEnquiry, error) {
	fields := map[string]interface{}{}
	if req.StudentName != nil {
		fields["student_name"] = *req.StudentName
	}
	if req.StudentPhoneNo != nil {
		fields["student_phone_no"] = *req.StudentPhoneNo
	}
	if req.StudentAltPhoneNo != nil {
		fields["student_alt_phone_no"] = *req.StudentAltPhoneNo
	}
	if req.StudentEmail != nil {
		fields["student_email"] = *req.StudentEmail
	}
	if req.StudentAddress != nil {
		fields["student_address"] = *req.StudentAddress
	}
	if req.GuardianName != nil {
		fields["guardian_name"] = *req.GuardianName
	}
	if req.GuardianPhoneNo != nil {
		fields["guardian_phone_no"] = *req.GuardianPhoneNo
	}
	if req.FitMedically != nil {
		fields["fit_medically"] = *req.FitMedically
	}
	if req.MeetsHeightReq != nil {
		fields["meets_height_requirements"] = *req.MeetsHeightReq
	}
	if req.MeetsWeightReq != nil {
		fields["meets_weight_requirements"] = *req.MeetsWeightReq
	}
	if req.MeetsVisionStd != nil {
		fields["meets_vision_standards"] = *req.MeetsVisionStd
	}
	if req.CourseID != nil {
		if _, err := s.courseRepo.GetByID(ctx, *req.CourseID); err != nil {
			return nil, notFound(err, "Course not found")
		}
		fields["course_id"] = *req.CourseID
	}

	if err := s.admissionRepo.UpdateEnquiry(ctx, id, fields); err != nil {
		return nil, notFound(err, "Admission enquiry not found")
	}
	return s.GetEnquiry(ctx, id)
}

// UpdateEnquiryStatus moves an enquiry through the pending/contacted/
// converted/cancelled workflow, rejecting moves out of a terminal state.
func (s *AdmissionService) UpdateEnquiryStatus(ctx context.Context, id, status string) (*models.AdmissionEnquiry, error) {
	enq, err := s.GetEnquiry(ctx, id)
	if err != nil {
		return nil, err
	}
	if enq.Status == status {
		return enq, nil
	}

	allowed := false
	for _, next := range enquiryTransitions[enq.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, apperrors.NewConflictError("Enquiry cannot move from " + enq.Status + " to " + status)
	}

	if err := s.admissionRepo.UpdateEnquiry(ctx, id, map[string]interface{}{"status": status}); err != nil {
		return nil, notFound(err, "Admission enquiry not found")
	}
	logger.Info().Str("enquiryID", id).Str("from", enq.Status).Str("to", status).Msg("Enquiry status changed")
	return s.GetEnquiry(ctx, id)
}

// DeleteEnquiry removes an enquiry.
func (s *AdmissionService) DeleteEnquiry(ctx context.Context, id string) error {
	return notFound(s.admissionRepo.DeleteEnquiry(ctx, id), "Admission enquiry not found")
}
