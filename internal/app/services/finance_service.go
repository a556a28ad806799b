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

// FinanceService manages fee receipts, salaries and commissions.
type FinanceService struct {
	financeRepo   *repositories.FinanceRepository
	userRepo      *repositories.UserRepository
	courseRepo    *repositories.CourseRepository
	admissionRepo *repositories.AdmissionRepository
	alloc         *repositories.Allocator
	storage       filestorage.FileStorage
}

// NewFinanceService creates a new FinanceService.
func NewFinanceService(financeRepo *repositories.FinanceRepository, userRepo *repositories.UserRepository,
	courseRepo *repositories.CourseRepository, admissionRepo *repositories.AdmissionRepository,
	alloc *repositories.Allocator, storage filestorage.FileStorage) *FinanceService {
	return &FinanceService{
		financeRepo:   financeRepo,
		userRepo:      userRepo,
		courseRepo:    courseRepo,
		admissionRepo: admissionRepo,
		alloc:         alloc,
		storage:       storage,
	}
}

// --- Fees ---

// CreateFee records a fee payment for a student. The amount due is derived
// from the course total and the amount paid, never accepted from the client.
func (s *FinanceService) CreateFee(ctx context.Context, req *dto.CreateFeeRequest, receipt *multipart.FileHeader) (*models.FeeReceipt, error) {
	if _, err := s.userRepo.GetStudentByID(ctx, req.StudentID); err != nil {
		return nil, notFound(err, "Student not found")
	}
	if _, err := s.courseRepo.GetByID(ctx, req.CourseID); err != nil {
		return nil, notFound(err, "Course not found")
	}
	if req.AmountPaid > req.TotalCourseFees {
		return nil, apperrors.NewValidationError("Amount paid exceeds total course fees")
	}

	id, err := s.alloc.NextID(ctx, models.FeeIDSpec)
	if err != nil {
		return nil, err
	}

	fee := &models.FeeReceipt{
		ID:              id,
		StudentID:       req.StudentID,
		CourseID:        req.CourseID,
		PaymentNo:       req.PaymentNo,
		PaymentMode:     req.PaymentMode,
		TransactionID:   req.TransactionID,
		TotalCourseFees: req.TotalCourseFees,
		AmountPaid:      req.AmountPaid,
		AmountDue:       req.TotalCourseFees - req.AmountPaid,
	}

	if receipt != nil {
		path, err := s.storage.Save(receipt, filestorage.ClassDocument, "fees", id)
		if err != nil {
			return nil, err
		}
		fee.ReceiptFile = &path
	}

	if err := s.financeRepo.CreateFee(ctx, fee); err != nil {
		discardUpload(s.storage, fee.ReceiptFile)
		return nil, referenceGone(err)
	}
	logger.Info().Str("feeID", fee.ID).Str("studentID", fee.StudentID).Msg("Fee receipt created")
	return fee, nil
}

// GetFee retrieves one fee receipt.
func (s *FinanceService) GetFee(ctx context.Context, id string) (*models.FeeReceipt, error) {
	fee, err := s.financeRepo.GetFeeByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Fee receipt not found")
	}
	return fee, nil
}

// ListFees retrieves a page of fee receipts, optionally for one student.
func (s *FinanceService) ListFees(ctx context.Context, studentID string, offset, limit uint64) ([]*models.FeeReceipt, int64, error) {
	return s.financeRepo.ListFees(ctx, studentID, offset, limit)
}

// UpdateFee partially updates a fee receipt, recomputing the amount due when
// either side of the balance changes.
func (s *FinanceService) UpdateFee(ctx context.Context, id string, req *dto.UpdateFeeRequest, receipt *multipart.FileHeader) (*models.FeeReceipt, error) {
	current, err := s.GetFee(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.PaymentNo != nil {
		fields["payment_no"] = *req.PaymentNo
	}
	if req.PaymentMode != nil {
		fields["payment_mode"] = *req.PaymentMode
	}
	if req.TransactionID != nil {
		fields["transaction_id"] = *req.TransactionID
	}

	total, paid := current.TotalCourseFees, current.AmountPaid
	if req.TotalCourseFees != nil {
		total = *req.TotalCourseFees
		fields["total_course_fees"] = total
	}
	if req.AmountPaid != nil {
		paid = *req.AmountPaid
		fields["amount_paid"] = paid
	}
	if req.TotalCourseFees != nil || req.AmountPaid != nil {
		if paid > total {
			return nil, apperrors.NewValidationError("Amount paid exceeds total course fees")
		}
		fields["amount_due"] = total - paid
	}

	if receipt != nil {
		path, err := s.storage.Save(receipt, filestorage.ClassDocument, "fees", id)
		if err != nil {
			return nil, err
		}
		fields["receipt_file"] = path
	}

	if err := s.financeRepo.UpdateFee(ctx, id, fields); err != nil {
		return nil, notFound(err, "Fee receipt not found")
	}
	return s.GetFee(ctx, id)
}

// DeleteFee removes a fee receipt.
func (s *FinanceService) DeleteFee(ctx context.Context, id string) error {
	return notFound(s.financeRepo.DeleteFee(ctx, id), "Fee receipt not found")
}

// --- Salaries ---

// CreateSalary records one month's salary for a teacher. A zero amount falls
// back to the teacher's configured monthly salary.
func (s *FinanceService) CreateSalary(ctx context.Context, req *dto.CreateSalaryRequest, slip *multipart.FileHeader) (*models.Salary, error) {
	teacher, err := s.userRepo.GetTeacherByID(ctx, req.TeacherID)
	if err != nil {
		return nil, notFound(err, "Teacher not found")
	}

	amount := req.Amount
	if amount == 0 && teacher.MonthlySalary != nil {
		amount = *teacher.MonthlySalary
	}

	id, err := s.alloc.NextID(ctx, models.SalaryIDSpec)
	if err != nil {
		return nil, err
	}

	salary := &models.Salary{
		ID:        id,
		TeacherID: req.TeacherID,
		Month:     req.Month,
		Year:      req.Year,
		Amount:    amount,
	}

	if slip != nil {
		path, err := s.storage.Save(slip, filestorage.ClassDocument, "salaries", id)
		if err != nil {
			return nil, err
		}
		salary.SlipFile = &path
	}

	if err := s.financeRepo.CreateSalary(ctx, salary); err != nil {
		discardUpload(s.storage, salary.SlipFile)
		return nil, referenceGone(err)
	}
	logger.Info().Str("salaryID", salary.ID).Str("teacherID", salary.TeacherID).Msg("Salary record created")
	return salary, nil
}

// GetSalary retrieves one salary record.
func (s *FinanceService) GetSalary(ctx context.Context, id string) (*models.Salary, error) {
	salary, err := s.financeRepo.GetSalaryByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Salary record not found")
	}
	return salary, nil
}

// ListSalaries retrieves a page of salary records, optionally for one teacher.
func (s *FinanceService) ListSalaries(ctx context.Context, teacherID string, offset, limit uint64) ([]*models.Salary, int64, error) {
	return s.financeRepo.ListSalaries(ctx, teacherID, offset, limit)
}

// UpdateSalary partially updates a salary record.
func (s *FinanceService) UpdateSalary(ctx context.Context, id string, req *dto.UpdateSalaryRequest, slip *multipart.FileHeader) (*models.Salary, error) {
	fields := map[string]interface{}{}
	if req.Month != nil {
		fields["month"] = *req.Month
	}
	if req.Year != nil {
		fields["year"] = *req.Year
	}
	if req.Amount != nil {
		fields["amount"] = *req.Amount
	}
	if slip != nil {
		path, err := s.storage.Save(slip, filestorage.ClassDocument, "salaries", id)
		if err != nil {
			return nil, err
		}
		fields["slip_file"] = path
	}

	if err := s.financeRepo.UpdateSalary(ctx, id, fields); err != nil {
		return nil, notFound(err, "Salary record not found")
	}
	return s.GetSalary(ctx, id)
}

// DeleteSalary removes a salary record.
func (s *FinanceService) DeleteSalary(ctx context.Context, id string) error {
	return notFound(s.financeRepo.DeleteSalary(ctx, id), "Salary record not found")
}

// --- Commissions ---

// CreateCommission records a counsellor's commission. The payable amount is
// always derived from the course fees and percentage.
func (s *FinanceService) CreateCommission(ctx context.Context, req *dto.CreateCommissionRequest, slip *multipart.FileHeader) (*models.Commission, error) {
	if _, err := s.userRepo.GetCounsellorByID(ctx, req.CounsellorID); err != nil {
		return nil, notFound(err, "Counsellor not found")
	}
	if _, err := s.admissionRepo.GetEnquiryByID(ctx, req.EnquiryID); err != nil {
		return nil, notFound(err, "Admission enquiry not found")
	}
	if _, err := s.courseRepo.GetByID(ctx, req.CourseID); err != nil {
		return nil, notFound(err, "Course not found")
	}

	id, err := s.alloc.NextID(ctx, models.CommissionIDSpec)
	if err != nil {
		return nil, err
	}

	com := &models.Commission{
		ID:                   id,
		CounsellorID:         req.CounsellorID,
		EnquiryID:            req.EnquiryID,
		StudentName:          req.StudentName,
		CourseID:             req.CourseID,
		CommissionPercentage: req.CommissionPercentage,
		CourseFees:           req.CourseFees,
		CommissionAmount:     req.CourseFees * req.CommissionPercentage / 100,
		PaymentStatus:        models.PaymentStatusPending,
		MonthYear:            req.MonthYear,
	}

	if slip != nil {
		path, err := s.storage.Save(slip, filestorage.ClassDocument, "commissions", id)
		if err != nil {
			return nil, err
		}
		com.SlipFile = &path
	}

	if err := s.financeRepo.CreateCommission(ctx, com); err != nil {
		discardUpload(s.storage, com.SlipFile)
		return nil, referenceGone(err)
	}
	logger.Info().Str("commissionID", com.ID).Str("counsellorID", com.CounsellorID).Msg("Commission created")
	return com, nil
}

// GetCommission retrieves one commission record.
func (s *FinanceService) GetCommission(ctx context.Context, id string) (*models.Commission, error) {
	com, err := s.financeRepo.GetCommissionByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Commission not found")
	}
	return com, nil
}

// ListCommissions retrieves a page of commissions, optionally for one
// counsellor.
func (s *FinanceService) ListCommissions(ctx context.Context, counsellorID string, offset, limit uint64) ([]*models.Commission, int64, error) {
	return s.financeRepo.ListCommissions(ctx, counsellorID, offset, limit)
}

// UpdateCommission partially updates a commission record, recomputing the
// payable amount when the fees or percentage change.
func (s *FinanceService) UpdateCommission(ctx context.Context, id string, req *dto.UpdateCommissionRequest, slip *multipart.FileHeader) (*models.Commission, error) {
	current, err := s.GetCommission(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.TransactionID != nil {
		fields["transaction_id"] = *req.TransactionID
	}
	if req.PaymentStatus != nil {
		fields["payment_status"] = *req.PaymentStatus
	}
	if req.MonthYear != nil {
		fields["month_year"] = *req.MonthYear
	}

	pct, fees := current.CommissionPercentage, current.CourseFees
	if req.CommissionPercentage != nil {
		pct = *req.CommissionPercentage
		fields["commission_percentage"] = pct
	}
	if req.CourseFees != nil {
		fees = *req.CourseFees
		fields["course_fees"] = fees
	}
	if req.CommissionPercentage != nil || req.CourseFees != nil {
		fields["commission_amount"] = fees * pct / 100
	}

	if slip != nil {
		path, err := s.storage.Save(slip, filestorage.ClassDocument, "commissions", id)
		if err != nil {
			return nil, err
		}
		fields["slip_file"] = path
	}

	if err := s.financeRepo.UpdateCommission(ctx, id, fields); err != nil {
		return nil, notFound(err, "Commission not found")
	}
	return s.GetCommission(ctx, id)
}

// DeleteCommission removes a commission record.
func (s *FinanceService) DeleteCommission(ctx context.Context, id string) error {
	return notFound(s.financeRepo.DeleteCommission(ctx, id), "Commission not found")
}

// referenceGone maps a foreign key failure on insert to a validation error:
// the referenced record was checked but disappeared before the write.
func referenceGone(err error) error {
	if errors.Is(err, repositories.ErrReferenceNotFound) {
		return apperrors.NewValidationError("Referenced record no longer exists")
	}
	return err
}
