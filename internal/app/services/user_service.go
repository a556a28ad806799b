package services

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/vwings/eduadmin/internal/app/models"
	"github.com/vwings/eduadmin/internal/app/models/dto"
	"github.com/vwings/eduadmin/internal/app/repositories"
	"github.com/vwings/eduadmin/internal/pkg/apperrors"
	"github.com/vwings/eduadmin/internal/pkg/auth"
	"github.com/vwings/eduadmin/internal/pkg/filestorage"
	"github.com/vwings/eduadmin/internal/pkg/logger"
)

// UserService manages admin, student, teacher and counsellor accounts.
type UserService struct {
	userRepo   *repositories.UserRepository
	courseRepo *repositories.CourseRepository
	alloc      *repositories.Allocator
	storage    filestorage.FileStorage
}

// NewUserService creates a new UserService.
func NewUserService(userRepo *repositories.UserRepository, courseRepo *repositories.CourseRepository,
	alloc *repositories.Allocator, storage filestorage.FileStorage) *UserService {
	return &UserService{
		userRepo:   userRepo,
		courseRepo: courseRepo,
		alloc:      alloc,
		storage:    storage,
	}
}

// courseExists checks the referenced course before a student points at it.
func (s *UserService) courseExists(ctx context.Context, courseID string) error {
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return &apperrors.CustomError{Err: apperrors.ErrCourseNotFound, Message: "Referenced course " + courseID + " does not exist"}
		}
		return err
	}
	return nil
}

func emailConflict(err error) error {
	if errors.Is(err, repositories.ErrEmailAlreadyExists) {
		return apperrors.NewConflictError("Email is already registered")
	}
	return err
}

// --- Admins ---

// CreateAdmin creates an administrator account.
func (s *UserService) CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest) (*models.Admin, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		FullName: req.FullName,
		Email:    req.Email,
		PhoneNo:  req.PhoneNo,
		Password: hash,
	}
	if err := s.userRepo.CreateAdmin(ctx, admin); err != nil {
		return nil, emailConflict(err)
	}
	admin.Password = ""
	logger.Info().Str("adminID", admin.ID).Msg("Admin created")
	return admin, nil
}

// GetAdmin retrieves one admin.
func (s *UserService) GetAdmin(ctx context.Context, id string) (*models.Admin, error) {
	admin, err := s.userRepo.GetAdminByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Admin not found")
	}
	return admin, nil
}

// ListAdmins retrieves a page of admins.
func (s *UserService) ListAdmins(ctx context.Context, offset, limit uint64) ([]*models.Admin, int64, error) {
	return s.userRepo.ListAdmins(ctx, offset, limit)
}

// UpdateAdmin partially updates an admin.
func (s *UserService) UpdateAdmin(ctx context.Context, id string, req *dto.UpdateAdminRequest) (*models.Admin, error) {
	fields := map[string]interface{}{}
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.PhoneNo != nil {
		fields["phone_no"] = *req.PhoneNo
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		fields["password"] = hash
	}

	if err := s.userRepo.UpdateAdmin(ctx, id, fields); err != nil {
		return nil, emailConflict(notFound(err, "Admin not found"))
	}
	return s.GetAdmin(ctx, id)
}

// DeleteAdmin removes an admin account.
func (s *UserService) DeleteAdmin(ctx context.Context, id string) error {
	return notFound(s.userRepo.DeleteAdmin(ctx, id), "Admin not found")
}

// --- Students ---

// CreateStudent creates a student account. The identifier is reserved before
// the optional profile photo is written, so the upload lands in the
// student's own namespace.
func (s *UserService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest, photo *multipart.FileHeader) (*models.Student, error) {
	if err := s.courseExists(ctx, req.CourseID); err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	id, err := s.alloc.NextID(ctx, models.StudentIDSpec)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		ID:               id,
		FullName:         req.FullName,
		PhoneNo:          req.PhoneNo,
		Email:            req.Email,
		Address:          req.Address,
		GuardianName:     req.GuardianName,
		GuardianMobileNo: req.GuardianMobileNo,
		GuardianEmail:    req.GuardianEmail,
		CourseID:         req.CourseID,
		Interests:        req.Interests,
		Hobbies:          req.Hobbies,
		Password:         hash,
	}

	if photo != nil {
		path, err := s.storage.Save(photo, filestorage.ClassImage, "students", id)
		if err != nil {
			return nil, err
		}
		student.ProfilePhoto = &path
	}

	if err := s.userRepo.CreateStudent(ctx, student); err != nil {
		discardUpload(s.storage, student.ProfilePhoto)
		return nil, emailConflict(err)
	}
	student.Password = ""
	logger.Info().Str("studentID", student.ID).Msg("Student created")
	return student, nil
}

// GetStudent retrieves one student with its course name resolved.
func (s *UserService) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.userRepo.GetStudentByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Student not found")
	}
	return student, nil
}

// ListStudents retrieves a page of students.
func (s *UserService) ListStudents(ctx context.Context, offset, limit uint64) ([]*models.Student, int64, error) {
	return s.userRepo.ListStudents(ctx, offset, limit)
}

// UpdateStudent partially updates a student. A new profile photo replaces
// the stored reference; the previous file stays on disk.
func (s *UserService) UpdateStudent(ctx context.Context, id string, req *dto.UpdateStudentRequest, photo *multipart.FileHeader) (*models.Student, error) {
	fields := map[string]interface{}{}
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.PhoneNo != nil {
		fields["phone_no"] = *req.PhoneNo
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.GuardianName != nil {
		fields["guardian_name"] = *req.GuardianName
	}
	if req.GuardianMobileNo != nil {
		fields["guardian_mobile_no"] = *req.GuardianMobileNo
	}
	if req.GuardianEmail != nil {
		fields["guardian_email"] = *req.GuardianEmail
	}
	if req.CourseID != nil {
		if err := s.courseExists(ctx, *req.CourseID); err != nil {
			return nil, err
		}
		fields["course_id"] = *req.CourseID
	}
	if req.Interests != nil {
		fields["interests"] = req.Interests
	}
	if req.Hobbies != nil {
		fields["hobbies"] = req.Hobbies
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		fields["password"] = hash
	}
	if photo != nil {
		path, err := s.storage.Save(photo, filestorage.ClassImage, "students", id)
		if err != nil {
			return nil, err
		}
		fields["profile_photo"] = path
	}

	if err := s.userRepo.UpdateStudent(ctx, id, fields); err != nil {
		return nil, emailConflict(notFound(err, "Student not found"))
	}
	return s.GetStudent(ctx, id)
}

// DeleteStudent removes a student account.
func (s *UserService) DeleteStudent(ctx context.Context, id string) error {
	return notFound(s.userRepo.DeleteStudent(ctx, id), "Student not found")
}

// BulkDeleteStudents removes several students at once and reports the number
// actually deleted.
func (s *UserService) BulkDeleteStudents(ctx context.Context, ids []string) (int64, error) {
	return s.userRepo.BulkDeleteStudents(ctx, ids)
}

// --- Teachers ---

// coursesExist validates every assigned course identifier.
func (s *UserService) coursesExist(ctx context.Context, courseIDs []string) error {
	for _, courseID := range courseIDs {
		if err := s.courseExists(ctx, courseID); err != nil {
			return err
		}
	}
	return nil
}

// CreateTeacher creates a teacher account.
func (s *UserService) CreateTeacher(ctx context.Context, req *dto.CreateTeacherRequest, photo *multipart.FileHeader) (*models.Teacher, error) {
	if err := s.coursesExist(ctx, req.CoursesAssigned); err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	id, err := s.alloc.NextID(ctx, models.TeacherIDSpec)
	if err != nil {
		return nil, err
	}

	teacher := &models.Teacher{
		ID:              id,
		FullName:        req.FullName,
		PhoneNo:         req.PhoneNo,
		AltPhoneNo:      req.AltPhoneNo,
		Email:           req.Email,
		Address:         req.Address,
		Qualification:   req.Qualification,
		Experience:      req.Experience,
		CoursesAssigned: req.CoursesAssigned,
		BankAccountNo:   req.BankAccountNo,
		BankAccountName: req.BankAccountName,
		BankBranchName:  req.BankBranchName,
		IFSCCode:        req.IFSCCode,
		UPIID:           req.UPIID,
		MonthlySalary:   req.MonthlySalary,
		Password:        hash,
	}

	if photo != nil {
		path, err := s.storage.Save(photo, filestorage.ClassImage, "teachers", id)
		if err != nil {
			return nil, err
		}
		teacher.ProfilePhoto = &path
	}

	if err := s.userRepo.CreateTeacher(ctx, teacher); err != nil {
		discardUpload(s.storage, teacher.ProfilePhoto)
		return nil, emailConflict(err)
	}
	teacher.Password = ""
	logger.Info().Str("teacherID", teacher.ID).Msg("Teacher created")
	return teacher, nil
}

// GetTeacher retrieves one teacher.
func (s *UserService) GetTeacher(ctx context.Context, id string) (*models.Teacher, error) {
	teacher, err := s.userRepo.GetTeacherByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Teacher not found")
	}
	return teacher, nil
}

// ListTeachers retrieves a page of teachers.
func (s *UserService) ListTeachers(ctx context.Context, offset, limit uint64) ([]*models.Teacher, int64, error) {
	return s.userRepo.ListTeachers(ctx, offset, limit)
}

// UpdateTeacher partially updates a teacher.
func (s *UserService) UpdateTeacher(ctx context.Context, id string, req *dto.UpdateTeacherRequest, photo *multipart.FileHeader) (*models.Teacher, error) {
	fields := map[string]interface{}{}
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.PhoneNo != nil {
		fields["phone_no"] = *req.PhoneNo
	}
	if req.AltPhoneNo != nil {
		fields["alt_phone_no"] = *req.AltPhoneNo
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.Qualification != nil {
		fields["qualification"] = *req.Qualification
	}
	if req.Experience != nil {
		fields["experience"] = *req.Experience
	}
	if req.CoursesAssigned != nil {
		if err := s.coursesExist(ctx, req.CoursesAssigned); err != nil {
			return nil, err
		}
		fields["courses_assigned"] = req.CoursesAssigned
	}
	if req.BankAccountNo != nil {
		fields["bank_account_no"] = *req.BankAccountNo
	}
	if req.BankAccountName != nil {
		fields["bank_account_name"] = *req.BankAccountName
	}
	if req.BankBranchName != nil {
		fields["bank_branch_name"] = *req.BankBranchName
	}
	if req.IFSCCode != nil {
		fields["ifsc_code"] = *req.IFSCCode
	}
	if req.UPIID != nil {
		fields["upi_id"] = *req.UPIID
	}
	if req.MonthlySalary != nil {
		fields["monthly_salary"] = *req.MonthlySalary
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		fields["password"] = hash
	}
	if photo != nil {
		path, err := s.storage.Save(photo, filestorage.ClassImage, "teachers", id)
		if err != nil {
			return nil, err
		}
		fields["profile_photo"] = path
	}

	if err := s.userRepo.UpdateTeacher(ctx, id, fields); err != nil {
		return nil, emailConflict(notFound(err, "Teacher not found"))
	}
	return s.GetTeacher(ctx, id)
}

// DeleteTeacher removes a teacher account.
func (s *UserService) DeleteTeacher(ctx context.Context, id string) error {
	return notFound(s.userRepo.DeleteTeacher(ctx, id), "Teacher not found")
}

// BulkDeleteTeachers removes several teachers at once and reports the number
// actually deleted.
func (s *UserService) BulkDeleteTeachers(ctx context.Context, ids []string) (int64, error) {
	return s.userRepo.BulkDeleteTeachers(ctx, ids)
}

// --- Counsellors ---

// CreateCounsellor creates a counsellor account.
func (s *UserService) CreateCounsellor(ctx context.Context, req *dto.CreateCounsellorRequest, photo *multipart.FileHeader) (*models.Counsellor, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	id, err := s.alloc.NextID(ctx, models.CounsellorIDSpec)
	if err != nil {
		return nil, err
	}

	counsellor := &models.Counsellor{
		ID:                   id,
		FullName:             req.FullName,
		PhoneNo:              req.PhoneNo,
		Email:                req.Email,
		Address:              req.Address,
		CommissionPercentage: req.CommissionPercentage,
		Password:             hash,
	}

	if photo != nil {
		path, err := s.storage.Save(photo, filestorage.ClassImage, "counsellors", id)
		if err != nil {
			return nil, err
		}
		counsellor.ProfilePhoto = &path
	}

	if err := s.userRepo.CreateCounsellor(ctx, counsellor); err != nil {
		discardUpload(s.storage, counsellor.ProfilePhoto)
		return nil, emailConflict(err)
	}
	counsellor.Password = ""
	logger.Info().Str("counsellorID", counsellor.ID).Msg("Counsellor created")
	return counsellor, nil
}

// GetCounsellor retrieves one counsellor.
func (s *UserService) GetCounsellor(ctx context.Context, id string) (*models.Counsellor, error) {
	counsellor, err := s.userRepo.GetCounsellorByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Counsellor not found")
	}
	return counsellor, nil
}

// ListCounsellors retrieves a page of counsellors.
func (s *UserService) ListCounsellors(ctx context.Context, offset, limit uint64) ([]*models.Counsellor, int64, error) {
	return s.userRepo.ListCounsellors(ctx, offset, limit)
}

// UpdateCounsellor partially updates a counsellor.
func (s *UserService) UpdateCounsellor(ctx context.Context, id string, req *dto.UpdateCounsellorRequest, photo *multipart.FileHeader) (*models.Counsellor, error) {
	fields := map[string]interface{}{}
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.PhoneNo != nil {
		fields["phone_no"] = *req.PhoneNo
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.CommissionPercentage != nil {
		fields["commission_percentage"] = *req.CommissionPercentage
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		fields["password"] = hash
	}
	if photo != nil {
		path, err := s.storage.Save(photo, filestorage.ClassImage, "counsellors", id)
		if err != nil {
			return nil, err
		}
		fields["profile_photo"] = path
	}

	if err := s.userRepo.UpdateCounsellor(ctx, id, fields); err != nil {
		return nil, emailConflict(notFound(err, "Counsellor not found"))
	}
	return s.GetCounsellor(ctx, id)
}

// DeleteCounsellor removes a counsellor account.
func (s *UserService) DeleteCounsellor(ctx context.Context, id string) error {
	return notFound(s.userRepo.DeleteCounsellor(ctx, id), "Counsellor not found")
}
