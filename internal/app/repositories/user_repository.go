package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vwings/eduadmin/internal/app/models"
	"github.com/vwings/eduadmin/internal/pkg/dberrors"
	"github.com/vwings/eduadmin/internal/pkg/logger"
)

// User error types
var (
	// ErrUserNotFound is returned when no account matches the identifier or email.
	ErrUserNotFound = ErrNotFound
	// ErrEmailAlreadyExists is returned when an email is already registered
	// for the same account type.
	ErrEmailAlreadyExists = errors.New("email already registered")
)

var studentColumns = []string{
	"s.student_id", "s.full_name", "s.phone_no", "s.email", "s.address",
	"s.guardian_name", "s.guardian_mobile_no", "s.guardian_email",
	"s.course_id", "s.interests", "s.hobbies", "s.profile_photo",
	"s.created_at", "s.updated_at", "c.course_name",
}

var teacherColumns = []string{
	"teacher_id", "full_name", "phone_no", "alt_phone_no", "email", "address",
	"qualification", "experience", "courses_assigned", "profile_photo",
	"bank_account_no", "bank_account_name", "bank_branch_name", "ifsc_code",
	"upi_id", "monthly_salary", "created_at", "updated_at",
}

// UserRepository handles admin, student, teacher and counsellor persistence.
type UserRepository struct {
	db    *pgxpool.Pool
	alloc *Allocator
	sb    squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *pgxpool.Pool, alloc *Allocator) *UserRepository {
	return &UserRepository{
		db:    db,
		alloc: alloc,
		sb:    squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// --- Admins ---

// CreateAdmin allocates an identifier and inserts the admin record.
func (r *UserRepository) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	if admin.ID == "" {
		id, err := r.alloc.NextID(ctx, models.AdminIDSpec)
		if err != nil {
			return err
		}
		admin.ID = id
	}

	sql, args, err := r.sb.Insert("admins").
		Columns("admin_id", "full_name", "email", "phone_no", "password").
		Values(admin.ID, admin.FullName, admin.Email, admin.PhoneNo, admin.Password).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create admin query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&admin.CreatedAt, &admin.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create admin query")
		return fmt.Errorf("error creating admin: %w", err)
	}
	return nil
}

// GetAdminByID retrieves an admin by identifier.
func (r *UserRepository) GetAdminByID(ctx context.Context, id string) (*models.Admin, error) {
	sql, args, err := r.sb.Select("admin_id", "full_name", "email", "phone_no", "created_at", "updated_at").
		From("admins").
		Where(squirrel.Eq{"admin_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get admin query: %w", err)
	}

	admin := &models.Admin{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&admin.ID, &admin.FullName, &admin.Email, &admin.PhoneNo,
		&admin.CreatedAt, &admin.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		logger.Error().Err(err).Str("adminID", id).Msg("Error scanning admin row")
		return nil, fmt.Errorf("error getting admin: %w", err)
	}
	return admin, nil
}

// GetAdminByEmail retrieves an admin with its password hash for login.
func (r *UserRepository) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	sql, args, err := r.sb.Select("admin_id", "full_name", "email", "phone_no", "password", "created_at", "updated_at").
		From("admins").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get admin by email query: %w", err)
	}

	admin := &models.Admin{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&admin.ID, &admin.FullName, &admin.Email, &admin.PhoneNo, &admin.Password,
		&admin.CreatedAt, &admin.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error getting admin by email: %w", err)
	}
	return admin, nil
}

// ListAdmins retrieves a page of admins with the total count.
func (r *UserRepository) ListAdmins(ctx context.Context, offset, limit uint64) ([]*models.Admin, int64, error) {
	total, err := r.countRows(ctx, "admins")
	if err != nil {
		return nil, 0, err
	}

	sql, args, err := r.sb.Select("admin_id", "full_name", "email", "phone_no", "created_at", "updated_at").
		From("admins").
		OrderBy("admin_id ASC").
		Offset(offset).
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list admins query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying admins: %w", err)
	}
	defer rows.Close()

	admins := []*models.Admin{}
	for rows.Next() {
		admin := &models.Admin{}
		if err := rows.Scan(&admin.ID, &admin.FullName, &admin.Email, &admin.PhoneNo,
			&admin.CreatedAt, &admin.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("error scanning admin row: %w", err)
		}
		admins = append(admins, admin)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating admin rows: %w", err)
	}
	return admins, total, nil
}

// UpdateAdmin applies the given column values to one admin.
func (r *UserRepository) UpdateAdmin(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.updateByID(ctx, "admins", "admin_id", id, fields)
}

// DeleteAdmin removes an admin by identifier.
func (r *UserRepository) DeleteAdmin(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "admins", "admin_id", id)
}

// --- Students ---

// CreateStudent allocates an identifier and inserts the student record.
func (r *UserRepository) CreateStudent(ctx context.Context, student *models.Student) error {
	if student.ID == "" {
		id, err := r.alloc.NextID(ctx, models.StudentIDSpec)
		if err != nil {
			return err
		}
		student.ID = id
	}

	sql, args, err := r.sb.Insert("students").
		Columns("student_id", "full_name", "phone_no", "email", "address",
			"guardian_name", "guardian_mobile_no", "guardian_email",
			"course_id", "interests", "hobbies", "profile_photo", "password").
		Values(student.ID, student.FullName, student.PhoneNo, student.Email, student.Address,
			student.GuardianName, student.GuardianMobileNo, student.GuardianEmail,
			student.CourseID, student.Interests, student.Hobbies, student.ProfilePhoto, student.Password).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	student := &models.Student{}
	err := row.Scan(
		&student.ID, &student.FullName, &student.PhoneNo, &student.Email, &student.Address,
		&student.GuardianName, &student.GuardianMobileNo, &student.GuardianEmail,
		&student.CourseID, &student.Interests, &student.Hobbies, &student.ProfilePhoto,
		&student.CreatedAt, &student.UpdatedAt, &student.CourseName,
	)
	if err != nil {
		return nil, err
	}
	return student, nil
}

// GetStudentByID retrieves a student with its course name resolved.
func (r *UserRepository) GetStudentByID(ctx context.Context, id string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students s").
		LeftJoin("courses c ON c.course_id = s.course_id").
		Where(squirrel.Eq{"s.student_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		logger.Error().Err(err).Str("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student: %w", err)
	}
	return student, nil
}

// GetStudentByEmail retrieves a student with its password hash for login.
func (r *UserRepository) GetStudentByEmail(ctx context.Context, email string) (*models.Student, error) {
	sql, args, err := r.sb.Select("student_id", "full_name", "phone_no", "email", "address",
		"guardian_name", "guardian_mobile_no", "guardian_email",
		"course_id", "interests", "hobbies", "profile_photo", "password",
		"created_at", "updated_at").
		From("students").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student by email query: %w", err)
	}

	student := &models.Student{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&student.ID, &student.FullName, &student.PhoneNo, &student.Email, &student.Address,
		&student.GuardianName, &student.GuardianMobileNo, &student.GuardianEmail,
		&student.CourseID, &student.Interests, &student.Hobbies, &student.ProfilePhoto,
		&student.Password, &student.CreatedAt, &student.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error getting student by email: %w", err)
	}
	return student, nil
}

// ListStudents retrieves a page of students with course names resolved.
func (r *UserRepository) ListStudents(ctx context.Context, offset, limit uint64) ([]*models.Student, int64, error) {
	total, err := r.countRows(ctx, "students")
	if err != nil {
		return nil, 0, err
	}

	sql, args, err := r.sb.Select(studentColumns...).
		From("students s").
		LeftJoin("courses c ON c.course_id = s.course_id").
		OrderBy("s.student_id ASC").
		Offset(offset).
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating student rows: %w", err)
	}
	return students, total, nil
}

// UpdateStudent applies the given column values to one student.
func (r *UserRepository) UpdateStudent(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.updateByID(ctx, "students", "student_id", id, fields)
}

// DeleteStudent removes a student by identifier.
func (r *UserRepository) DeleteStudent(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "students", "student_id", id)
}

// BulkDeleteStudents removes the given students and reports how many rows
// were actually deleted. Missing identifiers are skipped, not errors.
func (r *UserRepository) BulkDeleteStudents(ctx context.Context, ids []string) (int64, error) {
	return r.bulkDelete(ctx, "students", "student_id", ids)
}

// --- Teachers ---

// CreateTeacher allocates an identifier and inserts the teacher record.
func (r *UserRepository) CreateTeacher(ctx context.Context, teacher *models.Teacher) error {
	if teacher.ID == "" {
		id, err := r.alloc.NextID(ctx, models.TeacherIDSpec)
		if err != nil {
			return err
		}
		teacher.ID = id
	}

	sql, args, err := r.sb.Insert("teachers").
		Columns("teacher_id", "full_name", "phone_no", "alt_phone_no", "email", "address",
			"qualification", "experience", "courses_assigned", "profile_photo",
			"bank_account_no", "bank_account_name", "bank_branch_name", "ifsc_code",
			"upi_id", "monthly_salary", "password").
		Values(teacher.ID, teacher.FullName, teacher.PhoneNo, teacher.AltPhoneNo, teacher.Email, teacher.Address,
			teacher.Qualification, teacher.Experience, teacher.CoursesAssigned, teacher.ProfilePhoto,
			teacher.BankAccountNo, teacher.BankAccountName, teacher.BankBranchName, teacher.IFSCCode,
			teacher.UPIID, teacher.MonthlySalary, teacher.Password).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create teacher query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&teacher.CreatedAt, &teacher.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create teacher query")
		return fmt.Errorf("error creating teacher: %w", err)
	}
	return nil
}

func scanTeacher(row pgx.Row) (*models.Teacher, error) {
	teacher := &models.Teacher{}
	err := row.Scan(
		&teacher.ID, &teacher.FullName, &teacher.PhoneNo, &teacher.AltPhoneNo, &teacher.Email,
		&teacher.Address, &teacher.Qualification, &teacher.Experience, &teacher.CoursesAssigned,
		&teacher.ProfilePhoto, &teacher.BankAccountNo, &teacher.BankAccountName,
		&teacher.BankBranchName, &teacher.IFSCCode, &teacher.UPIID, &teacher.MonthlySalary,
		&teacher.CreatedAt, &teacher.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return teacher, nil
}

// GetTeacherByID retrieves a teacher by identifier.
func (r *UserRepository) GetTeacherByID(ctx context.Context, id string) (*models.Teacher, error) {
	sql, args, err := r.sb.Select(teacherColumns...).
		From("teachers").
		Where(squirrel.Eq{"teacher_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get teacher query: %w", err)
	}

	teacher, err := scanTeacher(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		logger.Error().Err(err).Str("teacherID", id).Msg("Error scanning teacher row")
		return nil, fmt.Errorf("error getting teacher: %w", err)
	}
	return teacher, nil
}

// GetTeacherByEmail retrieves a teacher with its password hash for login.
func (r *UserRepository) GetTeacherByEmail(ctx context.Context, email string) (*models.Teacher, error) {
	columns := append(append([]string{}, teacherColumns...), "password")
	sql, args, err := r.sb.Select(columns...).
		From("teachers").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get teacher by email query: %w", err)
	}

	teacher := &models.Teacher{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&teacher.ID, &teacher.FullName, &teacher.PhoneNo, &teacher.AltPhoneNo, &teacher.Email,
		&teacher.Address, &teacher.Qualification, &teacher.Experience, &teacher.CoursesAssigned,
		&teacher.ProfilePhoto, &teacher.BankAccountNo, &teacher.BankAccountName,
		&teacher.BankBranchName, &teacher.IFSCCode, &teacher.UPIID, &teacher.MonthlySalary,
		&teacher.CreatedAt, &teacher.UpdatedAt, &teacher.Password,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error getting teacher by email: %w", err)
	}
	return teacher, nil
}

// ListTeachers retrieves a page of teachers with the total count.
func (r *UserRepository) ListTeachers(ctx context.Context, offset, limit uint64) ([]*models.Teacher, int64, error) {
	total, err := r.countRows(ctx, "teachers")
	if err != nil {
		return nil, 0, err
	}

	sql, args, err := r.sb.Select(teacherColumns...).
		From("teachers").
		OrderBy("teacher_id ASC").
		Offset(offset).
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list teachers query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying teachers: %w", err)
	}
	defer rows.Close()

	teachers := []*models.Teacher{}
	for rows.Next() {
		teacher, err := scanTeacher(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning teacher row: %w", err)
		}
		teachers = append(teachers, teacher)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating teacher rows: %w", err)
	}
	return teachers, total, nil
}

// UpdateTeacher applies the given column values to one teacher.
func (r *UserRepository) UpdateTeacher(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.updateByID(ctx, "teachers", "teacher_id", id, fields)
}

// DeleteTeacher removes a teacher by identifier.
func (r *UserRepository) DeleteTeacher(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "teachers", "teacher_id", id)
}

// BulkDeleteTeachers removes the given teachers and reports how many rows
// were actually deleted.
func (r *UserRepository) BulkDeleteTeachers(ctx context.Context, ids []string) (int64, error) {
	return r.bulkDelete(ctx, "teachers", "teacher_id", ids)
}

// --- Counsellors ---

// CreateCounsellor allocates an identifier and inserts the counsellor record.
func (r *UserRepository) CreateCounsellor(ctx context.Context, counsellor *models.Counsellor) error {
	if counsellor.ID == "" {
		id, err := r.alloc.NextID(ctx, models.CounsellorIDSpec)
		if err != nil {
			return err
		}
		counsellor.ID = id
	}

	sql, args, err := r.sb.Insert("counsellors").
		Columns("counsellor_id", "full_name", "phone_no", "email", "address",
			"commission_percentage", "profile_photo", "password").
		Values(counsellor.ID, counsellor.FullName, counsellor.PhoneNo, counsellor.Email,
			counsellor.Address, counsellor.CommissionPercentage, counsellor.ProfilePhoto,
			counsellor.Password).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create counsellor query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&counsellor.CreatedAt, &counsellor.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create counsellor query")
		return fmt.Errorf("error creating counsellor: %w", err)
	}
	return nil
}

// GetCounsellorByID retrieves a counsellor by identifier.
func (r *UserRepository) GetCounsellorByID(ctx context.Context, id string) (*models.Counsellor, error) {
	sql, args, err := r.sb.Select("counsellor_id", "full_name", "phone_no", "email", "address",
		"commission_percentage", "profile_photo", "created_at", "updated_at").
		From("counsellors").
		Where(squirrel.Eq{"counsellor_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get counsellor query: %w", err)
	}

	counsellor := &models.Counsellor{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&counsellor.ID, &counsellor.FullName, &counsellor.PhoneNo, &counsellor.Email,
		&counsellor.Address, &counsellor.CommissionPercentage, &counsellor.ProfilePhoto,
		&counsellor.CreatedAt, &counsellor.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		logger.Error().Err(err).Str("counsellorID", id).Msg("Error scanning counsellor row")
		return nil, fmt.Errorf("error getting counsellor: %w", err)
	}
	return counsellor, nil
}

// GetCounsellorByEmail retrieves a counsellor with its password hash for login.
func (r *UserRepository) GetCounsellorByEmail(ctx context.Context, email string) (*models.Counsellor, error) {
	sql, args, err := r.sb.Select("counsellor_id", "full_name", "phone_no", "email", "address",
		"commission_percentage", "profile_photo", "password", "created_at", "updated_at").
		From("counsellors").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get counsellor by email query: %w", err)
	}

	counsellor := &models.Counsellor{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&counsellor.ID, &counsellor.FullName, &counsellor.PhoneNo, &counsellor.Email,
		&counsellor.Address, &counsellor.CommissionPercentage, &counsellor.ProfilePhoto,
		&counsellor.Password, &counsellor.CreatedAt, &counsellor.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error getting counsellor by email: %w", err)
	}
	return counsellor, nil
}

// ListCounsellors retrieves a page of counsellors with the total count.
func (r *UserRepository) ListCounsellors(ctx context.Context, offset, limit uint64) ([]*models.Counsellor, int64, error) {
	total, err := r.countRows(ctx, "counsellors")
	if err != nil {
		return nil, 0, err
	}

	sql, args, err := r.sb.Select("counsellor_id", "full_name", "phone_no", "email", "address",
		"commission_percentage", "profile_photo", "created_at", "updated_at").
		From("counsellors").
		OrderBy("counsellor_id ASC").
		Offset(offset).
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list counsellors query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying counsellors: %w", err)
	}
	defer rows.Close()

	counsellors := []*models.Counsellor{}
	for rows.Next() {
		counsellor := &models.Counsellor{}
		if err := rows.Scan(&counsellor.ID, &counsellor.FullName, &counsellor.PhoneNo,
			&counsellor.Email, &counsellor.Address, &counsellor.CommissionPercentage,
			&counsellor.ProfilePhoto, &counsellor.CreatedAt, &counsellor.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("error scanning counsellor row: %w", err)
		}
		counsellors = append(counsellors, counsellor)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating counsellor rows: %w", err)
	}
	return counsellors, total, nil
}

// UpdateCounsellor applies the given column values to one counsellor.
func (r *UserRepository) UpdateCounsellor(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.updateByID(ctx, "counsellors", "counsellor_id", id, fields)
}

// DeleteCounsellor removes a counsellor by identifier.
func (r *UserRepository) DeleteCounsellor(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "counsellors", "counsellor_id", id)
}

// --- shared helpers ---

func (r *UserRepository) countRows(ctx context.Context, table string) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting %s: %w", table, err)
	}
	return total, nil
}

func (r *UserRepository) updateByID(ctx context.Context, table, idColumn, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	sql, args, err := r.sb.Update(table).
		SetMap(fields).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{idColumn: id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query for %s: %w", table, err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("id", id).Msgf("Error updating %s", table)
		return fmt.Errorf("error updating %s: %w", table, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) deleteByID(ctx context.Context, table, idColumn, id string) error {
	sql, args, err := r.sb.Delete(table).
		Where(squirrel.Eq{idColumn: id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query for %s: %w", table, err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("id", id).Msgf("Error deleting from %s", table)
		return fmt.Errorf("error deleting from %s: %w", table, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) bulkDelete(ctx context.Context, table, idColumn string, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	sql, args, err := r.sb.Delete(table).
		Where(squirrel.Eq{idColumn: ids}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build bulk delete query for %s: %w", table, err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msgf("Error bulk deleting from %s", table)
		return 0, fmt.Errorf("error bulk deleting from %s: %w", table, err)
	}
	return cmdTag.RowsAffected(), nil
}
