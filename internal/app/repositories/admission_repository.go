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

// Admission error types
var (
	// ErrAdmissionCodeNotFound is returned when a referral code is not found.
	ErrAdmissionCodeNotFound = ErrNotFound
	// ErrEnquiryNotFound is returned when an enquiry is not found.
	ErrEnquiryNotFound = ErrNotFound
	// ErrCodeAlreadyExists is returned when a referral code string is taken.
	ErrCodeAlreadyExists = errors.New("admission code already exists")
)

var enquiryColumns = []string{
	"enquiry_id", "counsellor_id", "student_name", "student_phone_no",
	"student_alt_phone_no", "student_email", "student_address",
	"guardian_name", "guardian_phone_no", "fit_medically",
	"meets_height_requirements", "meets_weight_requirements",
	"meets_vision_standards", "admission_code", "course_id", "status",
	"created_at", "updated_at",
}

// AdmissionRepository handles referral codes and admission enquiries.
type AdmissionRepository struct {
	db    *pgxpool.Pool
	alloc *Allocator
	sb    squirrel.StatementBuilderType
}

// NewAdmissionRepository creates a new AdmissionRepository.
func NewAdmissionRepository(db *pgxpool.Pool, alloc *Allocator) *AdmissionRepository {
	return &AdmissionRepository{
		db:    db,
		alloc: alloc,
		sb:    squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// --- Admission codes ---

// CreateCode allocates an identifier and inserts the referral code.
func (r *AdmissionRepository) CreateCode(ctx context.Context, code *models.AdmissionCode) error {
	if code.ID == "" {
		id, err := r.alloc.NextID(ctx, models.AdmissionCodeIDSpec)
		if err != nil {
			return err
		}
		code.ID = id
	}

	sql, args, err := r.sb.Insert("admission_codes").
		Columns("admission_code_id", "code", "description", "active").
		Values(code.ID, code.Code, code.Description, code.Active).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create admission code query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&code.CreatedAt, &code.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return ErrCodeAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create admission code query")
		return fmt.Errorf("error creating admission code: %w", err)
	}
	return nil
}

func scanCode(row pgx.Row) (*models.AdmissionCode, error) {
	code := &models.AdmissionCode{}
	err := row.Scan(
		&code.ID, &code.Code, &code.Description, &code.Active,
		&code.CreatedAt, &code.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return code, nil
}

// GetCodeByID retrieves a referral code by identifier.
func (r *AdmissionRepository) GetCodeByID(ctx context.Context, id string) (*models.AdmissionCode, error) {
	sql, args, err := r.sb.Select("admission_code_id", "code", "description", "active", "created_at", "updated_at").
		From("admission_codes").
		Where(squirrel.Eq{"admission_code_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get admission code query: %w", err)
	}

	code, err := scanCode(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdmissionCodeNotFound
		}
		logger.Error().Err(err).Str("codeID", id).Msg("Error scanning admission code row")
		return nil, fmt.Errorf("error getting admission code: %w", err)
	}
	return code, nil
}

// GetCodeByValue retrieves a referral code by its code string, used to
// validate incoming enquiries.
func (r *AdmissionRepository) GetCodeByValue(ctx context.Context, value string) (*models.AdmissionCode, error) {
	sql, args, err := r.sb.Select("admission_code_id", "code", "description", "active", "created_at", "updated_at").
		From("admission_codes").
		Where(squirrel.Eq{"code": value}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get admission code by value query: %w", err)
	}

	code, err := scanCode(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdmissionCodeNotFound
		}
		return nil, fmt.Errorf("error getting admission code by value: %w", err)
	}
	return code, nil
}

// ListCodes retrieves a page of referral codes with the total count.
func (r *AdmissionRepository) ListCodes(ctx context.Context, offset, limit uint64) ([]*models.AdmissionCode, int64, error) {
	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("admission_codes").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count admission codes query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting admission codes: %w", err)
	}

	sql, args, err := r.sb.Select("admission_code_id", "code", "description", "active", "created_at", "updated_at").
		From("admission_codes").
		OrderBy("admission_code_id ASC").
		Offset(offset).
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list admission codes query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying admission codes: %w", err)
	}
	defer rows.Close()

	codes := []*models.AdmissionCode{}
	for rows.Next() {
		code, err := scanCode(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning admission code row: %w", err)
		}
		codes = append(codes, code)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating admission code rows: %w", err)
	}
	return codes, total, nil
}

// UpdateCode applies the given column values to one referral code.
func (r *AdmissionRepository) UpdateCode(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	sql, args, err := r.sb.Update("admission_codes").
		SetMap(fields).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"admission_code_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update admission code query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return ErrCodeAlreadyExists
		}
		logger.Error().Err(err).Str("codeID", id).Msg("Error executing update admission code query")
		return fmt.Errorf("error updating admission code: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrAdmissionCodeNotFound
	}
	return nil
}

// DeleteCode removes a referral code by identifier.
func (r *AdmissionRepository) DeleteCode(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("admission_codes").
		Where(squirrel.Eq{"admission_code_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete admission code query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("codeID", id).Msg("Error executing delete admission code query")
		return fmt.Errorf("error deleting admission code: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrAdmissionCodeNotFound
	}
	return nil
}

// --- Enquiries ---

// CreateEnquiry allocates an identifier and inserts the enquiry.
func (r *AdmissionRepository) CreateEnquiry(ctx context.Context, enq *models.AdmissionEnquiry) error {
	if enq.ID == "" {
		id, err := r.alloc.NextID(ctx, models.AdmissionEnquiryIDSpec)
		if err != nil {
			return err
		}
		enq.ID = id
	}

	sql, args, err := r.sb.Insert("admission_enquiries").
		Columns("enquiry_id", "counsellor_id", "student_name", "student_phone_no",
			"student_alt_phone_no", "student_email", "student_address",
			"guardian_name", "guardian_phone_no", "fit_medically",
			"meets_height_requirements", "meets_weight_requirements",
			"meets_vision_standards", "admission_code", "course_id", "status").
		Values(enq.ID, enq.CounsellorID, enq.StudentName, enq.StudentPhoneNo,
			enq.StudentAltPhoneNo, enq.StudentEmail, enq.StudentAddress,
			enq.GuardianName, enq.GuardianPhoneNo, enq.FitMedically,
			enq.MeetsHeightReq, enq.MeetsWeightReq,
			enq.MeetsVisionStd, enq.AdmissionCode, enq.CourseID, enq.Status).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create enquiry query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&enq.CreatedAt, &enq.UpdatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return ErrReferenceNotFound
		}
		logger.Error().Err(err).Msg("Error executing create enquiry query")
		return fmt.Errorf("error creating enquiry: %w", err)
	}
	return nil
}

func scanEnquiry(row pgx.Row) (*models.AdmissionEnquiry, error) {
	enq := &models.AdmissionEnquiry{}
	err := row.Scan(
		&enq.ID, &enq.CounsellorID, &enq.StudentName, &enq.StudentPhoneNo,
		&enq.StudentAltPhoneNo, &enq.StudentEmail, &enq.StudentAddress,
		&enq.GuardianName, &enq.GuardianPhoneNo, &enq.FitMedically,
		&enq.MeetsHeightReq, &enq.MeetsWeightReq, &enq.MeetsVisionStd,
		&enq.AdmissionCode, &enq.CourseID, &enq.Status,
		&enq.CreatedAt, &enq.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return enq, nil
}

// GetEnquiryByID retrieves an enquiry by identifier.
func (r *AdmissionRepository) GetEnquiryByID(ctx context.Context, id string) (*models.AdmissionEnquiry, error) {
	sql, args, err := r.sb.Select(enquiryColumns...).
		From("admission_enquiries").
		Where(squirrel.Eq{"enquiry_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get enquiry query: %w", err)
	}

	enq, err := scanEnquiry(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEnquiryNotFound
		}
		logger.Error().Err(err).Str("enquiryID", id).Msg("Error scanning enquiry row")
		return nil, fmt.Errorf("error getting enquiry: %w", err)
	}
	return enq, nil
}

// ListEnquiries retrieves a page of enquiries, optionally filtered by
// counsellor and/or status.
func (r *AdmissionRepository) ListEnquiries(ctx context.Context, counsellorID, status string, offset, limit uint64) ([]*models.AdmissionEnquiry, int64, error) {
	filter := squirrel.Eq{}
	if counsellorID != "" {
		filter["counsellor_id"] = counsellorID
	}
	if status != "" {
		filter["status"] = status
	}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("admission_enquiries").Where(filter).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count enquiries query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting enquiries: %w", err)
	}

	sql, args, err := r.sb.Select(enquiryColumns...).
		From("admission_enquiries").
		Where(filter).
		OrderBy("enquiry_id ASC").
		Offset(offset).
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list enquiries query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying enquiries: %w", err)
	}
	defer rows.Close()

	enquiries := []*models.AdmissionEnquiry{}
	for rows.Next() {
		enq, err := scanEnquiry(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning enquiry row: %w", err)
		}
		enquiries = append(enquiries, enq)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating enquiry rows: %w", err)
	}
	return enquiries, total, nil
}

// UpdateEnquiry applies the given column values to one enquiry.
func (r *AdmissionRepository) UpdateEnquiry(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	sql, args, err := r.sb.Update("admission_enquiries").
		SetMap(fields).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"enquiry_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update enquiry query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("enquiryID", id).Msg("Error executing update enquiry query")
		return fmt.Errorf("error updating enquiry: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrEnquiryNotFound
	}
	return nil
}

// DeleteEnquiry removes an enquiry by identifier.
func (r *AdmissionRepository) DeleteEnquiry(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("admission_enquiries").
		Where(squirrel.Eq{"enquiry_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete enquiry query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("enquiryID", id).Msg("Error executing delete enquiry query")
		return fmt.Errorf("error deleting enquiry: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrEnquiryNotFound
	}
	return nil
}
