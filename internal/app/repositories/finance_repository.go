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

// Finance error types
var (
	// ErrFinanceRecordNotFound is returned when a fee, salary or commission
	// record is not found.
	ErrFinanceRecordNotFound = ErrNotFound
	// ErrReferenceNotFound is returned when the record points at a student,
	// teacher, counsellor or course that does not exist.
	ErrReferenceNotFound = errors.New("referenced record does not exist")
)

var feeColumns = []string{
	"fee_id", "student_id", "course_id", "payment_no", "payment_mode",
	"transaction_id", "total_course_fees", "amount_paid", "amount_due",
	"receipt_file", "created_at", "updated_at",
}

var salaryColumns = []string{
	"salary_id", "teacher_id", "month", "year", "amount", "slip_file",
	"created_at", "updated_at",
}

var commissionColumns = []string{
	"commission_id", "counsellor_id", "enquiry_id", "student_name", "course_id",
	"commission_percentage", "course_fees", "commission_amount", "slip_file",
	"transaction_id", "payment_status", "month_year", "created_at", "updated_at",
}

// FinanceRepository handles fee receipts, salaries and commissions.
type FinanceRepository struct {
	db    *pgxpool.Pool
	alloc *Allocator
	sb    squirrel.StatementBuilderType
}

// NewFinanceRepository creates a new FinanceRepository.
func NewFinanceRepository(db *pgxpool.Pool, alloc *Allocator) *FinanceRepository {
	return &FinanceRepository{
		db:    db,
		alloc: alloc,
		sb:    squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// --- Fees ---

// CreateFee allocates an identifier and inserts the fee receipt.
func (r *FinanceRepository) CreateFee(ctx context.Context, fee *models.FeeReceipt) error {
	if fee.ID == "" {
		id, err := r.alloc.NextID(ctx, models.FeeIDSpec)
		if err != nil {
			return err
		}
		fee.ID = id
	}

	sql, args, err := r.sb.Insert("fees_receipts").
		Columns("fee_id", "student_id", "course_id", "payment_no", "payment_mode",
			"transaction_id", "total_course_fees", "amount_paid", "amount_due", "receipt_file").
		Values(fee.ID, fee.StudentID, fee.CourseID, fee.PaymentNo, fee.PaymentMode,
			fee.TransactionID, fee.TotalCourseFees, fee.AmountPaid, fee.AmountDue, fee.ReceiptFile).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create fee query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&fee.CreatedAt, &fee.UpdatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return ErrReferenceNotFound
		}
		logger.Error().Err(err).Msg("Error executing create fee query")
		return fmt.Errorf("error creating fee receipt: %w", err)
	}
	return nil
}

func scanFee(row pgx.Row) (*models.FeeReceipt, error) {
	fee := &models.FeeReceipt{}
	err := row.Scan(
		&fee.ID, &fee.StudentID, &fee.CourseID, &fee.PaymentNo, &fee.PaymentMode,
		&fee.TransactionID, &fee.TotalCourseFees, &fee.AmountPaid, &fee.AmountDue,
		&fee.ReceiptFile, &fee.CreatedAt, &fee.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return fee, nil
}

// GetFeeByID retrieves a fee receipt by identifier.
func (r *FinanceRepository) GetFeeByID(ctx context.Context, id string) (*models.FeeReceipt, error) {
	sql, args, err := r.sb.Select(feeColumns...).
		From("fees_receipts").
		Where(squirrel.Eq{"fee_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get fee query: %w", err)
	}

	fee, err := scanFee(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFinanceRecordNotFound
		}
		logger.Error().Err(err).Str("feeID", id).Msg("Error scanning fee row")
		return nil, fmt.Errorf("error getting fee receipt: %w", err)
	}
	return fee, nil
}

// ListFees retrieves a page of fee receipts, optionally filtered by student.
func (r *FinanceRepository) ListFees(ctx context.Context, studentID string, offset, limit uint64) ([]*models.FeeReceipt, int64, error) {
	filter := squirrel.Eq{}
	if studentID != "" {
		filter["student_id"] = studentID
	}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("fees_receipts").Where(filter).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count fees query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting fees: %w", err)
	}

	sql, args, err := r.sb.Select(feeColumns...).
		From("fees_receipts").
		Where(filter).
		OrderBy("fee_id ASC").
		Offset(offset).
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list fees query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying fees: %w", err)
	}
	defer rows.Close()

	fees := []*models.FeeReceipt{}
	for rows.Next() {
		fee, err := scanFee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning fee row: %w", err)
		}
		fees = append(fees, fee)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating fee rows: %w", err)
	}
	return fees, total, nil
}

// UpdateFee applies the given column values to one fee receipt.
func (r *FinanceRepository) UpdateFee(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.updateByID(ctx, "fees_receipts", "fee_id", id, fields)
}

// DeleteFee removes a fee receipt by identifier.
func (r *FinanceRepository) DeleteFee(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "fees_receipts", "fee_id", id)
}

// --- Salaries ---

// CreateSalary allocates an identifier and inserts the salary record.
func (r *FinanceRepository) CreateSalary(ctx context.Context, salary *models.Salary) error {
	if salary.ID == "" {
		id, err := r.alloc.NextID(ctx, models.SalaryIDSpec)
		if err != nil {
			return err
		}
		salary.ID = id
	}

	sql, args, err := r.sb.Insert("salaries").
		Columns("salary_id", "teacher_id", "month", "year", "amount", "slip_file").
		Values(salary.ID, salary.TeacherID, salary.Month, salary.Year, salary.Amount, salary.SlipFile).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create salary query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&salary.CreatedAt, &salary.UpdatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return ErrReferenceNotFound
		}
		logger.Error().Err(err).Msg("Error executing create salary query")
		return fmt.Errorf("error creating salary: %w", err)
	}
	return nil
}

func scanSalary(row pgx.Row) (*models.Salary, error) {
	salary := &models.Salary{}
	err := row.Scan(
		&salary.ID, &salary.TeacherID, &salary.Month, &salary.Year,
		&salary.Amount, &salary.SlipFile, &salary.CreatedAt, &salary.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return salary, nil
}

// GetSalaryByID retrieves a salary record by identifier.
func (r *FinanceRepository) GetSalaryByID(ctx context.Context, id string) (*models.Salary, error) {
	sql, args, err := r.sb.Select(salaryColumns...).
		From("salaries").
		Where(squirrel.Eq{"salary_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get salary query: %w", err)
	}

	salary, err := scanSalary(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFinanceRecordNotFound
		}
		logger.Error().Err(err).Str("salaryID", id).Msg("Error scanning salary row")
		return nil, fmt.Errorf("error getting salary: %w", err)
	}
	return salary, nil
}

// ListSalaries retrieves a page of salary records, optionally filtered by
// teacher.
func (r *FinanceRepository) ListSalaries(ctx context.Context, teacherID string, offset, limit uint64) ([]*models.Salary, int64, error) {
	filter := squirrel.Eq{}
	if teacherID != "" {
		filter["teacher_id"] = teacherID
	}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("salaries").Where(filter).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count salaries query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting salaries: %w", err)
	}

	sql, args, err := r.sb.Select(salaryColumns...).
		From("salaries").
		Where(filter).
		OrderBy("year DESC", "month DESC", "salary_id ASC").
		Offset(offset).
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list salaries query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying salaries: %w", err)
	}
	defer rows.Close()

	salaries := []*models.Salary{}
	for rows.Next() {
		salary, err := scanSalary(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning salary row: %w", err)
		}
		salaries = append(salaries, salary)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating salary rows: %w", err)
	}
	return salaries, total, nil
}

// UpdateSalary applies the given column values to one salary record.
func (r *FinanceRepository) UpdateSalary(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.updateByID(ctx, "salaries", "salary_id", id, fields)
}

// DeleteSalary removes a salary record by identifier.
func (r *FinanceRepository) DeleteSalary(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "salaries", "salary_id", id)
}

// --- Commissions ---

// CreateCommission allocates an identifier and inserts the commission record.
func (r *FinanceRepository) CreateCommission(ctx context.Context, com *models.Commission) error {
	if com.ID == "" {
		id, err := r.alloc.NextID(ctx, models.CommissionIDSpec)
		if err != nil {
			return err
		}
		com.ID = id
	}

	sql, args, err := r.sb.Insert("commissions").
		Columns("commission_id", "counsellor_id", "enquiry_id", "student_name", "course_id",
			"commission_percentage", "course_fees", "commission_amount", "slip_file",
			"transaction_id", "payment_status", "month_year").
		Values(com.ID, com.CounsellorID, com.EnquiryID, com.StudentName, com.CourseID,
			com.CommissionPercentage, com.CourseFees, com.CommissionAmount, com.SlipFile,
			com.TransactionID, com.PaymentStatus, com.MonthYear).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create commission query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&com.CreatedAt, &com.UpdatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return ErrReferenceNotFound
		}
		logger.Error().Err(err).Msg("Error executing create commission query")
		return fmt.Errorf("error creating commission: %w", err)
	}
	return nil
}

func scanCommission(row pgx.Row) (*models.Commission, error) {
	com := &models.Commission{}
	err := row.Scan(
		&com.ID, &com.CounsellorID, &com.EnquiryID, &com.StudentName, &com.CourseID,
		&com.CommissionPercentage, &com.CourseFees, &com.CommissionAmount, &com.SlipFile,
		&com.TransactionID, &com.PaymentStatus, &com.MonthYear, &com.CreatedAt, &com.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return com, nil
}

// GetCommissionByID retrieves a commission record by identifier.
func (r *FinanceRepository) GetCommissionByID(ctx context.Context, id string) (*models.Commission, error) {
	sql, args, err := r.sb.Select(commissionColumns...).
		From("commissions").
		Where(squirrel.Eq{"commission_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get commission query: %w", err)
	}

	com, err := scanCommission(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFinanceRecordNotFound
		}
		logger.Error().Err(err).Str("commissionID", id).Msg("Error scanning commission row")
		return nil, fmt.Errorf("error getting commission: %w", err)
	}
	return com, nil
}

// ListCommissions retrieves a page of commission records, optionally filtered
// by counsellor.
func (r *FinanceRepository) ListCommissions(ctx context.Context, counsellorID string, offset, limit uint64) ([]*models.Commission, int64, error) {
	filter := squirrel.Eq{}
	if counsellorID != "" {
		filter["counsellor_id"] = counsellorID
	}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("commissions").Where(filter).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count commissions query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting commissions: %w", err)
	}

	sql, args, err := r.sb.Select(commissionColumns...).
		From("commissions").
		Where(filter).
		OrderBy("month_year DESC", "commission_id ASC").
		Offset(offset).
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list commissions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying commissions: %w", err)
	}
	defer rows.Close()

	commissions := []*models.Commission{}
	for rows.Next() {
		com, err := scanCommission(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning commission row: %w", err)
		}
		commissions = append(commissions, com)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating commission rows: %w", err)
	}
	return commissions, total, nil
}

// UpdateCommission applies the given column values to one commission record.
func (r *FinanceRepository) UpdateCommission(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.updateByID(ctx, "commissions", "commission_id", id, fields)
}

// DeleteCommission removes a commission record by identifier.
func (r *FinanceRepository) DeleteCommission(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "commissions", "commission_id", id)
}

// --- shared helpers ---

func (r *FinanceRepository) updateByID(ctx context.Context, table, idColumn, id string, fields map[string]interface{}) error {
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
		logger.Error().Err(err).Str("id", id).Msgf("Error updating %s", table)
		return fmt.Errorf("error updating %s: %w", table, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrFinanceRecordNotFound
	}
	return nil
}

func (r *FinanceRepository) deleteByID(ctx context.Context, table, idColumn, id string) error {
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
		return ErrFinanceRecordNotFound
	}
	return nil
}
