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

// Course error types
var (
	// ErrCourseNotFound is returned when a course is not found.
	ErrCourseNotFound = ErrNotFound
	// ErrCourseCodeExists is returned when a course code is already taken.
	ErrCourseCodeExists = errors.New("course with this code already exists")
	// ErrCourseHasStudents is returned when deleting a course that still has
	// enrolled students.
	ErrCourseHasStudents = errors.New("course has enrolled students and cannot be deleted")
)

var courseColumns = []string{
	"course_id", "course_name", "course_code", "course_description",
	"weight_requirements", "height_requirements", "vision_standards",
	"medical_requirements", "min_qualification", "age_criteria", "fees",
	"internship_included", "installment_available", "installment_policy",
	"course_photo", "course_video", "created_at", "updated_at",
}

// CourseRepository handles course catalog persistence.
type CourseRepository struct {
	db    *pgxpool.Pool
	alloc *Allocator
	sb    squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(db *pgxpool.Pool, alloc *Allocator) *CourseRepository {
	return &CourseRepository{
		db:    db,
		alloc: alloc,
		sb:    squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create allocates an identifier and inserts the course.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	if course.ID == "" {
		id, err := r.alloc.NextID(ctx, models.CourseIDSpec)
		if err != nil {
			return err
		}
		course.ID = id
	}

	sql, args, err := r.sb.Insert("courses").
		Columns("course_id", "course_name", "course_code", "course_description",
			"weight_requirements", "height_requirements", "vision_standards",
			"medical_requirements", "min_qualification", "age_criteria", "fees",
			"internship_included", "installment_available", "installment_policy",
			"course_photo", "course_video").
		Values(course.ID, course.Name, course.Code, course.Description,
			course.WeightRequirements, course.HeightRequirements, course.VisionStandards,
			course.MedicalRequirements, course.MinQualification, course.AgeCriteria, course.Fees,
			course.InternshipIncluded, course.InstallmentAvailable, course.InstallmentPolicy,
			course.Photo, course.Video).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return ErrCourseCodeExists
		}
		logger.Error().Err(err).Msg("Error executing create course query")
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	course := &models.Course{}
	err := row.Scan(
		&course.ID, &course.Name, &course.Code, &course.Description,
		&course.WeightRequirements, &course.HeightRequirements, &course.VisionStandards,
		&course.MedicalRequirements, &course.MinQualification, &course.AgeCriteria, &course.Fees,
		&course.InternshipIncluded, &course.InstallmentAvailable, &course.InstallmentPolicy,
		&course.Photo, &course.Video, &course.CreatedAt, &course.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return course, nil
}

// GetByID retrieves a course by identifier.
func (r *CourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	sql, args, err := r.sb.Select(courseColumns...).
		From("courses").
		Where(squirrel.Eq{"course_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		logger.Error().Err(err).Str("courseID", id).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course: %w", err)
	}
	return course, nil
}

// List retrieves a page of courses with the total count.
func (r *CourseRepository) List(ctx context.Context, offset, limit uint64) ([]*models.Course, int64, error) {
	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("courses").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count courses query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting courses: %w", err)
	}

	sql, args, err := r.sb.Select(courseColumns...).
		From("courses").
		OrderBy("course_id ASC").
		Offset(offset).
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating course rows: %w", err)
	}
	return courses, total, nil
}

// Update applies the given column values to one course.
func (r *CourseRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	sql, args, err := r.sb.Update("courses").
		SetMap(fields).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"course_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return ErrCourseCodeExists
		}
		logger.Error().Err(err).Str("courseID", id).Msg("Error executing update course query")
		return fmt.Errorf("error updating course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrCourseNotFound
	}
	return nil
}

// Delete removes a course. Courses referenced by students are protected by
// the foreign key and reported as ErrCourseHasStudents.
func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("courses").
		Where(squirrel.Eq{"course_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return ErrCourseHasStudents
		}
		logger.Error().Err(err).Str("courseID", id).Msg("Error executing delete course query")
		return fmt.Errorf("error deleting course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrCourseNotFound
	}
	return nil
}
