package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vwings/eduadmin/internal/app/models"
	"github.com/vwings/eduadmin/internal/pkg/logger"
)

// Classroom error types
var (
	// ErrClassroomNotFound is returned when a classroom is not found.
	ErrClassroomNotFound = ErrNotFound
	// ErrAlreadyMember is returned when adding a user already on the list.
	ErrAlreadyMember = errors.New("user is already on this classroom list")
)

var classroomColumns = []string{
	"classroom_id", "class_name", "class_description", "class_photo",
	"members", "admins", "created_at", "updated_at",
}

// ClassroomRepository handles classroom persistence, including the member
// and admin lists stored as text arrays.
type ClassroomRepository struct {
	db    *pgxpool.Pool
	alloc *Allocator
	sb    squirrel.StatementBuilderType
}

// NewClassroomRepository creates a new ClassroomRepository.
func NewClassroomRepository(db *pgxpool.Pool, alloc *Allocator) *ClassroomRepository {
	return &ClassroomRepository{
		db:    db,
		alloc: alloc,
		sb:    squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create allocates an identifier and inserts the classroom with empty lists.
func (r *ClassroomRepository) Create(ctx context.Context, classroom *models.Classroom) error {
	if classroom.ID == "" {
		id, err := r.alloc.NextID(ctx, models.ClassroomIDSpec)
		if err != nil {
			return err
		}
		classroom.ID = id
	}
	if classroom.Members == nil {
		classroom.Members = []string{}
	}
	if classroom.Admins == nil {
		classroom.Admins = []string{}
	}

	sql, args, err := r.sb.Insert("classrooms").
		Columns("classroom_id", "class_name", "class_description", "class_photo", "members", "admins").
		Values(classroom.ID, classroom.Name, classroom.Description, classroom.Photo,
			classroom.Members, classroom.Admins).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create classroom query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&classroom.CreatedAt, &classroom.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create classroom query")
		return fmt.Errorf("error creating classroom: %w", err)
	}
	return nil
}

func scanClassroom(row pgx.Row) (*models.Classroom, error) {
	classroom := &models.Classroom{}
	err := row.Scan(
		&classroom.ID, &classroom.Name, &classroom.Description, &classroom.Photo,
		&classroom.Members, &classroom.Admins, &classroom.CreatedAt, &classroom.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return classroom, nil
}

// GetByID retrieves a classroom by identifier.
func (r *ClassroomRepository) GetByID(ctx context.Context, id string) (*models.Classroom, error) {
	sql, args, err := r.sb.Select(classroomColumns...).
		From("classrooms").
		Where(squirrel.Eq{"classroom_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get classroom query: %w", err)
	}

	classroom, err := scanClassroom(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClassroomNotFound
		}
		logger.Error().Err(err).Str("classroomID", id).Msg("Error scanning classroom row")
		return nil, fmt.Errorf("error getting classroom: %w", err)
	}
	return classroom, nil
}

// List retrieves a page of classrooms with the total count.
func (r *ClassroomRepository) List(ctx context.Context, offset, limit uint64) ([]*models.Classroom, int64, error) {
	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("classrooms").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count classrooms query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting classrooms: %w", err)
	}

	sql, args, err := r.sb.Select(classroomColumns...).
		From("classrooms").
		OrderBy("classroom_id ASC").
		Offset(offset).
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list classrooms query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying classrooms: %w", err)
	}
	defer rows.Close()

	classrooms := []*models.Classroom{}
	for rows.Next() {
		classroom, err := scanClassroom(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning classroom row: %w", err)
		}
		classrooms = append(classrooms, classroom)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating classroom rows: %w", err)
	}
	return classrooms, total, nil
}

// Update applies the given column values to one classroom.
func (r *ClassroomRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	sql, args, err := r.sb.Update("classrooms").
		SetMap(fields).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"classroom_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update classroom query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("classroomID", id).Msg("Error executing update classroom query")
		return fmt.Errorf("error updating classroom: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrClassroomNotFound
	}
	return nil
}

// Delete removes a classroom and, through the foreign key cascade, its chat
// history.
func (r *ClassroomRepository) Delete(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("classrooms").
		Where(squirrel.Eq{"classroom_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete classroom query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("classroomID", id).Msg("Error executing delete classroom query")
		return fmt.Errorf("error deleting classroom: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrClassroomNotFound
	}
	return nil
}

// AddToList appends a user to the named list column ("members" or "admins")
// unless they are already on it.
func (r *ClassroomRepository) AddToList(ctx context.Context, classroomID, listColumn, userID string) error {
	query := fmt.Sprintf(`
		UPDATE classrooms
		SET %s = array_append(%s, $2), updated_at = NOW()
		WHERE classroom_id = $1 AND NOT ($2 = ANY(%s))`,
		listColumn, listColumn, listColumn)

	cmdTag, err := r.db.Exec(ctx, query, classroomID, userID)
	if err != nil {
		logger.Error().Err(err).Str("classroomID", classroomID).Str("userID", userID).
			Msgf("Error adding to classroom %s", listColumn)
		return fmt.Errorf("error adding to classroom %s: %w", listColumn, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Either the classroom is missing or the user is already listed.
		if _, err := r.GetByID(ctx, classroomID); err != nil {
			return err
		}
		return ErrAlreadyMember
	}
	return nil
}

// RemoveFromList removes a user from the named list column. Removing a user
// who is not on the list is a no-op.
func (r *ClassroomRepository) RemoveFromList(ctx context.Context, classroomID, listColumn, userID string) error {
	query := fmt.Sprintf(`
		UPDATE classrooms
		SET %s = array_remove(%s, $2), updated_at = NOW()
		WHERE classroom_id = $1`,
		listColumn, listColumn)

	cmdTag, err := r.db.Exec(ctx, query, classroomID, userID)
	if err != nil {
		logger.Error().Err(err).Str("classroomID", classroomID).Str("userID", userID).
			Msgf("Error removing from classroom %s", listColumn)
		return fmt.Errorf("error removing from classroom %s: %w", listColumn, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrClassroomNotFound
	}
	return nil
}
