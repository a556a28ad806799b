package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vwings/eduadmin/internal/app/models"
	"github.com/vwings/eduadmin/internal/pkg/entityid"
	"github.com/vwings/eduadmin/internal/pkg/logger"
)

// Querier is the subset of pgx operations the repositories need. Both
// *pgxpool.Pool and pgx.Tx satisfy it, so an Allocator can run inside a
// caller's transaction.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// allocateSQL reserves the next sequence value for an entity type in a
// single statement, so concurrent creators never observe the same value.
// Values are never handed back: deleting a record does not free its number.
const allocateSQL = `
INSERT INTO entity_sequences (entity_type, last_value)
VALUES ($1, 1)
ON CONFLICT (entity_type)
DO UPDATE SET last_value = entity_sequences.last_value + 1
RETURNING last_value`

// syncSQL raises a sequence to at least the given value without ever
// lowering it.
const syncSQL = `
INSERT INTO entity_sequences (entity_type, last_value)
VALUES ($1, $2)
ON CONFLICT (entity_type)
DO UPDATE SET last_value = GREATEST(entity_sequences.last_value, EXCLUDED.last_value)`

// Allocator hands out identifiers backed by the entity_sequences table.
type Allocator struct {
	db Querier
}

// NewAllocator creates an Allocator on the given connection or transaction.
func NewAllocator(db Querier) *Allocator {
	return &Allocator{db: db}
}

// NextID reserves and formats the next identifier for the given spec.
func (a *Allocator) NextID(ctx context.Context, spec entityid.Spec) (string, error) {
	var n int64
	if err := a.db.QueryRow(ctx, allocateSQL, spec.Kind).Scan(&n); err != nil {
		logger.Error().Err(err).Str("entityType", spec.Kind).Msg("Error allocating identifier")
		return "", fmt.Errorf("error allocating %s identifier: %w", spec.Kind, err)
	}
	return spec.Format(n), nil
}

// WithQuerier returns an Allocator bound to a different connection, typically
// a transaction, so identifier reservation commits or rolls back with the
// insert that uses it.
func (a *Allocator) WithQuerier(db Querier) *Allocator {
	return &Allocator{db: db}
}

// SyncSequences walks every registered entity table and raises its sequence
// to the highest identifier already present. Run once at startup so the
// allocator never re-issues an identifier that predates the sequence table.
// A stored identifier that does not parse aborts startup: it indicates
// corrupt data that must not be silently skipped.
func SyncSequences(ctx context.Context, db *pgxpool.Pool) error {
	for _, meta := range models.Registry {
		// Length-first ordering makes widened suffixes (STU10000) sort
		// after padded ones (STU9999).
		query := fmt.Sprintf(
			"SELECT %s FROM %s ORDER BY length(%s) DESC, %s DESC LIMIT 1",
			meta.IDColumn, meta.Table, meta.IDColumn, meta.IDColumn,
		)

		var maxID string
		err := db.QueryRow(ctx, query).Scan(&maxID)
		if errors.Is(err, pgx.ErrNoRows) {
			continue
		}
		if err != nil {
			return fmt.Errorf("error reading max %s identifier: %w", meta.Spec.Kind, err)
		}

		n, err := meta.Spec.Parse(maxID)
		if err != nil {
			return fmt.Errorf("sequence sync for %s: %w", meta.Spec.Kind, err)
		}

		if _, err := db.Exec(ctx, syncSQL, meta.Spec.Kind, n); err != nil {
			return fmt.Errorf("error syncing %s sequence: %w", meta.Spec.Kind, err)
		}
		logger.Debug().Str("entityType", meta.Spec.Kind).Int64("lastValue", n).Msg("Sequence synced")
	}
	return nil
}
