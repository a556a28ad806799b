package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vwings/eduadmin/internal/app/models"
	"github.com/vwings/eduadmin/internal/db"
	"github.com/vwings/eduadmin/internal/pkg/dberrors"
	"github.com/vwings/eduadmin/internal/pkg/logger"
)

// Chat error types
var (
	// ErrMessageNotFound is returned when a chat message is not found.
	ErrMessageNotFound = ErrNotFound
)

// senderNameExpr resolves the display name of a sender from whichever user
// table their role points at.
const senderNameExpr = `
	CASE m.sender_role
		WHEN 'student' THEN (SELECT full_name FROM students WHERE student_id = m.sender_id)
		WHEN 'teacher' THEN (SELECT full_name FROM teachers WHERE teacher_id = m.sender_id)
		WHEN 'admin' THEN (SELECT full_name FROM admins WHERE admin_id = m.sender_id)
	END AS sender_name`

// ChatRepository handles classroom chat message persistence.
type ChatRepository struct {
	db    *pgxpool.Pool
	alloc *Allocator
	sb    squirrel.StatementBuilderType
}

// NewChatRepository creates a new ChatRepository.
func NewChatRepository(db *pgxpool.Pool, alloc *Allocator) *ChatRepository {
	return &ChatRepository{
		db:    db,
		alloc: alloc,
		sb:    squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create allocates a message identifier and stores the message. Allocation
// and insert run in one transaction so a rejected insert does not burn the
// sequence number. The classroom foreign key rejects messages to deleted
// classrooms.
func (r *ChatRepository) Create(ctx context.Context, msg *models.ChatMessage) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if msg.ID == "" {
			id, err := r.alloc.WithQuerier(tx).NextID(ctx, models.ChatMessageIDSpec)
			if err != nil {
				return err
			}
			msg.ID = id
		}

		sql, args, err := r.sb.Insert("classroom_chat_messages").
			Columns("message_id", "classroom_id", "sender_id", "sender_role", "content").
			Values(msg.ID, msg.ClassroomID, msg.SenderID, msg.SenderRole, msg.Content).
			Suffix("RETURNING sent_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create message query: %w", err)
		}

		if err := tx.QueryRow(ctx, sql, args...).Scan(&msg.SentAt); err != nil {
			if dberrors.IsForeignKeyViolation(err) {
				return ErrClassroomNotFound
			}
			logger.Error().Err(err).Str("classroomID", msg.ClassroomID).Msg("Error storing chat message")
			return fmt.Errorf("error storing chat message: %w", err)
		}
		return nil
	})
}

func scanMessage(row pgx.Row) (*models.ChatMessage, error) {
	msg := &models.ChatMessage{}
	err := row.Scan(
		&msg.ID, &msg.ClassroomID, &msg.SenderID, &msg.SenderRole,
		&msg.Content, &msg.SentAt, &msg.SenderName,
	)
	if err != nil {
		return nil, err
	}
	return msg, nil
}

// ListByClassroom retrieves a page of a classroom's messages, oldest first,
// with sender names resolved.
func (r *ChatRepository) ListByClassroom(ctx context.Context, classroomID string, offset, limit uint64) ([]*models.ChatMessage, int64, error) {
	countSQL, countArgs, err := r.sb.Select("COUNT(*)").
		From("classroom_chat_messages").
		Where(squirrel.Eq{"classroom_id": classroomID}).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count messages query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting messages: %w", err)
	}

	sql, args, err := r.sb.Select("m.message_id", "m.classroom_id", "m.sender_id",
		"m.sender_role", "m.content", "m.sent_at", senderNameExpr).
		From("classroom_chat_messages m").
		Where(squirrel.Eq{"m.classroom_id": classroomID}).
		OrderBy("m.sent_at ASC", "m.message_id ASC").
		Offset(offset).
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list messages query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying messages: %w", err)
	}
	defer rows.Close()

	messages := []*models.ChatMessage{}
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning message row: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating message rows: %w", err)
	}
	return messages, total, nil
}

// GetRecent retrieves the latest n messages of a classroom in chronological
// order, for replay to a freshly connected chat client.
func (r *ChatRepository) GetRecent(ctx context.Context, classroomID string, n uint64) ([]*models.ChatMessage, error) {
	inner := fmt.Sprintf(`(
		SELECT m.message_id, m.classroom_id, m.sender_id, m.sender_role, m.content, m.sent_at, %s
		FROM classroom_chat_messages m
		WHERE m.classroom_id = $1
		ORDER BY m.sent_at DESC, m.message_id DESC
		LIMIT $2
	) latest`, "NULL::text AS sender_name")

	query := fmt.Sprintf("SELECT * FROM %s ORDER BY sent_at ASC, message_id ASC", inner)
	rows, err := r.db.Query(ctx, query, classroomID, n)
	if err != nil {
		logger.Error().Err(err).Str("classroomID", classroomID).Msg("Error querying recent messages")
		return nil, fmt.Errorf("error querying recent messages: %w", err)
	}
	defer rows.Close()

	messages := []*models.ChatMessage{}
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning recent message row: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recent message rows: %w", err)
	}
	return messages, nil
}

// Delete removes a single chat message.
func (r *ChatRepository) Delete(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("classroom_chat_messages").
		Where(squirrel.Eq{"message_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete message query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("messageID", id).Msg("Error deleting chat message")
		return fmt.Errorf("error deleting chat message: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrMessageNotFound
	}
	return nil
}
