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

// Content error types
var (
	// ErrContentNotFound is returned when an announcement, advertisement,
	// about-us section or help query is not found.
	ErrContentNotFound = ErrNotFound
)

// ContentRepository handles announcements, advertisements, about-us sections
// and help-center queries.
type ContentRepository struct {
	db    *pgxpool.Pool
	alloc *Allocator
	sb    squirrel.StatementBuilderType
}

// NewContentRepository creates a new ContentRepository.
func NewContentRepository(db *pgxpool.Pool, alloc *Allocator) *ContentRepository {
	return &ContentRepository{
		db:    db,
		alloc: alloc,
		sb:    squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *ContentRepository) count(ctx context.Context, table string) (int64, error) {
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

func (r *ContentRepository) updateByID(ctx context.Context, table, idColumn, id string, fields map[string]interface{}) error {
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
		return ErrContentNotFound
	}
	return nil
}

func (r *ContentRepository) deleteByID(ctx context.Context, table, idColumn, id string) error {
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
		return ErrContentNotFound
	}
	return nil
}

// --- Announcements ---

// CreateAnnouncement allocates an identifier and inserts the announcement.
func (r *ContentRepository) CreateAnnouncement(ctx context.Context, ann *models.Announcement) error {
	if ann.ID == "" {
		id, err := r.alloc.NextID(ctx, models.AnnouncementIDSpec)
		if err != nil {
			return err
		}
		ann.ID = id
	}

	sql, args, err := r.sb.Insert("announcements").
		Columns("announcement_id", "headline", "description", "active").
		Values(ann.ID, ann.Headline, ann.Description, ann.Active).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create announcement query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&ann.CreatedAt, &ann.UpdatedAt); err != nil {
		logger.Error().Err(err).Msg("Error executing create announcement query")
		return fmt.Errorf("error creating announcement: %w", err)
	}
	return nil
}

// GetAnnouncementByID retrieves an announcement by identifier.
func (r *ContentRepository) GetAnnouncementByID(ctx context.Context, id string) (*models.Announcement, error) {
	sql, args, err := r.sb.Select("announcement_id", "headline", "description", "active", "created_at", "updated_at").
		From("announcements").
		Where(squirrel.Eq{"announcement_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get announcement query: %w", err)
	}

	ann := &models.Announcement{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&ann.ID, &ann.Headline, &ann.Description, &ann.Active, &ann.CreatedAt, &ann.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrContentNotFound
		}
		return nil, fmt.Errorf("error getting announcement: %w", err)
	}
	return ann, nil
}

// ListAnnouncements retrieves a page of announcements, newest first.
func (r *ContentRepository) ListAnnouncements(ctx context.Context, offset, limit uint64) ([]*models.Announcement, int64, error) {
	total, err := r.count(ctx, "announcements")
	if err != nil {
		return nil, 0, err
	}

	sql, args, err := r.sb.Select("announcement_id", "headline", "description", "active", "created_at", "updated_at").
		From("announcements").
		OrderBy("created_at DESC", "announcement_id DESC").
		Offset(offset).
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list announcements query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying announcements: %w", err)
	}
	defer rows.Close()

	announcements := []*models.Announcement{}
	for rows.Next() {
		ann := &models.Announcement{}
		if err := rows.Scan(&ann.ID, &ann.Headline, &ann.Description, &ann.Active,
			&ann.CreatedAt, &ann.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("error scanning announcement row: %w", err)
		}
		announcements = append(announcements, ann)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating announcement rows: %w", err)
	}
	return announcements, total, nil
}

// UpdateAnnouncement applies the given column values to one announcement.
func (r *ContentRepository) UpdateAnnouncement(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.updateByID(ctx, "announcements", "announcement_id", id, fields)
}

// DeleteAnnouncement removes an announcement by identifier.
func (r *ContentRepository) DeleteAnnouncement(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "announcements", "announcement_id", id)
}

// --- Advertisements ---

var advertisementColumns = []string{
	"advertisement_id", "title", "description", "banner", "active",
	"starts_on", "ends_on", "created_at", "updated_at",
}

// CreateAdvertisement allocates an identifier and inserts the advertisement.
func (r *ContentRepository) CreateAdvertisement(ctx context.Context, ad *models.Advertisement) error {
	if ad.ID == "" {
		id, err := r.alloc.NextID(ctx, models.AdvertisementIDSpec)
		if err != nil {
			return err
		}
		ad.ID = id
	}

	sql, args, err := r.sb.Insert("advertisements").
		Columns("advertisement_id", "title", "description", "banner", "active", "starts_on", "ends_on").
		Values(ad.ID, ad.Title, ad.Description, ad.Banner, ad.Active, ad.StartsOn, ad.EndsOn).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create advertisement query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&ad.CreatedAt, &ad.UpdatedAt); err != nil {
		logger.Error().Err(err).Msg("Error executing create advertisement query")
		return fmt.Errorf("error creating advertisement: %w", err)
	}
	return nil
}

func scanAdvertisement(row pgx.Row) (*models.Advertisement, error) {
	ad := &models.Advertisement{}
	err := row.Scan(
		&ad.ID, &ad.Title, &ad.Description, &ad.Banner, &ad.Active,
		&ad.StartsOn, &ad.EndsOn, &ad.CreatedAt, &ad.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return ad, nil
}

// GetAdvertisementByID retrieves an advertisement by identifier.
func (r *ContentRepository) GetAdvertisementByID(ctx context.Context, id string) (*models.Advertisement, error) {
	sql, args, err := r.sb.Select(advertisementColumns...).
		From("advertisements").
		Where(squirrel.Eq{"advertisement_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get advertisement query: %w", err)
	}

	ad, err := scanAdvertisement(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrContentNotFound
		}
		return nil, fmt.Errorf("error getting advertisement: %w", err)
	}
	return ad, nil
}

// ListAdvertisements retrieves a page of advertisements, newest first.
func (r *ContentRepository) ListAdvertisements(ctx context.Context, offset, limit uint64) ([]*models.Advertisement, int64, error) {
	total, err := r.count(ctx, "advertisements")
	if err != nil {
		return nil, 0, err
	}

	sql, args, err := r.sb.Select(advertisementColumns...).
		From("advertisements").
		OrderBy("created_at DESC", "advertisement_id DESC").
		Offset(offset).
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list advertisements query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying advertisements: %w", err)
	}
	defer rows.Close()

	ads := []*models.Advertisement{}
	for rows.Next() {
		ad, err := scanAdvertisement(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning advertisement row: %w", err)
		}
		ads = append(ads, ad)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating advertisement rows: %w", err)
	}
	return ads, total, nil
}

// UpdateAdvertisement applies the given column values to one advertisement.
func (r *ContentRepository) UpdateAdvertisement(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.updateByID(ctx, "advertisements", "advertisement_id", id, fields)
}

// DeleteAdvertisement removes an advertisement by identifier.
func (r *ContentRepository) DeleteAdvertisement(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "advertisements", "advertisement_id", id)
}

// --- About-us sections ---

// CreateAboutUs allocates an identifier and inserts the section.
func (r *ContentRepository) CreateAboutUs(ctx context.Context, section *models.AboutUsSection) error {
	if section.ID == "" {
		id, err := r.alloc.NextID(ctx, models.AboutUsIDSpec)
		if err != nil {
			return err
		}
		section.ID = id
	}

	sql, args, err := r.sb.Insert("about_us_sections").
		Columns("section_id", "title", "content", "photo").
		Values(section.ID, section.Title, section.Content, section.Photo).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create about-us query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&section.CreatedAt, &section.UpdatedAt); err != nil {
		logger.Error().Err(err).Msg("Error executing create about-us query")
		return fmt.Errorf("error creating about-us section: %w", err)
	}
	return nil
}

// GetAboutUsByID retrieves an about-us section by identifier.
func (r *ContentRepository) GetAboutUsByID(ctx context.Context, id string) (*models.AboutUsSection, error) {
	sql, args, err := r.sb.Select("section_id", "title", "content", "photo", "created_at", "updated_at").
		From("about_us_sections").
		Where(squirrel.Eq{"section_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get about-us query: %w", err)
	}

	section := &models.AboutUsSection{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&section.ID, &section.Title, &section.Content, &section.Photo,
		&section.CreatedAt, &section.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrContentNotFound
		}
		return nil, fmt.Errorf("error getting about-us section: %w", err)
	}
	return section, nil
}

// ListAboutUs retrieves a page of about-us sections in insertion order.
func (r *ContentRepository) ListAboutUs(ctx context.Context, offset, limit uint64) ([]*models.AboutUsSection, int64, error) {
	total, err := r.count(ctx, "about_us_sections")
	if err != nil {
		return nil, 0, err
	}

	sql, args, err := r.sb.Select("section_id", "title", "content", "photo", "created_at", "updated_at").
		From("about_us_sections").
		OrderBy("section_id ASC").
		Offset(offset).
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list about-us query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying about-us sections: %w", err)
	}
	defer rows.Close()

	sections := []*models.AboutUsSection{}
	for rows.Next() {
		section := &models.AboutUsSection{}
		if err := rows.Scan(&section.ID, &section.Title, &section.Content, &section.Photo,
			&section.CreatedAt, &section.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("error scanning about-us row: %w", err)
		}
		sections = append(sections, section)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating about-us rows: %w", err)
	}
	return sections, total, nil
}

// UpdateAboutUs applies the given column values to one about-us section.
func (r *ContentRepository) UpdateAboutUs(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.updateByID(ctx, "about_us_sections", "section_id", id, fields)
}

// DeleteAboutUs removes an about-us section by identifier.
func (r *ContentRepository) DeleteAboutUs(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "about_us_sections", "section_id", id)
}

// --- Help-center queries ---

var helpQueryColumns = []string{
	"query_id", "name", "email", "subject", "message", "status", "reply",
	"created_at", "updated_at",
}

// CreateHelpQuery allocates an identifier and inserts the query.
func (r *ContentRepository) CreateHelpQuery(ctx context.Context, q *models.HelpCenterQuery) error {
	if q.ID == "" {
		id, err := r.alloc.NextID(ctx, models.HelpCenterQueryIDSpec)
		if err != nil {
			return err
		}
		q.ID = id
	}

	sql, args, err := r.sb.Insert("help_center_queries").
		Columns("query_id", "name", "email", "subject", "message", "status").
		Values(q.ID, q.Name, q.Email, q.Subject, q.Message, q.Status).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create help query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&q.CreatedAt, &q.UpdatedAt); err != nil {
		logger.Error().Err(err).Msg("Error executing create help query")
		return fmt.Errorf("error creating help query: %w", err)
	}
	return nil
}

func scanHelpQuery(row pgx.Row) (*models.HelpCenterQuery, error) {
	q := &models.HelpCenterQuery{}
	err := row.Scan(
		&q.ID, &q.Name, &q.Email, &q.Subject, &q.Message, &q.Status, &q.Reply,
		&q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return q, nil
}

// GetHelpQueryByID retrieves a help-center query by identifier.
func (r *ContentRepository) GetHelpQueryByID(ctx context.Context, id string) (*models.HelpCenterQuery, error) {
	sql, args, err := r.sb.Select(helpQueryColumns...).
		From("help_center_queries").
		Where(squirrel.Eq{"query_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get help query: %w", err)
	}

	q, err := scanHelpQuery(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrContentNotFound
		}
		return nil, fmt.Errorf("error getting help query: %w", err)
	}
	return q, nil
}

// ListHelpQueries retrieves a page of help-center queries, optionally
// filtered by status, newest first.
func (r *ContentRepository) ListHelpQueries(ctx context.Context, status string, offset, limit uint64) ([]*models.HelpCenterQuery, int64, error) {
	filter := squirrel.Eq{}
	if status != "" {
		filter["status"] = status
	}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("help_center_queries").Where(filter).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count help queries query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting help queries: %w", err)
	}

	sql, args, err := r.sb.Select(helpQueryColumns...).
		From("help_center_queries").
		Where(filter).
		OrderBy("created_at DESC", "query_id DESC").
		Offset(offset).
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list help queries query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying help queries: %w", err)
	}
	defer rows.Close()

	queries := []*models.HelpCenterQuery{}
	for rows.Next() {
		q, err := scanHelpQuery(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning help query row: %w", err)
		}
		queries = append(queries, q)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating help query rows: %w", err)
	}
	return queries, total, nil
}

// UpdateHelpQuery applies the given column values to one help-center query.
func (r *ContentRepository) UpdateHelpQuery(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.updateByID(ctx, "help_center_queries", "query_id", id, fields)
}

// DeleteHelpQuery removes a help-center query by identifier.
func (r *ContentRepository) DeleteHelpQuery(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "help_center_queries", "query_id", id)
}
