package services

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/vwings/eduadmin/internal/app/models"
	"github.com/vwings/eduadmin/internal/app/models/dto"
	"github.com/vwings/eduadmin/internal/app/repositories"
	"github.com/vwings/eduadmin/internal/pkg/filestorage"
	"github.com/vwings/eduadmin/internal/pkg/logger"
)

// ContentService manages announcements, advertisements, about-us sections
// and help-center queries.
type ContentService struct {
	contentRepo *repositories.ContentRepository
	alloc       *repositories.Allocator
	storage     filestorage.FileStorage
}

// NewContentService creates a new ContentService.
func NewContentService(contentRepo *repositories.ContentRepository, alloc *repositories.Allocator, storage filestorage.FileStorage) *ContentService {
	return &ContentService{contentRepo: contentRepo, alloc: alloc, storage: storage}
}

// --- Announcements ---

// CreateAnnouncement publishes an announcement. New announcements default to
// active.
func (s *ContentService) CreateAnnouncement(ctx context.Context, req *dto.CreateAnnouncementRequest) (*models.Announcement, error) {
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	ann := &models.Announcement{
		Headline:    req.Headline,
		Description: req.Description,
		Active:      active,
	}
	if err := s.contentRepo.CreateAnnouncement(ctx, ann); err != nil {
		return nil, err
	}
	logger.Info().Str("announcementID", ann.ID).Msg("Announcement created")
	return ann, nil
}

// GetAnnouncement retrieves one announcement.
func (s *ContentService) GetAnnouncement(ctx context.Context, id string) (*models.Announcement, error) {
	ann, err := s.contentRepo.GetAnnouncementByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Announcement not found")
	}
	return ann, nil
}

// ListAnnouncements retrieves a page of announcements.
func (s *ContentService) ListAnnouncements(ctx context.Context, offset, limit uint64) ([]*models.Announcement, int64, error) {
	return s.contentRepo.ListAnnouncements(ctx, offset, limit)
}

// UpdateAnnouncement partially updates an announcement.
func (s *ContentService) UpdateAnnouncement(ctx context.Context, id string, req *dto.UpdateAnnouncementRequest) (*models.Announcement, error) {
	fields := map[string]interface{}{}
	if req.Headline != nil {
		fields["headline"] = *req.Headline
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Active != nil {
		fields["active"] = *req.Active
	}

	if err := s.contentRepo.UpdateAnnouncement(ctx, id, fields); err != nil {
		return nil, notFound(err, "Announcement not found")
	}
	return s.GetAnnouncement(ctx, id)
}

// DeleteAnnouncement removes an announcement.
func (s *ContentService) DeleteAnnouncement(ctx context.Context, id string) error {
	return notFound(s.contentRepo.DeleteAnnouncement(ctx, id), "Announcement not found")
}

// --- Advertisements ---

// CreateAdvertisement adds a promotional banner with an optional display
// window.
func (s *ContentService) CreateAdvertisement(ctx context.Context, req *dto.CreateAdvertisementRequest, banner *multipart.FileHeader) (*models.Advertisement, error) {
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	startsOn, err := parseDate(req.StartsOn)
	if err != nil {
		return nil, err
	}
	endsOn, err := parseDate(req.EndsOn)
	if err != nil {
		return nil, err
	}

	id, err := s.alloc.NextID(ctx, models.AdvertisementIDSpec)
	if err != nil {
		return nil, err
	}

	ad := &models.Advertisement{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Active:      active,
		StartsOn:    startsOn,
		EndsOn:      endsOn,
	}
	if banner != nil {
		path, err := s.storage.Save(banner, filestorage.ClassImage, "advertisements", id)
		if err != nil {
			return nil, err
		}
		ad.Banner = &path
	}

	if err := s.contentRepo.CreateAdvertisement(ctx, ad); err != nil {
		discardUpload(s.storage, ad.Banner)
		return nil, err
	}
	logger.Info().Str("advertisementID", ad.ID).Msg("Advertisement created")
	return ad, nil
}

// GetAdvertisement retrieves one advertisement.
func (s *ContentService) GetAdvertisement(ctx context.Context, id string) (*models.Advertisement, error) {
	ad, err := s.contentRepo.GetAdvertisementByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Advertisement not found")
	}
	return ad, nil
}

// ListAdvertisements retrieves a page of advertisements.
func (s *ContentService) ListAdvertisements(ctx context.Context, offset, limit uint64) ([]*models.Advertisement, int64, error) {
	return s.contentRepo.ListAdvertisements(ctx, offset, limit)
}

// UpdateAdvertisement partially updates an advertisement.
func (s *ContentService) UpdateAdvertisement(ctx context.Context, id string, req *dto.UpdateAdvertisementRequest, banner *multipart.FileHeader) (*models.Advertisement, error) {
	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Active != nil {
		fields["active"] = *req.Active
	}
	if req.StartsOn != nil {
		startsOn, err := parseDate(req.StartsOn)
		if err != nil {
			return nil, err
		}
		fields["starts_on"] = startsOn
	}
	if req.EndsOn != nil {
		endsOn, err := parseDate(req.EndsOn)
		if err != nil {
			return nil, err
		}
		fields["ends_on"] = endsOn
	}
	if banner != nil {
		path, err := s.storage.Save(banner, filestorage.ClassImage, "advertisements", id)
		if err != nil {
			return nil, err
		}
		fields["banner"] = path
	}

	if err := s.contentRepo.UpdateAdvertisement(ctx, id, fields); err != nil {
		return nil, notFound(err, "Advertisement not found")
	}
	return s.GetAdvertisement(ctx, id)
}

// DeleteAdvertisement removes an advertisement.
func (s *ContentService) DeleteAdvertisement(ctx context.Context, id string) error {
	return notFound(s.contentRepo.DeleteAdvertisement(ctx, id), "Advertisement not found")
}

// --- About-us sections ---

// CreateAboutUs adds an about-us section with an optional photo.
func (s *ContentService) CreateAboutUs(ctx context.Context, req *dto.CreateAboutUsRequest, photo *multipart.FileHeader) (*models.AboutUsSection, error) {
	id, err := s.alloc.NextID(ctx, models.AboutUsIDSpec)
	if err != nil {
		return nil, err
	}

	section := &models.AboutUsSection{
		ID:      id,
		Title:   req.Title,
		Content: req.Content,
	}
	if photo != nil {
		path, err := s.storage.Save(photo, filestorage.ClassImage, "aboutus", id)
		if err != nil {
			return nil, err
		}
		section.Photo = &path
	}

	if err := s.contentRepo.CreateAboutUs(ctx, section); err != nil {
		discardUpload(s.storage, section.Photo)
		return nil, err
	}
	logger.Info().Str("sectionID", section.ID).Msg("About-us section created")
	return section, nil
}

// GetAboutUs retrieves one about-us section.
func (s *ContentService) GetAboutUs(ctx context.Context, id string) (*models.AboutUsSection, error) {
	section, err := s.contentRepo.GetAboutUsByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "About-us section not found")
	}
	return section, nil
}

// ListAboutUs retrieves a page of about-us sections.
func (s *ContentService) ListAboutUs(ctx context.Context, offset, limit uint64) ([]*models.AboutUsSection, int64, error) {
	return s.contentRepo.ListAboutUs(ctx, offset, limit)
}

// UpdateAboutUs partially updates an about-us section.
func (s *ContentService) UpdateAboutUs(ctx context.Context, id string, req *dto.UpdateAboutUsRequest, photo *multipart.FileHeader) (*models.AboutUsSection, error) {
	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if photo != nil {
		path, err := s.storage.Save(photo, filestorage.ClassImage, "aboutus", id)
		if err != nil {
			return nil, err
		}
		fields["photo"] = path
	}

	if err := s.contentRepo.UpdateAboutUs(ctx, id, fields); err != nil {
		return nil, notFound(err, "About-us section not found")
	}
	return s.GetAboutUs(ctx, id)
}

// DeleteAboutUs removes an about-us section.
func (s *ContentService) DeleteAboutUs(ctx context.Context, id string) error {
	return notFound(s.contentRepo.DeleteAboutUs(ctx, id), "About-us section not found")
}

// --- Help-center queries ---

// CreateHelpQuery files a help-center query. New queries start open.
func (s *ContentService) CreateHelpQuery(ctx context.Context, req *dto.CreateHelpQueryRequest) (*models.HelpCenterQuery, error) {
	q := &models.HelpCenterQuery{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Status:  models.QueryStatusOpen,
	}
	if err := s.contentRepo.CreateHelpQuery(ctx, q); err != nil {
		return nil, err
	}
	logger.Info().Str("queryID", q.ID).Msg("Help-center query created")
	return q, nil
}

// GetHelpQuery retrieves one help-center query.
func (s *ContentService) GetHelpQuery(ctx context.Context, id string) (*models.HelpCenterQuery, error) {
	q, err := s.contentRepo.GetHelpQueryByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Help-center query not found")
	}
	return q, nil
}

// ListHelpQueries retrieves a page of help-center queries with an optional
// status filter.
func (s *ContentService) ListHelpQueries(ctx context.Context, status string, offset, limit uint64) ([]*models.HelpCenterQuery, int64, error) {
	return s.contentRepo.ListHelpQueries(ctx, status, offset, limit)
}

// UpdateHelpQuery replies to or resolves a help-center query. Setting a
// reply without an explicit status resolves the query.
func (s *ContentService) UpdateHelpQuery(ctx context.Context, id string, req *dto.UpdateHelpQueryRequest) (*models.HelpCenterQuery, error) {
	fields := map[string]interface{}{}
	if req.Reply != nil {
		fields["reply"] = *req.Reply
		if req.Status == nil {
			fields["status"] = models.QueryStatusResolved
		}
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}

	if err := s.contentRepo.UpdateHelpQuery(ctx, id, fields); err != nil {
		return nil, notFound(err, "Help-center query not found")
	}
	return s.GetHelpQuery(ctx, id)
}

// DeleteHelpQuery removes a help-center query.
func (s *ContentService) DeleteHelpQuery(ctx context.Context, id string) error {
	return notFound(s.contentRepo.DeleteHelpQuery(ctx, id), "Help-center query not found")
}

// parseDate converts an optional YYYY-MM-DD string. Format errors are caught
// earlier by request binding, so a failure here is unexpected.
func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
