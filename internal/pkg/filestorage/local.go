package filestorage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/vwings/eduadmin/internal/pkg/logger"
)

// Upload policy errors. Both are detected before any byte reaches disk.
var (
	ErrFileTooLarge          = errors.New("uploaded file exceeds the configured size limit")
	ErrContentTypeNotAllowed = errors.New("uploaded file content type is not allowed for this field")
)

// Class groups upload fields by the content types they accept.
type Class string

const (
	ClassImage    Class = "image"
	ClassDocument Class = "document"
	ClassVideo    Class = "video"
)

// Policy holds the configured upload limits.
type Policy struct {
	// MaxSize is the maximum accepted payload size in bytes.
	MaxSize int64
	// AllowedTypes maps a file class to its content-type allow-list.
	AllowedTypes map[Class][]string
}

// LocalStorage writes uploaded files to the local filesystem, namespaced by
// entity type and entity identifier. Overwritten references are NOT cleaned
// up; orphaned files accumulate, matching the original system's behavior.
type LocalStorage struct {
	basePath string
	policy   Policy
}

// NewLocalStorage creates a LocalStorage rooted at basePath, creating the
// directory if needed.
func NewLocalStorage(basePath string, policy Policy) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	return &LocalStorage{basePath: basePath, policy: policy}, nil
}

// Save stores an uploaded file under <entityType>/<entityID>/ and returns the
// relative path ("uploads/<entityType>/<entityID>/<uuid><ext>") to persist in
// the entity record. A nil fileHeader is a no-op.
func (ls *LocalStorage) Save(fileHeader *multipart.FileHeader, class Class, entityType, entityID string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	// Policy checks come first: a rejected upload must leave no file behind.
	if ls.policy.MaxSize > 0 && fileHeader.Size > ls.policy.MaxSize {
		return "", fmt.Errorf("%w: %d bytes (limit %d)", ErrFileTooLarge, fileHeader.Size, ls.policy.MaxSize)
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if !ls.allowed(class, contentType) {
		return "", fmt.Errorf("%w: %q", ErrContentTypeNotAllowed, contentType)
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	dir := filepath.Join(ls.basePath, entityType, entityID)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", dir).Msg("Failed to create upload subdirectory")
		return "", fmt.Errorf("failed to create upload subdirectory: %w", err)
	}

	// Unique filename so distinct uploads for the same entity never collide.
	name := uuid.New().String() + filepath.Ext(fileHeader.Filename)
	dstPath := filepath.Join(dir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	relPath := "uploads/" + entityType + "/" + entityID + "/" + name
	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", relPath).Msg("File saved")
	return relPath, nil
}

// Delete removes a previously stored file given its relative path as returned
// by Save. Missing files are treated as already deleted.
func (ls *LocalStorage) Delete(relPath string) error {
	physical := ls.FullPath(relPath)
	if physical == "" {
		return fmt.Errorf("invalid file path: %s", relPath)
	}
	if _, err := os.Stat(physical); os.IsNotExist(err) {
		logger.Warn().Str("path", physical).Msg("File to delete does not exist")
		return nil
	}
	if err := os.Remove(physical); err != nil {
		logger.Error().Err(err).Str("path", physical).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// FullPath maps a stored relative path back to its filesystem location.
// Returns "" if the path does not point inside the storage root.
func (ls *LocalStorage) FullPath(relPath string) string {
	slashed := filepath.ToSlash(relPath)
	if !strings.HasPrefix(slashed, "uploads/") {
		return ""
	}
	cleaned := filepath.Clean(strings.TrimPrefix(slashed, "uploads/"))
	if cleaned == "." || cleaned == "/" || strings.HasPrefix(cleaned, "..") {
		return ""
	}
	return filepath.Join(ls.basePath, cleaned)
}

func (ls *LocalStorage) allowed(class Class, contentType string) bool {
	allowed, ok := ls.policy.AllowedTypes[class]
	if !ok {
		return false
	}
	for _, t := range allowed {
		if strings.EqualFold(t, contentType) {
			return true
		}
	}
	return false
}
