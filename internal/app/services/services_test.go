package services

import (
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vwings/eduadmin/internal/pkg/filestorage"
)

type recordingStorage struct {
	deleted   []string
	deleteErr error
}

func (s *recordingStorage) Save(_ *multipart.FileHeader, _ filestorage.Class, _, _ string) (string, error) {
	return "", errors.New("not used")
}

func (s *recordingStorage) Delete(relPath string) error {
	s.deleted = append(s.deleted, relPath)
	return s.deleteErr
}

func TestDiscardUploadRemovesSavedFile(t *testing.T) {
	storage := &recordingStorage{}
	path := "uploads/students/STU0001/photo.png"

	discardUpload(storage, &path)

	assert.Equal(t, []string{path}, storage.deleted)
}

func TestDiscardUploadSkipsMissingPath(t *testing.T) {
	storage := &recordingStorage{}

	discardUpload(storage, nil)

	assert.Empty(t, storage.deleted)
}

func TestDiscardUploadSwallowsDeleteError(t *testing.T) {
	storage := &recordingStorage{deleteErr: errors.New("disk gone")}
	path := "uploads/courses/CRS0001/video.mp4"

	assert.NotPanics(t, func() { discardUpload(storage, &path) })
	assert.Equal(t, []string{path}, storage.deleted)
}
