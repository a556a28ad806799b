package filestorage

import "mime/multipart"

// FileStorage is the upload sink contract used by services: Save accepts a
// multipart payload bound to an entity and returns the relative path to store
// in the entity's file-reference field, and Delete removes a previously saved
// file when the create that wrote it does not go through.
type FileStorage interface {
	Save(fileHeader *multipart.FileHeader, class Class, entityType, entityID string) (string, error)
	Delete(relPath string) error
}
