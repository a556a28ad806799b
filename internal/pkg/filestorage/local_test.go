package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy() Policy {
	return Policy{
		MaxSize: 1024,
		AllowedTypes: map[Class][]string{
			ClassImage:    {"image/jpeg", "image/png"},
			ClassDocument: {"application/pdf"},
		},
	}
}

// multipartFile builds a real multipart.FileHeader the way gin would hand it
// to the upload sink.
func multipartFile(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	reader := multipart.NewReader(&buf, w.Boundary())
	form, err := reader.ReadForm(int64(len(content)) + 10240)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func TestSaveWritesUnderEntityNamespace(t *testing.T) {
	root := t.TempDir()
	ls, err := NewLocalStorage(root, testPolicy())
	require.NoError(t, err)

	fh := multipartFile(t, "photo.jpg", "image/jpeg", []byte("jpegdata"))
	relPath, err := ls.Save(fh, ClassImage, "students", "STU0001")
	require.NoError(t, err)

	assert.Regexp(t, `^uploads/students/STU0001/[0-9a-f-]+\.jpg$`, relPath)

	physical := ls.FullPath(relPath)
	require.NotEmpty(t, physical)
	data, err := os.ReadFile(physical)
	require.NoError(t, err)
	assert.Equal(t, []byte("jpegdata"), data)
}

func TestSaveRejectsOversizedFileWithoutWriting(t *testing.T) {
	root := t.TempDir()
	ls, err := NewLocalStorage(root, testPolicy())
	require.NoError(t, err)

	big := bytes.Repeat([]byte("x"), 2048)
	fh := multipartFile(t, "big.jpg", "image/jpeg", big)
	_, err = ls.Save(fh, ClassImage, "students", "STU0001")
	assert.ErrorIs(t, err, ErrFileTooLarge)

	// The entity directory must not have been created.
	_, statErr := os.Stat(filepath.Join(root, "students", "STU0001"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestSaveRejectsDisallowedContentType(t *testing.T) {
	root := t.TempDir()
	ls, err := NewLocalStorage(root, testPolicy())
	require.NoError(t, err)

	fh := multipartFile(t, "evil.exe", "application/octet-stream", []byte("MZ"))
	_, err = ls.Save(fh, ClassImage, "students", "STU0001")
	assert.ErrorIs(t, err, ErrContentTypeNotAllowed)

	_, statErr := os.Stat(filepath.Join(root, "students", "STU0001"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestSaveNilFileHeaderIsNoop(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir(), testPolicy())
	require.NoError(t, err)

	relPath, err := ls.Save(nil, ClassImage, "students", "STU0001")
	require.NoError(t, err)
	assert.Empty(t, relPath)
}

func TestDeleteIsIdempotent(t *testing.T) {
	root := t.TempDir()
	ls, err := NewLocalStorage(root, testPolicy())
	require.NoError(t, err)

	fh := multipartFile(t, "doc.pdf", "application/pdf", []byte("%PDF"))
	relPath, err := ls.Save(fh, ClassDocument, "salaries", "SAL0001")
	require.NoError(t, err)

	require.NoError(t, ls.Delete(relPath))
	_, statErr := os.Stat(ls.FullPath(relPath))
	assert.True(t, os.IsNotExist(statErr))

	// Deleting again must not error.
	assert.NoError(t, ls.Delete(relPath))
}

func TestFullPathRejectsEscapes(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir(), testPolicy())
	require.NoError(t, err)

	assert.Empty(t, ls.FullPath("uploads/../../etc/passwd"))
	assert.Empty(t, ls.FullPath("somewhere/else.txt"))
	assert.Empty(t, ls.FullPath(""))
}
