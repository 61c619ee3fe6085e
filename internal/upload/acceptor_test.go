package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"portfolio-backend/internal/storage"
)

func newTestService(t *testing.T) (*Service, string) {
	t.Helper()
	root := t.TempDir()
	store, err := storage.NewDiskStore(root, Categories()...)
	assert.NoError(t, err)
	return NewService(store), root
}

// multipartRequest builds a multipart POST carrying fields and, when
// fileField is non-empty, one file part with an explicit Content-Type.
func multipartRequest(t *testing.T, fields map[string]string, fileField, fileName, contentType string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for key, value := range fields {
		assert.NoError(t, mw.WriteField(key, value))
	}
	if fileField != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, fileField, fileName))
		header.Set("Content-Type", contentType)
		part, err := mw.CreatePart(header)
		assert.NoError(t, err)
		_, err = part.Write(content)
		assert.NoError(t, err)
	}
	assert.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func storedFiles(t *testing.T, root, category string) []string {
	t.Helper()
	entries, err := os.ReadDir(filepath.Join(root, category))
	assert.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestAcceptStoresFile(t *testing.T) {
	svc, root := newTestService(t)
	req := multipartRequest(t, nil, "projectImage", "screenshot.png", "image/png", []byte("png bytes"))

	accepted, err := svc.Accept(req, KindProjectImage)
	assert.NoError(t, err)
	assert.NotNil(t, accepted)

	assert.Equal(t, KindProjectImage, accepted.Kind)
	assert.Equal(t, "project_images", accepted.Category)
	assert.Equal(t, "screenshot.png", accepted.OriginalName)
	assert.Equal(t, "image/png", accepted.MimeType)
	assert.Equal(t, int64(len("png bytes")), accepted.SizeBytes)

	assert.True(t, strings.HasPrefix(accepted.StoredName, "projectImage-"))
	assert.True(t, strings.HasSuffix(accepted.StoredName, ".png"))
	assert.Equal(t, "/uploads/project_images/"+accepted.StoredName, accepted.LogicalPath)

	files := storedFiles(t, root, "project_images")
	assert.Equal(t, []string{accepted.StoredName}, files)
}

func TestAcceptWithoutFileField(t *testing.T) {
	svc, root := newTestService(t)
	req := multipartRequest(t, map[string]string{"title": "no image"}, "", "", "", nil)

	accepted, err := svc.Accept(req, KindProjectImage)
	assert.NoError(t, err)
	assert.Nil(t, accepted)
	assert.Empty(t, storedFiles(t, root, "project_images"))
}

func TestAcceptRejectsDisallowedType(t *testing.T) {
	svc, root := newTestService(t)
	req := multipartRequest(t, nil, "resumeFile", "resume.txt", "text/plain", []byte("not a pdf"))

	accepted, err := svc.Accept(req, KindResumeFile)
	assert.ErrorIs(t, err, ErrInvalidFileType)
	assert.Nil(t, accepted)
	assert.Empty(t, storedFiles(t, root, "resumes"))
}

func TestAcceptRejectsOversizedFile(t *testing.T) {
	svc, root := newTestService(t)
	policy, err := PolicyFor(KindProfilePhoto)
	assert.NoError(t, err)

	content := bytes.Repeat([]byte("a"), int(policy.MaxSizeBytes)+1)
	req := multipartRequest(t, nil, "profilePhoto", "huge.jpg", "image/jpeg", content)

	accepted, acceptErr := svc.Accept(req, KindProfilePhoto)
	assert.ErrorIs(t, acceptErr, ErrFileTooLarge)
	assert.Nil(t, accepted)
	assert.Empty(t, storedFiles(t, root, "profile_photo"))
}

func TestAcceptUnknownKind(t *testing.T) {
	svc, _ := newTestService(t)
	req := multipartRequest(t, nil, "banner", "x.png", "image/png", []byte("x"))

	accepted, err := svc.Accept(req, Kind("banner"))
	assert.Error(t, err)
	assert.Nil(t, accepted)
}

func TestWithCleanupDiscardsOnFailure(t *testing.T) {
	svc, root := newTestService(t)
	req := multipartRequest(t, nil, "projectImage", "orphan.png", "image/png", []byte("x"))

	accepted, err := svc.Accept(req, KindProjectImage)
	assert.NoError(t, err)
	assert.NotNil(t, accepted)
	assert.Len(t, storedFiles(t, root, "project_images"), 1)

	boom := errors.New("record write failed")
	err = svc.WithCleanup(context.Background(), accepted, func() error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, storedFiles(t, root, "project_images"))
}

func TestWithCleanupKeepsFileOnSuccess(t *testing.T) {
	svc, root := newTestService(t)
	req := multipartRequest(t, nil, "projectImage", "kept.png", "image/png", []byte("x"))

	accepted, err := svc.Accept(req, KindProjectImage)
	assert.NoError(t, err)

	err = svc.WithCleanup(context.Background(), accepted, func() error {
		return nil
	})
	assert.NoError(t, err)
	assert.Len(t, storedFiles(t, root, "project_images"), 1)
}

func TestWithCleanupWithoutFile(t *testing.T) {
	svc, _ := newTestService(t)

	boom := errors.New("validation failed")
	err := svc.WithCleanup(context.Background(), nil, func() error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestRemoveIsBestEffort(t *testing.T) {
	svc, root := newTestService(t)
	req := multipartRequest(t, nil, "projectImage", "twice.png", "image/png", []byte("x"))

	accepted, err := svc.Accept(req, KindProjectImage)
	assert.NoError(t, err)

	ctx := context.Background()
	svc.Remove(ctx, accepted.Category, accepted.StoredName)
	svc.Remove(ctx, accepted.Category, accepted.StoredName)
	svc.Remove(ctx, accepted.Category, "")
	assert.Empty(t, storedFiles(t, root, "project_images"))
}
