package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/repositories"
	"portfolio-backend/internal/storage"
	"portfolio-backend/internal/upload"
	"portfolio-backend/internal/utils"
)

// setupDB points the package-level connection at a throwaway sqlite file for
// the duration of one test.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Resume{},
		&models.Certificate{},
		&models.Education{},
		&models.Achievement{},
		&models.SkillCategory{},
		&models.SocialLink{},
		&models.Message{},
		&models.Setting{},
	)
	assert.NoError(t, err)

	repositories.DB = db
	return db
}

func setupUploads(t *testing.T) (*upload.Service, *storage.DiskStore) {
	t.Helper()
	store, err := storage.NewDiskStore(t.TempDir(), upload.Categories()...)
	assert.NoError(t, err)
	return upload.NewService(store), store
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	data, err := json.Marshal(body)
	assert.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// multipartRequest builds a multipart POST/PUT with plain fields and, when
// fileField is non-empty, one file part carrying an explicit Content-Type.
func multipartRequest(t *testing.T, method, target string, fields map[string]string, fileField, fileName, contentType string, content []byte) *http.Request {
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

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decodePayload(t *testing.T, rec *httptest.ResponseRecorder) utils.Payload {
	t.Helper()
	var payload utils.Payload
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&payload))
	return payload
}

func storedFiles(t *testing.T, store *storage.DiskStore, category string) []string {
	t.Helper()
	entries, err := os.ReadDir(filepath.Join(store.Root(), category))
	assert.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
