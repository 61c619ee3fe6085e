package utils

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"portfolio-backend/internal/upload"
)

func TestWriteErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", &upload.ValidationError{Fields: []string{"title"}}, http.StatusBadRequest},
		{"invalid file type", upload.ErrInvalidFileType, http.StatusBadRequest},
		{"file too large", upload.ErrFileTooLarge, http.StatusBadRequest},
		{"record not found", gorm.ErrRecordNotFound, http.StatusNotFound},
		{"anything else", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.err, "fallback message")

			assert.Equal(t, tt.wantStatus, rec.Code)

			var payload Payload
			assert.NoError(t, json.NewDecoder(rec.Body).Decode(&payload))
			assert.False(t, payload.Success)
			assert.NotEmpty(t, payload.Message)
		})
	}
}

func TestWriteErrorFallbackMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, errors.New("internal detail"), "Something went wrong")

	var payload Payload
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&payload))
	assert.Equal(t, "Something went wrong", payload.Message)
	assert.NotContains(t, payload.Message, "internal detail")
}

func TestGenerateSecureToken(t *testing.T) {
	a, err := GenerateSecureToken(32)
	assert.NoError(t, err)
	assert.Len(t, a, base64.RawURLEncoding.EncodedLen(32))

	b, err := GenerateSecureToken(32)
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestHashTokenIsDeterministic(t *testing.T) {
	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
	assert.Len(t, HashToken("abc"), 64)
}
