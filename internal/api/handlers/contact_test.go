package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/repositories"
)

func TestSubmitContactForm(t *testing.T) {
	setupDB(t)

	req := jsonRequest(t, http.MethodPost, "/api/contact", map[string]any{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"subject": "Hello",
		"message": "Nice portfolio!",
	})
	rec := httptest.NewRecorder()
	SubmitContactForm(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var message models.Message
	assert.NoError(t, repositories.DB.First(&message).Error)
	assert.Equal(t, "Visitor", message.Name)
	assert.False(t, message.IsRead)
}

func TestSubmitContactFormMissingMessage(t *testing.T) {
	setupDB(t)

	req := jsonRequest(t, http.MethodPost, "/api/contact", map[string]any{
		"name":  "Visitor",
		"email": "visitor@example.com",
	})
	rec := httptest.NewRecorder()
	SubmitContactForm(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var count int64
	assert.NoError(t, repositories.DB.Model(&models.Message{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestMarkMessageRead(t *testing.T) {
	setupDB(t)

	message := models.Message{Name: "V", Email: "v@example.com", Message: "hi"}
	assert.NoError(t, repositories.DB.Create(&message).Error)

	req := httptest.NewRequest(http.MethodPut, "/api/contact/"+message.ID.String()+"/read", nil)
	req.SetPathValue("id", message.ID.String())
	rec := httptest.NewRecorder()
	MarkMessageRead(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var updated models.Message
	assert.NoError(t, repositories.DB.First(&updated, "id = ?", message.ID).Error)
	assert.True(t, updated.IsRead)
}

func TestDeleteMessage(t *testing.T) {
	setupDB(t)

	message := models.Message{Name: "V", Email: "v@example.com", Message: "hi"}
	assert.NoError(t, repositories.DB.Create(&message).Error)

	req := httptest.NewRequest(http.MethodDelete, "/api/contact/"+message.ID.String(), nil)
	req.SetPathValue("id", message.ID.String())
	rec := httptest.NewRecorder()
	DeleteMessage(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var count int64
	assert.NoError(t, repositories.DB.Model(&models.Message{}).Count(&count).Error)
	assert.Zero(t, count)
}
