package handlers

import (
	"encoding/json"
	"net/http"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/repositories"
	"portfolio-backend/internal/utils"
)

// POST /api/contact — the public contact form.
func SubmitContactForm(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid input",
		})
		return
	}

	if input.Name == "" || input.Email == "" || input.Message == "" {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Name, email, and message are required",
		})
		return
	}

	message := models.Message{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	}
	if err := repositories.DB.Create(&message).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Error saving message",
		})
		return
	}

	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "Message received successfully!",
		Data:    message,
	})
}

// GET /api/contact — admin inbox, newest first.
func ListMessages(w http.ResponseWriter, r *http.Request) {
	var messages []models.Message
	if err := repositories.DB.Order("created_at DESC").Find(&messages).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Database error",
		})
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Messages retrieved successfully",
		Data:    messages,
	})
}

// PUT /api/contact/{id}/read
func MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var message models.Message
	if err := repositories.DB.First(&message, "id = ?", id).Error; err != nil {
		utils.WriteError(w, err, "Database error")
		return
	}

	message.IsRead = true
	if err := repositories.DB.Save(&message).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Error updating message",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Message marked as read",
		Data:    message,
	})
}

// DELETE /api/contact/{id}
func DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var message models.Message
	if err := repositories.DB.First(&message, "id = ?", id).Error; err != nil {
		utils.WriteError(w, err, "Database error")
		return
	}

	if err := repositories.DB.Delete(&message).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Error removing message",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Message removed",
	})
}
