package handlers

import (
	"encoding/json"
	"net/http"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/repositories"
	"portfolio-backend/internal/utils"
)

// GET /api/achievements
func ListAchievements(w http.ResponseWriter, r *http.Request) {
	var achievements []models.Achievement
	if err := repositories.DB.Order("display_order ASC, created_at DESC").Find(&achievements).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Database error",
		})
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Achievements retrieved successfully",
		Data:    achievements,
	})
}

// POST /api/achievements
func CreateAchievement(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Description  string `json:"description"`
		DisplayOrder int    `json:"displayOrder"`
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
	if input.Description == "" {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Description is required.",
		})
		return
	}

	achievement := models.Achievement{
		Description:  input.Description,
		DisplayOrder: input.DisplayOrder,
	}
	if err := repositories.DB.Create(&achievement).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Error saving achievement",
		})
		return
	}

	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "Achievement created successfully",
		Data:    achievement,
	})
}

// PUT /api/achievements/{id}
func UpdateAchievement(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var achievement models.Achievement
	if err := repositories.DB.First(&achievement, "id = ?", id).Error; err != nil {
		utils.WriteError(w, err, "Database error")
		return
	}

	var input struct {
		Description  *string `json:"description"`
		DisplayOrder *int    `json:"displayOrder"`
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

	if input.Description != nil && *input.Description != "" {
		achievement.Description = *input.Description
	}
	if input.DisplayOrder != nil {
		achievement.DisplayOrder = *input.DisplayOrder
	}

	if err := repositories.DB.Save(&achievement).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Error updating achievement",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Achievement updated successfully",
		Data:    achievement,
	})
}

// DELETE /api/achievements/{id}
func DeleteAchievement(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var achievement models.Achievement
	if err := repositories.DB.First(&achievement, "id = ?", id).Error; err != nil {
		utils.WriteError(w, err, "Database error")
		return
	}

	if err := repositories.DB.Delete(&achievement).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Error removing achievement",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Achievement removed",
	})
}
