package handlers

import (
	"encoding/json"
	"net/http"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/repositories"
	"portfolio-backend/internal/utils"
)

// GET /api/education
func ListEducation(w http.ResponseWriter, r *http.Request) {
	var entries []models.Education
	if err := repositories.DB.Order("created_at DESC").Find(&entries).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Database error",
		})
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Education history retrieved successfully",
		Data:    entries,
	})
}

// GET /api/education/{id}
func GetEducationByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var entry models.Education
	if err := repositories.DB.First(&entry, "id = ?", id).Error; err != nil {
		utils.WriteError(w, err, "Database error")
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Education entry retrieved successfully",
		Data:    entry,
	})
}

// POST /api/education
func CreateEducation(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Degree      string `json:"degree"`
		Institution string `json:"institution"`
		Location    string `json:"location"`
		StartDate   string `json:"startDate"`
		EndDate     string `json:"endDate"`
		GPA         string `json:"gpa"`
		Description string `json:"description"`
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

	if input.Degree == "" || input.Institution == "" || input.StartDate == "" || input.EndDate == "" {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Please provide degree, institution, start date, and end date.",
		})
		return
	}

	entry := models.Education{
		Degree:      input.Degree,
		Institution: input.Institution,
		Location:    input.Location,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		GPA:         input.GPA,
		Description: input.Description,
	}
	if err := repositories.DB.Create(&entry).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Error saving education entry",
		})
		return
	}

	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "Education entry created successfully",
		Data:    entry,
	})
}

// PUT /api/education/{id}
func UpdateEducation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var entry models.Education
	if err := repositories.DB.First(&entry, "id = ?", id).Error; err != nil {
		utils.WriteError(w, err, "Database error")
		return
	}

	var input struct {
		Degree      *string `json:"degree"`
		Institution *string `json:"institution"`
		Location    *string `json:"location"`
		StartDate   *string `json:"startDate"`
		EndDate     *string `json:"endDate"`
		GPA         *string `json:"gpa"`
		Description *string `json:"description"`
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

	// Required fields only change to non-empty values; the rest may be
	// cleared explicitly.
	if input.Degree != nil && *input.Degree != "" {
		entry.Degree = *input.Degree
	}
	if input.Institution != nil && *input.Institution != "" {
		entry.Institution = *input.Institution
	}
	if input.StartDate != nil && *input.StartDate != "" {
		entry.StartDate = *input.StartDate
	}
	if input.EndDate != nil && *input.EndDate != "" {
		entry.EndDate = *input.EndDate
	}
	if input.Location != nil {
		entry.Location = *input.Location
	}
	if input.GPA != nil {
		entry.GPA = *input.GPA
	}
	if input.Description != nil {
		entry.Description = *input.Description
	}

	if err := repositories.DB.Save(&entry).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Error updating education entry",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Education entry updated successfully",
		Data:    entry,
	})
}

// DELETE /api/education/{id}
func DeleteEducation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var entry models.Education
	if err := repositories.DB.First(&entry, "id = ?", id).Error; err != nil {
		utils.WriteError(w, err, "Database error")
		return
	}

	if err := repositories.DB.Delete(&entry).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Error removing education entry",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Education entry removed successfully",
	})
}
