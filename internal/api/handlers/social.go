package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/repositories"
	"portfolio-backend/internal/utils"
)

// GET /api/sociallinks — enabled links only, for the public site.
func ListSocialLinks(w http.ResponseWriter, r *http.Request) {
	var links []models.SocialLink
	if err := repositories.DB.Where("is_enabled = ?", true).Order("display_order ASC, name ASC").Find(&links).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Database error",
		})
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Social links retrieved successfully",
		Data:    links,
	})
}

// GET /api/sociallinks/admin — every link, including disabled ones.
func ListAdminSocialLinks(w http.ResponseWriter, r *http.Request) {
	var links []models.SocialLink
	if err := repositories.DB.Order("display_order ASC, name ASC").Find(&links).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Database error",
		})
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Social links retrieved successfully",
		Data:    links,
	})
}

// GET /api/sociallinks/{id}
func GetSocialLinkByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var link models.SocialLink
	if err := repositories.DB.First(&link, "id = ?", id).Error; err != nil {
		utils.WriteError(w, err, "Database error")
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Social link retrieved successfully",
		Data:    link,
	})
}

// POST /api/sociallinks
func CreateSocialLink(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name         string `json:"name"`
		URL          string `json:"url"`
		Label        string `json:"label"`
		IconName     string `json:"iconName"`
		IsEnabled    *bool  `json:"isEnabled"`
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

	if input.Name == "" || input.URL == "" || input.IconName == "" {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Name, URL, and Icon Name are required.",
		})
		return
	}

	var existing models.SocialLink
	if err := repositories.DB.Where("name = ?", input.Name).First(&existing).Error; err == nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "A social link with this name already exists.",
		})
		return
	}

	label := input.Label
	if label == "" {
		label = input.Name
	}
	enabled := true
	if input.IsEnabled != nil {
		enabled = *input.IsEnabled
	}

	link := models.SocialLink{
		Name:         strings.TrimSpace(input.Name),
		URL:          strings.TrimSpace(input.URL),
		Label:        label,
		IconName:     strings.TrimSpace(input.IconName),
		IsEnabled:    enabled,
		DisplayOrder: input.DisplayOrder,
	}
	if err := repositories.DB.Create(&link).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Error saving social link",
		})
		return
	}

	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "Social link created successfully",
		Data:    link,
	})
}

// PUT /api/sociallinks/{id}
func UpdateSocialLink(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var link models.SocialLink
	if err := repositories.DB.First(&link, "id = ?", id).Error; err != nil {
		utils.WriteError(w, err, "Database error")
		return
	}

	var input struct {
		Name         *string `json:"name"`
		URL          *string `json:"url"`
		Label        *string `json:"label"`
		IconName     *string `json:"iconName"`
		IsEnabled    *bool   `json:"isEnabled"`
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

	if input.Name != nil && *input.Name != "" && *input.Name != link.Name {
		var existing models.SocialLink
		err := repositories.DB.Where("name = ?", *input.Name).First(&existing).Error
		if err == nil && existing.ID != link.ID {
			utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
				Success: false,
				Message: "Another social link with this name already exists.",
			})
			return
		}
		link.Name = *input.Name
	}
	if input.URL != nil && *input.URL != "" {
		link.URL = *input.URL
	}
	if input.Label != nil {
		link.Label = *input.Label
	}
	if input.IconName != nil && *input.IconName != "" {
		link.IconName = *input.IconName
	}
	if input.IsEnabled != nil {
		link.IsEnabled = *input.IsEnabled
	}
	if input.DisplayOrder != nil {
		link.DisplayOrder = *input.DisplayOrder
	}

	if err := repositories.DB.Save(&link).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Error updating social link",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Social link updated successfully",
		Data:    link,
	})
}

// DELETE /api/sociallinks/{id}
func DeleteSocialLink(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var link models.SocialLink
	if err := repositories.DB.First(&link, "id = ?", id).Error; err != nil {
		utils.WriteError(w, err, "Database error")
		return
	}

	if err := repositories.DB.Delete(&link).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Error removing social link",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Social link removed",
	})
}
