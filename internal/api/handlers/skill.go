package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/repositories"
	"portfolio-backend/internal/utils"
	"gorm.io/gorm"
)

// GET /api/skillcategories
func ListSkillCategories(w http.ResponseWriter, r *http.Request) {
	var categories []models.SkillCategory
	if err := repositories.DB.Order("display_order ASC, name ASC").Find(&categories).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Database error",
		})
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Skill categories retrieved successfully",
		Data:    categories,
	})
}

// GET /api/skillcategories/{id}
func GetSkillCategoryByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var category models.SkillCategory
	if err := repositories.DB.First(&category, "id = ?", id).Error; err != nil {
		utils.WriteError(w, err, "Database error")
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Skill category retrieved successfully",
		Data:    category,
	})
}

// POST /api/skillcategories
func CreateSkillCategory(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name         string `json:"name"`
		DisplayOrder int    `json:"displayOrder"`
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil || strings.TrimSpace(input.Name) == "" {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Category name is required.",
		})
		return
	}

	name := strings.TrimSpace(input.Name)
	var existing models.SkillCategory
	if err := repositories.DB.Where("name = ?", name).First(&existing).Error; err == nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: fmt.Sprintf("Category '%s' already exists.", name),
		})
		return
	}

	category := models.SkillCategory{
		Name:         name,
		Skills:       models.StringSlice{},
		DisplayOrder: input.DisplayOrder,
	}
	if err := repositories.DB.Create(&category).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Error saving skill category",
		})
		return
	}

	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "Skill category created successfully",
		Data:    category,
	})
}

// PUT /api/skillcategories/{id}
func UpdateSkillCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var category models.SkillCategory
	if err := repositories.DB.First(&category, "id = ?", id).Error; err != nil {
		utils.WriteError(w, err, "Database error")
		return
	}

	var input struct {
		Name         *string `json:"name"`
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

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name != "" && name != category.Name {
			var existing models.SkillCategory
			err := repositories.DB.Where("name = ?", name).First(&existing).Error
			if err == nil && existing.ID != category.ID {
				utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
					Success: false,
					Message: fmt.Sprintf("Category name '%s' already taken.", name),
				})
				return
			}
			category.Name = name
		}
	}
	if input.DisplayOrder != nil {
		category.DisplayOrder = *input.DisplayOrder
	}

	if err := repositories.DB.Save(&category).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Error updating skill category",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Skill category updated successfully",
		Data:    category,
	})
}

// DELETE /api/skillcategories/{id}
func DeleteSkillCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var category models.SkillCategory
	if err := repositories.DB.First(&category, "id = ?", id).Error; err != nil {
		utils.WriteError(w, err, "Database error")
		return
	}

	if err := repositories.DB.Delete(&category).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Error removing skill category",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: fmt.Sprintf("Skill category '%s' removed.", category.Name),
	})
}

// POST /api/skillcategories/{id}/skills
func AddSkillToCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var input struct {
		Name string `json:"name"`
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil || strings.TrimSpace(input.Name) == "" {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Skill name is required.",
		})
		return
	}

	var category models.SkillCategory
	if err := repositories.DB.First(&category, "id = ?", id).Error; err != nil {
		utils.WriteError(w, err, "Database error")
		return
	}

	skillName := strings.TrimSpace(input.Name)
	for _, skill := range category.Skills {
		if strings.EqualFold(skill, skillName) {
			utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
				Success: false,
				Message: fmt.Sprintf("Skill '%s' already exists in category '%s'.", skillName, category.Name),
			})
			return
		}
	}

	category.Skills = append(category.Skills, skillName)
	if err := repositories.DB.Save(&category).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Error saving skill",
		})
		return
	}

	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "Skill added successfully",
		Data:    map[string]string{"name": skillName},
	})
}

// DELETE /api/skillcategories/{id}/skills/{skill}
func RemoveSkillFromCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	skillName := r.PathValue("skill")

	var category models.SkillCategory
	if err := repositories.DB.First(&category, "id = ?", id).Error; err != nil {
		utils.WriteError(w, err, "Database error")
		return
	}

	remaining := make(models.StringSlice, 0, len(category.Skills))
	for _, skill := range category.Skills {
		if skill != skillName {
			remaining = append(remaining, skill)
		}
	}
	if len(remaining) == len(category.Skills) {
		utils.WriteError(w, gorm.ErrRecordNotFound, "")
		return
	}

	category.Skills = remaining
	if err := repositories.DB.Save(&category).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Error removing skill",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: fmt.Sprintf("Skill '%s' removed from category successfully", skillName),
	})
}
