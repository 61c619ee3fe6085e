package handlers

import (
	"encoding/json"
	"net/http"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/repositories"
	"portfolio-backend/internal/upload"
	"portfolio-backend/internal/utils"
)

type SettingsHandler struct {
	uploads *upload.Service
}

func NewSettingsHandler(uploads *upload.Service) *SettingsHandler {
	return &SettingsHandler{uploads: uploads}
}

// loadSettings fetches the singleton row; startup guarantees it exists.
func loadSettings() (*models.Setting, error) {
	var settings models.Setting
	err := repositories.DB.Where("site_identifier = ?", models.SettingsIdentifier).First(&settings).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// GET /api/settings
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := loadSettings()
	if err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Site settings are not initialized",
		})
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Settings retrieved successfully",
		Data:    settings,
	})
}

// PUT /api/settings
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	settings, err := loadSettings()
	if err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Site settings are not initialized",
		})
		return
	}

	var input struct {
		OwnerName              *string   `json:"ownerName"`
		JobTitle               *string   `json:"jobTitle"`
		Specialization         *string   `json:"specialization"`
		HomePageIntroParagraph *string   `json:"homePageIntroParagraph"`
		AboutMeIntroduction    *[]string `json:"aboutMeIntroduction"`
		AboutMePhilosophy      *string   `json:"aboutMePhilosophy"`
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

	if input.OwnerName != nil {
		settings.OwnerName = *input.OwnerName
	}
	if input.JobTitle != nil {
		settings.JobTitle = *input.JobTitle
	}
	if input.Specialization != nil {
		settings.Specialization = *input.Specialization
	}
	if input.HomePageIntroParagraph != nil {
		settings.HomePageIntroParagraph = *input.HomePageIntroParagraph
	}
	if input.AboutMeIntroduction != nil {
		settings.AboutMeIntroduction = models.StringSlice(*input.AboutMeIntroduction)
	}
	if input.AboutMePhilosophy != nil {
		settings.AboutMePhilosophy = *input.AboutMePhilosophy
	}

	if err := repositories.DB.Save(settings).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Error updating settings",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Settings updated successfully",
		Data:    settings,
	})
}

// PUT /api/settings/profile-photo
//
// The photo is mandatory here; the old one is removed only after the updated
// settings row is saved.
func (h *SettingsHandler) UploadProfilePhoto(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid upload form",
		})
		return
	}

	accepted, err := h.uploads.Accept(r, upload.KindProfilePhoto)
	if err != nil {
		utils.WriteError(w, err, "Profile photo upload failed")
		return
	}
	if accepted == nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "No profile photo file uploaded.",
		})
		return
	}

	var settings *models.Setting
	var oldStored string
	err = h.uploads.WithCleanup(r.Context(), accepted, func() error {
		var err error
		settings, err = loadSettings()
		if err != nil {
			return err
		}
		oldStored = settings.StoredProfilePhotoFilename
		settings.ProfilePhotoURL = accepted.LogicalPath
		settings.StoredProfilePhotoFilename = accepted.StoredName
		return repositories.DB.Save(settings).Error
	})
	if err != nil {
		utils.WriteError(w, err, "Error updating profile photo")
		return
	}

	if oldStored != "" {
		h.uploads.Remove(r.Context(), accepted.Category, oldStored)
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Profile photo updated successfully",
		Data: map[string]any{
			"profilePhotoUrl": settings.ProfilePhotoURL,
			"settings":        settings,
		},
	})
}
