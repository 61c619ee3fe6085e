package handlers

import (
	"net/http"
	"strings"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/repositories"
	"portfolio-backend/internal/upload"
	"portfolio-backend/internal/utils"
)

type ResumeHandler struct {
	uploads *upload.Service
}

func NewResumeHandler(uploads *upload.Service) *ResumeHandler {
	return &ResumeHandler{uploads: uploads}
}

// resumeField resolves the stored field name: a literal "other" selection
// uses the free-text custom name instead.
func resumeField(field, customFieldName string) string {
	field = strings.TrimSpace(field)
	custom := strings.TrimSpace(customFieldName)
	if strings.EqualFold(field, "other") && custom != "" {
		return custom
	}
	return field
}

// GET /api/resumes
func (h *ResumeHandler) List(w http.ResponseWriter, r *http.Request) {
	var resumes []models.Resume
	if err := repositories.DB.Order("created_at DESC").Find(&resumes).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Database error",
		})
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Resumes retrieved successfully",
		Data:    resumes,
	})
}

// GET /api/resumes/{id}
func (h *ResumeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var resume models.Resume
	if err := repositories.DB.First(&resume, "id = ?", id).Error; err != nil {
		utils.WriteError(w, err, "Database error")
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Resume retrieved successfully",
		Data:    resume,
	})
}

// Create godoc
// @Summary Upload a resume
// @Description Multipart form with a required PDF (field resumeFile, max 5MB) and a required field/category. A validation or database failure after the upload deletes the stored file again.
// @Tags Resumes
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Success 201 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Router /api/resumes [post]
func (h *ResumeHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid upload form",
		})
		return
	}

	accepted, err := h.uploads.Accept(r, upload.KindResumeFile)
	if err != nil {
		utils.WriteError(w, err, "Resume upload failed")
		return
	}
	if accepted == nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "No resume file uploaded. Please select a PDF.",
		})
		return
	}

	var resume models.Resume
	err = h.uploads.WithCleanup(r.Context(), accepted, func() error {
		if err := upload.RequireFields(r.Form, "field"); err != nil {
			return err
		}

		resume = models.Resume{
			Field:            resumeField(r.FormValue("field"), r.FormValue("customFieldName")),
			OriginalFilename: accepted.OriginalName,
			StoredFilename:   accepted.StoredName,
			FilePath:         accepted.LogicalPath,
			Mimetype:         accepted.MimeType,
			Size:             accepted.SizeBytes,
		}
		return repositories.DB.Create(&resume).Error
	})
	if err != nil {
		utils.WriteError(w, err, "Error saving resume data")
		return
	}

	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "Resume uploaded successfully",
		Data:    resume,
	})
}

// PUT /api/resumes/{id}
func (h *ResumeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid upload form",
		})
		return
	}

	accepted, err := h.uploads.Accept(r, upload.KindResumeFile)
	if err != nil {
		utils.WriteError(w, err, "Resume upload failed")
		return
	}

	var resume models.Resume
	var oldStored string
	err = h.uploads.WithCleanup(r.Context(), accepted, func() error {
		if err := repositories.DB.First(&resume, "id = ?", id).Error; err != nil {
			return err
		}

		if field, ok := formValue(r, "field"); ok && strings.TrimSpace(field) != "" {
			resume.Field = resumeField(field, r.FormValue("customFieldName"))
		}

		if accepted != nil {
			oldStored = resume.StoredFilename
			resume.OriginalFilename = accepted.OriginalName
			resume.StoredFilename = accepted.StoredName
			resume.FilePath = accepted.LogicalPath
			resume.Mimetype = accepted.MimeType
			resume.Size = accepted.SizeBytes
		}
		return repositories.DB.Save(&resume).Error
	})
	if err != nil {
		utils.WriteError(w, err, "Error updating resume data")
		return
	}

	if accepted != nil && oldStored != "" {
		h.uploads.Remove(r.Context(), accepted.Category, oldStored)
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Resume updated successfully",
		Data:    resume,
	})
}

// DELETE /api/resumes/{id}
func (h *ResumeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var resume models.Resume
	if err := repositories.DB.First(&resume, "id = ?", id).Error; err != nil {
		utils.WriteError(w, err, "Database error")
		return
	}

	policy, _ := upload.PolicyFor(upload.KindResumeFile)
	h.uploads.Remove(r.Context(), policy.Category, resume.StoredFilename)

	if err := repositories.DB.Delete(&resume).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Error removing resume record",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Resume (file and record) removed successfully",
	})
}
