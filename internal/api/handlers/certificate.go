package handlers

import (
	"net/http"
	"strings"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/repositories"
	"portfolio-backend/internal/upload"
	"portfolio-backend/internal/utils"
)

type CertificateHandler struct {
	uploads *upload.Service
}

func NewCertificateHandler(uploads *upload.Service) *CertificateHandler {
	return &CertificateHandler{uploads: uploads}
}

// GET /api/certificates
func (h *CertificateHandler) List(w http.ResponseWriter, r *http.Request) {
	var certificates []models.Certificate
	if err := repositories.DB.Order("date_issued DESC, created_at DESC").Find(&certificates).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Database error",
		})
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Certificates retrieved successfully",
		Data:    certificates,
	})
}

// GET /api/certificates/{id}
func (h *CertificateHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var certificate models.Certificate
	if err := repositories.DB.First(&certificate, "id = ?", id).Error; err != nil {
		utils.WriteError(w, err, "Database error")
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Certificate retrieved successfully",
		Data:    certificate,
	})
}

// POST /api/certificates
//
// The certificate file (image or PDF) is mandatory on create.
func (h *CertificateHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid upload form",
		})
		return
	}

	accepted, err := h.uploads.Accept(r, upload.KindCertificateFile)
	if err != nil {
		utils.WriteError(w, err, "Certificate upload failed")
		return
	}
	if accepted == nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Certificate file (image or PDF) is required.",
		})
		return
	}

	var certificate models.Certificate
	err = h.uploads.WithCleanup(r.Context(), accepted, func() error {
		if err := upload.RequireFields(r.Form, "name", "issuingOrganization"); err != nil {
			return err
		}

		certificate = models.Certificate{
			Name:                strings.TrimSpace(r.FormValue("name")),
			IssuingOrganization: strings.TrimSpace(r.FormValue("issuingOrganization")),
			Description:         r.FormValue("description"),
			CredentialID:        strings.TrimSpace(r.FormValue("credentialId")),
			CredentialURL:       strings.TrimSpace(r.FormValue("credentialUrl")),
			DateIssued:          strings.TrimSpace(r.FormValue("dateIssued")),
			ImageURL:            accepted.LogicalPath,
			StoredImageFilename: accepted.StoredName,
			Mimetype:            accepted.MimeType,
		}
		return repositories.DB.Create(&certificate).Error
	})
	if err != nil {
		utils.WriteError(w, err, "Error saving certificate data")
		return
	}

	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "Certificate created successfully",
		Data:    certificate,
	})
}

// PUT /api/certificates/{id}
func (h *CertificateHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	accepted, err := h.uploads.Accept(r, upload.KindCertificateFile)
	if err != nil {
		utils.WriteError(w, err, "Certificate upload failed")
		return
	}

	var certificate models.Certificate
	var oldStored string
	err = h.uploads.WithCleanup(r.Context(), accepted, func() error {
		if err := repositories.DB.First(&certificate, "id = ?", id).Error; err != nil {
			return err
		}

		if name, ok := formValue(r, "name"); ok && strings.TrimSpace(name) != "" {
			certificate.Name = strings.TrimSpace(name)
		}
		if org, ok := formValue(r, "issuingOrganization"); ok && strings.TrimSpace(org) != "" {
			certificate.IssuingOrganization = strings.TrimSpace(org)
		}
		if description, ok := formValue(r, "description"); ok {
			certificate.Description = description
		}
		if credentialID, ok := formValue(r, "credentialId"); ok {
			certificate.CredentialID = strings.TrimSpace(credentialID)
		}
		if credentialURL, ok := formValue(r, "credentialUrl"); ok {
			certificate.CredentialURL = strings.TrimSpace(credentialURL)
		}
		if dateIssued, ok := formValue(r, "dateIssued"); ok {
			certificate.DateIssued = strings.TrimSpace(dateIssued)
		}

		if accepted != nil {
			oldStored = certificate.StoredImageFilename
			certificate.ImageURL = accepted.LogicalPath
			certificate.StoredImageFilename = accepted.StoredName
			certificate.Mimetype = accepted.MimeType
		}
		return repositories.DB.Save(&certificate).Error
	})
	if err != nil {
		utils.WriteError(w, err, "Error updating certificate data")
		return
	}

	if accepted != nil && oldStored != "" {
		h.uploads.Remove(r.Context(), accepted.Category, oldStored)
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Certificate updated successfully",
		Data:    certificate,
	})
}

// DELETE /api/certificates/{id}
func (h *CertificateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var certificate models.Certificate
	if err := repositories.DB.First(&certificate, "id = ?", id).Error; err != nil {
		utils.WriteError(w, err, "Database error")
		return
	}

	policy, _ := upload.PolicyFor(upload.KindCertificateFile)
	h.uploads.Remove(r.Context(), policy.Category, certificate.StoredImageFilename)

	if err := repositories.DB.Delete(&certificate).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Error removing certificate record",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Certificate removed",
	})
}
