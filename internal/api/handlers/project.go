package handlers

import (
	"net/http"
	"strings"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/repositories"
	"portfolio-backend/internal/upload"
	"portfolio-backend/internal/utils"
)

type ProjectHandler struct {
	uploads *upload.Service
}

func NewProjectHandler(uploads *upload.Service) *ProjectHandler {
	return &ProjectHandler{uploads: uploads}
}

// List godoc
// @Summary List all projects
// @Description Returns every project, newest first.
// @Tags Projects
// @Produce json
// @Success 200 {object} utils.Payload
// @Router /api/projects [get]
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	var projects []models.Project
	if err := repositories.DB.Order("created_at DESC").Find(&projects).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Database error",
		})
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Projects retrieved successfully",
		Data:    projects,
	})
}

// GET /api/projects/{id}
func (h *ProjectHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var project models.Project
	if err := repositories.DB.First(&project, "id = ?", id).Error; err != nil {
		utils.WriteError(w, err, "Database error")
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Project retrieved successfully",
		Data:    project,
	})
}

// Create godoc
// @Summary Add a new project
// @Description Multipart form with title, description, optional csv technologies and an optional image (field projectImage, image/*, max 10MB). The image is discarded again if validation or the database write fails.
// @Tags Projects
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Success 201 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Router /api/projects [post]
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid upload form",
		})
		return
	}

	accepted, err := h.uploads.Accept(r, upload.KindProjectImage)
	if err != nil {
		utils.WriteError(w, err, "Image upload failed")
		return
	}

	var project models.Project
	err = h.uploads.WithCleanup(r.Context(), accepted, func() error {
		if err := upload.RequireFields(r.Form, "title", "description"); err != nil {
			return err
		}

		project = models.Project{
			Title:        strings.TrimSpace(r.FormValue("title")),
			Description:  r.FormValue("description"),
			ProjectLink:  strings.TrimSpace(r.FormValue("projectLink")),
			GithubURL:    strings.TrimSpace(r.FormValue("githubUrl")),
			Technologies: upload.SplitList(r.FormValue("technologies")),
		}
		if accepted != nil {
			project.ImageURL = accepted.LogicalPath
			project.StoredImageFilename = accepted.StoredName
		}
		return repositories.DB.Create(&project).Error
	})
	if err != nil {
		utils.WriteError(w, err, "Error saving project data to database")
		return
	}

	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "Project created successfully",
		Data:    project,
	})
}

// PUT /api/projects/{id}
//
// Fields that are omitted keep their previous value. When a new image is
// supplied the old one is removed only after the updated record is saved.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	accepted, err := h.uploads.Accept(r, upload.KindProjectImage)
	if err != nil {
		utils.WriteError(w, err, "Image upload failed")
		return
	}

	var project models.Project
	var oldStored string
	err = h.uploads.WithCleanup(r.Context(), accepted, func() error {
		if err := repositories.DB.First(&project, "id = ?", id).Error; err != nil {
			return err
		}

		if title, ok := formValue(r, "title"); ok && strings.TrimSpace(title) != "" {
			project.Title = strings.TrimSpace(title)
		}
		if description, ok := formValue(r, "description"); ok && strings.TrimSpace(description) != "" {
			project.Description = description
		}
		if link, ok := formValue(r, "projectLink"); ok {
			project.ProjectLink = strings.TrimSpace(link)
		}
		if github, ok := formValue(r, "githubUrl"); ok {
			project.GithubURL = strings.TrimSpace(github)
		}
		if technologies, ok := formValue(r, "technologies"); ok && technologies != "" {
			project.Technologies = upload.SplitList(technologies)
		}

		if accepted != nil {
			oldStored = project.StoredImageFilename
			project.ImageURL = accepted.LogicalPath
			project.StoredImageFilename = accepted.StoredName
		}
		return repositories.DB.Save(&project).Error
	})
	if err != nil {
		utils.WriteError(w, err, "Error updating project data")
		return
	}

	if accepted != nil && oldStored != "" {
		h.uploads.Remove(r.Context(), accepted.Category, oldStored)
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Project updated successfully",
		Data:    project,
	})
}

// DELETE /api/projects/{id}
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var project models.Project
	if err := repositories.DB.First(&project, "id = ?", id).Error; err != nil {
		utils.WriteError(w, err, "Database error")
		return
	}

	// Best effort: the record goes away even if the image delete fails, so a
	// stray file can never block removing the project.
	policy, _ := upload.PolicyFor(upload.KindProjectImage)
	h.uploads.Remove(r.Context(), policy.Category, project.StoredImageFilename)

	if err := repositories.DB.Delete(&project).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Error removing project record",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Project removed successfully",
	})
}
