package handlers

import (
	"net/http"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/repositories"
	"portfolio-backend/internal/utils"
	"golang.org/x/sync/errgroup"
)

// GET /api/admin/dashboard-summary
//
// Counts fan out in parallel; skills are summed from the category rows since
// they live in an embedded list, not their own table.
func DashboardSummary(w http.ResponseWriter, r *http.Request) {
	db := repositories.DB.WithContext(r.Context())

	var projectCount, resumeCount, messageCount int64
	var categories []models.SkillCategory

	g, _ := errgroup.WithContext(r.Context())
	g.Go(func() error {
		return db.Model(&models.Project{}).Count(&projectCount).Error
	})
	g.Go(func() error {
		return db.Model(&models.Resume{}).Count(&resumeCount).Error
	})
	g.Go(func() error {
		return db.Model(&models.Message{}).Count(&messageCount).Error
	})
	g.Go(func() error {
		return db.Find(&categories).Error
	})
	if err := g.Wait(); err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Server error fetching dashboard summary",
		})
		return
	}

	totalSkills := 0
	for _, category := range categories {
		totalSkills += len(category.Skills)
	}

	var recentMessages []models.Message
	if err := db.Order("created_at DESC").Limit(5).Find(&recentMessages).Error; err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Server error fetching dashboard summary",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Dashboard summary retrieved successfully",
		Data: map[string]any{
			"stats": map[string]any{
				"projects": projectCount,
				"resumes":  resumeCount,
				"messages": messageCount,
				"skills":   totalSkills,
			},
			"recentMessages": recentMessages,
		},
	})
}
