package api

import (
	"fmt"
	"net/http"

	_ "portfolio-backend/docs"
	httpSwagger "github.com/swaggo/http-swagger"

	"portfolio-backend/internal/api/handlers"
	"portfolio-backend/internal/api/middleware"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/mailer"
	"portfolio-backend/internal/storage"
	"portfolio-backend/internal/upload"
	"github.com/rs/cors"
)

// Deps carries everything the handlers need. The blob store and upload
// service are built once at startup and passed in explicitly.
type Deps struct {
	Uploads *upload.Service
	Store   storage.BlobStore
	Mail    mailer.Mailer
}

func SetupRouter(deps Deps) http.Handler {
	mux := http.NewServeMux()
	c := cors.New(config.Envs.CorsConfig)

	authHandler := handlers.NewAuthHandler(deps.Mail)
	projectHandler := handlers.NewProjectHandler(deps.Uploads)
	resumeHandler := handlers.NewResumeHandler(deps.Uploads)
	certificateHandler := handlers.NewCertificateHandler(deps.Uploads)
	settingsHandler := handlers.NewSettingsHandler(deps.Uploads)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	mux.HandleFunc("/docs/", httpSwagger.WrapHandler)

	// Uploaded assets are exposed read-only when blobs live on local disk.
	if disk, ok := deps.Store.(*storage.DiskStore); ok {
		mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(disk.Root()))))
	}

	// ---------- AUTH ----------
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.Handle("GET /api/auth/profile", middleware.Protect(http.HandlerFunc(authHandler.Profile)))
	mux.HandleFunc("POST /api/auth/forgotpassword", authHandler.ForgotPassword)
	mux.HandleFunc("PUT /api/auth/resetpassword/{token}", authHandler.ResetPassword)

	// ---------- PUBLIC READS ----------
	mux.HandleFunc("GET /api/projects", projectHandler.List)
	mux.HandleFunc("GET /api/projects/{id}", projectHandler.GetByID)
	mux.HandleFunc("GET /api/resumes", resumeHandler.List)
	mux.HandleFunc("GET /api/resumes/{id}", resumeHandler.GetByID)
	mux.HandleFunc("GET /api/certificates", certificateHandler.List)
	mux.HandleFunc("GET /api/certificates/{id}", certificateHandler.GetByID)
	mux.HandleFunc("GET /api/education", handlers.ListEducation)
	mux.HandleFunc("GET /api/education/{id}", handlers.GetEducationByID)
	mux.HandleFunc("GET /api/achievements", handlers.ListAchievements)
	mux.HandleFunc("GET /api/skillcategories", handlers.ListSkillCategories)
	mux.HandleFunc("GET /api/skillcategories/{id}", handlers.GetSkillCategoryByID)
	mux.HandleFunc("GET /api/sociallinks", handlers.ListSocialLinks)
	mux.HandleFunc("GET /api/settings", settingsHandler.Get)
	mux.HandleFunc("POST /api/contact", handlers.SubmitContactForm)

	// ---------- ADMIN MUTATIONS ----------
	admin := func(h http.HandlerFunc) http.Handler {
		return middleware.Admin(h)
	}

	mux.Handle("POST /api/projects", admin(projectHandler.Create))
	mux.Handle("PUT /api/projects/{id}", admin(projectHandler.Update))
	mux.Handle("DELETE /api/projects/{id}", admin(projectHandler.Delete))

	mux.Handle("POST /api/resumes", admin(resumeHandler.Create))
	mux.Handle("PUT /api/resumes/{id}", admin(resumeHandler.Update))
	mux.Handle("DELETE /api/resumes/{id}", admin(resumeHandler.Delete))

	mux.Handle("POST /api/certificates", admin(certificateHandler.Create))
	mux.Handle("PUT /api/certificates/{id}", admin(certificateHandler.Update))
	mux.Handle("DELETE /api/certificates/{id}", admin(certificateHandler.Delete))

	mux.Handle("POST /api/education", admin(handlers.CreateEducation))
	mux.Handle("PUT /api/education/{id}", admin(handlers.UpdateEducation))
	mux.Handle("DELETE /api/education/{id}", admin(handlers.DeleteEducation))

	mux.Handle("POST /api/achievements", admin(handlers.CreateAchievement))
	mux.Handle("PUT /api/achievements/{id}", admin(handlers.UpdateAchievement))
	mux.Handle("DELETE /api/achievements/{id}", admin(handlers.DeleteAchievement))

	mux.Handle("POST /api/skillcategories", admin(handlers.CreateSkillCategory))
	mux.Handle("PUT /api/skillcategories/{id}", admin(handlers.UpdateSkillCategory))
	mux.Handle("DELETE /api/skillcategories/{id}", admin(handlers.DeleteSkillCategory))
	mux.Handle("POST /api/skillcategories/{id}/skills", admin(handlers.AddSkillToCategory))
	mux.Handle("DELETE /api/skillcategories/{id}/skills/{skill}", admin(handlers.RemoveSkillFromCategory))

	mux.Handle("GET /api/sociallinks/admin", admin(handlers.ListAdminSocialLinks))
	mux.HandleFunc("GET /api/sociallinks/{id}", handlers.GetSocialLinkByID)
	mux.Handle("POST /api/sociallinks", admin(handlers.CreateSocialLink))
	mux.Handle("PUT /api/sociallinks/{id}", admin(handlers.UpdateSocialLink))
	mux.Handle("DELETE /api/sociallinks/{id}", admin(handlers.DeleteSocialLink))

	mux.Handle("GET /api/contact", admin(handlers.ListMessages))
	mux.Handle("PUT /api/contact/{id}/read", admin(handlers.MarkMessageRead))
	mux.Handle("DELETE /api/contact/{id}", admin(handlers.DeleteMessage))

	mux.Handle("PUT /api/settings", admin(settingsHandler.Update))
	mux.Handle("PUT /api/settings/profile-photo", admin(settingsHandler.UploadProfilePhoto))

	mux.Handle("GET /api/admin/dashboard-summary", admin(handlers.DashboardSummary))

	handler := c.Handler(mux)
	handler = middleware.Logger(handler)
	return handler
}
