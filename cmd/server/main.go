// @title           Portfolio Backend API
// @version         1.0
// @description     REST API for a personal portfolio site: public content reads, an admin mutation surface and file uploads for project images, resumes, certificates and the profile photo.

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT from /api/auth/login.

package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"portfolio-backend/internal/api"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/mailer"
	"portfolio-backend/internal/repositories"
	"portfolio-backend/internal/storage"
	"portfolio-backend/internal/upload"
)

func main() {
	repositories.ConnectDatabase()

	// The settings singleton is created here, once, not lazily on first read.
	if _, err := repositories.EnsureSettings(repositories.DB); err != nil {
		log.Fatalf("Could not initialize site settings: %v", err)
	}

	var store storage.BlobStore
	switch config.Envs.StorageBackend {
	case "s3":
		s3cfg := config.Envs.S3
		store = storage.NewS3Store(s3cfg.Endpoint, s3cfg.AccessKeyID, s3cfg.SecretAccessKey, s3cfg.BucketName, s3cfg.Region)
	default:
		disk, err := storage.NewDiskStore(config.Envs.UploadsDir, upload.Categories()...)
		if err != nil {
			log.Fatalf("Could not initialize uploads directory: %v", err)
		}
		store = disk
	}

	handler := api.SetupRouter(api.Deps{
		Uploads: upload.NewService(store),
		Store:   store,
		Mail:    mailer.New(config.Envs.SMTP),
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.Envs.Port),
		Handler: handler,
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Starting portfolio backend on port: %s", config.Envs.Port)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on port %s: %v", config.Envs.Port, err)
	}
}
