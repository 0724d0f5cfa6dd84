package main

import (
	"fmt"
	"log"

	"maniflow/internal/config"
	"maniflow/internal/handler"
	"maniflow/internal/repository/postgres"
	"maniflow/internal/router"
	"maniflow/internal/service"
	s3storage "maniflow/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	fileRepo := postgres.NewFileMetaRepo(db)
	manifestRepo := postgres.NewManifestRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize services
	manifestSvc := service.NewManifestService(manifestRepo, fileRepo, s3Client, &cfg.S3)

	// Initialize handlers
	manifestH := handler.NewManifestHandler(manifestSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, manifestH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
