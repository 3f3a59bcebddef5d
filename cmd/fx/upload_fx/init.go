package upload_fx

import (
	"go.uber.org/fx"
	"log"
	"os"
	"templify/internal/services"
)

var Module = fx.Provide(provideUploadService)

func provideUploadService() services.UploadServiceInterface {
	cfg := services.S3Config{
		Bucket: os.Getenv("S3_BUCKET_NAME"),
	}

	uploadService, err := services.NewS3UploadService(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize S3 upload service: %v", err)
	}

	return uploadService
}
