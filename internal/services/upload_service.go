package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"templify/pkg/utils"
)

// 50MB cap on the template archive.
const maxArchiveSize = 50 * 1024 * 1024

var archiveMimeTypes = map[string]bool{
	"application/zip":              true,
	"application/x-zip-compressed": true,
}

var imageMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

type S3Config struct {
	Bucket string
}

type UploadedFile struct {
	URL  string
	Size int64
}

type UploadServiceInterface interface {
	UploadTemplateArchive(ctx context.Context, file *multipart.FileHeader) (*UploadedFile, error)
	UploadPreviewImages(ctx context.Context, files []*multipart.FileHeader) ([]string, error)
}

type s3UploadService struct {
	cfg      S3Config
	uploader *manager.Uploader
}

func NewS3UploadService(cfg S3Config) (UploadServiceInterface, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("missing S3 bucket")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)
	return &s3UploadService{
		cfg:      cfg,
		uploader: manager.NewUploader(client),
	}, nil
}

func (s *s3UploadService) UploadTemplateArchive(ctx context.Context, file *multipart.FileHeader) (*UploadedFile, error) {
	if file == nil {
		return nil, utils.ErrInvalidUpload
	}
	if file.Size > maxArchiveSize {
		return nil, utils.ErrInvalidUpload
	}
	if !archiveMimeTypes[file.Header.Get("Content-Type")] {
		return nil, utils.ErrInvalidUpload
	}

	url, err := s.putObject(ctx, "archives", file)
	if err != nil {
		return nil, err
	}
	return &UploadedFile{URL: url, Size: file.Size}, nil
}

func (s *s3UploadService) UploadPreviewImages(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, file := range files {
		if !imageMimeTypes[file.Header.Get("Content-Type")] {
			return nil, utils.ErrInvalidUpload
		}
		url, err := s.putObject(ctx, "previews", file)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func (s *s3UploadService) putObject(ctx context.Context, prefix string, file *multipart.FileHeader) (string, error) {
	f, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload %s: %w", file.Filename, err)
	}
	defer f.Close()

	// Unique key so concurrent uploads of same-named files never collide.
	key := fmt.Sprintf("%s/%s-%s-%s",
		prefix,
		time.Now().Format("20060102150405"),
		uuid.New().String()[:8],
		file.Filename,
	)

	result, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        f,
		ACL:         "public-read",
		ContentType: aws.String(file.Header.Get("Content-Type")),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", file.Filename, err)
	}

	return result.Location, nil
}
