package minio

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/Usamakaleem743/Dragonlist-backend/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// MinioProvider stores card attachment files. Object keys are
// "attachments/<uuid><ext>" so a card title change never touches storage.
type MinioProvider struct {
	client    *minio.Client
	bucket    string
	maxSize   int64
	logger    *zap.Logger
	publicURL string
}

func NewMinioProvider(cfg *config.Config, logger *zap.Logger) (*MinioProvider, error) {
	minioURL := cfg.MinioURL
	secure := strings.HasPrefix(minioURL, "https://")
	minioURL = strings.TrimPrefix(strings.TrimPrefix(minioURL, "https://"), "http://")

	client, err := minio.New(minioURL, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioUser, cfg.MinioPassword, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	publicURL := cfg.MinioPublicURL
	if publicURL == "" {
		scheme := "http"
		if secure {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s", scheme, minioURL)
	}

	p := &MinioProvider{
		client:    client,
		bucket:    cfg.MinioBucket,
		maxSize:   cfg.MaxFileSize,
		logger:    logger,
		publicURL: strings.TrimRight(publicURL, "/"),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := p.ensureBucket(ctx); err != nil {
		return nil, err
	}

	logger.Info("MinIO initialized",
		zap.String("endpoint", minioURL),
		zap.String("bucket", cfg.MinioBucket),
	)

	return p, nil
}

func (p *MinioProvider) ensureBucket(ctx context.Context) error {
	exists, err := p.client.BucketExists(ctx, p.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := p.client.MakeBucket(ctx, p.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %q: %w", p.bucket, err)
	}
	return nil
}

// Upload streams a multipart file into the bucket and returns the object
// key together with its public URL.
func (p *MinioProvider) Upload(ctx context.Context, fileHeader *multipart.FileHeader) (string, string, error) {
	if fileHeader.Size > p.maxSize {
		return "", "", fmt.Errorf("file %q exceeds max size of %d bytes", fileHeader.Filename, p.maxSize)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	ext := filepath.Ext(fileHeader.Filename)
	objectKey := fmt.Sprintf("attachments/%s%s", uuid.NewString(), ext)

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = p.client.PutObject(ctx, p.bucket, objectKey, file, fileHeader.Size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload %q: %w", fileHeader.Filename, err)
	}

	p.logger.Debug("Attachment uploaded",
		zap.String("object_key", objectKey),
		zap.Int64("size", fileHeader.Size),
	)

	return objectKey, p.ObjectURL(objectKey), nil
}

func (p *MinioProvider) Remove(ctx context.Context, objectKey string) error {
	err := p.client.RemoveObject(ctx, p.bucket, objectKey, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to remove object %q: %w", objectKey, err)
	}
	return nil
}

func (p *MinioProvider) ObjectURL(objectKey string) string {
	return fmt.Sprintf("%s/%s/%s", p.publicURL, p.bucket, objectKey)
}
