package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/YutoSekiguchi/Lyricium/config"
	"github.com/YutoSekiguchi/Lyricium/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var (
	minioClient *minio.Client
	minioBucket string
)

// InitMinio initializes the MinIO client and ensures the bucket exists.
// Mirroring stays disabled when no endpoint is configured.
func InitMinio(cfg *config.Config) error {
	if cfg.MinioEndpoint == "" {
		logger.Info("MinIO endpoint not configured, upload mirroring disabled")
		return nil
	}

	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to create MinIO client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", cfg.MinioBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", cfg.MinioBucket, err)
		}
		logger.Info("Created MinIO bucket", logger.String("bucket", cfg.MinioBucket))
	}

	minioClient = client
	minioBucket = cfg.MinioBucket
	logger.Info("Connected to MinIO", logger.String("bucket", cfg.MinioBucket))
	return nil
}

// Enabled reports whether upload mirroring is active.
func Enabled() bool {
	return minioClient != nil
}

// MirrorFile copies a stored upload into the bucket under objectName.
func MirrorFile(ctx context.Context, objectName, filePath, contentType string) error {
	if minioClient == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := minioClient.FPutObject(ctx, minioBucket, objectName, filePath, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to mirror %s to MinIO: %w", objectName, err)
	}
	return nil
}
