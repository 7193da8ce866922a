// Package archive uploads exported reports to S3-compatible object storage
// so reorder CSVs survive the machine that produced them.
package archive

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/danisworo/stocklens/internal/config"
)

// Uploader pushes report files into a bucket.
type Uploader interface {
	Upload(ctx context.Context, localPath string) (string, error)
}

type minioUploader struct {
	client *minio.Client
	bucket string
}

type noopUploader struct{}

// NewUploader returns a minio-backed uploader, or a noop when archiving is
// disabled.
func NewUploader(cfg config.ArchiveConfig) (Uploader, error) {
	if !cfg.Enabled {
		return &noopUploader{}, nil
	}
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("archive endpoint must be provided")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("archive credentials must be provided")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("archive bucket must be provided")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create archive client: %w", err)
	}

	return &minioUploader{client: client, bucket: cfg.Bucket}, nil
}

// NewNoopUploader returns an uploader that does nothing.
func NewNoopUploader() Uploader {
	return &noopUploader{}
}

// Upload stores the file under reports/YYYY/MM/DD/<basename> and returns the
// object key.
func (u *minioUploader) Upload(ctx context.Context, localPath string) (string, error) {
	key := fmt.Sprintf("reports/%s/%s", time.Now().UTC().Format("2006/01/02"), filepath.Base(localPath))

	_, err := u.client.FPutObject(ctx, u.bucket, key, localPath, minio.PutObjectOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", localPath, err)
	}
	return key, nil
}

func (u *noopUploader) Upload(ctx context.Context, localPath string) (string, error) {
	return "", nil
}
