// File: internal/filestorage/s3.go
package filestorage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// S3Config holds configuration for S3 or MinIO storage.
type S3Config struct {
	Bucket         string
	Region         string
	Endpoint       string // internal endpoint (e.g. minio:9000); empty for AWS S3
	PublicEndpoint string // endpoint used in returned URLs (e.g. localhost:9000)
	AccessKeyID    string
	SecretKey      string
	UsePathStyle   bool
}

// S3Storage stores objects in AWS S3 or a MinIO-compatible endpoint.
type S3Storage struct {
	client *s3.Client
	cfg    S3Config
	logger *zap.Logger
}

var _ Storage = (*S3Storage)(nil)

// NewS3Storage creates an S3-backed storage.
func NewS3Storage(ctx context.Context, cfg S3Config, logger *zap.Logger) (*S3Storage, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("bucket name is required")
	}

	var awsCfg aws.Config
	var err error

	if cfg.Endpoint != "" {
		awsCfg, err = awsconfig.LoadDefaultConfig(ctx,
			awsconfig.WithRegion(cfg.Region),
			awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, "")),
		)
	} else {
		awsCfg, err = awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(withScheme(cfg.Endpoint))
			o.UsePathStyle = cfg.UsePathStyle
		}
	})

	logger.Info("S3 file storage initialized", zap.String("bucket", cfg.Bucket))
	return &S3Storage{client: client, cfg: cfg, logger: logger}, nil
}

// Upload stores the content under key and returns its public URL.
func (s *S3Storage) Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
		Body:   r,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		s.logger.Error("Failed to upload object", zap.String("key", key), zap.Error(err))
		return "", fmt.Errorf("failed to upload to s3: %w", err)
	}

	return s.publicURL(key), nil
}

// Delete removes the object under key.
func (s *S3Storage) Delete(ctx context.Context, key string) error {
	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	}); err != nil {
		s.logger.Error("Failed to delete object", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("failed to delete from s3: %w", err)
	}
	return nil
}

func (s *S3Storage) publicURL(key string) string {
	if s.cfg.PublicEndpoint != "" {
		return fmt.Sprintf("%s/%s/%s", withScheme(s.cfg.PublicEndpoint), s.cfg.Bucket, key)
	}
	if s.cfg.Endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", withScheme(s.cfg.Endpoint), s.cfg.Bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
}

func withScheme(endpoint string) string {
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}
	return "http://" + endpoint
}
