package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/Go4ItSports/go4it/config"
	"github.com/Go4ItSports/go4it/internal/domain"
)

const defaultPresignTTL = 15 * time.Minute

// S3VideoStorage presigns direct browser uploads to an S3 compatible bucket
type S3VideoStorage struct {
	client   *s3.S3
	bucket   string
	region   string
	endpoint string
	ttl      time.Duration
	now      func() time.Time
}

func createS3Session(cfg config.StorageConfig) (*session.Session, error) {
	awsCfg := &aws.Config{
		Region: aws.String(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		awsCfg.Credentials = credentials.NewStaticCredentials(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
		awsCfg.S3ForcePathStyle = aws.Bool(true)
	}
	return session.NewSession(awsCfg)
}

func NewS3VideoStorage(cfg config.StorageConfig) (*S3VideoStorage, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage bucket is required")
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}
	sess, err := createS3Session(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 session: %w", err)
	}
	ttl := cfg.PresignTTL
	if ttl <= 0 {
		ttl = defaultPresignTTL
	}
	return &S3VideoStorage{
		client:   s3.New(sess),
		bucket:   cfg.Bucket,
		region:   cfg.Region,
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		ttl:      ttl,
		now:      time.Now,
	}, nil
}

var _ domain.VideoStorage = (*S3VideoStorage)(nil)

// PresignUpload returns a PUT URL valid for the configured TTL
func (s *S3VideoStorage) PresignUpload(ctx context.Context, key, contentType string) (string, time.Time, error) {
	req, _ := s.client.PutObjectRequest(&s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	})
	req.SetContext(ctx)

	signed, err := req.Presign(s.ttl)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to presign upload: %w", err)
	}
	return signed, s.now().Add(s.ttl), nil
}

// ObjectURL is the public location of key once uploaded
func (s *S3VideoStorage) ObjectURL(key string) string {
	escaped := (&url.URL{Path: key}).EscapedPath()
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, escaped)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, escaped)
}
