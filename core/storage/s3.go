package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	appconfig "crewhub/core/config"
	"crewhub/core/logger"
	"crewhub/core/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectStorage uploads board attachments to S3.
type ObjectStorage struct {
	client *s3.Client
	bucket string
	region string
}

type ObjectStorageInterface interface {
	Upload(ctx context.Context, prefix string, filename string, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}

func NewObjectStorage(cfg appconfig.S3Config) *ObjectStorage {
	client := s3.New(s3.Options{
		Region: cfg.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
		BaseEndpoint: optionalEndpoint(cfg.Endpoint),
	})

	return &ObjectStorage{
		client: client,
		bucket: cfg.Bucket,
		region: cfg.Region,
	}
}

func optionalEndpoint(endpoint string) *string {
	if endpoint == "" {
		return nil
	}
	return &endpoint
}

// Upload stores the object under a random key below prefix and returns the
// public URL.
func (s *ObjectStorage) Upload(ctx context.Context, prefix string, filename string, contentType string, body io.Reader) (string, error) {
	key := fmt.Sprintf("%s/%s-%s", prefix, utils.GenerateID(), filename)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		logger.Error("ObjectStorage:Upload", err)
		return "", err
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}

// KeyFromURL extracts the object key from an upload URL returned by Upload.
// Returns empty string for URLs that do not look like object URLs.
func KeyFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Path, "/")
}

func (s *ObjectStorage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		logger.Error("ObjectStorage:Delete", err)
	}
	return err
}
