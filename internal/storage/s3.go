package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const imagePrefix = "pizzas/"

// S3ImageStore serves the pizza images kept in a private S3 bucket.
// Reads go through short-lived presigned URLs instead of a public bucket.
type S3ImageStore struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
}

func NewS3ImageStore(ctx context.Context, bucket string) (*S3ImageStore, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return &S3ImageStore{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  bucket,
	}, nil
}

// PresignGet returns a URL valid for one hour to fetch the given image.
func (s *S3ImageStore) PresignGet(ctx context.Context, filename string) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(imagePrefix + filename),
	}, s3.WithPresignExpires(time.Hour))
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", filename, err)
	}
	return req.URL, nil
}

// Upload stores raw image bytes under a timestamped key and returns the
// object location and key.
func (s *S3ImageStore) Upload(ctx context.Context, filename, contentType string, body []byte) (string, string, error) {
	key := fmt.Sprintf("%s%d_%s", imagePrefix, time.Now().Unix(), filename)

	if _, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	}); err != nil {
		return "", "", fmt.Errorf("upload %s: %w", key, err)
	}

	location := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
	return location, key, nil
}
