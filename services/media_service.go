package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// MediaService issues presigned S3 URLs for profile photo upload and read
type MediaService struct {
	Bucket    string
	presigner *s3.PresignClient
}

// NewMediaService builds the presigner for S3_BUCKET_NAME. The caller is
// expected to skip construction entirely when no bucket is configured.
func NewMediaService(ctx context.Context) (*MediaService, error) {
	bucket := os.Getenv("S3_BUCKET_NAME")
	if bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET_NAME is not set")
	}
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &MediaService{
		Bucket:    bucket,
		presigner: s3.NewPresignClient(s3.NewFromConfig(cfg)),
	}, nil
}

// GenerateUploadURL generates a presigned URL for uploading a photo
func (ms *MediaService) GenerateUploadURL(ctx context.Context, fileName, fileType string) (string, string, error) {
	key := "profile-photos/" + time.Now().Format("20060102150405") + "-" + fileName
	params := &s3.PutObjectInput{
		Bucket:      aws.String(ms.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(fileType),
	}
	presigned, err := ms.presigner.PresignPutObject(ctx, params, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", "", err
	}
	return presigned.URL, key, nil
}

// GenerateReadURL generates a presigned URL for reading a photo
func (ms *MediaService) GenerateReadURL(ctx context.Context, key string) (string, error) {
	params := &s3.GetObjectInput{
		Bucket: aws.String(ms.Bucket),
		Key:    aws.String(key),
	}
	presigned, err := ms.presigner.PresignGetObject(ctx, params, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", err
	}
	return presigned.URL, nil
}
