package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/AmrIbrahim41/tfg-backend/config"
)

// Presigned links only need to outlive one page view.
const photoURLExpiry = 15 * time.Minute

// PhotoService stores client photos in S3. It is optional: when no bucket
// is configured the upload endpoints return an error but everything else
// keeps working.
type PhotoService struct {
	s3Config *config.S3Config
}

func NewPhotoService(s3Config *config.S3Config) *PhotoService {
	return &PhotoService{s3Config: s3Config}
}

// Enabled reports whether object storage is configured.
func (s *PhotoService) Enabled() bool {
	return s.s3Config != nil && s.s3Config.Client != nil
}

// UploadClientPhoto stores the image under a client-scoped key and returns
// that key for persisting on the client row. The bucket stays private;
// reads go through DownloadURL.
func (s *PhotoService) UploadClientPhoto(ctx context.Context, clientID uuid.UUID, data []byte, contentType string) (string, error) {
	if !s.Enabled() {
		return "", fmt.Errorf("photo storage is not configured")
	}

	ext := "jpg"
	if strings.HasSuffix(contentType, "png") {
		ext = "png"
	}
	key := fmt.Sprintf("client-photos/%s/%s.%s", clientID, uuid.New(), ext)

	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return key, nil
}

// DownloadURL presigns a time-limited download link for a stored photo.
func (s *PhotoService) DownloadURL(ctx context.Context, key string) (string, error) {
	if !s.Enabled() {
		return "", fmt.Errorf("photo storage is not configured")
	}
	return s.s3Config.GeneratePresignedURL(ctx, key, photoURLExpiry)
}
