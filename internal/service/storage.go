package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"raeya/familyboard/internal/config"
	"raeya/familyboard/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const storageFolder = "message-media"

// S3AttachmentStore implements AttachmentStore against an S3-compatible
// bucket (MinIO in development, S3 proper otherwise).
type S3AttachmentStore struct {
	config   *config.Config
	uploader *manager.Uploader
	s3Client *s3.Client
}

func NewS3AttachmentStore(cfg *config.Config) (*S3AttachmentStore, error) {
	s3Opts := []func(*s3.Options){}

	if cfg.S3Endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true // required for MinIO
		})
	}

	credsProvider := credentials.NewStaticCredentialsProvider(
		cfg.S3AccessKeyID,
		cfg.S3SecretAccessKey,
		"",
	)

	awsCfg := aws.Config{
		Region:      cfg.S3Region,
		Credentials: credsProvider,
	}

	s3Client := s3.NewFromConfig(awsCfg, s3Opts...)

	store := &S3AttachmentStore{
		config:   cfg,
		uploader: manager.NewUploader(s3Client),
		s3Client: s3Client,
	}

	log.Printf("attachment store initialized (bucket %s)", cfg.S3BucketName)
	return store, nil
}

// objectKey derives the collision-resistant storage key:
// message-media/{kind}/{messageId}_{timestamp}_{originalFilename}.
func objectKey(messageID, kind, filename string) string {
	return fmt.Sprintf("%s/%s/%s_%d_%s", storageFolder, kind, messageID, time.Now().UnixMilli(), filename)
}

func (s *S3AttachmentStore) Upload(ctx context.Context, file *model.FileUpload, messageID, kind string) (*model.Attachment, error) {
	key := objectKey(messageID, kind, file.Name)

	result, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.S3BucketName),
		Key:         aws.String(key),
		Body:        file.Body,
		ContentType: aws.String(file.ContentType),
	})
	if err != nil {
		return nil, &model.StorageWriteError{Key: key, Err: err}
	}

	return &model.Attachment{
		URL:  result.Location,
		Path: key,
		Name: file.Name,
		Size: file.Size,
		Type: file.ContentType,
	}, nil
}

// Remove deletes the object at path. Failures are logged and swallowed so a
// lost blob never blocks removing its reference.
func (s *S3AttachmentStore) Remove(ctx context.Context, path string) {
	_, err := s.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.config.S3BucketName),
		Key:    aws.String(path),
	})
	if err != nil {
		log.Printf("%v", &model.StorageDeleteError{Path: path, Err: err})
	}
}

// HealthCheck verifies the bucket is reachable.
func (s *S3AttachmentStore) HealthCheck(ctx context.Context) error {
	_, err := s.s3Client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(s.config.S3BucketName),
	})
	if err != nil {
		return fmt.Errorf("storage health check failed: %w", err)
	}
	return nil
}
