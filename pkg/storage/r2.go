package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	internalConfig "github.com/arunkarthik0712/travel-planner-backend/internal/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const keyPrefix = "uploads"

type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// R2Storage writes images to a Cloudflare R2 bucket through its S3 API.
type R2Storage struct {
	client    objectPutter
	bucket    string
	publicURL string
	newKey    func(filename string) string
}

func NewR2Storage(ctx context.Context, cfg internalConfig.R2Config) (*R2Storage, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
		config.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID))
	})

	return &R2Storage{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: cfg.PublicURL,
		newKey:    objectKey,
	}, nil
}

func (s *R2Storage) Upload(ctx context.Context, file Upload) (string, error) {
	if len(file.Data) == 0 {
		return "", fmt.Errorf("empty file %q", file.Filename)
	}

	key := s.newKey(file.Filename)
	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(file.Data),
		ContentLength: aws.Int64(int64(len(file.Data))),
	}
	if file.ContentType != "" {
		input.ContentType = aws.String(file.ContentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload to R2: %w", err)
	}
	return s.publicURL + "/" + key, nil
}

func objectKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return keyPrefix + "/" + uuid.NewString() + ext
}
