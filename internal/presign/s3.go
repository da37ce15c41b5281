package presign

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// DefaultTTL is how long locally presigned URLs stay valid.
const DefaultTTL = 5 * time.Minute

// S3Config contains configuration for presigning objects directly against S3.
type S3Config struct {
	BucketName string
	// Region overrides the region from the shared AWS configuration.
	Region string
	// Endpoint overrides the S3 endpoint, e.g. for S3 compatible storage.
	// Path style addressing is used when it is set.
	Endpoint string
	TTL      time.Duration
}

// S3Issuer presigns GetObject requests locally.
type S3Issuer struct {
	presigner *s3.PresignClient
	cfg       S3Config
}

var _ Issuer = (*S3Issuer)(nil)

// NewS3Issuer creates an S3Issuer. Credentials and region are resolved by the
// AWS SDK default chain (environment, shared config and credentials files,
// SSO, instance metadata).
func NewS3Issuer(ctx context.Context, cfg S3Config) (*S3Issuer, error) {
	if cfg.BucketName == "" {
		return nil, ErrEmptyBucket
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}

	var loadOpts []func(*config.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(cfg.Region))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Issuer{
		presigner: s3.NewPresignClient(client),
		cfg:       cfg,
	}, nil
}

// IssueDownloadURL presigns a GetObject request for objectKey. A non-empty
// fileName is served back as the attachment filename.
func (s *S3Issuer) IssueDownloadURL(ctx context.Context, objectKey, fileName string) (string, error) {
	if objectKey == "" {
		return "", ErrEmptyObjectKey
	}

	input := &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.BucketName),
		Key:    aws.String(objectKey),
	}
	if fileName != "" {
		input.ResponseContentDisposition = aws.String(contentDisposition(fileName))
	}

	req, err := s.presigner.PresignGetObject(ctx, input, s3.WithPresignExpires(s.cfg.TTL))
	if err != nil {
		return "", fmt.Errorf("failed to presign %s/%s: %w", s.cfg.BucketName, objectKey, err)
	}

	return req.URL, nil
}

func contentDisposition(fileName string) string {
	return fmt.Sprintf("attachment; filename=%q", fileName)
}
