package storage

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"github.com/peakreach/agency-api/internal/config"
)

const presignTTL = 15 * time.Minute

// ImageResolver turns stored case-study image keys into presigned GET URLs.
// Uploads happen out of band; the API never writes to the bucket.
type ImageResolver struct {
	presigner *s3.PresignClient
	bucket    string
	logger    *zap.Logger
}

func NewImageResolver(cfg *config.Config, logger *zap.Logger) *ImageResolver {
	client := s3.New(s3.Options{
		Region: cfg.AWSRegion,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		),
	})

	return &ImageResolver{
		presigner: s3.NewPresignClient(client),
		bucket:    cfg.S3Bucket,
		logger:    logger,
	}
}

func (r *ImageResolver) ResolveURL(ctx context.Context, key string) (string, error) {
	req, err := r.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(presignTTL))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

// ResolveURLs maps keys to presigned URLs, skipping keys that fail to sign.
func (r *ImageResolver) ResolveURLs(ctx context.Context, keys []string) []string {
	urls := make([]string, 0, len(keys))
	for _, key := range keys {
		u, err := r.ResolveURL(ctx, key)
		if err != nil {
			r.logger.Warn("failed to presign image key",
				zap.String("key", key),
				zap.Error(err),
			)
			continue
		}
		urls = append(urls, u)
	}
	return urls
}
