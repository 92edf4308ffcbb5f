// Package aws defines functions used to interact with the AWS API
package aws

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/spf13/viper"
)

type S3Client struct {
	C          *s3.Client
	downloader *manager.Downloader
}

// NewS3 builds a client from the aws.* config keys. Static credentials are
// used when both keys are set, otherwise the default provider chain applies.
// aws.endpoint points the client at an S3 compatible service such as R2 or
// MinIO.
func NewS3(ctx context.Context) (*S3Client, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(viper.GetString("aws.region")),
	}

	key, secret := viper.GetString("aws.access_key_id"), viper.GetString("aws.secret_access_key")
	if key != "" && secret != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(key, secret, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config, %w", err)
	}

	endpoint := viper.GetString("aws.endpoint")

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Client{
		C:          client,
		downloader: manager.NewDownloader(client),
	}, nil
}

// Download reads a whole object into memory.
func (s *S3Client) Download(ctx context.Context, bucket, key string) ([]byte, error) {
	buf := manager.NewWriteAtBuffer([]byte{})

	_, err := s.downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var apiErr smithy.APIError

		if errors.As(err, &apiErr) {
			if apiErr.ErrorCode() == "NoSuchKey" || apiErr.ErrorCode() == "NotFound" {
				return nil, fmt.Errorf("object 's3://%s/%s' does not exist", bucket, key)
			}
		}

		return nil, fmt.Errorf("failed to download object, %w", err)
	}

	return buf.Bytes(), nil
}
