package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/vango-dev/vroute/pkg/routepath"
)

// S3API is the subset of *s3.Client used by S3.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3 serves assets from a bucket under a key prefix.
//
// Example usage:
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	src := assets.NewS3FromClient(s3.NewFromConfig(cfg), "my-bucket", "site/")
type S3 struct {
	client S3API
	bucket string
	prefix string
}

// NewS3 creates a source using the default AWS configuration chain
// (environment, shared config, instance role).
func NewS3(ctx context.Context, bucket, prefix string) (*S3, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("assets: load aws config: %w", err)
	}
	return NewS3FromClient(s3.NewFromConfig(cfg), bucket, prefix), nil
}

// NewS3FromClient creates a source over an existing client.
func NewS3FromClient(client S3API, bucket, prefix string) *S3 {
	prefix = strings.Trim(prefix, "/")
	if prefix != "" {
		prefix += "/"
	}
	return &S3{client: client, bucket: bucket, prefix: prefix}
}

var _ Source = (*S3)(nil)

// Open implements Source.
func (s *S3) Open(ctx context.Context, name string) (io.ReadCloser, ContentInfo, error) {
	clean, err := routepath.AssetName(name)
	if err != nil {
		return nil, ContentInfo{}, fmt.Errorf("%w: %s: %v", ErrNotFound, name, err)
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.prefix + clean),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, ContentInfo{}, fmt.Errorf("%w: %s", ErrNotFound, clean)
		}
		return nil, ContentInfo{}, fmt.Errorf("assets: s3 get %s: %w", clean, err)
	}

	info := ContentInfo{
		Size:        aws.ToInt64(out.ContentLength),
		ContentType: aws.ToString(out.ContentType),
		ModTime:     aws.ToTime(out.LastModified),
		ETag:        aws.ToString(out.ETag),
	}
	if info.ContentType == "" {
		info.ContentType = contentType(clean)
	}
	return out.Body, info, nil
}

// String implements Source.
func (s *S3) String() string {
	return "s3://" + s.bucket + "/" + s.prefix
}
