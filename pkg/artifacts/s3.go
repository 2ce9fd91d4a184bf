package artifacts

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Uploader mirrors run artifacts to an S3 bucket. Credentials come from
// the standard AWS environment.
type Uploader struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewUploader builds an S3 client for the given bucket. Endpoint is
// optional and supports S3-compatible stores.
func NewUploader(ctx context.Context, bucket, prefix, region, endpoint string) (*Uploader, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if endpoint != "" {
		opts = append(opts, awsconfig.WithBaseEndpoint(endpoint))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = endpoint != ""
	})
	return &Uploader{client: client, bucket: bucket, prefix: prefix}, nil
}

// UploadAll pushes every tracked artifact under prefix/runID/.
func (u *Uploader) UploadAll(ctx context.Context, store *Store) error {
	for _, path := range store.Files() {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening artifact %s: %w", path, err)
		}

		name := filepath.Base(path)
		key := filepath.ToSlash(filepath.Join(u.prefix, store.RunID(), name))
		_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(u.bucket),
			Key:         aws.String(key),
			Body:        f,
			ContentType: aws.String(mime.TypeByExtension(filepath.Ext(name))),
		})
		f.Close()
		if err != nil {
			return fmt.Errorf("uploading %s: %w", key, err)
		}
		store.log.Info("artifact uploaded", "bucket", u.bucket, "key", key)
	}
	return nil
}
