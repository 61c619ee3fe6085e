package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Store keeps blobs in an S3-compatible bucket under <category>/<name>.
// Works against AWS S3, Cloudflare R2 or MinIO via a custom endpoint.
type S3Store struct {
	client *s3.Client
	bucket string
}

// NewS3Store initializes the client using static credentials and an optional
// custom endpoint.
func NewS3Store(endpoint, accessKey, secretKey, bucket, region string) *S3Store {
	cfg := aws.Config{
		Credentials: credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		Region:      region,
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	log.Println("Successfully initialized S3 storage client")

	return &S3Store{client: client, bucket: bucket}
}

func (s *S3Store) key(category, name string) string {
	return path.Join(category, name)
}

func (s *S3Store) Save(ctx context.Context, category, name string, r io.Reader, maxBytes int64) (int64, error) {
	// PutObject needs a seekable body for signing, so buffer the upload.
	// Read one byte past the limit so an exactly-at-limit file passes.
	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(r, maxBytes+1))
	if err != nil {
		return 0, err
	}
	if maxBytes > 0 && n > maxBytes {
		return 0, ErrTooLarge
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(category, name)),
		Body:   bytes.NewReader(buf.Bytes()),
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (s *S3Store) Delete(ctx context.Context, category, name string) error {
	// DeleteObject succeeds for keys that are already gone.
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(category, name)),
	})
	return err
}

func (s *S3Store) Exists(ctx context.Context, category, name string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(category, name)),
	})
	if err != nil {
		var nsk *s3types.NotFound
		if errors.As(err, &nsk) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
