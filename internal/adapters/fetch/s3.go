package fetch

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.trai.ch/dist/internal/core/domain"
	"go.trai.ch/dist/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CatalogFetcher = (*S3Fetcher)(nil)

// s3API is the subset of the S3 client used by S3Fetcher.
type s3API interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Fetcher downloads the manifest object from S3 using the default AWS credential chain.
type S3Fetcher struct {
	bucket string
	key    string

	once    sync.Once
	client  s3API
	initErr error
}

// NewS3Fetcher creates an S3Fetcher. AWS configuration is loaded on first Fetch.
func NewS3Fetcher(bucket, key string) *S3Fetcher {
	return &S3Fetcher{bucket: bucket, key: key}
}

// newS3FetcherWithClient creates an S3Fetcher with a custom client (used for testing).
func newS3FetcherWithClient(bucket, key string, client s3API) *S3Fetcher {
	f := NewS3Fetcher(bucket, key)
	f.once.Do(func() { f.client = client })
	return f
}

func (f *S3Fetcher) init(ctx context.Context) error {
	f.once.Do(func() {
		awsCfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			f.initErr = zerr.Wrap(err, "failed to load AWS config")
			return
		}
		f.client = s3.NewFromConfig(awsCfg)
	})
	return f.initErr
}

// Fetch reads s3://bucket/key. Access failures wrap domain.ErrNetwork and an
// oversized object is domain.ErrMalformedCatalog.
func (f *S3Fetcher) Fetch(ctx context.Context) ([]byte, error) {
	if err := f.init(ctx); err != nil {
		return nil, errors.Join(domain.ErrNetwork, err)
	}

	out, err := f.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(f.key),
	})
	if err != nil {
		getErr := zerr.With(zerr.Wrap(err, "failed to get catalog object"), "bucket", f.bucket)
		return nil, errors.Join(domain.ErrNetwork, zerr.With(getErr, "key", f.key))
	}
	defer out.Body.Close() //nolint:errcheck // Best effort close in defer

	data, err := io.ReadAll(limitManifest(out.Body))
	if err != nil {
		readErr := zerr.With(zerr.Wrap(err, "failed to read catalog object"), "bucket", f.bucket)
		return nil, errors.Join(domain.ErrNetwork, zerr.With(readErr, "key", f.key))
	}
	if err := checkManifestSize(data); err != nil {
		return nil, zerr.With(zerr.With(err, "bucket", f.bucket), "key", f.key)
	}
	return data, nil
}
