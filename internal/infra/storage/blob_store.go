// Package storage keeps exam result files in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"path"

	"examhub/config"
	"examhub/internal/domain/entity"
	"examhub/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
)

const defaultBucketURL = "mem://"

type blobImageStore struct {
	bucket *blob.Bucket
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (service.ImageStore, error) {
	bucketURL := defaultBucketURL
	if params.Config.Storage != nil && params.Config.Storage.BucketURL != "" {
		bucketURL = params.Config.Storage.BucketURL
	}

	bucket, err := blob.OpenBucket(context.Background(), bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}
	if bucketURL == defaultBucketURL {
		params.Logger.Warn("Storage bucket not configured, exam files are kept in memory")
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobImageStore(bucket), nil
}

// NewBlobImageStore wraps an already opened bucket.
func NewBlobImageStore(bucket *blob.Bucket) service.ImageStore {
	return &blobImageStore{bucket: bucket}
}

// Put streams body into key.
func (s *blobImageStore) Put(ctx context.Context, key, contentType string, body io.Reader) (int64, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return 0, errors.Wrapf(err, "open writer for %s", key)
	}

	written, err := io.Copy(writer, body)
	if err != nil {
		_ = writer.Close()

		return 0, errors.Wrapf(err, "write %s", key)
	}

	if err := writer.Close(); err != nil {
		return 0, errors.Wrapf(err, "close writer for %s", key)
	}

	return written, nil
}

// List returns every object below prefix.
func (s *blobImageStore) List(ctx context.Context, prefix string) ([]entity.ExamImage, error) {
	var images []entity.ExamImage

	iter := s.bucket.List(&blob.ListOptions{Prefix: prefix})
	for {
		obj, err := iter.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "list %s", prefix)
		}
		if obj.IsDir {
			continue
		}

		image := entity.ExamImage{
			Key:  obj.Key,
			Name: path.Base(obj.Key),
			Size: obj.Size,
		}
		if attrs, err := s.bucket.Attributes(ctx, obj.Key); err == nil {
			image.ContentType = attrs.ContentType
		}

		images = append(images, image)
	}

	return images, nil
}

// DeletePrefix removes every object below prefix.
func (s *blobImageStore) DeletePrefix(ctx context.Context, prefix string) ([]string, error) {
	images, err := s.List(ctx, prefix)
	if err != nil {
		return nil, err
	}

	deleted := make([]string, 0, len(images))
	for _, image := range images {
		if err := s.bucket.Delete(ctx, image.Key); err != nil {
			return deleted, errors.Wrapf(err, "delete %s", image.Key)
		}
		deleted = append(deleted, image.Key)
	}

	return deleted, nil
}
