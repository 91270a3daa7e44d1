package service

import (
	"context"
	"io"

	"examhub/internal/domain/entity"
)

// ImageStore keeps exam result files.
type ImageStore interface {
	// Put writes one object and returns the number of bytes stored.
	Put(ctx context.Context, key, contentType string, body io.Reader) (int64, error)

	// List returns every object stored under prefix.
	List(ctx context.Context, prefix string) ([]entity.ExamImage, error)

	// DeletePrefix removes every object under prefix and returns the removed keys.
	DeletePrefix(ctx context.Context, prefix string) ([]string, error)
}
