package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/h2non/filetype"
	"github.com/metrovolt-api/internal/domain"
	"github.com/metrovolt-api/internal/pkg/id"
)

// ObjectStore is the blob storage surface the service needs.
type ObjectStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}

type Service interface {
	// UploadImage sniffs the payload, rejects non-images and stores the
	// file under prefix/<id>.<ext>. Returns the object URL.
	UploadImage(ctx context.Context, prefix string, data []byte) (string, error)
	PresignedURL(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

type service struct {
	store ObjectStore
}

func NewService(store ObjectStore) Service {
	return &service{store: store}
}

const maxImageSize = 10 << 20 // 10 MiB

func (s *service) UploadImage(ctx context.Context, prefix string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty file: %w", domain.ErrBadRequest)
	}
	if len(data) > maxImageSize {
		return "", fmt.Errorf("file exceeds 10MB limit: %w", domain.ErrBadRequest)
	}

	kind, err := filetype.Match(data)
	if err != nil {
		return "", fmt.Errorf("detect file type: %w", err)
	}
	if kind == filetype.Unknown || kind.MIME.Type != "image" {
		return "", fmt.Errorf("only image uploads are allowed: %w", domain.ErrBadRequest)
	}

	key := fmt.Sprintf("%s/%s.%s", prefix, id.NewLower(), kind.Extension)
	return s.store.Upload(ctx, key, bytes.NewReader(data), kind.MIME.Value)
}

func (s *service) PresignedURL(ctx context.Context, key string) (string, error) {
	return s.store.PresignedURL(ctx, key, 15*time.Minute)
}

func (s *service) Delete(ctx context.Context, key string) error {
	return s.store.Delete(ctx, key)
}
