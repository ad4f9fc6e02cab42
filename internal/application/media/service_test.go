package media

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/metrovolt-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockObjectStore struct{ mock.Mock }

func (m *mockObjectStore) Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, key, r, contentType)
	return args.String(0), args.Error(1)
}
func (m *mockObjectStore) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	if rc, _ := args.Get(0).(io.ReadCloser); rc != nil {
		return rc, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockObjectStore) PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	args := m.Called(ctx, key, ttl)
	return args.String(0), args.Error(1)
}
func (m *mockObjectStore) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

// pngHeader is a valid PNG magic number, enough for type sniffing.
var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}

func TestUploadImage_PNG_KeyedUnderPrefix(t *testing.T) {
	store := &mockObjectStore{}
	var key, contentType string
	store.On("Upload", mock.Anything, mock.AnythingOfType("string"), mock.Anything, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			key = args.String(1)
			contentType = args.String(3)
		}).
		Return("s3://bucket/key", nil)

	url, err := NewService(store).UploadImage(context.Background(), "scooters", pngHeader)
	require.NoError(t, err)

	assert.Equal(t, "s3://bucket/key", url)
	assert.Regexp(t, `^scooters/[0-9a-z]+\.png$`, key)
	assert.Equal(t, "image/png", contentType)
}

func TestUploadImage_NonImage_Rejected(t *testing.T) {
	store := &mockObjectStore{}

	_, err := NewService(store).UploadImage(context.Background(), "scooters", []byte("%PDF-1.4 not an image"))
	assert.ErrorIs(t, err, domain.ErrBadRequest)
	store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadImage_EmptyPayload_Rejected(t *testing.T) {
	_, err := NewService(&mockObjectStore{}).UploadImage(context.Background(), "scooters", nil)
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestUploadImage_OversizedPayload_Rejected(t *testing.T) {
	big := make([]byte, maxImageSize+1)
	copy(big, pngHeader)

	_, err := NewService(&mockObjectStore{}).UploadImage(context.Background(), "scooters", big)
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}
