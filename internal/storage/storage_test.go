package storage

import (
	"alcyxob/fitness-tracker/internal/config"
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestVideoKey(t *testing.T) {
	key, err := VideoKey("abc", "My Squat.MP4")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "exercise-videos/abc/"))
	assert.True(t, strings.HasSuffix(key, ".mp4"))
	assert.True(t, OwnsVideoKey("abc", key))
	assert.False(t, OwnsVideoKey("xyz", key))

	other, err := VideoKey("abc", "../../etc/passwd")
	require.NoError(t, err)
	assert.True(t, OwnsVideoKey("abc", other))
	assert.NotEqual(t, key, other)

	_, err = VideoKey("abc", "  ")
	assert.ErrorIs(t, err, ErrInvalidFileName)
}

func TestOwnsVideoKey(t *testing.T) {
	assert.False(t, OwnsVideoKey("abc", "exercise-videos/abc/"))
	assert.False(t, OwnsVideoKey("abc", "exercise-videos/abc/x/y.mp4"))
	assert.False(t, OwnsVideoKey("abc", "exercise-videos/abc/../xyz/a.mp4"))
	assert.False(t, OwnsVideoKey("", "exercise-videos//a.mp4"))
	assert.True(t, OwnsVideoKey("abc", "exercise-videos/abc/a.mp4"))
}

func TestEndpointURL(t *testing.T) {
	assert.Equal(t, "", endpointURL("", true))
	assert.Equal(t, "https://minio:9000", endpointURL("minio:9000", true))
	assert.Equal(t, "http://minio:9000", endpointURL("minio:9000", false))
	assert.Equal(t, "http://minio:9000", endpointURL("http://minio:9000", true))
}

func TestS3Storage_Presign(t *testing.T) {
	fs, err := NewS3Storage(context.Background(), config.S3Config{
		Endpoint:        "localhost:9000",
		Region:          "us-east-1",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		BucketName:      "videos",
	}, zap.NewNop())
	require.NoError(t, err)

	raw, err := fs.GeneratePresignedUploadURL(context.Background(), "exercise-videos/u/a.mp4", "video/mp4", time.Minute)
	require.NoError(t, err)
	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "http", u.Scheme)
	assert.Equal(t, "localhost:9000", u.Host)
	assert.Equal(t, "/videos/exercise-videos/u/a.mp4", u.Path)
	assert.Equal(t, "60", u.Query().Get("X-Amz-Expires"))

	raw, err = fs.GeneratePresignedDownloadURL(context.Background(), "exercise-videos/u/a.mp4", 0)
	require.NoError(t, err)
	u, err = url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "900", u.Query().Get("X-Amz-Expires"))
}
