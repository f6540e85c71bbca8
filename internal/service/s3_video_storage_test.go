package service

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Go4ItSports/go4it/config"
)

func TestS3VideoStorage_PresignUpload(t *testing.T) {
	storage, err := NewS3VideoStorage(config.StorageConfig{
		Bucket:          "go4it-videos",
		Region:          "us-west-2",
		AccessKeyID:     "AKIDEXAMPLE",
		SecretAccessKey: "wJalrXUtnFEMI/K7MDENG+bPxRfiCYEXAMPLEKEY",
		PresignTTL:      10 * time.Minute,
	})
	require.NoError(t, err)

	signed, expires, err := storage.PresignUpload(context.Background(), "organizations/o/athletes/a/videos/1-clip.mp4", "video/mp4")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), expires, time.Minute)

	u, err := url.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "go4it-videos.s3.us-west-2.amazonaws.com", u.Host)
	assert.Equal(t, "/organizations/o/athletes/a/videos/1-clip.mp4", u.Path)
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
	assert.Equal(t, "600", u.Query().Get("X-Amz-Expires"))
}

func TestS3VideoStorage_ObjectURL(t *testing.T) {
	t.Run("aws", func(t *testing.T) {
		storage, err := NewS3VideoStorage(config.StorageConfig{Bucket: "b", Region: "eu-west-1"})
		require.NoError(t, err)
		assert.Equal(t, "https://b.s3.eu-west-1.amazonaws.com/a/clip%20one.mp4", storage.ObjectURL("a/clip one.mp4"))
	})

	t.Run("custom endpoint uses path style", func(t *testing.T) {
		storage, err := NewS3VideoStorage(config.StorageConfig{Bucket: "b", Endpoint: "http://localhost:9000/"})
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:9000/b/a/clip.mp4", storage.ObjectURL("a/clip.mp4"))
	})

	t.Run("bucket required", func(t *testing.T) {
		_, err := NewS3VideoStorage(config.StorageConfig{})
		assert.Error(t, err)
	})
}
