package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/readaloud-backend/internal/platform/logger"
)

func TestLocalAudioStoreWritesFileAndURL(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "audio_files")
	store, err := NewLocalAudioStore(logger.Nop(), dir, "http://localhost:8000/")
	require.NoError(t, err)

	url, err := store.Save(context.Background(), []byte("ID3"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "http://localhost:8000/audio/"), url)
	require.True(t, strings.HasSuffix(url, ".mp3"), url)

	name := strings.TrimPrefix(url, "http://localhost:8000/audio/")
	b, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "ID3", string(b))
}

type fakeBucket struct {
	keys []string
}

func (f *fakeBucket) Upload(ctx context.Context, key string, data []byte) error {
	f.keys = append(f.keys, key)
	return nil
}

func (f *fakeBucket) PublicURL(key string) string { return "https://cdn.example/" + key }

func (f *fakeBucket) Close() error { return nil }

func TestBucketAudioStorePrefixesKeys(t *testing.T) {
	bucket := &fakeBucket{}
	store := NewBucketAudioStore(logger.Nop(), bucket, "/audio/")

	url, err := store.Save(context.Background(), []byte("ID3"))
	require.NoError(t, err)
	require.Len(t, bucket.keys, 1)
	assert.True(t, strings.HasPrefix(bucket.keys[0], "audio/"))
	assert.Equal(t, "https://cdn.example/"+bucket.keys[0], url)
}
