package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/yungbote/readaloud-backend/internal/platform/gcp"
	"github.com/yungbote/readaloud-backend/internal/platform/logger"
)

// AudioStore keeps synthesized mp3 files and hands back a URL a browser
// can play.
type AudioStore interface {
	Save(ctx context.Context, data []byte) (string, error)
}

// AudioRoute is where the router serves a LocalAudioStore directory.
const AudioRoute = "/audio"

type localAudioStore struct {
	log     *logger.Logger
	dir     string
	baseURL string
}

// NewLocalAudioStore writes files into dir; URLs are baseURL + /audio/<name>.
func NewLocalAudioStore(log *logger.Logger, dir, baseURL string) (AudioStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create audio dir: %w", err)
	}
	return &localAudioStore{
		log:     log.With("service", "LocalAudioStore"),
		dir:     dir,
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
	}, nil
}

func (s *localAudioStore) Save(ctx context.Context, data []byte) (string, error) {
	name := newAudioName()
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write audio file: %w", err)
	}
	s.log.Debug("Stored audio", "name", name, "bytes", len(data))
	return fmt.Sprintf("%s%s/%s", s.baseURL, AudioRoute, name), nil
}

type bucketAudioStore struct {
	log    *logger.Logger
	bucket gcp.BucketService
	prefix string
}

func NewBucketAudioStore(log *logger.Logger, bucket gcp.BucketService, prefix string) AudioStore {
	return &bucketAudioStore{
		log:    log.With("service", "BucketAudioStore"),
		bucket: bucket,
		prefix: strings.Trim(strings.TrimSpace(prefix), "/"),
	}
}

func (s *bucketAudioStore) Save(ctx context.Context, data []byte) (string, error) {
	key := newAudioName()
	if s.prefix != "" {
		key = s.prefix + "/" + key
	}
	if err := s.bucket.Upload(ctx, key, data); err != nil {
		return "", fmt.Errorf("upload audio: %w", err)
	}
	return s.bucket.PublicURL(key), nil
}

func newAudioName() string {
	return uuid.New().String() + ".mp3"
}
