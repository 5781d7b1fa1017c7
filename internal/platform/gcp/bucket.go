package gcp

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/yungbote/readaloud-backend/internal/platform/ctxutil"
	"github.com/yungbote/readaloud-backend/internal/platform/logger"
)

type BucketService interface {
	Upload(ctx context.Context, key string, data []byte) error
	PublicURL(key string) string
	Close() error
}

type BucketConfig struct {
	Name      string
	CDNDomain string
}

type bucketService struct {
	log    *logger.Logger
	client *storage.Client
	cfg    BucketConfig
}

func NewBucketService(ctx context.Context, log *logger.Logger, cfg BucketConfig) (BucketService, error) {
	if strings.TrimSpace(cfg.Name) == "" {
		return nil, fmt.Errorf("missing env var AUDIO_GCS_BUCKET_NAME")
	}
	opts := append(ClientOptionsFromEnv(), option.WithScopes(storage.ScopeReadWrite))
	c, err := storage.NewClient(ctxutil.Default(ctx), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	bs := &bucketService{
		log:    log.With("service", "BucketService"),
		client: c,
		cfg:    cfg,
	}
	bs.log.Info("Object storage initialized", "bucket", cfg.Name, "cdn_domain", cfg.CDNDomain)
	return bs, nil
}

func (bs *bucketService) Upload(ctx context.Context, key string, data []byte) error {
	ctx, cancel := context.WithTimeout(ctxutil.Default(ctx), 2*time.Minute)
	defer cancel()

	w := bs.client.Bucket(bs.cfg.Name).Object(key).NewWriter(ctx)
	if ct := ContentTypeForKey(key); ct != "" {
		w.ContentType = ct
	}
	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to write data to GCS: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close GCS writer: %w", err)
	}
	return nil
}

func (bs *bucketService) PublicURL(key string) string {
	return PublicURL(bs.cfg, key)
}

func (bs *bucketService) Close() error {
	if bs == nil || bs.client == nil {
		return nil
	}
	return bs.client.Close()
}

// PublicURL prefers the CDN domain and falls back to storage.googleapis.com.
func PublicURL(cfg BucketConfig, key string) string {
	key = strings.TrimLeft(strings.TrimSpace(key), "/")
	if cdn := strings.TrimRight(strings.TrimSpace(cfg.CDNDomain), "/"); cdn != "" {
		if !strings.HasPrefix(cdn, "http://") && !strings.HasPrefix(cdn, "https://") {
			cdn = "https://" + cdn
		}
		return fmt.Sprintf("%s/%s", cdn, key)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", cfg.Name, key)
}

func ContentTypeForKey(key string) string {
	s := strings.ToLower(strings.TrimSpace(key))
	switch {
	case strings.HasSuffix(s, ".mp3"):
		return "audio/mpeg"
	case strings.HasSuffix(s, ".wav"):
		return "audio/wav"
	case strings.HasSuffix(s, ".webm"):
		return "audio/webm"
	case strings.HasSuffix(s, ".ogg"), strings.HasSuffix(s, ".opus"):
		return "audio/ogg"
	default:
		return ""
	}
}
