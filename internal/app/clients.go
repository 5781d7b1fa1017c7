package app

import (
	"context"
	"fmt"

	"github.com/yungbote/readaloud-backend/internal/platform/gcp"
	"github.com/yungbote/readaloud-backend/internal/platform/localmedia"
	"github.com/yungbote/readaloud-backend/internal/platform/logger"
	"github.com/yungbote/readaloud-backend/internal/platform/openai"
	"github.com/yungbote/readaloud-backend/internal/platform/redis"
	"github.com/yungbote/readaloud-backend/internal/services"
)

type Clients struct {
	OpenAI    openai.Client
	GcpSpeech gcp.Speech
	GcpBucket gcp.BucketService
	Cache     redis.Cache
	Media     localmedia.Tools
}

func wireClients(ctx context.Context, log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")
	var out Clients

	// OpenAI
	oa, err := openai.NewClient(log, openai.Config{
		APIKey:          cfg.OpenAIAPIKey,
		BaseURL:         cfg.OpenAIBaseURL,
		SpeechModel:     cfg.OpenAISpeechModel,
		TranscribeModel: cfg.OpenAITranscribeModel,
		Timeout:         cfg.OpenAITimeout,
	})
	if err != nil {
		return Clients{}, fmt.Errorf("init openai client: %w", err)
	}
	out.OpenAI = oa

	// Gcp
	if cfg.STTProvider == services.STTProviderGCP {
		sp, err := gcp.NewSpeech(ctx, log, gcp.SpeechConfig{LanguageCode: cfg.STTLanguageCode})
		if err != nil {
			return Clients{}, fmt.Errorf("init speech client: %w", err)
		}
		out.GcpSpeech = sp
	}
	if cfg.AudioStorage == AudioStorageGCS {
		bucket, err := gcp.NewBucketService(ctx, log, gcp.BucketConfig{
			Name:      cfg.AudioBucketName,
			CDNDomain: cfg.AudioCDNDomain,
		})
		if err != nil {
			out.Close(log)
			return Clients{}, fmt.Errorf("init bucket client: %w", err)
		}
		out.GcpBucket = bucket
	}

	// Redis
	if cfg.RedisAddr != "" {
		cache, err := redis.NewCache(ctx, log, redis.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.CacheTTL,
		})
		if err != nil {
			out.Close(log)
			return Clients{}, fmt.Errorf("init redis cache: %w", err)
		}
		out.Cache = cache
	}

	// Media
	out.Media = localmedia.New(log, localmedia.Options{WorkDir: cfg.WorkDir})
	if err := out.Media.AssertReady(ctx); err != nil {
		log.Warn("Media tools not ready; /speech-to-text will fail", "error", err)
	}

	return out, nil
}

func (c Clients) Close(log *logger.Logger) {
	if c.GcpSpeech != nil {
		if err := c.GcpSpeech.Close(); err != nil {
			log.Warn("Closing speech client failed", "error", err)
		}
	}
	if c.GcpBucket != nil {
		if err := c.GcpBucket.Close(); err != nil {
			log.Warn("Closing bucket client failed", "error", err)
		}
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			log.Warn("Closing redis cache failed", "error", err)
		}
	}
}
