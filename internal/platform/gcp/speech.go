package gcp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	speechpb "cloud.google.com/go/speech/apiv1/speechpb"

	"github.com/yungbote/readaloud-backend/internal/platform/apierr"
	"github.com/yungbote/readaloud-backend/internal/platform/ctxutil"
	"github.com/yungbote/readaloud-backend/internal/platform/logger"
)

// Speech transcribes short learner recordings with Cloud Speech-to-Text.
type Speech interface {
	Transcribe(ctx context.Context, path string) (string, error)
	Close() error
}

type SpeechConfig struct {
	LanguageCode string
	Model        string
}

type speechService struct {
	log    *logger.Logger
	client *speech.Client
	cfg    SpeechConfig
}

func NewSpeech(ctx context.Context, log *logger.Logger, cfg SpeechConfig) (Speech, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if cfg.LanguageCode == "" {
		cfg.LanguageCode = "en-US"
	}
	c, err := speech.NewClient(ctxutil.Default(ctx), ClientOptionsFromEnv()...)
	if err != nil {
		return nil, fmt.Errorf("speech client: %w", err)
	}
	return &speechService{
		log:    log.With("service", "gcp.Speech"),
		client: c,
		cfg:    cfg,
	}, nil
}

func (s *speechService) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

func (s *speechService) Transcribe(ctx context.Context, path string) (string, error) {
	ctx = ctxutil.Default(ctx)
	audio, err := os.ReadFile(path)
	if err != nil {
		return "", apierr.Internal("audio_read_failed", fmt.Errorf("read audio: %w", err))
	}
	if len(audio) == 0 {
		return "", nil
	}

	req := &speechpb.LongRunningRecognizeRequest{
		Config: buildRecognitionConfig(path, s.cfg),
		Audio:  &speechpb.RecognitionAudio{AudioSource: &speechpb.RecognitionAudio_Content{Content: audio}},
	}
	op, err := s.client.LongRunningRecognize(ctx, req)
	if err != nil {
		return "", apierr.Provider("provider_error", fmt.Errorf("speech recognize: %w", err))
	}
	resp, err := op.Wait(ctx)
	if err != nil {
		return "", apierr.Provider("provider_error", fmt.Errorf("speech recognize wait: %w", err))
	}
	return joinTranscript(resp), nil
}

func buildRecognitionConfig(path string, cfg SpeechConfig) *speechpb.RecognitionConfig {
	return &speechpb.RecognitionConfig{
		Encoding:                   inferEncoding(path),
		LanguageCode:               cfg.LanguageCode,
		Model:                      cfg.Model,
		EnableAutomaticPunctuation: true,
	}
}

func inferEncoding(path string) speechpb.RecognitionConfig_AudioEncoding {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return speechpb.RecognitionConfig_LINEAR16
	case ".flac":
		return speechpb.RecognitionConfig_FLAC
	case ".mp3":
		return speechpb.RecognitionConfig_MP3
	case ".ogg", ".opus":
		return speechpb.RecognitionConfig_OGG_OPUS
	case ".webm":
		return speechpb.RecognitionConfig_WEBM_OPUS
	default:
		return speechpb.RecognitionConfig_ENCODING_UNSPECIFIED
	}
}

func joinTranscript(resp *speechpb.LongRunningRecognizeResponse) string {
	if resp == nil {
		return ""
	}
	var parts []string
	for _, r := range resp.GetResults() {
		alts := r.GetAlternatives()
		if len(alts) == 0 {
			continue
		}
		if t := strings.TrimSpace(alts[0].GetTranscript()); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}
