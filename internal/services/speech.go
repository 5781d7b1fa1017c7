package services

import (
	"context"
	"fmt"

	"github.com/yungbote/readaloud-backend/internal/catalog"
	"github.com/yungbote/readaloud-backend/internal/domain"
	"github.com/yungbote/readaloud-backend/internal/platform/logger"
	"github.com/yungbote/readaloud-backend/internal/platform/openai"
	"github.com/yungbote/readaloud-backend/internal/platform/redis"
)

type SpeechService interface {
	TextToSpeech(ctx context.Context, text, voiceID string) (domain.TextToSpeechResponse, error)
}

// voiceRenderer synthesizes text, stores the mp3 and returns its URL. It is
// shared by every service that answers with audio.
type voiceRenderer struct {
	log     *logger.Logger
	synth   Synthesizer
	store   AudioStore
	catalog *catalog.Catalog
	model   string
	cache   redis.Cache
}

func (r *voiceRenderer) resolveVoice(voiceID string) (string, error) {
	return r.catalog.ResolveVoice(voiceID)
}

// render assumes voice is already resolved.
func (r *voiceRenderer) render(ctx context.Context, text, voice string) (string, error) {
	audio, err := r.synth.Speak(ctx, openai.SpeechRequest{Model: r.model, Voice: voice, Input: text})
	if err != nil {
		return "", err
	}
	url, err := r.store.Save(ctx, audio)
	if err != nil {
		return "", fmt.Errorf("save speech: %w", err)
	}
	return url, nil
}

// cached runs fill on a miss and stores the result. Cache failures are
// logged and never fail the request.
func cached[T any](ctx context.Context, log *logger.Logger, c redis.Cache, key string, fill func() (T, error)) (T, error) {
	var out T
	if c != nil {
		hit, err := c.GetJSON(ctx, key, &out)
		if err != nil {
			log.Warn("cache read failed", "error", err)
		} else if hit {
			return out, nil
		}
	}
	out, err := fill()
	if err != nil {
		return out, err
	}
	if c != nil {
		if err := c.SetJSON(ctx, key, out); err != nil {
			log.Warn("cache write failed", "error", err)
		}
	}
	return out, nil
}

type SpeechDeps struct {
	Synthesizer Synthesizer
	Store       AudioStore
	Catalog     *catalog.Catalog
	SpeechModel string
	Cache       redis.Cache
	Limits      Limits
}

type speechService struct {
	log    *logger.Logger
	voice  *voiceRenderer
	limits Limits
}

func NewSpeechService(baseLog *logger.Logger, deps SpeechDeps) SpeechService {
	log := baseLog.With("service", "SpeechService")
	return &speechService{
		log:    log,
		voice:  newVoiceRenderer(log, deps),
		limits: deps.Limits.withDefaults(),
	}
}

func newVoiceRenderer(log *logger.Logger, deps SpeechDeps) *voiceRenderer {
	cat := deps.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	return &voiceRenderer{
		log:     log,
		synth:   deps.Synthesizer,
		store:   deps.Store,
		catalog: cat,
		model:   deps.SpeechModel,
		cache:   deps.Cache,
	}
}

func (s *speechService) TextToSpeech(ctx context.Context, text, voiceID string) (domain.TextToSpeechResponse, error) {
	if err := s.limits.checkText(text); err != nil {
		return domain.TextToSpeechResponse{}, err
	}
	voice, err := s.voice.resolveVoice(voiceID)
	if err != nil {
		return domain.TextToSpeechResponse{}, err
	}
	key := redis.Key("tts", s.voice.model, voice, text)
	return cached(ctx, s.log, s.voice.cache, key, func() (domain.TextToSpeechResponse, error) {
		url, err := s.voice.render(ctx, text, voice)
		if err != nil {
			s.log.Error("TextToSpeech failed", "error", err, "voice", voice)
			return domain.TextToSpeechResponse{}, err
		}
		return domain.TextToSpeechResponse{AudioURL: url}, nil
	})
}
