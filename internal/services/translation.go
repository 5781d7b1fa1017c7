package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yungbote/readaloud-backend/internal/domain"
	"github.com/yungbote/readaloud-backend/internal/platform/apierr"
	"github.com/yungbote/readaloud-backend/internal/platform/logger"
	"github.com/yungbote/readaloud-backend/internal/platform/openai"
	"github.com/yungbote/readaloud-backend/internal/platform/redis"
)

const (
	DefaultTranslateModel     = "gpt-4o"
	DefaultTranslateMaxTokens = 512
)

type TranslationService interface {
	Translate(ctx context.Context, text, targetLanguage, voiceID string) (domain.TranslationResponse, error)
}

type TranslationDeps struct {
	SpeechDeps
	Chat           ChatModel
	TranslateModel string
}

type translationService struct {
	log    *logger.Logger
	chat   ChatModel
	model  string
	voice  *voiceRenderer
	limits Limits
}

func NewTranslationService(baseLog *logger.Logger, deps TranslationDeps) TranslationService {
	log := baseLog.With("service", "TranslationService")
	model := deps.TranslateModel
	if model == "" {
		model = DefaultTranslateModel
	}
	return &translationService{
		log:    log,
		chat:   deps.Chat,
		model:  model,
		voice:  newVoiceRenderer(log, deps.SpeechDeps),
		limits: deps.Limits.withDefaults(),
	}
}

func (s *translationService) Translate(ctx context.Context, text, targetLanguage, voiceID string) (domain.TranslationResponse, error) {
	if err := s.limits.checkText(text); err != nil {
		return domain.TranslationResponse{}, err
	}
	targetLanguage = strings.TrimSpace(targetLanguage)
	if targetLanguage == "" {
		return domain.TranslationResponse{}, apierr.Validation("language_required", fmt.Errorf("targetLanguage is required"))
	}
	voice, err := s.voice.resolveVoice(voiceID)
	if err != nil {
		return domain.TranslationResponse{}, err
	}

	key := redis.Key("translate", s.model, s.voice.model, targetLanguage, voice, text)
	return cached(ctx, s.log, s.voice.cache, key, func() (domain.TranslationResponse, error) {
		translated, err := s.chat.Chat(ctx, openai.ChatRequest{
			Model:     s.model,
			User:      translatorPrompt(text, targetLanguage),
			MaxTokens: DefaultTranslateMaxTokens,
		})
		if err != nil {
			s.log.Error("Translate chat failed", "error", err, "language", targetLanguage)
			return domain.TranslationResponse{}, err
		}
		translated = strings.TrimSpace(translated)
		url, err := s.voice.render(ctx, translated, voice)
		if err != nil {
			s.log.Error("Translate speech failed", "error", err, "voice", voice)
			return domain.TranslationResponse{}, err
		}
		return domain.TranslationResponse{AudioURL: url, TranslatedText: translated}, nil
	})
}
