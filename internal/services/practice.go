package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/yungbote/readaloud-backend/internal/domain"
	"github.com/yungbote/readaloud-backend/internal/platform/apierr"
	"github.com/yungbote/readaloud-backend/internal/platform/localmedia"
	"github.com/yungbote/readaloud-backend/internal/platform/logger"
	"github.com/yungbote/readaloud-backend/internal/platform/openai"
)

const (
	DefaultFeedbackModel       = "gpt-4.1-mini"
	DefaultFeedbackMaxTokens   = 120
	DefaultFeedbackTemperature = 0.7
	DefaultFeedbackLanguage    = "English"
)

// PracticeInput is one read-aloud attempt: the recording plus the sentence
// the learner was asked to read.
type PracticeInput struct {
	Audio        io.Reader
	Filename     string
	SelectedText string
	Language     string
	VoiceID      string
}

type PracticeService interface {
	Evaluate(ctx context.Context, in PracticeInput) (domain.SpeechToTextResponse, error)
}

type PracticeDeps struct {
	SpeechDeps
	Chat          ChatModel
	Transcriber   Transcriber
	Media         localmedia.Tools
	FeedbackModel string
}

type practiceService struct {
	log         *logger.Logger
	chat        ChatModel
	transcriber Transcriber
	media       localmedia.Tools
	model       string
	voice       *voiceRenderer
	limits      Limits
}

func NewPracticeService(baseLog *logger.Logger, deps PracticeDeps) PracticeService {
	log := baseLog.With("service", "PracticeService")
	model := deps.FeedbackModel
	if model == "" {
		model = DefaultFeedbackModel
	}
	return &practiceService{
		log:         log,
		chat:        deps.Chat,
		transcriber: deps.Transcriber,
		media:       deps.Media,
		model:       model,
		voice:       newVoiceRenderer(log, deps.SpeechDeps),
		limits:      deps.Limits.withDefaults(),
	}
}

func (s *practiceService) Evaluate(ctx context.Context, in PracticeInput) (domain.SpeechToTextResponse, error) {
	if in.Audio == nil {
		return domain.SpeechToTextResponse{}, apierr.Validation("audio_required", fmt.Errorf("audio file is required"))
	}
	if strings.TrimSpace(in.SelectedText) == "" {
		return domain.SpeechToTextResponse{}, apierr.Validation("selected_text_required", fmt.Errorf("selectedText is required"))
	}
	language := strings.TrimSpace(in.Language)
	if language == "" {
		language = DefaultFeedbackLanguage
	}
	voice, err := s.voice.resolveVoice(in.VoiceID)
	if err != nil {
		return domain.SpeechToTextResponse{}, err
	}

	// 1) Persist the upload and normalize it to mp3
	tmpPath, cleanupTmp, err := s.media.WriteTempUpload(ctx, in.Audio, in.Filename)
	if err != nil {
		return domain.SpeechToTextResponse{}, apierr.Internal("upload_write_failed", err)
	}
	defer cleanupTmp()

	mp3Path, err := s.media.ConvertToMP3(ctx, tmpPath)
	if err != nil {
		s.log.Error("ConvertToMP3 failed", "error", err)
		return domain.SpeechToTextResponse{}, apierr.Internal("audio_convert_failed", err)
	}
	defer s.media.Remove(mp3Path)

	// 2) Length gate
	dur, err := s.media.ProbeDuration(ctx, mp3Path)
	if err != nil {
		s.log.Error("ProbeDuration failed", "error", err)
		return domain.SpeechToTextResponse{}, apierr.Internal("audio_probe_failed", err)
	}
	if dur > s.limits.MaxAudio {
		return domain.SpeechToTextResponse{}, apierr.Validation("audio_too_long",
			fmt.Errorf("audio is %s long, limit is %s", dur.Round(time.Second), s.limits.MaxAudio))
	}

	// 3) Transcribe and grade
	spoken, err := s.transcriber.Transcribe(ctx, mp3Path)
	if err != nil {
		s.log.Error("Transcribe failed", "error", err)
		return domain.SpeechToTextResponse{}, err
	}
	temp := DefaultFeedbackTemperature
	feedback, err := s.chat.Chat(ctx, openai.ChatRequest{
		Model:       s.model,
		System:      readingTutorSystemPrompt(language),
		User:        readingTutorUserPrompt(in.SelectedText, spoken, language),
		MaxTokens:   DefaultFeedbackMaxTokens,
		Temperature: &temp,
	})
	if err != nil {
		s.log.Error("Feedback chat failed", "error", err)
		return domain.SpeechToTextResponse{}, err
	}
	feedback = strings.TrimSpace(feedback)

	// 4) Speak the feedback
	url, err := s.voice.render(ctx, feedback, voice)
	if err != nil {
		s.log.Error("Feedback speech failed", "error", err, "voice", voice)
		return domain.SpeechToTextResponse{}, err
	}
	s.log.Debug("Practice evaluated", "audio_seconds", dur.Seconds(), "transcript_chars", len(spoken))
	return domain.SpeechToTextResponse{Text: feedback, AudioURL: url}, nil
}
