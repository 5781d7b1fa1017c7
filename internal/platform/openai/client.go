package openai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/yungbote/readaloud-backend/internal/platform/apierr"
	"github.com/yungbote/readaloud-backend/internal/platform/ctxutil"
	"github.com/yungbote/readaloud-backend/internal/platform/logger"
)

const (
	DefaultSpeechModel     = "gpt-4o-mini-tts"
	DefaultTranscribeModel = "gpt-4o-transcribe"
)

// Client is the slice of the OpenAI API the tutor uses.
type Client interface {
	// Chat runs a single-turn chat completion and returns the first choice.
	Chat(ctx context.Context, req ChatRequest) (string, error)
	// Speak synthesizes mp3 audio.
	Speak(ctx context.Context, req SpeechRequest) ([]byte, error)
	// Transcribe returns the text spoken in the audio file at path.
	Transcribe(ctx context.Context, path string) (string, error)
}

type ChatRequest struct {
	Model       string
	System      string
	User        string
	MaxTokens   int
	Temperature *float64
}

type SpeechRequest struct {
	Model string
	Voice string
	Input string
}

type Config struct {
	APIKey          string
	BaseURL         string
	SpeechModel     string
	TranscribeModel string
	// Zero means no client-side timeout.
	Timeout time.Duration
}

type client struct {
	log             *logger.Logger
	sdk             *openai.Client
	speechModel     string
	transcribeModel string
}

func NewClient(log *logger.Logger, cfg Config) (Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("missing OPENAI_API_KEY")
	}
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
		option.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	}
	if base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"); base != "" {
		opts = append(opts, option.WithBaseURL(base+"/"))
	}
	sdk := openai.NewClient(opts...)

	c := &client{
		log:             log.With("service", "OpenAIClient"),
		sdk:             &sdk,
		speechModel:     firstNonEmpty(cfg.SpeechModel, DefaultSpeechModel),
		transcribeModel: firstNonEmpty(cfg.TranscribeModel, DefaultTranscribeModel),
	}
	c.log.Info("OpenAI client ready", "speech_model", c.speechModel, "transcribe_model", c.transcribeModel, "base_url", cfg.BaseURL)
	return c, nil
}

func (c *client) Chat(ctx context.Context, req ChatRequest) (string, error) {
	ctx = ctxutil.Default(ctx)
	if strings.TrimSpace(req.Model) == "" {
		return "", errors.New("chat model required")
	}
	msgs := []openai.ChatCompletionMessageParamUnion{}
	if req.System != "" {
		msgs = append(msgs, openai.SystemMessage(req.System))
	}
	msgs = append(msgs, openai.UserMessage(req.User))

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(req.Model),
		Messages: msgs,
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}
	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	}

	start := time.Now()
	resp, err := c.sdk.Chat.Completions.New(ctx, params)
	if err != nil {
		c.log.Warn("chat completion failed", "model", req.Model, "error", err)
		return "", apierr.Provider("provider_error", fmt.Errorf("openai chat: %w", err))
	}
	if len(resp.Choices) == 0 {
		return "", apierr.Provider("provider_error", errors.New("openai chat: response had no choices"))
	}
	c.log.Debug("chat completion done",
		"model", resp.Model,
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return resp.Choices[0].Message.Content, nil
}

func (c *client) Speak(ctx context.Context, req SpeechRequest) ([]byte, error) {
	ctx = ctxutil.Default(ctx)
	model := firstNonEmpty(req.Model, c.speechModel)

	resp, err := c.sdk.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
		Model:          openai.SpeechModel(model),
		Voice:          openai.AudioSpeechNewParamsVoice(req.Voice),
		Input:          req.Input,
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormatMP3,
	})
	if err != nil {
		c.log.Warn("speech synthesis failed", "model", model, "voice", req.Voice, "error", err)
		return nil, apierr.Provider("provider_error", fmt.Errorf("openai speech: %w", err))
	}
	defer resp.Body.Close()

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierr.Provider("provider_error", fmt.Errorf("openai speech: read body: %w", err))
	}
	if len(audio) == 0 {
		return nil, apierr.Provider("provider_error", errors.New("openai speech: empty audio"))
	}
	return audio, nil
}

func (c *client) Transcribe(ctx context.Context, path string) (string, error) {
	ctx = ctxutil.Default(ctx)
	f, err := os.Open(path)
	if err != nil {
		return "", apierr.Internal("audio_read_failed", fmt.Errorf("open audio: %w", err))
	}
	defer f.Close()

	resp, err := c.sdk.Audio.Transcriptions.New(ctx, openai.AudioTranscriptionNewParams{
		Model: openai.AudioModel(c.transcribeModel),
		File:  f,
	})
	if err != nil {
		c.log.Warn("transcription failed", "model", c.transcribeModel, "error", err)
		return "", apierr.Provider("provider_error", fmt.Errorf("openai transcription: %w", err))
	}
	return strings.TrimSpace(resp.Text), nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
