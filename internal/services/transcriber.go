package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yungbote/readaloud-backend/internal/platform/openai"
)

// Transcriber turns an audio file on disk into text. Both the OpenAI
// client and gcp.Speech satisfy it.
type Transcriber interface {
	Transcribe(ctx context.Context, path string) (string, error)
}

// Synthesizer renders text as mp3 bytes.
type Synthesizer interface {
	Speak(ctx context.Context, req openai.SpeechRequest) ([]byte, error)
}

// ChatModel answers a single system/user exchange.
type ChatModel interface {
	Chat(ctx context.Context, req openai.ChatRequest) (string, error)
}

const (
	STTProviderOpenAI = "openai"
	STTProviderGCP    = "gcp"
)

// SelectTranscriber picks the backend named by provider.
func SelectTranscriber(provider string, oa Transcriber, gcp Transcriber) (Transcriber, error) {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "", STTProviderOpenAI:
		if oa == nil {
			return nil, fmt.Errorf("openai transcriber not configured")
		}
		return oa, nil
	case STTProviderGCP:
		if gcp == nil {
			return nil, fmt.Errorf("gcp transcriber not configured")
		}
		return gcp, nil
	default:
		return nil, fmt.Errorf("unknown STT_PROVIDER %q", provider)
	}
}
