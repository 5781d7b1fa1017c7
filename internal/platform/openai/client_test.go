package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/yungbote/readaloud-backend/internal/platform/apierr"
	"github.com/yungbote/readaloud-backend/internal/platform/logger"
)

func newTestClient(t *testing.T, h http.HandlerFunc) Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := NewClient(logger.Nop(), Config{APIKey: "test-key", BaseURL: srv.URL + "/v1"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestNewClientRequiresKey(t *testing.T) {
	if _, err := NewClient(logger.Nop(), Config{}); err == nil {
		t.Fatalf("expected error without api key")
	}
}

func TestChatSendsPromptAndLimits(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("path: got=%q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"c1","object":"chat.completion","created":1,"model":"gpt-4.1-mini",
			"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"Great job!"}}],
			"usage":{"prompt_tokens":3,"completion_tokens":2,"total_tokens":5}}`)
	})

	temp := 0.7
	out, err := c.Chat(context.Background(), ChatRequest{
		Model:       "gpt-4.1-mini",
		System:      "be kind",
		User:        "hello",
		MaxTokens:   120,
		Temperature: &temp,
	})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if out != "Great job!" {
		t.Fatalf("text: got=%q", out)
	}
	if got["model"] != "gpt-4.1-mini" {
		t.Fatalf("model: got=%v", got["model"])
	}
	if got["max_tokens"] != float64(120) {
		t.Fatalf("max_tokens: got=%v", got["max_tokens"])
	}
	if got["temperature"] != 0.7 {
		t.Fatalf("temperature: got=%v", got["temperature"])
	}
	msgs, _ := got["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("messages: got=%d want=2", len(msgs))
	}
}

func TestChatProviderErrorIsNotRetried(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"error":{"message":"model overloaded","type":"server_error"}}`)
	})

	_, err := c.Chat(context.Background(), ChatRequest{Model: "gpt-4o", User: "hi"})
	if !apierr.Is(err, apierr.KindProvider) {
		t.Fatalf("kind: got=%v", err)
	}
	if !strings.Contains(err.Error(), "model overloaded") {
		t.Fatalf("provider text missing: %v", err)
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("calls: got=%d want=1", n)
	}
}

func TestSpeakReturnsAudio(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/audio/speech" {
			t.Errorf("path: got=%q", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("ID3-fake-mp3"))
	})

	audio, err := c.Speak(context.Background(), SpeechRequest{Voice: "nova", Input: "read me"})
	if err != nil {
		t.Fatalf("Speak: %v", err)
	}
	if string(audio) != "ID3-fake-mp3" {
		t.Fatalf("audio: got=%q", audio)
	}
	if got["model"] != DefaultSpeechModel || got["voice"] != "nova" || got["input"] != "read me" {
		t.Fatalf("request: got=%v", got)
	}
}

func TestTranscribeUploadsFile(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/audio/transcriptions" {
			t.Errorf("path: got=%q", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("multipart: %v", err)
		}
		if m := r.FormValue("model"); m != DefaultTranscribeModel {
			t.Errorf("model: got=%q", m)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"text":"  the cat sat  "}`)
	})

	path := filepath.Join(t.TempDir(), "clip.mp3")
	if err := os.WriteFile(path, []byte("mp3"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	text, err := c.Transcribe(context.Background(), path)
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if text != "the cat sat" {
		t.Fatalf("text: got=%q", text)
	}
}
