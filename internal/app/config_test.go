package app

import (
	"testing"
	"time"

	"github.com/yungbote/readaloud-backend/internal/platform/logger"
)

func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t, "PORT", "COURSE_FILES_DIR", "AUDIO_FILES_DIR", "SERVER_BASE_URL", "AUDIO_STORAGE",
		"STT_PROVIDER", "MAX_TEXT_CHARS", "MAX_AUDIO_SECONDS", "MAX_UPLOAD_BYTES", "CACHE_TTL_SECONDS",
		"OPENAI_TRANSLATE_MODEL", "OPENAI_FEEDBACK_MODEL", "OPENAI_TIMEOUT_SECONDS", "CORS_ALLOW_ORIGINS")

	cfg := LoadConfig(logger.Nop())

	if cfg.Port != "8000" || cfg.Addr() != ":8000" {
		t.Fatalf("port: got=%q addr=%q", cfg.Port, cfg.Addr())
	}
	if cfg.CourseFilesDir != "courses" || cfg.AudioFilesDir != "audio_files" {
		t.Fatalf("dirs: got=%q %q", cfg.CourseFilesDir, cfg.AudioFilesDir)
	}
	if cfg.ServerBaseURL != "http://localhost:8000" {
		t.Fatalf("base url: got=%q", cfg.ServerBaseURL)
	}
	if cfg.AudioStorage != AudioStorageLocal || cfg.STTProvider != "openai" {
		t.Fatalf("providers: storage=%q stt=%q", cfg.AudioStorage, cfg.STTProvider)
	}
	if cfg.MaxTextChars != 1000 || cfg.MaxAudio != 2*time.Minute || cfg.MaxUploadBytes != 25<<20 {
		t.Fatalf("limits: %d %s %d", cfg.MaxTextChars, cfg.MaxAudio, cfg.MaxUploadBytes)
	}
	if cfg.CacheTTL != 24*time.Hour || cfg.OpenAITimeout != 0 {
		t.Fatalf("durations: ttl=%s timeout=%s", cfg.CacheTTL, cfg.OpenAITimeout)
	}
	if cfg.TranslateModel != "gpt-4o" || cfg.FeedbackModel != "gpt-4.1-mini" {
		t.Fatalf("models: %q %q", cfg.TranslateModel, cfg.FeedbackModel)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Fatalf("cors: %v", cfg.CORSOrigins)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SERVER_BASE_URL", "https://reader.example/")
	t.Setenv("AUDIO_STORAGE", "GCS")
	t.Setenv("MAX_AUDIO_SECONDS", "30")
	t.Setenv("MAX_TEXT_CHARS", "not-a-number")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.example, http://b.example")

	cfg := LoadConfig(logger.Nop())

	if cfg.Addr() != ":9090" {
		t.Fatalf("addr: got=%q", cfg.Addr())
	}
	if cfg.ServerBaseURL != "https://reader.example" {
		t.Fatalf("base url: got=%q", cfg.ServerBaseURL)
	}
	if cfg.AudioStorage != AudioStorageGCS {
		t.Fatalf("storage: got=%q", cfg.AudioStorage)
	}
	if cfg.MaxAudio != 30*time.Second {
		t.Fatalf("max audio: got=%s", cfg.MaxAudio)
	}
	if cfg.MaxTextChars != 1000 {
		t.Fatalf("bad int should fall back: got=%d", cfg.MaxTextChars)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.example" {
		t.Fatalf("cors: %v", cfg.CORSOrigins)
	}
	if l := cfg.Limits(); l.MaxAudio != 30*time.Second {
		t.Fatalf("limits: %+v", l)
	}
}

func TestWireServicesRejectsUnknownStorage(t *testing.T) {
	cfg := Config{AudioStorage: "s3", CourseFilesDir: t.TempDir()}
	if _, err := wireServices(logger.Nop(), cfg, Clients{}); err == nil {
		t.Fatalf("expected error for unknown storage")
	}
}
