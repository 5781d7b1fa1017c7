package redis

import (
	"context"
	"strings"
	"testing"

	"github.com/yungbote/readaloud-backend/internal/platform/logger"
)

func TestKeyIsStableAndSeparatesParts(t *testing.T) {
	a := Key("tts", "hello", "ash")
	if a != Key("tts", "hello", "ash") {
		t.Fatalf("key not stable")
	}
	if !strings.HasPrefix(a, "tts:") {
		t.Fatalf("namespace missing: %q", a)
	}
	if a == Key("tts", "helloash", "") {
		t.Fatalf("parts should not run together")
	}
	if a == Key("translate", "hello", "ash") {
		t.Fatalf("namespace ignored")
	}
}

func TestNewCacheRequiresAddr(t *testing.T) {
	if _, err := NewCache(context.Background(), logger.Nop(), Config{}); err == nil {
		t.Fatalf("expected error without REDIS_ADDR")
	}
}
