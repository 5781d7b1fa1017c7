package services

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/yungbote/readaloud-backend/internal/platform/apierr"
)

const (
	DefaultMaxTextChars = 1000
	DefaultMaxAudio     = 2 * time.Minute
)

type Limits struct {
	MaxTextChars int
	MaxAudio     time.Duration
}

func (l Limits) withDefaults() Limits {
	if l.MaxTextChars <= 0 {
		l.MaxTextChars = DefaultMaxTextChars
	}
	if l.MaxAudio <= 0 {
		l.MaxAudio = DefaultMaxAudio
	}
	return l
}

func (l Limits) checkText(text string) error {
	if strings.TrimSpace(text) == "" {
		return apierr.Validation("text_required", fmt.Errorf("text is required"))
	}
	if n := utf8.RuneCountInString(text); n > l.MaxTextChars {
		return apierr.Validation("text_too_long", fmt.Errorf("text has %d characters, limit is %d", n, l.MaxTextChars))
	}
	return nil
}
