package course

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/yungbote/readaloud-backend/internal/domain"
)

// UntitledTitle is used for a section with no lines.
const UntitledTitle = "Untitled"

// BuildContents turns ordered sections into a linked content chain whose
// ids are base-1, base-2, ... in section order.
func BuildContents(sections []string, base string) []domain.Content {
	n := len(sections)
	out := make([]domain.Content, 0, n)
	for i, section := range sections {
		title, markdown := splitTitle(section)

		c := domain.Content{
			ID:       sectionID(base, i),
			Title:    title,
			Markdown: markdown,
		}
		if i < n-1 {
			next := sectionID(base, i+1)
			c.NextID = &next
		}
		if i > 0 {
			prev := sectionID(base, i-1)
			c.PreviousID = &prev
		}
		out = append(out, c)
	}
	return out
}

// BaseID is the file name without its directory and final extension.
// Leading dots do not start an extension, so ".notes" stays ".notes".
func BaseID(path string) string {
	name := filepath.Base(filepath.FromSlash(path))
	if !strings.Contains(strings.TrimLeft(name, "."), ".") {
		return name
	}
	return name[:strings.LastIndex(name, ".")]
}

func sectionID(base string, i int) string {
	return fmt.Sprintf("%s-%d", base, i+1)
}

func splitTitle(section string) (string, string) {
	lines := splitLines(strings.TrimSpace(section))
	if len(lines) == 0 {
		return UntitledTitle, ""
	}
	title := strings.TrimSpace(lines[0])
	return title, normalizeParagraphs(strings.Join(lines[1:], "\n"))
}

// normalizeParagraphs trims every blank-line separated block and rejoins
// the non-empty ones with a single blank line.
func normalizeParagraphs(body string) string {
	parts := strings.Split(body, "\n\n")
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n\n")
}

// splitLines breaks s on every line boundary a section title can end at:
// "\n", "\r\n", "\r", "\v", "\f", the file/group/record separators
// (0x1c-0x1e), NEL, and the Unicode line and paragraph separators.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	var lines []string
	start := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch r {
		case '\r':
			lines = append(lines, s[start:i])
			if i+1 < len(s) && s[i+1] == '\n' {
				size = 2
			}
			start = i + size
		case '\n', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
			lines = append(lines, s[start:i])
			start = i + size
		}
		i += size
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
