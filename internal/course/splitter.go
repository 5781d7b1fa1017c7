package course

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/yungbote/readaloud-backend/internal/platform/apierr"
)

// Separator is the line that divides a course file into sections.
const Separator = "---"

// SplitSections reads a course buffer and returns its sections in source
// order. "\n", "\r\n" and a lone "\r" all end a line, and line length is
// unbounded. A separator line only closes a section that has accumulated
// something; blank sections are dropped and each section is trimmed.
func SplitSections(r io.Reader) ([]string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read course text: %w", err)
	}

	var (
		raw     []string
		current strings.Builder
	)
	for _, line := range textLines(string(b)) {
		if strings.TrimSpace(line) == Separator {
			if current.Len() > 0 {
				raw = append(raw, strings.TrimSpace(current.String()))
				current.Reset()
			}
			continue
		}
		current.WriteString(line)
		current.WriteByte('\n')
	}
	if current.Len() > 0 {
		raw = append(raw, strings.TrimSpace(current.String()))
	}

	sections := make([]string, 0, len(raw))
	for _, s := range raw {
		if s != "" {
			sections = append(sections, s)
		}
	}
	return sections, nil
}

// textLines splits on the three newline conventions. A final line ending
// does not produce an extra empty line.
func textLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// SplitFile opens path and splits it. A missing file is a not-found error;
// any other read failure is internal.
func SplitFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apierr.NotFound("course_not_found", fmt.Errorf("course file not found: %s", path))
		}
		return nil, apierr.Internal("course_read_failed", fmt.Errorf("open course file: %w", err))
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, apierr.Internal("course_read_failed", fmt.Errorf("stat course file: %w", err))
	}
	if info.IsDir() {
		return nil, apierr.NotFound("course_not_found", fmt.Errorf("course path is a directory: %s", path))
	}

	sections, err := SplitSections(f)
	if err != nil {
		return nil, apierr.Internal("course_read_failed", err)
	}
	return sections, nil
}
