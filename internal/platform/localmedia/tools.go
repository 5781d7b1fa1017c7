package localmedia

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/readaloud-backend/internal/platform/ctxutil"
	"github.com/yungbote/readaloud-backend/internal/platform/logger"
)

// Tools wraps the ffmpeg and ffprobe binaries used for learner recordings.
//
// REQUIRED BINARIES: ffmpeg, ffprobe.
type Tools interface {
	AssertReady(ctx context.Context) error

	// WriteTempUpload copies r into the work dir under a random name and
	// returns the path plus a cleanup func that is safe to call twice.
	WriteTempUpload(ctx context.Context, r io.Reader, filename string) (string, func(), error)
	// ConvertToMP3 transcodes inputPath and removes the input on success.
	ConvertToMP3(ctx context.Context, inputPath string) (string, error)
	ProbeDuration(ctx context.Context, path string) (time.Duration, error)
	// Remove deletes a working file, ignoring errors.
	Remove(path string)
}

type Options struct {
	WorkDir     string
	FFmpegPath  string
	FFprobePath string
	Bitrate     string
}

type tools struct {
	log *logger.Logger

	ffmpegPath  string
	ffprobePath string
	bitrate     string
	workDir     string
}

func New(log *logger.Logger, opts Options) Tools {
	t := &tools{
		log:         log.With("service", "MediaTools"),
		ffmpegPath:  opts.FFmpegPath,
		ffprobePath: opts.FFprobePath,
		bitrate:     opts.Bitrate,
		workDir:     opts.WorkDir,
	}
	if t.ffmpegPath == "" {
		t.ffmpegPath = "ffmpeg"
	}
	if t.ffprobePath == "" {
		t.ffprobePath = "ffprobe"
	}
	if t.bitrate == "" {
		t.bitrate = "192k"
	}
	if t.workDir == "" {
		t.workDir = "."
	}
	return t
}

func (m *tools) AssertReady(ctx context.Context) error {
	for _, bin := range []string{m.ffmpegPath, m.ffprobePath} {
		if _, err := exec.LookPath(bin); err != nil {
			return fmt.Errorf("missing required binary %q in PATH: %w", bin, err)
		}
	}
	if err := os.MkdirAll(m.workDir, 0o755); err != nil {
		return fmt.Errorf("create workDir: %w", err)
	}
	return nil
}

func (m *tools) WriteTempUpload(ctx context.Context, r io.Reader, filename string) (string, func(), error) {
	if err := os.MkdirAll(m.workDir, 0o755); err != nil {
		return "", func() {}, fmt.Errorf("mkdir workDir: %w", err)
	}
	base := sanitizeName(filepath.Base(filename))
	if base == "" {
		base = "recording.webm"
	}
	path := filepath.Join(m.workDir, fmt.Sprintf("temp_%s_%s", uuid.New().String(), base))

	f, err := os.Create(path)
	if err != nil {
		return "", func() {}, fmt.Errorf("create temp file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", func() {}, fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", func() {}, fmt.Errorf("close temp file: %w", err)
	}
	return path, func() { removeQuiet(path) }, nil
}

func (m *tools) ConvertToMP3(ctx context.Context, inputPath string) (string, error) {
	ctx = ctxutil.Default(ctx)
	if inputPath == "" {
		return "", errors.New("inputPath required")
	}
	out := mp3Path(inputPath)
	if out == inputPath {
		return inputPath, nil
	}

	cmd := exec.CommandContext(ctx, m.ffmpegPath,
		"-y", "-i", inputPath,
		"-vn",
		"-acodec", "libmp3lame",
		"-b:a", m.bitrate,
		out,
	)
	if b, err := cmd.CombinedOutput(); err != nil {
		removeQuiet(out)
		return "", fmt.Errorf("ffmpeg convert failed: %w; out=%s", err, tail(string(b), 2000))
	}
	removeQuiet(inputPath)
	m.log.Debug("Converted recording to mp3", "input", filepath.Base(inputPath), "output", filepath.Base(out))
	return out, nil
}

func (m *tools) ProbeDuration(ctx context.Context, path string) (time.Duration, error) {
	ctx = ctxutil.Default(ctx)
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, m.ffprobePath,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	b, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed: %w", err)
	}
	return ParseDuration(string(b))
}

// ParseDuration reads ffprobe's seconds output ("12.345000").
func ParseDuration(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "N/A" {
		return 0, fmt.Errorf("ffprobe reported no duration")
	}
	secs, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", raw, err)
	}
	if secs < 0 {
		return 0, fmt.Errorf("negative duration %q", raw)
	}
	return time.Duration(secs * float64(time.Second)), nil
}

func mp3Path(in string) string {
	ext := filepath.Ext(in)
	if strings.EqualFold(ext, ".mp3") {
		return in
	}
	return strings.TrimSuffix(in, ext) + ".mp3"
}

func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), ".")
}

func (m *tools) Remove(path string) { removeQuiet(path) }

func removeQuiet(path string) {
	if path == "" {
		return
	}
	_ = os.Remove(path)
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
