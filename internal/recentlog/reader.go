package recentlog

import (
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/yarp-shell/recentlog/internal/errors"
	"github.com/yarp-shell/recentlog/internal/platform"
)

// Options configure a Reader. Dir and Pattern override the platform
// default; when Dir is empty the yarp directory for Env is used.
type Options struct {
	Env     platform.Env
	Dir     string
	Pattern string
	Logger  *slog.Logger
}

// Reader runs the resolve, list, select and read pipeline.
type Reader struct {
	opts   Options
	logger *slog.Logger
}

// NewReader creates a Reader. A nil Logger falls back to slog.Default().
func NewReader(opts Options) *Reader {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Pattern == "" {
		opts.Pattern = platform.DefaultPattern
	}
	return &Reader{opts: opts, logger: logger}
}

// Pattern returns the glob the Reader lists. Glob metacharacters in the
// directory are escaped so only the file name part is matched.
func (r *Reader) Pattern() (string, error) {
	dir := r.opts.Dir
	if dir == "" {
		var err error
		if dir, err = platform.LogDir(r.opts.Env); err != nil {
			return "", err
		}
	}
	return filepath.Join(escapeGlob(dir), r.opts.Pattern), nil
}

// Ranked lists the candidates newest first, or returns a NoLogFiles error
// when none match.
func (r *Reader) Ranked() ([]Candidate, error) {
	pattern, candidates, err := r.list()
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, errors.NoLogFiles(pattern)
	}
	SortNewestFirst(candidates)
	return candidates, nil
}

// Latest returns the newest candidate, or a NoLogFiles error when none match.
func (r *Reader) Latest() (Candidate, error) {
	pattern, candidates, err := r.list()
	if err != nil {
		return Candidate{}, err
	}
	if len(candidates) == 0 {
		return Candidate{}, errors.NoLogFiles(pattern)
	}
	latest, err := SelectLatest(candidates)
	if err != nil {
		return Candidate{}, err
	}
	r.logger.Debug("selected latest log",
		slog.String("path", latest.Path),
		slog.Time("mod_time", latest.ModTime))
	return latest, nil
}

func (r *Reader) list() (string, []Candidate, error) {
	pattern, err := r.Pattern()
	if err != nil {
		return "", nil, err
	}
	candidates, err := ListMatchingFiles(pattern)
	if err != nil {
		return "", nil, err
	}
	r.logger.Debug("listed log candidates",
		slog.String("pattern", pattern),
		slog.Int("count", len(candidates)))
	return pattern, candidates, nil
}

// escapeGlob quotes the characters filepath.Match treats specially.
// Backslash is a separator on Windows and is left alone there.
func escapeGlob(dir string) string {
	var sb strings.Builder
	for _, c := range dir {
		switch {
		case c == '*' || c == '?' || c == '[':
			sb.WriteByte('[')
			sb.WriteRune(c)
			sb.WriteByte(']')
		case c == '\\' && runtime.GOOS != "windows":
			sb.WriteString(`\\`)
		default:
			sb.WriteRune(c)
		}
	}
	return sb.String()
}

// Read returns the newest log file and its full content.
func (r *Reader) Read() (Candidate, string, error) {
	latest, err := r.Latest()
	if err != nil {
		return Candidate{}, "", err
	}
	content, err := ReadAll(latest.Path)
	if err != nil {
		return Candidate{}, "", err
	}
	r.logger.Debug("read log",
		slog.String("path", latest.Path),
		slog.Int("bytes", len(content)))
	return latest, content, nil
}
