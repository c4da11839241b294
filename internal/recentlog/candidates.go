package recentlog

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/yarp-shell/recentlog/internal/errors"
)

// Candidate is one file matching the log pattern.
type Candidate struct {
	Path    string
	ModTime time.Time
	Size    int64
}

// ListMatchingFiles expands pattern against a single directory and stats
// every match. A missing directory yields an empty slice and no error.
// Files removed between the glob and the stat are skipped.
func ListMatchingFiles(pattern string) ([]Candidate, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("invalid log pattern %q", pattern), err)
	}

	candidates := make([]Candidate, 0, len(matches))
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, errors.FileAccess(m, err)
		}
		if info.IsDir() {
			continue
		}
		candidates = append(candidates, Candidate{
			Path:    m,
			ModTime: info.ModTime(),
			Size:    info.Size(),
		})
	}
	return candidates, nil
}

// newer reports whether a sorts ahead of b: later ModTime first, then the
// lexicographically larger path.
func newer(a, b Candidate) bool {
	if !a.ModTime.Equal(b.ModTime) {
		return a.ModTime.After(b.ModTime)
	}
	return a.Path > b.Path
}

// SelectLatest returns the candidate with the greatest ModTime.
// The result does not depend on the order of candidates.
func SelectLatest(candidates []Candidate) (Candidate, error) {
	if len(candidates) == 0 {
		return Candidate{}, errors.New(errors.ErrCodeNoLogFiles, "no log files to choose from", nil)
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if newer(c, best) {
			best = c
		}
	}
	return best, nil
}

// SortNewestFirst orders candidates the way SelectLatest ranks them.
func SortNewestFirst(candidates []Candidate) {
	sort.Slice(candidates, func(i, j int) bool {
		return newer(candidates[i], candidates[j])
	})
}
