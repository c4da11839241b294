package recentlog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/yarp-shell/recentlog/internal/errors"
)

// ReadAll returns the full contents of path as text.
// The file handle is released on every return path.
func ReadAll(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", errors.FileAccess(path, err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", errors.FileAccess(path, err)
	}
	if !utf8.Valid(data) {
		return "", errors.FileAccess(path, fmt.Errorf("content is not valid UTF-8"))
	}
	return string(data), nil
}

// Tail returns the last n lines of content. n <= 0 returns content unchanged.
// A trailing newline on content is kept.
func Tail(content string, n int) string {
	if n <= 0 || content == "" {
		return content
	}

	body := strings.TrimSuffix(content, "\n")
	trailer := content[len(body):]

	// Walk back n newlines from the end.
	idx := len(body)
	for i := 0; i < n; i++ {
		idx = strings.LastIndexByte(body[:idx], '\n')
		if idx < 0 {
			return content
		}
	}
	return body[idx+1:] + trailer
}
