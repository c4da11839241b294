// Package platform resolves where yarp keeps its log files on the host.
package platform

import (
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/yarp-shell/recentlog/internal/errors"
)

// Family is the broad OS category that decides the log directory layout.
type Family int

const (
	// Other is any OS without a known yarp log directory.
	Other Family = iota
	// Linux covers GOOS "linux".
	Linux
	// Windows covers GOOS "windows".
	Windows
)

// String returns the human-readable family name.
func (f Family) String() string {
	switch f {
	case Linux:
		return "linux"
	case Windows:
		return "windows"
	default:
		return "other"
	}
}

// DefaultPattern is the file name glob yarp log files match.
const DefaultPattern = "*.log"

// Env is the host identity path resolution depends on.
// It is read once at startup and passed down explicitly.
type Env struct {
	GOOS string
	Home string
}

// FromRuntime captures the running OS and the invoking user's home directory.
func FromRuntime() (Env, error) {
	home, err := homedir.Dir()
	if err != nil {
		return Env{}, errors.ConfigError("cannot determine home directory", err).
			WithSuggestion("Set HOME (or USERPROFILE on Windows), or pass --dir")
	}
	return Env{GOOS: runtime.GOOS, Home: home}, nil
}

// FamilyOf maps a GOOS value to its Family.
func FamilyOf(goos string) Family {
	switch strings.ToLower(goos) {
	case "linux":
		return Linux
	case "windows":
		return Windows
	default:
		return Other
	}
}

// LogDir returns the yarp log directory for env.
// Families without a known directory yield an UnsupportedPlatform error.
func LogDir(env Env) (string, error) {
	switch FamilyOf(env.GOOS) {
	case Linux:
		return filepath.Join(env.Home, ".local", "share", "yarp", "logs"), nil
	case Windows:
		return filepath.Join(env.Home, "AppData", "Roaming", "yarp", "logs"), nil
	default:
		return "", errors.UnsupportedPlatform(env.GOOS)
	}
}
