package media

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// InputKind distinguishes the two accepted pipeline inputs.
type InputKind int

const (
	InputRemote InputKind = iota
	InputLocal
)

var supportedVideoExts = []string{".mp4", ".mov", ".avi", ".mkv", ".webm", ".m4v", ".flv"}

// ResolveInput classifies the CLI argument as a remote URL or a local
// video file. Missing local files and unsupported extensions are fatal
// input validation errors, raised before any side effects.
func ResolveInput(input string) (InputKind, error) {
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		return InputRemote, nil
	}

	info, err := os.Stat(input)
	if os.IsNotExist(err) {
		return 0, fmt.Errorf("input file does not exist: %s", input)
	}
	if err != nil {
		return 0, fmt.Errorf("inspect input file: %w", err)
	}
	if info.IsDir() {
		return 0, fmt.Errorf("input %s is a directory, expected a video file or URL", input)
	}
	if !IsVideoFile(input) {
		return 0, fmt.Errorf("unsupported file extension %q (supported: %s)",
			filepath.Ext(input), strings.Join(supportedVideoExts, ", "))
	}

	return InputLocal, nil
}

// IsVideoFile reports whether the path has a supported video extension.
func IsVideoFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range supportedVideoExts {
		if ext == supported {
			return true
		}
	}
	return false
}
