package simio

import (
	"fmt"
	"os"
	"strings"
)

// readLines reads a whole file into memory and returns its lines. A single
// trailing newline does not produce a phantom empty last line. Carriage
// returns are stripped so CRLF files parse the same as LF files.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return nil, nil
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines, nil
}

// isComment reports whether a raw line is a comment. The marker must be the
// first byte of the line; indented markers are not comments.
func isComment(line string) bool {
	return strings.HasPrefix(line, "#")
}
