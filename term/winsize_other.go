//go:build !unix

package term

import (
	"errors"
	"os"
)

// Best-effort fallback for non-Unix platforms; Open falls back to a fixed
// shape when this fails.
func terminalSize(f *os.File) (cols, rows int, err error) {
	return 0, 0, errors.New("terminal size query not supported on this platform")
}
