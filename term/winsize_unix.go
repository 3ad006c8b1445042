//go:build unix

package term

import (
	"os"

	"golang.org/x/sys/unix"
)

// terminalSize asks the kernel for the terminal's character-cell shape.
func terminalSize(f *os.File) (cols, rows int, err error) {
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}
