// Package term renders an anygrid display into an ANSI terminal using
// 24-bit color. Every character cell shows two vertically stacked pixels via
// the upper-half-block glyph, so a C x R terminal exposes a C x 2R pixel
// grid.
package term

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/glimmerlabs/anygrid"
)

const (
	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"
	clearTerm  = "\x1b[2J"
	cursorHome = "\x1b[H"
	resetAttrs = "\x1b[0m"
	upperHalf  = "▀"
)

// Fallback shape when the output is not a terminal we can measure.
const (
	fallbackCols = 80
	fallbackRows = 24
)

type cell struct{ r, g, b uint8 }

// Display buffers pixel writes and emits one ANSI frame per Show call.
type Display struct {
	out    io.Writer
	cols   int
	rows   int
	width  int // cols
	height int // rows * 2
	buf    []cell

	// Logger receives setup diagnostics when non-nil.
	Logger anygrid.Logger
}

// New returns a terminal display of the given character-cell shape writing
// frames to out. It does not emit any control sequences until the first
// Show.
func New(out io.Writer, cols, rows int) (*Display, error) {
	if cols <= 0 {
		return nil, fmt.Errorf("bad columns: %d", cols)
	}
	if rows <= 0 {
		return nil, fmt.Errorf("bad rows: %d", rows)
	}
	width, height := cols, rows*2
	return &Display{
		out:    out,
		cols:   cols,
		rows:   rows,
		width:  width,
		height: height,
		buf:    make([]cell, width*height),
	}, nil
}

// Open sizes a display to the controlling terminal on stdout, hides the
// cursor and clears the screen. When the terminal cannot be measured it
// falls back to 80x24.
func Open() (*Display, error) {
	cols, rows, err := terminalSize(os.Stdout)
	if err != nil {
		cols, rows = fallbackCols, fallbackRows
	}
	d, err := New(os.Stdout, cols, rows)
	if err != nil {
		return nil, err
	}
	_, _ = io.WriteString(d.out, hideCursor+clearTerm)
	return d, nil
}

func (d *Display) Shape() (int, int) { return d.width, d.height }

func (d *Display) Clear() {
	for i := range d.buf {
		d.buf[i] = cell{}
	}
}

func (d *Display) Set(x, y int, r, g, b float64) {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return
	}
	d.buf[y*d.width+x] = cell{
		r: uint8(255 * clamp01(r)),
		g: uint8(255 * clamp01(g)),
		b: uint8(255 * clamp01(b)),
	}
}

// Show writes the whole frame in one burst. Runs of identical colors reuse
// the current attributes to keep the frame small.
func (d *Display) Show() {
	var sb strings.Builder
	sb.Grow(d.width * d.height * 8)
	sb.WriteString(cursorHome)

	haveAttrs := false
	var fg, bg cell
	for row := 0; row < d.rows; row++ {
		for col := 0; col < d.cols; col++ {
			top := d.buf[(row*2)*d.width+col]
			bottom := d.buf[(row*2+1)*d.width+col]
			if !haveAttrs || top != fg {
				fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm", top.r, top.g, top.b)
				fg = top
			}
			if !haveAttrs || bottom != bg {
				fmt.Fprintf(&sb, "\x1b[48;2;%d;%d;%dm", bottom.r, bottom.g, bottom.b)
				bg = bottom
			}
			haveAttrs = true
			sb.WriteString(upperHalf)
		}
		sb.WriteString(resetAttrs)
		haveAttrs = false
		if row != d.rows-1 {
			sb.WriteByte('\n')
		}
	}
	_, _ = io.WriteString(d.out, sb.String())
}

func (d *Display) Quit() {
	d.Clear()
	d.Show()
	_, _ = io.WriteString(d.out, resetAttrs+showCursor+"\n")
	if d.Logger != nil {
		d.Logger.Infof("term", "terminal restored")
	}
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
