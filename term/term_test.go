package term

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewValidation(t *testing.T) {
	var buf bytes.Buffer
	if _, err := New(&buf, 0, 4); err == nil {
		t.Error("zero columns accepted")
	}
	if _, err := New(&buf, 4, -1); err == nil {
		t.Error("negative rows accepted")
	}
}

func TestShapeIsTwoPixelsPerRow(t *testing.T) {
	var buf bytes.Buffer
	d, err := New(&buf, 10, 4)
	if err != nil {
		t.Fatal(err)
	}
	w, h := d.Shape()
	if w != 10 || h != 8 {
		t.Errorf("Shape = %dx%d, want 10x8", w, h)
	}
}

func TestShowEmitsFrame(t *testing.T) {
	var buf bytes.Buffer
	d, err := New(&buf, 2, 2)
	if err != nil {
		t.Fatal(err)
	}

	d.Set(0, 0, 1, 0, 0) // top pixel of cell (0,0)
	d.Set(0, 1, 0, 1, 0) // bottom pixel of cell (0,0)
	d.Show()

	frame := buf.String()
	if !strings.HasPrefix(frame, cursorHome) {
		t.Errorf("frame does not home the cursor: %q", frame)
	}
	if !strings.Contains(frame, "\x1b[38;2;255;0;0m") {
		t.Errorf("frame missing red foreground: %q", frame)
	}
	if !strings.Contains(frame, "\x1b[48;2;0;255;0m") {
		t.Errorf("frame missing green background: %q", frame)
	}
	if got := strings.Count(frame, upperHalf); got != 4 {
		t.Errorf("frame has %d cells, want 4", got)
	}
	// One reset per row, no trailing newline after the last row.
	if got := strings.Count(frame, resetAttrs); got != 2 {
		t.Errorf("frame has %d attribute resets, want 2", got)
	}
	if strings.HasSuffix(frame, "\n") {
		t.Errorf("frame ends with a newline: %q", frame)
	}
}

func TestSetClipsAndClamps(t *testing.T) {
	var buf bytes.Buffer
	d, err := New(&buf, 2, 2)
	if err != nil {
		t.Fatal(err)
	}

	// Out of bounds: no panic, no effect.
	d.Set(-1, 0, 1, 1, 1)
	d.Set(2, 0, 1, 1, 1)
	d.Set(0, 4, 1, 1, 1)

	d.Set(1, 3, 2, -0.5, 0.5)
	if got := d.buf[3*d.width+1]; got != (cell{r: 255, g: 0, b: 127}) {
		t.Errorf("clamped cell = %+v", got)
	}
}

func TestQuitRestoresTerminal(t *testing.T) {
	var buf bytes.Buffer
	d, err := New(&buf, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	d.Set(0, 0, 1, 1, 1)
	d.Quit()

	out := buf.String()
	if !strings.Contains(out, showCursor) {
		t.Errorf("quit did not restore the cursor: %q", out)
	}
	// The final frame must be black.
	if strings.Contains(out, "255") {
		t.Errorf("quit frame still contains color: %q", out)
	}
}
