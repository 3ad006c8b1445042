// Package anygrid draws colored points onto physical pixel grids of any
// resolution. Callers work in a continuous logical coordinate space via the
// Canvas; concrete hardware lives behind the Display interface.
//
// Display origin (0,0) is the top left.
package anygrid

import "fmt"

// Display is the interface to the hardware which actually does the
// displaying. It can be used directly or via the Canvas.
//
// Implementations must silently ignore out-of-bounds coordinates in Set;
// callers pre-clip, but the hardware must never be handed a bad address.
type Display interface {
	// Shape returns the width x height of the display.
	Shape() (width, height int)

	// Clear resets the display contents to its base state.
	Clear()

	// Set writes the pixel at the given coordinates. The color is an RGB
	// value with each channel in [0,1].
	Set(x, y int, r, g, b float64)

	// Show flushes any pending Set and Clear calls so they are displayed.
	Show()

	// Quit shuts down the display. The conventional behavior is to clear,
	// show, then release any hardware.
	Quit()
}

// NullDisplay is a Display which does nothing. It is useful for running
// headless, and for exercising the Canvas in tests.
type NullDisplay struct {
	width  int
	height int
}

// NewNullDisplay returns a no-op display with the given shape.
func NewNullDisplay(width, height int) (*NullDisplay, error) {
	if width <= 0 {
		return nil, fmt.Errorf("bad width: %d", width)
	}
	if height <= 0 {
		return nil, fmt.Errorf("bad height: %d", height)
	}
	return &NullDisplay{width: width, height: height}, nil
}

func (d *NullDisplay) Shape() (int, int)             { return d.width, d.height }
func (d *NullDisplay) Clear()                        {}
func (d *NullDisplay) Set(x, y int, r, g, b float64) {}
func (d *NullDisplay) Show()                         {}
func (d *NullDisplay) Quit()                         {}
