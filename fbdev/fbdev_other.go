//go:build !linux || !cgo

// Package fbdev drives the Linux framebuffer as an anygrid display.
package fbdev

import (
	"errors"

	"github.com/glimmerlabs/anygrid"
)

// DefaultDevice is the framebuffer opened when no path is given.
const DefaultDevice = "/dev/fb0"

// Display is a stub on non-Linux platforms; Open always fails.
type Display struct {
	Logger anygrid.Logger
}

func Open(device string) (*Display, error) {
	return nil, errors.New("fbdev: framebuffer devices are only supported on linux")
}

func (d *Display) Shape() (int, int)             { return 0, 0 }
func (d *Display) Clear()                        {}
func (d *Display) Set(x, y int, r, g, b float64) {}
func (d *Display) Show()                         {}
func (d *Display) Quit()                         {}
