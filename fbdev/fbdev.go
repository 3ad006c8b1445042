//go:build linux && cgo

// Package fbdev drives the Linux framebuffer as an anygrid display.
package fbdev

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	fb "github.com/gonutz/framebuffer"

	"github.com/glimmerlabs/anygrid"
)

// DefaultDevice is the framebuffer opened when no path is given.
const DefaultDevice = "/dev/fb0"

// Display writes pixels straight into a memory-mapped framebuffer device.
// Writes are visible immediately, so Show is a no-op.
type Display struct {
	dev *fb.Device

	// Logger receives open/close diagnostics when non-nil.
	Logger anygrid.Logger
}

// Open memory-maps the framebuffer at the given device path ("" means
// DefaultDevice).
func Open(device string) (*Display, error) {
	if device == "" {
		device = DefaultDevice
	}
	dev, err := fb.Open(device)
	if err != nil {
		return nil, err
	}
	return &Display{dev: dev}, nil
}

func (d *Display) Shape() (int, int) {
	bounds := d.dev.Bounds()
	return bounds.Dx(), bounds.Dy()
}

func (d *Display) Clear() {
	draw.Draw(d.dev, d.dev.Bounds(), &image.Uniform{C: color.Black}, image.Point{}, draw.Src)
}

func (d *Display) Set(x, y int, r, g, b float64) {
	bounds := d.dev.Bounds()
	if x < 0 || x >= bounds.Dx() || y < 0 || y >= bounds.Dy() {
		return
	}
	d.dev.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{
		R: uint8(255 * clamp01(r)),
		G: uint8(255 * clamp01(g)),
		B: uint8(255 * clamp01(b)),
		A: 0xFF,
	})
}

// Show is a no-op; framebuffer writes hit the screen directly.
func (d *Display) Show() {}

func (d *Display) Quit() {
	d.Clear()
	d.Show()
	d.dev.Close()
	if d.Logger != nil {
		d.Logger.Infof("fbdev", "framebuffer closed")
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
