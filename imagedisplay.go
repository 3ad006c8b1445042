package anygrid

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// ImageDisplay renders into an in-memory RGBA image. It is handy for
// headless rendering, snapshotting frames to files, and tests which need to
// observe real pixel output.
type ImageDisplay struct {
	img *image.RGBA
}

// NewImageDisplay returns a display backed by a fresh black image of the
// given shape.
func NewImageDisplay(width, height int) (*ImageDisplay, error) {
	if width <= 0 {
		return nil, fmt.Errorf("bad width: %d", width)
	}
	if height <= 0 {
		return nil, fmt.Errorf("bad height: %d", height)
	}
	d := &ImageDisplay{img: image.NewRGBA(image.Rect(0, 0, width, height))}
	d.Clear()
	return d, nil
}

// Image returns the backing image. The display keeps writing into it.
func (d *ImageDisplay) Image() *image.RGBA { return d.img }

func (d *ImageDisplay) Shape() (int, int) {
	bounds := d.img.Bounds()
	return bounds.Dx(), bounds.Dy()
}

func (d *ImageDisplay) Clear() {
	draw.Draw(d.img, d.img.Bounds(), &image.Uniform{C: color.Black}, image.Point{}, draw.Src)
}

func (d *ImageDisplay) Set(x, y int, r, g, b float64) {
	width, height := d.Shape()
	if x < 0 || x >= width || y < 0 || y >= height {
		return
	}
	d.img.SetRGBA(x, y, color.RGBA{
		R: uint8(255 * clamp01(r)),
		G: uint8(255 * clamp01(g)),
		B: uint8(255 * clamp01(b)),
		A: 0xFF,
	})
}

func (d *ImageDisplay) Show() {}

func (d *ImageDisplay) Quit() {
	d.Clear()
	d.Show()
}
