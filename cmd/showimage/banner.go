package main

import (
	"image"
	"image/color"
	"image/draw"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// renderBanner draws the text white-on-black into a tightly sized image.
// With no font file the built-in 7x13 bitmap face is used, which suits small
// LED grids better than scaled-down vector glyphs anyway.
func renderBanner(text, fontPath string, sizePt float64) (image.Image, error) {
	var face font.Face = basicfont.Face7x13
	if fontPath != "" {
		data, err := os.ReadFile(fontPath)
		if err != nil {
			return nil, err
		}
		ttFont, err := truetype.Parse(data)
		if err != nil {
			return nil, err
		}
		face = truetype.NewFace(ttFont, &truetype.Options{
			Size:    sizePt,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}

	drawer := &font.Drawer{
		Src:  image.NewUniform(color.White),
		Face: face,
	}
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()
	textWidth := drawer.MeasureString(text).Ceil()

	// A small margin keeps glyph edges off the image border, where the
	// canvas resampler would clip them.
	const pad = 2
	img := image.NewRGBA(image.Rect(0, 0, textWidth+2*pad, ascent+descent+2*pad))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.Black}, image.Point{}, draw.Src)

	drawer.Dst = img
	drawer.Dot = fixed.P(pad, pad+ascent)
	drawer.DrawString(text)
	return img, nil
}
