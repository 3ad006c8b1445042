// Command showimage paints an image file, a QR code or a text banner onto a
// display via the canvas resampler.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	_ "image/gif"
	_ "image/jpeg"

	"github.com/sirupsen/logrus"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"

	"github.com/glimmerlabs/anygrid"
	"github.com/glimmerlabs/anygrid/internal/backends"
	"github.com/glimmerlabs/anygrid/internal/logutil"
)

func main() {
	displayName := flag.String("display", "term", "display backend: term | fb | image | null")
	fbDevice := flag.String("fb-device", "", "framebuffer device path for -display=fb")
	rotate := flag.Int("rotate", 0, "display rotation: 0, 90, 180 or 270 degrees")
	gridW := flag.Int("width", 64, "grid width for -display=image and -display=null")
	gridH := flag.Int("height", 64, "grid height for -display=image and -display=null")
	qrPayload := flag.String("qr", "", "show a QR code for this payload instead of an image file")
	qrSize := flag.Int("qr-size", 0, "QR code side length in pixels; 0 picks a default")
	text := flag.String("text", "", "show a text banner instead of an image file")
	fontPath := flag.String("font", "", "TrueType font file for -text; built-in bitmap font when empty")
	fontSize := flag.Float64("font-size", 48, "font size in points for -text")
	smooth := flag.Bool("smooth", false, "pre-scale to the display shape with bilinear filtering instead of nearest-neighbor blocks")
	hold := flag.Duration("hold", time.Minute, "how long to keep the image on screen")
	out := flag.String("out", "", "write the frame as PNG to this path (use -display=image)")
	debug := flag.Bool("debug", false, "log draw diagnostics to stderr")
	flag.Parse()

	var logger anygrid.Logger
	if *debug {
		l := logrus.New()
		l.SetLevel(logrus.DebugLevel)
		logger = logutil.Logrus{L: l}
	}

	img, err := sourceImage(*qrPayload, *qrSize, *text, *fontPath, *fontSize)
	if err != nil {
		fmt.Println("image error:", err)
		os.Exit(1)
	}

	display, snapshot, err := backends.Open(backends.Options{
		Name:     *displayName,
		FBDevice: *fbDevice,
		Width:    *gridW,
		Height:   *gridH,
		Rotate:   *rotate,
		Logger:   logger,
	})
	if err != nil {
		fmt.Println("display open error:", err)
		os.Exit(1)
	}

	canvas, err := anygrid.New(display, anygrid.Config{Logger: logger})
	if err != nil {
		fmt.Println("canvas error:", err)
		os.Exit(1)
	}
	defer func() {
		canvas.Clear()
		canvas.Show()
		canvas.Quit()
	}()

	if *smooth {
		img = scaleToDisplay(img, display)
	}

	if err := canvas.SetImage(img); err != nil {
		fmt.Println("set image error:", err)
		os.Exit(1)
	}
	canvas.Show()

	if *out != "" {
		if snapshot == nil {
			fmt.Println("snapshot error: -out requires -display=image")
			os.Exit(1)
		}
		if err := writePNG(*out, snapshot.Image()); err != nil {
			fmt.Println("snapshot error:", err)
			os.Exit(1)
		}
		return
	}

	time.Sleep(*hold)
}

// sourceImage picks the image to show: a QR code, a rendered text banner, or
// a decoded image file given as the sole positional argument.
func sourceImage(qrPayload string, qrSize int, text, fontPath string, fontSize float64) (image.Image, error) {
	switch {
	case qrPayload != "":
		return qrImage(qrPayload, qrSize)
	case text != "":
		return renderBanner(text, fontPath, fontSize)
	}

	if flag.NArg() != 1 {
		return nil, fmt.Errorf("usage: %s [flags] <image>", os.Args[0])
	}
	f, err := os.Open(flag.Arg(0))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", flag.Arg(0), err)
	}
	return img, nil
}

// scaleToDisplay stretches the image to the display's shape so the canvas
// paints it 1:1 instead of in nearest-neighbor blocks.
func scaleToDisplay(img image.Image, display anygrid.Display) image.Image {
	width, height := display.Shape()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
