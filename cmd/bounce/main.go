// Command bounce drifts a handful of soft colored points around a wrapping
// canvas to exercise the rasterizer on a real display.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/glimmerlabs/anygrid"
	"github.com/glimmerlabs/anygrid/internal/backends"
	"github.com/glimmerlabs/anygrid/internal/logutil"
)

type point struct {
	x, y, vx, vy float64
	r, g, b      float64
	vr, vg, vb   float64
}

func main() {
	displayName := flag.String("display", "term", "display backend: term | fb | null")
	fbDevice := flag.String("fb-device", "", "framebuffer device path for -display=fb")
	rotate := flag.Int("rotate", 0, "display rotation: 0, 90, 180 or 270 degrees")
	points := flag.Int("points", 3, "number of points to bounce")
	size := flag.Float64("size", 0, "brush size in logical pixels; 0 sizes to the canvas")
	fps := flag.Int("fps", 50, "frames per second")
	duration := flag.Duration("duration", 0, "how long to run; 0 means until interrupted")
	gridW := flag.Int("width", 64, "grid width for -display=null")
	gridH := flag.Int("height", 64, "grid height for -display=null")
	debug := flag.Bool("debug", false, "enable debug logging to ./bounce-debug.log")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via ANYGRID_STDIO_LOG")
	flag.Parse()

	// Redirect all stdout/stderr output (including panic stack traces) to a
	// file so crashes are diagnosable while the display owns the screen.
	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv("ANYGRID_STDIO_LOG")
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	var logger anygrid.Logger
	if *debug {
		f, err := os.OpenFile("./bounce-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Println("debug log open error:", err)
			os.Exit(2)
		}
		defer f.Close()
		l := logrus.New()
		l.SetOutput(f)
		l.SetLevel(logrus.DebugLevel)
		logger = logutil.Logrus{L: l}
		logger.Infof("main", "debug logging enabled")
	}

	display, _, err := backends.Open(backends.Options{
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

	canvas, err := anygrid.New(display, anygrid.Config{WrapX: true, WrapY: true, Logger: logger})
	if err != nil {
		fmt.Println("canvas error:", err)
		os.Exit(1)
	}
	defer canvas.Quit()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if *duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	run(ctx, canvas, *points, *size, *fps)
}

func run(ctx context.Context, canvas *anygrid.Canvas, count int, size float64, fps int) {
	w := float64(canvas.Width() - 1)
	h := float64(canvas.Height() - 1)

	// Scale the brush to the canvas unless the caller chose one.
	if size <= 0 {
		size = min(w/10, h/10) + 1
	}
	if fps <= 0 {
		fps = 50
	}

	pts := make([]point, count)
	for i := range pts {
		pts[i] = point{
			x:  float64(rand.Intn(int(w) + 1)),
			y:  float64(rand.Intn(int(h) + 1)),
			vx: 0.3 + rand.Float64()*0.2,
			vy: 0.4 + rand.Float64()*0.1,
			r:  rand.Float64(),
			g:  rand.Float64(),
			b:  rand.Float64(),
			vr: (rand.Float64() - 0.5) * 0.01,
			vg: (rand.Float64() - 0.5) * 0.01,
			vb: (rand.Float64() - 0.5) * 0.01,
		}
	}

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		canvas.Clear()
		for i := range pts {
			p := &pts[i]

			// Bounce off the edges.
			if p.x < 0 {
				p.vx = rand.Float64()*0.25 + 0.25
			}
			if p.x > w {
				p.vx = -rand.Float64()*0.25 - 0.25
			}
			if p.y < 0 {
				p.vy = rand.Float64()*0.25 + 0.25
			}
			if p.y > h {
				p.vy = -rand.Float64()*0.25 - 0.25
			}
			p.x += p.vx
			p.y += p.vy

			// Drift the color, reflecting at the channel limits.
			p.r += p.vr
			p.g += p.vg
			p.b += p.vb
			if p.r < 0 || p.r > 1 {
				p.vr = -p.vr
			}
			if p.g < 0 || p.g > 1 {
				p.vg = -p.vg
			}
			if p.b < 0 || p.b > 1 {
				p.vb = -p.vb
			}

			canvas.Set(p.x, p.y, p.r, p.g, p.b, size)
		}
		canvas.Show()
	}
}
