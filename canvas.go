package anygrid

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// pixelState is the blended color of one physical display pixel plus the
// fraction of its area painted so far. coverage == 0 implies a black pixel.
type pixelState struct {
	r, g, b  float64
	coverage float64
}

// Config controls Canvas construction.
type Config struct {
	// Width and Height are the logical canvas size, in logical pixels.
	// Zero means "match the display". Values are otherwise required to be
	// positive.
	Width  int
	Height int

	// WrapX and WrapY make out-of-range coordinates wrap around the
	// corresponding axis instead of being clipped.
	WrapX bool
	WrapY bool

	// Logger receives per-draw diagnostics when non-nil. Leave nil in
	// production; the canvas hot path logs a line per draw when set.
	Logger Logger
}

// Canvas is an abstraction layer over a Display. Callers draw points with
// floating-point coordinates and arbitrary brush sizes in a logical
// coordinate space; the canvas rasterizes them onto the display's discrete
// grid, tracking how much of every physical pixel has been painted so that
// overlapping draws blend correctly.
//
// A Canvas is bound to one Display for its lifetime. It performs no locking;
// callers must serialize access themselves.
type Canvas struct {
	display Display

	width  int // logical
	height int // logical
	dispW  int // physical
	dispH  int // physical

	// Uniform logical-to-physical scale, chosen so the logical space fits
	// the display without distortion.
	scale float64

	wrapX bool
	wrapY bool

	// One entry per physical display pixel, row-major.
	buf []pixelState

	log Logger
}

// New returns a Canvas rendering to display. The logical size defaults to
// the display's shape when cfg leaves it zero.
func New(display Display, cfg Config) (*Canvas, error) {
	dispW, dispH := display.Shape()
	width, height := cfg.Width, cfg.Height
	if width == 0 {
		width = dispW
	}
	if height == 0 {
		height = dispH
	}
	if width <= 0 {
		return nil, fmt.Errorf("bad width: %d", width)
	}
	if height <= 0 {
		return nil, fmt.Errorf("bad height: %d", height)
	}
	return &Canvas{
		display: display,
		width:   width,
		height:  height,
		dispW:   dispW,
		dispH:   dispH,
		scale: math.Min(float64(dispW)/float64(width),
			float64(dispH)/float64(height)),
		wrapX: cfg.WrapX,
		wrapY: cfg.WrapY,
		buf:   make([]pixelState, dispW*dispH),
		log:   cfg.Logger,
	}, nil
}

// Width returns the logical canvas width.
func (c *Canvas) Width() int { return c.width }

// Height returns the logical canvas height.
func (c *Canvas) Height() int { return c.height }

// At returns the stored state of the physical display pixel at (x, y): its
// blended color and the fraction of its area painted. Out-of-bounds
// coordinates yield zeros.
func (c *Canvas) At(x, y int) (r, g, b, coverage float64) {
	if x < 0 || x >= c.dispW || y < 0 || y >= c.dispH {
		return 0, 0, 0, 0
	}
	p := c.buf[y*c.dispW+x]
	return p.r, p.g, p.b, p.coverage
}

// Clear resets the canvas contents and the display.
func (c *Canvas) Clear() {
	c.display.Clear()
	for i := range c.buf {
		c.buf[i] = pixelState{}
	}
}

// Show flushes any Set calls to the display.
func (c *Canvas) Show() { c.display.Show() }

// Quit clears the display and shuts it down.
func (c *Canvas) Quit() {
	c.Clear()
	c.Show()
	c.display.Quit()
}

// Set paints a point of the given color at logical coordinates (x, y) with a
// logical brush diameter of size. size = 1 paints a single logical-unit
// square centered on the point; fractional sizes and coordinates are
// rasterized with sub-pixel coverage. Coordinates may lie outside the
// canvas; out-of-range pixels wrap or are clipped per the wrap flags, and
// the call never fails.
//
// The color channels are clamped to [0,1] before use.
func (c *Canvas) Set(x, y, r, g, b, size float64) {
	if c.log != nil {
		c.log.Infof("canvas", "set x=%v y=%v r=%v g=%v b=%v size=%v", x, y, r, g, b, size)
	}

	// Non-finite geometry cannot be rasterized; treat it like any other
	// off-grid input and do nothing.
	if !isFinite(x) || !isFinite(y) || !isFinite(size) {
		return
	}

	// Nothing to draw if the footprint has no extent.
	scale := size * c.scale
	if scale <= 0 {
		return
	}

	// The display's coordinates and the clamped color.
	dx := x * c.scale
	dy := y * c.scale
	dr := clamp01(r)
	dg := clamp01(g)
	db := clamp01(b)

	width, height := c.dispW, c.dispH

	if scale == 1 &&
		dx == math.Trunc(dx) && dy == math.Trunc(dy) &&
		dx >= 0 && dx < float64(width) &&
		dy >= 0 && dy < float64(height) {
		// Simple case: exactly one whole pixel, set directly. This is
		// the only path which overwrites without blending.
		px, py := int(dx), int(dy)
		c.buf[py*width+px] = pixelState{r: dr, g: dg, b: db, coverage: 1}
		c.display.Set(px, py, dr, dg, db)
		return
	}

	if scale < 1 &&
		dx >= 0 && dx < float64(width) &&
		dy >= 0 && dy < float64(height) {
		// Sub-pixel point: the whole footprint lands inside one display
		// pixel, covering scale^2 of its area.
		c.blend(int(dx), int(dy), scale*scale, dr, dg, db)
		return
	}

	// General case: a square of side scale centered on (dx, dy). Split the
	// side into a left/top and right/bottom offset; the odd/even tie-break
	// keeps integer-sized squares anchored on the pixel grid. A scale of 2
	// at (5,5) paints (5,5)..(6,6); 3 paints (4,4)..(6,6); 4 paints
	// (4,4)..(7,7); and so on.
	half := math.Max(0, (scale-1)/2)
	var lOff, rOff float64
	if int(scale)&1 == 1 {
		// Odd scale grows right with the fraction.
		lOff = math.Floor(half)
		rOff = scale - lOff
	} else {
		// Even grows left.
		rOff = math.Floor(half)
		lOff = scale - rOff
	}
	dxl := dx - lOff
	dxr := dx + rOff
	dyt := dy - lOff
	dyb := dy + rOff
	if c.log != nil {
		c.log.Infof("canvas", "footprint x=[%v,%v] y=[%v,%v]", dxl, dxr, dyt, dyb)
	}

	// Walk every display pixel the square touches and blend by the covered
	// area. A pixel's cell is the unit square [px,px+1)x[py,py+1), so the
	// intersection area is also the coverage fraction.
	for gx := int(dxl); gx <= int(dxr); gx++ {
		for gy := int(dyt); gy <= int(dyb); gy++ {
			cxl := math.Max(dxl, float64(gx))
			cxr := math.Min(dxr, float64(gx+1))
			cyt := math.Max(dyt, float64(gy))
			cyb := math.Min(dyb, float64(gy+1))
			factor := math.Abs(cxr-cxl) * math.Abs(cyb-cyt)
			if factor <= 0 {
				continue
			}
			if factor > 1 {
				factor = 1
			}

			// Wrap or clip pixels which fall off the display.
			px, py := gx, gy
			if px < 0 || px >= width {
				if !c.wrapX {
					continue
				}
				px = mod(px, width)
			}
			if py < 0 || py >= height {
				if !c.wrapY {
					continue
				}
				py = mod(py, height)
			}

			c.blend(px, py, factor, dr, dg, db)
		}
	}
}

// blend composites a contribution of the given area fraction and color into
// the display pixel at (px, py), then pushes the resulting visible color to
// the display. (px, py) must be in bounds.
func (c *Canvas) blend(px, py int, factor, dr, dg, db float64) {
	p := &c.buf[py*c.dispW+px]
	pr, pg, pb, pf := p.r, p.g, p.b, p.coverage

	// Account for the area of the pixel not yet painted.
	room := 1 - factor
	if pf == 0 || pf <= room {
		// The contribution fits in the unpainted space, so this is a
		// straight addition over the implicit black backdrop. E.g. if
		// 0.1 of the pixel was painted and we now paint 0.7, there is
		// still 0.2 of unaccounted-for space.
		pr += factor * dr
		pg += factor * dg
		pb += factor * db
		pf += factor
	} else {
		// We are taking away from what was painted before. Rescale the
		// existing color into the remaining share and take the weighted
		// average; pf cannot be zero here. The pixel is fully painted
		// from now on.
		k := room / pf
		pr = math.Min(k*pr+factor*dr, 1)
		pg = math.Min(k*pg+factor*dg, 1)
		pb = math.Min(k*pb+factor*db, 1)
		pf = 1
	}

	if pr > 1 {
		pr = 1
	}
	if pg > 1 {
		pg = 1
	}
	if pb > 1 {
		pb = 1
	}
	if pf > 1 {
		pf = 1
	}
	p.r, p.g, p.b, p.coverage = pr, pg, pb, pf

	// The display always receives the blended visible color, never the raw
	// contribution.
	c.display.Set(px, py, pr, pg, pb)
}

// SetImage paints the image onto the display with nearest-neighbor
// resampling. Each source pixel is drawn as one brush stroke whose size is
// the larger of the per-axis display/image ratios, rounded up beyond 1 so
// that adjacent blocks leave no sub-pixel gaps when upscaling.
func (c *Canvas) SetImage(img image.Image) error {
	dispW, dispH := c.display.Shape()
	bounds := img.Bounds()
	iw, ih := bounds.Dx(), bounds.Dy()
	if iw <= 0 || ih <= 0 {
		return fmt.Errorf("bad image dimensions: %d x %d", iw, ih)
	}

	// The scaling factors, given the dimension ratios.
	sw := float64(dispW) / float64(iw)
	sh := float64(dispH) / float64(ih)

	sz := math.Max(sw, sh)
	if sz > 1 {
		sz = math.Ceil(sz)
	}

	for ix := 0; ix < iw; ix++ {
		for iy := 0; iy < ih; iy++ {
			dx := math.Round(float64(ix) * sw)
			dy := math.Round(float64(iy) * sh)
			// Sample raw RGB; alpha is not composited, so translucent
			// pixels keep their stored color instead of darkening.
			px := color.NRGBAModel.Convert(img.At(bounds.Min.X+ix, bounds.Min.Y+iy)).(color.NRGBA)
			c.Set(dx, dy,
				float64(px.R)/255,
				float64(px.G)/255,
				float64(px.B)/255,
				sz)
		}
	}
	return nil
}

// clamp01 forces v into [0,1]; NaN becomes 0 so it can never enter the
// state buffer.
func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// mod is a floored modulo, so negative coordinates wrap to the far edge.
func mod(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
