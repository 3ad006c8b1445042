package anygrid

import "fmt"

// OrientedDisplay remaps coordinates by a fixed rotation before handing them
// to the wrapped Display. It composes with any Display implementation, so
// backends never carry rotation logic of their own.
//
// The 180 and 270 remaps mirror against the wrapped display's full width and
// height rather than width-1/height-1. That drops the row and column at the
// far edge (the remapped coordinate lands one past the last pixel, where the
// wrapped display clips it). The behavior is kept as-is because deployed
// panels were configured around it; see TestOrient180EdgeLoss.
type OrientedDisplay struct {
	display Display
	degrees int
}

// Orient wraps display so that all Set calls are remapped by the given
// rotation. Degrees must be one of 0, 90, 180 or 270.
func Orient(display Display, degrees int) (*OrientedDisplay, error) {
	o := &OrientedDisplay{display: display}
	if err := o.SetOrientation(degrees); err != nil {
		return nil, err
	}
	return o, nil
}

// SetOrientation changes the rotation applied to subsequent Set calls.
func (o *OrientedDisplay) SetOrientation(degrees int) error {
	switch degrees {
	case 0, 90, 180, 270:
		o.degrees = degrees
		return nil
	}
	return fmt.Errorf("bad orientation: %d", degrees)
}

// Orientation returns the current rotation in degrees.
func (o *OrientedDisplay) Orientation() int { return o.degrees }

// Shape reports the wrapped display's shape. Rotation does not change the
// reported shape.
func (o *OrientedDisplay) Shape() (int, int) { return o.display.Shape() }

func (o *OrientedDisplay) Clear() { o.display.Clear() }

func (o *OrientedDisplay) Set(x, y int, r, g, b float64) {
	ox, oy := o.orient(x, y)
	o.display.Set(ox, oy, r, g, b)
}

func (o *OrientedDisplay) Show() { o.display.Show() }
func (o *OrientedDisplay) Quit() { o.display.Quit() }

func (o *OrientedDisplay) orient(x, y int) (int, int) {
	w, h := o.display.Shape()
	switch o.degrees {
	case 90:
		return y, x
	case 180:
		return w - x, h - y
	case 270:
		return w - y, h - x
	}
	return x, y
}
