// Package backends opens display backends by name for the command-line
// tools.
package backends

import (
	"fmt"

	"github.com/glimmerlabs/anygrid"
	"github.com/glimmerlabs/anygrid/fbdev"
	"github.com/glimmerlabs/anygrid/term"
)

// Options selects and configures a backend.
type Options struct {
	// Name is one of "term", "fb", "image" or "null".
	Name string

	// FBDevice is the framebuffer device path for the "fb" backend; empty
	// means the default.
	FBDevice string

	// Width and Height shape the "image" and "null" backends.
	Width  int
	Height int

	// Rotate wraps the backend in an orientation adapter when non-zero.
	Rotate int

	Logger anygrid.Logger
}

// Open builds the requested display. The returned ImageDisplay is non-nil
// only for the "image" backend, so callers can snapshot its frames.
func Open(opts Options) (anygrid.Display, *anygrid.ImageDisplay, error) {
	var (
		display anygrid.Display
		img     *anygrid.ImageDisplay
		err     error
	)
	switch opts.Name {
	case "term", "":
		d, terr := term.Open()
		if terr != nil {
			return nil, nil, terr
		}
		d.Logger = opts.Logger
		display = d
	case "fb":
		d, ferr := fbdev.Open(opts.FBDevice)
		if ferr != nil {
			return nil, nil, ferr
		}
		d.Logger = opts.Logger
		display = d
	case "image":
		img, err = anygrid.NewImageDisplay(opts.Width, opts.Height)
		if err != nil {
			return nil, nil, err
		}
		display = img
	case "null":
		display, err = anygrid.NewNullDisplay(opts.Width, opts.Height)
		if err != nil {
			return nil, nil, err
		}
	default:
		return nil, nil, fmt.Errorf("unknown display backend: %q", opts.Name)
	}

	if opts.Rotate != 0 {
		display, err = anygrid.Orient(display, opts.Rotate)
		if err != nil {
			return nil, nil, err
		}
	}
	return display, img, nil
}
