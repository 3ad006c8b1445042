package backends

import (
	"testing"

	"github.com/glimmerlabs/anygrid"
)

func TestOpenNull(t *testing.T) {
	d, img, err := Open(Options{Name: "null", Width: 8, Height: 8})
	if err != nil {
		t.Fatal(err)
	}
	if img != nil {
		t.Error("null backend returned a snapshot image")
	}
	w, h := d.Shape()
	if w != 8 || h != 8 {
		t.Errorf("Shape = %dx%d, want 8x8", w, h)
	}
}

func TestOpenImage(t *testing.T) {
	d, img, err := Open(Options{Name: "image", Width: 4, Height: 6})
	if err != nil {
		t.Fatal(err)
	}
	if img == nil {
		t.Fatal("image backend returned no snapshot image")
	}
	if d != anygrid.Display(img) {
		t.Error("display and snapshot differ")
	}
}

func TestOpenUnknown(t *testing.T) {
	if _, _, err := Open(Options{Name: "holodeck"}); err == nil {
		t.Error("unknown backend accepted")
	}
}

func TestOpenRotated(t *testing.T) {
	d, _, err := Open(Options{Name: "null", Width: 8, Height: 8, Rotate: 180})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := d.(*anygrid.OrientedDisplay); !ok {
		t.Errorf("rotated open returned %T, want an orientation adapter", d)
	}

	if _, _, err := Open(Options{Name: "null", Width: 8, Height: 8, Rotate: 42}); err == nil {
		t.Error("bad rotation accepted")
	}
}
