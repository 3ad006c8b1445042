package anygrid

import (
	"image/color"
	"testing"
)

func TestImageDisplayWrites(t *testing.T) {
	d, err := NewImageDisplay(4, 4)
	if err != nil {
		t.Fatal(err)
	}

	d.Set(1, 2, 1, 0, 0.5)
	got := d.Image().RGBAAt(1, 2)
	want := color.RGBA{R: 255, G: 0, B: 127, A: 255}
	if got != want {
		t.Errorf("pixel (1,2) = %+v, want %+v", got, want)
	}

	// Out-of-bounds writes are dropped, channels are clamped.
	d.Set(-1, 0, 1, 1, 1)
	d.Set(4, 0, 1, 1, 1)
	d.Set(0, 0, 2, -1, 0)
	if got := d.Image().RGBAAt(0, 0); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("pixel (0,0) = %+v, want clamped red", got)
	}

	d.Clear()
	if got := d.Image().RGBAAt(1, 2); got != (color.RGBA{A: 255}) {
		t.Errorf("pixel (1,2) after clear = %+v, want black", got)
	}
}

func TestImageDisplayValidation(t *testing.T) {
	if _, err := NewImageDisplay(0, 4); err == nil {
		t.Error("zero width accepted")
	}
	if _, err := NewImageDisplay(4, 0); err == nil {
		t.Error("zero height accepted")
	}
}

func TestImageDisplayWithCanvas(t *testing.T) {
	d, err := NewImageDisplay(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	c, err := New(d, Config{})
	if err != nil {
		t.Fatal(err)
	}

	c.Set(3, 3, 0, 1, 0, 1)
	if got := d.Image().RGBAAt(3, 3); got != (color.RGBA{G: 255, A: 255}) {
		t.Errorf("pixel (3,3) = %+v, want green", got)
	}
}
