// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggsurface

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"math"
	"path/filepath"
	"testing"

	"github.com/gogpu/curvekit"
	"github.com/gogpu/curvekit/recording"
)

func newSurface(t *testing.T, w, h int) *Surface {
	t.Helper()
	s, err := New(w, h)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", w, h, err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func rgb(img image.Image, x, y int) (r, g, b uint32) {
	r, g, b, _ = img.At(x, y).RGBA()
	return r >> 8, g >> 8, b >> 8
}

func near(got, want uint32) bool {
	return got+1 >= want && got <= want+1
}

func TestNew_InvalidDimensions(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative", -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.w, tt.h)
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("New(%d, %d) error = %v, want ErrInvalidDimensions", tt.w, tt.h, err)
			}
		})
	}
}

func TestSurface_Size(t *testing.T) {
	s := newSurface(t, 64, 32)
	if s.Width() != 64 || s.Height() != 32 {
		t.Errorf("size = %dx%d, want 64x32", s.Width(), s.Height())
	}
}

func TestSurface_Clear(t *testing.T) {
	s := newSurface(t, 16, 16)
	s.Clear("#102030")
	if r, g, b := rgb(s.Image(), 8, 8); !near(r, 0x10) || !near(g, 0x20) || !near(b, 0x30) {
		t.Errorf("pixel = %02x%02x%02x, want 102030", r, g, b)
	}
}

func TestSurface_FilledCircle(t *testing.T) {
	s := newSurface(t, 100, 100)
	s.Clear("#FFFFFF")

	c := curvekit.NewCircle(curvekit.Pt(50, 50), 20, curvekit.DrawStyle{Width: 2, Color: "#FF0000", Fill: true})
	c.Draw(s)

	img := s.Image()
	if r, g, b := rgb(img, 50, 50); r < 0xf0 || g > 0x10 || b > 0x10 {
		t.Errorf("center = %02x%02x%02x, want red", r, g, b)
	}
	if r, g, b := rgb(img, 5, 5); r != 0xff || g != 0xff || b != 0xff {
		t.Errorf("corner = %02x%02x%02x, want white", r, g, b)
	}
}

func TestSurface_StrokeAndFillColorsAreSeparate(t *testing.T) {
	s := newSurface(t, 100, 100)
	s.Clear("#FFFFFF")

	s.BeginPath()
	s.Arc(50, 50, 30, 0, 2*math.Pi, true)
	s.ClosePath()
	s.SetFillColor("#00FF00")
	s.SetStrokeColor("#0000FF")
	s.SetLineWidth(6)
	s.Fill()
	s.Stroke()

	img := s.Image()
	if r, g, b := rgb(img, 50, 50); g < 0xf0 || r > 0x10 || b > 0x10 {
		t.Errorf("interior = %02x%02x%02x, want green", r, g, b)
	}
	if r, g, b := rgb(img, 80, 50); b < 0xc0 || r > 0x30 || g > 0x30 {
		t.Errorf("border = %02x%02x%02x, want blue", r, g, b)
	}
}

func TestSurface_NegativeRadiusAddsNothing(t *testing.T) {
	s := newSurface(t, 40, 40)
	s.Clear("#FFFFFF")
	s.BeginPath()
	s.Arc(20, 20, -10, 0, 2*math.Pi, true)
	s.SetFillColor("#000000")
	s.Fill()
	if r, g, b := rgb(s.Image(), 20, 20); r != 0xff || g != 0xff || b != 0xff {
		t.Errorf("pixel = %02x%02x%02x, want untouched white", r, g, b)
	}
}

func TestSurface_InvalidColorIgnored(t *testing.T) {
	s := newSurface(t, 10, 10)
	s.SetFillColor("#00FF00")
	s.SetFillColor("green")
	s.BeginPath()
	s.MoveTo(0, 0)
	s.LineTo(10, 0)
	s.LineTo(10, 10)
	s.LineTo(0, 10)
	s.ClosePath()
	s.Fill()
	if r, g, b := rgb(s.Image(), 5, 5); g < 0xf0 || r > 0x10 || b > 0x10 {
		t.Errorf("pixel = %02x%02x%02x, want the last valid fill color", r, g, b)
	}
}

func TestRender_Recording(t *testing.T) {
	rec := recording.NewRecorder(60, 40)
	ctrl := curvekit.NewController(
		curvekit.NewScene(curvekit.NewLine(curvekit.Pt(0, 20), curvekit.Pt(60, 20), curvekit.DrawStyle{Width: 4, Color: "#000000"})),
		rec,
		curvekit.WithBackground("#FFFFFF"),
	)
	ctrl.Redraw()

	s, err := Render(rec.FinishRecording())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	defer s.Close()

	if s.Width() != 60 || s.Height() != 40 {
		t.Errorf("size = %dx%d, want 60x40", s.Width(), s.Height())
	}
	if r, _, _ := rgb(s.Image(), 30, 20); r > 0x40 {
		t.Errorf("line pixel red = %02x, want dark", r)
	}
	if r, _, _ := rgb(s.Image(), 30, 5); r != 0xff {
		t.Errorf("background pixel red = %02x, want white", r)
	}
}

func TestSurface_EncodePNG(t *testing.T) {
	s := newSurface(t, 30, 20)
	s.Clear("#336699")

	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 30 || b.Dy() != 20 {
		t.Errorf("decoded bounds = %v, want 30x20", b)
	}

	if err := s.SavePNG(filepath.Join(t.TempDir(), "out.png")); err != nil {
		t.Errorf("SavePNG: %v", err)
	}
}

func TestSurface_Closed(t *testing.T) {
	s, err := New(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if err := s.EncodePNG(&bytes.Buffer{}); !errors.Is(err, ErrSurfaceClosed) {
		t.Errorf("EncodePNG after Close = %v, want ErrSurfaceClosed", err)
	}
}

func TestSurface_Label(t *testing.T) {
	s := newSurface(t, 120, 40)
	s.Clear("#FFFFFF")
	if err := s.Label("radius 42", 4, 24, "#000000"); err != nil {
		t.Fatalf("Label: %v", err)
	}

	w, h := s.MeasureLabel("radius 42")
	if w <= 0 || h <= 0 {
		t.Errorf("MeasureLabel = %v x %v, want positive", w, h)
	}

	img := s.Image()
	var dark int
	for y := 0; y < 40; y++ {
		for x := 0; x < 120; x++ {
			if r, _, _ := rgb(img, x, y); r < 0x80 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("Label drew no pixels")
	}
}
