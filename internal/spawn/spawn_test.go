package spawn

import (
	"errors"
	"testing"

	"github.com/gogpu/curvekit"
	"github.com/gogpu/curvekit/recording"
)

func inside(p curvekit.Point, w, h int) bool {
	return p.X >= margin && p.X < float64(w-margin) && p.Y >= margin && p.Y < float64(h-margin)
}

func TestGenerator_Bounds(t *testing.T) {
	g := New(200, 100, 1)
	for i := 0; i < 500; i++ {
		if p := g.Point(); !inside(p, 200, 100) {
			t.Fatalf("Point() = %v outside the canvas margin", p)
		}
		if r := g.Radius(); r < margin || r > float64(100)/4+margin {
			t.Fatalf("Radius() = %v out of range", r)
		}
		s := g.Style()
		if s.Width < 1 || s.Width > 3 {
			t.Fatalf("Style().Width = %v", s.Width)
		}
		if !curvekit.IsHexColor(s.Color) {
			t.Fatalf("Style().Color = %q", s.Color)
		}
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	a, b := New(300, 300, 42), New(300, 300, 42)
	for i := 0; i < 10; i++ {
		if pa, pb := a.Point(), b.Point(); pa != pb {
			t.Fatalf("seeded generators diverged: %v vs %v", pa, pb)
		}
	}
}

func TestGenerator_Spawn(t *testing.T) {
	g := New(400, 300, 7)
	for _, kind := range Kinds {
		t.Run(kind, func(t *testing.T) {
			p, err := g.Spawn(kind)
			if err != nil {
				t.Fatalf("Spawn(%q): %v", kind, err)
			}
			if got := curvekit.Kind(p); got != kind {
				t.Errorf("Kind = %q, want %q", got, kind)
			}
		})
	}
	if _, err := g.Spawn("cube"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Spawn(cube) error = %v, want ErrUnknownKind", err)
	}
}

func TestGenerator_ParametricDrawable(t *testing.T) {
	g := New(400, 300, 3)
	c := g.Parametric("", "")
	c.Draw(recording.NewRecorder(400, 300))
	if n := len(c.Samples()); n != g.Segments+1 {
		t.Errorf("random parametric curve has %d samples, want %d", n, g.Segments+1)
	}

	custom := g.Parametric("t", "t*t")
	if custom.FX != "t" || custom.FY != "t*t" {
		t.Errorf("formulas = %q, %q", custom.FX, custom.FY)
	}
}

func TestGenerator_TinyCanvas(t *testing.T) {
	g := New(4, 4, 9)
	_ = g.Point()
	_ = g.Radius()
}

func TestPlace(t *testing.T) {
	ctrl := curvekit.NewController(nil, recording.NewRecorder(100, 100))
	g := New(100, 100, 5)
	first, second := g.Line(), g.Circle()

	Place(ctrl, first)
	Place(ctrl, second)

	if ctrl.Selected() != second {
		t.Errorf("Selected() = %v, want the placed circle", ctrl.Selected())
	}
	if ctrl.Scene().Index(second) != 1 {
		t.Errorf("new primitive not on top")
	}
}
