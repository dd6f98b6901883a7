package main

import (
	"testing"

	"github.com/gogpu/curvekit"
	"github.com/gogpu/curvekit/recording"
)

func TestBuildScene(t *testing.T) {
	scene, bezier := buildScene(true)
	if scene.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", scene.Len())
	}
	if scene.Index(bezier) != scene.Len()-1 {
		t.Error("Bézier curve is not on top")
	}
}

func TestDragMovesTangentPoint(t *testing.T) {
	scene, bezier := buildScene(false)
	ctrl := curvekit.NewController(scene, recording.NewRecorder(800, 600))
	ctrl.Select(bezier)

	want := curvekit.Pt(bezier.P2.X+40, bezier.P2.Y+120)
	drag(ctrl, bezier.P2, want)

	if bezier.P2.Distance(want) > 1e-9 {
		t.Errorf("P2 = %v, want %v", bezier.P2, want)
	}
	if ctrl.State() != curvekit.StateSelected {
		t.Errorf("State() = %v, want Selected", ctrl.State())
	}
}
