// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitenwin

import (
	"errors"
	"image"
	"image/draw"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/curvekit"
	"github.com/gogpu/curvekit/integration/ggsurface"
	"github.com/gogpu/curvekit/internal/panel"
	"github.com/gogpu/curvekit/internal/spawn"
)

// ErrQuit is returned from Update when the window should close.
var ErrQuit = errors.New("ebitenwin: quit")

// Options configure a Window.
type Options struct {
	Width, Height int
	Background    string
	Seed          uint64
	// HUD draws the panel summary in the bottom left corner.
	HUD bool
}

// trackingSurface notes every clear, i.e. every controller redraw.
type trackingSurface struct {
	*ggsurface.Surface
	redrawn bool
}

func (s *trackingSurface) Clear(color string) {
	s.redrawn = true
	s.Surface.Clear(color)
}

// Window is an ebiten.Game running a curvekit editor.
//
// Window is NOT safe for concurrent use; ebiten calls it from one goroutine.
type Window struct {
	opts    Options
	surface *trackingSurface
	ctrl    *curvekit.Controller
	panel   *panel.Panel
	gen     *spawn.Generator

	rgba   *image.RGBA
	screen *ebiten.Image
	dirty  bool
}

// Compile-time check.
var _ ebiten.Game = (*Window)(nil)

// New creates a window with an empty scene.
func New(opts Options) (*Window, error) {
	s, err := ggsurface.New(opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}
	surface := &trackingSurface{Surface: s}

	var copts []curvekit.ControllerOption
	if opts.Background != "" {
		copts = append(copts, curvekit.WithBackground(opts.Background))
	}
	ctrl := curvekit.NewController(curvekit.NewScene(), surface, copts...)

	w := &Window{
		opts:    opts,
		surface: surface,
		ctrl:    ctrl,
		panel:   panel.New(ctrl),
		gen:     spawn.New(opts.Width, opts.Height, opts.Seed),
		rgba:    image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height)),
	}
	ctrl.Redraw()
	w.afterEvents()
	return w, nil
}

// Controller returns the editor's controller.
func (w *Window) Controller() *curvekit.Controller { return w.ctrl }

// Update polls input and applies it.
func (w *Window) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ErrQuit
	}
	w.Apply(pollInput())
	return nil
}

// Apply feeds one tick of input to the controller.
func (w *Window) Apply(in Input) {
	p := curvekit.Pt(float64(in.X), float64(in.Y))
	switch {
	case in.Pressed:
		w.ctrl.PointerDown(p)
	case in.Released:
		w.ctrl.PointerUp(p)
	default:
		w.ctrl.PointerMove(p)
	}
	for _, a := range in.Actions {
		w.do(a)
	}
	w.afterEvents()
}

var spawnKinds = map[Action]string{
	ActionNewLine:       "line",
	ActionNewCircle:     "circle",
	ActionNewParametric: "parametric",
	ActionNewBezier:     "bezier",
}

func (w *Window) do(a Action) {
	if kind, ok := spawnKinds[a]; ok {
		obj, err := w.gen.Spawn(kind)
		if err == nil {
			spawn.Place(w.ctrl, obj)
		}
		return
	}

	st := w.panel.State()
	switch a {
	case ActionToggleTicks:
		w.toggle(panel.FieldTicks, st)
	case ActionToggleFill:
		w.toggle(panel.FieldFill, st)
	case ActionMoreSegments, ActionFewerSegments:
		n, err := strconv.Atoi(st.Values[panel.FieldSegments.String()])
		if err != nil {
			return
		}
		if a == ActionMoreSegments {
			n++
		} else {
			n--
		}
		w.set(panel.FieldSegments, strconv.Itoa(n))
	case ActionDelete:
		w.ctrl.DeleteSelected()
	case ActionDeselect:
		w.ctrl.Deselect()
	}
}

func (w *Window) toggle(f panel.Field, st panel.State) {
	v, ok := st.Values[f.String()]
	if !ok {
		return
	}
	w.set(f, strconv.FormatBool(v != "true"))
}

func (w *Window) set(f panel.Field, value string) {
	if err := w.panel.Set(f, value); err != nil {
		curvekit.Logger().Debug("ebitenwin: edit rejected", "field", f.String(), "value", value, "error", err)
	}
}

// afterEvents draws the HUD over a fresh redraw and marks the frame for
// upload.
func (w *Window) afterEvents() {
	if !w.surface.redrawn {
		return
	}
	w.surface.redrawn = false
	w.dirty = true
	if w.opts.HUD {
		if err := w.surface.Label(w.panel.Summary(), 8, float64(w.opts.Height)-10, "#333333"); err != nil {
			curvekit.Logger().Debug("ebitenwin: hud", "error", err)
		}
	}
}

// Draw uploads the raster if it changed and draws it.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.screen == nil {
		w.screen = ebiten.NewImage(w.opts.Width, w.opts.Height)
		w.dirty = true
	}
	if w.dirty {
		w.dirty = false
		draw.Draw(w.rgba, w.rgba.Bounds(), w.surface.Image(), image.Point{}, draw.Src)
		w.screen.WritePixels(w.rgba.Pix)
	}
	screen.DrawImage(w.screen, nil)
}

// Layout keeps the logical screen at the canvas size.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.opts.Width, w.opts.Height
}

// Close releases the raster surface.
func (w *Window) Close() error {
	return w.surface.Close()
}

// Run opens the window and blocks until it is closed.
func Run(w *Window, title string) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w.opts.Width, w.opts.Height)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(60)
	err := ebiten.RunGame(w)
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}
