// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggsurface

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/curvekit"
	"github.com/gogpu/curvekit/recording"
	"github.com/gogpu/gg"
)

// Common errors returned by Surface operations.
var (
	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("ggsurface: invalid dimensions")

	// ErrSurfaceClosed is returned when operations are attempted on a closed surface.
	ErrSurfaceClosed = errors.New("ggsurface: surface is closed")
)

// Surface draws curvekit primitives into a gg.Context.
type Surface struct {
	ctx    *gg.Context
	stroke gg.RGBA
	fill   gg.RGBA
	closed bool
}

// Compile-time check.
var _ curvekit.Surface = (*Surface)(nil)

// New creates a Surface backed by a new width x height gg.Context.
func New(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	return FromContext(gg.NewContext(width, height)), nil
}

// FromContext wraps an existing context. The surface takes ownership of
// ctx and closes it in Close.
func FromContext(ctx *gg.Context) *Surface {
	return &Surface{
		ctx:    ctx,
		stroke: gg.Black,
		fill:   gg.Black,
	}
}

// Render replays rec onto a new surface of the recording's size.
func Render(rec *recording.Recording) (*Surface, error) {
	s, err := New(rec.Width(), rec.Height())
	if err != nil {
		return nil, err
	}
	rec.Playback(s)
	return s, nil
}

// Context returns the underlying gg context.
func (s *Surface) Context() *gg.Context { return s.ctx }

// Width implements curvekit.Surface.
func (s *Surface) Width() int { return s.ctx.Width() }

// Height implements curvekit.Surface.
func (s *Surface) Height() int { return s.ctx.Height() }

// Clear fills the whole surface with color and drops the current path.
func (s *Surface) Clear(color string) {
	s.ctx.ClearPath()
	s.ctx.ClearWithColor(parseColor(color, gg.White))
}

// BeginPath starts a new, empty path.
func (s *Surface) BeginPath() { s.ctx.ClearPath() }

// ClosePath closes the current subpath.
func (s *Surface) ClosePath() { s.ctx.ClosePath() }

// MoveTo starts a new subpath at (x, y).
func (s *Surface) MoveTo(x, y float64) { s.ctx.MoveTo(x, y) }

// LineTo adds a line to (x, y).
func (s *Surface) LineTo(x, y float64) { s.ctx.LineTo(x, y) }

// Arc adds a circular arc. Like canvas, it first connects the current
// point (if any) to the arc start. A negative radius adds nothing.
//
// gg only sweeps clockwise, so a counter-clockwise arc is added as the
// clockwise sweep from a1 to a0. It covers the same points; only its
// start differs.
func (s *Surface) Arc(x, y, r, a0, a1 float64, ccw bool) {
	if r < 0 {
		return
	}
	switch {
	case math.Abs(a1-a0) >= 2*math.Pi:
		a1 = a0 + 2*math.Pi
	case ccw:
		a0, a1 = a1, a0
	}

	sx, sy := x+r*math.Cos(a0), y+r*math.Sin(a0)
	if _, _, ok := s.ctx.GetCurrentPoint(); ok {
		s.ctx.LineTo(sx, sy)
	} else {
		s.ctx.MoveTo(sx, sy)
	}
	s.ctx.DrawArc(x, y, r, a0, a1)
}

// SetLineWidth sets the stroke width.
func (s *Surface) SetLineWidth(w float64) { s.ctx.SetLineWidth(w) }

// SetStrokeColor sets the stroke color. Invalid colors are ignored.
func (s *Surface) SetStrokeColor(color string) { s.stroke = parseColor(color, s.stroke) }

// SetFillColor sets the fill color. Invalid colors are ignored.
func (s *Surface) SetFillColor(color string) { s.fill = parseColor(color, s.fill) }

// Stroke strokes the current path with the stroke color.
func (s *Surface) Stroke() {
	s.ctx.SetStrokeBrush(gg.Solid(s.stroke))
	if err := s.ctx.StrokePreserve(); err != nil {
		curvekit.Logger().Debug("ggsurface: stroke failed", "error", err)
	}
}

// Fill fills the current path with the fill color.
func (s *Surface) Fill() {
	s.ctx.SetFillBrush(gg.Solid(s.fill))
	if err := s.ctx.FillPreserve(); err != nil {
		curvekit.Logger().Debug("ggsurface: fill failed", "error", err)
	}
}

// Image returns the rendered image.
func (s *Surface) Image() image.Image { return s.ctx.Image() }

// EncodePNG writes the rendered image as PNG to w.
func (s *Surface) EncodePNG(w io.Writer) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	return s.ctx.EncodePNG(w)
}

// SavePNG writes the rendered image to a PNG file.
func (s *Surface) SavePNG(path string) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	return s.ctx.SavePNG(path)
}

// Close releases the gg context. Close is idempotent.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.ctx.Close()
}

func parseColor(color string, fallback gg.RGBA) gg.RGBA {
	if !curvekit.IsHexColor(color) {
		return fallback
	}
	return gg.Hex(color)
}
