// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggsurface

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultLabelSize is the label font size in points.
const DefaultLabelSize = 13.0

var goRegular = sync.OnceValues(func() (*text.FontSource, error) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("ggsurface: load Go Regular: %w", err)
	}
	return src, nil
})

// SetLabelSize selects the Go Regular face of the given size for Label.
func (s *Surface) SetLabelSize(size float64) error {
	src, err := goRegular()
	if err != nil {
		return err
	}
	s.ctx.SetFont(src.Face(size))
	return nil
}

// Label draws str with its baseline at (x, y) in color. The first call
// selects the Go Regular face at DefaultLabelSize.
func (s *Surface) Label(str string, x, y float64, color string) error {
	if s.ctx.Font() == nil {
		if err := s.SetLabelSize(DefaultLabelSize); err != nil {
			return err
		}
	}
	s.ctx.SetFillBrush(gg.Solid(parseColor(color, gg.Black)))
	s.ctx.DrawString(str, x, y)
	return nil
}

// MeasureLabel returns the width and line height of str in the current
// label face.
func (s *Surface) MeasureLabel(str string) (w, h float64) {
	return s.ctx.MeasureString(str)
}
