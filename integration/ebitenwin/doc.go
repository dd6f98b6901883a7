// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ebitenwin hosts a curvekit editor in a desktop window.
//
// The data flow is:
//
//	ebiten input -> Input -> curvekit.Controller -> ggsurface (gg raster) -> ebiten.Image
//
// The scene is rasterized by gg on the CPU only when it changes; each
// frame ebiten just draws the last uploaded image.
//
// # Keys
//
//	L, C, P, B   new line, circle, parametric curve, Bézier curve
//	T            toggle segment ticks of the selected curve
//	F            toggle fill of the selected circle
//	+, -         more or fewer segments on the selected curve
//	Delete       remove the selected primitive
//	Escape       deselect
package ebitenwin
