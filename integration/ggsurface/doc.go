// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggsurface implements curvekit.Surface on top of a gg.Context,
// the CPU rasterizer of github.com/gogpu/gg.
//
// The data flow is:
//
//	curvekit.Controller (draw calls) -> Surface -> gg.Context -> Pixmap -> PNG / window
//
// # Usage
//
//	s, err := ggsurface.New(800, 600)
//	if err != nil {
//		return err
//	}
//	defer s.Close()
//
//	ctrl := curvekit.NewController(scene, s)
//	ctrl.Redraw()
//	err = s.SavePNG("scene.png")
//
// # Canvas Semantics
//
// Surface follows the browser canvas model: stroke and fill colors are
// separate state, and Stroke and Fill leave the current path in place until
// the next BeginPath. gg shares one brush between fill and stroke and
// consumes the path, so Surface keeps both colors itself and uses the
// Preserve variants.
//
// # Thread Safety
//
// Surface is NOT safe for concurrent use.
package ggsurface
