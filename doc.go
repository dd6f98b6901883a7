// Package curvekit provides interactive 2D geometry for teaching curves:
// lines, circles, parametric curves and cubic Bézier curves that draw
// themselves, answer hit tests and hand out drag handles.
//
// # Overview
//
// Every primitive implements [Primitive]: it draws onto a [Surface],
// reports whether a pointer position hits its outline, and creates
// overlays for editing it. Overlays are either interactive [Handle]s such
// as [PointDragger], or decorations such as [ControlPolygon].
//
// A [Scene] is an ordered list of primitives. A [Controller] turns pointer
// events into selection and drag operations on a scene:
//
//	scene := curvekit.NewScene(
//	    curvekit.NewCircle(curvekit.Pt(200, 150), 60, curvekit.DefaultStyle()),
//	)
//	ctrl := curvekit.NewController(scene, surface)
//	ctrl.OnObjectChange(func(p curvekit.Primitive) { /* refresh readouts */ })
//
//	ctrl.PointerDown(curvekit.Pt(200, 212)) // selects the circle
//	ctrl.PointerDown(curvekit.Pt(200, 210)) // grabs the radius handle
//	ctrl.PointerMove(curvekit.Pt(200, 220)) // radius += 10
//	ctrl.PointerUp(curvekit.Pt(200, 220))
//
// # Coordinate System
//
// Canvas pixel coordinates: origin at the top-left, X grows right, Y grows
// down, angles in radians.
//
// # Errors
//
// Drawing and hit testing never fail. A curve whose formulas do not
// evaluate simply draws nothing and cannot be hit until it is fixed, and
// degenerate geometry (zero-length segments) is never hit.
//
// # Concurrency
//
// Nothing in this package is safe for concurrent use. Frontends drive one
// Controller from one goroutine.
package curvekit
