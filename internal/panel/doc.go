// Package panel is the attribute editor that sits next to the canvas.
//
// A Panel follows the selection of a curvekit.Controller, exposes the
// editable attributes of the selected primitive as formatted readouts, and
// validates writes coming back from the user interface. Frontends render
// the readouts however they like (HUD text, HTML inputs).
package panel
