package recording

import "github.com/gogpu/curvekit"

// Recording is an immutable sequence of drawing commands.
type Recording struct {
	width, height int
	commands      []Command
}

// Width returns the width of the surface the recording was made on.
func (r *Recording) Width() int { return r.width }

// Height returns the height of the surface the recording was made on.
func (r *Recording) Height() int { return r.height }

// Commands returns the recorded commands. The slice must not be modified.
func (r *Recording) Commands() []Command { return r.commands }

// Count returns how many commands of type t the recording holds.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type == t {
			n++
		}
	}
	return n
}

// Playback replays the recording onto s.
func (r *Recording) Playback(s curvekit.Surface) {
	for _, c := range r.commands {
		switch c.Type {
		case CmdClear:
			s.Clear(c.Color)
		case CmdBeginPath:
			s.BeginPath()
		case CmdClosePath:
			s.ClosePath()
		case CmdMoveTo:
			s.MoveTo(c.X, c.Y)
		case CmdLineTo:
			s.LineTo(c.X, c.Y)
		case CmdArc:
			s.Arc(c.X, c.Y, c.R, c.A0, c.A1, c.CCW)
		case CmdSetLineWidth:
			s.SetLineWidth(c.W)
		case CmdSetStrokeColor:
			s.SetStrokeColor(c.Color)
		case CmdSetFillColor:
			s.SetFillColor(c.Color)
		case CmdStroke:
			s.Stroke()
		case CmdFill:
			s.Fill()
		}
	}
}
