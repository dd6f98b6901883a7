package recording

import (
	"math"

	"github.com/gogpu/curvekit"
)

var _ curvekit.Surface = (*Recorder)(nil)

// Recorder is a curvekit.Surface that records calls as commands.
type Recorder struct {
	width, height int
	commands      []Command
}

// NewRecorder creates a recorder reporting the given surface size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 256),
	}
}

// Width implements curvekit.Surface.
func (r *Recorder) Width() int { return r.width }

// Height implements curvekit.Surface.
func (r *Recorder) Height() int { return r.height }

// Resize changes the reported surface size.
func (r *Recorder) Resize(width, height int) {
	r.width, r.height = width, height
}

// Commands returns the commands recorded so far. The slice is owned by the
// recorder and is only valid until the next call that records or resets.
func (r *Recorder) Commands() []Command { return r.commands }

// Reset discards all recorded commands.
func (r *Recorder) Reset() { r.commands = r.commands[:0] }

// FinishRecording returns the recorded commands as an immutable Recording
// and resets the recorder, so it can record the next frame.
func (r *Recorder) FinishRecording() *Recording {
	cmds := make([]Command, len(r.commands))
	copy(cmds, r.commands)
	r.Reset()
	return &Recording{width: r.width, height: r.height, commands: cmds}
}

func (r *Recorder) record(c Command) {
	r.commands = append(r.commands, c)
}

// Clear implements curvekit.Surface. Everything drawn before is dropped
// from the recording, since it can no longer be seen.
func (r *Recorder) Clear(color string) {
	r.commands = r.commands[:0]
	r.record(Command{Type: CmdClear, Color: color})
}

func (r *Recorder) BeginPath()          { r.record(Command{Type: CmdBeginPath}) }
func (r *Recorder) ClosePath()          { r.record(Command{Type: CmdClosePath}) }

// MoveTo implements curvekit.Surface. MoveTo, LineTo, Arc and SetLineWidth
// drop calls with NaN or infinite arguments, which have no JSON encoding.
func (r *Recorder) MoveTo(x, y float64) {
	if finite(x, y) {
		r.record(Command{Type: CmdMoveTo, X: x, Y: y})
	}
}

func (r *Recorder) LineTo(x, y float64) {
	if finite(x, y) {
		r.record(Command{Type: CmdLineTo, X: x, Y: y})
	}
}

func (r *Recorder) Arc(x, y, radius, a0, a1 float64, ccw bool) {
	if finite(x, y, radius, a0, a1) {
		r.record(Command{Type: CmdArc, X: x, Y: y, R: radius, A0: a0, A1: a1, CCW: ccw})
	}
}

func (r *Recorder) SetLineWidth(w float64) {
	if finite(w) {
		r.record(Command{Type: CmdSetLineWidth, W: w})
	}
}

func (r *Recorder) SetStrokeColor(color string) { r.record(Command{Type: CmdSetStrokeColor, Color: color}) }
func (r *Recorder) SetFillColor(color string)   { r.record(Command{Type: CmdSetFillColor, Color: color}) }
func (r *Recorder) Stroke()                     { r.record(Command{Type: CmdStroke}) }
func (r *Recorder) Fill()                       { r.record(Command{Type: CmdFill}) }

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
