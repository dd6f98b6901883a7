package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/curvekit"
	"github.com/gogpu/curvekit/internal/panel"
	"github.com/gogpu/curvekit/internal/spawn"
	"github.com/gogpu/curvekit/recording"
)

// ErrUnknownType is reported for messages with an unsupported type.
var ErrUnknownType = errors.New("session: unknown message type")

// Options configure new sessions.
type Options struct {
	Width, Height int
	Background    string
}

// Session is the editor state behind one browser connection: a scene, its
// controller, the attribute panel and the recorder the controller draws
// into. Every redraw becomes one frame for the client.
type Session struct {
	ID string

	mu         sync.Mutex
	rec        *recording.Recorder
	ctrl       *curvekit.Controller
	panel      *panel.Panel
	gen        *spawn.Generator
	last       *recording.Recording
	panelDirty bool
}

// New creates a session with an empty scene.
func New(id string, opts Options, seed uint64) *Session {
	rec := recording.NewRecorder(opts.Width, opts.Height)
	var copts []curvekit.ControllerOption
	if opts.Background != "" {
		copts = append(copts, curvekit.WithBackground(opts.Background))
	}
	ctrl := curvekit.NewController(curvekit.NewScene(), rec, copts...)

	s := &Session{
		ID:   id,
		rec:  rec,
		ctrl: ctrl,
		gen:  spawn.New(opts.Width, opts.Height, seed),
	}
	s.panel = panel.New(ctrl, panel.WithCanvasHeight(opts.Height))
	s.panel.OnUpdate(func(panel.State) { s.panelDirty = true })
	ctrl.Redraw()
	s.last = rec.FinishRecording()
	return s
}

// Welcome returns the replies that bring a new client up to date.
func (s *Session) Welcome() []Reply {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.panel.State()
	return []Reply{
		{Type: TypeWelcome, Session: s.ID, Width: s.rec.Width(), Height: s.rec.Height()},
		{Type: TypeFrame, Commands: s.last.Commands()},
		{Type: TypePanel, Panel: &st},
	}
}

// Handle applies msg and returns the resulting replies: an error if the
// message was rejected, a frame if the scene was redrawn and a panel
// update if the readouts changed.
func (s *Session) Handle(msg Message) []Reply {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Reply
	if err := s.apply(msg); err != nil {
		out = append(out, Reply{Type: TypeError, Error: err.Error()})
	}

	if len(s.rec.Commands()) > 0 {
		s.last = s.rec.FinishRecording()
		out = append(out, Reply{Type: TypeFrame, Commands: s.last.Commands()})
	}
	if s.panelDirty || msg.Type == TypeEdit {
		s.panelDirty = false
		st := s.panel.State()
		out = append(out, Reply{Type: TypePanel, Panel: &st})
	}
	return out
}

func (s *Session) apply(msg Message) error {
	p := curvekit.Pt(msg.X, msg.Y)
	switch msg.Type {
	case TypePointerDown:
		s.ctrl.PointerDown(p)
	case TypePointerMove:
		s.ctrl.PointerMove(p)
	case TypePointerUp:
		s.ctrl.PointerUp(p)
	case TypeSpawn:
		obj, err := s.gen.Spawn(msg.Kind)
		if err != nil {
			return err
		}
		spawn.Place(s.ctrl, obj)
	case TypeEdit:
		return s.panel.SetByName(msg.Field, msg.Value)
	case TypeDeselect:
		s.ctrl.Deselect()
	case TypeDelete:
		s.ctrl.DeleteSelected()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownType, msg.Type)
	}
	return nil
}

// Snapshot returns the last frame drawn.
func (s *Session) Snapshot() *recording.Recording {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Len returns the number of primitives in the scene.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.Scene().Len()
}
