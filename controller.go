package curvekit

// State is the interaction state of a Controller.
type State uint8

const (
	// StateIdle means nothing is selected.
	StateIdle State = iota
	// StateSelected means one primitive is selected and its overlays shown.
	StateSelected
	// StateDragging means a handle of the selected primitive is being dragged.
	StateDragging
)

var stateNames = [...]string{
	StateIdle:     "Idle",
	StateSelected: "Selected",
	StateDragging: "Dragging",
}

// String returns the state name.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "Unknown"
}

// Controller dispatches pointer events to hit testing and dragging and
// keeps track of the selection.
//
// Every state-changing call redraws the scene onto the surface before it
// returns. A Controller is not safe for concurrent use; feed it events
// from a single goroutine.
type Controller struct {
	scene      *Scene
	surface    Surface
	background string

	state    State
	selected Primitive
	overlays []Overlay
	active   Handle

	onSelection []func(Primitive)
	onChange    []func(Primitive)
}

// NewController creates a controller for scene that draws onto s.
// s may be nil, in which case redraws are skipped until SetSurface is called.
func NewController(scene *Scene, s Surface, opts ...ControllerOption) *Controller {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if scene == nil {
		scene = NewScene()
	}
	return &Controller{
		scene:      scene,
		surface:    s,
		background: o.background,
	}
}

// Scene returns the controlled scene.
func (c *Controller) Scene() *Scene { return c.scene }

// Surface returns the surface redraws go to.
func (c *Controller) Surface() Surface { return c.surface }

// SetSurface replaces the drawing surface and redraws.
func (c *Controller) SetSurface(s Surface) {
	c.surface = s
	c.Redraw()
}

// State returns the current interaction state.
func (c *Controller) State() State { return c.state }

// Selected returns the selected primitive, or nil.
func (c *Controller) Selected() Primitive { return c.selected }

// IsDragging reports whether a handle is being dragged.
func (c *Controller) IsDragging() bool { return c.state == StateDragging }

// Overlays returns the handles and decorations of the current selection.
func (c *Controller) Overlays() []Overlay { return c.overlays }

// OnSelection registers fn to be called whenever the selection changes.
// fn receives the newly selected primitive, or nil after a deselect.
func (c *Controller) OnSelection(fn func(Primitive)) {
	c.onSelection = append(c.onSelection, fn)
}

// OnObjectChange registers fn to be called once per pointer move while a
// handle of the selected primitive is dragged.
func (c *Controller) OnObjectChange(fn func(Primitive)) {
	c.onChange = append(c.onChange, fn)
}

// Select makes p the selection, creates its overlays afresh and redraws.
// Selecting the already selected primitive refreshes its overlays, which
// attribute editors rely on after changing a primitive. Select(nil) is
// Deselect.
func (c *Controller) Select(p Primitive) {
	if p == nil {
		c.Deselect()
		return
	}
	c.selected = p
	c.overlays = p.CreateDraggers()
	c.active = nil
	c.state = StateSelected
	Logger().Debug("curvekit: selected", "kind", Kind(p), "index", c.scene.Index(p))
	c.notifySelection(p)
	c.Redraw()
}

// Deselect clears the selection from any state.
func (c *Controller) Deselect() {
	if c.state == StateIdle && c.selected == nil {
		return
	}
	c.selected = nil
	c.overlays = nil
	c.active = nil
	c.state = StateIdle
	Logger().Debug("curvekit: deselected")
	c.notifySelection(nil)
	c.Redraw()
}

// DeleteSelected removes the selected primitive from the scene.
func (c *Controller) DeleteSelected() bool {
	if c.selected == nil {
		return false
	}
	removed := c.scene.Remove(c.selected)
	c.Deselect()
	return removed
}

// PointerDown handles a button press at p.
//
// With a selection, the selection's handles are tested first, topmost
// first, and a hit starts a drag. Otherwise all primitives are tested
// from the top of the scene down; the first hit becomes the selection and
// a miss clears it.
func (c *Controller) PointerDown(p Point) {
	if c.state == StateDragging {
		c.endDrag()
	}

	if c.state == StateSelected {
		for i := len(c.overlays) - 1; i >= 0; i-- {
			h, ok := c.overlays[i].(Handle)
			if !ok || !h.IsHit(p) {
				continue
			}
			c.active = h
			c.state = StateDragging
			h.DragStart(p)
			Logger().Debug("curvekit: drag started", "kind", Kind(c.selected), "handle", i)
			return
		}
	}

	if hit := c.hitTest(p); hit != nil {
		c.Select(hit)
		return
	}
	c.Deselect()
}

// PointerMove handles pointer movement to p. Only a drag reacts to it:
// the active handle updates its primitive, object-change observers run
// and the scene is redrawn.
func (c *Controller) PointerMove(p Point) {
	if c.state != StateDragging {
		return
	}
	c.active.DragMove(p)
	for _, fn := range c.onChange {
		fn(c.selected)
	}
	c.Redraw()
}

// PointerUp handles a button release. A drag ends and the primitive stays
// selected.
func (c *Controller) PointerUp(Point) {
	if c.state == StateDragging {
		c.endDrag()
	}
}

func (c *Controller) endDrag() {
	c.active = nil
	c.state = StateSelected
	Logger().Debug("curvekit: drag ended", "kind", Kind(c.selected))
}

// hitTest returns the topmost primitive hit at p, or nil.
func (c *Controller) hitTest(p Point) Primitive {
	objects := c.scene.Objects()
	for i := len(objects) - 1; i >= 0; i-- {
		if objects[i].IsHit(p) {
			return objects[i]
		}
	}
	return nil
}

// Redraw clears the surface and draws the scene and the selection's
// overlays.
func (c *Controller) Redraw() {
	if c.surface == nil {
		return
	}
	c.surface.Clear(c.background)
	c.scene.Draw(c.surface)
	for _, o := range c.overlays {
		o.Draw(c.surface)
	}
}

func (c *Controller) notifySelection(p Primitive) {
	for _, fn := range c.onSelection {
		fn(p)
	}
}
