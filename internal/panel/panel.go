package panel

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/curvekit"
	"github.com/gogpu/curvekit/expr"
)

// State is a snapshot of the panel: the selected primitive's kind, its
// formatted attribute values and the fields the user may change.
type State struct {
	Kind     string            `json:"kind"`
	Values   map[string]string `json:"values,omitempty"`
	Editable []string          `json:"editable,omitempty"`
}

// Panel edits the primitive selected in a Controller.
type Panel struct {
	ctrl    *curvekit.Controller
	printer *message.Printer
	height  float64
	state   State
	subs    []func(State)
}

// Option configures a Panel.
type Option func(*Panel)

// WithLanguage formats readouts for tag. The default is English.
func WithLanguage(tag language.Tag) Option {
	return func(p *Panel) {
		p.printer = message.NewPrinter(tag)
	}
}

// WithCanvasHeight sets the height that bounds the circle radius to
// [0, height/2]. By default the controller's surface height is used.
func WithCanvasHeight(h int) Option {
	return func(p *Panel) {
		p.height = float64(h)
	}
}

// New creates a panel following ctrl's selection.
func New(ctrl *curvekit.Controller, opts ...Option) *Panel {
	p := &Panel{
		ctrl:    ctrl,
		printer: message.NewPrinter(language.English),
	}
	for _, opt := range opts {
		opt(p)
	}
	ctrl.OnSelection(p.refresh)
	ctrl.OnObjectChange(func(obj curvekit.Primitive) {
		if ctrl.IsDragging() {
			p.refresh(obj)
		}
	})
	p.refresh(ctrl.Selected())
	return p
}

// State returns the current snapshot.
func (p *Panel) State() State { return p.state }

// OnUpdate registers fn to be called with every new snapshot.
func (p *Panel) OnUpdate(fn func(State)) {
	p.subs = append(p.subs, fn)
}

// SetByName is Set with the field given by its wire name.
func (p *Panel) SetByName(name, value string) error {
	f, err := ParseField(name)
	if err != nil {
		return err
	}
	return p.Set(f, value)
}

// Set writes value into field of the selected primitive and reselects it
// so its handles and the readouts are rebuilt. An empty value keeps the
// previous one. Rejected values leave the primitive unchanged.
func (p *Panel) Set(field Field, value string) error {
	obj := p.ctrl.Selected()
	if obj == nil {
		return ErrNoSelection
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	if !editable(obj, field) {
		return fmt.Errorf("%w: %s of %s", ErrNotEditable, field, curvekit.Kind(obj))
	}
	if err := p.apply(obj, field, value); err != nil {
		return err
	}
	p.ctrl.Select(obj)
	return nil
}

func (p *Panel) apply(obj curvekit.Primitive, field Field, value string) error {
	style := obj.DrawStyle()
	switch field {
	case FieldColor:
		if !curvekit.IsHexColor(value) {
			return invalid(field, value)
		}
		style.Color = value
	case FieldWidth:
		w, err := parseNumber(value)
		if err != nil || w <= 0 {
			return invalid(field, value)
		}
		style.Width = w
	case FieldFill:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return invalid(field, value)
		}
		style.Fill = b
	case FieldRadius:
		r, err := parseNumber(value)
		if err != nil {
			return invalid(field, value)
		}
		obj.(*curvekit.Circle).Radius = p.clampRadius(r)
	case FieldTMin:
		v, err := parseNumber(value)
		if err != nil || v < 0 {
			return invalid(field, value)
		}
		obj.(*curvekit.ParametricCurve).TMin = v
	case FieldTMax:
		v, err := parseNumber(value)
		if err != nil {
			return invalid(field, value)
		}
		obj.(*curvekit.ParametricCurve).TMax = v
	case FieldFX, FieldFY:
		if _, err := expr.Compile(value); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidValue, field, err)
		}
		c := obj.(*curvekit.ParametricCurve)
		if field == FieldFX {
			c.FX = value
		} else {
			c.FY = value
		}
	case FieldSegments:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 || n > curvekit.MaxSegments {
			return invalid(field, value)
		}
		setCurve(obj, func(seg *int, _ *bool) { *seg = n })
	case FieldTicks:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return invalid(field, value)
		}
		setCurve(obj, func(_ *int, ticks *bool) { *ticks = b })
	}
	return nil
}

func (p *Panel) clampRadius(r float64) float64 {
	limit := p.height
	if limit == 0 && p.ctrl.Surface() != nil {
		limit = float64(p.ctrl.Surface().Height())
	}
	r = math.Max(r, 0)
	if limit > 0 {
		r = math.Min(r, limit/2)
	}
	return r
}

func (p *Panel) refresh(obj curvekit.Primitive) {
	p.state = p.snapshot(obj)
	for _, fn := range p.subs {
		fn(p.state)
	}
}

func (p *Panel) snapshot(obj curvekit.Primitive) State {
	st := State{Kind: curvekit.Kind(obj)}
	if obj == nil {
		return st
	}

	v := make(map[string]string)
	style := obj.DrawStyle()
	v[FieldColor.String()] = style.Color
	v[FieldWidth.String()] = p.number(style.Width)

	switch o := obj.(type) {
	case *curvekit.Circle:
		v[FieldFill.String()] = strconv.FormatBool(style.Fill)
		v[FieldRadius.String()] = p.number(o.Radius)
	case *curvekit.ParametricCurve:
		v[FieldTMin.String()] = p.number(o.TMin)
		v[FieldTMax.String()] = p.number(o.TMax)
		v[FieldFX.String()] = o.FX
		v[FieldFY.String()] = o.FY
		v[FieldSegments.String()] = p.printer.Sprintf("%d", o.Segments)
		v[FieldTicks.String()] = strconv.FormatBool(o.Ticks)
	case *curvekit.BezierCurve:
		tmin, tmax := o.Domain()
		fx, fy := o.Formulas()
		v[FieldTMin.String()] = p.number(tmin)
		v[FieldTMax.String()] = p.number(tmax)
		v[FieldFX.String()] = fx
		v[FieldFY.String()] = fy
		v[FieldSegments.String()] = p.printer.Sprintf("%d", o.Segments)
		v[FieldTicks.String()] = strconv.FormatBool(o.Ticks)
	}
	st.Values = v

	for f := FieldColor; f <= FieldTicks; f++ {
		if editable(obj, f) {
			st.Editable = append(st.Editable, f.String())
		}
	}
	return st
}

// Summary returns a one-line description of the selection for HUDs.
func (p *Panel) Summary() string {
	st := p.state
	switch st.Kind {
	case "none":
		return p.printer.Sprintf("%d objects, nothing selected", p.ctrl.Scene().Len())
	case "circle":
		return p.printer.Sprintf("circle  r=%s  width=%s  %s", st.Values["radius"], st.Values["width"], st.Values["color"])
	case "parametric", "bezier":
		return p.printer.Sprintf("%s  t=[%s, %s]  segments=%s  ticks=%s", st.Kind,
			st.Values["tmin"], st.Values["tmax"], st.Values["segments"], st.Values["ticks"])
	default:
		return p.printer.Sprintf("%s  width=%s  %s", st.Kind, st.Values["width"], st.Values["color"])
	}
}

func (p *Panel) number(v float64) string {
	return p.printer.Sprintf("%.4g", v)
}

func editable(obj curvekit.Primitive, f Field) bool {
	switch f {
	case FieldColor, FieldWidth:
		return true
	}
	switch obj.(type) {
	case *curvekit.Circle:
		return f == FieldFill || f == FieldRadius
	case *curvekit.ParametricCurve:
		return f >= FieldTMin && f <= FieldTicks
	case *curvekit.BezierCurve:
		return f == FieldSegments || f == FieldTicks
	}
	return false
}

func setCurve(obj curvekit.Primitive, fn func(segments *int, ticks *bool)) {
	switch c := obj.(type) {
	case *curvekit.ParametricCurve:
		fn(&c.Segments, &c.Ticks)
	case *curvekit.BezierCurve:
		fn(&c.Segments, &c.Ticks)
	}
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrRange
	}
	return v, nil
}

func invalid(f Field, value string) error {
	return fmt.Errorf("%w: %s %q", ErrInvalidValue, f, value)
}
