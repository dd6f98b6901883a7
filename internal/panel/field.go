package panel

import (
	"errors"
	"fmt"
)

// Field names an editable attribute.
type Field uint8

const (
	FieldColor Field = iota
	FieldWidth
	FieldFill
	FieldRadius
	FieldTMin
	FieldTMax
	FieldFX
	FieldFY
	FieldSegments
	FieldTicks
)

var fieldNames = [...]string{
	FieldColor:    "color",
	FieldWidth:    "width",
	FieldFill:     "fill",
	FieldRadius:   "radius",
	FieldTMin:     "tmin",
	FieldTMax:     "tmax",
	FieldFX:       "fx",
	FieldFY:       "fy",
	FieldSegments: "segments",
	FieldTicks:    "ticks",
}

// Errors returned by Panel.Set.
var (
	ErrNoSelection  = errors.New("panel: nothing selected")
	ErrUnknownField = errors.New("panel: unknown field")
	ErrNotEditable  = errors.New("panel: field not editable")
	ErrInvalidValue = errors.New("panel: invalid value")
)

// String returns the wire name of the field.
func (f Field) String() string {
	if int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return "unknown"
}

// ParseField returns the field with the given wire name.
func ParseField(name string) (Field, error) {
	for i, n := range fieldNames {
		if n == name {
			return Field(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
}
