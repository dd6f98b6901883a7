package recording

import "fmt"

// CommandType identifies the type of a command.
// Each command type corresponds to one curvekit.Surface method.
type CommandType uint8

const (
	CmdClear          CommandType = iota // Clear the surface
	CmdBeginPath                         // Start a new path
	CmdClosePath                         // Close the current subpath
	CmdMoveTo                            // Begin a subpath at X, Y
	CmdLineTo                            // Line to X, Y
	CmdArc                               // Arc around X, Y with radius R from A0 to A1
	CmdSetLineWidth                      // Set stroke width W
	CmdSetStrokeColor                    // Set stroke color
	CmdSetFillColor                      // Set fill color
	CmdStroke                            // Stroke the current path
	CmdFill                              // Fill the current path
)

// commandTypeNames maps CommandType values to the names of the matching
// HTML canvas members, which is also their JSON encoding.
var commandTypeNames = [...]string{
	CmdClear:          "clear",
	CmdBeginPath:      "beginPath",
	CmdClosePath:      "closePath",
	CmdMoveTo:         "moveTo",
	CmdLineTo:         "lineTo",
	CmdArc:            "arc",
	CmdSetLineWidth:   "lineWidth",
	CmdSetStrokeColor: "strokeStyle",
	CmdSetFillColor:   "fillStyle",
	CmdStroke:         "stroke",
	CmdFill:           "fill",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "unknown"
}

// MarshalText encodes the type by name.
func (c CommandType) MarshalText() ([]byte, error) {
	if int(c) >= len(commandTypeNames) {
		return nil, fmt.Errorf("recording: unknown command type %d", c)
	}
	return []byte(commandTypeNames[c]), nil
}

// UnmarshalText decodes a type name.
func (c *CommandType) UnmarshalText(b []byte) error {
	for i, name := range commandTypeNames {
		if name == string(b) {
			*c = CommandType(i)
			return nil
		}
	}
	return fmt.Errorf("recording: unknown command %q", b)
}

// Command is one recorded Surface call. Only the fields used by Type are
// set.
type Command struct {
	Type  CommandType `json:"op"`
	X     float64     `json:"x,omitempty"`
	Y     float64     `json:"y,omitempty"`
	R     float64     `json:"r,omitempty"`
	A0    float64     `json:"a0,omitempty"`
	A1    float64     `json:"a1,omitempty"`
	CCW   bool        `json:"ccw,omitempty"`
	W     float64     `json:"w,omitempty"`
	Color string      `json:"color,omitempty"`
}
