package session

import (
	"github.com/gogpu/curvekit/internal/panel"
	"github.com/gogpu/curvekit/recording"
)

const (
	// Client to server.
	TypePointerDown = "pointer.down"
	TypePointerMove = "pointer.move"
	TypePointerUp   = "pointer.up"
	TypeSpawn       = "spawn"
	TypeEdit        = "edit"
	TypeDeselect    = "deselect"
	TypeDelete      = "delete"

	// Server to client.
	TypeWelcome = "welcome"
	TypeFrame   = "frame"
	TypePanel   = "panel"
	TypeError   = "error"
)

// Message is sent by the browser.
type Message struct {
	Type  string  `json:"type"`
	X     float64 `json:"x,omitempty"`
	Y     float64 `json:"y,omitempty"`
	Kind  string  `json:"kind,omitempty"`
	Field string  `json:"field,omitempty"`
	Value string  `json:"value,omitempty"`
}

// Reply is sent to the browser.
type Reply struct {
	Type     string              `json:"type"`
	Session  string              `json:"session,omitempty"`
	Width    int                 `json:"width,omitempty"`
	Height   int                 `json:"height,omitempty"`
	Commands []recording.Command `json:"commands,omitempty"`
	Panel    *panel.State        `json:"panel,omitempty"`
	Error    string              `json:"error,omitempty"`
}
