// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitenwin

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action is an editor command bound to a key.
type Action uint8

const (
	ActionNone Action = iota
	ActionNewLine
	ActionNewCircle
	ActionNewParametric
	ActionNewBezier
	ActionToggleTicks
	ActionToggleFill
	ActionMoreSegments
	ActionFewerSegments
	ActionDelete
	ActionDeselect
)

// keymap binds keys to actions.
var keymap = map[ebiten.Key]Action{
	ebiten.KeyL:              ActionNewLine,
	ebiten.KeyC:              ActionNewCircle,
	ebiten.KeyP:              ActionNewParametric,
	ebiten.KeyB:              ActionNewBezier,
	ebiten.KeyT:              ActionToggleTicks,
	ebiten.KeyF:              ActionToggleFill,
	ebiten.KeyEqual:          ActionMoreSegments,
	ebiten.KeyNumpadAdd:      ActionMoreSegments,
	ebiten.KeyMinus:          ActionFewerSegments,
	ebiten.KeyNumpadSubtract: ActionFewerSegments,
	ebiten.KeyDelete:         ActionDelete,
	ebiten.KeyBackspace:      ActionDelete,
	ebiten.KeyEscape:         ActionDeselect,
}

// Input is the mouse and keyboard state of one tick.
type Input struct {
	X, Y     int
	Pressed  bool // left button went down this tick
	Released bool // left button went up this tick
	Actions  []Action
}

// pollInput reads the current ebiten input state.
func pollInput() Input {
	x, y := ebiten.CursorPosition()
	in := Input{
		X:        x,
		Y:        y,
		Pressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if a, ok := keymap[k]; ok {
			in.Actions = append(in.Actions, a)
		}
	}
	return in
}
