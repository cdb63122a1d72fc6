package ui

import (
	"snake-game/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const gamepad = 0

var keyboardBindings = map[input.Key][]int32{
	input.KeyUp:      {rl.KeyUp, rl.KeyW},
	input.KeyDown:    {rl.KeyDown, rl.KeyS},
	input.KeyLeft:    {rl.KeyLeft, rl.KeyA},
	input.KeyRight:   {rl.KeyRight, rl.KeyD},
	input.KeyConfirm: {rl.KeyEnter, rl.KeyKpEnter},
}

var gamepadBindings = map[input.Key][]int32{
	input.KeyUp:      {rl.GamepadButtonLeftFaceUp},
	input.KeyDown:    {rl.GamepadButtonLeftFaceDown},
	input.KeyLeft:    {rl.GamepadButtonLeftFaceLeft},
	input.KeyRight:   {rl.GamepadButtonLeftFaceRight},
	input.KeyConfirm: {rl.GamepadButtonMiddleRight},
	input.KeyBack:    {rl.GamepadButtonMiddleLeft},
}

// PollKeys reads the raw state of the keyboard and the first gamepad. It
// must be called from the goroutine that owns the window.
func PollKeys() input.KeySet {
	var s input.KeySet
	for k, keys := range keyboardBindings {
		for _, key := range keys {
			if rl.IsKeyDown(key) {
				s = s.With(k)
			}
		}
	}
	if rl.IsGamepadAvailable(gamepad) {
		for k, buttons := range gamepadBindings {
			for _, b := range buttons {
				if rl.IsGamepadButtonDown(gamepad, b) {
					s = s.With(k)
				}
			}
		}
	}
	return s
}
