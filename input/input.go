package input

import "snake-game/game/types"

// Key is a logical control, independent of the physical device.
type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyConfirm
	KeyBack
)

// KeySet is a set of keys held down (or just pressed) in one frame.
type KeySet uint8

// Keys builds a set from the given keys.
func Keys(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

func (s KeySet) With(k Key) KeySet {
	return s | 1<<k
}

func (s KeySet) Has(k Key) bool {
	return s&(1<<k) != 0
}

func (s KeySet) Empty() bool {
	return s == 0
}

// JustPressed returns the keys down in current that were up in previous.
func JustPressed(current, previous KeySet) KeySet {
	return current &^ previous
}

// Detector remembers the previous frame so callers only pass the raw
// state of the current one.
type Detector struct {
	previous KeySet
}

// Next returns the keys that went down since the last call.
func (d *Detector) Next(current KeySet) KeySet {
	pressed := JustPressed(current, d.previous)
	d.previous = current
	return pressed
}

// Target is what Dispatch drives, normally a *game.Game.
type Target interface {
	RequestDirection(dir types.Direction) bool
	Reset()
	GameOver() bool
}

// directionKeys is checked in order; the first accepted turn wins.
var directionKeys = []struct {
	key Key
	dir types.Direction
}{
	{KeyUp, types.Up},
	{KeyDown, types.Down},
	{KeyLeft, types.Left},
	{KeyRight, types.Right},
}

// Dispatch applies one frame of edge-triggered input to t. While the game
// is over only Confirm matters and it restarts the round. It reports
// whether Back was pressed so the host can quit.
func Dispatch(pressed KeySet, t Target) (quit bool) {
	quit = pressed.Has(KeyBack)
	if t.GameOver() {
		if pressed.Has(KeyConfirm) {
			t.Reset()
		}
		return quit
	}
	for _, dk := range directionKeys {
		if pressed.Has(dk.key) && t.RequestDirection(dk.dir) {
			break
		}
	}
	return quit
}
