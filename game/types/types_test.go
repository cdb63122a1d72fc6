package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionToPoint(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
		want Point
	}{
		{name: "none", dir: None, want: Point{}},
		{name: "up", dir: Up, want: Point{X: 0, Y: -1}},
		{name: "down", dir: Down, want: Point{X: 0, Y: 1}},
		{name: "left", dir: Left, want: Point{X: -1, Y: 0}},
		{name: "right", dir: Right, want: Point{X: 1, Y: 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.dir.ToPoint())
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range []Direction{Up, Right, Down, Left} {
		opp := d.Opposite()
		assert.Equal(t, d, opp.Opposite(), "opposite of opposite for %s", d)
		assert.Equal(t, Point{}, d.ToPoint().Add(opp.ToPoint()), "vectors of %s and %s should cancel", d, opp)
	}
	assert.Equal(t, None, None.Opposite())
}

func TestDirectionTurns(t *testing.T) {
	for _, d := range []Direction{Up, Right, Down, Left} {
		assert.Equal(t, d, d.TurnLeft().TurnRight())
		assert.Equal(t, d.Opposite(), d.TurnLeft().TurnLeft())
	}
	assert.Equal(t, Left, Up.TurnLeft())
	assert.Equal(t, Right, Up.TurnRight())
}

func TestDirectionValid(t *testing.T) {
	assert.False(t, None.Valid())
	assert.False(t, Direction(42).Valid())
	assert.True(t, Up.Valid())
	assert.True(t, Left.Valid())
}

func TestGridContains(t *testing.T) {
	g := Grid{Width: GridWidth, Height: GridHeight}
	assert.True(t, g.Contains(Point{X: 0, Y: 0}))
	assert.True(t, g.Contains(Point{X: 29, Y: 19}))
	assert.False(t, g.Contains(Point{X: 30, Y: 10}))
	assert.False(t, g.Contains(Point{X: -1, Y: 0}))
	assert.False(t, g.Contains(Point{X: 0, Y: 20}))
	assert.Equal(t, 600, g.Cells())
}
