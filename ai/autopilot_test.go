package ai

import (
	"io"
	"os"
	"testing"

	"snake-game/game"
	"snake-game/game/types"
	"snake-game/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

type board struct {
	snake []types.Point
	food  types.Point
	dir   types.Direction
	grid  types.Grid
}

func (b board) Snake() []types.Point       { return b.snake }
func (b board) Food() types.Point          { return b.food }
func (b board) Direction() types.Direction { return b.dir }
func (b board) Grid() types.Grid           { return b.grid }

var grid = types.Grid{Width: types.GridWidth, Height: types.GridHeight}

func TestActionApply(t *testing.T) {
	assert.Equal(t, types.Right, Straight.Apply(types.Right))
	assert.Equal(t, types.Up, TurnLeft.Apply(types.Right))
	assert.Equal(t, types.Down, TurnRight.Apply(types.Right))
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name string
		b    board
		want types.Direction
	}{
		{
			name: "food straight ahead",
			b: board{
				snake: []types.Point{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}},
				food:  types.Point{X: 15, Y: 10},
				dir:   types.Right,
				grid:  grid,
			},
			want: types.Right,
		},
		{
			name: "food above",
			b: board{
				snake: []types.Point{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}},
				food:  types.Point{X: 10, Y: 2},
				dir:   types.Right,
				grid:  grid,
			},
			want: types.Up,
		},
		{
			name: "wall ahead turns toward food",
			b: board{
				snake: []types.Point{{X: 29, Y: 5}, {X: 28, Y: 5}, {X: 27, Y: 5}},
				food:  types.Point{X: 20, Y: 15},
				dir:   types.Right,
				grid:  grid,
			},
			want: types.Down,
		},
		{
			name: "eats adjacent food",
			b: board{
				snake: []types.Point{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}},
				food:  types.Point{X: 10, Y: 11},
				dir:   types.Right,
				grid:  grid,
			},
			want: types.Down,
		},
		{
			name: "corner leaves one way out",
			b: board{
				snake: []types.Point{{X: 29, Y: 0}, {X: 28, Y: 0}, {X: 27, Y: 0}},
				food:  types.Point{X: 0, Y: 0},
				dir:   types.Right,
				grid:  grid,
			},
			want: types.Down,
		},
	}
	ap := NewAutopilot()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ap.Decide(tc.b))
		})
	}
}

func TestDecideKeepsHeadingWhenTrapped(t *testing.T) {
	// head at (1,0) heading up into the wall, body on both sides
	b := board{
		snake: []types.Point{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}},
		food:  types.Point{X: 10, Y: 10},
		dir:   types.Up,
		grid:  grid,
	}
	s := Sense(b)
	require.Equal(t, [3]bool{true, true, true}, s.Danger)
	assert.Equal(t, types.Up, NewAutopilot().Decide(b))
}

func TestSenseTailIsDangerous(t *testing.T) {
	b := board{
		snake: []types.Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}},
		food:  types.Point{X: 0, Y: 0},
		dir:   types.Up,
		grid:  grid,
	}
	// turning left from up is heading left, (4,5), free; turning right is (6,5), body
	s := Sense(b)
	assert.False(t, s.Danger[Straight])
	assert.False(t, s.Danger[TurnLeft])
	assert.True(t, s.Danger[TurnRight])

	b.dir = types.Left
	s = Sense(b)
	// turning left from left is heading down into the tail at (5,6)
	assert.True(t, s.Danger[TurnLeft])
}

func TestSenseEmptySnake(t *testing.T) {
	assert.Equal(t, Sensors{}, Sense(board{grid: grid, dir: types.Right}))
}

func TestAutopilotNeverPicksAFatalMoveWhenASafeOneExists(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Seed = 2024
	g, err := game.NewGame(cfg)
	require.NoError(t, err)
	ap := NewAutopilot()

	for i := 0; i < 3000; i++ {
		s := Sense(g)
		hasSafe := !s.Danger[0] || !s.Danger[1] || !s.Danger[2]

		g.RequestDirection(ap.Decide(g))
		g.Step()

		if hasSafe {
			require.False(t, g.GameOver(), "step %d: autopilot walked into a collision", i)
		}
		if g.GameOver() {
			g.Reset()
		}
	}
	assert.Greater(t, g.Stats().GetHighScore()+g.Score(), 0)
}
