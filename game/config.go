package game

import (
	"errors"
	"fmt"

	"snake-game/game/types"
)

var (
	ErrInvalidGrid      = errors.New("invalid grid")
	ErrInvalidMoveDelay = errors.New("invalid move delay")
	ErrInvalidLength    = errors.New("invalid initial length")
)

// Config holds the tunables of a session
type Config struct {
	// Grid is the playfield size in tiles
	Grid types.Grid

	// MoveDelay is the number of seconds between two steps
	MoveDelay float64

	// FoodReward is added to the score for every food eaten
	FoodReward int

	// InitialLength is the number of segments after New and Reset
	InitialLength int

	// MaxSpawnAttempts bounds the food rejection sampling
	MaxSpawnAttempts int

	// Seed seeds the food generator
	Seed uint64
}

// DefaultConfig returns the classic 30x20 configuration
func DefaultConfig() Config {
	return Config{
		Grid:             types.Grid{Width: types.GridWidth, Height: types.GridHeight},
		MoveDelay:        types.MoveDelay,
		FoodReward:       types.FoodReward,
		InitialLength:    types.InitialLength,
		MaxSpawnAttempts: types.MaxSpawnAttempts,
	}
}

// Validate checks that a snake of InitialLength fits left of the grid
// centre and that the timing is usable.
func (c Config) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGrid, c.Grid.Width, c.Grid.Height)
	}
	if c.MoveDelay <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidMoveDelay, c.MoveDelay)
	}
	if c.InitialLength < 1 || c.InitialLength > c.Grid.Width/2+1 {
		return fmt.Errorf("%w: %d on a grid %d wide", ErrInvalidLength, c.InitialLength, c.Grid.Width)
	}
	return nil
}

// StartPosition is the head cell of a fresh snake.
func (c Config) StartPosition() types.Point {
	return types.Point{X: c.Grid.Width / 2, Y: c.Grid.Height / 2}
}
