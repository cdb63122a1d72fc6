package ai

import (
	"snake-game/game/types"
)

// Board is the read-only view the autopilot plays from.
type Board interface {
	Snake() []types.Point
	Food() types.Point
	Direction() types.Direction
	Grid() types.Grid
}

// Action is a move relative to the current heading.
type Action int

const (
	Straight Action = iota
	TurnLeft
	TurnRight
)

var actions = []Action{Straight, TurnLeft, TurnRight}

// Apply returns the absolute direction for a relative action.
func (a Action) Apply(d types.Direction) types.Direction {
	switch a {
	case TurnLeft:
		return d.TurnLeft()
	case TurnRight:
		return d.TurnRight()
	default:
		return d
	}
}

// Sensors describes the cell in front of each relative action.
type Sensors struct {
	Danger   [3]bool
	Food     [3]bool
	FoodDist [3]int
	Freedom  [3]int
}

// Sense reads the three cells reachable on the next step. A cell is
// dangerous if it is off the grid or on any segment, the tail included,
// matching the order collisions are resolved in.
func Sense(b Board) Sensors {
	var s Sensors
	body := b.Snake()
	if len(body) == 0 {
		return s
	}
	occupied := make(map[types.Point]bool, len(body))
	for _, p := range body {
		occupied[p] = true
	}
	grid := b.Grid()
	head := body[0]
	food := b.Food()
	blocked := func(p types.Point) bool {
		return !grid.Contains(p) || occupied[p]
	}

	for i, a := range actions {
		next := head.Add(a.Apply(b.Direction()).ToPoint())
		s.Danger[i] = blocked(next)
		s.Food[i] = next == food
		s.FoodDist[i] = manhattanDistance(next, food)
		for _, d := range []types.Direction{types.Up, types.Right, types.Down, types.Left} {
			if n := next.Add(d.ToPoint()); n != head && !blocked(n) {
				s.Freedom[i]++
			}
		}
	}
	return s
}

// Autopilot steers the snake greedily: eat if possible, otherwise close in
// on the food, and prefer open space among equally good moves.
type Autopilot struct{}

func NewAutopilot() *Autopilot {
	return &Autopilot{}
}

// Decide returns the direction to request before the next step. When every
// option is fatal it keeps the current heading.
func (ap *Autopilot) Decide(b Board) types.Direction {
	current := b.Direction()
	s := Sense(b)

	best := -1
	for i := range actions {
		if s.Danger[i] {
			continue
		}
		if best < 0 || better(s, i, best) {
			best = i
		}
	}
	if best < 0 {
		return current
	}
	return actions[best].Apply(current)
}

// better reports whether action i beats action j. A move into a dead end
// only wins over another dead end.
func better(s Sensors, i, j int) bool {
	iTrapped, jTrapped := s.Freedom[i] == 0 && !s.Food[i], s.Freedom[j] == 0 && !s.Food[j]
	if iTrapped != jTrapped {
		return !iTrapped
	}
	if s.Food[i] != s.Food[j] {
		return s.Food[i]
	}
	if s.FoodDist[i] != s.FoodDist[j] {
		return s.FoodDist[i] < s.FoodDist[j]
	}
	return s.Freedom[i] > s.Freedom[j]
}

func manhattanDistance(p1, p2 types.Point) int {
	return abs(p1.X-p2.X) + abs(p1.Y-p2.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
