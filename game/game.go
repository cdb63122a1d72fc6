package game

import (
	"fmt"

	"snake-game/game/entity"
	"snake-game/game/manager"
	"snake-game/game/types"
	"snake-game/log"
)

// Game owns the whole play state: the snake, its direction, the food, the
// score and the game over flag. It is driven by a single frame loop and is
// not safe for concurrent use.
type Game struct {
	cfg    Config
	logger *log.Logger

	snake         *entity.Snake
	direction     types.Direction
	food          types.Point
	score         int
	gameOver      bool
	moveTimer     float64
	steps         int
	lastCollision types.CollisionType

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
}

// NewGame validates cfg and returns a game ready to play.
func NewGame(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	if cfg.MaxSpawnAttempts <= 0 {
		cfg.MaxSpawnAttempts = types.MaxSpawnAttempts
	}

	collisionMgr := manager.NewCollisionManager(cfg.Grid)
	g := &Game{
		cfg:          cfg,
		logger:       log.Default(),
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(cfg.Grid, collisionMgr, cfg.Seed, cfg.MaxSpawnAttempts),
		stateMgr:     manager.NewStateManager(),
	}
	g.Reset()
	return g, nil
}

// MustNewGame is like NewGame but panics on an invalid config.
func MustNewGame(cfg Config) *Game {
	g, err := NewGame(cfg)
	if err != nil {
		panic(err)
	}
	return g
}

// SetLogger replaces the logger used for game events.
func (g *Game) SetLogger(l *log.Logger) {
	if l != nil {
		g.logger = l
	}
}

// Reset puts the game back into its initial state. The food generator
// keeps its sequence, so food placement differs between rounds.
func (g *Game) Reset() {
	g.direction = types.Right
	g.snake = entity.NewSnake(g.cfg.StartPosition(), g.direction, g.cfg.InitialLength)
	g.score = 0
	g.gameOver = false
	g.moveTimer = 0
	g.steps = 0
	g.lastCollision = types.NoCollision
	g.SpawnFood()
	g.logger.Info("Round started with food at (%d,%d)", g.food.X, g.food.Y)
}

// RequestDirection changes the heading unless dir would reverse the
// current one. Several requests may land between two steps; the last
// accepted one is used.
func (g *Game) RequestDirection(dir types.Direction) bool {
	if !dir.Valid() || dir == g.direction.Opposite() {
		g.logger.Trace("Ignored direction %s while heading %s", dir, g.direction)
		return false
	}
	g.direction = dir
	return true
}

// Update advances the move timer by elapsed seconds and runs one Step for
// every whole MoveDelay accumulated. It returns the number of steps run.
func (g *Game) Update(elapsed float64) int {
	if g.gameOver {
		return 0
	}
	if elapsed > 0 {
		g.moveTimer += elapsed
	}

	steps := 0
	for g.moveTimer >= g.cfg.MoveDelay {
		g.moveTimer -= g.cfg.MoveDelay
		g.Step()
		steps++
		if g.gameOver {
			break
		}
	}
	return steps
}

// Step moves the snake one cell. Collisions are checked against the body
// before the tail is removed.
func (g *Game) Step() {
	if g.gameOver {
		return
	}

	newHead := g.snake.GetHead().Add(g.direction.ToPoint())

	if collision := g.collisionMgr.CheckCollision(newHead, g.snake); collision != types.NoCollision {
		g.endRound(collision)
		return
	}

	g.snake.Move(newHead)
	g.steps++

	if g.collisionMgr.IsFoodCollision(newHead, g.food) {
		g.score += g.cfg.FoodReward
		g.logger.Debug("Food eaten at (%d,%d), score %d, length %d", newHead.X, newHead.Y, g.score, g.snake.Len())
		g.SpawnFood()
	} else {
		g.snake.RemoveTail()
	}
}

// SpawnFood places the food on a random free cell.
func (g *Game) SpawnFood() {
	food, ok := g.foodMgr.GenerateFood(g.snake)
	if !ok {
		g.logger.Warn("No free cell found after %d attempts, food placed on the snake at (%d,%d)", g.cfg.MaxSpawnAttempts, food.X, food.Y)
	}
	g.food = food
}

func (g *Game) endRound(cause types.CollisionType) {
	g.gameOver = true
	g.lastCollision = cause
	rec := g.stateMgr.RecordGame(g.score, g.snake.Len(), g.steps, cause)
	g.logger.Info("Game over (%s collision) with score %d after %d steps, round %s", cause, g.score, g.steps, rec.ID)
}

// Snake returns the segments head first.
func (g *Game) Snake() []types.Point {
	return g.snake.Segments()
}

func (g *Game) Head() types.Point {
	return g.snake.GetHead()
}

func (g *Game) Food() types.Point {
	return g.food
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) GameOver() bool {
	return g.gameOver
}

func (g *Game) Direction() types.Direction {
	return g.direction
}

func (g *Game) Grid() types.Grid {
	return g.cfg.Grid
}

func (g *Game) MoveTimer() float64 {
	return g.moveTimer
}

func (g *Game) Steps() int {
	return g.steps
}

func (g *Game) LastCollision() types.CollisionType {
	return g.lastCollision
}

func (g *Game) Stats() *manager.StateManager {
	return g.stateMgr
}
