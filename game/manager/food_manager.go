package manager

import (
	"snake-game/game/entity"
	"snake-game/game/types"

	"golang.org/x/exp/rand"
)

type FoodManager struct {
	grid         types.Grid
	maxAttempts  int
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, seed uint64, maxAttempts int) *FoodManager {
	if maxAttempts <= 0 {
		maxAttempts = types.MaxSpawnAttempts
	}
	return &FoodManager{
		grid:         grid,
		maxAttempts:  maxAttempts,
		rng:          rand.New(rand.NewSource(seed)),
		collisionMgr: collisionMgr,
	}
}

// GenerateFood samples uniform cells until one is off the snake. After
// maxAttempts rejections the last candidate is returned even if occupied,
// so a nearly full grid can't stall the frame.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (types.Point, bool) {
	var food types.Point
	for attempt := 0; attempt < fm.maxAttempts; attempt++ {
		food = types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food, true
		}
	}
	return food, false
}
