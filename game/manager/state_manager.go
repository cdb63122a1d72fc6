package manager

import (
	"time"

	"snake-game/game/types"

	"github.com/google/uuid"
)

const maxHistory = 50

// GameRecord describes one finished round.
type GameRecord struct {
	ID      string              `json:"id"`
	Score   int                 `json:"score"`
	Length  int                 `json:"length"`
	Steps   int                 `json:"steps"`
	Cause   types.CollisionType `json:"cause"`
	EndedAt time.Time           `json:"endedAt"`
}

// StateManager keeps session statistics in memory. Nothing outlives the
// process.
type StateManager struct {
	highScore   int
	gamesPlayed int
	history     []GameRecord
	now         func() time.Time
}

func NewStateManager() *StateManager {
	return &StateManager{
		history: make([]GameRecord, 0, maxHistory),
		now:     time.Now,
	}
}

// RecordGame stores a finished round and returns its record.
func (sm *StateManager) RecordGame(score, length, steps int, cause types.CollisionType) GameRecord {
	rec := GameRecord{
		ID:      uuid.New().String(),
		Score:   score,
		Length:  length,
		Steps:   steps,
		Cause:   cause,
		EndedAt: sm.now(),
	}
	sm.gamesPlayed++
	if score > sm.highScore {
		sm.highScore = score
	}
	if len(sm.history) >= maxHistory {
		sm.history = sm.history[1:]
	}
	sm.history = append(sm.history, rec)
	return rec
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetGamesPlayed() int {
	return sm.gamesPlayed
}

// GetHistory returns the most recent rounds, oldest first.
func (sm *StateManager) GetHistory() []GameRecord {
	out := make([]GameRecord, len(sm.history))
	copy(out, sm.history)
	return out
}

// GetLastGame returns the most recent round, if any.
func (sm *StateManager) GetLastGame() (GameRecord, bool) {
	if len(sm.history) == 0 {
		return GameRecord{}, false
	}
	return sm.history[len(sm.history)-1], true
}

// GetAverageScore returns the mean score over the retained history.
func (sm *StateManager) GetAverageScore() float64 {
	if len(sm.history) == 0 {
		return 0
	}
	sum := 0
	for _, rec := range sm.history {
		sum += rec.Score
	}
	return float64(sum) / float64(len(sm.history))
}
