package platformer

import (
	"time"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
)

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -destination=./mocks/recorder_mock.go -package=mocks . RunRecorder

// RunRecord describes one finished attempt at a level.
type RunRecord struct {
	PackID     string
	LevelIndex int
	LevelName  string
	Status     sim.Status
	Coins      int           // Coins collected during the attempt
	Ticks      int           // Game ticks the attempt lasted
	Duration   time.Duration // Simulated time until the level was decided
}

// RunRecorder persists finished level attempts.
type RunRecorder interface {
	RecordRun(rec RunRecord) error
}
