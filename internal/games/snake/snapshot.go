package snake

import "slices"

// Phase is the coarse state of a run.
type Phase string

const (
	PhaseWaiting Phase = "waiting" // No direction chosen yet
	PhaseMoving  Phase = "moving"
	PhasePaused  Phase = "paused"
	PhaseCrashed Phase = "crashed"
)

// Snapshot is a copy of everything that decides the next tick. Two games
// fed the same seed and inputs produce equal snapshots.
type Snapshot struct {
	Tick           uint64
	Score          int
	Body           []Point // Head first
	Dir            Direction
	Food           []Point
	MoveEveryTicks int
	Phase          Phase
}

// Snapshot captures the current run.
func (g *Game) Snapshot() Snapshot {
	phase := PhaseMoving
	switch {
	case g.gameOver:
		phase = PhaseCrashed
	case g.paused:
		phase = PhasePaused
	case g.direction == DirNone:
		phase = PhaseWaiting
	}
	return Snapshot{
		Tick:           g.tick,
		Score:          g.score,
		Body:           slices.Clone(g.snake),
		Dir:            g.direction,
		Food:           slices.Clone(g.food),
		MoveEveryTicks: g.moveEveryTicks,
		Phase:          phase,
	}
}
