package breaker

import (
	"fmt"
	"hash/fnv"
	"math"
)

// Snapshot captures the observable simulation state with positions
// quantized to milli-units, so two runs can be compared exactly without
// depending on float formatting.
type Snapshot struct {
	Mode    string
	Score   int
	Lives   int
	Stage   int
	BallX   int
	BallY   int
	VelX    int
	VelY    int
	PaddleX int
	Bricks  []bool // Hit flags, row-major
}

// Snapshot returns the current quantized state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Mode:    g.mode,
		Score:   g.score,
		Lives:   g.lives,
		Stage:   g.stage,
		BallX:   milli(g.ball.Pos.X),
		BallY:   milli(g.ball.Pos.Y),
		VelX:    milli(g.ball.Vel.X),
		VelY:    milli(g.ball.Vel.Y),
		PaddleX: milli(g.paddle.X),
	}
	s.Bricks = make([]bool, len(g.level.Bricks))
	for i := range g.level.Bricks {
		s.Bricks[i] = g.level.Bricks[i].Hit
	}
	return s
}

// Hash folds the snapshot into a single FNV-1a value.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%d|%d|%d|%d|%d|%d|%d|%d|",
		s.Mode, s.Score, s.Lives, s.Stage, s.BallX, s.BallY, s.VelX, s.VelY, s.PaddleX)
	for _, hit := range s.Bricks {
		if hit {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}
	return h.Sum64()
}

func milli(v float64) int {
	return int(math.Round(v * 1000))
}
