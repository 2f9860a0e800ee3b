package breaker

import (
	"math/rand"

	"github.com/rayraychen2011/tui-breaker/internal/physics"
)

// Brick is a single destructible cell in the wall.
type Brick struct {
	ID      int // Index into Level.Bricks, row-major
	Row     int
	Col     int
	Bounds  physics.Rect
	Special bool // Clears a 3x3 neighborhood when hit
	Hit     bool
}

// Level holds the brick wall for one stage.
type Level struct {
	Rows   int
	Cols   int
	Bricks []Brick
}

// NewLevel builds a centered brick wall inside the given playfield and
// marks specialCount random bricks as burst bricks. topOffset and brickH
// are in world units; gap is in columns.
func NewLevel(rows, cols, gap, specialCount int, field physics.Rect, topOffset, brickH float64, rng *rand.Rand) *Level {
	lvl := &Level{
		Rows:   rows,
		Cols:   cols,
		Bricks: make([]Brick, 0, rows*cols),
	}

	fieldW := int(field.Width())
	brickW := (fieldW - (cols-1)*gap) / cols
	if brickW < 1 {
		brickW = 1
	}
	totalW := cols*brickW + (cols-1)*gap
	xOffset := field.Left + float64(fieldW-totalW)/2
	yOffset := field.Top + topOffset

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			x := xOffset + float64(c*(brickW+gap))
			y := yOffset + float64(r)*brickH
			lvl.Bricks = append(lvl.Bricks, Brick{
				ID:     r*cols + c,
				Row:    r,
				Col:    c,
				Bounds: physics.RectFromSize(x, y, float64(brickW), brickH),
			})
		}
	}

	lvl.assignSpecials(specialCount, rng)
	return lvl
}

// assignSpecials marks count random unhit bricks as burst bricks.
func (l *Level) assignSpecials(count int, rng *rand.Rand) {
	for i := range l.Bricks {
		l.Bricks[i].Special = false
	}

	available := make([]int, 0, len(l.Bricks))
	for i := range l.Bricks {
		if !l.Bricks[i].Hit {
			available = append(available, i)
		}
	}
	if len(available) == 0 {
		return
	}
	if count > len(available) {
		count = len(available)
	}

	perm := rng.Perm(len(available))
	for _, p := range perm[:count] {
		l.Bricks[available[p]].Special = true
	}
}

// Brick returns the brick with the given id, or nil if out of range.
func (l *Level) Brick(id int) *Brick {
	if id < 0 || id >= len(l.Bricks) {
		return nil
	}
	return &l.Bricks[id]
}

// Remaining counts bricks that have not been hit.
func (l *Level) Remaining() int {
	n := 0
	for i := range l.Bricks {
		if !l.Bricks[i].Hit {
			n++
		}
	}
	return n
}

// ClearBurst removes every unhit brick in the 3x3 neighborhood around the
// given brick and returns the ids it cleared. The center brick is expected
// to be marked hit already and is not included.
func (l *Level) ClearBurst(id int) []int {
	center := l.Brick(id)
	if center == nil {
		return nil
	}

	var cleared []int
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			nr := center.Row + dr
			nc := center.Col + dc
			if nr < 0 || nr >= l.Rows || nc < 0 || nc >= l.Cols {
				continue
			}
			nidx := nr*l.Cols + nc
			if !l.Bricks[nidx].Hit {
				l.Bricks[nidx].Hit = true
				cleared = append(cleared, nidx)
			}
		}
	}
	return cleared
}

// Obstacles returns the unhit bricks as collision obstacles.
// Obstacle ids are brick ids, so hits map straight back to bricks.
func (l *Level) Obstacles() []physics.Obstacle {
	obs := make([]physics.Obstacle, 0, len(l.Bricks))
	for i := range l.Bricks {
		if l.Bricks[i].Hit {
			continue
		}
		obs = append(obs, physics.Obstacle{
			ID:    l.Bricks[i].ID,
			Shape: l.Bricks[i].Bounds,
		})
	}
	return obs
}
