package breaker

import (
	"math"
	"math/rand"

	"github.com/rayraychen2011/tui-breaker/internal/core"
	"github.com/rayraychen2011/tui-breaker/internal/physics"
)

// Particle motion constants, in cells per tick.
const (
	particleGravity = 0.02
	particleDrag    = 0.995
)

// Particle is a short-lived spark thrown off by a destroyed brick.
type Particle struct {
	Pos   physics.Vec2
	Vel   physics.Vec2
	Life  int // Remaining ticks
	Total int // Initial lifetime, for fade-out
	Color core.Color
}

// spawnParticles creates count sparks at (x, y) flying in random directions.
// Speeds are drawn from [0.2*speed, speed] with a slight upward bias so
// bursts fountain before gravity pulls them down.
func spawnParticles(rng *rand.Rand, x, y float64, count int, speed, spread float64, life int, color core.Color) []Particle {
	parts := make([]Particle, 0, count)
	for i := 0; i < count; i++ {
		angle := rng.Float64()*2*math.Pi*spread + (rng.Float64()-0.5)*0.8
		v := 0.2*speed + rng.Float64()*0.8*speed
		vx := math.Cos(angle) * v
		vy := math.Sin(angle)*v - rng.Float64()*0.2*speed
		parts = append(parts, Particle{
			Pos:   physics.Vec2{X: x, Y: y},
			Vel:   physics.Vec2{X: vx, Y: vy},
			Life:  life,
			Total: life,
			Color: color,
		})
	}
	return parts
}

// updateParticles advances all particles one tick and drops the expired
// ones, reusing the backing array.
func updateParticles(parts []Particle) []Particle {
	alive := parts[:0]
	for _, p := range parts {
		p.Life--
		if p.Life <= 0 {
			continue
		}
		p.Vel.Y += particleGravity
		p.Vel.X *= particleDrag
		p.Vel.Y *= particleDrag
		p.Pos.X += p.Vel.X
		p.Pos.Y += p.Vel.Y
		alive = append(alive, p)
	}
	return alive
}

// glyph picks a spark rune that shrinks as the particle burns out.
func (p Particle) glyph() rune {
	if p.Total <= 0 {
		return '·'
	}
	frac := float64(p.Life) / float64(p.Total)
	switch {
	case frac > 0.66:
		return '✦'
	case frac > 0.33:
		return '•'
	default:
		return '·'
	}
}
