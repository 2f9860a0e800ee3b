package breaker

import (
	"github.com/rayraychen2011/tui-breaker/internal/physics"
)

// Paddle is the player's horseshoe bat. It chases TargetX with capped,
// damped motion so fast input still reads as smooth movement on screen.
type Paddle struct {
	X         float64 // Left edge
	Y         float64 // Top of the legs
	Width     float64 // Outer diameter
	LegHeight float64
	Thickness float64

	TargetX float64
	MaxStep float64 // Largest move per tick while far from the target
	Lerp    float64 // Fraction of the remaining gap closed per tick

	minX, maxX float64 // Travel limits for the left edge
}

// NewPaddle places a paddle centered between minX and maxX at the given row.
func NewPaddle(y, width, legHeight, thickness, maxStep, lerp, minX, maxX float64) *Paddle {
	x := minX + (maxX-minX-width)/2
	return &Paddle{
		X:         x,
		Y:         y,
		Width:     width,
		LegHeight: legHeight,
		Thickness: thickness,
		TargetX:   x,
		MaxStep:   maxStep,
		Lerp:      lerp,
		minX:      minX,
		maxX:      maxX,
	}
}

// MoveTarget shifts the target left edge by dx, clamped to the travel limits.
func (p *Paddle) MoveTarget(dx float64) {
	p.SetTarget(p.TargetX + dx)
}

// SetTarget sets the target left edge, clamped to the travel limits.
func (p *Paddle) SetTarget(x float64) {
	p.TargetX = p.clampX(x)
}

// SetTargetCenter aims the paddle's center at the given x coordinate.
func (p *Paddle) SetTargetCenter(x float64) {
	p.SetTarget(x - p.Width/2)
}

// Update advances the paddle one tick toward its target. Far from the
// target it moves at MaxStep per tick; once inside that range it closes
// a Lerp fraction of the remaining gap, easing to a stop.
func (p *Paddle) Update() {
	diff := p.TargetX - p.X
	switch {
	case diff > p.MaxStep:
		p.X += p.MaxStep
	case diff < -p.MaxStep:
		p.X -= p.MaxStep
	default:
		p.X += diff * p.Lerp
	}
	p.X = p.clampX(p.X)
}

// CenterX returns the x coordinate of the paddle's center.
func (p *Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// Height returns the overall height, legs plus arc.
func (p *Paddle) Height() float64 {
	return p.LegHeight + p.Width
}

// Shape returns the paddle's collision geometry at its current position.
func (p *Paddle) Shape() physics.PaddleShape {
	return physics.NewPaddleShape(p.X, p.Y, p.Width, p.LegHeight, p.Thickness)
}

func (p *Paddle) clampX(x float64) float64 {
	if x < p.minX {
		return p.minX
	}
	if limit := p.maxX - p.Width; x > limit {
		return limit
	}
	return x
}
