// Package physics implements the collision core for the breaker game:
// circle-vs-rectangle and circle-vs-horseshoe-paddle contact detection,
// mirror reflection, and bounded trajectory prediction. All coordinates are
// float64 in screen space (x grows right, y grows down). Inputs and outputs
// are value types; the package never retains or mutates caller state, which
// keeps it free of Bubble Tea and game-state dependencies.
package physics

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidBody reports a caller bug: negative radius or non-finite
	// position/velocity at the detection or prediction boundary.
	ErrInvalidBody = errors.New("physics: invalid body")
	// ErrInvalidVelocity reports a non-finite velocity passed to Reflect.
	ErrInvalidVelocity = errors.New("physics: invalid velocity")
	// ErrInvalidNormal reports a non-finite contact normal passed to Reflect.
	// A zero-length (but finite) normal is not an error; Reflect substitutes
	// the fallback normal instead.
	ErrInvalidNormal = errors.New("physics: invalid normal")
	// ErrInvalidMultiplier reports a non-positive or non-finite speed
	// multiplier.
	ErrInvalidMultiplier = errors.New("physics: invalid speed multiplier")
	// ErrInvalidConfig reports an unusable prediction config.
	ErrInvalidConfig = errors.New("physics: invalid predict config")
)

// Body is the moving circular object whose trajectory is simulated.
// It is a plain value: simulation steps produce new bodies rather than
// mutating shared state.
type Body struct {
	Pos    Vec2    // Center position
	Vel    Vec2    // Velocity per time unit
	Radius float64 // Must be >= 0; zero is degenerate but tolerated
}

// Advance returns the body moved by its velocity over dt.
func (b Body) Advance(dt float64) Body {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	return b
}

// Validate checks the fail-fast invariants: radius must be non-negative and
// finite, position and velocity must be finite. Violations indicate a caller
// bug, not a recoverable runtime condition.
func (b Body) Validate() error {
	if b.Radius < 0 || !isFinite(b.Radius) {
		return fmt.Errorf("%w: radius %v", ErrInvalidBody, b.Radius)
	}
	if !b.Pos.IsFinite() {
		return fmt.Errorf("%w: non-finite position (%v, %v)", ErrInvalidBody, b.Pos.X, b.Pos.Y)
	}
	if !b.Vel.IsFinite() {
		return fmt.Errorf("%w: non-finite velocity (%v, %v)", ErrInvalidBody, b.Vel.X, b.Vel.Y)
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
