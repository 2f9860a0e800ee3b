package physics

import "fmt"

// fallbackNormal substitutes for a degenerate zero-length contact normal.
// Straight up in y-down screen coordinates; deterministic so replays of the
// same degenerate frame resolve identically.
var fallbackNormal = Vec2{X: 0, Y: -1}

// Reflect mirrors a velocity across a contact normal: the component along
// the normal is negated, the tangential component is kept (elastic,
// frictionless), and the result is scaled by speedMultiplier (1 preserves
// speed; boost uses larger values). The normal need not be unit length. A
// zero-length normal is replaced by the straight-up fallback rather than
// propagating NaN. Non-finite inputs and non-positive multipliers fail fast.
func Reflect(v, n Vec2, speedMultiplier float64) (Vec2, error) {
	if !v.IsFinite() {
		return Vec2{}, fmt.Errorf("%w: (%v, %v)", ErrInvalidVelocity, v.X, v.Y)
	}
	if !n.IsFinite() {
		return Vec2{}, fmt.Errorf("%w: (%v, %v)", ErrInvalidNormal, n.X, n.Y)
	}
	if speedMultiplier <= 0 || !isFinite(speedMultiplier) {
		return Vec2{}, fmt.Errorf("%w: %v", ErrInvalidMultiplier, speedMultiplier)
	}
	unit := n.Normalize()
	if unit.IsZero() {
		unit = fallbackNormal
	}
	out := v.Sub(unit.Scale(2 * v.Dot(unit)))
	if speedMultiplier != 1 {
		out = out.Scale(speedMultiplier)
	}
	return out, nil
}

// CombinedNormal sums the contact normals and renormalizes, producing the
// single normal a corner or seam hit should reflect against. Reflecting once
// against the combined normal preserves speed; reflecting sequentially
// against each contact would not look like a corner bounce. ok is false when
// the normals cancel exactly.
func CombinedNormal(contacts []Contact) (n Vec2, ok bool) {
	var sum Vec2
	for _, c := range contacts {
		sum = sum.Add(c.Normal)
	}
	unit := sum.Normalize()
	if unit.IsZero() {
		return Vec2{}, false
	}
	return unit, true
}

// ResolveContact returns the body pushed out of penetration along the given
// normal by the contact depth, so the following step does not immediately
// re-detect the same contact.
func ResolveContact(b Body, normal Vec2, depth float64) Body {
	if depth <= 0 {
		return b
	}
	b.Pos = b.Pos.Add(normal.Normalize().Scale(depth))
	return b
}
