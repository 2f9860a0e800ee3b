package physics

import "math"

// Shape is the closed set of obstacle geometries the detector understands:
// axis-aligned rectangles and the compound horseshoe paddle.
type Shape interface {
	shape()
}

// Obstacle pairs a shape with a caller-assigned identifier. The id is echoed
// in contact records so the caller can map hits back to its own registry
// (the game uses the brick's grid index, so row and column derive from it).
type Obstacle struct {
	ID    int
	Shape Shape
}

// Rect is an axis-aligned rectangle obstacle given by its edge coordinates.
// Well-formed rectangles satisfy Left <= Right and Top <= Bottom; malformed
// ones are skipped by detection rather than treated as errors.
type Rect struct {
	Left, Top, Right, Bottom float64
}

func (Rect) shape() {}

// RectFromSize builds a Rect from a top-left corner and dimensions.
func RectFromSize(x, y, w, h float64) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Center returns the rectangle's center point.
func (r Rect) Center() Vec2 {
	return Vec2{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// Valid reports whether the bounds are well-ordered.
func (r Rect) Valid() bool {
	return r.Left <= r.Right && r.Top <= r.Bottom
}

// Contains reports whether p lies inside or on the boundary.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// ClosestPoint clamps p to the rectangle's bounds, yielding the nearest
// point on or inside the rectangle. Pure; no failure modes.
func (r Rect) ClosestPoint(p Vec2) Vec2 {
	return Vec2{
		X: clampF(p.X, r.Left, r.Right),
		Y: clampF(p.Y, r.Top, r.Bottom),
	}
}

// PaddleShape is the horseshoe-shaped player obstacle: two vertical leg
// rectangles joined by a semicircular arc bulging downward between them.
// The mouth (open side) faces up, so a falling ball can enter between the
// legs and bounce off the arc's inner surface.
//
// The invariant NewPaddleShape maintains: the legs span the arc's full
// vertical extent and their outer edges align with the arc's diameter
// endpoints, leaving no gap a ball could slip through undetected.
type PaddleShape struct {
	LeftLeg   Rect
	RightLeg  Rect
	ArcCenter Vec2
	ArcRadius float64
}

func (PaddleShape) shape() {}

// NewPaddleShape assembles the horseshoe from its top-left corner, overall
// width, leg height above the arc, and leg thickness. The arc radius is
// width/2 and its center sits legHeight below the top, so the legs run from
// the top down to the bottom of the arc.
func NewPaddleShape(x, y, width, legHeight, legThickness float64) PaddleShape {
	outerR := width / 2
	totalH := legHeight + outerR*2
	return PaddleShape{
		LeftLeg:   RectFromSize(x, y, legThickness, totalH),
		RightLeg:  RectFromSize(x+width-legThickness, y, legThickness, totalH),
		ArcCenter: Vec2{X: x + outerR, Y: y + legHeight + outerR},
		ArcRadius: outerR,
	}
}

// Width returns the overall horseshoe width (the arc's diameter).
func (ps PaddleShape) Width() float64 {
	return ps.ArcRadius * 2
}

// ArcContains reports whether p falls in the arc's angular sweep. The arc
// covers the downward-bulging half of its circle, so the relevant angular
// range is [0, pi] under y-down atan2. Points above the center line are on
// the paddle's open side and never produce arc contacts (they may still hit
// a leg).
func (ps PaddleShape) ArcContains(p Vec2) bool {
	d := p.Sub(ps.ArcCenter)
	ang := math.Atan2(d.Y, d.X)
	return ang >= 0 && ang <= math.Pi
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
