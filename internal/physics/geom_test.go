package physics

import (
	"math"
	"testing"
)

const eps = 1e-9

func almostEq(a, b float64) bool {
	return math.Abs(a-b) <= eps
}

func vecAlmostEq(a, b Vec2) bool {
	return almostEq(a.X, b.X) && almostEq(a.Y, b.Y)
}

func TestVec2Ops(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	b := Vec2{X: -1, Y: 2}

	if got := a.Add(b); !vecAlmostEq(got, Vec2{X: 2, Y: 6}) {
		t.Errorf("Add() = %v, expected (2, 6)", got)
	}
	if got := a.Sub(b); !vecAlmostEq(got, Vec2{X: 4, Y: 2}) {
		t.Errorf("Sub() = %v, expected (4, 2)", got)
	}
	if got := a.Scale(2); !vecAlmostEq(got, Vec2{X: 6, Y: 8}) {
		t.Errorf("Scale(2) = %v, expected (6, 8)", got)
	}
	if got := a.Dot(b); !almostEq(got, 5) {
		t.Errorf("Dot() = %v, expected 5", got)
	}
	if got := a.Len(); !almostEq(got, 5) {
		t.Errorf("Len() = %v, expected 5", got)
	}
	if got := a.LenSq(); !almostEq(got, 25) {
		t.Errorf("LenSq() = %v, expected 25", got)
	}
	if got := a.Dist(Vec2{X: 0, Y: 0}); !almostEq(got, 5) {
		t.Errorf("Dist(origin) = %v, expected 5", got)
	}
}

func TestVec2Normalize(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec2
		expected Vec2
	}{
		{"unit x", Vec2{X: 5, Y: 0}, Vec2{X: 1, Y: 0}},
		{"unit y", Vec2{X: 0, Y: -3}, Vec2{X: 0, Y: -1}},
		{"diagonal", Vec2{X: 3, Y: 4}, Vec2{X: 0.6, Y: 0.8}},
		{"zero stays zero", Vec2{}, Vec2{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.v.Normalize()
			if !vecAlmostEq(got, tc.expected) {
				t.Errorf("Normalize() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectClosestPoint(t *testing.T) {
	r := Rect{Left: 10, Top: 20, Right: 30, Bottom: 40}

	tests := []struct {
		name     string
		p        Vec2
		expected Vec2
	}{
		{"inside stays put", Vec2{X: 15, Y: 25}, Vec2{X: 15, Y: 25}},
		{"left of rect", Vec2{X: 0, Y: 25}, Vec2{X: 10, Y: 25}},
		{"right of rect", Vec2{X: 50, Y: 25}, Vec2{X: 30, Y: 25}},
		{"above rect", Vec2{X: 15, Y: 0}, Vec2{X: 15, Y: 20}},
		{"below rect", Vec2{X: 15, Y: 60}, Vec2{X: 15, Y: 40}},
		{"corner clamp", Vec2{X: 0, Y: 0}, Vec2{X: 10, Y: 20}},
		{"on boundary", Vec2{X: 10, Y: 30}, Vec2{X: 10, Y: 30}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := r.ClosestPoint(tc.p)
			if !vecAlmostEq(got, tc.expected) {
				t.Errorf("ClosestPoint(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestRectProperties(t *testing.T) {
	r := RectFromSize(5, 10, 20, 15)

	if r.Left != 5 || r.Top != 10 || r.Right != 25 || r.Bottom != 25 {
		t.Errorf("RectFromSize bounds = %+v, expected {5 10 25 25}", r)
	}
	if !almostEq(r.Width(), 20) || !almostEq(r.Height(), 15) {
		t.Errorf("Width()/Height() = %v/%v, expected 20/15", r.Width(), r.Height())
	}
	if got := r.Center(); !vecAlmostEq(got, Vec2{X: 15, Y: 17.5}) {
		t.Errorf("Center() = %v, expected (15, 17.5)", got)
	}
	if !r.Valid() {
		t.Error("Valid() = false for a well-formed rect")
	}
	if (Rect{Left: 10, Top: 0, Right: 0, Bottom: 5}).Valid() {
		t.Error("Valid() = true for left > right")
	}
	if !r.Contains(Vec2{X: 15, Y: 15}) {
		t.Error("Contains(inside) = false")
	}
	if r.Contains(Vec2{X: 0, Y: 15}) {
		t.Error("Contains(outside) = true")
	}
}

func TestNewPaddleShape(t *testing.T) {
	// Width 20 -> arc radius 10; legs span legHeight + diameter vertically.
	ps := NewPaddleShape(40, 50, 20, 10, 4)

	if !almostEq(ps.ArcRadius, 10) {
		t.Errorf("ArcRadius = %v, expected 10", ps.ArcRadius)
	}
	if !vecAlmostEq(ps.ArcCenter, Vec2{X: 50, Y: 70}) {
		t.Errorf("ArcCenter = %v, expected (50, 70)", ps.ArcCenter)
	}
	if !vecAlmostEq(Vec2{X: ps.LeftLeg.Left, Y: ps.LeftLeg.Top}, Vec2{X: 40, Y: 50}) {
		t.Errorf("LeftLeg top-left = (%v, %v), expected (40, 50)", ps.LeftLeg.Left, ps.LeftLeg.Top)
	}
	if !almostEq(ps.LeftLeg.Bottom, 80) || !almostEq(ps.RightLeg.Bottom, 80) {
		t.Errorf("leg bottoms = %v/%v, expected 80 (arc bottom)", ps.LeftLeg.Bottom, ps.RightLeg.Bottom)
	}
	if !almostEq(ps.RightLeg.Right, 60) {
		t.Errorf("RightLeg.Right = %v, expected 60 (outer edge at arc diameter end)", ps.RightLeg.Right)
	}
	if !almostEq(ps.Width(), 20) {
		t.Errorf("Width() = %v, expected 20", ps.Width())
	}
}

func TestArcContains(t *testing.T) {
	ps := NewPaddleShape(40, 50, 20, 10, 4)
	// ArcCenter (50, 70), radius 10.

	tests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{"directly below center", Vec2{X: 50, Y: 80}, true},
		{"below and right", Vec2{X: 57, Y: 77}, true},
		{"below and left", Vec2{X: 43, Y: 77}, true},
		{"on diameter right end", Vec2{X: 60, Y: 70}, true},
		{"on diameter left end", Vec2{X: 40, Y: 70}, true},
		{"directly above center (open side)", Vec2{X: 50, Y: 60}, false},
		{"above and right (open side)", Vec2{X: 57, Y: 63}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ps.ArcContains(tc.p)
			if got != tc.expected {
				t.Errorf("ArcContains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}
