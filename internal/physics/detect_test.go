package physics

import (
	"errors"
	"math"
	"testing"
)

func TestDetectNoContactBeyondRadius(t *testing.T) {
	tests := []struct {
		name string
		body Body
		rect Rect
	}{
		{
			name: "far left",
			body: Body{Pos: Vec2{X: 0, Y: 50}, Radius: 5},
			rect: Rect{Left: 10, Top: 40, Right: 30, Bottom: 60},
		},
		{
			name: "just past radius",
			body: Body{Pos: Vec2{X: 100, Y: 94.9}, Radius: 5},
			rect: Rect{Left: 90, Top: 100, Right: 110, Bottom: 120},
		},
		{
			name: "diagonal corner gap",
			body: Body{Pos: Vec2{X: 86, Y: 96}, Radius: 5},
			rect: Rect{Left: 90, Top: 100, Right: 110, Bottom: 120},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			contacts, err := Detect(tc.body, []Obstacle{{ID: 1, Shape: tc.rect}})
			if err != nil {
				t.Fatalf("Detect() error: %v", err)
			}
			if len(contacts) != 0 {
				t.Errorf("Detect() = %d contacts, expected none", len(contacts))
			}
		})
	}
}

func TestDetectRectContact(t *testing.T) {
	// Body descending onto a brick's top edge: normal points straight up.
	body := Body{Pos: Vec2{X: 100, Y: 100}, Vel: Vec2{X: 0, Y: 5}, Radius: 5}
	rect := Rect{Left: 90, Top: 103, Right: 110, Bottom: 120}

	contacts, err := Detect(body, []Obstacle{{ID: 7, Shape: rect}})
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}
	if len(contacts) != 1 {
		t.Fatalf("Detect() = %d contacts, expected 1", len(contacts))
	}
	c := contacts[0]
	if c.ObstacleID != 7 {
		t.Errorf("ObstacleID = %d, expected 7", c.ObstacleID)
	}
	if !vecAlmostEq(c.Normal, Vec2{X: 0, Y: -1}) {
		t.Errorf("Normal = %v, expected (0, -1)", c.Normal)
	}
	if !vecAlmostEq(c.Point, Vec2{X: 100, Y: 103}) {
		t.Errorf("Point = %v, expected (100, 103)", c.Point)
	}
	if !almostEq(c.Depth, 2) {
		t.Errorf("Depth = %v, expected 2", c.Depth)
	}
}

func TestDetectCenterInsideRect(t *testing.T) {
	// Center inside the rectangle: the smallest-overlap axis decides the
	// normal, here the top edge.
	body := Body{Pos: Vec2{X: 100, Y: 105}, Radius: 5}
	rect := Rect{Left: 90, Top: 103, Right: 110, Bottom: 120}

	contacts, err := Detect(body, []Obstacle{{ID: 0, Shape: rect}})
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}
	if len(contacts) != 1 {
		t.Fatalf("Detect() = %d contacts, expected 1", len(contacts))
	}
	c := contacts[0]
	if !vecAlmostEq(c.Normal, Vec2{X: 0, Y: -1}) {
		t.Errorf("Normal = %v, expected (0, -1)", c.Normal)
	}
	if !almostEq(c.Depth, 7) {
		t.Errorf("Depth = %v, expected 7 (radius + overlap)", c.Depth)
	}
}

func TestDetectCenterOnBoundary(t *testing.T) {
	// Center exactly on the left edge: zero-length delta, nearest edge is
	// the left one.
	body := Body{Pos: Vec2{X: 90, Y: 110}, Radius: 3}
	rect := Rect{Left: 90, Top: 103, Right: 110, Bottom: 120}

	contacts, err := Detect(body, []Obstacle{{ID: 0, Shape: rect}})
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}
	if len(contacts) != 1 {
		t.Fatalf("Detect() = %d contacts, expected 1", len(contacts))
	}
	if !vecAlmostEq(contacts[0].Normal, Vec2{X: -1, Y: 0}) {
		t.Errorf("Normal = %v, expected (-1, 0)", contacts[0].Normal)
	}
}

func TestDetectSkipsMalformedRect(t *testing.T) {
	body := Body{Pos: Vec2{X: 0, Y: 0}, Radius: 100}
	obstacles := []Obstacle{
		{ID: 0, Shape: Rect{Left: 50, Top: 0, Right: -50, Bottom: 10}}, // left > right
		{ID: 1, Shape: Rect{Left: -10, Top: 20, Right: 10, Bottom: 5}}, // top > bottom
	}

	contacts, err := Detect(body, obstacles)
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}
	if len(contacts) != 0 {
		t.Errorf("Detect() = %d contacts from malformed rects, expected none", len(contacts))
	}
}

func TestDetectOrdering(t *testing.T) {
	// Deeper penetration means earlier impact under discrete stepping, so
	// the deeper contact must come first regardless of snapshot order.
	body := Body{Pos: Vec2{X: 0, Y: 0}, Radius: 5}
	shallow := Rect{Left: 4, Top: -1, Right: 10, Bottom: 1} // dist 4, depth 1
	deep := Rect{Left: -10, Top: 1, Right: 10, Bottom: 10}  // dist 1, depth 4
	obstacles := []Obstacle{{ID: 1, Shape: shallow}, {ID: 2, Shape: deep}}

	contacts, err := Detect(body, obstacles)
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}
	if len(contacts) != 2 {
		t.Fatalf("Detect() = %d contacts, expected 2", len(contacts))
	}
	if contacts[0].ObstacleID != 2 || contacts[1].ObstacleID != 1 {
		t.Errorf("contact order = [%d, %d], expected [2, 1]", contacts[0].ObstacleID, contacts[1].ObstacleID)
	}
}

func TestDetectArcAngularGate(t *testing.T) {
	ps := NewPaddleShape(40, 50, 20, 10, 4)
	// ArcCenter (50, 70), radius 10. Both probes sit exactly on the circle;
	// only the one in the mouth-facing range is an arc contact. The mirrored
	// probe is also away from both legs, so it must produce no contact at all.

	onArc := Body{Pos: Vec2{X: 50, Y: 80}, Radius: 0.5}
	contacts, err := Detect(onArc, []Obstacle{{ID: 0, Shape: ps}})
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}
	if len(contacts) != 1 {
		t.Fatalf("Detect(on arc) = %d contacts, expected 1", len(contacts))
	}

	behind := Body{Pos: Vec2{X: 50, Y: 60}, Radius: 0.5}
	contacts, err = Detect(behind, []Obstacle{{ID: 0, Shape: ps}})
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}
	if len(contacts) != 0 {
		t.Errorf("Detect(same distance, open side) = %d contacts, expected none", len(contacts))
	}
}

func TestDetectArcInnerSurface(t *testing.T) {
	// Ball inside the horseshoe descending toward the arc's inner surface:
	// the normal points back toward the arc center (up), lifting the ball
	// out of the cup.
	ps := NewPaddleShape(40, 50, 20, 10, 4)
	body := Body{Pos: Vec2{X: 50, Y: 76}, Vel: Vec2{X: 0, Y: 2}, Radius: 5}

	contacts, err := Detect(body, []Obstacle{{ID: 0, Shape: ps}})
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}
	if len(contacts) != 1 {
		t.Fatalf("Detect() = %d contacts, expected 1", len(contacts))
	}
	c := contacts[0]
	if !vecAlmostEq(c.Normal, Vec2{X: 0, Y: -1}) {
		t.Errorf("Normal = %v, expected (0, -1)", c.Normal)
	}
	if !almostEq(c.Depth, 1) {
		t.Errorf("Depth = %v, expected 1", c.Depth)
	}
	if !vecAlmostEq(c.Point, Vec2{X: 50, Y: 80}) {
		t.Errorf("Point = %v, expected (50, 80)", c.Point)
	}
}

func TestDetectArcOuterSurface(t *testing.T) {
	// Ball below the paddle touching the arc from outside: outward normal.
	ps := NewPaddleShape(40, 50, 20, 10, 4)
	body := Body{Pos: Vec2{X: 50, Y: 84}, Radius: 5}

	contacts, err := Detect(body, []Obstacle{{ID: 0, Shape: ps}})
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}
	if len(contacts) != 1 {
		t.Fatalf("Detect() = %d contacts, expected 1", len(contacts))
	}
	c := contacts[0]
	if !vecAlmostEq(c.Normal, Vec2{X: 0, Y: 1}) {
		t.Errorf("Normal = %v, expected (0, 1)", c.Normal)
	}
	if !almostEq(c.Depth, 1) {
		t.Errorf("Depth = %v, expected 1", c.Depth)
	}
}

func TestDetectPaddleLegBeatsArc(t *testing.T) {
	// At the seam the leg rectangle owns the contact; the arc is only
	// consulted when neither leg touches.
	ps := NewPaddleShape(40, 50, 20, 10, 4)
	body := Body{Pos: Vec2{X: 44, Y: 78}, Radius: 2}

	contacts, err := Detect(body, []Obstacle{{ID: 0, Shape: ps}})
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}
	if len(contacts) != 1 {
		t.Fatalf("Detect() = %d contacts, expected 1", len(contacts))
	}
	// Center sits on the left leg's inner edge; the inside-rect fallback
	// picks the nearest edge, which is that inner (right) edge.
	if !vecAlmostEq(contacts[0].Normal, Vec2{X: 1, Y: 0}) {
		t.Errorf("Normal = %v, expected (1, 0) from the leg", contacts[0].Normal)
	}
}

func TestDetectPaddleOpenTop(t *testing.T) {
	// A ball dropping through the mouth between the legs touches nothing
	// until it nears the arc.
	ps := NewPaddleShape(40, 50, 20, 10, 4)
	body := Body{Pos: Vec2{X: 50, Y: 55}, Vel: Vec2{X: 0, Y: 3}, Radius: 2}

	contacts, err := Detect(body, []Obstacle{{ID: 0, Shape: ps}})
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}
	if len(contacts) != 0 {
		t.Errorf("Detect(inside mouth) = %d contacts, expected none", len(contacts))
	}
}

func TestDetectFailFast(t *testing.T) {
	obstacles := []Obstacle{{ID: 0, Shape: Rect{Left: 0, Top: 0, Right: 10, Bottom: 10}}}

	tests := []struct {
		name string
		body Body
	}{
		{"negative radius", Body{Pos: Vec2{X: 1, Y: 1}, Radius: -5}},
		{"NaN position", Body{Pos: Vec2{X: math.NaN(), Y: 1}, Radius: 1}},
		{"infinite velocity", Body{Pos: Vec2{X: 1, Y: 1}, Vel: Vec2{X: math.Inf(1), Y: 0}, Radius: 1}},
		{"NaN radius", Body{Pos: Vec2{X: 1, Y: 1}, Radius: math.NaN()}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Detect(tc.body, obstacles)
			if !errors.Is(err, ErrInvalidBody) {
				t.Errorf("Detect() error = %v, expected ErrInvalidBody", err)
			}
		})
	}
}

func TestDetectZeroRadiusBody(t *testing.T) {
	// Zero radius is degenerate but tolerated: a point body only contacts
	// when exactly touching.
	body := Body{Pos: Vec2{X: 5, Y: 0}, Radius: 0}
	rect := Rect{Left: 0, Top: 0, Right: 10, Bottom: 10}

	contacts, err := Detect(body, []Obstacle{{ID: 0, Shape: rect}})
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}
	if len(contacts) != 1 {
		t.Errorf("Detect(point on boundary) = %d contacts, expected 1", len(contacts))
	}
}
