package physics

import "sort"

// Contact describes one detected intersection between the body and an
// obstacle. Records are transient query output and are never persisted.
type Contact struct {
	ObstacleID int
	Point      Vec2    // Contact point on the obstacle boundary
	Normal     Vec2    // Unit normal pointing from the obstacle toward the body center
	Depth      float64 // Penetration depth along the normal
}

// Detect runs one discrete collision query of the body against an obstacle
// snapshot and returns the contacts ordered nearest first (deepest
// penetration first, which under discrete stepping is the earliest impact).
// An empty result is not an error. Malformed rectangles are skipped.
//
// Detection is positional, not swept: callers keep tunneling acceptably rare
// by choosing a step size no larger than body.Radius divided by the maximum
// speed in play.
func Detect(b Body, obstacles []Obstacle) ([]Contact, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	var contacts []Contact
	for _, o := range obstacles {
		switch s := o.Shape.(type) {
		case Rect:
			if c, ok := rectContact(b, s); ok {
				c.ObstacleID = o.ID
				contacts = append(contacts, c)
			}
		case PaddleShape:
			if c, ok := paddleContact(b, s); ok {
				c.ObstacleID = o.ID
				contacts = append(contacts, c)
			}
		}
	}
	// Stable keeps snapshot order for equal depths, which keeps corner hits
	// deterministic.
	sort.SliceStable(contacts, func(i, j int) bool {
		return contacts[i].Depth > contacts[j].Depth
	})
	return contacts, nil
}

// rectContact tests the body against a rectangle: the body touches the
// rectangle when its center is within Radius of the clamped closest point.
// The normal runs from the closest point to the body center; when the center
// lies inside the rectangle (zero-length normal), the axis with the smallest
// overlap decides the push-out direction instead.
func rectContact(b Body, r Rect) (Contact, bool) {
	if !r.Valid() {
		return Contact{}, false
	}
	closest := r.ClosestPoint(b.Pos)
	delta := b.Pos.Sub(closest)
	dist := delta.Len()
	if dist > b.Radius {
		return Contact{}, false
	}
	if dist > 0 {
		return Contact{
			Point:  closest,
			Normal: delta.Scale(1 / dist),
			Depth:  b.Radius - dist,
		}, true
	}
	return insideRectContact(b, r), true
}

// insideRectContact handles the degenerate case of the body center on or
// inside the rectangle. The contact normal points out of the nearest edge.
func insideRectContact(b Body, r Rect) Contact {
	overlaps := [4]float64{
		b.Pos.X - r.Left,   // out through the left edge
		r.Right - b.Pos.X,  // right
		b.Pos.Y - r.Top,    // top
		r.Bottom - b.Pos.Y, // bottom
	}
	normals := [4]Vec2{
		{X: -1, Y: 0},
		{X: 1, Y: 0},
		{X: 0, Y: -1},
		{X: 0, Y: 1},
	}
	points := [4]Vec2{
		{X: r.Left, Y: b.Pos.Y},
		{X: r.Right, Y: b.Pos.Y},
		{X: b.Pos.X, Y: r.Top},
		{X: b.Pos.X, Y: r.Bottom},
	}
	min := 0
	for i := 1; i < 4; i++ {
		if overlaps[i] < overlaps[min] {
			min = i
		}
	}
	return Contact{
		Point:  points[min],
		Normal: normals[min],
		Depth:  b.Radius + overlaps[min],
	}
}

// paddleContact tests the horseshoe: both legs as rectangles first, then the
// arc. A leg hit wins over an arc hit at the seam, and the arc only counts
// when the body center is within Radius of the circular boundary (inside or
// outside) and inside the arc's angular sweep. The angular gate is what
// keeps the paddle's open top side permeable.
func paddleContact(b Body, ps PaddleShape) (Contact, bool) {
	var best Contact
	found := false
	for _, leg := range [2]Rect{ps.LeftLeg, ps.RightLeg} {
		if c, ok := rectContact(b, leg); ok && (!found || c.Depth > best.Depth) {
			best = c
			found = true
		}
	}
	if found {
		return best, true
	}
	return arcContact(b, ps)
}

// arcContact tests the semicircular boundary. Contact requires the distance
// from the body center to the arc center to be within Radius of ArcRadius
// and the center to sit in the mouth-facing angular range. The normal points
// from the boundary toward the body center: outward for hits on the arc's
// underside, toward the arc center for hits on the inner surface.
func arcContact(b Body, ps PaddleShape) (Contact, bool) {
	delta := b.Pos.Sub(ps.ArcCenter)
	dist := delta.Len()
	if dist == 0 {
		// Center coincides with the arc center: only a contact when the
		// annulus reaches it, and direction is undefined. The fallback
		// normal points straight up so the resolver stays NaN-free.
		if ps.ArcRadius > b.Radius {
			return Contact{}, false
		}
		return Contact{
			Point:  ps.ArcCenter,
			Normal: fallbackNormal,
			Depth:  b.Radius - ps.ArcRadius,
		}, true
	}
	gap := dist - ps.ArcRadius
	if gap > b.Radius || gap < -b.Radius {
		return Contact{}, false
	}
	if !ps.ArcContains(b.Pos) {
		return Contact{}, false
	}
	onArc := ps.ArcCenter.Add(delta.Scale(ps.ArcRadius / dist))
	normal := b.Pos.Sub(onArc)
	if normal.IsZero() {
		// Center exactly on the boundary.
		normal = delta.Scale(1 / dist)
	} else {
		normal = normal.Normalize()
	}
	depth := b.Radius - gap
	if gap < 0 {
		depth = b.Radius + gap
	}
	return Contact{Point: onArc, Normal: normal, Depth: depth}, true
}
