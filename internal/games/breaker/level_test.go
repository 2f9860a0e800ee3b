package breaker

import (
	"math/rand"
	"testing"

	"github.com/rayraychen2011/tui-breaker/internal/physics"
)

func testField() physics.Rect {
	return physics.Rect{Left: 0, Top: 2, Right: 80, Bottom: 48}
}

func TestNewLevelLayout(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	lvl := NewLevel(5, 10, 1, 5, testField(), 4, 2, rng)

	if len(lvl.Bricks) != 50 {
		t.Fatalf("brick count = %d, expected 50", len(lvl.Bricks))
	}

	// 10 bricks of width 7 plus 9 gaps = 79 columns, centered in 80
	b0 := lvl.Bricks[0]
	if b0.ID != 0 || b0.Row != 0 || b0.Col != 0 {
		t.Errorf("first brick indexes = (%d, %d, %d), expected (0, 0, 0)", b0.ID, b0.Row, b0.Col)
	}
	if b0.Bounds.Left != 0.5 {
		t.Errorf("first brick Left = %v, expected 0.5", b0.Bounds.Left)
	}
	if b0.Bounds.Top != 6 {
		t.Errorf("first brick Top = %v, expected 6", b0.Bounds.Top)
	}
	if b0.Bounds.Width() != 7 {
		t.Errorf("brick width = %v, expected 7", b0.Bounds.Width())
	}
	if b0.Bounds.Height() != 2 {
		t.Errorf("brick height = %v, expected 2", b0.Bounds.Height())
	}

	// Row-major ids map back to rows and columns
	for i, b := range lvl.Bricks {
		if b.ID != i {
			t.Fatalf("brick %d has ID %d", i, b.ID)
		}
		if b.Row != i/10 || b.Col != i%10 {
			t.Fatalf("brick %d has Row/Col (%d, %d), expected (%d, %d)", i, b.Row, b.Col, i/10, i%10)
		}
	}

	// Second row sits one brick height below the first
	b11 := lvl.Bricks[11]
	if b11.Bounds.Top != 8 {
		t.Errorf("row 1 Top = %v, expected 8", b11.Bounds.Top)
	}
	if b11.Bounds.Left != 8.5 {
		t.Errorf("brick (1,1) Left = %v, expected 8.5", b11.Bounds.Left)
	}

	specials := 0
	for _, b := range lvl.Bricks {
		if b.Special {
			specials++
		}
	}
	if specials != 5 {
		t.Errorf("special count = %d, expected 5", specials)
	}
}

func TestNewLevelSpecialCountCapped(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	lvl := NewLevel(2, 3, 1, 100, testField(), 4, 2, rng)

	specials := 0
	for _, b := range lvl.Bricks {
		if b.Special {
			specials++
		}
	}
	if specials != 6 {
		t.Errorf("special count = %d, expected all 6", specials)
	}
}

func TestLevelRemaining(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	lvl := NewLevel(5, 10, 1, 5, testField(), 4, 2, rng)

	if lvl.Remaining() != 50 {
		t.Errorf("Remaining = %d, expected 50", lvl.Remaining())
	}

	lvl.Bricks[0].Hit = true
	lvl.Bricks[7].Hit = true
	lvl.Bricks[49].Hit = true
	if lvl.Remaining() != 47 {
		t.Errorf("Remaining after 3 hits = %d, expected 47", lvl.Remaining())
	}
}

func TestClearBurstInterior(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	lvl := NewLevel(5, 10, 1, 0, testField(), 4, 2, rng)

	// Brick 11 is (row 1, col 1): its full 3x3 neighborhood exists
	lvl.Bricks[11].Hit = true
	cleared := lvl.ClearBurst(11)

	if len(cleared) != 8 {
		t.Fatalf("cleared %d bricks, expected 8: %v", len(cleared), cleared)
	}
	want := map[int]bool{0: true, 1: true, 2: true, 10: true, 12: true, 20: true, 21: true, 22: true}
	for _, id := range cleared {
		if !want[id] {
			t.Errorf("unexpected cleared id %d", id)
		}
		if !lvl.Bricks[id].Hit {
			t.Errorf("brick %d in cleared list but not marked hit", id)
		}
	}
	if lvl.Remaining() != 50-9 {
		t.Errorf("Remaining = %d, expected 41", lvl.Remaining())
	}
}

func TestClearBurstCorner(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	lvl := NewLevel(5, 10, 1, 0, testField(), 4, 2, rng)

	// Top-left corner clips the neighborhood to 2x2
	lvl.Bricks[0].Hit = true
	cleared := lvl.ClearBurst(0)

	if len(cleared) != 3 {
		t.Fatalf("cleared %d bricks, expected 3: %v", len(cleared), cleared)
	}
	want := map[int]bool{1: true, 10: true, 11: true}
	for _, id := range cleared {
		if !want[id] {
			t.Errorf("unexpected cleared id %d", id)
		}
	}
}

func TestClearBurstSkipsAlreadyHit(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	lvl := NewLevel(5, 10, 1, 0, testField(), 4, 2, rng)

	lvl.Bricks[1].Hit = true
	lvl.Bricks[0].Hit = true
	cleared := lvl.ClearBurst(0)

	if len(cleared) != 2 {
		t.Fatalf("cleared %d bricks, expected 2: %v", len(cleared), cleared)
	}
	for _, id := range cleared {
		if id == 1 {
			t.Error("already-hit brick 1 should not be in the cleared list")
		}
	}
}

func TestClearBurstOutOfRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	lvl := NewLevel(5, 10, 1, 0, testField(), 4, 2, rng)

	if cleared := lvl.ClearBurst(-1); cleared != nil {
		t.Errorf("ClearBurst(-1) = %v, expected nil", cleared)
	}
	if cleared := lvl.ClearBurst(50); cleared != nil {
		t.Errorf("ClearBurst(50) = %v, expected nil", cleared)
	}
}

func TestLevelObstacles(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	lvl := NewLevel(5, 10, 1, 5, testField(), 4, 2, rng)

	obs := lvl.Obstacles()
	if len(obs) != 50 {
		t.Fatalf("obstacle count = %d, expected 50", len(obs))
	}
	for i, o := range obs {
		if o.ID != i {
			t.Fatalf("obstacle %d has id %d", i, o.ID)
		}
		if _, ok := o.Shape.(physics.Rect); !ok {
			t.Fatalf("obstacle %d is %T, expected physics.Rect", i, o.Shape)
		}
	}

	lvl.Bricks[5].Hit = true
	obs = lvl.Obstacles()
	if len(obs) != 49 {
		t.Errorf("obstacle count after hit = %d, expected 49", len(obs))
	}
	for _, o := range obs {
		if o.ID == 5 {
			t.Error("hit brick 5 should not appear as an obstacle")
		}
	}
}

func TestLevelBrickLookup(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	lvl := NewLevel(5, 10, 1, 0, testField(), 4, 2, rng)

	if b := lvl.Brick(25); b == nil || b.ID != 25 {
		t.Error("Brick(25) should return the brick with ID 25")
	}
	if b := lvl.Brick(-1); b != nil {
		t.Error("Brick(-1) should return nil")
	}
	if b := lvl.Brick(50); b != nil {
		t.Error("Brick(50) should return nil")
	}
}
