package fluxfov

import "testing"

func collectMarch(limitX, targetX, targetY int) []cellCoord {
	var path []cellCoord
	marchRay(limitX, targetX, targetY, func(x, y int) {
		path = append(path, cellCoord{x, y})
	})
	return path
}

func TestMarchHorizontal(t *testing.T) {
	path := collectMarch(4, 400, 0)
	if len(path) != 5 {
		t.Fatalf("visited %d points, want 5", len(path))
	}
	for i, p := range path {
		if p.x != i || p.y != 0 {
			t.Errorf("step %d = (%d, %d), want (%d, 0)", i, p.x, p.y, i)
		}
	}
}

func TestMarchDiagonal(t *testing.T) {
	path := collectMarch(4, 400, 400)
	if len(path) != 5 {
		t.Fatalf("visited %d points, want 5", len(path))
	}
	for i, p := range path {
		if p.x != i || p.y != i {
			t.Errorf("step %d = (%d, %d), want (%d, %d)", i, p.x, p.y, i, i)
		}
	}
}

// The error term starts at targetX/2, so a ray at half slope jumps on the
// first and third columns.
func TestMarchMidpointStepping(t *testing.T) {
	expected := []cellCoord{{0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 2}}
	path := collectMarch(4, 4, 2)
	if len(path) != len(expected) {
		t.Fatalf("visited %d points, want %d", len(path), len(expected))
	}
	for i, p := range path {
		if p != expected[i] {
			t.Errorf("step %d = (%d, %d), want (%d, %d)", i, p.x, p.y, expected[i].x, expected[i].y)
		}
	}
}

func TestMarchStaysInOctant(t *testing.T) {
	lastY := 0
	marchRay(50, 500, 333, func(x, y int) {
		if y > x {
			t.Errorf("point (%d, %d) left the octant", x, y)
		}
		if y < lastY || y > lastY+1 {
			t.Errorf("y went from %d to %d at x=%d", lastY, y, x)
		}
		lastY = y
	})
}

func TestMarchRejectsSteepTarget(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for target above the diagonal")
		}
	}()
	marchRay(4, 3, 5, func(_, _ int) {})
}
