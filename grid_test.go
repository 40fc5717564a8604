package astar

import (
	"errors"
	"testing"
)

func newTestGrid(t *testing.T, w, h int) *Grid {
	t.Helper()
	g, err := NewGrid(w, h)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d): %v", w, h, err)
	}
	return g
}

func TestNewGridDimensions(t *testing.T) {
	for _, c := range []struct{ w, h int }{{0, 5}, {5, 0}, {-1, 3}, {MaxGridSize + 1, 1}} {
		if _, err := NewGrid(c.w, c.h); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("NewGrid(%d, %d): got %v, want ErrInvalidDimensions", c.w, c.h, err)
		}
	}
	g := newTestGrid(t, 3, 2)
	if g.Width() != 3 || g.Height() != 2 {
		t.Errorf("size = %dx%d, want 3x2", g.Width(), g.Height())
	}
}

func TestGridWalkability(t *testing.T) {
	g := newTestGrid(t, 4, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if !g.IsWalkable(x, y) {
				t.Fatalf("new grid cell (%d,%d) blocked", x, y)
			}
			if g.Info(x, y) != 0 {
				t.Fatalf("new grid cell (%d,%d) info = %#x", x, y, g.Info(x, y))
			}
		}
	}
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}} {
		if g.IsWalkable(p[0], p[1]) {
			t.Errorf("out-of-bounds %v reported walkable", p)
		}
	}

	g.SetWalkable(2, 1, false)
	if g.IsWalkable(2, 1) || !IsUnwalkable(g.Info(2, 1)) {
		t.Error("blocked cell still walkable")
	}
	g.SetWalkable(2, 1, true)
	if !g.IsWalkable(2, 1) || g.Info(2, 1) != 0 {
		t.Error("unblocked cell not restored")
	}

	// Ignored, must not panic.
	g.SetWalkable(10, 10, false)
	g.SetWalkable(-1, 0, false)
}

func TestGridSearchState(t *testing.T) {
	g := newTestGrid(t, 4, 4)
	g.SetWalkable(0, 0, false)

	if !IsNullNode(g.Info(1, 1)) || OpenNodeIdx(g.Info(1, 1)) != -1 {
		t.Fatal("untouched cell not null")
	}

	g.OpenNodeIdxUpdate(1, 1, 5)
	if got := OpenNodeIdx(g.Info(1, 1)); got != 4 {
		t.Errorf("OpenNodeIdx = %d, want 4", got)
	}
	g.NodeParentDirectionUpdate(1, 1, DirLeftDown)
	if got := g.NodeParentDirection(1, 1); got != DirLeftDown {
		t.Errorf("NodeParentDirection = %v, want %v", got, DirLeftDown)
	}
	if got := OpenNodeIdx(g.Info(1, 1)); got != 4 {
		t.Errorf("direction update clobbered the open index: %d", got)
	}
	if IsNullNode(g.Info(1, 1)) || g.IsClean() {
		t.Error("open cell reported clean")
	}

	g.NodeClosed(1, 1)
	info := g.Info(1, 1)
	if !IsClosedNode(info) || OpenNodeIdx(info) != -1 {
		t.Errorf("closed cell info %#x", info)
	}
	if g.NodeParentDirection(1, 1) != DirLeftDown {
		t.Error("closing lost the parent direction")
	}

	g.NodeParentDirectionUpdate(0, 0, DirUp)
	g.Clear()
	if !g.IsClean() {
		t.Fatal("Clear left search state")
	}
	if g.IsWalkable(0, 0) {
		t.Error("Clear dropped a wall")
	}
	if g.Info(1, 1) != 0 {
		t.Errorf("cleared cell info %#x", g.Info(1, 1))
	}
}

func TestGridOpenIndexRange(t *testing.T) {
	g := newTestGrid(t, 1, 1)
	g.OpenNodeIdxUpdate(0, 0, MaxOpenNodeSize)
	if got := OpenNodeIdx(g.Info(0, 0)); got != MaxOpenNodeSize-1 {
		t.Errorf("OpenNodeIdx = %d, want %d", got, MaxOpenNodeSize-1)
	}
	g.OpenNodeIdxUpdate(0, 0, 0)
	if !IsNullNode(g.Info(0, 0)) {
		t.Error("zero index did not clear the cell")
	}
}

func TestGridClone(t *testing.T) {
	g := newTestGrid(t, 3, 3)
	g.SetWalkable(1, 1, false)
	g.NodeClosed(0, 0)

	c := g.Clone()
	if c.IsWalkable(1, 1) {
		t.Error("clone lost a wall")
	}
	if !c.IsClean() {
		t.Error("clone copied search state")
	}
	c.SetWalkable(2, 2, false)
	if !g.IsWalkable(2, 2) {
		t.Error("clone shares storage with the original")
	}
}

func TestDirectionOffsets(t *testing.T) {
	for d := DirUp; d < dirCount; d++ {
		dx, dy := d.Offset()
		if dx == 0 && dy == 0 {
			t.Errorf("%v has no offset", d)
		}
		if d.Diagonal() != (dx != 0 && dy != 0) {
			t.Errorf("%v Diagonal() = %v", d, d.Diagonal())
		}
	}
	if dx, dy := DirNone.Offset(); dx != 0 || dy != 0 {
		t.Error("DirNone moves")
	}
	if dx, dy := DirUp.Offset(); dx != 0 || dy != 1 {
		t.Errorf("DirUp offset = (%d,%d)", dx, dy)
	}
	if got := Direction(42).String(); got != "Direction(42)" {
		t.Errorf("String() = %q", got)
	}
}
