package game

import (
	"math"
	"testing"
)

var corridorGrid = []string{
	"XXXXXXX",
	"X     X",
	"XXXXXXX",
}

var crossGrid = []string{
	"XXXXX",
	"XX XX",
	"X   X",
	"XX XX",
	"XXXXX",
}

func TestEntity_StartsAtCenter(t *testing.T) {
	m := MustParseMaze(corridorGrid)
	e := newEntity(m, Cell{1, 1}, 60)
	if !e.AtCenter() {
		t.Fatal("a freshly placed entity must be at its cell center")
	}
	x, y := e.Pos()
	if x != 1*TileSize+TileSize/2 || y != 1*TileSize+TileSize/2 {
		t.Fatalf("start position (%v,%v) is not the tile center", x, y)
	}
}

func TestEntity_AdvanceNoopWithoutDirection(t *testing.T) {
	m := MustParseMaze(corridorGrid)
	e := newEntity(m, Cell{1, 1}, 60)
	x0, y0 := e.Pos()
	e.Advance(1.0)
	if x, y := e.Pos(); x != x0 || y != y0 {
		t.Fatal("zero direction must not move the entity")
	}
}

func TestEntity_FullTileLandsOnCenter(t *testing.T) {
	// 60 px/s at 1/60s ticks = 1px per tick. Over four tiles of travel the
	// position must stay exactly on the lane axis and finish exactly on the
	// destination center, not accumulate drift.
	m := MustParseMaze(corridorGrid)
	e := newEntity(m, Cell{1, 1}, 60)
	e.dir = DirRight

	_, wantY := CellCenter(Cell{1, 1})
	for i := 0; i < 8*TileSize && e.Cell() != (Cell{5, 1}); i++ {
		e.Advance(1.0 / 60.0)
		if _, y := e.Pos(); y != wantY {
			t.Fatalf("tick %d: off-axis drift, y=%v want %v", i, y, wantY)
		}
	}
	if e.Cell() != (Cell{5, 1}) {
		t.Fatalf("entity in cell %v, want (5,1)", e.Cell())
	}
	wantX, _ := CellCenter(Cell{5, 1})
	if x, _ := e.Pos(); math.Abs(x-wantX) >= centerEpsilon {
		t.Fatalf("x on arrival = %v, want the exact center %v", x, wantX)
	}
}

func TestEntity_WallRejectionStopsDead(t *testing.T) {
	m := MustParseMaze(corridorGrid)
	e := newEntity(m, Cell{5, 1}, 60)
	e.dir = DirRight

	for i := 0; i < 60; i++ {
		e.Advance(1.0 / 60.0)
	}
	if e.Cell() != (Cell{5, 1}) {
		t.Fatalf("entity pushed into wall cell %v", e.Cell())
	}
	if !e.Dir().IsZero() {
		t.Fatalf("direction after wall hit = %v, want zero", e.Dir())
	}
}

func TestEntity_AxisLockInsideCell(t *testing.T) {
	m := MustParseMaze(corridorGrid)
	e := newEntity(m, Cell{2, 1}, 60)
	e.dir = DirRight
	e.y += 0.3 // simulated drift off the lane

	e.Advance(1.0 / 60.0)
	_, wantY := CellCenter(Cell{2, 1})
	if _, y := e.Pos(); y != wantY {
		t.Fatalf("axis lock failed: y=%v want %v", y, wantY)
	}
}

func TestEntity_AtCenterEpsilon(t *testing.T) {
	m := MustParseMaze(corridorGrid)
	e := newEntity(m, Cell{2, 1}, 60)
	e.x += 0.4
	if !e.AtCenter() {
		t.Fatal("0.4px from center must count as centered")
	}
	e.x += 0.2
	if e.AtCenter() {
		t.Fatal("0.6px from center must not count as centered")
	}
}

func TestEntity_WrapMovesToOppositeColumn(t *testing.T) {
	// Single open row: stepping left out of column 0 must continue on the
	// rightmost column, exactly on its center (grid wrap and continuous wrap
	// agree).
	m := MustParseMaze([]string{"     "})
	e := newEntity(m, Cell{0, 0}, TileSize)
	e.dir = DirLeft

	e.Advance(1.0) // one full tile of travel
	if e.Cell() != (Cell{4, 0}) {
		t.Fatalf("wrapped into cell %v, want (4,0)", e.Cell())
	}
	wantX, wantY := CellCenter(Cell{4, 0})
	if x, y := e.Pos(); x != wantX || y != wantY {
		t.Fatalf("wrapped position (%v,%v), want the center (%v,%v)", x, y, wantX, wantY)
	}
	if e.Dir() != DirLeft {
		t.Fatal("wrap must not clear the travel direction")
	}
}

func TestEntity_AvailableDirections_FixedOrder(t *testing.T) {
	m := MustParseMaze(crossGrid)
	e := newEntity(m, Cell{2, 2}, 60)

	got := e.AvailableDirections()
	want := []Direction{DirUp, DirDown, DirLeft, DirRight}
	if len(got) != len(want) {
		t.Fatalf("got %d directions, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("direction %d = %v, want %v (order must be up, down, left, right)", i, got[i], want[i])
		}
	}
}

func TestEntity_AvailableDirections_ExcludesReverseWhileMoving(t *testing.T) {
	m := MustParseMaze(crossGrid)
	e := newEntity(m, Cell{2, 2}, 60)
	e.dir = DirRight

	for _, d := range e.AvailableDirections() {
		if d == DirLeft {
			t.Fatal("reverse direction offered while moving")
		}
	}

	// At a full stop the reverse is allowed again.
	e.dir = DirNone
	found := false
	for _, d := range e.AvailableDirections() {
		if d == DirLeft {
			found = true
		}
	}
	if !found {
		t.Fatal("reverse direction missing at a full stop")
	}
}

func TestEntity_AvailableDirections_WallsExcluded(t *testing.T) {
	m := MustParseMaze(corridorGrid)
	e := newEntity(m, Cell{1, 1}, 60)

	got := e.AvailableDirections()
	if len(got) != 1 || got[0] != DirRight {
		t.Fatalf("got %v, want only right", got)
	}
}

func TestEntity_MoveToRests(t *testing.T) {
	m := MustParseMaze(corridorGrid)
	e := newEntity(m, Cell{1, 1}, 60)
	e.dir = DirRight
	e.Advance(0.1)

	e.MoveTo(Cell{3, 1})
	if e.Cell() != (Cell{3, 1}) || !e.AtCenter() || !e.Dir().IsZero() {
		t.Fatal("MoveTo must leave the entity at rest on the target center")
	}
}
