package game

import "testing"

func TestParseMaze_Markers(t *testing.T) {
	m := MustParseMaze([]string{
		"X.o",
		" GX",
	})
	cases := []struct {
		cell Cell
		want Marker
	}{
		{Cell{0, 0}, MarkerWall},
		{Cell{1, 0}, MarkerPellet},
		{Cell{2, 0}, MarkerPowerPellet},
		{Cell{0, 1}, MarkerOpen},
		{Cell{1, 1}, MarkerOpen}, // ghost-house marker reads as floor
		{Cell{2, 1}, MarkerWall},
	}
	for _, tc := range cases {
		if got := m.At(tc.cell); got != tc.want {
			t.Fatalf("At(%v) = %v, want %v", tc.cell, got, tc.want)
		}
	}
}

func TestParseMaze_RejectsRaggedRows(t *testing.T) {
	if _, err := ParseMaze([]string{"XX", "X"}); err == nil {
		t.Fatal("expected an error for ragged rows")
	}
}

func TestParseMaze_RejectsUnknownMarker(t *testing.T) {
	if _, err := ParseMaze([]string{"X?"}); err == nil {
		t.Fatal("expected an error for an unknown marker")
	}
}

func TestMaze_OutOfBoundsReadsAsWall(t *testing.T) {
	m := MustParseMaze(openGrid5)
	if !m.IsWall(Cell{0, -1}) || !m.IsWall(Cell{0, 5}) {
		t.Fatal("vertical out-of-bounds cells must read as walls")
	}
	if m.Traversable(Cell{-1, 0}) {
		t.Fatal("unwrapped out-of-bounds column must not be traversable")
	}
}

func TestMaze_WrapIsHorizontalOnly(t *testing.T) {
	m := MustParseMaze(openGrid5)
	if got := m.Wrap(Cell{-1, 2}); got != (Cell{4, 2}) {
		t.Fatalf("Wrap(-1,2) = %v, want (4,2)", got)
	}
	if got := m.Wrap(Cell{5, 2}); got != (Cell{0, 2}) {
		t.Fatalf("Wrap(5,2) = %v, want (0,2)", got)
	}
	// Rows pass through untouched.
	if got := m.Wrap(Cell{2, -1}); got != (Cell{2, -1}) {
		t.Fatalf("Wrap(2,-1) = %v, want (2,-1)", got)
	}
}

func TestMaze_ConsumeReturnsPrevious(t *testing.T) {
	m := MustParseMaze([]string{".o X"})
	if got := m.Consume(Cell{0, 0}); got != MarkerPellet {
		t.Fatalf("consume pellet returned %v", got)
	}
	if got := m.At(Cell{0, 0}); got != MarkerOpen {
		t.Fatalf("cell after consume = %v, want open", got)
	}
	if got := m.Consume(Cell{0, 0}); got != MarkerOpen {
		t.Fatalf("second consume returned %v, want open", got)
	}
	if got := m.Consume(Cell{1, 0}); got != MarkerPowerPellet {
		t.Fatalf("consume power pellet returned %v", got)
	}
	if got := m.Consume(Cell{3, 0}); got != MarkerWall {
		t.Fatalf("consume wall returned %v, want wall (and no mutation)", got)
	}
	if !m.IsWall(Cell{3, 0}) {
		t.Fatal("wall must survive consume")
	}
}

func TestMaze_PelletsAndReset(t *testing.T) {
	m := MustParseMaze([]string{
		".X.",
		" o ",
	})
	if got := m.PelletCount(); got != 3 {
		t.Fatalf("PelletCount = %d, want 3", got)
	}
	pellets := m.Pellets()
	if len(pellets) != 3 {
		t.Fatalf("Pellets() returned %d cells, want 3", len(pellets))
	}

	m.Consume(Cell{0, 0})
	m.Consume(Cell{1, 1})
	if got := m.PelletCount(); got != 1 {
		t.Fatalf("PelletCount after consuming = %d, want 1", got)
	}

	m.ResetPellets()
	if got := m.PelletCount(); got != 3 {
		t.Fatalf("PelletCount after reset = %d, want 3", got)
	}
	if got := m.At(Cell{1, 1}); got != MarkerPowerPellet {
		t.Fatalf("reset restored %v at (1,1), want power pellet", got)
	}
}

func TestDefaultBlueprint_Parses(t *testing.T) {
	m := MustParseMaze(DefaultBlueprint)
	if m.Width() != 28 || m.Height() != 31 {
		t.Fatalf("default maze is %dx%d, want 28x31", m.Width(), m.Height())
	}
	// Every roster start cell must be open floor.
	for _, r := range ghostRoster {
		if !m.Traversable(r.start) {
			t.Fatalf("ghost start %v is not traversable", r.start)
		}
	}
	if !m.Traversable(playerStart) {
		t.Fatalf("player start %v is not traversable", playerStart)
	}
	if !m.Traversable(ghostRespawn) {
		t.Fatalf("respawn cell %v is not traversable", ghostRespawn)
	}
}
