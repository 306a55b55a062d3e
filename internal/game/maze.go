package game

import "fmt"

// Marker identifies what occupies a maze cell.
type Marker uint8

const (
	MarkerOpen Marker = iota
	MarkerWall
	MarkerPellet
	MarkerPowerPellet
)

func (m Marker) String() string {
	switch m {
	case MarkerOpen:
		return "open"
	case MarkerWall:
		return "wall"
	case MarkerPellet:
		return "pellet"
	case MarkerPowerPellet:
		return "power-pellet"
	default:
		return "unknown"
	}
}

// Cell is a discrete maze coordinate (column, row).
type Cell struct {
	Col int
	Row int
}

// Direction is a unit grid step, or the zero value for "not moving".
type Direction struct {
	DX int
	DY int
}

var (
	DirNone  = Direction{0, 0}
	DirUp    = Direction{0, -1}
	DirDown  = Direction{0, 1}
	DirLeft  = Direction{-1, 0}
	DirRight = Direction{1, 0}
)

// cardinalDirs is the fixed enumeration order used everywhere a direction
// choice must be deterministic: up, down, left, right.
var cardinalDirs = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

func (d Direction) IsZero() bool { return d.DX == 0 && d.DY == 0 }

// Reversed returns the opposite direction.
func (d Direction) Reversed() Direction { return Direction{-d.DX, -d.DY} }

// Offset returns the cell one step away in d. No wrap adjustment.
func (c Cell) Offset(d Direction) Cell { return Cell{c.Col + d.DX, c.Row + d.DY} }

// DefaultBlueprint is the classic 28x31 layout. 'X' = wall, '.' = pellet,
// 'o' = power pellet, ' ' and 'G' (ghost house) = open floor.
var DefaultBlueprint = []string{
	"XXXXXXXXXXXXXXXXXXXXXXXXXXXX",
	"X............XX............X",
	"X.XXXX.XXXXX.XX.XXXXX.XXXX.X",
	"XoXXXX.XXXXX.XX.XXXXX.XXXXoX",
	"X.XXXX.XXXXX.XX.XXXXX.XXXX.X",
	"X..........................X",
	"X.XXXX.XX.XXXXXXXX.XX.XXXX.X",
	"X.XXXX.XX.XXXXXXXX.XX.XXXX.X",
	"X......XX....XX....XX......X",
	"XXXXXX.XXXXX XX XXXXX.XXXXXX",
	"     X.XXXXX XX XXXXX.X     ",
	"     X.XX          XX.X     ",
	"     X.XX XXX  XXX XX.X     ",
	"XXXXXX.XX XGGGGGGX XX.XXXXXX",
	"      .   XGGGGGGX   .      ",
	"XXXXXX.XX XXXXXXXX XX.XXXXXX",
	"     X.XX          XX.X     ",
	"     X.XX XXXXXXXX XX.X     ",
	"XXXXXX.XX XXXXXXXX XX.XXXXXX",
	"X............XX............X",
	"X.XXXX.XXXXX.XX.XXXXX.XXXX.X",
	"X.XXXX.XXXXX.XX.XXXXX.XXXX.X",
	"Xo..XX.......  .......XX..oX",
	"XXX.XX.XX.XX    XX.XX.XX.XXX",
	"XXX.XX.XX.XXXXXXXX.XX.XX.XXX",
	"X......XX....XX....XX......X",
	"X.XXXXXXXXXX.XX.XXXXXXXXXX.X",
	"X.XXXXXXXXXX.XX.XXXXXXXXXX.X",
	"X..........................X",
	"XXXXXXXXXXXXXXXXXXXXXXXXXXXX",
}

// Maze is the authoritative per-cell board state. It is owned by the session;
// the only mutation after construction is Consume (and ResetPellets for a
// fresh board). Rows are stored row-major: index = row*cols + col.
type Maze struct {
	cols  int
	rows  int
	cells []Marker
	fresh []Marker // markers as parsed, for ResetPellets
}

// ParseMaze builds a maze from blueprint text, one string per row.
func ParseMaze(blueprint []string) (*Maze, error) {
	if len(blueprint) == 0 {
		return nil, fmt.Errorf("maze: empty blueprint")
	}
	cols := len(blueprint[0])
	rows := len(blueprint)
	cells := make([]Marker, 0, cols*rows)
	for r, line := range blueprint {
		if len(line) != cols {
			return nil, fmt.Errorf("maze: row %d is %d chars, want %d", r, len(line), cols)
		}
		for _, ch := range line {
			switch ch {
			case 'X':
				cells = append(cells, MarkerWall)
			case '.':
				cells = append(cells, MarkerPellet)
			case 'o':
				cells = append(cells, MarkerPowerPellet)
			case ' ', 'G':
				cells = append(cells, MarkerOpen)
			default:
				return nil, fmt.Errorf("maze: row %d: unknown marker %q", r, ch)
			}
		}
	}
	m := &Maze{cols: cols, rows: rows, cells: cells}
	m.fresh = append([]Marker(nil), cells...)
	return m, nil
}

// MustParseMaze parses or panics. For the built-in blueprint and tests.
func MustParseMaze(blueprint []string) *Maze {
	m, err := ParseMaze(blueprint)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Maze) Width() int  { return m.cols }
func (m *Maze) Height() int { return m.rows }

func (m *Maze) inBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < m.cols && c.Row >= 0 && c.Row < m.rows
}

// At returns the marker at c. Out-of-bounds cells read as walls.
func (m *Maze) At(c Cell) Marker {
	if !m.inBounds(c) {
		return MarkerWall
	}
	return m.cells[c.Row*m.cols+c.Col]
}

// IsWall reports whether c blocks movement.
func (m *Maze) IsWall(c Cell) bool { return m.At(c) == MarkerWall }

// Traversable reports whether an agent may occupy c.
func (m *Maze) Traversable(c Cell) bool { return m.inBounds(c) && !m.IsWall(c) }

// Wrap adjusts an out-of-range column to the opposite edge. Columns wrap,
// rows never do: vertical moves off the board stay invalid.
func (m *Maze) Wrap(c Cell) Cell {
	if c.Col < 0 {
		c.Col = m.cols - 1
	} else if c.Col >= m.cols {
		c.Col = 0
	}
	return c
}

// Consume removes a pellet or power pellet at c and returns the marker that
// was there before. Open and wall cells are left untouched.
func (m *Maze) Consume(c Cell) Marker {
	prev := m.At(c)
	if prev == MarkerPellet || prev == MarkerPowerPellet {
		m.cells[c.Row*m.cols+c.Col] = MarkerOpen
	}
	return prev
}

// Pellets returns every remaining collectible cell in row-major order.
func (m *Maze) Pellets() []Cell {
	var out []Cell
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			mk := m.cells[r*m.cols+c]
			if mk == MarkerPellet || mk == MarkerPowerPellet {
				out = append(out, Cell{c, r})
			}
		}
	}
	return out
}

// PelletCount returns the number of remaining collectibles.
func (m *Maze) PelletCount() int {
	n := 0
	for _, mk := range m.cells {
		if mk == MarkerPellet || mk == MarkerPowerPellet {
			n++
		}
	}
	return n
}

// ResetPellets restores the board to its freshly parsed state.
func (m *Maze) ResetPellets() {
	copy(m.cells, m.fresh)
}
