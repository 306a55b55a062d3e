package game

import "math"

// TileSize is the pixel size of one maze cell.
const TileSize = 24

// centerEpsilon is how close (in pixels, per axis) a position must be to the
// tile center to count as "at rest" there. Direction changes and route
// decisions only take effect at centers.
const centerEpsilon = 0.5

// CellCenter returns the pixel-space center of a cell.
func CellCenter(c Cell) (float64, float64) {
	return float64(c.Col)*TileSize + TileSize/2, float64(c.Row)*TileSize + TileSize/2
}

// pixelCell returns the cell containing a pixel position. Floor division so
// positions just past the left edge map to negative columns (which Wrap then
// sends to the far side).
func pixelCell(x, y float64) Cell {
	return Cell{
		Col: int(math.Floor(x / TileSize)),
		Row: int(math.Floor(y / TileSize)),
	}
}

// Entity is an agent on the board: a logical cell plus a continuous pixel
// position that interpolates between cell centers. Whenever the entity is at
// rest the pixel position is exactly the cell center.
type Entity struct {
	maze  *Maze
	cell  Cell
	x, y  float64
	dir   Direction
	speed float64 // pixels per second
}

func newEntity(m *Maze, start Cell, speed float64) Entity {
	x, y := CellCenter(start)
	return Entity{maze: m, cell: start, x: x, y: y, speed: speed}
}

func (e *Entity) Cell() Cell                { return e.cell }
func (e *Entity) Pos() (float64, float64)   { return e.x, e.y }
func (e *Entity) Dir() Direction            { return e.dir }
func (e *Entity) Speed() float64            { return e.speed }
func (e *Entity) SetSpeed(pxPerSec float64) { e.speed = pxPerSec }

// MoveTo places the entity at rest on a cell center with no direction.
// Used by session resets.
func (e *Entity) MoveTo(c Cell) {
	e.cell = c
	e.x, e.y = CellCenter(c)
	e.dir = DirNone
}

// AtCenter reports whether the entity is within centerEpsilon of its cell's
// center on both axes.
func (e *Entity) AtCenter() bool {
	cx, cy := CellCenter(e.cell)
	return math.Abs(e.x-cx) < centerEpsilon && math.Abs(e.y-cy) < centerEpsilon
}

// Advance integrates the entity's position over dt. Moves into walls are
// rejected in full: position and cell revert and the direction zeroes, so an
// agent stops dead at a junction instead of clipping. On a cell change or a
// wrap the position snaps to the new center, killing accumulated float
// drift; within a cell the idle axis is locked to the lane center.
func (e *Entity) Advance(dt float64) {
	if e.dir.IsZero() {
		return
	}

	prevX, prevY := e.x, e.y
	prevCell := e.cell
	e.x += float64(e.dir.DX) * e.speed * dt
	e.y += float64(e.dir.DY) * e.speed * dt

	// Continuous-space wrap: a full tile past either horizontal bound
	// teleports to the opposite bound. The cell derivation below applies the
	// matching grid wrap, so both wrap notions stay consistent.
	screenW := float64(e.maze.Width()) * TileSize
	wrapped := false
	if e.x < -TileSize {
		e.x = screenW + TileSize
		wrapped = true
	} else if e.x > screenW+TileSize {
		e.x = -TileSize
		wrapped = true
	}

	next := e.maze.Wrap(pixelCell(e.x, e.y))
	if !wrapped && !e.maze.Traversable(next) {
		e.x, e.y = prevX, prevY
		e.cell = prevCell
		e.dir = DirNone
		return
	}

	e.cell = next
	if wrapped || next != prevCell {
		e.x, e.y = CellCenter(next)
		return
	}
	// Axis lock: snap the coordinate we are not moving along back to the
	// lane center so long straight runs cannot drift sideways.
	cx, cy := CellCenter(e.cell)
	if e.dir.DX == 0 {
		e.x = cx
	}
	if e.dir.DY == 0 {
		e.y = cy
	}
}

// AvailableDirections returns the cardinal steps whose wrap-adjusted target
// cell is traversable, in the fixed order up, down, left, right. While the
// entity is moving the immediate reverse is excluded so it cannot oscillate
// in place; at a full stop every open direction qualifies.
func (e *Entity) AvailableDirections() []Direction {
	var out []Direction
	moving := !e.dir.IsZero()
	back := e.maze.Wrap(e.cell.Offset(e.dir.Reversed()))
	for _, d := range cardinalDirs {
		next := e.maze.Wrap(e.cell.Offset(d))
		if !e.maze.Traversable(next) {
			continue
		}
		if moving && next == back {
			continue
		}
		out = append(out, d)
	}
	return out
}
