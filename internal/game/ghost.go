package game

import "image/color"

// GhostMode is the closed set of pursuer states.
type GhostMode int

const (
	GhostScatter GhostMode = iota
	GhostChase
	GhostFrightened
	GhostEaten
)

func (gm GhostMode) String() string {
	switch gm {
	case GhostScatter:
		return "scatter"
	case GhostChase:
		return "chase"
	case GhostFrightened:
		return "frightened"
	case GhostEaten:
		return "eaten"
	default:
		return "unknown"
	}
}

// Ghost is a pursuer agent. Each tick it derives a behaviour and target from
// a world snapshot, paths toward the target, and feeds the first step into
// the movement model.
type Ghost struct {
	Entity
	name      string
	home      Cell // scatter corner targeted by patrol and flee
	respawn   Cell // ghost house cell returned to while eaten
	start     Cell
	mode      GhostMode
	timer     float64 // frightened countdown, meaningful only in GhostFrightened
	behaviour Behaviour
	colour    color.RGBA
}

// NewGhost creates a ghost at start, scattering toward home and respawning
// at respawn when eaten.
func NewGhost(m *Maze, name string, start, home, respawn Cell, colour color.RGBA, speed float64) *Ghost {
	g := &Ghost{
		Entity:  newEntity(m, start, speed),
		name:    name,
		home:    home,
		respawn: respawn,
		start:   start,
		mode:    GhostScatter,
		colour:  colour,
	}
	g.dir = DirLeft
	return g
}

func (g *Ghost) Name() string         { return g.name }
func (g *Ghost) Mode() GhostMode      { return g.mode }
func (g *Ghost) Behaviour() Behaviour { return g.behaviour }
func (g *Ghost) Home() Cell           { return g.home }

// Frighten puts the ghost into the frightened state with a full countdown.
// Eaten ghosts are immune: they are already disembodied eyes heading home.
func (g *Ghost) Frighten(duration float64) {
	if g.mode == GhostEaten {
		return
	}
	g.mode = GhostFrightened
	g.timer = duration
}

// MarkEaten flips a frightened ghost to the eaten state.
func (g *Ghost) MarkEaten() {
	g.mode = GhostEaten
	g.timer = 0
}

// SetMode forces a mode directly. Session resets use this; gameplay
// transitions go through Frighten / MarkEaten / Update.
func (g *Ghost) SetMode(m GhostMode) {
	g.mode = m
	if m != GhostFrightened {
		g.timer = 0
	}
}

// Update runs one pursuit tick: expire the frightened countdown, pick a
// target (behaviour engine, or the respawn cell while eaten), path toward
// it, and move. When no usable path exists the ghost falls back to
// deterministic greedy steering toward the same target.
func (g *Ghost) Update(dt float64, playerCell Cell, powerActive bool, s Settings) {
	if g.mode == GhostFrightened {
		g.timer -= dt
		if g.timer <= 0 {
			g.timer = 0
			g.mode = GhostChase
		}
	}

	var target Cell
	if g.mode == GhostEaten {
		if g.AtCenter() && g.cell == g.respawn {
			// Respawn complete: rejoin the chase.
			g.mode = GhostChase
			g.dir = DirLeft
			return
		}
		target = g.respawn
	} else {
		ctx := Context{
			PlayerCell:    playerCell,
			GhostCell:     g.cell,
			ScatterCorner: g.home,
			Maze:          g.maze,
			PowerActive:   powerActive,
			Threshold:     s.EngagementRange,
		}
		g.behaviour, target = Decide(ctx)
	}

	if path := FindPath(g.maze, g.cell, []Cell{target}); len(path) >= 2 {
		g.dir = stepDirection(path[0], path[1])
	} else {
		g.steerToward(target)
	}

	if g.mode == GhostFrightened {
		g.speed = s.FrightenedSpeed
	} else {
		g.speed = s.GhostSpeed
	}
	g.Advance(dt)
}

// steerToward is the fallback when search yields no usable path (target
// walled off, or start already on target). Among the available directions it
// picks the one whose destination cell minimises squared straight-line
// distance to the target; ties keep the earlier candidate, so the fixed
// up, down, left, right enumeration order is the tie-break. With nothing
// available the ghost reverses.
func (g *Ghost) steerToward(target Cell) {
	choices := g.AvailableDirections()
	if len(choices) == 0 {
		g.dir = g.dir.Reversed()
		return
	}
	best := choices[0]
	bestDist := g.steerDistance(choices[0], target)
	for _, d := range choices[1:] {
		if dist := g.steerDistance(d, target); dist < bestDist {
			best = d
			bestDist = dist
		}
	}
	g.dir = best
}

func (g *Ghost) steerDistance(d Direction, target Cell) int {
	next := g.maze.Wrap(g.cell.Offset(d))
	dx := next.Col - target.Col
	dy := next.Row - target.Row
	return dx*dx + dy*dy
}
