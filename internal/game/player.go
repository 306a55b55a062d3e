package game

// Player is the collector agent. It moves on the same movement model as the
// ghosts; where a ghost picks directions from pursuit, the player takes them
// either from manual input (desired direction) or from a planned autopilot
// route consumed one step per cell center.
type Player struct {
	Entity
	desired   Direction
	autopilot bool
	route     []Direction
}

func NewPlayer(m *Maze, start Cell, speed float64) *Player {
	return &Player{Entity: newEntity(m, start, speed)}
}

// SetDesired records a requested direction; it is applied at the next cell
// center if the target tile is open. Ignored while autopilot drives.
func (p *Player) SetDesired(d Direction) {
	if p.autopilot {
		return
	}
	p.desired = d
}

// AutopilotActive reports whether a planned route is driving the player.
func (p *Player) AutopilotActive() bool { return p.autopilot }

// RouteLen returns the number of queued autopilot steps.
func (p *Player) RouteLen() int { return len(p.route) }

// EnableAutopilot switches autopilot on or off. Switching off drops any
// queued route.
func (p *Player) EnableAutopilot(on bool) {
	p.autopilot = on
	if !on {
		p.route = nil
	}
}

// SetRoute installs a planned direction queue and engages autopilot.
func (p *Player) SetRoute(dirs []Direction) {
	p.route = dirs
	p.autopilot = true
}

// updateAutopilot pops the next queued step when the player reaches a cell
// center. A drained queue means the route is complete: the player comes to
// rest at the final center and autopilot disengages. A step into a wall means
// the plan has been invalidated; the queue clears and autopilot disengages
// rather than erroring.
func (p *Player) updateAutopilot() {
	if !p.autopilot {
		return
	}
	if len(p.route) == 0 {
		p.desired = DirNone
		if p.AtCenter() {
			p.dir = DirNone
			p.autopilot = false
		}
		return
	}
	if !p.AtCenter() {
		return
	}
	next := p.route[0]
	if p.maze.Traversable(p.maze.Wrap(p.cell.Offset(next))) {
		p.desired = next
		p.route = p.route[1:]
	} else {
		p.route = nil
		p.autopilot = false
	}
}

// Update applies autopilot or manual intent at cell centers, then advances.
func (p *Player) Update(dt float64) {
	p.updateAutopilot()

	if !p.desired.IsZero() && p.AtCenter() {
		if p.maze.Traversable(p.maze.Wrap(p.cell.Offset(p.desired))) {
			p.dir = p.desired
		}
	}
	if p.dir.IsZero() {
		return
	}
	if p.AtCenter() && !p.maze.Traversable(p.maze.Wrap(p.cell.Offset(p.dir))) {
		p.dir = DirNone
		return
	}
	p.Advance(dt)
}

// PlanRoute paths from start to the nearest goal and converts the cell
// sequence into unit step directions, normalising wrap deltas. Nil when no
// route of at least one step exists.
func PlanRoute(m *Maze, start Cell, goals []Cell) []Direction {
	path := FindPath(m, start, goals)
	if len(path) < 2 {
		return nil
	}
	dirs := make([]Direction, 0, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		dirs = append(dirs, stepDirection(path[i], path[i+1]))
	}
	return dirs
}
