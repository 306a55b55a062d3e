package game

import (
	"image/color"
	"math"
)

// Scoring values.
const (
	pelletScore      = 10
	powerPelletScore = 50
	eatenGhostScore  = 200
)

var (
	playerStart  = Cell{13, 23}
	ghostRespawn = Cell{13, 11}
)

// ghostRoster is the classic four: name, start cell, scatter corner, colour.
var ghostRoster = []struct {
	name   string
	start  Cell
	home   Cell
	colour color.RGBA
}{
	{"Blinky", Cell{13, 11}, Cell{25, 1}, color.RGBA{R: 255, G: 84, B: 84, A: 255}},
	{"Inky", Cell{14, 14}, Cell{2, 1}, color.RGBA{R: 84, G: 237, B: 255, A: 255}},
	{"Pinky", Cell{12, 14}, Cell{1, 29}, color.RGBA{R: 255, G: 146, B: 247, A: 255}},
	{"Clyde", Cell{15, 14}, Cell{26, 29}, color.RGBA{R: 255, G: 157, B: 74, A: 255}},
}

// Session owns the board and the agents and runs the per-tick orchestration.
// Everything is single-threaded and frame-stepped: one Step computes all
// agents before any caller observes positions. The session is the sole
// writer of the maze; searches within the tick read it as a snapshot.
type Session struct {
	maze     *Maze
	settings Settings
	player   *Player
	ghosts   []*Ghost

	score        int
	lives        int
	scatterClock float64
	tick         int
	over         bool
	autoReplan   bool
}

// NewSession builds a session on the default blueprint.
func NewSession(s Settings) *Session {
	return NewSessionWithMaze(MustParseMaze(DefaultBlueprint), s)
}

// NewSessionWithMaze builds a session on a caller-supplied maze. The session
// takes ownership of the maze.
func NewSessionWithMaze(m *Maze, s Settings) *Session {
	sess := &Session{
		maze:     m,
		settings: s,
		lives:    s.Lives,
	}
	sess.player = NewPlayer(m, playerStart, s.PlayerSpeed)
	for _, r := range ghostRoster {
		sess.ghosts = append(sess.ghosts, NewGhost(m, r.name, r.start, r.home, ghostRespawn, r.colour, s.GhostSpeed))
	}
	return sess
}

func (s *Session) Maze() *Maze           { return s.maze }
func (s *Session) Player() *Player       { return s.player }
func (s *Session) Ghosts() []*Ghost      { return s.ghosts }
func (s *Session) Score() int            { return s.score }
func (s *Session) Lives() int            { return s.lives }
func (s *Session) Tick() int             { return s.tick }
func (s *Session) Over() bool            { return s.over }
func (s *Session) AutoReplan() bool      { return s.autoReplan }
func (s *Session) Settings() Settings    { return s.settings }
func (s *Session) ScatterClock() float64 { return s.scatterClock }

// ApplySettings re-tunes a running session. Base speeds apply to the next
// tick's speed selection; an active frightened countdown keeps its remaining
// time.
func (s *Session) ApplySettings(cfg Settings) {
	cfg.normalise()
	s.settings = cfg
	s.player.SetSpeed(cfg.PlayerSpeed)
}

// powerActive aggregates the "any ghost frightened" flag. Computed once per
// tick and passed into every ghost's decision snapshot.
func (s *Session) powerActive() bool {
	for _, g := range s.ghosts {
		if g.Mode() == GhostFrightened {
			return true
		}
	}
	return false
}

// Step advances the whole session by dt seconds.
func (s *Session) Step(dt float64) {
	if s.over {
		return
	}
	s.tick++
	s.scatterClock += dt

	// Autopilot upkeep: the player disengages itself when a route completes;
	// auto-replan mode immediately plans the next route to all remaining
	// pellets.
	if s.autoReplan && !s.player.AutopilotActive() {
		s.planToAll()
	}

	s.player.Update(dt)

	power := s.powerActive()
	playerCell := s.player.Cell()
	for _, g := range s.ghosts {
		g.Update(dt, playerCell, power, s.settings)
	}

	if s.player.AtCenter() {
		switch s.maze.Consume(s.player.Cell()) {
		case MarkerPellet:
			s.score += pelletScore
			if s.autoReplan {
				s.planToAll()
			}
		case MarkerPowerPellet:
			s.score += powerPelletScore
			s.activatePower()
			if s.autoReplan {
				s.planToAll()
			}
		}
	}

	s.handleCollisions()
}

// activatePower frightens every ghost that is not already eaten.
func (s *Session) activatePower() {
	for _, g := range s.ghosts {
		g.Frighten(s.settings.FrightenedDuration)
	}
}

// handleCollisions checks tile-sized overlap between the player and each
// ghost. Frightened ghosts are eaten; any other non-eaten ghost costs a life.
func (s *Session) handleCollisions() {
	px, py := s.player.Pos()
	for _, g := range s.ghosts {
		gx, gy := g.Pos()
		if math.Abs(px-gx) >= TileSize || math.Abs(py-gy) >= TileSize {
			continue
		}
		switch g.Mode() {
		case GhostFrightened:
			g.MarkEaten()
			s.score += eatenGhostScore
		case GhostEaten:
			// Eyes are harmless.
		default:
			s.loseLife()
			return
		}
	}
}

// loseLife decrements lives and respawns every agent. Pellets stay consumed.
func (s *Session) loseLife() {
	s.lives--
	if s.lives <= 0 {
		s.over = true
		return
	}
	s.resetPositions()
}

// resetPositions returns the agents to their start cells without touching
// the board.
func (s *Session) resetPositions() {
	s.player.MoveTo(playerStart)
	s.player.desired = DirNone
	s.player.EnableAutopilot(false)
	for _, g := range s.ghosts {
		g.MoveTo(g.start)
		g.dir = DirLeft
		g.SetMode(GhostScatter)
	}
	if s.autoReplan {
		s.planToAll()
	}
}

// SetAutoReplan switches continuous replanning toward all remaining pellets.
func (s *Session) SetAutoReplan(on bool) {
	s.autoReplan = on
	if on {
		s.planToAll()
	} else {
		s.player.EnableAutopilot(false)
	}
}

// PlanTo routes the player to one explicitly chosen traversable cell,
// leaving continuous replanning off. Returns false when the cell is not
// traversable or unreachable.
func (s *Session) PlanTo(target Cell) bool {
	s.autoReplan = false
	if !s.maze.Traversable(target) {
		return false
	}
	return s.plan([]Cell{target})
}

// ManualDirection hands control back to the keyboard: cancels any autopilot
// state and records the desired direction.
func (s *Session) ManualDirection(d Direction) {
	if s.player.AutopilotActive() || s.autoReplan {
		s.autoReplan = false
		s.player.EnableAutopilot(false)
	}
	s.player.SetDesired(d)
}

func (s *Session) planToAll() {
	s.plan(s.maze.Pellets())
}

func (s *Session) plan(goals []Cell) bool {
	if len(goals) == 0 {
		s.player.EnableAutopilot(false)
		return false
	}
	route := PlanRoute(s.maze, s.player.Cell(), goals)
	if route == nil {
		s.player.EnableAutopilot(false)
		return false
	}
	s.player.SetRoute(route)
	return true
}
