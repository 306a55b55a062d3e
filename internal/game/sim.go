package game

// TestSim is a headless session harness used by tests and cmd/headless-sim.
// It steps a Session at a fixed dt with no Ebiten dependency. The whole core
// is deterministic, so identical option sets replay identically.
type TestSim struct {
	Session *Session
	DT      float64
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // blueprint, settings — applied before the session exists
	simOptState                      // agent placement, modes, autopilot — applied after
)

// SimOption is a builder option applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*simBuild)
}

type simBuild struct {
	blueprint []string
	settings  Settings
	sim       *TestSim
}

// WithBlueprint replaces the default maze layout.
func WithBlueprint(rows []string) SimOption {
	return SimOption{simOptInfra, func(b *simBuild) {
		b.blueprint = rows
	}}
}

// WithSettings replaces the default tuning.
func WithSettings(s Settings) SimOption {
	return SimOption{simOptInfra, func(b *simBuild) {
		b.settings = s
	}}
}

// WithAutoReplan starts the session in continuous-replan autopilot mode.
func WithAutoReplan() SimOption {
	return SimOption{simOptState, func(b *simBuild) {
		b.sim.Session.SetAutoReplan(true)
	}}
}

// WithPlayerAt places the player at rest on a cell.
func WithPlayerAt(c Cell) SimOption {
	return SimOption{simOptState, func(b *simBuild) {
		b.sim.Session.Player().MoveTo(c)
	}}
}

// WithGhostAt places ghost i at rest on a cell.
func WithGhostAt(i int, c Cell) SimOption {
	return SimOption{simOptState, func(b *simBuild) {
		b.sim.Session.Ghosts()[i].MoveTo(c)
	}}
}

// WithGhostMode forces ghost i into a mode.
func WithGhostMode(i int, m GhostMode) SimOption {
	return SimOption{simOptState, func(b *simBuild) {
		g := b.sim.Session.Ghosts()[i]
		if m == GhostFrightened {
			g.Frighten(b.settings.FrightenedDuration)
		} else {
			g.SetMode(m)
		}
	}}
}

// NewTestSim builds a harness. Infra options run first, then the session is
// created, then state options run against it.
func NewTestSim(opts ...SimOption) *TestSim {
	b := &simBuild{
		blueprint: DefaultBlueprint,
		settings:  DefaultSettings(),
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(b)
		}
	}
	b.sim = &TestSim{
		Session: NewSessionWithMaze(MustParseMaze(b.blueprint), b.settings),
		DT:      1.0 / 60.0,
	}
	for _, o := range opts {
		if o.kind == simOptState {
			o.fn(b)
		}
	}
	return b.sim
}

// RunTicks steps the session n times at the fixed dt.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.Session.Step(ts.DT)
	}
}
