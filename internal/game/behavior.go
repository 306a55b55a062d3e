package game

// Behaviour is the label a ghost's decision function attaches to its current
// intent. Distinct from GhostMode: mode is the externally driven state
// machine, behaviour is re-derived from the board every tick.
type Behaviour uint8

const (
	BehaviourPatrol Behaviour = iota // head for the scatter corner
	BehaviourAttack                  // close distance on the player
	BehaviourFlee                    // retreat to the scatter corner
)

func (b Behaviour) String() string {
	switch b {
	case BehaviourPatrol:
		return "patrol"
	case BehaviourAttack:
		return "attack"
	case BehaviourFlee:
		return "flee"
	default:
		return "unknown"
	}
}

// Context is the read-only world snapshot one ghost decides from. The
// orchestrator fills it once per ghost per tick; Decide never mutates
// anything and keeps no state between calls.
type Context struct {
	PlayerCell    Cell
	GhostCell     Cell
	ScatterCorner Cell
	Maze          *Maze
	PowerActive   bool // true while any ghost is frightened
	Threshold     int  // engagement distance in tiles
}

// Manhattan returns the grid taxicab distance between two cells.
func Manhattan(a, b Cell) int {
	return intAbs(a.Col-b.Col) + intAbs(a.Row-b.Row)
}

// Decide picks the behaviour and target tile for one ghost. The rules apply
// in order: flee to the scatter corner while a power pellet is active, attack
// the player inside the engagement threshold, otherwise patrol home.
func Decide(ctx Context) (Behaviour, Cell) {
	if ctx.PowerActive {
		return BehaviourFlee, ctx.ScatterCorner
	}
	if Manhattan(ctx.GhostCell, ctx.PlayerCell) <= ctx.Threshold {
		return BehaviourAttack, ctx.PlayerCell
	}
	return BehaviourPatrol, ctx.ScatterCorner
}
