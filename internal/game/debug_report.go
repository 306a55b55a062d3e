package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// DebugReport renders a one-shot textual snapshot of the session: clock,
// score, board state, per-ghost mode/behaviour/position and the player's
// autopilot state. Pasteable into a bug report.
func (s *Session) DebugReport() string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- mazehunt debug report ---\n")
	fmt.Fprintf(&b, "tick=%d clock=%.2fs score=%d lives=%d over=%v\n",
		s.tick, s.scatterClock, s.score, s.lives, s.over)
	fmt.Fprintf(&b, "pellets_remaining=%d power_active=%v\n", s.maze.PelletCount(), s.powerActive())

	px, py := s.player.Pos()
	fmt.Fprintf(&b, "player cell=(%d,%d) pos=(%.1f,%.1f) dir=(%d,%d) autopilot=%v queue=%d auto_replan=%v\n",
		s.player.Cell().Col, s.player.Cell().Row, px, py,
		s.player.Dir().DX, s.player.Dir().DY,
		s.player.AutopilotActive(), s.player.RouteLen(), s.autoReplan)

	for _, g := range s.ghosts {
		gx, gy := g.Pos()
		fmt.Fprintf(&b, "ghost %-6s mode=%-10s behaviour=%-7s cell=(%d,%d) pos=(%.1f,%.1f) dir=(%d,%d)\n",
			g.Name(), g.Mode(), g.Behaviour(),
			g.Cell().Col, g.Cell().Row, gx, gy, g.Dir().DX, g.Dir().DY)
	}
	return b.String()
}

// CopyDebugReport writes the report to the OS clipboard.
func (s *Session) CopyDebugReport() error {
	return clipboard.WriteAll(s.DebugReport())
}
