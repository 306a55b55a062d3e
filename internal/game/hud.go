package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

var hudFace text.Face = text.NewGoXFace(basicfont.Face7x13)

func drawLabel(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, hudFace, op)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	s := g.session
	drawLabel(screen, fmt.Sprintf("Score: %d", s.Score()), 8, 4, colornames.White)
	drawLabel(screen, fmt.Sprintf("Lives: %d", s.Lives()), float64(s.Maze().Width()*TileSize-70), 4, playerColour)

	var badge string
	switch {
	case s.AutoReplan():
		badge = "autopilot: sweep"
	case s.Player().AutopilotActive():
		badge = "autopilot: target"
	}
	if badge != "" {
		drawLabel(screen, badge, float64(s.Maze().Width()*TileSize)/2-50, 4, colornames.Fuchsia)
	}

	// One life marker per remaining life along the bottom edge.
	for i := 0; i < s.Lives(); i++ {
		cx := float32(14 + i*(TileSize+4))
		cy := float32(s.Maze().Height()*TileSize - TileSize/2)
		vector.DrawFilledCircle(screen, cx, cy, TileSize/2-4, playerColour, true)
	}

	if s.Over() {
		msg := "GAME OVER"
		drawLabel(screen, msg,
			float64(s.Maze().Width()*TileSize)/2-35,
			float64(s.Maze().Height()*TileSize)/2-6,
			colornames.White)
	}
}
