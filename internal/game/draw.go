package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

const tickDT = 1.0 / 60.0

var (
	backgroundColour = color.RGBA{R: 8, G: 12, B: 48, A: 255}
	wallColour       = color.RGBA{R: 22, G: 56, B: 180, A: 255}
	wallBorderColour = color.RGBA{R: 64, G: 172, B: 255, A: 255}
	pelletColour     = color.RGBA{R: 255, G: 229, B: 153, A: 255}
	playerColour     = color.RGBA{R: 255, G: 198, B: 46, A: 255}
	frightenedColour = color.RGBA{R: 84, G: 237, B: 255, A: 255}
)

// Game is the Ebiten shell around a Session: input polling, config hot
// reload and rendering. All game rules live in the session.
type Game struct {
	session    *Session
	watcher    *ConfigWatcher
	configPath string

	prevKeys      map[ebiten.Key]bool
	prevMouseLeft bool
}

// NewGame wraps a session for windowed play. watcher may be nil.
func NewGame(s *Session, watcher *ConfigWatcher, configPath string) *Game {
	return &Game{
		session:    s,
		watcher:    watcher,
		configPath: configPath,
		prevKeys:   make(map[ebiten.Key]bool),
	}
}

// pollConfig applies a pending settings reload without blocking the tick.
func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	select {
	case _, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		if s, err := LoadSettings(g.configPath); err == nil {
			g.session.ApplySettings(s)
		}
	case _, ok := <-g.watcher.Errors:
		if !ok {
			g.watcher = nil
		}
	default:
	}
}

// keyPressed returns true on the tick the key went down.
func (g *Game) keyPressed(k ebiten.Key) bool {
	down := ebiten.IsKeyPressed(k)
	was := g.prevKeys[k]
	g.prevKeys[k] = down
	return down && !was
}

func (g *Game) Update() error {
	g.pollConfig()

	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft):
		g.session.ManualDirection(DirLeft)
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight):
		g.session.ManualDirection(DirRight)
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		g.session.ManualDirection(DirUp)
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		g.session.ManualDirection(DirDown)
	}
	if g.keyPressed(ebiten.KeyC) {
		g.session.SetAutoReplan(!g.session.AutoReplan())
	}
	if g.keyPressed(ebiten.KeyF9) {
		_ = g.session.CopyDebugReport()
	}

	mouseLeft := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if mouseLeft && !g.prevMouseLeft {
		mx, my := ebiten.CursorPosition()
		g.session.PlanTo(Cell{Col: mx / TileSize, Row: my / TileSize})
	}
	g.prevMouseLeft = mouseLeft

	g.session.Step(tickDT)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColour)
	g.drawMaze(screen)
	g.drawPlayer(screen)
	for _, gh := range g.session.Ghosts() {
		g.drawGhost(screen, gh)
	}
	g.drawHUD(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	m := g.session.Maze()
	return m.Width() * TileSize, m.Height() * TileSize
}

func (g *Game) drawMaze(screen *ebiten.Image) {
	m := g.session.Maze()
	for row := 0; row < m.Height(); row++ {
		for col := 0; col < m.Width(); col++ {
			c := Cell{col, row}
			x := float32(col * TileSize)
			y := float32(row * TileSize)
			switch m.At(c) {
			case MarkerWall:
				vector.DrawFilledRect(screen, x, y, TileSize, TileSize, wallColour, false)
				vector.StrokeRect(screen, x, y, TileSize, TileSize, 1, wallBorderColour, false)
			case MarkerPellet:
				vector.DrawFilledCircle(screen, x+TileSize/2, y+TileSize/2, TileSize/10, pelletColour, true)
			case MarkerPowerPellet:
				vector.DrawFilledCircle(screen, x+TileSize/2, y+TileSize/2, TileSize/4, colornames.White, true)
			}
		}
	}
}

func (g *Game) drawPlayer(screen *ebiten.Image) {
	p := g.session.Player()
	x, y := p.Pos()
	r := float32(TileSize/2 - 2)
	vector.DrawFilledCircle(screen, float32(x), float32(y), r, playerColour, true)
	// Mouth: a background-coloured notch toward the travel direction.
	d := p.Dir()
	if !d.IsZero() {
		mx := float32(x) + float32(d.DX)*r*0.6
		my := float32(y) + float32(d.DY)*r*0.6
		vector.DrawFilledCircle(screen, mx, my, r*0.45, backgroundColour, true)
	}
}

func (g *Game) drawGhost(screen *ebiten.Image, gh *Ghost) {
	x, y := gh.Pos()
	r := float32(TileSize/2 - 2)

	var body color.RGBA
	switch gh.Mode() {
	case GhostFrightened:
		body = frightenedColour
	case GhostEaten:
		body = colornames.White
	default:
		body = gh.colour
	}
	// Rounded head over a square skirt.
	vector.DrawFilledCircle(screen, float32(x), float32(y), r, body, true)
	vector.DrawFilledRect(screen, float32(x)-r, float32(y), 2*r, r, body, false)

	// Eyes track the travel direction.
	ex := float32(gh.Dir().DX) * 2
	ey := float32(gh.Dir().DY) * 2
	for _, off := range [2]float32{-5, 5} {
		vector.DrawFilledCircle(screen, float32(x)+off, float32(y)-3, 3.5, colornames.White, true)
		vector.DrawFilledCircle(screen, float32(x)+off+ex, float32(y)-3+ey, 1.8, backgroundColour, true)
	}
}
