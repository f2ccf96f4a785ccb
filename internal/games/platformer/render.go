package platformer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
)

// Visual characters for rendering
const (
	WallChar     = '█'
	LavaChar     = '~'
	CoinChar     = 'o'
	FireballChar = '*'
	FireRainChar = 'v'
	PlayerChar   = '@'
	BorderHoriz  = '─'
)

// TileWidth is how many terminal columns one tile spans. Terminal cells are
// roughly twice as tall as they are wide.
const TileWidth = 2

// hudHeight is the number of rows above the playfield.
const hudHeight = 2

const (
	minScreenW = 20
	minScreenH = 8
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorDefault)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorGray)
		return
	}

	g.renderHUD(dst)

	if g.loadErr != nil {
		g.renderMessage(dst, core.ColorRed, "Broken level", g.loadErr.Error())
		return
	}

	level := g.Level()
	if level == nil {
		return
	}

	view := g.viewport(dst, level)
	renderGrid(dst, level, view)
	renderActors(dst, level, view)
	g.renderOverlay(dst, level)
}

// renderHUD draws coins, lives and the level indicator.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Coins: %d", g.score), core.ColorYellow)

	lives := fmt.Sprintf("Lives: %d", g.lives)
	dst.DrawTextCentered(0, lives, core.ColorRed)

	levelText := fmt.Sprintf("%d/%d %s", g.levelIndex+1, g.pack.Count(), g.pack.Level(g.levelIndex).Name)
	if len(levelText) > dst.Width()/3 {
		levelText = fmt.Sprintf("Level %d/%d", g.levelIndex+1, g.pack.Count())
	}
	dst.DrawText(dst.Width()-len([]rune(levelText))-1, 0, levelText)

	dst.DrawHLine(0, 1, dst.Width(), BorderHoriz, core.ColorGray)
}

// viewport returns the visible part of the level in screen cells, centered
// on the player and offset below the HUD.
func (g *Game) viewport(dst *core.Screen, level *sim.Level) core.Rect {
	view := core.NewRect(0, 0, dst.Width(), dst.Height()-hudHeight)
	worldW := level.Width() * TileWidth
	worldH := level.Height()

	cx, cy := worldW/2, worldH/2
	if p := level.Player(); p != nil {
		cx = int((p.Left() + p.Size().X/2) * TileWidth)
		cy = int(p.Top() + p.Size().Y/2)
	}
	view = view.Follow(cx, cy, worldW, worldH)

	// Center levels smaller than the screen
	if worldW < view.W {
		view.X = -(view.W - worldW) / 2
	}
	if worldH < view.H {
		view.Y = -(view.H - worldH) / 2
	}
	return view
}

// toScreen converts a world cell to screen coordinates.
func toScreen(view core.Rect, cellX, cellY int) (int, int) {
	return cellX - view.X, cellY - view.Y + hudHeight
}

func renderGrid(dst *core.Screen, level *sim.Level, view core.Rect) {
	for y := 0; y < level.Height(); y++ {
		for x := 0; x < level.Width(); x++ {
			var glyph rune
			var color core.Color
			switch level.Cell(x, y) {
			case sim.ObstacleWall:
				glyph, color = WallChar, core.ColorGray
			case sim.ObstacleLava:
				glyph, color = LavaChar, core.ColorRed
			default:
				continue
			}
			for dx := 0; dx < TileWidth; dx++ {
				if !view.Contains(x*TileWidth+dx, y) {
					continue
				}
				sx, sy := toScreen(view, x*TileWidth+dx, y)
				dst.SetColored(sx, sy, glyph, color)
			}
		}
	}
}

func renderActors(dst *core.Screen, level *sim.Level, view core.Rect) {
	for _, a := range level.Actors() {
		glyph, color := actorGlyph(a, level.Status())
		x0 := int(math.Floor(a.Left() * TileWidth))
		x1 := int(math.Ceil(a.Right()*TileWidth)) - 1
		y0 := int(math.Floor(a.Top()))
		y1 := int(math.Ceil(a.Bottom())) - 1

		// Small actors draw as a single glyph at their center
		if a.Kind() != sim.KindPlayer {
			x0 = int((a.Left() + a.Size().X/2) * TileWidth)
			y0 = int(a.Top() + a.Size().Y/2)
			x1, y1 = x0, y0
		}
		if !view.Intersects(core.NewRect(x0, y0, x1-x0+1, y1-y0+1)) {
			continue
		}

		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				if !view.Contains(x, y) {
					continue
				}
				sx, sy := toScreen(view, x, y)
				dst.SetColored(sx, sy, glyph, color)
			}
		}
	}
}

func actorGlyph(a *sim.Actor, status sim.Status) (rune, core.Color) {
	switch a.Kind() {
	case sim.KindPlayer:
		if status == sim.StatusLost {
			return PlayerChar, core.ColorBrightRed
		}
		return PlayerChar, core.ColorCyan
	case sim.KindCoin:
		return CoinChar, core.ColorBrightYellow
	case sim.KindFireRain:
		return FireRainChar, core.ColorOrange
	default:
		if a.Kind().IsFireball() {
			return FireballChar, core.ColorOrange
		}
		return '?', core.ColorDefault
	}
}

// renderOverlay draws status messages over the playfield.
func (g *Game) renderOverlay(dst *core.Screen, level *sim.Level) {
	switch {
	case g.won:
		g.renderMessage(dst, core.ColorGreen, "YOU WIN!", fmt.Sprintf("%d coins", g.score), "Press R to play again")
	case g.gameOver:
		g.renderMessage(dst, core.ColorRed, "GAME OVER", fmt.Sprintf("%d coins", g.score), "Press R to restart")
	case g.paused:
		g.renderMessage(dst, core.ColorYellow, "PAUSED", "Press P to resume")
	case level.Status() == sim.StatusWon:
		dst.DrawTextCentered(hudHeight+1, "Level clear!", core.ColorGreen)
	case level.Status() == sim.StatusLost:
		dst.DrawTextCentered(hudHeight+1, "Ouch!", core.ColorBrightRed)
	}
}

// renderMessage draws a centered box with a title and detail lines.
func (g *Game) renderMessage(dst *core.Screen, color core.Color, title string, lines ...string) {
	width := len([]rune(title))
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width = core.Min(width+4, dst.Width())
	height := len(lines) + 4

	top := hudHeight + (dst.Height()-hudHeight-height)/2
	box := core.NewRect((dst.Width()-width)/2, top, width, height)
	dst.DrawBox(box, color)
	dst.DrawTextCentered(top+1, title, color)
	for i, l := range lines {
		dst.DrawTextCentered(top+3+i, l, core.ColorDefault)
	}
}
