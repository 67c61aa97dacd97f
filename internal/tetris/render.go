package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Visual characters for rendering
const (
	blockChar = '█'
	emptyChar = '·'
)

// Render draws the well, the falling piece and the side panel.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}

	g.renderHUD(dst)

	if g.tooSmall {
		minW, minH := g.MinScreenSize()
		g.renderOverlay(dst, dst.Bounds(), "Window too small",
			fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	well := g.wellRect()
	g.renderWell(dst, well)
	g.renderPanel(dst, well)

	switch {
	case g.engine.GameOver():
		g.renderOverlay(dst, well, "GAME OVER", "R to restart")
	case g.paused:
		g.renderOverlay(dst, well, "PAUSED", "P to resume")
	}
}

// wellRect returns the bordered board area, centered with the panel.
func (g *Game) wellRect() core.Rect {
	wellW, wellH := g.wellSize()
	totalW := wellW + panelMargin + panelWidth
	x := core.Max(0, (g.screenW-totalW)/2)
	return core.NewRect(x, hudHeight, wellW, wellH)
}

// renderHUD draws the top status line.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Tetris — Score: %d  Lines: %d", g.engine.Score(), g.engine.Lines())
	dst.DrawText(0, 0, hud)
}

// renderWell draws the border, the settled cells and the current piece.
func (g *Game) renderWell(dst *core.Screen, well core.Rect) {
	dst.DrawBox(well)

	for y := 0; y < g.engine.Height(); y++ {
		for x := 0; x < g.engine.Width(); x++ {
			cell := g.engine.Cell(x, y)
			if cell.Filled {
				g.drawBlock(dst, well, x, y, cell.Color)
			} else {
				dst.SetCell(well.X+1+x*cellWidth+1, well.Y+1+y, emptyChar, core.ColorGray)
			}
		}
	}

	if g.engine.GameOver() {
		return
	}
	cur := g.engine.Current()
	for _, c := range cur.Cells() {
		if c.Y >= 0 {
			g.drawBlock(dst, well, c.X, c.Y, cur.Color)
		}
	}
}

// drawBlock fills one board cell inside the well.
func (g *Game) drawBlock(dst *core.Screen, well core.Rect, x, y int, c core.Color) {
	sx := well.X + 1 + x*cellWidth
	sy := well.Y + 1 + y
	for i := 0; i < cellWidth; i++ {
		dst.SetCell(sx+i, sy, blockChar, c)
	}
}

// renderPanel draws the score readout and the next piece preview.
func (g *Game) renderPanel(dst *core.Screen, well core.Rect) {
	px := well.Right() + panelMargin
	py := well.Y

	dst.DrawTextColor(px, py, "Score", core.ColorWhite)
	dst.DrawText(px, py+1, fmt.Sprintf("%d", g.engine.Score()))
	dst.DrawTextColor(px, py+3, "Lines", core.ColorWhite)
	dst.DrawText(px, py+4, fmt.Sprintf("%d", g.engine.Lines()))

	dst.DrawTextColor(px, py+6, "Next Shape", core.ColorWhite)
	box := core.NewRect(px, py+7, 4*cellWidth+2, 4)
	dst.DrawBox(box)

	next := g.engine.Next()
	for y, row := range next.Shape {
		for x, filled := range row {
			if filled {
				for i := 0; i < cellWidth; i++ {
					dst.SetCell(box.X+1+x*cellWidth+i, box.Y+1+y, blockChar, next.Color)
				}
			}
		}
	}
}

// renderOverlay draws a centered two-line message box inside area.
func (g *Game) renderOverlay(dst *core.Screen, area core.Rect, line1, line2 string) {
	maxLen := core.Max(len([]rune(line1)), len([]rune(line2)))
	boxW := core.Min(maxLen+4, core.Max(area.W, 1))
	boxH := 5
	cx, cy := area.Center()
	box := core.NewRect(cx-boxW/2, cy-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	drawCentered(dst, box, box.Y+1, line1)
	drawCentered(dst, box, box.Y+3, line2)
}

// drawCentered draws text centered horizontally within r.
func drawCentered(dst *core.Screen, r core.Rect, y int, text string) {
	x := r.X + (r.W-len([]rune(text)))/2
	dst.DrawText(x, y, text)
}
