package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/engine"
)

// Glyphs
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '┊'
)

// fieldArea returns the screen cells the field is drawn into: everything
// below the score header, inside the border.
func fieldArea(dst *core.Screen) core.Rect {
	return core.NewRect(1, 2, max(dst.Width()-2, 0), max(dst.Height()-3, 0))
}

// cellCol maps a field x coordinate to a column inside area.
func cellCol(x float64, f engine.Field, area core.Rect) int {
	return area.X + core.Clamp(core.Scale(x, f.Width, area.W), 0, max(area.W-1, 0))
}

// cellRow maps a field y coordinate to a row inside area.
func cellRow(y float64, f engine.Field, area core.Rect) int {
	return area.Y + core.Clamp(core.Scale(y, f.Height, area.H), 0, max(area.H-1, 0))
}

// rowToFieldY maps a screen row to the field y at the middle of that row.
// Rows outside the field clamp to its edges.
func rowToFieldY(row int, f engine.Field, area core.Rect) float64 {
	if area.H <= 0 {
		return f.Height / 2
	}
	y := (float64(row-area.Y) + 0.5) * f.Height / float64(area.H)
	return core.ClampF(y, 0, f.Height)
}

// Draw renders a snapshot into dst.
func Draw(dst *core.Screen, snap engine.Snapshot) {
	dst.Clear()
	drawHeader(dst, snap)

	area := fieldArea(dst)
	if area.W < 3 || area.H < 3 {
		dst.DrawTextCentered(dst.Height()/2, "terminal too small", core.ColorYellow)
		return
	}
	dst.DrawBox(core.NewRect(area.X-1, area.Y-1, area.W+2, area.H+2), core.ColorGray)

	// Net
	centerX := area.X + area.W/2
	for y := area.Y; y < area.Bottom(); y += 2 {
		dst.SetColor(centerX, y, NetChar, core.ColorGray)
	}

	drawPaddle(dst, snap.Player, snap.Field, area, core.ColorBrightCyan)
	drawPaddle(dst, snap.CPU, snap.Field, area, core.ColorBrightWhite)

	ballColor := core.ColorYellow
	if snap.State == engine.PausedForServe {
		ballColor = core.ColorGray
	}
	dst.SetColor(cellCol(snap.Ball.X, snap.Field, area), cellRow(snap.Ball.Y, snap.Field, area), BallChar, ballColor)

	if snap.State == engine.PausedUnfocused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func drawHeader(dst *core.Screen, snap engine.Snapshot) {
	centerX := dst.Width() / 2
	player := fmt.Sprintf("%d", snap.Score.Player)
	dst.DrawText(centerX-3-len(player), 0, player, core.ColorBrightCyan)
	dst.DrawText(centerX, 0, ":", core.ColorGray)
	dst.DrawText(centerX+4, 0, fmt.Sprintf("%d", snap.Score.CPU), core.ColorBrightWhite)

	dst.DrawText(1, 0, "YOU", core.ColorCyan)
	dst.DrawText(dst.Width()-4, 0, "CPU", core.ColorWhite)
}

func drawPaddle(dst *core.Screen, p engine.Paddle, f engine.Field, area core.Rect, c core.Color) {
	x := cellCol(p.X+p.Width/2, f, area)
	top := cellRow(p.Y, f, area)
	// Bottom edge is exclusive; nudge it up so a paddle ending on a row
	// boundary does not spill into the next row.
	bottom := cellRow(math.Nextafter(p.Bottom(), 0), f, area)
	dst.DrawVLine(x, top, bottom-top+1, PaddleChar, c)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorYellow)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorWhite)
}
