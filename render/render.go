package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lowrez/gridfire/engine"
	"github.com/lowrez/gridfire/grid"
)

// Cell aspect correction: terminal glyphs are roughly twice as tall as wide
const cellCols = 2

var (
	styleWall        = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleExit        = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	stylePlayer      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleEnemy       = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleProjectile  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleHUD         = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleBannerWin   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleBannerLose  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleBannerPause = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Renderer draws a top-down view of the world plus the HUD. It only reads
// state; all display formatting (negative-health clamping, banners) lives
// here, never in the core.
type Renderer struct {
	screen tcell.Screen
}

func New(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw renders one frame: grid, entities, HUD, terminal banner
func (r *Renderer) Draw(w *engine.World, paused bool) {
	r.screen.Clear()

	cols, rows := w.Grid.Size()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			switch w.Grid.Kind(col, row) {
			case grid.Wall:
				r.putCell(col, row, '█', styleWall)
			case grid.Exit:
				r.putCell(col, row, '░', styleExit)
			}
		}
	}

	for _, h := range w.Projectiles.Live() {
		if p, ok := w.Projectiles.Get(h); ok {
			x, y := r.project(w, p.Pos.X, p.Pos.Z)
			r.screen.SetContent(x, y, '•', nil, styleProjectile)
		}
	}
	for _, h := range w.Enemies.Live() {
		if e, ok := w.Enemies.Get(h); ok {
			x, y := r.project(w, e.Pos.X, e.Pos.Z)
			r.screen.SetContent(x, y, 'ø', nil, styleEnemy)
		}
	}

	px, py := r.project(w, w.Player.Pos.X, w.Player.Pos.Z)
	r.screen.SetContent(px, py, facingRune(w.Player.Yaw), nil, stylePlayer)

	r.drawHUD(w, rows, paused)
	r.screen.Show()
}

// putCell fills one grid cell's character block
func (r *Renderer) putCell(col, row int, ch rune, style tcell.Style) {
	for i := 0; i < cellCols; i++ {
		r.screen.SetContent(col*cellCols+i, row, ch, nil, style)
	}
}

// project maps world coordinates to screen coordinates
func (r *Renderer) project(w *engine.World, worldX, worldZ float64) (int, int) {
	cs := w.Grid.CellSize()
	x := int(math.Floor((worldX + cs/2) / cs * cellCols))
	y := int(math.Floor((worldZ + cs/2) / cs))
	return x, y
}

// facingRune picks an arrow for the nearest quarter of the player's yaw
func facingRune(yaw float64) rune {
	quadrant := int(math.Round(yaw/(math.Pi/2))) % 4
	if quadrant < 0 {
		quadrant += 4
	}
	// Yaw 0 faces +Z, which is down-screen
	switch quadrant {
	case 0:
		return 'v'
	case 1:
		return '>'
	case 2:
		return '^'
	default:
		return '<'
	}
}

// drawHUD prints resources below the map and centers terminal banners
func (r *Renderer) drawHUD(w *engine.World, mapRows int, paused bool) {
	snap := w.State.Snapshot()

	// Display clamp only: the core's health is already bounded at zero on
	// game over but the HUD never shows fractions
	hud := fmt.Sprintf("HP %3.0f  AMMO %2d  SCORE %d",
		math.Max(0, snap.Health), snap.Ammo, snap.Score)
	r.putString(0, mapRows+1, hud, styleHUD)

	cols, _ := w.Grid.Size()
	center := func(msg string) int { return (cols*cellCols - len(msg)) / 2 }

	switch {
	case snap.Terminal == engine.TerminalWon:
		msg := "YOU ESCAPED"
		r.putString(center(msg), mapRows/2, msg, styleBannerWin)
	case snap.Terminal == engine.TerminalLost:
		msg := "YOU DIED"
		r.putString(center(msg), mapRows/2, msg, styleBannerLose)
	case paused:
		msg := "PAUSED"
		r.putString(center(msg), mapRows/2, msg, styleBannerPause)
	}
}

func (r *Renderer) putString(x, y int, s string, style tcell.Style) {
	for i, ch := range s {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
