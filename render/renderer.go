package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
)

// Renderer paints a GameState onto a tcell screen
// Each grid cell spans constants.CellWidth terminal columns; the status line sits under the board
type Renderer struct {
	screen tcell.Screen
	bg     tcell.Style
}

// NewRenderer creates a renderer for an initialized screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		bg:     tcell.StyleDefault.Background(RgbBackground).Foreground(RgbStatusText),
	}
}

// RequiredSize returns the terminal size needed for a grid
func RequiredSize(g engine.Grid) (cols, rows int) {
	return g.Width * constants.CellWidth, g.Height + constants.StatusBarHeight
}

// CellOrigin returns the terminal column and row of a grid cell's left half
func CellOrigin(c engine.Coord) (col, row int) {
	return c.X * constants.CellWidth, c.Y
}

// DrawFrame renders the entire frame and shows it
func (r *Renderer) DrawFrame(gs *engine.GameState) {
	r.screen.SetStyle(r.bg)
	r.screen.Clear()

	w, h := r.screen.Size()
	needW, needH := RequiredSize(gs.Rules.Grid)
	if w < needW || h < needH {
		r.drawTooSmall(w, h, needW, needH)
		r.screen.Show()
		return
	}

	r.fillBoard(gs.Rules.Grid)
	for _, e := range gs.Entities() {
		r.drawEntity(e)
	}
	r.drawStatus(gs)
	r.drawOverlay(gs)

	r.screen.Show()
}

func (r *Renderer) fillBoard(g engine.Grid) {
	cols, _ := RequiredSize(g)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < cols; x++ {
			r.screen.SetContent(x, y, ' ', nil, r.bg)
		}
	}
}

func (r *Renderer) drawEntity(e engine.Entity) {
	cs := styleFor(e.Kind)
	col, row := CellOrigin(e.Pos)
	r.screen.SetContent(col, row, cs.left, nil, cs.style)
	r.screen.SetContent(col+1, row, cs.right, nil, cs.style)
}

// drawStatus writes score, length and pace under the board
func (r *Renderer) drawStatus(gs *engine.GameState) {
	text := fmt.Sprintf(" SCORE %d  LENGTH %d  %dms  %s",
		gs.Score, gs.Snake.Len(), gs.TickInterval.Milliseconds(), gs.Phase())
	r.drawText(0, gs.Rules.Grid.Height, text, r.bg)
}

// drawOverlay centers a banner on the board for every non-running phase
func (r *Renderer) drawOverlay(gs *engine.GameState) {
	text, bg := overlayFor(gs)
	if text == "" {
		return
	}

	cols, _ := RequiredSize(gs.Rules.Grid)
	banner := " " + text + " "
	x := (cols - len([]rune(banner))) / 2
	if x < 0 {
		x = 0
	}
	y := gs.Rules.Grid.Height / 2

	style := tcell.StyleDefault.Background(bg).Foreground(RgbOverlayFg).Bold(true)
	r.drawText(x, y, banner, style)
}

func overlayFor(gs *engine.GameState) (string, tcell.Color) {
	switch gs.Phase() {
	case engine.PhaseOver:
		if gs.BoardFull {
			return constants.OverlayBoardFull, RgbWinBg
		}
		return constants.OverlayOver, RgbOverlayBg
	case engine.PhaseIdle:
		if gs.Paused {
			return constants.OverlayStart, RgbOverlayBg
		}
	case engine.PhasePaused:
		return constants.OverlayPaused, RgbOverlayBg
	}
	return "", RgbOverlayBg
}

func (r *Renderer) drawTooSmall(w, h, needW, needH int) {
	msg := fmt.Sprintf("%s: need %dx%d", constants.OverlayTooSmall, needW, needH)
	y := h / 2
	x := (w - len(msg)) / 2
	if x < 0 {
		x = 0
	}
	r.drawText(x, y, msg, r.bg)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	for _, ch := range text {
		if x >= w {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
