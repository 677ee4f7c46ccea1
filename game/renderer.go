package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	outerPadding   = 12
	topPanelHeight = 48
)

var (
	colorBG           = color.RGBA{20, 20, 40, 255}
	colorPanel        = color.RGBA{34, 36, 52, 255}
	colorCell         = color.RGBA{62, 66, 90, 255}
	colorCellFound    = color.RGBA{38, 41, 58, 255}
	colorCellBorder   = color.RGBA{24, 26, 40, 255}
	colorNumber       = color.RGBA{236, 238, 245, 255}
	colorNumberFound  = color.RGBA{110, 114, 134, 255}
	colorFlashCorrect = color.RGBA{70, 180, 90, 255}
	colorFlashWrong   = color.RGBA{200, 60, 60, 255}
	colorAccent       = color.RGBA{107, 199, 255, 255}
	colorHUD          = color.RGBA{215, 218, 230, 255}
)

// Renderer draws the board and HUD. All visuals are derived from session
// state; the renderer holds no game state of its own.
type Renderer struct {
	face font.Face
}

// NewRenderer creates a new renderer.
func NewRenderer() *Renderer {
	return &Renderer{face: basicfont.Face7x13}
}

// Render renders the full frame.
func (r *Renderer) Render(screen *ebiten.Image, session *Session, cellSize int, flash cellFlash, debug bool) {
	screen.Fill(colorBG)

	r.drawHUD(screen, session, cellSize)
	r.drawBoard(screen, session, cellSize, flash)

	if session.Won() {
		r.drawBanner(screen, "Done!", session, cellSize)
	}
	if debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()), 2, 2)
	}
}

func (r *Renderer) drawHUD(screen *ebiten.Image, session *Session, cellSize int) {
	n := session.GridSize()
	w := n*cellSize + outerPadding*2

	vector.DrawFilledRect(screen, float32(outerPadding-2), 10, float32(w-(outerPadding-2)*2), topPanelHeight-18, colorPanel, false)

	target := "Next: " + session.TargetLabel()
	elapsed := "Time: " + session.ElapsedLabel()
	best := "Best: " + session.BestLabel()

	y := 10 + (topPanelHeight-18)/2 + 4
	text.Draw(screen, target, r.face, outerPadding+8, y, colorHUD)
	r.drawTextRight(screen, best, w-outerPadding-8, y, colorHUD)

	tw := text.BoundString(r.face, elapsed).Dx()
	text.Draw(screen, elapsed, r.face, (w-tw)/2, y, colorHUD)
}

func (r *Renderer) drawBoard(screen *ebiten.Image, session *Session, cellSize int, flash cellFlash) {
	board := session.Board()
	invite := !session.InProgress() && !session.Won()

	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			r.drawCell(screen, session, col, row, cellSize, flash, invite)
		}
	}
}

func (r *Renderer) drawCell(screen *ebiten.Image, session *Session, col, row, cellSize int, flash cellFlash, invite bool) {
	board := session.Board()
	px := outerPadding + col*cellSize
	py := topPanelHeight + row*cellSize
	idx := row*board.Size + col
	found := board.FoundAt(col, row)

	fill := colorCell
	if found {
		fill = colorCellFound
	}
	if flash.ticks > 0 && flash.index == idx {
		switch flash.class {
		case FeedbackCorrect:
			fill = colorFlashCorrect
		case FeedbackWrong:
			fill = colorFlashWrong
		}
	}

	vector.DrawFilledRect(screen, float32(px), float32(py), float32(cellSize), float32(cellSize), fill, false)
	vector.StrokeRect(screen, float32(px), float32(py), float32(cellSize), float32(cellSize), 1, colorCellBorder, false)

	// The cell holding 1 carries an accent ring until the run starts.
	if invite && board.ValueAt(col, row) == 1 {
		vector.StrokeRect(screen, float32(px+3), float32(py+3), float32(cellSize-6), float32(cellSize-6), 2, colorAccent, false)
	}

	clr := colorNumber
	if found {
		clr = colorNumberFound
	}
	label := fmt.Sprintf("%d", board.ValueAt(col, row))
	b := text.BoundString(r.face, label)
	tx := px + (cellSize-b.Dx())/2
	ty := py + (cellSize+b.Dy())/2
	text.Draw(screen, label, r.face, tx, ty, clr)
}

func (r *Renderer) drawBanner(screen *ebiten.Image, label string, session *Session, cellSize int) {
	n := session.GridSize()
	w := n*cellSize + outerPadding*2
	bw, bh := 160, 28
	bx := (w - bw) / 2
	by := topPanelHeight + (n*cellSize-bh)/2

	vector.DrawFilledRect(screen, float32(bx), float32(by), float32(bw), float32(bh), color.RGBA{0, 0, 0, 180}, false)
	vector.StrokeRect(screen, float32(bx), float32(by), float32(bw), float32(bh), 1, colorAccent, false)

	msg := label + " " + session.ElapsedLabel() + "s"
	tw := text.BoundString(r.face, msg).Dx()
	text.Draw(screen, msg, r.face, bx+(bw-tw)/2, by+bh/2+4, colorHUD)
}

func (r *Renderer) drawTextRight(screen *ebiten.Image, s string, right, y int, clr color.Color) {
	tw := text.BoundString(r.face, s).Dx()
	text.Draw(screen, s, r.face, right-tw, y, clr)
}
