package game

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// flashTicks is how long transient cell feedback stays visible (~0.3s at
// 60 TPS).
const flashTicks = 18

// cellFlash is a transient feedback mark on a single cell.
type cellFlash struct {
	index int
	class FeedbackClass
	ticks int
}

// Game wires the session state machine to the Ebiten loop: clicks become
// cell-activation events, the update tick samples the stopwatch, and the
// renderer derives every visual from session state.
type Game struct {
	config   Config
	session  *Session
	renderer *Renderer
	rng      *rand.Rand
	flash    cellFlash
	debug    bool
}

// NewGame creates a new game instance around a best-time store.
func NewGame(config Config, records BestTimes) *Game {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Game{
		config:   config,
		session:  NewSession(config.GridSize, rng, records),
		renderer: NewRenderer(),
		rng:      rng,
	}
}

// Update handles one tick of input and timer sampling.
func (g *Game) Update() error {
	g.handleKeys()
	g.session.Tick(TimerTick{})

	if g.flash.ticks > 0 {
		g.flash.ticks--
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if col, row, ok := g.cellAt(mx, my); ok {
			g.activateCell(col, row)
		}
	}

	return nil
}

// activateCell feeds one cell-activation event into the session and arms
// the transient feedback flash it asks for.
func (g *Game) activateCell(col, row int) {
	board := g.session.Board()
	fb := g.session.Activate(CellActivated{Value: board.ValueAt(col, row)})
	if fb.Class != FeedbackNone {
		g.flash = cellFlash{
			index: row*board.Size + col,
			class: fb.Class,
			ticks: flashTicks,
		}
	}
}

func (g *Game) handleKeys() {
	for n := MinGridSize; n <= MaxGridSize; n++ {
		if inpututil.IsKeyJustPressed(ebiten.KeyDigit0 + ebiten.Key(n)) {
			g.setGridSize(n)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reset(g.session.GridSize())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug = !g.debug
	}
}

func (g *Game) setGridSize(size int) {
	g.reset(size)
	g.resizeWindow()
}

// reset regenerates the board. The session stops its own stopwatch, so a
// reset mid-run leaves nothing ticking behind.
func (g *Game) reset(size int) {
	g.session.Reset(size, g.rng)
	g.flash = cellFlash{}
}

func (g *Game) resizeWindow() {
	ebiten.SetWindowSize(g.Layout(0, 0))
}

// cellAt maps a cursor position to board coordinates.
func (g *Game) cellAt(mx, my int) (int, int, bool) {
	bx0, by0 := outerPadding, topPanelHeight
	if mx < bx0 || my < by0 {
		return 0, 0, false
	}
	col := (mx - bx0) / g.config.CellSize
	row := (my - by0) / g.config.CellSize
	n := g.session.GridSize()
	if col >= n || row >= n {
		return 0, 0, false
	}
	return col, row, true
}

// Draw renders the board and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen, g.session, g.config.CellSize, g.flash, g.debug)
}

// Layout returns the window size for the current grid.
func (g *Game) Layout(_, _ int) (int, int) {
	n := g.session.GridSize()
	w := n*g.config.CellSize + outerPadding*2
	h := topPanelHeight + n*g.config.CellSize + outerPadding
	return w, h
}
