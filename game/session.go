package game

import (
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"time"
)

// BestTimes is the durable per-grid-size record of the fastest completed
// runs. Implementations must be monotonic: Save only lowers a record.
type BestTimes interface {
	// Load returns the recorded best for a grid size, or ok=false when
	// none has been recorded.
	Load(size int) (best time.Duration, ok bool, err error)

	// Save records candidate as the new best for a grid size if no
	// record exists or candidate beats the current one.
	Save(size int, candidate time.Duration) error
}

// FeedbackClass classifies the transient visual response to an activation.
type FeedbackClass int

const (
	FeedbackNone FeedbackClass = iota
	FeedbackCorrect
	FeedbackWrong
)

// Feedback tells the presentation layer how to react to one activation.
type Feedback struct {
	Class FeedbackClass

	// MarkFound asks the presentation to permanently mark the cell
	MarkFound bool

	// Won is set on the activation that completes the run
	Won bool
}

// CellActivated is the event fired when the player selects a cell. Value
// is the number bound to that cell.
type CellActivated struct {
	Value int
}

// TimerTick is the event fired on the presentation's update cadence to
// refresh the elapsed-time display.
type TimerTick struct{}

// Session is the state machine for one run of the table. It owns the
// board, the current target number, the stopwatch, and the best-time
// record lookup for the active grid size.
//
// The machine has three states: not started (target 1, nothing running),
// in progress (timer running, target advancing), and won (target past
// the last cell, terminal until the next reset).
type Session struct {
	board   *Board
	watch   *Stopwatch
	records BestTimes

	gridSize   int
	target     int
	inProgress bool

	best    time.Duration
	hasBest bool
}

// NewSession generates a board of the given size and a fresh session
// around it. Out-of-range sizes fall back to DefaultGridSize.
func NewSession(size int, r *rand.Rand, records BestTimes) *Session {
	s := &Session{watch: NewStopwatch(), records: records}
	s.Reset(size, r)
	return s
}

// Reset discards the current run entirely and generates a fresh board of
// the given size. A running stopwatch is stopped first, so no elapsed
// updates outlive the old run.
func (s *Session) Reset(size int, r *rand.Rand) {
	if size < MinGridSize || size > MaxGridSize {
		log.Printf("grid size %d out of range [%d, %d], using %d", size, MinGridSize, MaxGridSize, DefaultGridSize)
		size = DefaultGridSize
	}

	s.watch.Stop()
	s.watch = &Stopwatch{now: s.watch.now}

	s.gridSize = size
	s.board = NewBoard(size, r)
	s.target = 1
	s.inProgress = false
	s.reloadBest()
}

// Board returns the current board.
func (s *Session) Board() *Board {
	return s.board
}

// GridSize returns the active grid size N.
func (s *Session) GridSize() int {
	return s.gridSize
}

// Target returns the next number the player must activate.
func (s *Session) Target() int {
	return s.target
}

// InProgress reports whether a timed run is underway.
func (s *Session) InProgress() bool {
	return s.inProgress
}

// Won reports whether every number has been found this run.
func (s *Session) Won() bool {
	return s.target > s.board.CellCount()
}

// Activate applies one cell-activation event and returns the feedback
// instructions for the presentation layer.
//
// A wrong value never changes state: the target stays put, the cell is
// not marked, and the timer is untouched. Cells already found stay
// clickable; their value can no longer match the target, so they land in
// the wrong branch like any other miss.
func (s *Session) Activate(ev CellActivated) Feedback {
	if s.Won() {
		return Feedback{}
	}

	if ev.Value != s.target {
		return Feedback{Class: FeedbackWrong}
	}

	if s.target == 1 {
		s.watch.Start()
		s.inProgress = true
	}

	s.board.markFound(ev.Value)
	s.target++

	if s.target > s.board.CellCount() {
		s.finish()
		return Feedback{Class: FeedbackCorrect, MarkFound: true, Won: true}
	}
	return Feedback{Class: FeedbackCorrect, MarkFound: true}
}

// finish stops the clock and records the run. Record keeping is a
// non-critical enhancement: a failed save is logged and the win stands.
func (s *Session) finish() {
	final := s.watch.Stop()
	s.inProgress = false

	if err := s.records.Save(s.gridSize, final); err != nil {
		log.Printf("save best time for size %d: %v", s.gridSize, err)
	}
	s.reloadBest()
}

func (s *Session) reloadBest() {
	best, ok, err := s.records.Load(s.gridSize)
	if err != nil {
		log.Printf("load best time for size %d: %v", s.gridSize, err)
		ok = false
	}
	s.best, s.hasBest = best, ok
}

// Tick applies one timer-tick event and returns the sampled elapsed
// time: live while the run is underway, frozen at the final time after a
// win, zero before the start.
func (s *Session) Tick(TimerTick) time.Duration {
	return s.watch.Sample()
}

// Elapsed samples the run's elapsed time without an explicit event.
func (s *Session) Elapsed() time.Duration {
	return s.watch.Sample()
}

// TargetLabel returns the display text for the next number to find.
func (s *Session) TargetLabel() string {
	if s.Won() {
		return "Done!"
	}
	return strconv.Itoa(s.target)
}

// ElapsedLabel returns the elapsed time as a two-decimal string.
func (s *Session) ElapsedLabel() string {
	return formatSeconds(s.Elapsed())
}

// BestLabel returns the best time for the active grid size as a
// two-decimal string, or "--.--" when no record exists.
func (s *Session) BestLabel() string {
	if !s.hasBest {
		return "--.--"
	}
	return formatSeconds(s.best)
}

func formatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.2f", d.Seconds())
}
