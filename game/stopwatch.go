package game

import "time"

// Stopwatch is a wall-clock timer for one run: idle until Start, running
// until Stop. The clock is injectable for tests.
type Stopwatch struct {
	now     func() time.Time
	startAt time.Time
	elapsed time.Duration
	running bool
}

// NewStopwatch creates an idle stopwatch.
func NewStopwatch() *Stopwatch {
	return &Stopwatch{now: time.Now}
}

// Start records the start instant and begins running. No-op while
// already running.
func (s *Stopwatch) Start() {
	if s.running {
		return
	}
	s.startAt = s.now()
	s.elapsed = 0
	s.running = true
}

// Running reports whether the stopwatch is between Start and Stop.
func (s *Stopwatch) Running() bool {
	return s.running
}

// Sample returns the elapsed wall-clock time since Start while running,
// or the frozen final value while idle.
func (s *Stopwatch) Sample() time.Duration {
	if s.running {
		s.elapsed = s.now().Sub(s.startAt)
	}
	return s.elapsed
}

// Stop freezes the elapsed time and returns it. Stopping an idle
// stopwatch is a no-op that returns the same final value again.
func (s *Stopwatch) Stop() time.Duration {
	if s.running {
		s.elapsed = s.now().Sub(s.startAt)
		s.running = false
	}
	return s.elapsed
}
