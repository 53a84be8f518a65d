// Package nav tracks the current slide of a presentation.
package nav

// State is the current slide index and the number of slides.
// The index is clamped to [0, total) and never wraps.
//
// State is a plain value and is not safe for concurrent use.
type State struct {
	current int
	total   int
}

// New returns a State positioned on the first of total slides.
func New(total int) State {
	if total < 0 {
		total = 0
	}
	return State{total: total}
}

// Advance moves to the next slide. It reports whether the index changed.
func (s *State) Advance() bool {
	if s.current >= s.total-1 {
		return false
	}
	s.current++
	return true
}

// Retreat moves to the previous slide. It reports whether the index changed.
func (s *State) Retreat() bool {
	if s.current <= 0 {
		return false
	}
	s.current--
	return true
}

func (s State) Index() int { return s.current }

func (s State) Total() int { return s.total }

// Progress returns the 1-based position as a fraction of total.
func (s State) Progress() float64 {
	if s.total == 0 {
		return 0
	}
	return float64(s.current+1) / float64(s.total)
}
