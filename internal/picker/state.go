package picker

import (
	"errors"

	"github.com/csheth/sessionnote/internal/options"
)

// ErrAlreadyOpen is returned when a second picker is requested while one is
// still open.
var ErrAlreadyOpen = errors.New("picker: another picker is already open")

// State is either closed or holds exactly one open picker. The form owns it,
// so at most one picker can exist at a time.
type State struct {
	active *Picker
}

// IsOpen reports whether a picker is open.
func (s *State) IsOpen() bool {
	return s.active != nil
}

// Active returns the open picker, or nil when closed.
func (s *State) Active() *Picker {
	return s.active
}

// Open starts a picker for category seeded from committed.
func (s *State) Open(category options.Category, source Source, committed []string) (*Picker, error) {
	if s.active != nil {
		return nil, ErrAlreadyOpen
	}
	s.active = Open(category, source, committed)
	return s.active, nil
}

// Commit closes the open picker and returns its category key with the
// selection to store. ok is false when nothing was open.
func (s *State) Commit() (category string, ids []string, ok bool) {
	if s.active == nil {
		return "", nil, false
	}
	p := s.active
	s.active = nil
	return p.Category().Key, p.Commit(), true
}

// Cancel closes the open picker without touching any committed selection.
func (s *State) Cancel() {
	if s.active == nil {
		return
	}
	s.active.Cancel()
	s.active = nil
}
