package picker

// Selection is an ordered set of option ids. Ids keep the order in which they
// were first added.
type Selection struct {
	ids   []string
	index map[string]struct{}
}

// NewSelection builds a selection from ids, dropping duplicates.
func NewSelection(ids ...string) *Selection {
	s := &Selection{index: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Has reports whether id is selected.
func (s *Selection) Has(id string) bool {
	_, ok := s.index[id]
	return ok
}

// Add selects id. Adding an id twice is a no-op.
func (s *Selection) Add(id string) {
	if s.Has(id) {
		return
	}
	s.index[id] = struct{}{}
	s.ids = append(s.ids, id)
}

// Remove deselects id.
func (s *Selection) Remove(id string) {
	if !s.Has(id) {
		return
	}
	delete(s.index, id)
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i:i], s.ids[i+1:]...)
			break
		}
	}
}

// Toggle flips membership of id.
func (s *Selection) Toggle(id string) {
	if s.Has(id) {
		s.Remove(id)
		return
	}
	s.Add(id)
}

// Reset empties the selection.
func (s *Selection) Reset() {
	s.ids = nil
	s.index = map[string]struct{}{}
}

// Len returns the number of selected ids.
func (s *Selection) Len() int {
	return len(s.ids)
}

// IDs returns a copy of the selected ids in selection order.
func (s *Selection) IDs() []string {
	return append([]string(nil), s.ids...)
}
