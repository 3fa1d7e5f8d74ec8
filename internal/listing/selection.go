package listing

// Selection is the set of row ids ticked on a list screen. It keeps insertion
// order so bulk actions act on ids in the order they were shown.
type Selection struct {
	ids   map[string]struct{}
	order []string
}

// NewSelection returns a selection containing ids (duplicates and blanks dropped).
func NewSelection(ids ...string) *Selection {
	s := &Selection{ids: make(map[string]struct{})}
	for _, id := range ids {
		s.Select(id)
	}
	return s
}

// Select adds id.
func (s *Selection) Select(id string) {
	if id == "" {
		return
	}
	if _, ok := s.ids[id]; ok {
		return
	}
	s.ids[id] = struct{}{}
	s.order = append(s.order, id)
}

// Deselect removes id.
func (s *Selection) Deselect(id string) {
	if _, ok := s.ids[id]; !ok {
		return
	}
	delete(s.ids, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Toggle flips id.
func (s *Selection) Toggle(id string) {
	if s.Has(id) {
		s.Deselect(id)
		return
	}
	s.Select(id)
}

// Has reports whether id is selected.
func (s *Selection) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len is the number of selected ids.
func (s *Selection) Len() int { return len(s.order) }

// IDs returns the selected ids in selection order.
func (s *Selection) IDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.ids = make(map[string]struct{})
	s.order = nil
}

// SelectAll makes the selection exactly the displayed ids.
func (s *Selection) SelectAll(displayed []string) {
	s.Clear()
	for _, id := range displayed {
		s.Select(id)
	}
}

// ToggleAll is the header checkbox: select every displayed row, or clear when
// they already are all selected.
func (s *Selection) ToggleAll(displayed []string) {
	if s.AllSelected(displayed) {
		s.Clear()
		return
	}
	s.SelectAll(displayed)
}

// AllSelected reports whether the page is non-empty and every displayed id is selected.
func (s *Selection) AllSelected(displayed []string) bool {
	if len(displayed) == 0 {
		return false
	}
	for _, id := range displayed {
		if !s.Has(id) {
			return false
		}
	}
	return true
}

// Prune drops every id that is not displayed, keeping selection ⊆ displayed.
func (s *Selection) Prune(displayed []string) {
	shown := make(map[string]struct{}, len(displayed))
	for _, id := range displayed {
		shown[id] = struct{}{}
	}
	kept := s.order[:0]
	for _, id := range s.order {
		if _, ok := shown[id]; ok {
			kept = append(kept, id)
		} else {
			delete(s.ids, id)
		}
	}
	s.order = kept
}
