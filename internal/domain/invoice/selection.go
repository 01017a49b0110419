package invoice

// Selection is an ordered, duplicate-free set of invoice refs picked by an
// operator for a batch action. Order follows first insertion.
type Selection struct {
	refs  []string
	index map[string]bool
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{index: make(map[string]bool)}
}

// NewSelectionFrom creates a selection seeded with the given refs.
// Duplicates and empty refs are dropped.
func NewSelectionFrom(refs []string) *Selection {
	s := NewSelection()
	for _, ref := range refs {
		s.Add(ref)
	}
	return s
}

// Add puts a ref into the selection. Adding an already-selected ref is a
// no-op. Returns true when the selection changed.
func (s *Selection) Add(ref string) bool {
	if ref == "" || s.index[ref] {
		return false
	}
	s.index[ref] = true
	s.refs = append(s.refs, ref)
	return true
}

// Remove drops a ref from the selection. Returns true when the selection
// changed.
func (s *Selection) Remove(ref string) bool {
	if !s.index[ref] {
		return false
	}
	delete(s.index, ref)
	for i, r := range s.refs {
		if r == ref {
			s.refs = append(s.refs[:i], s.refs[i+1:]...)
			break
		}
	}
	return true
}

// Toggle flips membership of a ref. Returns true when the ref is selected
// after the call.
func (s *Selection) Toggle(ref string) bool {
	if s.index[ref] {
		s.Remove(ref)
		return false
	}
	return s.Add(ref)
}

// SelectAll adds every given ref, keeping already-selected ones in place.
func (s *Selection) SelectAll(refs []string) {
	for _, ref := range refs {
		s.Add(ref)
	}
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.refs = nil
	s.index = make(map[string]bool)
}

// Contains reports whether the ref is selected.
func (s *Selection) Contains(ref string) bool {
	return s.index[ref]
}

// Count returns the number of selected refs.
func (s *Selection) Count() int {
	return len(s.refs)
}

// IsEmpty reports whether nothing is selected.
func (s *Selection) IsEmpty() bool {
	return len(s.refs) == 0
}

// Refs returns the selected refs in insertion order, in a defensive copy.
func (s *Selection) Refs() []string {
	out := make([]string, len(s.refs))
	copy(out, s.refs)
	return out
}
