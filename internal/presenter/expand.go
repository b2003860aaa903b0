package presenter

// ExpandState records which categories show their breakdown.
// It is presentation state only and never feeds back into the report.
type ExpandState struct {
	all      bool
	expanded map[string]bool
}

// NewExpandState returns a state with the given categories expanded.
func NewExpandState(categories ...string) *ExpandState {
	s := &ExpandState{expanded: make(map[string]bool)}
	for _, c := range categories {
		s.expanded[c] = true
	}
	return s
}

// ExpandAll makes every category report as expanded.
func (s *ExpandState) ExpandAll() {
	s.all = true
}

// Toggle flips a single category.
func (s *ExpandState) Toggle(category string) {
	s.expanded[category] = !s.IsExpanded(category)
}

// IsExpanded reports whether category shows its breakdown.
func (s *ExpandState) IsExpanded(category string) bool {
	if expanded, ok := s.expanded[category]; ok {
		return expanded
	}
	return s.all
}
