package catalog

// PageSize is how many items a reveal step adds, and how many are shown
// after every filter change.
const PageSize = 3

// FilterState is the state of one filterable catalog widget.
type FilterState struct {
	Active  Category
	Visible int
}

// NewFilterState returns the initial state: every category, first page.
func NewFilterState() FilterState {
	return FilterState{Active: All, Visible: PageSize}
}

// SetFilter switches the active category and always goes back to the first
// page. Unknown categories are accepted as-is and simply match nothing.
func (s *FilterState) SetFilter(c Category) {
	s.Active = c
	s.Visible = PageSize
}

// RevealMore shows one more page. Derive caps the result at the list length.
func (s *FilterState) RevealMore() {
	s.Visible += PageSize
}

// ShowMore reports whether the reveal control should be offered for a
// filtered list of n items.
func (s FilterState) ShowMore(n int) bool {
	return s.Visible < n
}

// Derive filters items by the active category, keeping their order, and
// returns the filtered list together with its visible prefix.
func Derive[T Item](s FilterState, items []T) (filtered, visible []T) {
	if s.Active == All {
		filtered = items
	} else {
		filtered = make([]T, 0, len(items))
		for _, it := range items {
			if it.ItemCategory() == s.Active {
				filtered = append(filtered, it)
			}
		}
	}

	n := min(max(s.Visible, 0), len(filtered))
	return filtered, filtered[:n:n]
}

// ExpandState tracks the single expanded card of a card grid. The zero value
// has nothing expanded.
type ExpandState struct {
	Expanded ID
}

// Toggle collapses id if it is the expanded card, otherwise expands it and
// implicitly collapses whatever was open before.
func (s *ExpandState) Toggle(id ID) {
	if s.Expanded == id {
		s.Expanded = ""
		return
	}
	s.Expanded = id
}

func (s ExpandState) IsExpanded(id ID) bool {
	return id != "" && s.Expanded == id
}
