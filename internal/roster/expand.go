package roster

import "sort"

// Expansion tracks which account IDs currently show their child rows.
//
// Membership is independent of filtering and pagination: an account stays
// marked expanded while scrolled out of view or filtered away, and its child
// rows reappear when it does. The set lives for one screen session and is
// never persisted.
type Expansion struct {
	ids map[int]struct{}
}

// NewExpansion creates an empty expansion set.
func NewExpansion() *Expansion {
	return &Expansion{ids: make(map[int]struct{})}
}

// Toggle flips the expansion state of id. Toggling an id that is not
// currently visible is legal; it simply has no visible effect until the id
// scrolls back into view.
func (e *Expansion) Toggle(id int) {
	if _, ok := e.ids[id]; ok {
		delete(e.ids, id)
		return
	}
	e.ids[id] = struct{}{}
}

// IsExpanded reports whether id is currently expanded.
func (e *Expansion) IsExpanded(id int) bool {
	_, ok := e.ids[id]
	return ok
}

// Clear collapses everything.
func (e *Expansion) Clear() {
	e.ids = make(map[int]struct{})
}

// Len returns the number of expanded IDs.
func (e *Expansion) Len() int { return len(e.ids) }

// IDs returns the expanded IDs in ascending order. The slice is a copy.
func (e *Expansion) IDs() []int {
	ids := make([]int, 0, len(e.ids))
	for id := range e.ids {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
