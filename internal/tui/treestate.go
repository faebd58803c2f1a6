package tui

// ToggleSet is a set of entity ids whose membership marks an expanded
// node. Toggling one set never touches another; expanding a department
// does not auto-expand its courses.
type ToggleSet map[int]bool

// NewToggleSet creates an empty set.
func NewToggleSet() ToggleSet {
	return make(ToggleSet)
}

// Toggle flips membership and reports the new state.
func (s ToggleSet) Toggle(id int) bool {
	if s[id] {
		delete(s, id)
		return false
	}
	s[id] = true
	return true
}

// Has reports membership.
func (s ToggleSet) Has(id int) bool {
	return s[id]
}

// Len returns the number of expanded ids.
func (s ToggleSet) Len() int {
	return len(s)
}

// TreeState tracks which catalog nodes are expanded. The three levels
// are independent; ids are stable across refetches so expansion
// survives a catalog refresh.
type TreeState struct {
	Departments ToggleSet
	Courses     ToggleSet
	Sections    ToggleSet
}

// NewTreeState creates a fully collapsed tree.
func NewTreeState() TreeState {
	return TreeState{
		Departments: NewToggleSet(),
		Courses:     NewToggleSet(),
		Sections:    NewToggleSet(),
	}
}
