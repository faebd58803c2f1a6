package tui

import "testing"

func TestToggleSet(t *testing.T) {
	s := NewToggleSet()

	if s.Has(1) {
		t.Error("new set should be empty")
	}
	if !s.Toggle(1) {
		t.Error("first toggle should expand")
	}
	if !s.Has(1) {
		t.Error("id 1 should be expanded")
	}
	if s.Toggle(1) {
		t.Error("second toggle should collapse")
	}
	if s.Has(1) {
		t.Error("id 1 should be collapsed again")
	}
}

func TestTreeStateLevelsAreIndependent(t *testing.T) {
	tree := NewTreeState()

	tree.Departments.Toggle(5)
	if tree.Courses.Has(5) || tree.Sections.Has(5) {
		t.Error("expanding a department must not touch other levels")
	}

	tree.Courses.Toggle(5)
	tree.Departments.Toggle(5) // collapse the department
	if !tree.Courses.Has(5) {
		t.Error("collapsing a department must not collapse its courses")
	}
}
