package tui

import (
	"strings"

	"github.com/nmoliner/eduquery/internal/catalog"
)

// normalizeQuery lowercases and trims a filter query.
func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// deptFieldsMatch reports whether the department's own fields match.
func deptFieldsMatch(d *catalog.Department, query string) bool {
	return strings.Contains(strings.ToLower(d.DeptCode), query) ||
		strings.Contains(strings.ToLower(d.DeptName), query)
}

// courseMatches reports whether a course matches the filter query.
func courseMatches(c *catalog.Course, query string) bool {
	return strings.Contains(strings.ToLower(c.CourseCode), query) ||
		strings.Contains(strings.ToLower(c.CourseTitle), query)
}

// departmentMatches reports whether a department or any of its courses
// matches the filter query.
func departmentMatches(d *catalog.Department, query string) bool {
	if deptFieldsMatch(d, query) {
		return true
	}
	for i := range d.Courses {
		if courseMatches(&d.Courses[i], query) {
			return true
		}
	}
	return false
}

// plural returns "" for 1, "s" otherwise.
func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
