package tui

import (
	"fmt"
	"strings"

	"github.com/nmoliner/eduquery/internal/catalog"
	"github.com/nmoliner/eduquery/internal/enrollment"
)

func (m Model) renderCatalog() string {
	if m.catalogLoading {
		return m.loadingLine("catalog")
	}
	if m.catalogErr != "" {
		return m.styles.StatusErr.Render(m.catalogErr) + "\n" +
			m.styles.Help.Render("r: retry")
	}

	var b strings.Builder
	if m.filtering || m.filter.Value() != "" {
		b.WriteString("  " + m.filter.View() + "\n")
	}
	if len(m.rows) == 0 {
		b.WriteString(m.styles.RowMuted.Render("No matching courses."))
		return b.String()
	}

	visible := m.bodyHeight() - 1
	start := windowStart(m.catalogCursor, len(m.rows), visible)
	end := start + visible
	if end > len(m.rows) {
		end = len(m.rows)
	}

	for i := start; i < end; i++ {
		b.WriteString(m.fitLine(m.renderTreeRow(m.rows[i], i == m.catalogCursor)) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderTreeRow(row treeRow, cursor bool) string {
	dept := m.departments[row.dept]

	var line string
	switch row.kind {
	case rowDepartment:
		marker := "▸"
		if m.tree.Departments.Has(dept.DeptID) || normalizeQuery(m.filter.Value()) != "" {
			marker = "▾"
		}
		line = fmt.Sprintf("%s %s - %s (%d course%s)",
			marker, dept.DeptCode, dept.DeptName, len(dept.Courses), plural(len(dept.Courses)))

	case rowCourse:
		course := dept.Courses[row.course]
		marker := "▸"
		if m.tree.Courses.Has(course.CourseID) {
			marker = "▾"
		}
		line = fmt.Sprintf("  %s %s: %s (%d cr)  %s",
			marker, course.CourseCode, course.CourseTitle, course.Credits,
			m.styles.RowMuted.Render(course.InstructorSummary()))

	case rowSection:
		section := dept.Courses[row.course].Sections[row.section]
		line = m.renderSectionRow(section)
	}

	if cursor {
		return m.styles.RowCursor.Render(line)
	}
	return m.styles.Row.Render(line)
}

func (m Model) renderSectionRow(section catalog.Section) string {
	instructor := section.InstructorName
	if instructor == "" {
		instructor = "TBA"
	}
	line := fmt.Sprintf("      %s  %s  %s",
		section.SectionCode, instructor, m.seatBadge(section))

	if m.actions.IsPending(section.SectionID) {
		return line + "  " + m.spinner.View() + " enrolling..."
	}
	if fb, ok := m.actions.Feedback(section.SectionID); ok {
		return line + "  " + m.renderFeedback(fb)
	}
	return line
}

// seatBadge renders remaining capacity the way the catalog marks it:
// full sections in red, nearly full in warning, open in green.
func (m Model) seatBadge(section catalog.Section) string {
	switch {
	case section.IsFull():
		return m.styles.BadgeFull.Render("Full")
	case section.RemainingSlots <= 3:
		return m.styles.BadgeLow.Render(fmt.Sprintf("%d left", section.RemainingSlots))
	default:
		return m.styles.BadgeOpen.Render(fmt.Sprintf("%d/%d open", section.RemainingSlots, section.Capacity))
	}
}

func (m Model) renderFeedback(fb enrollment.Feedback) string {
	if fb.Kind == enrollment.Success {
		return m.styles.FeedbackSuccess.Render(fb.Message)
	}
	return m.styles.FeedbackError.Render(fb.Message)
}
