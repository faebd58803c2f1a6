package tui

import (
	"fmt"
	"strings"

	"github.com/nmoliner/eduquery/internal/catalog"
)

func (m Model) renderEnrolled() string {
	if !m.studentSelected() {
		return m.styles.RowMuted.Render("Select a student to see enrollments.")
	}
	if m.enrolledLoading {
		return m.loadingLine("enrolled courses")
	}
	if m.enrolledErr != "" {
		return m.styles.StatusErr.Render(m.enrolledErr) + "\n" +
			m.styles.Help.Render("r: retry")
	}
	if len(m.enrolled) == 0 {
		return m.styles.RowMuted.Render("Not enrolled in any courses yet.")
	}

	var b strings.Builder
	visible := m.bodyHeight() - 2
	start := windowStart(m.enrolledCursor, len(m.enrolled), visible)
	end := start + visible
	if end > len(m.enrolled) {
		end = len(m.enrolled)
	}

	for i := start; i < end; i++ {
		c := m.enrolled[i]
		instructor := c.InstructorName
		if instructor == "" {
			instructor = "TBA"
		}
		line := fmt.Sprintf("  %s %s  %s (%d cr)  %s",
			c.CourseCode, c.SectionCode, c.CourseTitle, c.Credits,
			m.styles.RowMuted.Render(instructor))

		if m.actions.IsPending(c.SectionID) {
			line += "  " + m.spinner.View() + " cancelling..."
		} else if fb, ok := m.actions.Feedback(c.SectionID); ok {
			line += "  " + m.renderFeedback(fb)
		}

		if i == m.enrolledCursor {
			line = m.styles.RowCursor.Render(line)
		} else {
			line = m.styles.Row.Render(line)
		}
		b.WriteString(m.fitLine(line) + "\n")
	}

	b.WriteString("\n" + m.styles.Help.Render(
		fmt.Sprintf("%d course%s, %d credits total",
			len(m.enrolled), plural(len(m.enrolled)), catalog.TotalCredits(m.enrolled))))
	return b.String()
}
