package tui

import (
	"fmt"
	"strings"
)

func (m Model) renderStudents() string {
	if m.studentsLoading {
		return m.loadingLine("students")
	}
	if m.studentsErr != "" {
		return m.styles.StatusErr.Render(m.studentsErr) + "\n" +
			m.styles.Help.Render("r: retry")
	}
	if len(m.students) == 0 {
		return m.styles.RowMuted.Render("No students found.")
	}

	var b strings.Builder
	b.WriteString(m.styles.Row.Render("Select a student") + "\n\n")

	visible := m.bodyHeight() - 2
	start := windowStart(m.studentCursor, len(m.students), visible)
	end := start + visible
	if end > len(m.students) {
		end = len(m.students)
	}

	for i := start; i < end; i++ {
		s := m.students[i]
		line := fmt.Sprintf("  %-12s %-28s %s", s.StudentNumber, s.FullName(), s.Email)
		if i == m.studentCursor {
			line = m.styles.RowCursor.Render("> " + line[2:])
		} else {
			line = m.styles.Row.Render(line)
		}
		b.WriteString(m.fitLine(line) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
