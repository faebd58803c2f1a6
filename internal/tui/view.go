package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// View renders the active screen.
func (m Model) View() string {
	if m.width <= 0 {
		return "Loading..."
	}

	var body string
	switch m.view {
	case ViewStudents:
		body = m.renderStudents()
	case ViewReports:
		body = m.renderReports()
	default:
		body = m.renderEnrollment()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	title := m.styles.Title.Render("eduquery")
	who := ""
	if m.selected != nil {
		who = m.styles.Help.Render("  " + m.selected.FullName() + " (" + m.selected.StudentNumber + ")")
	}
	return title + who
}

func (m Model) renderEnrollment() string {
	tabs := []string{"Course Catalog", "Enrolled Courses", "Weekly Schedule"}
	var bar strings.Builder
	for i, label := range tabs {
		style := m.styles.TabInactive
		if Tab(i) == m.tab {
			style = m.styles.TabActive
		}
		bar.WriteString(style.Render(fmt.Sprintf("%d %s", i+1, label)))
	}

	var body string
	switch m.tab {
	case TabCatalog:
		body = m.renderCatalog()
	case TabEnrolled:
		body = m.renderEnrolled()
	default:
		body = m.renderSchedule()
	}

	return lipgloss.JoinVertical(lipgloss.Left, bar.String(), body)
}

func (m Model) renderFooter() string {
	if m.statusMsg != "" && time.Now().Before(m.statusTime) {
		style := m.styles.Status
		if m.statusErr {
			style = m.styles.StatusErr
		}
		return style.Render(m.statusMsg)
	}
	return m.styles.Help.Render(m.helpLine())
}

func (m Model) helpLine() string {
	if m.filtering {
		return "enter: apply filter • esc: clear filter"
	}
	switch m.view {
	case ViewStudents:
		return "j/k: move • enter: select student • g: reports • r: refresh • q: quit"
	case ViewReports:
		return "1/2/3: report • r: refresh • esc: back • q: quit"
	}
	switch m.tab {
	case TabCatalog:
		return "j/k: move • enter: expand • e: enroll • /: filter • tab: next pane • esc: students • q: quit"
	case TabEnrolled:
		return "j/k: move • c: cancel enrollment • tab: next pane • esc: students • q: quit"
	default:
		return "j/k: scroll • y: copy schedule • tab: next pane • esc: students • q: quit"
	}
}

// bodyHeight is the line budget for the active screen's list or grid,
// after the header, tab bar, and footer.
func (m Model) bodyHeight() int {
	h := m.height - 4
	if h < 4 {
		h = 4
	}
	return h
}

// windowStart returns the first visible index of a list window that
// keeps cursor in view.
func windowStart(cursor, total, visible int) int {
	if total <= visible {
		return 0
	}
	start := cursor - visible/2
	if start < 0 {
		start = 0
	}
	if start > total-visible {
		start = total - visible
	}
	return start
}

// fitLine truncates a rendered line to the terminal width.
func (m Model) fitLine(s string) string {
	return ansi.Truncate(s, m.width, "…")
}

// loadingLine renders the shared spinner row.
func (m Model) loadingLine(what string) string {
	return m.spinner.View() + " Loading " + what + "..."
}
