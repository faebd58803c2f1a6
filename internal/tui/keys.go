package tui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nmoliner/eduquery/internal/enrollment"
	"github.com/nmoliner/eduquery/internal/schedule"
	"github.com/nmoliner/eduquery/internal/tui/commands"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.filtering {
		return m.handleFilterKeys(msg)
	}
	switch m.view {
	case ViewStudents:
		return m.handleStudentKeys(msg)
	case ViewReports:
		return m.handleReportKeys(msg)
	default:
		return m.handleEnrollmentKeys(msg)
	}
}

// handleStudentKeys handles keys on the student selection screen.
func (m Model) handleStudentKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "up", "k":
		if m.studentCursor > 0 {
			m.studentCursor--
		}
	case "down", "j":
		if m.studentCursor < len(m.students)-1 {
			m.studentCursor++
		}

	case "enter":
		if m.studentCursor < len(m.students) {
			student := m.students[m.studentCursor]
			m.selected = &student
			m.view = ViewEnrollment
			m.tab = TabCatalog
			m.catalogLoading = true
			m.catalogErr = ""
			m.enrolledLoading = true
			m.enrolledErr = ""
			return m, tea.Batch(
				commands.LoadCatalog(m.svc),
				commands.LoadEnrolled(m.svc, student.StudentID),
			)
		}

	case "r":
		m.studentsLoading = true
		m.studentsErr = ""
		return m, commands.LoadStudents(m.svc)

	case "g":
		m.view = ViewReports
		return m, m.refreshReport()
	}
	return m, nil
}

// handleEnrollmentKeys handles keys in the tabbed enrollment view.
func (m Model) handleEnrollmentKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "esc":
		m.view = ViewStudents
		return m, nil

	case "tab":
		return m.switchTab((m.tab + 1) % 3)
	case "shift+tab":
		return m.switchTab((m.tab + 2) % 3)
	case "1":
		return m.switchTab(TabCatalog)
	case "2":
		return m.switchTab(TabEnrolled)
	case "3":
		return m.switchTab(TabSchedule)

	case "g":
		m.view = ViewReports
		return m, m.refreshReport()

	case "r":
		return m, m.refreshTab()
	}

	switch m.tab {
	case TabCatalog:
		return m.handleCatalogKeys(msg)
	case TabEnrolled:
		return m.handleEnrolledKeys(msg)
	default:
		return m.handleScheduleKeys(msg)
	}
}

// switchTab activates a tab and loads its data.
func (m Model) switchTab(tab Tab) (tea.Model, tea.Cmd) {
	m.tab = tab
	LogNavigation(m.view, m.tab)
	return m, m.refreshTab()
}

// handleCatalogKeys handles keys on the catalog tree.
func (m Model) handleCatalogKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.catalogCursor > 0 {
			m.catalogCursor--
		}
	case "down", "j":
		if m.catalogCursor < len(m.rows)-1 {
			m.catalogCursor++
		}

	case "enter", " ":
		row, ok := m.rowAtCursor()
		if !ok {
			break
		}
		switch row.kind {
		case rowDepartment:
			m.tree.Departments.Toggle(m.departments[row.dept].DeptID)
		case rowCourse:
			m.tree.Courses.Toggle(m.departments[row.dept].Courses[row.course].CourseID)
		case rowSection:
			m.tree.Sections.Toggle(m.departments[row.dept].Courses[row.course].Sections[row.section].SectionID)
		}
		m.rebuildRows()

	case "e":
		row, ok := m.rowAtCursor()
		if !ok || row.kind != rowSection {
			break
		}
		section := m.departments[row.dept].Courses[row.course].Sections[row.section]
		return m.beginEnroll(section.SectionID, section.IsFull())

	case "/":
		m.filtering = true
		m.filter.Focus()
		return m, nil
	}
	return m, nil
}

// handleFilterKeys handles typing in the catalog filter.
func (m Model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.rebuildRows()
		return m, nil
	case "enter":
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.rebuildRows()
	return m, cmd
}

// handleEnrolledKeys handles keys on the enrolled-course list.
func (m Model) handleEnrolledKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.enrolledCursor > 0 {
			m.enrolledCursor--
		}
	case "down", "j":
		if m.enrolledCursor < len(m.enrolled)-1 {
			m.enrolledCursor++
		}
	case "c", "x":
		if m.enrolledCursor < len(m.enrolled) {
			return m.beginCancel(m.enrolled[m.enrolledCursor].SectionID)
		}
	}
	return m, nil
}

// handleScheduleKeys handles keys on the schedule grid.
func (m Model) handleScheduleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.scheduleScroll > 0 {
			m.scheduleScroll--
		}
	case "down", "j":
		m.scheduleScroll++ // clamped at render time

	case "home":
		m.scheduleScroll = 0

	case "y":
		text := schedule.RenderText(m.placement)
		if err := clipboard.WriteAll(text); err != nil {
			return m, m.setStatus("Clipboard unavailable", true, 3*time.Second)
		}
		return m, m.setStatus("Schedule copied to clipboard", false, 3*time.Second)
	}
	return m, nil
}

// handleReportKeys handles keys on the reports screen.
func (m Model) handleReportKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.view = ViewStudents
		return m, nil
	case "1":
		m.report = ReportUtilization
		return m, m.refreshReport()
	case "2":
		m.report = ReportStudentLoad
		return m, m.refreshReport()
	case "3":
		m.report = ReportWorkload
		return m, m.refreshReport()
	case "r":
		return m, m.refreshReport()
	}
	return m, nil
}

// beginEnroll runs the enroll admission check and dispatches the
// request when admitted. A full section is refused locally with the
// same feedback channel the server path uses.
func (m Model) beginEnroll(sectionID int, isFull bool) (tea.Model, tea.Cmd) {
	if m.actions.IsPending(sectionID) {
		return m, nil
	}
	if isFull && m.studentSelected() {
		generation := m.actions.Settle(sectionID, enrollment.Error, "Section is full")
		return m, commands.ExpireFeedback(sectionID, generation)
	}
	outcome, generation := m.actions.Begin(sectionID, m.studentSelected())
	switch outcome {
	case enrollment.Started:
		LogAction("ENROLL_STARTED", sectionID, "")
		return m, commands.SubmitEnroll(m.svc, m.selectedID(), sectionID)
	case enrollment.NoStudent:
		return m, commands.ExpireFeedback(sectionID, generation)
	default: // Duplicate: ignore, request already in flight
		return m, nil
	}
}

// beginCancel runs the cancel admission check and dispatches the
// request when admitted.
func (m Model) beginCancel(sectionID int) (tea.Model, tea.Cmd) {
	outcome, generation := m.actions.Begin(sectionID, m.studentSelected())
	switch outcome {
	case enrollment.Started:
		LogAction("CANCEL_STARTED", sectionID, "")
		return m, commands.SubmitCancel(m.svc, m.selectedID(), sectionID)
	case enrollment.NoStudent:
		return m, commands.ExpireFeedback(sectionID, generation)
	default:
		return m, nil
	}
}
