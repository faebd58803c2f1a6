package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nmoliner/eduquery/internal/enrollment"
	"github.com/nmoliner/eduquery/internal/gateway"
	"github.com/nmoliner/eduquery/internal/schedule"
	"github.com/nmoliner/eduquery/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case commands.StudentsLoadedMsg:
		m.students = msg.Students
		m.studentsLoading = false
		m.studentsErr = ""
		if m.studentCursor >= len(m.students) {
			m.studentCursor = 0
		}
		return m, nil

	case commands.CatalogLoadedMsg:
		m.departments = msg.Departments
		m.catalogLoading = false
		m.catalogErr = ""
		m.rebuildRows()
		return m, nil

	case commands.EnrolledLoadedMsg:
		m.enrolled = msg.Courses
		m.enrolledLoading = false
		m.enrolledErr = ""
		if m.enrolledCursor >= len(m.enrolled) {
			m.enrolledCursor = 0
		}
		return m, nil

	case commands.ScheduleLoadedMsg:
		m.scheduleCourses = msg.Courses
		m.placement = schedule.Build(msg.Courses)
		m.scheduleLoading = false
		m.scheduleErr = ""
		if n := len(m.placement.Skipped); n > 0 {
			return m, m.setStatus(fmt.Sprintf("%d meeting%s with invalid times skipped", n, plural(n)), true, 5*time.Second)
		}
		return m, nil

	case commands.UtilizationLoadedMsg:
		m.utilRows = msg.Rows
		m.reportsLoading = false
		m.reportsErr = ""
		return m, nil

	case commands.StudentLoadLoadedMsg:
		m.studentLoad = msg.Load
		m.hasStudentLoad = true
		m.reportsLoading = false
		m.reportsErr = ""
		return m, nil

	case commands.WorkloadLoadedMsg:
		m.workloadRows = msg.Rows
		m.reportsLoading = false
		m.reportsErr = ""
		return m, nil

	case commands.LoadFailedMsg:
		switch msg.Scope {
		case commands.ScopeStudents:
			m.studentsLoading = false
			m.studentsErr = msg.Message
		case commands.ScopeCatalog:
			m.catalogLoading = false
			m.catalogErr = msg.Message
		case commands.ScopeEnrolled:
			m.enrolledLoading = false
			m.enrolledErr = msg.Message
		case commands.ScopeSchedule:
			m.scheduleLoading = false
			m.scheduleErr = msg.Message
		case commands.ScopeReports:
			m.reportsLoading = false
			m.reportsErr = msg.Message
		}
		return m, nil

	case commands.ActionSettledMsg:
		return m.handleActionSettled(msg)

	case commands.FeedbackExpiredMsg:
		m.actions.Expire(msg.SectionID, msg.Generation)
		return m, nil

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	if m.filtering {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.rebuildRows()
		return m, cmd
	}

	return m, nil
}

// handleActionSettled records an action result and schedules the
// feedback auto-clear. On success, the data behind the visible tab is
// re-fetched so enrollment counts and the grid stay truthful.
func (m Model) handleActionSettled(msg commands.ActionSettledMsg) (tea.Model, tea.Cmd) {
	kind := enrollment.Success
	var text string
	if msg.Err != nil {
		kind = enrollment.Error
		text = gateway.UserMessage(msg.Err)
	} else if msg.Action == commands.ActionEnroll {
		text = "Enrolled successfully!"
	} else {
		text = "Enrollment cancelled."
	}

	generation := m.actions.Settle(msg.SectionID, kind, text)
	LogAction("ACTION_SETTLED", msg.SectionID, text)
	cmds := []tea.Cmd{commands.ExpireFeedback(msg.SectionID, generation)}

	if msg.Err == nil {
		if cmd := m.refreshTab(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}
