package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nmoliner/eduquery/internal/catalog"
	"github.com/nmoliner/eduquery/internal/config"
	"github.com/nmoliner/eduquery/internal/enrollment"
	"github.com/nmoliner/eduquery/internal/gateway"
	"github.com/nmoliner/eduquery/internal/reports"
	"github.com/nmoliner/eduquery/internal/schedule"
	"github.com/nmoliner/eduquery/internal/tui/commands"
	"github.com/nmoliner/eduquery/internal/tui/theme"
)

// View is the top-level screen.
type View int

const (
	ViewStudents View = iota
	ViewEnrollment
	ViewReports
)

// Tab is the active pane inside the enrollment view.
type Tab int

const (
	TabCatalog Tab = iota
	TabEnrolled
	TabSchedule
)

// Report is the active analytical report.
type Report int

const (
	ReportUtilization Report = iota
	ReportStudentLoad
	ReportWorkload
)

// rowKind tags a flattened catalog row.
type rowKind int

const (
	rowDepartment rowKind = iota
	rowCourse
	rowSection
)

// treeRow is one visible line of the catalog tree, flattened for
// cursor navigation. Indexes point into Model.departments.
type treeRow struct {
	kind    rowKind
	dept    int
	course  int
	section int
}

// Model is the main console model.
type Model struct {
	svc    gateway.Service
	config *config.Config

	theme  *theme.Theme
	styles *Styles

	view   View
	tab    Tab
	report Report

	// Student selection
	students        []catalog.Student
	studentCursor   int
	selected        *catalog.Student
	studentsLoading bool
	studentsErr     string

	// Catalog tree
	departments    []catalog.Department
	tree           TreeState
	rows           []treeRow
	catalogCursor  int
	catalogLoading bool
	catalogErr     string
	filter         textinput.Model
	filtering      bool

	// Enrolled list
	enrolled        []catalog.EnrolledCourse
	enrolledCursor  int
	enrolledLoading bool
	enrolledErr     string

	// Schedule grid
	scheduleCourses []catalog.EnrolledCourse
	placement       schedule.Placement
	scheduleScroll  int
	scheduleLoading bool
	scheduleErr     string

	// Reports
	utilRows       []reports.SectionUtilization
	studentLoad    reports.StudentLoad
	hasStudentLoad bool
	workloadRows   []reports.InstructorWorkload
	reportsLoading bool
	reportsErr     string

	// Enrollment action state
	actions *enrollment.Coordinator

	// Components
	spinner spinner.Model

	// Transient status line
	statusMsg  string
	statusErr  bool
	statusTime time.Time

	width  int
	height int
}

// New creates a new console model.
func New(svc gateway.Service, cfg *config.Config) *Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("dark")
	}
	styles := NewStyles(t)

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = styles.Spinner

	filter := textinput.New()
	filter.Placeholder = "filter courses..."
	filter.CharLimit = 64
	filter.Width = 28

	return &Model{
		svc:             svc,
		config:          cfg,
		theme:           t,
		styles:          styles,
		view:            ViewStudents,
		tree:            NewTreeState(),
		actions:         enrollment.New(),
		spinner:         sp,
		filter:          filter,
		studentsLoading: true,
	}
}

// Init starts the spinner and loads the student list.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, commands.LoadStudents(m.svc))
}

// studentSelected reports whether a student is active.
func (m *Model) studentSelected() bool {
	return m.selected != nil
}

// selectedID returns the active student id, or 0.
func (m *Model) selectedID() int {
	if m.selected == nil {
		return 0
	}
	return m.selected.StudentID
}

// setStatus replaces the transient status line.
func (m *Model) setStatus(msg string, isErr bool, ttl time.Duration) tea.Cmd {
	m.statusMsg = msg
	m.statusErr = isErr
	m.statusTime = time.Now().Add(ttl)
	return commands.ClearStatusAfter(ttl)
}

// rebuildRows flattens the catalog tree into visible cursor rows,
// honoring expansion state and the course filter.
func (m *Model) rebuildRows() {
	m.rows = m.rows[:0]
	query := normalizeQuery(m.filter.Value())

	for di := range m.departments {
		dept := &m.departments[di]
		if query != "" && !departmentMatches(dept, query) {
			continue
		}
		m.rows = append(m.rows, treeRow{kind: rowDepartment, dept: di})

		expanded := m.tree.Departments.Has(dept.DeptID) || query != ""
		if !expanded {
			continue
		}
		for ci := range dept.Courses {
			course := &dept.Courses[ci]
			if query != "" && !courseMatches(course, query) && !deptFieldsMatch(dept, query) {
				continue
			}
			m.rows = append(m.rows, treeRow{kind: rowCourse, dept: di, course: ci})

			if !m.tree.Courses.Has(course.CourseID) {
				continue
			}
			for si := range course.Sections {
				m.rows = append(m.rows, treeRow{kind: rowSection, dept: di, course: ci, section: si})
			}
		}
	}

	if m.catalogCursor >= len(m.rows) {
		m.catalogCursor = len(m.rows) - 1
	}
	if m.catalogCursor < 0 {
		m.catalogCursor = 0
	}
}

// rowAtCursor returns the catalog row under the cursor, if any.
func (m *Model) rowAtCursor() (treeRow, bool) {
	if m.catalogCursor < 0 || m.catalogCursor >= len(m.rows) {
		return treeRow{}, false
	}
	return m.rows[m.catalogCursor], true
}

// refreshTab reloads the data backing the active enrollment tab.
func (m *Model) refreshTab() tea.Cmd {
	switch m.tab {
	case TabCatalog:
		m.catalogLoading = true
		m.catalogErr = ""
		return commands.LoadCatalog(m.svc)
	case TabEnrolled:
		if !m.studentSelected() {
			return nil
		}
		m.enrolledLoading = true
		m.enrolledErr = ""
		return commands.LoadEnrolled(m.svc, m.selectedID())
	case TabSchedule:
		if !m.studentSelected() {
			return nil
		}
		m.scheduleLoading = true
		m.scheduleErr = ""
		return commands.LoadSchedule(m.svc, m.selectedID())
	}
	return nil
}

// refreshReport reloads the active analytical report.
func (m *Model) refreshReport() tea.Cmd {
	m.reportsLoading = true
	m.reportsErr = ""
	switch m.report {
	case ReportStudentLoad:
		return commands.LoadStudentLoad(m.svc)
	case ReportWorkload:
		return commands.LoadWorkload(m.svc)
	default:
		return commands.LoadUtilization(m.svc)
	}
}

// Run starts the console.
func Run(svc gateway.Service, cfg *config.Config) error {
	return RunWithDebug(svc, cfg, false)
}

// RunWithDebug starts the console with optional debug logging.
func RunWithDebug(svc gateway.Service, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	p := tea.NewProgram(*New(svc, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
