// Package commands provides console command constructors and message types.
package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nmoliner/eduquery/internal/catalog"
	"github.com/nmoliner/eduquery/internal/enrollment"
	"github.com/nmoliner/eduquery/internal/gateway"
	"github.com/nmoliner/eduquery/internal/reports"
)

// Scope identifies which data view a load belongs to, so failures land
// in the right tab's error slot.
type Scope int

const (
	ScopeStudents Scope = iota
	ScopeCatalog
	ScopeEnrolled
	ScopeSchedule
	ScopeReports
)

// Action distinguishes enroll from cancel when a request settles.
type Action int

const (
	ActionEnroll Action = iota
	ActionCancel
)

// StudentsLoadedMsg is sent when the student list is loaded.
type StudentsLoadedMsg struct {
	Students []catalog.Student
}

// CatalogLoadedMsg is sent when the catalog tree is loaded.
type CatalogLoadedMsg struct {
	Departments []catalog.Department
}

// EnrolledLoadedMsg is sent when the enrolled-course list is loaded.
type EnrolledLoadedMsg struct {
	Courses []catalog.EnrolledCourse
}

// ScheduleLoadedMsg is sent when the schedule (meetings populated) is loaded.
type ScheduleLoadedMsg struct {
	Courses []catalog.EnrolledCourse
}

// UtilizationLoadedMsg is sent when the section utilization report is loaded.
type UtilizationLoadedMsg struct {
	Rows []reports.SectionUtilization
}

// StudentLoadLoadedMsg is sent when the student load report is loaded.
type StudentLoadLoadedMsg struct {
	Load reports.StudentLoad
}

// WorkloadLoadedMsg is sent when the instructor workload report is loaded.
type WorkloadLoadedMsg struct {
	Rows []reports.InstructorWorkload
}

// LoadFailedMsg is sent when a fetch fails. Message is already
// user-facing (gateway.UserMessage applied).
type LoadFailedMsg struct {
	Scope   Scope
	Message string
}

// ActionSettledMsg is sent when an enroll/cancel request settles,
// successfully or not.
type ActionSettledMsg struct {
	SectionID int
	Action    Action
	Err       error
}

// FeedbackExpiredMsg is sent when a section's feedback should be
// cleared, unless a newer action superseded the generation.
type FeedbackExpiredMsg struct {
	SectionID  int
	Generation uint64
}

// ClearStatusMsg clears the transient status line.
type ClearStatusMsg struct{}

// LoadStudents fetches the selectable students.
func LoadStudents(svc gateway.Service) tea.Cmd {
	return func() tea.Msg {
		students, err := svc.Students(context.Background())
		if err != nil {
			return LoadFailedMsg{Scope: ScopeStudents, Message: gateway.UserMessage(err)}
		}
		return StudentsLoadedMsg{Students: students}
	}
}

// LoadCatalog fetches the department tree.
func LoadCatalog(svc gateway.Service) tea.Cmd {
	return func() tea.Msg {
		departments, err := svc.Catalog(context.Background())
		if err != nil {
			return LoadFailedMsg{Scope: ScopeCatalog, Message: gateway.UserMessage(err)}
		}
		return CatalogLoadedMsg{Departments: departments}
	}
}

// LoadEnrolled fetches the student's current enrollments.
func LoadEnrolled(svc gateway.Service, studentID int) tea.Cmd {
	return func() tea.Msg {
		courses, err := svc.EnrolledCourses(context.Background(), studentID)
		if err != nil {
			return LoadFailedMsg{Scope: ScopeEnrolled, Message: gateway.UserMessage(err)}
		}
		return EnrolledLoadedMsg{Courses: courses}
	}
}

// LoadSchedule fetches the student's schedule with meetings.
func LoadSchedule(svc gateway.Service, studentID int) tea.Cmd {
	return func() tea.Msg {
		courses, err := svc.Schedule(context.Background(), studentID)
		if err != nil {
			return LoadFailedMsg{Scope: ScopeSchedule, Message: gateway.UserMessage(err)}
		}
		return ScheduleLoadedMsg{Courses: courses}
	}
}

// SubmitEnroll sends an enroll request for one section.
func SubmitEnroll(svc gateway.Service, studentID, sectionID int) tea.Cmd {
	return func() tea.Msg {
		err := svc.Enroll(context.Background(), studentID, sectionID)
		return ActionSettledMsg{SectionID: sectionID, Action: ActionEnroll, Err: err}
	}
}

// SubmitCancel sends a cancel request for one section.
func SubmitCancel(svc gateway.Service, studentID, sectionID int) tea.Cmd {
	return func() tea.Msg {
		err := svc.CancelEnrollment(context.Background(), studentID, sectionID)
		return ActionSettledMsg{SectionID: sectionID, Action: ActionCancel, Err: err}
	}
}

// ExpireFeedback schedules the auto-clear of a section's feedback.
// The generation token makes superseded timers harmless.
func ExpireFeedback(sectionID int, generation uint64) tea.Cmd {
	return tea.Tick(enrollment.FeedbackTTL, func(time.Time) tea.Msg {
		return FeedbackExpiredMsg{SectionID: sectionID, Generation: generation}
	})
}

// ClearStatusAfter schedules the status line clear.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// LoadUtilization fetches the section utilization report.
func LoadUtilization(svc gateway.Service) tea.Cmd {
	return func() tea.Msg {
		rows, err := svc.SectionUtilization(context.Background())
		if err != nil {
			return LoadFailedMsg{Scope: ScopeReports, Message: gateway.UserMessage(err)}
		}
		return UtilizationLoadedMsg{Rows: rows}
	}
}

// LoadStudentLoad fetches the student load distribution report.
func LoadStudentLoad(svc gateway.Service) tea.Cmd {
	return func() tea.Msg {
		load, err := svc.StudentLoad(context.Background())
		if err != nil {
			return LoadFailedMsg{Scope: ScopeReports, Message: gateway.UserMessage(err)}
		}
		return StudentLoadLoadedMsg{Load: load}
	}
}

// LoadWorkload fetches the instructor workload report.
func LoadWorkload(svc gateway.Service) tea.Cmd {
	return func() tea.Msg {
		rows, err := svc.InstructorWorkload(context.Background())
		if err != nil {
			return LoadFailedMsg{Scope: ScopeReports, Message: gateway.UserMessage(err)}
		}
		return WorkloadLoadedMsg{Rows: rows}
	}
}
