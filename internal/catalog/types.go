// Package catalog defines the university domain records exchanged with
// the gateway: students, departments, courses, sections, and the
// weekly meetings attached to enrolled courses.
package catalog

import (
	"sort"
	"strings"
)

// Student identifies a student selectable in the console.
type Student struct {
	StudentID     int    `json:"student_id"`
	StudentNumber string `json:"student_number"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
}

// FullName returns "First Last".
func (s Student) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// Meeting is a single weekly meeting of a section: a day of week plus
// a wall-clock start and end within that day.
type Meeting struct {
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Section is a concrete offering of a course in the catalog.
type Section struct {
	SectionID      int    `json:"section_id"`
	SectionCode    string `json:"section_code"`
	Capacity       int    `json:"capacity"`
	RemainingSlots int    `json:"remaining_slots"`
	InstructorID   int    `json:"instructor_id,omitempty"`
	InstructorName string `json:"instructor_name,omitempty"`
}

// IsFull reports whether no seats remain.
func (s Section) IsFull() bool {
	return s.RemainingSlots == 0
}

// Course groups the sections offered under one course code.
type Course struct {
	CourseID    int       `json:"course_id"`
	CourseCode  string    `json:"course_code"`
	CourseTitle string    `json:"course_title"`
	Credits     int       `json:"credits"`
	Sections    []Section `json:"sections"`
}

// InstructorSummary returns a short instructor line for a collapsed
// course row: unique surnames, first two shown, ellipsis beyond that.
func (c Course) InstructorSummary() string {
	if len(c.Sections) == 0 {
		return "No sections"
	}
	seen := make(map[string]bool)
	var surnames []string
	for _, s := range c.Sections {
		if s.InstructorName == "" {
			continue
		}
		fields := strings.Fields(s.InstructorName)
		if len(fields) == 0 {
			continue
		}
		surname := fields[len(fields)-1]
		if !seen[surname] {
			seen[surname] = true
			surnames = append(surnames, surname)
		}
	}
	if len(surnames) == 0 {
		return "Instructors: TBA"
	}
	shown := surnames
	suffix := ""
	if len(surnames) > 2 {
		shown = surnames[:2]
		suffix = "..."
	}
	return "Instructors: " + strings.Join(shown, ", ") + suffix
}

// Department is the top level of the catalog tree.
type Department struct {
	DeptID   int      `json:"dept_id"`
	DeptCode string   `json:"dept_code"`
	DeptName string   `json:"dept_name"`
	Courses  []Course `json:"courses"`
}

// EnrolledCourse is a course the active student is enrolled in,
// including its weekly meetings when the schedule view requests them.
type EnrolledCourse struct {
	SectionID      int       `json:"section_id"`
	SectionCode    string    `json:"section_code"`
	CourseID       int       `json:"course_id"`
	CourseCode     string    `json:"course_code"`
	CourseTitle    string    `json:"course_title"`
	Credits        int       `json:"credits"`
	InstructorName string    `json:"instructor_name,omitempty"`
	Capacity       int       `json:"capacity"`
	Meetings       []Meeting `json:"meetings"`
}

// MeetingOn returns the meeting on the given day, if any. A section
// has at most one meeting per day of week.
func (e EnrolledCourse) MeetingOn(day string) (Meeting, bool) {
	for _, m := range e.Meetings {
		if m.DayOfWeek == day {
			return m, true
		}
	}
	return Meeting{}, false
}

// TotalCredits sums credits across enrolled courses.
func TotalCredits(courses []EnrolledCourse) int {
	total := 0
	for _, c := range courses {
		total += c.Credits
	}
	return total
}

// SortCoursesByCode orders enrolled courses by course code, then
// section code, for stable listing.
func SortCoursesByCode(courses []EnrolledCourse) {
	sort.SliceStable(courses, func(i, j int) bool {
		if courses[i].CourseCode != courses[j].CourseCode {
			return courses[i].CourseCode < courses[j].CourseCode
		}
		return courses[i].SectionCode < courses[j].SectionCode
	})
}
