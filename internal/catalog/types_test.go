package catalog

import (
	"reflect"
	"testing"
)

func TestStudentFullName(t *testing.T) {
	s := Student{FirstName: "Ana", LastName: "Ruiz"}
	if got := s.FullName(); got != "Ana Ruiz" {
		t.Errorf("FullName() = %q, want %q", got, "Ana Ruiz")
	}
}

func TestSectionIsFull(t *testing.T) {
	if !(Section{RemainingSlots: 0}).IsFull() {
		t.Error("section with 0 remaining slots should be full")
	}
	if (Section{RemainingSlots: 1}).IsFull() {
		t.Error("section with remaining slots should not be full")
	}
}

func TestInstructorSummary(t *testing.T) {
	tests := []struct {
		name     string
		sections []Section
		want     string
	}{
		{
			name: "no sections",
			want: "No sections",
		},
		{
			name:     "no instructors known",
			sections: []Section{{SectionCode: "A"}},
			want:     "Instructors: TBA",
		},
		{
			name: "one instructor",
			sections: []Section{
				{InstructorName: "Grace Hopper"},
			},
			want: "Instructors: Hopper",
		},
		{
			name: "duplicate surnames collapse",
			sections: []Section{
				{InstructorName: "Grace Hopper"},
				{InstructorName: "Grace Hopper"},
			},
			want: "Instructors: Hopper",
		},
		{
			name: "two instructors",
			sections: []Section{
				{InstructorName: "Grace Hopper"},
				{InstructorName: "Alan Turing"},
			},
			want: "Instructors: Hopper, Turing",
		},
		{
			name: "whitespace-only name skipped",
			sections: []Section{
				{InstructorName: "   "},
			},
			want: "Instructors: TBA",
		},
		{
			name: "whitespace-only name alongside real one",
			sections: []Section{
				{InstructorName: "  \t "},
				{InstructorName: "Grace Hopper"},
			},
			want: "Instructors: Hopper",
		},
		{
			name: "more than two get ellipsis",
			sections: []Section{
				{InstructorName: "Grace Hopper"},
				{InstructorName: "Alan Turing"},
				{InstructorName: "Ada Lovelace"},
			},
			want: "Instructors: Hopper, Turing...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Course{Sections: tt.sections}
			if got := c.InstructorSummary(); got != tt.want {
				t.Errorf("InstructorSummary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMeetingOn(t *testing.T) {
	c := EnrolledCourse{Meetings: []Meeting{
		{DayOfWeek: "Monday", StartTime: "09:00", EndTime: "10:15"},
		{DayOfWeek: "Wednesday", StartTime: "09:00", EndTime: "10:15"},
	}}

	if _, ok := c.MeetingOn("Monday"); !ok {
		t.Error("expected a Monday meeting")
	}
	if _, ok := c.MeetingOn("Friday"); ok {
		t.Error("expected no Friday meeting")
	}
}

func TestTotalCredits(t *testing.T) {
	courses := []EnrolledCourse{{Credits: 3}, {Credits: 4}, {Credits: 1}}
	if got := TotalCredits(courses); got != 8 {
		t.Errorf("TotalCredits() = %d, want 8", got)
	}
	if got := TotalCredits(nil); got != 0 {
		t.Errorf("TotalCredits(nil) = %d, want 0", got)
	}
}

func TestSortCoursesByCode(t *testing.T) {
	courses := []EnrolledCourse{
		{CourseCode: "MATH200", SectionCode: "B"},
		{CourseCode: "CS101", SectionCode: "B"},
		{CourseCode: "CS101", SectionCode: "A"},
	}
	SortCoursesByCode(courses)

	var got []string
	for _, c := range courses {
		got = append(got, c.CourseCode+"/"+c.SectionCode)
	}
	want := []string{"CS101/A", "CS101/B", "MATH200/B"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sorted order = %v, want %v", got, want)
	}
}
