package schedule

import (
	"strings"
	"testing"

	"github.com/nmoliner/eduquery/internal/catalog"
	"github.com/nmoliner/eduquery/internal/timegrid"
)

func course(code string, meetings ...catalog.Meeting) catalog.EnrolledCourse {
	return catalog.EnrolledCourse{
		SectionID:   len(code),
		SectionCode: "A",
		CourseCode:  code,
		CourseTitle: code + " Title",
		Credits:     3,
		Meetings:    meetings,
	}
}

func meeting(day, start, end string) catalog.Meeting {
	return catalog.Meeting{DayOfWeek: day, StartTime: start, EndTime: end}
}

func TestBlockHeightPx(t *testing.T) {
	tests := []struct {
		duration int
		want     int
	}{
		{75, 240},  // 75 min covers 240px
		{60, 192},  // one hour
		{15, 48},   // one slot
		{10, 48},   // shorter than a slot still renders one slot
		{0, 48},    // degenerate input floors at one slot
		{180, 576}, // three hours
	}

	for _, tt := range tests {
		if got := BlockHeightPx(tt.duration); got != tt.want {
			t.Errorf("BlockHeightPx(%d) = %d, want %d", tt.duration, got, tt.want)
		}
	}
}

func TestBuildAnchorsAtExactStartSlot(t *testing.T) {
	p := Build([]catalog.EnrolledCourse{
		course("CS101", meeting("Monday", "09:00", "10:15")),
	})

	if p.Anchors != 1 {
		t.Fatalf("Anchors = %d, want 1", p.Anchors)
	}

	slot, _ := timegrid.SlotIndexForMinutes(540)
	blocks := p.At(0, slot)
	if len(blocks) != 1 {
		t.Fatalf("At(Monday, 09:00) returned %d blocks, want 1", len(blocks))
	}
	b := blocks[0]
	if b.Course.CourseCode != "CS101" || b.Day != 0 || b.Slot != slot {
		t.Errorf("block = %+v", b)
	}
	if got := b.SlotSpan(); got != 5 {
		t.Errorf("SlotSpan() = %d, want 5", got)
	}
	if got := b.HeightPx(); got != 240 {
		t.Errorf("HeightPx() = %d, want 240", got)
	}

	// The interior slots are covered but carry no anchor.
	for s := slot + 1; s < slot+5; s++ {
		if len(p.At(0, s)) != 0 {
			t.Errorf("slot %d should not anchor the block", s)
		}
		if !p.Occupied(0, s) {
			t.Errorf("slot %d should be occupied", s)
		}
	}
	// The slot at the exclusive end boundary is free.
	if p.Occupied(0, slot+5) {
		t.Error("slot at meeting end should not be occupied")
	}
}

func TestBuildStacksOverlappingBlocks(t *testing.T) {
	p := Build([]catalog.EnrolledCourse{
		course("CS101", meeting("Tuesday", "10:00", "11:00")),
		course("MATH20", meeting("Tuesday", "10:00", "11:30")),
	})

	slot, _ := timegrid.SlotIndexForMinutes(600)
	blocks := p.At(1, slot)
	if len(blocks) != 2 {
		t.Fatalf("stacked blocks = %d, want 2", len(blocks))
	}
	if blocks[0].Course.CourseCode != "CS101" || blocks[1].Course.CourseCode != "MATH20" {
		t.Errorf("stack order = %s, %s; want input order", blocks[0].Course.CourseCode, blocks[1].Course.CourseCode)
	}
}

func TestBuildOffGridDays(t *testing.T) {
	p := Build([]catalog.EnrolledCourse{
		course("REL110",
			meeting("Sunday", "09:00", "10:00"),
			meeting("Wednesday", "09:00", "10:00"),
		),
	})

	if p.Anchors != 1 {
		t.Fatalf("Anchors = %d, want 1 (Sunday stays off the grid)", p.Anchors)
	}
	if len(p.Legend) != 1 {
		t.Fatalf("Legend entries = %d, want 1", len(p.Legend))
	}
	entry := p.Legend[0]
	if len(entry.OffGridDays) != 1 || entry.OffGridDays[0] != "Sunday" {
		t.Errorf("OffGridDays = %v, want [Sunday]", entry.OffGridDays)
	}
	if entry.NoMeetings {
		t.Error("NoMeetings should be false for a course with meetings")
	}
}

func TestBuildSkipsInvalidMeetings(t *testing.T) {
	p := Build([]catalog.EnrolledCourse{
		course("BAD100",
			meeting("Monday", "11:00", "10:00"), // inverted
			meeting("Friday", "14:00", "15:00"),
		),
	})

	if len(p.Skipped) != 1 {
		t.Fatalf("Skipped = %d, want 1", len(p.Skipped))
	}
	if p.Skipped[0].Meeting.DayOfWeek != "Monday" {
		t.Errorf("skipped meeting day = %s, want Monday", p.Skipped[0].Meeting.DayOfWeek)
	}
	if p.Anchors != 1 {
		t.Errorf("Anchors = %d, want 1 (valid meeting still placed)", p.Anchors)
	}
}

func TestBuildClipsOffWindowStarts(t *testing.T) {
	p := Build([]catalog.EnrolledCourse{
		course("EARLY1", meeting("Monday", "06:00", "08:00")),  // starts before window
		course("ODD101", meeting("Monday", "09:10", "10:00")),  // off tick boundary
	})

	if p.Anchors != 0 {
		t.Errorf("Anchors = %d, want 0", p.Anchors)
	}
	if len(p.Skipped) != 0 {
		t.Errorf("Skipped = %d, want 0 (clipping is not an error)", len(p.Skipped))
	}
	// Both courses still appear in the legend.
	if len(p.Legend) != 2 {
		t.Errorf("Legend entries = %d, want 2", len(p.Legend))
	}
}

func TestBuildNoMeetings(t *testing.T) {
	p := Build([]catalog.EnrolledCourse{course("SEM400")})

	if len(p.Legend) != 1 || !p.Legend[0].NoMeetings {
		t.Fatalf("expected a NoMeetings legend entry, got %+v", p.Legend)
	}
}

func TestCoverPrefersEarliestAnchor(t *testing.T) {
	p := Build([]catalog.EnrolledCourse{
		course("LONG01", meeting("Monday", "09:00", "12:00")),
		course("SHORT1", meeting("Monday", "10:00", "11:00")),
	})

	slot, _ := timegrid.SlotIndexForMinutes(630)
	cover, ok := p.Cover(0, slot)
	if !ok {
		t.Fatal("expected a covering block at 10:30")
	}
	if cover.Course.CourseCode != "LONG01" {
		t.Errorf("cover course = %s, want LONG01", cover.Course.CourseCode)
	}
}

func TestCoverSameAnchorTieUsesPlacementOrder(t *testing.T) {
	// Two blocks anchored at the same cell land in the same anchor
	// bucket, so the first-placed course wins every spanned cell.
	p := Build([]catalog.EnrolledCourse{
		course("FIRST1", meeting("Monday", "09:00", "11:00")),
		course("SECOND", meeting("Monday", "09:00", "10:00")),
	})

	anchor, _ := timegrid.SlotIndexForMinutes(540)
	if got := len(p.At(0, anchor)); got != 2 {
		t.Fatalf("blocks at anchor = %d, want 2", got)
	}
	for i := 0; i < 20; i++ {
		slot, _ := timegrid.SlotIndexForMinutes(555)
		cover, ok := p.Cover(0, slot)
		if !ok {
			t.Fatal("expected a covering block at 09:15")
		}
		if cover.Course.CourseCode != "FIRST1" {
			t.Fatalf("cover course = %s, want FIRST1", cover.Course.CourseCode)
		}
	}
}

func TestRenderText(t *testing.T) {
	p := Build([]catalog.EnrolledCourse{
		course("CS101", meeting("Monday", "09:00", "10:15")),
		course("REL110", meeting("Sunday", "09:00", "10:00")),
	})

	out := RenderText(p)

	for _, want := range []string{
		"Weekly Schedule",
		"Monday",
		"09:00-10:15",
		"CS101",
		"also meets: Sunday",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderText output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Sunday\n  09:00") {
		t.Error("Sunday meetings must not appear as a day section")
	}
}
