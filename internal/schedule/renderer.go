// Package schedule projects a student's enrolled courses onto the
// weekly time grid. It owns no state: every build is a fresh, pure
// projection of the course list it is handed.
package schedule

import (
	"github.com/nmoliner/eduquery/internal/catalog"
	"github.com/nmoliner/eduquery/internal/timegrid"
)

const (
	// SlotHeightPx is the pixel height of one 15-minute slot.
	SlotHeightPx = 48
	// hourHeightPx is four slots.
	hourHeightPx = 4 * SlotHeightPx
)

// BlockHeightPx computes the rendered height of a block from its
// duration. Blocks are at least one slot tall regardless of rounding.
func BlockHeightPx(durationMinutes int) int {
	h := durationMinutes * hourHeightPx / 60
	if h < SlotHeightPx {
		return SlotHeightPx
	}
	return h
}

// Block is a meeting placed on the grid, anchored at exactly one
// (day, slot) cell.
type Block struct {
	Course   catalog.EnrolledCourse
	Meeting  catalog.Meeting
	Geometry timegrid.Geometry
	Day      int // column index into timegrid.Days
	Slot     int // anchor slot index
}

// HeightPx returns the block's rendered height.
func (b Block) HeightPx() int {
	return BlockHeightPx(b.Geometry.DurationMinutes)
}

// SlotSpan returns how many grid slots the block covers inside the
// display window, by the closed-open containment rule.
func (b Block) SlotSpan() int {
	span := 0
	for i := 0; i < timegrid.SlotsPerDay; i++ {
		if b.Geometry.Occupies(timegrid.SlotStartMinutes(i)) {
			span++
		}
	}
	return span
}

// LegendEntry is one course in the legend list below the grid. Every
// enrolled course appears here, including ones with no meetings and
// ones whose meetings fall outside the rendered days.
type LegendEntry struct {
	Course      catalog.EnrolledCourse
	OffGridDays []string // meeting days not rendered (e.g. Sunday)
	NoMeetings  bool
}

// SkippedMeeting records a meeting excluded from the grid because its
// data violates an invariant. Rendering continues without it.
type SkippedMeeting struct {
	Course  catalog.EnrolledCourse
	Meeting catalog.Meeting
	Err     error
}

// Placement is the full grid layout for one course list.
type Placement struct {
	anchors map[int][]Block // key: day*SlotsPerDay + slot
	Legend  []LegendEntry
	Skipped []SkippedMeeting
	Anchors int // total anchored blocks across the grid
}

// Build lays out the given enrolled courses on the 6-day grid. A block
// is anchored only at the slot whose start equals the meeting's start
// exactly; all other occupied slots render nothing for that meeting.
// Distinct courses anchored at the same cell stack in input order.
func Build(courses []catalog.EnrolledCourse) Placement {
	p := Placement{anchors: make(map[int][]Block)}

	for _, course := range courses {
		entry := LegendEntry{Course: course, NoMeetings: len(course.Meetings) == 0}

		for _, meeting := range course.Meetings {
			day, onGrid := timegrid.DayIndex(meeting.DayOfWeek)
			if !onGrid {
				entry.OffGridDays = append(entry.OffGridDays, meeting.DayOfWeek)
				continue
			}

			geom, err := timegrid.BlockGeometry(meeting)
			if err != nil {
				p.Skipped = append(p.Skipped, SkippedMeeting{Course: course, Meeting: meeting, Err: err})
				continue
			}

			slot, aligned := timegrid.SlotIndexForMinutes(geom.StartMinutes)
			if !aligned {
				// Start outside the window or off a tick boundary:
				// clipped from view, not an error.
				continue
			}

			key := day*timegrid.SlotsPerDay + slot
			p.anchors[key] = append(p.anchors[key], Block{
				Course:   course,
				Meeting:  meeting,
				Geometry: geom,
				Day:      day,
				Slot:     slot,
			})
			p.Anchors++
		}

		p.Legend = append(p.Legend, entry)
	}

	return p
}

// At returns the blocks anchored at (day, slot), in placement order.
func (p Placement) At(day, slot int) []Block {
	return p.anchors[day*timegrid.SlotsPerDay+slot]
}

// Cover returns the block covering (day, slot), anchored there or
// not. When several blocks cover the cell the earliest-anchored one
// wins, placement order breaking ties. Used to shade spanned cells.
func (p Placement) Cover(day, slot int) (Block, bool) {
	slotStart := timegrid.SlotStartMinutes(slot)
	var cover Block
	found := false
	for key, blocks := range p.anchors {
		if key/timegrid.SlotsPerDay != day {
			continue
		}
		for _, b := range blocks {
			if !b.Geometry.Occupies(slotStart) {
				continue
			}
			if !found || b.Slot < cover.Slot {
				cover = b
				found = true
			}
		}
	}
	return cover, found
}

// Occupied reports whether any block covers (day, slot), anchored
// there or not.
func (p Placement) Occupied(day, slot int) bool {
	_, ok := p.Cover(day, slot)
	return ok
}
