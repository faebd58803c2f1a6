package schedule

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nmoliner/eduquery/internal/catalog"
	"github.com/nmoliner/eduquery/internal/timegrid"
)

// RenderText formats a placement as plain text, one line per meeting
// grouped by day, followed by the legend. Used for clipboard export
// and the non-interactive schedule command.
func RenderText(p Placement) string {
	var b strings.Builder
	b.WriteString("Weekly Schedule\n")

	for day, name := range timegrid.Days {
		var blocks []Block
		for slot := 0; slot < timegrid.SlotsPerDay; slot++ {
			blocks = append(blocks, p.At(day, slot)...)
		}
		if len(blocks) == 0 {
			continue
		}
		sort.Slice(blocks, func(i, j int) bool {
			return blocks[i].Geometry.StartMinutes < blocks[j].Geometry.StartMinutes
		})

		b.WriteString("\n" + name + "\n")
		for _, block := range blocks {
			fmt.Fprintf(&b, "  %s-%s  %s %s  %s\n",
				catalog.FromMinutes(block.Geometry.StartMinutes),
				catalog.FromMinutes(block.Geometry.EndMinutes),
				block.Course.CourseCode,
				block.Course.SectionCode,
				block.Course.CourseTitle)
		}
	}

	if len(p.Legend) > 0 {
		b.WriteString("\nCourses\n")
		for _, entry := range p.Legend {
			fmt.Fprintf(&b, "  %s %s (%d cr)",
				entry.Course.CourseCode, entry.Course.CourseTitle, entry.Course.Credits)
			if entry.NoMeetings {
				b.WriteString("  [no scheduled meetings]")
			}
			if len(entry.OffGridDays) > 0 {
				fmt.Fprintf(&b, "  [also meets: %s]", strings.Join(entry.OffGridDays, ", "))
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}
