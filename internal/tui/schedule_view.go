package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/nmoliner/eduquery/internal/schedule"
	"github.com/nmoliner/eduquery/internal/timegrid"
)

func (m Model) renderSchedule() string {
	if !m.studentSelected() {
		return m.styles.RowMuted.Render("Select a student to see the schedule.")
	}
	if m.scheduleLoading {
		return m.loadingLine("schedule")
	}
	if m.scheduleErr != "" {
		return m.styles.StatusErr.Render(m.scheduleErr) + "\n" +
			m.styles.Help.Render("r: retry")
	}

	cellWidth := m.gridCellWidth()
	slots := timegrid.GenerateSlots()

	legend := m.renderLegend()
	legendLines := 0
	if legend != "" {
		legendLines = lipgloss.Height(legend) + 1
	}

	visible := m.bodyHeight() - 1 - legendLines
	if visible < 4 {
		visible = 4
	}
	maxScroll := timegrid.SlotsPerDay - visible
	if maxScroll < 0 {
		maxScroll = 0
	}
	scroll := m.scheduleScroll
	if scroll > maxScroll {
		scroll = maxScroll
	}

	var b strings.Builder

	// Day header row
	b.WriteString(m.styles.TimeColumn.Render(""))
	for _, day := range timegrid.Days {
		b.WriteString(m.styles.DayHeader.Width(cellWidth).Render(day[:3]))
	}
	b.WriteString("\n")

	end := scroll + visible
	if end > timegrid.SlotsPerDay {
		end = timegrid.SlotsPerDay
	}
	for slot := scroll; slot < end; slot++ {
		label := ""
		if slot%4 == 0 {
			label = slots[slot].Display
		}
		b.WriteString(m.styles.TimeColumn.Render(label))

		for day := range timegrid.Days {
			b.WriteString(m.renderGridCell(day, slot, cellWidth))
		}
		b.WriteString("\n")
	}

	if legend != "" {
		b.WriteString("\n" + legend)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) gridCellWidth() int {
	w := (m.width - 10) / len(timegrid.Days)
	if w < 8 {
		w = 8
	}
	if w > 16 {
		w = 16
	}
	return w
}

// renderGridCell paints one (day, slot) cell. A block shows its course
// code at its anchor slot only; the rest of its span is shaded.
func (m Model) renderGridCell(day, slot, width int) string {
	if blocks := m.placement.At(day, slot); len(blocks) > 0 {
		label := blocks[0].Course.CourseCode
		if len(blocks) > 1 {
			label += fmt.Sprintf(" +%d", len(blocks)-1)
		}
		label = ansi.Truncate(" "+label, width, "…")
		return m.blockStyle(blocks[0], true).Width(width).Render(label)
	}

	if cover, ok := m.placement.Cover(day, slot); ok {
		return m.blockStyle(cover, false).Width(width).Render("")
	}

	fill := ""
	if slot%4 == 0 {
		fill = strings.Repeat("·", width)
	}
	return m.styles.GridEmpty.Width(width).Render(fill)
}

// blockStyle alternates block colors by course so adjacent courses
// stay distinguishable.
func (m Model) blockStyle(b schedule.Block, anchor bool) lipgloss.Style {
	alt := b.Course.CourseID%2 == 1
	switch {
	case anchor && alt:
		return m.styles.GridBlockAlt
	case anchor:
		return m.styles.GridBlock
	case alt:
		return m.styles.GridSpanAlt
	default:
		return m.styles.GridSpan
	}
}

func (m Model) renderLegend() string {
	if len(m.placement.Legend) == 0 {
		return ""
	}
	var b strings.Builder
	for _, entry := range m.placement.Legend {
		swatch := m.styles.LegendSwatch.Render("■")
		line := fmt.Sprintf("%s %s %s (%d cr)",
			swatch, entry.Course.CourseCode, entry.Course.CourseTitle, entry.Course.Credits)
		if entry.NoMeetings {
			line += "  " + m.styles.RowMuted.Render("no scheduled meetings")
		}
		if len(entry.OffGridDays) > 0 {
			line += "  " + m.styles.LegendOffGrid.Render(
				"also meets: "+strings.Join(entry.OffGridDays, ", "))
		}
		b.WriteString(m.fitLine(line) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
