package tui

import (
	"fmt"
	"strings"

	"github.com/nmoliner/eduquery/internal/reports"
)

func (m Model) renderReports() string {
	labels := []string{"Section Utilization", "Student Load", "Instructor Workload"}
	var bar strings.Builder
	for i, label := range labels {
		style := m.styles.TabInactive
		if Report(i) == m.report {
			style = m.styles.TabActive
		}
		bar.WriteString(style.Render(fmt.Sprintf("%d %s", i+1, label)))
	}

	if m.reportsLoading {
		return bar.String() + "\n" + m.loadingLine("report")
	}
	if m.reportsErr != "" {
		return bar.String() + "\n" + m.styles.StatusErr.Render(m.reportsErr)
	}

	var body string
	switch m.report {
	case ReportStudentLoad:
		body = m.renderStudentLoad()
	case ReportWorkload:
		body = m.renderWorkload()
	default:
		body = m.renderUtilization()
	}
	return bar.String() + "\n" + body
}

func (m Model) renderUtilization() string {
	if len(m.utilRows) == 0 {
		return m.styles.RowMuted.Render("No section data.")
	}

	sum := reports.SummarizeUtilization(m.utilRows)
	var b strings.Builder
	b.WriteString(m.styles.ReportText.Render(fmt.Sprintf(
		"%d sections • %d%% active • %d%% avg utilization • %d departments",
		sum.Sections, sum.ActiveSharePct, sum.AvgUtilizationPct, len(sum.DepartmentsPresent))) + "\n\n")

	visible := m.bodyHeight() - 3
	rows := m.utilRows
	if len(rows) > visible && visible > 0 {
		rows = rows[:visible]
	}
	for _, row := range rows {
		pct := row.Utilization()
		line := fmt.Sprintf("  %-10s %-6s %-18s %3d/%-3d %s %3.0f%%",
			row.CourseCode, row.SectionCode, truncate(row.DepartmentName, 18),
			row.EnrolledCount, row.Capacity,
			m.styles.ReportBar.Render(meter(pct, 100, 20)), pct)
		b.WriteString(m.fitLine(line) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderStudentLoad() string {
	if !m.hasStudentLoad {
		return m.styles.RowMuted.Render("No load data.")
	}

	load := m.studentLoad
	var b strings.Builder
	b.WriteString(m.styles.ReportText.Render(fmt.Sprintf(
		"%d students • %.1f avg credits • %d under-loaded (<12 cr)",
		load.Metrics.TotalStudents, load.Metrics.AverageCredits, load.Metrics.UnderLoadedCount)) + "\n\n")

	maxBucket := load.MaxBucket()
	for _, credits := range load.SortedCredits() {
		count := load.CreditDistribution[credits]
		line := fmt.Sprintf("  %3s cr  %s %d student%s",
			credits, m.styles.ReportBar.Render(meter(float64(count), float64(maxBucket), 30)),
			count, plural(count))
		b.WriteString(m.fitLine(line) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderWorkload() string {
	if len(m.workloadRows) == 0 {
		return m.styles.RowMuted.Render("No workload data.")
	}

	rows := append([]reports.InstructorWorkload(nil), m.workloadRows...)
	reports.SortByWorkload(rows)
	maxima := reports.Maxima(rows)

	var b strings.Builder
	visible := m.bodyHeight() - 1
	if len(rows) > visible && visible > 0 {
		rows = rows[:visible]
	}
	for _, row := range rows {
		line := fmt.Sprintf("  %-24s %s %2d section%s, %3d student%s",
			truncate(row.InstructorName, 24),
			m.styles.ReportBar.Render(meter(float64(row.Workload()), float64(maxima.Workload), 24)),
			row.TotalSections, plural(row.TotalSections),
			row.TotalStudents, plural(row.TotalStudents))
		b.WriteString(m.fitLine(line) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// meter draws a fixed-width proportional bar.
func meter(value, maxValue float64, width int) string {
	if maxValue <= 0 || value < 0 {
		return strings.Repeat("░", width)
	}
	filled := int(value / maxValue * float64(width))
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
