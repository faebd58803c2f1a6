package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nmoliner/eduquery/internal/reports"
)

func (a *App) reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print an analytical report",
	}
	cmd.AddCommand(a.utilizationCmd())
	cmd.AddCommand(a.studentLoadCmd())
	cmd.AddCommand(a.workloadCmd())
	return cmd
}

func (a *App) utilizationCmd() *cobra.Command {
	var dept string

	cmd := &cobra.Command{
		Use:   "utilization",
		Short: "Section utilization report",
		Example: `  eduquery report utilization
  eduquery report utilization --dept="Computer Science"`,
		RunE: func(_ *cobra.Command, _ []string) error {
			rows, err := a.svc.SectionUtilization(context.Background())
			if err != nil {
				return fmt.Errorf("loading utilization report: %w", err)
			}
			rows = reports.FilterByDepartment(rows, dept)
			if len(rows) == 0 {
				fmt.Println("No section data.")
				return nil
			}

			sum := reports.SummarizeUtilization(rows)
			fmt.Println(formatHeader("Section Utilization"))
			fmt.Printf("%d sections, %d%% active, %d%% avg utilization, %d departments\n\n",
				sum.Sections, sum.ActiveSharePct, sum.AvgUtilizationPct, len(sum.DepartmentsPresent))

			barWidth := reportBarWidth()
			for _, row := range rows {
				pct := row.Utilization()
				fmt.Printf("  %-10s %-6s %-24s %3d/%-3d %s %3.0f%%\n",
					row.CourseCode, row.SectionCode, clip(row.DepartmentName, 24),
					row.EnrolledCount, row.Capacity, bar(pct, 100, barWidth), pct)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dept, "dept", "", "Department name to filter by")
	return cmd
}

func (a *App) studentLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Student load distribution report",
		Example: `  eduquery report load`,
		RunE: func(_ *cobra.Command, _ []string) error {
			load, err := a.svc.StudentLoad(context.Background())
			if err != nil {
				return fmt.Errorf("loading student load report: %w", err)
			}

			fmt.Println(formatHeader("Student Load Distribution"))
			fmt.Printf("%d students, %.1f avg credits, %d under-loaded (<12 cr)\n\n",
				load.Metrics.TotalStudents, load.Metrics.AverageCredits, load.Metrics.UnderLoadedCount)

			maxBucket := load.MaxBucket()
			barWidth := reportBarWidth()
			for _, credits := range load.SortedCredits() {
				count := load.CreditDistribution[credits]
				fmt.Printf("  %3s cr  %s %d student%s\n",
					credits, bar(float64(count), float64(maxBucket), barWidth),
					count, pluralize(count))
			}
			return nil
		},
	}
}

func (a *App) workloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "workload",
		Short: "Instructor workload report",
		Example: `  eduquery report workload`,
		RunE: func(_ *cobra.Command, _ []string) error {
			rows, err := a.svc.InstructorWorkload(context.Background())
			if err != nil {
				return fmt.Errorf("loading workload report: %w", err)
			}
			if len(rows) == 0 {
				fmt.Println("No workload data.")
				return nil
			}

			reports.SortByWorkload(rows)
			maxima := reports.Maxima(rows)

			fmt.Println(formatHeader("Instructor Workload"))
			barWidth := reportBarWidth()
			for _, row := range rows {
				fmt.Printf("  %-28s %s %2d section%s, %3d student%s\n",
					clip(row.InstructorName, 28),
					bar(float64(row.Workload()), float64(maxima.Workload), barWidth),
					row.TotalSections, pluralize(row.TotalSections),
					row.TotalStudents, pluralize(row.TotalStudents))
			}
			return nil
		},
	}
}

// reportBarWidth sizes bars to the terminal, leaving room for labels.
func reportBarWidth() int {
	w := termWidth() / 4
	if w < 10 {
		w = 10
	}
	if w > 40 {
		w = 40
	}
	return w
}

// bar draws a fixed-width proportional bar.
func bar(value, maxValue float64, width int) string {
	if maxValue <= 0 || value < 0 {
		return strings.Repeat("░", width)
	}
	filled := int(value / maxValue * float64(width))
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
