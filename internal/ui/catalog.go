package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nmoliner/eduquery/internal/catalog"
)

func (a *App) catalogCmd() *cobra.Command {
	var dept string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the course catalog tree",
		Long: `Print the full department/course/section catalog.

Use --dept to restrict output to one department code.`,
		Example: `  eduquery catalog
  eduquery catalog --dept=CS`,
		RunE: func(_ *cobra.Command, _ []string) error {
			departments, err := a.svc.Catalog(context.Background())
			if err != nil {
				return fmt.Errorf("loading catalog: %w", err)
			}

			printed := 0
			for _, d := range departments {
				if dept != "" && !strings.EqualFold(d.DeptCode, dept) {
					continue
				}
				printDepartment(d)
				printed++
			}
			if printed == 0 {
				if dept != "" {
					fmt.Printf("No department with code %q.\n", dept)
				} else {
					fmt.Println("The catalog is empty.")
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dept, "dept", "", "Department code to show (e.g. CS)")
	return cmd
}

func printDepartment(d catalog.Department) {
	fmt.Printf("%s (%d course%s)\n",
		formatHeader(d.DeptCode+" - "+d.DeptName), len(d.Courses), pluralize(len(d.Courses)))

	for _, c := range d.Courses {
		fmt.Printf("  %s: %s (%d cr)  %s\n",
			c.CourseCode, c.CourseTitle, c.Credits, formatMuted(c.InstructorSummary()))
		for _, s := range c.Sections {
			instructor := s.InstructorName
			if instructor == "" {
				instructor = "TBA"
			}
			fmt.Printf("    %-8s %-24s %s\n", s.SectionCode, instructor, seatBadge(s))
		}
	}
}

// seatBadge renders the remaining-seats marker for one section.
func seatBadge(s catalog.Section) string {
	switch {
	case s.IsFull():
		return formatFull("Full")
	case s.RemainingSlots <= 3:
		return formatLow(fmt.Sprintf("%d left", s.RemainingSlots))
	default:
		return formatOpen(fmt.Sprintf("%d/%d open", s.RemainingSlots, s.Capacity))
	}
}

func pluralize(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
