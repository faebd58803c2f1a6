package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nmoliner/eduquery/internal/catalog"
)

func (a *App) enrolledCmd() *cobra.Command {
	var studentID int

	cmd := &cobra.Command{
		Use:   "enrolled",
		Short: "List a student's enrolled courses",
		Example: `  eduquery enrolled --student=1`,
		RunE: func(_ *cobra.Command, _ []string) error {
			courses, err := a.svc.EnrolledCourses(context.Background(), studentID)
			if err != nil {
				return fmt.Errorf("loading enrolled courses: %w", err)
			}
			if len(courses) == 0 {
				fmt.Println("Not enrolled in any courses.")
				return nil
			}

			catalog.SortCoursesByCode(courses)
			fmt.Println(formatHeader("Enrolled Courses"))
			for _, c := range courses {
				instructor := c.InstructorName
				if instructor == "" {
					instructor = "TBA"
				}
				fmt.Printf("  %s %-6s %-32s %d cr  %s\n",
					c.CourseCode, c.SectionCode, c.CourseTitle, c.Credits, formatMuted(instructor))
			}
			fmt.Printf("\n%d course%s, %d credits total\n",
				len(courses), pluralize(len(courses)), catalog.TotalCredits(courses))
			return nil
		},
	}

	cmd.Flags().IntVar(&studentID, "student", 0, "Student id")
	_ = cmd.MarkFlagRequired("student")
	return cmd
}
