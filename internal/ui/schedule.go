package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nmoliner/eduquery/internal/schedule"
)

func (a *App) scheduleCmd() *cobra.Command {
	var studentID int

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print a student's weekly schedule",
		Long: `Print a student's weekly schedule as plain text, grouped by day.

Meetings with malformed or inverted times are reported and excluded
rather than aborting the schedule.`,
		Example: `  eduquery schedule --student=1`,
		RunE: func(_ *cobra.Command, _ []string) error {
			courses, err := a.svc.Schedule(context.Background(), studentID)
			if err != nil {
				return fmt.Errorf("loading schedule: %w", err)
			}

			placement := schedule.Build(courses)
			fmt.Print(schedule.RenderText(placement))

			for _, skipped := range placement.Skipped {
				fmt.Println(formatFull(fmt.Sprintf(
					"skipped %s %s on %s: %v",
					skipped.Course.CourseCode, skipped.Course.SectionCode,
					skipped.Meeting.DayOfWeek, skipped.Err)))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&studentID, "student", 0, "Student id")
	_ = cmd.MarkFlagRequired("student")
	return cmd
}
