package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nmoliner/eduquery/internal/gateway"
)

func (a *App) enrollCmd() *cobra.Command {
	var (
		studentID int
		sectionID int
	)

	cmd := &cobra.Command{
		Use:   "enroll",
		Short: "Enroll a student into a section",
		Example: `  eduquery enroll --student=1 --section=42`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.svc.Enroll(context.Background(), studentID, sectionID); err != nil {
				return fmt.Errorf("%s", gateway.UserMessage(err))
			}
			fmt.Println(formatSuccess("Enrolled successfully!"))
			return nil
		},
	}

	cmd.Flags().IntVar(&studentID, "student", 0, "Student id")
	cmd.Flags().IntVar(&sectionID, "section", 0, "Section id")
	_ = cmd.MarkFlagRequired("student")
	_ = cmd.MarkFlagRequired("section")
	return cmd
}

func (a *App) cancelCmd() *cobra.Command {
	var (
		studentID int
		sectionID int
	)

	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel a student's enrollment in a section",
		Example: `  eduquery cancel --student=1 --section=42`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.svc.CancelEnrollment(context.Background(), studentID, sectionID); err != nil {
				return fmt.Errorf("%s", gateway.UserMessage(err))
			}
			fmt.Println(formatSuccess("Enrollment cancelled."))
			return nil
		},
	}

	cmd.Flags().IntVar(&studentID, "student", 0, "Student id")
	cmd.Flags().IntVar(&sectionID, "section", 0, "Section id")
	_ = cmd.MarkFlagRequired("student")
	_ = cmd.MarkFlagRequired("section")
	return cmd
}
