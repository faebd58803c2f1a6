package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) studentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "students",
		Short: "List the students known to the enrollment service",
		Example: `  eduquery students`,
		RunE: func(_ *cobra.Command, _ []string) error {
			students, err := a.svc.Students(context.Background())
			if err != nil {
				return fmt.Errorf("listing students: %w", err)
			}
			if len(students) == 0 {
				fmt.Println("No students found.")
				return nil
			}

			fmt.Println(formatHeader("Students"))
			for _, s := range students {
				fmt.Printf("  #%-4d %-12s %-28s %s\n",
					s.StudentID, s.StudentNumber, s.FullName(), formatMuted(s.Email))
			}
			return nil
		},
	}
}
