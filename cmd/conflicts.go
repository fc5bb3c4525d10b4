package cmd

import (
	"fmt"
	"strings"

	"github.com/Bryne19/deanza-course-planner/pkg/planner"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var conflictsCmd = &cobra.Command{
	Use:   "conflicts",
	Short: "Check your saved schedule for meeting-time conflicts",
	Long: `Compare every pair of saved sections and report the ones whose
meeting times overlap on a shared day. Sections without a parsed meeting
time (TBA) are never reported.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := planner.NewStore()
		if err != nil {
			return err
		}

		conflicts, err := store.Conflicts()
		if err != nil {
			return fmt.Errorf("failed to check schedule: %w", err)
		}

		if len(conflicts) == 0 {
			okStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
			fmt.Println(okStyle.Render("✅ No conflicts found in your schedule."))
			return nil
		}

		warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
		dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

		fmt.Println(warnStyle.Render(fmt.Sprintf("⚠️ Found %d conflict(s):", len(conflicts))))
		for _, c := range conflicts {
			fmt.Printf("\n• %s [%s] ↔ %s [%s]\n",
				c.First.Course, c.First.CRN, c.Second.Course, c.Second.CRN)
			fmt.Printf("  %s\n", dimStyle.Render(fmt.Sprintf("%s vs %s on %s",
				c.Time1, c.Time2, strings.Join(c.ConflictingDays, ", "))))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(conflictsCmd)
}
