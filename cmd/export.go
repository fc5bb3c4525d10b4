package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/Bryne19/deanza-course-planner/pkg/exporter"
	"github.com/Bryne19/deanza-course-planner/pkg/planner"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export your saved schedule to an ICS file",
	Long: `Write one calendar event per meeting day for every saved section.
Events are placed in the week given by --week-start (a Monday); sections
with TBA meeting times are skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		weekStartStr, _ := cmd.Flags().GetString("week-start")

		weekStart, err := resolveWeekStart(weekStartStr)
		if err != nil {
			return err
		}

		store, err := planner.NewStore()
		if err != nil {
			return err
		}
		sections, err := store.Load()
		if err != nil {
			return fmt.Errorf("failed to load schedule: %w", err)
		}
		if len(sections) == 0 {
			return fmt.Errorf("your schedule is empty, nothing to export")
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		if err := exporter.GenerateICS(sections, weekStart, file); err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Printf("Successfully exported %d sections to %s\n", len(sections), output)
		return nil
	},
}

// resolveWeekStart parses the flag value, or falls back to the upcoming
// Monday when none was given.
func resolveWeekStart(value string) (time.Time, error) {
	if value != "" {
		t, err := time.Parse("2006-01-02", value)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --week-start (want YYYY-MM-DD): %w", err)
		}
		return t, nil
	}

	now := time.Now()
	daysUntilMonday := (int(time.Monday) - int(now.Weekday()) + 7) % 7
	if daysUntilMonday == 0 {
		daysUntilMonday = 7
	}
	next := now.AddDate(0, 0, daysUntilMonday)
	return time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, next.Location()), nil
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("output", "o", "schedule.ics", "Output file path")
	exportCmd.Flags().StringP("week-start", "w", "", "Monday to place events in (YYYY-MM-DD), defaults to next Monday")
}
