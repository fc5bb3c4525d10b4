package cmd

import (
	"fmt"

	"github.com/Bryne19/deanza-course-planner/pkg/planner"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <crn>",
	Short: "Remove a saved section by CRN",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := planner.NewStore()
		if err != nil {
			return err
		}

		removed, err := store.Remove(args[0])
		if err != nil {
			return fmt.Errorf("failed to update schedule: %w", err)
		}
		if !removed {
			return fmt.Errorf("no saved section with CRN %s", args[0])
		}

		fmt.Printf("Removed section %s from your schedule.\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
