package cmd

import (
	"fmt"

	"github.com/Bryne19/deanza-course-planner/pkg/config"
	"github.com/Bryne19/deanza-course-planner/pkg/planner"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the sections in your saved schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := planner.NewStore()
		if err != nil {
			return err
		}

		sections, err := store.Load()
		if err != nil {
			return fmt.Errorf("failed to load schedule: %w", err)
		}

		if len(sections) == 0 {
			fmt.Println("Your schedule is empty. Add sections with 'deanza-planner add'.")
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		printSections(sections, cfg.AccentColor)
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every saved section",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := planner.NewStore()
		if err != nil {
			return err
		}
		if err := store.Clear(); err != nil {
			return fmt.Errorf("failed to clear schedule: %w", err)
		}

		style := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
		fmt.Println(style.Render("Cleared all saved sections."))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(clearCmd)
}
