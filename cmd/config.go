package cmd

import (
	"fmt"

	"github.com/Bryne19/deanza-course-planner/pkg/config"
	"github.com/Bryne19/deanza-course-planner/pkg/ratings"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or edit your local configuration",
	Long:  "View or edit local settings like the default term and the RateMyProfessors school ID.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		setSchoolID, _ := cmd.Flags().GetString("set-school-id")
		setTerm, _ := cmd.Flags().GetString("set-term")
		setAccent, _ := cmd.Flags().GetString("set-accent")

		changed := false
		if setSchoolID != "" {
			cfg.SchoolID = setSchoolID
			changed = true
		}
		if setTerm != "" {
			cfg.DefaultTerm = setTerm
			changed = true
		}
		if setAccent != "" {
			cfg.AccentColor = setAccent
			changed = true
		}

		if changed {
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Println("✅ Configuration saved.")
			return nil
		}

		schoolID := cfg.SchoolID
		if schoolID == "" {
			schoolID = ratings.DefaultSchoolID + " (default)"
		}
		term := cfg.DefaultTerm
		if term == "" {
			term = fallbackTerm + " (default)"
		}
		accent := cfg.AccentColor
		if accent == "" {
			accent = "99 (default)"
		}

		fmt.Printf("School ID:    %s\n", schoolID)
		fmt.Printf("Default term: %s\n", term)
		fmt.Printf("Accent color: %s\n", accent)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().String("set-school-id", "", "Set the RateMyProfessors school ID")
	configCmd.Flags().String("set-term", "", "Set the default term code (e.g. W2026)")
	configCmd.Flags().String("set-accent", "", "Set the accent color used in output")
}
