package cmd

import (
	"fmt"
	"strings"

	"github.com/Bryne19/deanza-course-planner/pkg/config"
	"github.com/Bryne19/deanza-course-planner/pkg/planner"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <department> <course>",
	Short: "Add a section to your saved schedule",
	Long: `Search for a course and save one of its sections by CRN, e.g.
'deanza-planner add MATH 1A --crn 12345'. Adding a CRN that is already
saved replaces the stored section.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		department := args[0]
		courseCode := strings.Join(args[1:], " ")

		crn, _ := cmd.Flags().GetString("crn")
		term, _ := cmd.Flags().GetString("term")

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if term == "" {
			term = cfg.DefaultTerm
		}
		if term == "" {
			term = fallbackTerm
		}

		sections, err := searchSections(department, courseCode, term)
		if err != nil {
			return err
		}
		if len(sections) == 0 {
			return fmt.Errorf("no sections found for %s %s in term %s",
				strings.ToUpper(department), strings.ToUpper(courseCode), term)
		}

		for _, s := range sections {
			if s.CRN != crn {
				continue
			}

			store, err := planner.NewStore()
			if err != nil {
				return err
			}
			if err := store.Add(s); err != nil {
				return fmt.Errorf("failed to save section: %w", err)
			}

			fmt.Printf("✅ Saved %s [%s] with %s (%s)\n", s.Course, s.CRN, displayName(s.Professor), s.ClassTime)
			return nil
		}

		return fmt.Errorf("no section with CRN %s found for %s", crn, strings.ToUpper(courseCode))
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringP("crn", "c", "", "CRN of the section to save")
	addCmd.Flags().StringP("term", "t", "", "Term code (e.g. W2026), defaults to the configured term")
	addCmd.MarkFlagRequired("crn")
}
