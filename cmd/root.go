package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "deanza-planner",
	Short: "A CLI for planning De Anza College course schedules",
	Long: `deanza-planner searches the De Anza class listings, attaches
RateMyProfessors ratings to each section, and checks your saved schedule
for meeting-time conflicts.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
