package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the bikelog CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "bikelog version %s\n", version)
		fmt.Fprintln(cmd.OutOrStdout(), "Bike mileage and oil tracker")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
