package cli

import (
	"github.com/spf13/cobra"

	"dnakit/seq"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <fragment> [fragments...]",
	Short: "Scrub DNA fragments and concatenate them into one sequence",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		writeSeq(cmd.OutOrStdout(), seq.MergeFragments(args...))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}
