package cli

import (
	"github.com/spf13/cobra"

	"dnakit/internal/report"
	"dnakit/seq"
)

var compareCmd = &cobra.Command{
	Use:   "compare <seq1> <seq2>",
	Short: "Compare base composition of two sequences (percent deltas, L1 distance)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := seq.Clean(args[0], alphabet())
		if err != nil {
			return err
		}
		b, err := seq.Clean(args[1], alphabet())
		if err != nil {
			return err
		}
		return report.Write(cmd.OutOrStdout(), report.Compare(a, b), format())
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
