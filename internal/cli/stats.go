package cli

import (
	"github.com/spf13/cobra"

	"dnakit/internal/report"
	"dnakit/seq"
)

var (
	statsIn   string
	statsName string
)

var statsCmd = &cobra.Command{
	Use:   "stats [sequences...]",
	Short: "Per-sequence analysis: length, counts, frequencies, GC/AT content",
	RunE: func(cmd *cobra.Command, args []string) error {
		ins, err := gatherInputs(args, statsIn)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		for _, in := range ins {
			s, err := seq.Clean(in.Raw, alphabet())
			if err != nil {
				return inputErr(in, err)
			}
			name := in.Name
			if name == "" {
				name = statsName
			}
			if err := report.Write(w, report.Build(name, s), format()); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringVarP(&statsIn, "in", "i", "", "read sequences from a FASTA-like file ('-' for stdin)")
	statsCmd.Flags().StringVar(&statsName, "name", "", "label for sequences given as arguments")
}
