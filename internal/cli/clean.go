package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"dnakit/seq"
)

var (
	cleanIn    string
	cleanScrub bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean [sequences...]",
	Short: "Normalize sequences: strip whitespace, uppercase, validate",
	RunE: func(cmd *cobra.Command, args []string) error {
		ins, err := gatherInputs(args, cleanIn)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		for _, in := range ins {
			if cleanScrub {
				writeSeq(w, seq.Scrub(in.Raw))
				continue
			}
			s, err := seq.Clean(in.Raw, alphabet())
			if err != nil {
				return inputErr(in, err)
			}
			writeSeq(w, s)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	cleanCmd.Flags().StringVarP(&cleanIn, "in", "i", "", "read sequences from a FASTA-like file ('-' for stdin)")
	cleanCmd.Flags().BoolVar(&cleanScrub, "scrub", false, "drop non-ACGT symbols instead of failing")
}

// inputErr prefixes an error with the FASTA record it came from.
func inputErr(in input, err error) error {
	if in.Name == "" {
		return err
	}
	return fmt.Errorf("%s: %w", in.Name, err)
}
