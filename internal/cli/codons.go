package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dnakit/seq"
)

var (
	codonsIn    string
	codonsFrame int
)

var codonsCmd = &cobra.Command{
	Use:   "codons [sequences...]",
	Short: "Split sequences into triplets (trailing partial codon retained)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ins, err := gatherInputs(args, codonsIn)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		for _, in := range ins {
			s, err := seq.Clean(in.Raw, alphabet())
			if err != nil {
				return inputErr(in, err)
			}
			cods, err := seq.SplitCodons(s, codonsFrame)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, strings.Join(cods, " "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(codonsCmd)
	codonsCmd.Flags().StringVarP(&codonsIn, "in", "i", "", "read sequences from a FASTA-like file ('-' for stdin)")
	codonsCmd.Flags().IntVar(&codonsFrame, "frame", 0, "reading frame: 0, 1 or 2")
}
