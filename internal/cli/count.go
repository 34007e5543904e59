package cli

import (
	"github.com/spf13/cobra"

	"dnakit/fasta"
	"dnakit/internal/report"
	"dnakit/seq"
)

var countCmd = &cobra.Command{
	Use:   "count [files...]",
	Short: "Stream-count nucleotides from large FASTA/plain-text files",
	Long: `Count nucleotides from FASTA or plain-text files without loading any
sequence into memory: input is consumed one bounded block at a time and
discarded after the running tally is updated. With no arguments, or with
"-", input is read from stdin. Gzip files are decompressed transparently.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			args = []string{"-"}
		}
		w := cmd.OutOrStdout()
		for _, path := range args {
			c := seq.NewCounter(alphabet())
			err := fasta.StreamPathChunksCtx(cmd.Context(), path, blockSize(), func(ch fasta.Chunk) error {
				return c.Add(ch.Seq)
			})
			if err != nil {
				return err
			}
			src := path
			if src == "-" {
				src = "<stdin>"
			}
			if err := report.Write(w, report.BuildTotals(src, c.Counts(), c.Len()), format()); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(countCmd)
}
