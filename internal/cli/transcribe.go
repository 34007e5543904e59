package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"dnakit/seq"
)

var (
	transcribeIn     string
	transcribeStrand string
	templateOrient   string
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe [sequences...]",
	Short: "Transcribe DNA to RNA (coding or template strand)",
	Long: `Transcribe DNA to RNA, read 5'->3'.

With --strand coding (default) every T becomes U. With --strand template the
transcript is the reverse complement of the input with T->U; pass
--template-orientation 3to5 when the template string is written 3'->5', in
which case the plain complement is used instead. Degenerate codes are
rejected: transcription is defined over strict DNA.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, ok := seq.ParseStrand(transcribeStrand)
		if !ok {
			return fmt.Errorf("invalid --strand %q (want coding or template)", transcribeStrand)
		}
		orient, err := parseOrientation(templateOrient)
		if err != nil {
			return err
		}
		ins, err := gatherInputs(args, transcribeIn)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		for _, in := range ins {
			s, err := seq.Clean(in.Raw, seq.StrictDNA)
			if err != nil {
				return inputErr(in, err)
			}
			rna, err := seq.TranscribeOriented(s, st, orient)
			if err != nil {
				return inputErr(in, err)
			}
			writeSeq(w, rna)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(transcribeCmd)
	transcribeCmd.Flags().StringVarP(&transcribeIn, "in", "i", "", "read sequences from a FASTA-like file ('-' for stdin)")
	transcribeCmd.Flags().StringVar(&transcribeStrand, "strand", "coding", "strand the input represents: coding | template")
	transcribeCmd.Flags().StringVar(&templateOrient, "template-orientation", "5to3", "orientation of a template input: 5to3 | 3to5")
}

func parseOrientation(s string) (seq.Orientation, error) {
	switch s {
	case "5to3", "":
		return seq.FiveToThree, nil
	case "3to5":
		return seq.ThreeToFive, nil
	}
	return seq.FiveToThree, fmt.Errorf("invalid orientation %q (want 5to3 or 3to5)", s)
}
