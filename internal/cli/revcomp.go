package cli

import (
	"github.com/spf13/cobra"

	"dnakit/seq"
)

var (
	rcIn        string
	rcInOrient  string
	rcOutOrient string
)

var revcompCmd = &cobra.Command{
	Use:   "revcomp [sequences...]",
	Short: "Reverse-complement sequences (IUPAC degenerate codes supported)",
	RunE:  func(cmd *cobra.Command, args []string) error { return runOriented(cmd, args, seq.OpReverseComplement) },
}

var compCmd = &cobra.Command{
	Use:   "comp [sequences...]",
	Short: "Complement sequences in place (order preserved)",
	RunE:  func(cmd *cobra.Command, args []string) error { return runOriented(cmd, args, seq.OpComplement) },
}

func runOriented(cmd *cobra.Command, args []string, op seq.Op) error {
	in, err := parseOrientation(rcInOrient)
	if err != nil {
		return err
	}
	out, err := parseOrientation(rcOutOrient)
	if err != nil {
		return err
	}
	ins, err := gatherInputs(args, rcIn)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	for _, item := range ins {
		s, err := seq.Clean(item.Raw, seq.IUPAC)
		if err != nil {
			return inputErr(item, err)
		}
		r, err := seq.Oriented(s, op, in, out)
		if err != nil {
			return inputErr(item, err)
		}
		writeSeq(w, r)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(revcompCmd)
	rootCmd.AddCommand(compCmd)
	for _, c := range []*cobra.Command{revcompCmd, compCmd} {
		c.Flags().StringVarP(&rcIn, "in", "i", "", "read sequences from a FASTA-like file ('-' for stdin)")
		c.Flags().StringVar(&rcInOrient, "in-orientation", "5to3", "orientation of the input: 5to3 | 3to5")
		c.Flags().StringVar(&rcOutOrient, "out-orientation", "5to3", "orientation of the output: 5to3 | 3to5")
	}
}
