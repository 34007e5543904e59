package cli

import (
	"context"
	"errors"

	"dnakit/fasta"
)

// input is one raw sequence plus the FASTA record ID it came from, if any.
type input struct {
	Name string
	Raw  string
}

// gatherInputs collects sequences either from positional args (each one a
// raw sequence) or, when inFile is set, from a FASTA-like file ("-" for
// stdin). The two sources are mutually exclusive.
func gatherInputs(args []string, inFile string) ([]input, error) {
	if inFile != "" && len(args) > 0 {
		return nil, errors.New("provide sequences as arguments or via --in, not both")
	}
	if inFile == "" {
		if len(args) == 0 {
			return nil, errors.New("no sequences given (pass them as arguments or use --in FILE)")
		}
		out := make([]input, 0, len(args))
		for _, a := range args {
			out = append(out, input{Raw: a})
		}
		return out, nil
	}

	rc, err := fasta.Open(inFile)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	var out []input
	err = fasta.StreamCtx(context.Background(), rc, func(r fasta.Record) error {
		out = append(out, input{Name: r.ID, Raw: string(r.Seq)})
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, errors.New("no sequences found in " + inFile)
	}
	return out, nil
}
