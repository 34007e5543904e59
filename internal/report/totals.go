package report

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"dnakit/internal/version"
	"dnakit/seq"
)

// Totals is a streaming count over one input source.
type Totals struct {
	ID          string         `json:"id" yaml:"id"`
	Source      string         `json:"source" yaml:"source"`
	GeneratedAt time.Time      `json:"generated_at" yaml:"generated_at"`
	Tool        string         `json:"tool" yaml:"tool"`
	Length      int            `json:"length" yaml:"length"`
	Counts      map[string]int `json:"counts" yaml:"counts"`
}

// BuildTotals wraps a finished counter tally for source.
func BuildTotals(source string, counts map[byte]int, length int) Totals {
	return Totals{
		ID:          uuid.NewString(),
		Source:      source,
		GeneratedAt: time.Now().UTC(),
		Tool:        "dnakit/" + version.Version,
		Length:      length,
		Counts:      stringKeys(counts),
	}
}

// WriteText renders the fixed text layout. Degenerate codes appear on a
// separate line, in canonical IUPAC order, only when present.
func (t Totals) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w,
		"=== Stream Counts - %s ===\nLength : %d\nCounts : A=%d  C=%d  G=%d  T=%d\n",
		t.Source, t.Length,
		t.Counts["A"], t.Counts["C"], t.Counts["G"], t.Counts["T"],
	); err != nil {
		return err
	}
	letters := seq.IUPAC.Letters()
	wrote := false
	for i := 4; i < len(letters); i++ {
		b := string(letters[i])
		n, ok := t.Counts[b]
		if !ok || n == 0 {
			continue
		}
		if !wrote {
			if _, err := fmt.Fprint(w, "Other  :"); err != nil {
				return err
			}
			wrote = true
		}
		if _, err := fmt.Fprintf(w, " %s=%d", b, n); err != nil {
			return err
		}
	}
	if wrote {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
