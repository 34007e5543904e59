// Package report renders per-sequence analysis summaries in text, JSON and
// YAML.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"dnakit/internal/version"
	"dnakit/seq"
)

// Report is one sequence's analysis summary plus run metadata.
type Report struct {
	ID          string             `json:"id" yaml:"id"`
	Name        string             `json:"name,omitempty" yaml:"name,omitempty"`
	GeneratedAt time.Time          `json:"generated_at" yaml:"generated_at"`
	Tool        string             `json:"tool" yaml:"tool"`
	Length      int                `json:"length" yaml:"length"`
	Counts      map[string]int     `json:"counts" yaml:"counts"`
	Frequencies map[string]float64 `json:"frequencies" yaml:"frequencies"`
	GCPercent   float64            `json:"gc_percent" yaml:"gc_percent"`
	ATPercent   float64            `json:"at_percent" yaml:"at_percent"`
}

// Build analyzes a cleaned sequence. Name may be empty (e.g. headerless
// input).
func Build(name, s string) Report {
	return Report{
		ID:          uuid.NewString(),
		Name:        name,
		GeneratedAt: time.Now().UTC(),
		Tool:        "dnakit/" + version.Version,
		Length:      len(s),
		Counts:      stringKeys(seq.CountBases(s)),
		Frequencies: stringKeysF(seq.Frequencies(s)),
		GCPercent:   seq.GCContent(s) * 100.0,
		ATPercent:   seq.ATContent(s) * 100.0,
	}
}

// WriteText renders the fixed text layout.
func (r Report) WriteText(w io.Writer) error {
	name := r.Name
	if name == "" {
		name = "<unnamed>"
	}
	_, err := fmt.Fprintf(w,
		`=== Nucleotide Analysis Report - %s ===
Report : %s (%s)
Length : %d
Counts : A=%d  C=%d  G=%d  T=%d
Freq %% : A=%.2f  C=%.2f  G=%.2f  T=%.2f
GC%%    : %.2f
AT%%    : %.2f
`,
		name,
		r.ID, r.GeneratedAt.Format(time.RFC3339),
		r.Length,
		r.Counts["A"], r.Counts["C"], r.Counts["G"], r.Counts["T"],
		r.Frequencies["A"], r.Frequencies["C"], r.Frequencies["G"], r.Frequencies["T"],
		r.GCPercent,
		r.ATPercent,
	)
	return err
}

// Comparison is the composition difference between two sequences
// (first minus second).
type Comparison struct {
	ID          string          `json:"id" yaml:"id"`
	GeneratedAt time.Time       `json:"generated_at" yaml:"generated_at"`
	Tool        string          `json:"tool" yaml:"tool"`
	Composition seq.Composition `json:"composition" yaml:"composition"`
}

// Compare builds the composition-difference report for two cleaned
// sequences.
func Compare(a, b string) Comparison {
	return Comparison{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Tool:        "dnakit/" + version.Version,
		Composition: seq.CompareComposition(a, b),
	}
}

// WriteText renders the comparison's fixed text layout.
func (c Comparison) WriteText(w io.Writer) error {
	d := c.Composition
	_, err := fmt.Fprintf(w,
		`=== Composition Differences (first - second) ===
dA%% : %+.2f
dC%% : %+.2f
dG%% : %+.2f
dT%% : %+.2f
dGC%%: %+.2f
L1%% : %.2f
`,
		d.DeltaA, d.DeltaC, d.DeltaG, d.DeltaT, d.DeltaGC, d.L1)
	return err
}

func stringKeys(m map[byte]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[string(k)] = v
	}
	return out
}

func stringKeysF(m map[byte]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[string(k)] = v
	}
	return out
}
