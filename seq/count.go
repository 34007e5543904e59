package seq

import "strings"

// CountBases counts every alphabet symbol in s with a single frequency-table
// pass. Symbols outside the IUPAC alphabet are ignored. The returned map
// always carries entries for A, C, G and T (zero when absent); degenerate
// codes appear only when present in s.
//
// CountBasesLoop and CountBasesIndex are alternative strategies kept for
// cross-checking; all three return identical maps for any input.
func CountBases(s string) map[byte]int {
	var tab [256]int
	for i := 0; i < len(s); i++ {
		tab[s[i]]++
	}
	m := newCounts()
	for i := 0; i < len(iupacLetters); i++ {
		b := iupacLetters[i]
		if n := tab[b]; n > 0 || StrictDNA.Accepts(b) {
			m[b] = n
		}
	}
	return m
}

// CountBasesLoop accumulates canonical bases in dedicated counters and
// degenerate codes in a side map.
func CountBasesLoop(s string) map[byte]int {
	var a, c, g, t int
	m := newCounts()
	for i := 0; i < len(s); i++ {
		switch b := s[i]; b {
		case 'A':
			a++
		case 'C':
			c++
		case 'G':
			g++
		case 'T':
			t++
		default:
			if IUPAC.Accepts(b) {
				m[b]++
			}
		}
	}
	m['A'], m['C'], m['G'], m['T'] = a, c, g, t
	return m
}

// CountBasesIndex counts via strings.Count per alphabet symbol.
func CountBasesIndex(s string) map[byte]int {
	m := newCounts()
	for i := 0; i < len(iupacLetters); i++ {
		b := iupacLetters[i]
		if n := strings.Count(s, string(b)); n > 0 || StrictDNA.Accepts(b) {
			m[b] = n
		}
	}
	return m
}

// GCContent returns (G+C)/len as a ratio in [0,1]. Defined as 0.0 for the
// empty sequence; not an error.
func GCContent(s string) float64 {
	if len(s) == 0 {
		return 0.0
	}
	c := CountBases(s)
	return float64(c['G']+c['C']) / float64(len(s))
}

// ATContent returns (A+T)/len as a ratio in [0,1]; 0.0 for the empty
// sequence.
func ATContent(s string) float64 {
	if len(s) == 0 {
		return 0.0
	}
	c := CountBases(s)
	return float64(c['A']+c['T']) / float64(len(s))
}

// Frequencies returns the percent share of each canonical base. All four
// entries are present; all zero for the empty sequence.
func Frequencies(s string) map[byte]float64 {
	f := map[byte]float64{'A': 0, 'C': 0, 'G': 0, 'T': 0}
	if len(s) == 0 {
		return f
	}
	c := CountBases(s)
	n := float64(len(s))
	for _, b := range []byte(strictLetters) {
		f[b] = float64(c[b]) / n * 100.0
	}
	return f
}

// Composition holds per-base percent differences between two sequences
// (first minus second), the GC-percent difference, and the L1 distance over
// the four canonical bases.
type Composition struct {
	DeltaA  float64 `json:"delta_a" yaml:"delta_a"`
	DeltaC  float64 `json:"delta_c" yaml:"delta_c"`
	DeltaG  float64 `json:"delta_g" yaml:"delta_g"`
	DeltaT  float64 `json:"delta_t" yaml:"delta_t"`
	DeltaGC float64 `json:"delta_gc" yaml:"delta_gc"`
	L1      float64 `json:"l1_distance" yaml:"l1_distance"`
}

// CompareComposition compares the base composition of two sequences.
func CompareComposition(a, b string) Composition {
	fa, fb := Frequencies(a), Frequencies(b)
	d := Composition{
		DeltaA:  fa['A'] - fb['A'],
		DeltaC:  fa['C'] - fb['C'],
		DeltaG:  fa['G'] - fb['G'],
		DeltaT:  fa['T'] - fb['T'],
		DeltaGC: (GCContent(a) - GCContent(b)) * 100.0,
	}
	d.L1 = abs(d.DeltaA) + abs(d.DeltaC) + abs(d.DeltaG) + abs(d.DeltaT)
	return d
}

func newCounts() map[byte]int {
	return map[byte]int{'A': 0, 'C': 0, 'G': 0, 'T': 0}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
