// Package seq implements stateless operations over DNA sequences:
// cleaning/validation, base counting, codon splitting, transcription and
// (reverse-)complement with IUPAC degenerate-base support.
//
// A sequence is a plain string of uppercase symbols as produced by Clean.
// Transforms never mutate their input; each returns a new string.
package seq

import "strings"

// Alphabet selects which symbols Clean and the counters accept.
type Alphabet int

const (
	// StrictDNA accepts A, C, G, T only.
	StrictDNA Alphabet = iota
	// IUPAC additionally accepts the degenerate codes R Y S W K M B D H V N.
	IUPAC
)

const (
	strictLetters = "ACGT"
	iupacLetters  = "ACGTRYSWKMBDHVN"
)

/* -------------------------- IUPAC lookup tables ------------------------- */

var baseBits [256]byte // bit0=A bit1=C bit2=G bit3=T

var complement [256]byte

func init() {
	set := func(c byte, bits byte) { baseBits[c] = bits }
	set('A', 1)       // 0001
	set('C', 2)       // 0010
	set('G', 4)       // 0100
	set('T', 8)       // 1000
	set('R', 1|4)     // A/G
	set('Y', 2|8)     // C/T
	set('S', 2|4)     // C/G
	set('W', 1|8)     // A/T
	set('K', 4|8)     // G/T
	set('M', 1|2)     // A/C
	set('B', 2|4|8)   // C/G/T
	set('D', 1|4|8)   // A/G/T
	set('H', 1|2|8)   // A/C/T
	set('V', 1|2|4)   // A/C/G
	set('N', 1|2|4|8) // any

	complement['A'] = 'T'
	complement['T'] = 'A'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['R'] = 'Y'
	complement['Y'] = 'R'
	complement['S'] = 'S'
	complement['W'] = 'W'
	complement['K'] = 'M'
	complement['M'] = 'K'
	complement['B'] = 'V'
	complement['V'] = 'B'
	complement['D'] = 'H'
	complement['H'] = 'D'
	complement['N'] = 'N'
}

// Accepts reports whether b is a member of the alphabet. Only uppercase
// symbols are members; Clean normalizes case before validation.
func (a Alphabet) Accepts(b byte) bool {
	if a == StrictDNA {
		return b == 'A' || b == 'C' || b == 'G' || b == 'T'
	}
	return baseBits[b] != 0
}

// Letters returns the accepted symbols in canonical order.
func (a Alphabet) Letters() string {
	if a == StrictDNA {
		return strictLetters
	}
	return iupacLetters
}

func (a Alphabet) String() string {
	if a == StrictDNA {
		return "dna"
	}
	return "iupac"
}

// ParseAlphabet maps the CLI/config spelling to an Alphabet.
func ParseAlphabet(s string) (Alphabet, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dna", "strict":
		return StrictDNA, true
	case "iupac", "permissive":
		return IUPAC, true
	}
	return StrictDNA, false
}
