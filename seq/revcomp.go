package seq

// Op selects between plain complement and reverse-complement for Oriented.
type Op int

const (
	OpComplement Op = iota
	OpReverseComplement
)

// Orientation describes which end of a strand a string starts from.
type Orientation int

const (
	FiveToThree Orientation = iota
	ThreeToFive
)

// Complement maps every symbol of s through the IUPAC complement table,
// keeping order. s must be a normalized sequence (as produced by Clean).
func Complement(s string) (string, error) {
	if err := validate(s, IUPAC); err != nil {
		return "", err
	}
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = complement[s[i]]
	}
	return string(out), nil
}

// ReverseComplement reverses s and complements every symbol. Degenerate
// codes follow the symmetric IUPAC table (R<->Y, K<->M, B<->V, D<->H; S, W and N
// are self-complementary), so applying it twice returns the input.
func ReverseComplement(s string) (string, error) {
	if err := validate(s, IUPAC); err != nil {
		return "", err
	}
	return string(revCompBytes(s)), nil
}

// Oriented computes op with explicit strand orientations: the input is
// normalized to 5'->3' first, op is applied there, and the result is flipped
// again when out is 3'->5'.
func Oriented(s string, op Op, in, out Orientation) (string, error) {
	if err := validate(s, IUPAC); err != nil {
		return "", err
	}
	if in == ThreeToFive {
		s = reverse(s)
	}
	var r string
	switch op {
	case OpComplement:
		b := make([]byte, len(s))
		for i := 0; i < len(s); i++ {
			b[i] = complement[s[i]]
		}
		r = string(b)
	default:
		r = string(revCompBytes(s))
	}
	if out == ThreeToFive {
		r = reverse(r)
	}
	return r, nil
}

func revCompBytes(s string) []byte {
	n := len(s)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complement[s[n-1-i]]
	}
	return out
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
