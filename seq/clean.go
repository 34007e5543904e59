package seq

import "strings"

// Clean strips whitespace, uppercases, and validates raw against ab.
// The empty result is valid. On the first out-of-alphabet symbol it
// returns an *InvalidSymbolError carrying the symbol and its 0-based
// position in the normalized sequence.
func Clean(raw string, ab Alphabet) (string, error) {
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		b := raw[i]
		if isSpace(b) {
			continue
		}
		b = toUpper(b)
		if !ab.Accepts(b) {
			return "", &InvalidSymbolError{Symbol: b, Pos: len(out), Alphabet: ab}
		}
		out = append(out, b)
	}
	return string(out), nil
}

// Scrub uppercases raw and silently drops every byte that is not a
// canonical A/C/G/T. Use Clean when invalid input should be an error.
func Scrub(raw string) string {
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		b := toUpper(raw[i])
		if StrictDNA.Accepts(b) {
			out = append(out, b)
		}
	}
	return string(out)
}

// MergeFragments scrubs each fragment and concatenates the results.
func MergeFragments(frags ...string) string {
	var sb strings.Builder
	for _, f := range frags {
		sb.WriteString(Scrub(f))
	}
	return sb.String()
}

// validate checks an already-normalized sequence against ab.
func validate(s string, ab Alphabet) error {
	for i := 0; i < len(s); i++ {
		if !ab.Accepts(s[i]) {
			return &InvalidSymbolError{Symbol: s[i], Pos: i, Alphabet: ab}
		}
	}
	return nil
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func toUpper(b byte) byte {
	if 'a' <= b && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
