package seq

import "fmt"

// InvalidSymbolError reports the first symbol of an input that is outside
// the accepted alphabet. Pos is the 0-based index of the symbol within the
// normalized sequence (whitespace removed, case folded).
type InvalidSymbolError struct {
	Symbol   byte
	Pos      int
	Alphabet Alphabet
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid symbol %q at position %d (allowed: %s)",
		e.Symbol, e.Pos, e.Alphabet.Letters())
}
