package seq

import (
	"fmt"
	"iter"
)

// Codons returns a lazy, restartable iterator over non-overlapping
// left-to-right triplets of s. A trailing group of length 1 or 2 is yielded
// as-is, never dropped.
func Codons(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := 0; i < len(s); i += 3 {
			end := i + 3
			if end > len(s) {
				end = len(s)
			}
			if !yield(s[i:end]) {
				return
			}
		}
	}
}

// SplitCodons is the eager variant of Codons with reading-frame control:
// frame 0 starts at the first base, 1 and 2 skip one or two bases. The
// trailing partial codon is retained as the last element.
func SplitCodons(s string, frame int) ([]string, error) {
	if frame < 0 || frame > 2 {
		return nil, fmt.Errorf("frame must be 0, 1 or 2; got %d", frame)
	}
	if frame >= len(s) {
		return nil, nil
	}
	s = s[frame:]
	out := make([]string, 0, (len(s)+2)/3)
	for c := range Codons(s) {
		out = append(out, c)
	}
	return out, nil
}
