package seq

import (
	"context"
	"errors"
	"io"
	"iter"
)

// DefaultChunkSize is the block size CountStream reads when the caller
// passes chunkSize <= 0.
const DefaultChunkSize = 64 * 1024

// Counter accumulates symbol counts across text chunks without retaining
// them, so arbitrarily large inputs cost one chunk of memory. Whitespace is
// skipped and case folded on the fly; an out-of-alphabet symbol aborts with
// an *InvalidSymbolError carrying its absolute position in the normalized
// stream.
type Counter struct {
	tab [256]int
	pos int
	ab  Alphabet
}

// NewCounter returns a Counter validating against ab.
func NewCounter(ab Alphabet) *Counter {
	return &Counter{ab: ab}
}

// Add folds one chunk into the running tally.
func (c *Counter) Add(chunk []byte) error {
	for _, b := range chunk {
		if isSpace(b) {
			continue
		}
		b = toUpper(b)
		if !c.ab.Accepts(b) {
			return &InvalidSymbolError{Symbol: b, Pos: c.pos, Alphabet: c.ab}
		}
		c.tab[b]++
		c.pos++
	}
	return nil
}

// Len returns the number of symbols counted so far.
func (c *Counter) Len() int { return c.pos }

// Counts returns the tally in the same shape as CountBases: A, C, G and T
// always present, degenerate codes only when seen.
func (c *Counter) Counts() map[byte]int {
	m := newCounts()
	for i := 0; i < len(iupacLetters); i++ {
		b := iupacLetters[i]
		if n := c.tab[b]; n > 0 || StrictDNA.Accepts(b) {
			m[b] = n
		}
	}
	return m
}

// CountStream counts alphabet symbols from r one fixed-size block at a
// time, never holding more than a single block in memory. Totals equal
// CountBases applied to the cleaned concatenation of the whole input.
//
// It is cancelable: ctx is checked between blocks.
func CountStream(ctx context.Context, r io.Reader, ab Alphabet, chunkSize int) (map[byte]int, error) {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	c := NewCounter(ab)
	buf := make([]byte, chunkSize)
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		n, err := r.Read(buf)
		if n > 0 {
			if aerr := c.Add(buf[:n]); aerr != nil {
				return nil, aerr
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return c.Counts(), nil
			}
			return nil, err
		}
	}
}

// CountChunks accumulates counts over an in-memory chunk producer. The
// totals match CountBases over the concatenation of all chunks.
func CountChunks(chunks iter.Seq[string], ab Alphabet) (map[byte]int, error) {
	c := NewCounter(ab)
	for chunk := range chunks {
		if err := c.Add([]byte(chunk)); err != nil {
			return nil, err
		}
	}
	return c.Counts(), nil
}
