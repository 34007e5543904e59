// Package fasta streams FASTA-like text: '>'-headed records with wrapped
// sequence lines, or headerless plain text treated as one anonymous record.
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Record is a parsed sequence with the ID taken from its header line.
// Headerless input yields a single Record with an empty ID.
type Record struct {
	ID  string
	Seq []byte
}

// Chunk is a bounded window of one record's sequence. Offset is the 0-based
// position of the window within the record. IsLast marks the record's final
// window.
type Chunk struct {
	RecordID string
	Offset   int
	Seq      []byte
	IsLast   bool
}

// StreamCtx parses FASTA from r and emits one Record per entry. Sequence
// lines are concatenated with surrounding whitespace trimmed. It is
// cancelable: ctx is checked per line.
func StreamCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	return StreamChunksCtx(ctx, r, 0, func(c Chunk) error {
		return emit(Record{ID: c.RecordID, Seq: c.Seq})
	})
}

// StreamChunksCtx parses FASTA from r and emits per-record sequence
// windows of at most chunkSize bytes. If chunkSize <= 0 each record is
// emitted as a single chunk.
//
// Windows are emitted while the record is still being read: the buffer
// never grows past chunkSize plus one input line, so arbitrarily large
// records stream in bounded memory.
func StreamChunksCtx(ctx context.Context, r io.Reader, chunkSize int, emit func(Chunk) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		id   string
		seen bool
		seq  []byte
		off  int // offset of seq[0] within the current record
	)

	// drain emits full windows as soon as they are complete, always keeping
	// at least one byte back so the record's final window carries IsLast.
	drain := func() error {
		if chunkSize <= 0 {
			return nil
		}
		for len(seq) > chunkSize {
			ch := Chunk{
				RecordID: id,
				Offset:   off,
				Seq:      append([]byte(nil), seq[:chunkSize]...),
				IsLast:   false,
			}
			seq = append(seq[:0], seq[chunkSize:]...)
			off += chunkSize
			if err := emit(ch); err != nil {
				return err
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}
		return nil
	}

	// flush emits the record's remainder as its final window.
	flush := func() error {
		if !seen && len(seq) == 0 && off == 0 {
			return nil
		}
		return emit(Chunk{RecordID: id, Offset: off, Seq: append([]byte(nil), seq...), IsLast: true})
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if seen {
				if err := flush(); err != nil {
					return err
				}
				seq = seq[:0]
				off = 0
			}
			id = parseHeaderID(line[1:])
			seen = true
			continue
		}
		seq = append(seq, bytes.TrimSpace(line)...)
		if err := drain(); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	if seen || len(seq) > 0 || off > 0 {
		return flush()
	}
	return nil
}

// StreamPathChunksCtx opens path (stdin/gzip aware) and streams its chunks.
func StreamPathChunksCtx(ctx context.Context, path string, chunkSize int, emit func(Chunk) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	return StreamChunksCtx(ctx, rc, chunkSize, emit)
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
