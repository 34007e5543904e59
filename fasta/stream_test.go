package fasta

import (
	"compress/gzip"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const plain = `>seq1 first record
ACGT
ACGT
>seq2
NNNN
`

func records(t *testing.T, in string) []Record {
	t.Helper()
	var out []Record
	err := StreamCtx(context.Background(), strings.NewReader(in), func(r Record) error {
		out = append(out, r)
		return nil
	})
	if err != nil {
		t.Fatalf("stream: %v", err)
	}
	return out
}

func TestStreamRecords(t *testing.T) {
	got := records(t, plain)
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0].ID != "seq1" || string(got[0].Seq) != "ACGTACGT" {
		t.Errorf("record 0 = %q %q", got[0].ID, got[0].Seq)
	}
	if got[1].ID != "seq2" || string(got[1].Seq) != "NNNN" {
		t.Errorf("record 1 = %q %q", got[1].ID, got[1].Seq)
	}
}

func TestStreamHeaderlessPlainText(t *testing.T) {
	got := records(t, "ACGT\nTTTT\n")
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	if got[0].ID != "" || string(got[0].Seq) != "ACGTTTTT" {
		t.Errorf("got %q %q", got[0].ID, got[0].Seq)
	}
}

func TestStreamEmptyInput(t *testing.T) {
	if got := records(t, ""); len(got) != 0 {
		t.Fatalf("empty input produced %d records", len(got))
	}
}

func TestStreamChunksWindows(t *testing.T) {
	var chunks []Chunk
	err := StreamChunksCtx(context.Background(), strings.NewReader(">s\nACGTACG\n"), 3, func(c Chunk) error {
		chunks = append(chunks, c)
		return nil
	})
	if err != nil {
		t.Fatalf("stream: %v", err)
	}
	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(chunks))
	}
	wantSeq := []string{"ACG", "TAC", "G"}
	wantOff := []int{0, 3, 6}
	for i, c := range chunks {
		if string(c.Seq) != wantSeq[i] || c.Offset != wantOff[i] {
			t.Errorf("chunk %d = %q at %d, want %q at %d", i, c.Seq, c.Offset, wantSeq[i], wantOff[i])
		}
		if last := i == len(chunks)-1; c.IsLast != last {
			t.Errorf("chunk %d IsLast = %v", i, c.IsLast)
		}
	}
}

// meteredReader counts how many input bytes have been consumed.
type meteredReader struct {
	r io.Reader
	n int
}

func (m *meteredReader) Read(p []byte) (int, error) {
	n, err := m.r.Read(p)
	m.n += n
	return n, err
}

func TestStreamChunksBoundedMemory(t *testing.T) {
	// One huge headerless record across many lines. Windows must flow while
	// the record is still being read, not after it has been buffered whole.
	line := strings.Repeat("A", 4096) + "\n"
	input := strings.Repeat(line, 256) // 1 MiB of sequence
	mr := &meteredReader{r: strings.NewReader(input)}

	errStop := errors.New("first chunk seen")
	var consumedAtFirst int
	err := StreamChunksCtx(context.Background(), mr, 1024, func(c Chunk) error {
		consumedAtFirst = mr.n
		if len(c.Seq) != 1024 || c.Offset != 0 || c.IsLast {
			t.Errorf("first chunk = %d bytes at %d (last=%v), want 1024 at 0", len(c.Seq), c.Offset, c.IsLast)
		}
		return errStop
	})
	if !errors.Is(err, errStop) {
		t.Fatalf("stream: %v", err)
	}
	// The scanner may read ahead by its buffer size, but never the whole
	// input.
	if consumedAtFirst >= len(input)/2 {
		t.Fatalf("first chunk emitted after %d of %d bytes consumed", consumedAtFirst, len(input))
	}
}

func TestStreamChunksIncrementalTotals(t *testing.T) {
	// Windowed emission must still hand over every byte exactly once.
	line := strings.Repeat("ACGT", 512) + "\n"
	input := ">big\n" + strings.Repeat(line, 32)
	var got []byte
	var lastSeen bool
	err := StreamChunksCtx(context.Background(), strings.NewReader(input), 1000, func(c Chunk) error {
		if c.Offset != len(got) {
			t.Errorf("chunk offset %d, want %d", c.Offset, len(got))
		}
		got = append(got, c.Seq...)
		lastSeen = c.IsLast
		return nil
	})
	if err != nil {
		t.Fatalf("stream: %v", err)
	}
	want := strings.Repeat(strings.Repeat("ACGT", 512), 32)
	if string(got) != want {
		t.Fatalf("reassembled %d bytes, want %d", len(got), len(want))
	}
	if !lastSeen {
		t.Fatal("final chunk must carry IsLast")
	}
}

func TestStreamCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := StreamCtx(ctx, strings.NewReader(plain), func(Record) error { return nil })
	if err == nil {
		t.Fatal("expected context error")
	}
}

func TestOpenGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.fa.gz")
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("tmp: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(plain)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}

	var ids []string
	err = StreamPathChunksCtx(context.Background(), path, 0, func(c Chunk) error {
		ids = append(ids, c.RecordID)
		return nil
	})
	if err != nil {
		t.Fatalf("stream gz: %v", err)
	}
	if len(ids) != 2 || ids[0] != "seq1" || ids[1] != "seq2" {
		t.Fatalf("gzip parse failed, ids=%v", ids)
	}
}
