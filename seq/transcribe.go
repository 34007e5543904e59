package seq

import "strings"

// Strand selects which DNA strand a transcript is derived from.
type Strand int

const (
	// Coding reads the transcript directly off the given strand (T->U).
	Coding Strand = iota
	// Template complements the given strand before substituting T->U.
	Template
)

// ParseStrand maps the CLI spelling to a Strand.
func ParseStrand(s string) (Strand, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "coding":
		return Coding, true
	case "template":
		return Template, true
	}
	return Coding, false
}

// Transcribe converts a strict DNA sequence to its RNA transcript, read
// 5'->3'. In Coding mode every T becomes U. In Template mode the input is
// taken as the template strand given 5'->3', so the transcript is its
// reverse complement with T->U. Degenerate codes are rejected.
func Transcribe(s string, st Strand) (string, error) {
	return TranscribeOriented(s, st, FiveToThree)
}

// TranscribeOriented additionally accepts a template written 3'->5', in
// which case the transcript is the plain complement with T->U. The
// orientation is ignored in Coding mode.
func TranscribeOriented(s string, st Strand, templateOrient Orientation) (string, error) {
	if err := validate(s, StrictDNA); err != nil {
		return "", err
	}
	switch {
	case st == Coding:
		return toRNA(s), nil
	case templateOrient == ThreeToFive:
		b := make([]byte, len(s))
		for i := 0; i < len(s); i++ {
			b[i] = complement[s[i]]
		}
		return toRNA(string(b)), nil
	default:
		return toRNA(string(revCompBytes(s))), nil
	}
}

func toRNA(s string) string {
	return strings.ReplaceAll(s, "T", "U")
}
