package cli

import (
	"fmt"
	"io"
)

// writeSeq prints a sequence honoring the configured line width
// (line-width 0 means one line).
func writeSeq(w io.Writer, s string) {
	lw := cfg.LineWidth
	if lw <= 0 {
		fmt.Fprintln(w, s)
		return
	}
	for i := 0; i < len(s); i += lw {
		end := i + lw
		if end > len(s) {
			end = len(s)
		}
		fmt.Fprintln(w, s[i:end])
	}
}
