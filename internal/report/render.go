package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format names accepted by Write.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// TextWriter is implemented by report values that have a fixed text layout.
type TextWriter interface {
	WriteText(io.Writer) error
}

// Write renders v to w in the requested format.
func Write(w io.Writer, v TextWriter, format string) error {
	switch format {
	case FormatText:
		return v.WriteText(w)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(v); err != nil {
			_ = enc.Close()
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("invalid output format %q (want text, json or yaml)", format)
	}
}
