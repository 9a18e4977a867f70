package engine

import (
	"encoding/json"
	"fmt"
	"io"
)

// OutputFormat identifies a structured output encoding.
type OutputFormat string

// Supported output formats.
const (
	OutputTable  OutputFormat = "table"
	OutputJSON   OutputFormat = "json"
	OutputNDJSON OutputFormat = "ndjson"
)

// ValidOutputFormat reports whether format is one of the supported encodings.
func ValidOutputFormat(format OutputFormat) bool {
	switch format {
	case OutputTable, OutputJSON, OutputNDJSON:
		return true
	}
	return false
}

// RenderResults writes the derived results in the requested structured
// format. JSON emits the whole record; NDJSON streams one cash-flow point
// per line, which pipes cleanly into line-oriented tooling. Table output is
// a presentation concern and is handled by the tui package.
func RenderResults(w io.Writer, format OutputFormat, res Results) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)

	case OutputNDJSON:
		enc := json.NewEncoder(w)
		for _, p := range res.CashFlow {
			if err := enc.Encode(p); err != nil {
				return err
			}
		}
		return nil

	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
