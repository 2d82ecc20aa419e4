package util

import (
	"encoding/json"
	"io"
)

// WriteJSON encodes v to w keeping <, >, & and Cyrillic intact.
func WriteJSON(w io.Writer, v any, indent bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
