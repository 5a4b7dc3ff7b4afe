// Package render writes decoded API values for machine consumption: either
// plain JSON or a token-compact tabular format that spends fewer tokens per
// row when the output feeds an automated agent.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Format selects the output encoding.
type Format string

const (
	// FormatJSON emits indented JSON.
	FormatJSON Format = "json"
	// FormatCompact emits a tab-separated table with one header line.
	FormatCompact Format = "compact"
)

// Render writes v to w in the given format. The value must be
// JSON-marshalable; the core only ever hands over fully-decoded typed
// values.
func Render(w io.Writer, v any, format Format) error {
	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatCompact:
		return renderCompact(w, v)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func renderCompact(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return err
	}

	switch val := generic.(type) {
	case []any:
		return renderTable(w, val)
	case map[string]any:
		return renderTable(w, []any{val})
	default:
		_, err := fmt.Fprintln(w, formatCell(generic))
		return err
	}
}

// renderTable prints one header line with the union of the rows' keys,
// then one tab-separated line per row.
func renderTable(w io.Writer, rows []any) error {
	if len(rows) == 0 {
		return nil
	}

	seen := make(map[string]struct{})
	var keys []string
	for _, row := range rows {
		obj, ok := row.(map[string]any)
		if !ok {
			// Array of scalars: one value per line.
			for _, r := range rows {
				if _, err := fmt.Fprintln(w, formatCell(r)); err != nil {
					return err
				}
			}
			return nil
		}
		for k := range obj {
			if _, dup := seen[k]; !dup {
				seen[k] = struct{}{}
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)

	if _, err := fmt.Fprintln(w, strings.Join(keys, "\t")); err != nil {
		return err
	}
	for _, row := range rows {
		obj := row.(map[string]any)
		cells := make([]string, len(keys))
		for i, k := range keys {
			cells[i] = formatCell(obj[k])
		}
		if _, err := fmt.Fprintln(w, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}
	return nil
}

func formatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return "-"
	case string:
		return val
	case float64:
		// Identifiers and counts come through as float64; keep them integral.
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(data)
	}
}
