// Package csvutil holds the small CSV plumbing shared by the import/export
// engine: table parsing with header validation and symmetric writing.
package csvutil

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ParseTable parses CSV bytes into a header row and data rows. Every row must
// have the same number of fields as the header.
func ParseTable(data []byte) (header []string, rows [][]string, err error) {
	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = 0

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parsing CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("empty CSV file")
	}
	return records[0], records[1:], nil
}

// IndexColumns maps each required column name to its position in the header.
// Matching is case-insensitive and ignores surrounding whitespace. The first
// missing column is reported by name.
func IndexColumns(header []string, required []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range required {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}
	return index, nil
}

// WriteTable writes a header row followed by data rows as CSV.
func WriteTable(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
