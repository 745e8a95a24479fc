package tabular

import (
	"bytes"
	"encoding/csv"
	"strings"

	"github.com/ArshadAliDS/Amazon/pkg/log"
)

// Table is a uniform row-oriented view of a parsed report: one header
// and zero or more rows of the same width. A zero-row table is a valid
// "no data" result, not an error.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Empty reports whether the table holds no data rows.
func (t *Table) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

// ParseTabDelimited parses a tab-separated flat file with quoting
// disabled (listing reports carry raw quotes in titles). Lines whose
// field count does not match the header are skipped with a warning
// rather than aborting the parse.
func ParseTabDelimited(text string) *Table {
	table := &Table{}

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	skipped := 0

	for i, line := range lines {
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")

		if table.Columns == nil {
			table.Columns = fields
			continue
		}

		if len(fields) != len(table.Columns) {
			skipped++
			log.L.WithFields(log.Fields{
				"line":     i + 1,
				"fields":   len(fields),
				"expected": len(table.Columns),
			}).Warn("tabular: skipping malformed line")
			continue
		}

		table.Rows = append(table.Rows, fields)
	}

	if skipped > 0 {
		log.L.Warnf("tabular: skipped %d malformed lines", skipped)
	}

	return table
}

// CSV renders the table as an RFC 4180 CSV document for download.
func (t *Table) CSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(t.Columns); err != nil {
		return nil, err
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
