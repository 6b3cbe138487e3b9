package export

import (
	"bytes"
	"fmt"
)

// Dataset defines tabular export content.
type Dataset struct {
	Headers []string
	Rows    []map[string]string
}

// Records returns the rows as ordered cells following Headers. Missing keys render empty.
func (d Dataset) Records() [][]string {
	records := make([][]string, 0, len(d.Rows))
	for _, row := range d.Rows {
		record := make([]string, len(d.Headers))
		for i, header := range d.Headers {
			record[i] = row[header]
		}
		records = append(records, record)
	}
	return records
}

// joinLines writes the header line and one line per record, separated by "\n" with no
// trailing newline.
func joinLines(data Dataset, sep string, cell func(string) string) ([]byte, error) {
	if len(data.Headers) == 0 {
		return nil, fmt.Errorf("export requires at least one header")
	}
	buf := &bytes.Buffer{}
	writeLine(buf, data.Headers, sep, cell)
	for _, record := range data.Records() {
		buf.WriteByte('\n')
		writeLine(buf, record, sep, cell)
	}
	return buf.Bytes(), nil
}

func writeLine(buf *bytes.Buffer, cells []string, sep string, cell func(string) string) {
	for i, value := range cells {
		if i > 0 {
			buf.WriteString(sep)
		}
		buf.WriteString(cell(value))
	}
}
