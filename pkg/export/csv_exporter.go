package export

// CSVMimeType labels comma separated output.
const CSVMimeType = "text/csv"

// CSVExporter renders Dataset records as comma separated lines where every cell is
// wrapped in double quotes. Embedded quotes and commas are written as-is.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Render produces CSV encoded bytes for the dataset.
func (e *CSVExporter) Render(data Dataset) ([]byte, error) {
	return joinLines(data, ",", quote)
}

// MimeType returns the content type for CSV output.
func (e *CSVExporter) MimeType() string {
	return CSVMimeType
}

// Extension returns the file extension without the dot.
func (e *CSVExporter) Extension() string {
	return "csv"
}

func quote(value string) string {
	return `"` + value + `"`
}
