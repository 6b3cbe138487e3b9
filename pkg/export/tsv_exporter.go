package export

// ExcelMimeType labels the tab separated spreadsheet-compatible output.
const ExcelMimeType = "application/vnd.ms-excel"

// TSVExporter renders Dataset records as tab separated lines without quoting. The
// result is plain text that spreadsheet tools open from an .xls file name.
type TSVExporter struct{}

// NewTSVExporter builds a tab separated exporter.
func NewTSVExporter() *TSVExporter {
	return &TSVExporter{}
}

// Render produces tab separated bytes for the dataset.
func (e *TSVExporter) Render(data Dataset) ([]byte, error) {
	return joinLines(data, "\t", func(v string) string { return v })
}

// MimeType returns the spreadsheet content type.
func (e *TSVExporter) MimeType() string {
	return ExcelMimeType
}

// Extension returns the file extension without the dot.
func (e *TSVExporter) Extension() string {
	return "xls"
}
