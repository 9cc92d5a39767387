package output

// Record sink formats.
const (
	FormatCSV   = "csv"
	FormatJSONL = "jsonl"
)

// CSVHeader is the canonical header row for the record table.
// Keep this as the single source of truth; all writers should use it.
const CSVHeader = "x,accept"
