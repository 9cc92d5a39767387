package output

import "testing"

// The header row is part of the file format contract; downstream analysis
// scripts key on it. Any change here is a breaking change.
func TestCSVHeaderSnapshot(t *testing.T) {
	if CSVHeader != "x,accept" {
		t.Fatalf("CSVHeader = %q, want %q", CSVHeader, "x,accept")
	}
}

func TestFormatNames(t *testing.T) {
	if FormatCSV != "csv" || FormatJSONL != "jsonl" {
		t.Fatalf("format constants changed: %q %q", FormatCSV, FormatJSONL)
	}
}
