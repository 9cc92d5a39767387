// internal/output/rows.go
package output

import (
	"strconv"

	"metro-core/chain"
)

// AcceptFlag renders the accept column: "1" accepted, "0" rejected.
func AcceptFlag(accepted bool) string {
	if accepted {
		return "1"
	}
	return "0"
}

// FormatRecordCSV returns the two CSV columns for r (no trailing newline).
// The state uses the shortest decimal form that round-trips a float64.
func FormatRecordCSV(r chain.Record) string {
	return strconv.FormatFloat(r.X, 'g', -1, 64) + "," + AcceptFlag(r.Accepted)
}
