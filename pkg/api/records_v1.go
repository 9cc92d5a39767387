package api

// RecordV1 is the stable JSON/JSONL schema for chain records.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type RecordV1 struct {
	X      float64 `json:"x"`
	Accept int     `json:"accept"` // 1 = proposal accepted, 0 = rejected
}
