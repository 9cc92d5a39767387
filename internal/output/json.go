// internal/output/json.go
package output

import (
	"metro-core/chain"
	"metro/pkg/api"
)

// ToAPIRecord converts a chain.Record to the stable v1 wire form.
func ToAPIRecord(r chain.Record) api.RecordV1 {
	rec := api.RecordV1{X: r.X}
	if r.Accepted {
		rec.Accept = 1
	}
	return rec
}
