// internal/writers/record.go
package writers

import (
	"encoding/json"
	"fmt"
	"io"

	"metro-core/chain"
	"metro/internal/jsonlutil"
	"metro/internal/output"
)

// StartRecordWriter spins up a writer goroutine for chain.Records and
// returns its input channel plus a one-shot error channel. Close the input
// channel to finish; the error channel then yields the first write error,
// or nil.
//
// CSV writes go to out unbuffered, one row at a time: a run killed halfway
// leaves a parseable prefix with no partial row.
func StartRecordWriter(out io.Writer, format string, header bool, bufSize int) (chan<- chain.Record, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}

	if format == output.FormatJSONL {
		return jsonlutil.Start[chain.Record](out, bufSize,
			func(enc *json.Encoder, r chain.Record) error {
				return enc.Encode(output.ToAPIRecord(r))
			},
			IsBrokenPipe,
		)
	}

	in := make(chan chain.Record, bufSize)
	errCh := make(chan error, 1)
	go func() {
		var err error
		if format != output.FormatCSV {
			err = fmt.Errorf("unsupported format %q", format)
		}
		if err == nil && header {
			_, err = io.WriteString(out, output.CSVHeader+"\n")
		}
		for r := range in {
			if err != nil {
				continue // drain so the producer never blocks
			}
			_, err = io.WriteString(out, output.FormatRecordCSV(r)+"\n")
		}
		errCh <- err
	}()
	return in, errCh
}
