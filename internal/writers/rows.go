// internal/writers/rows.go
package writers

import (
	"encoding/json"
	"fmt"
	"io"

	"hgtjoin-core/report"
	"hgtjoin/internal/common"
	"hgtjoin/internal/jsonlutil"
	"hgtjoin/internal/output"
)

// StartRowWriter spins up a writer goroutine for joined rows. JSON buffers
// everything; text streams unless sorting was requested; jsonl always
// streams (sort has no effect there).
func StartRowWriter(out io.Writer, format string, sort, header bool, measures []string, bufSize int) (chan<- report.Row, <-chan error) {
	if format == output.FormatJSONL {
		return startJSONLRowWriter(out, measures, bufSize)
	}
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan report.Row, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case output.FormatJSON:
			var buf []report.Row
			for r := range in {
				buf = append(buf, r)
			}
			if sort {
				common.SortRows(buf)
			}
			err = output.WriteJSON(out, buf, measures)

		case output.FormatText:
			if sort {
				var buf []report.Row
				for r := range in {
					buf = append(buf, r)
				}
				common.SortRows(buf)
				err = output.WriteText(out, buf, header, measures)
			} else {
				err = output.StreamText(out, in, header, measures)
			}

		default:
			err = fmt.Errorf("unsupported output %q", format)
		}
		errCh <- err
	}()

	return in, errCh
}

// startJSONLRowWriter streams each row as one JSON line (v1).
func startJSONLRowWriter(out io.Writer, measures []string, bufSize int) (chan<- report.Row, <-chan error) {
	return jsonlutil.Start[report.Row](out, bufSize,
		func(enc *json.Encoder, r report.Row) error {
			return enc.Encode(output.ToAPIRow(r, measures))
		},
		IsBrokenPipe,
	)
}
