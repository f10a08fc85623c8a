package writers

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/kweisgerber/sams2spielerplus/spielerplus"
)

// writeCSV writes the rows in the same semicolon dialect SAMS exports use,
// so the fallback can be opened by the same tools as the input.
func writeCSV(termine []spielerplus.Termin, path string) (err error) {
	out := NewLazyWriteCloser(func() (io.WriteCloser, error) {
		return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	})
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(out)
	w.Comma = ';'
	if err := w.Write(spielerplus.Headers()); err != nil {
		return err
	}
	for _, t := range termine {
		if err := w.Write(t.Record()); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
