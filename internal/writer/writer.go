// Package writer renders account summaries as CSV.
package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/mkravchenko/payments-engine/internal/services/engine"
)

// WriteSummaries writes a header followed by one row per summary, in the
// order given.
func WriteSummaries(w io.Writer, summaries []engine.Summary) error {
	cw := csv.NewWriter(w)

	err := cw.Write([]string{"client", "available", "held", "total", "locked"})
	if err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, s := range summaries {
		err := cw.Write([]string{
			strconv.FormatUint(uint64(s.Client), 10),
			s.Available.String(),
			s.Held.String(),
			s.Total.String(),
			strconv.FormatBool(s.Locked),
		})
		if err != nil {
			return fmt.Errorf("write row for client %d: %w", s.Client, err)
		}
	}

	cw.Flush()

	err = cw.Error()
	if err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	return nil
}
