package report

import (
	"encoding/csv"
	"io"
)

var csvHeader = []string{"Host", "Status", "Latency", "Timestamp"}

// WriteCSV writes the header and one row per host.
func WriteCSV(w io.Writer, rep Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range rep.Rows {
		if err := cw.Write([]string{r.Host, r.Status, r.Latency, r.Timestamp}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
