package reservations

import (
	"bytes"
	"strconv"
	"strings"
	"time"
)

var csvHeader = []string{"id", "courtLabel", "date", "start", "end", "name", "phone", "price", "notes"}

// BuildCSV renders the flattened tabular projection of the reservations.
// Fields are comma-separated; notes are always double-quoted so embedded
// commas and newlines survive.
func BuildCSV(rows []Reservation) []byte {
	var buf bytes.Buffer
	buf.WriteString(strings.Join(csvHeader, ","))
	buf.WriteByte('\n')

	for i := range rows {
		r := &rows[i]
		fields := []string{
			r.ID.String(),
			r.CourtLabel,
			r.Date,
			r.StartTime.Format(time.RFC3339),
			r.EndTime.Format(time.RFC3339),
			r.Name,
			r.Phone,
			strconv.Itoa(r.Price),
			strconv.Quote(r.Notes),
		}
		buf.WriteString(strings.Join(fields, ","))
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}
