package roster

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/sleighlab/sleigh/pkg/errors"
)

// CSV column headers. Matching is case-insensitive and ignores surrounding
// whitespace; unrecognized columns are skipped so form exports can carry
// extra fields (timestamps, free-text questions) without breaking the load.
const (
	colName              = "name"
	colContact           = "contact"
	colDelivery          = "delivery"
	colInterests         = "interests"
	colCannotSendTo      = "cannot_send_to"
	colCannotReceiveFrom = "cannot_receive_from"
)

// parseCSV reads roster entries from a CSV document with a header row.
// Only the name column is mandatory; exclusion cells hold comma-separated
// name lists.
func parseCSV(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New(errors.ErrCodeInvalidRoster, "roster is empty")
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRoster, err, "read header")
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := cols[colName]; !ok {
		return nil, errors.New(errors.ErrCodeInvalidRoster, "missing required column %q", colName)
	}

	field := func(record []string, col string) string {
		i, ok := cols[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var entries []Entry
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRoster, err, "read line %d", line)
		}
		entries = append(entries, Entry{
			Name:              field(record, colName),
			Contact:           field(record, colContact),
			Delivery:          field(record, colDelivery),
			Interests:         field(record, colInterests),
			CannotSendTo:      splitNames(field(record, colCannotSendTo)),
			CannotReceiveFrom: splitNames(field(record, colCannotReceiveFrom)),
		})
	}
	return entries, nil
}

// splitNames splits a comma-separated name list, trimming whitespace and
// dropping empty segments.
func splitNames(s string) []string {
	if s == "" {
		return nil
	}
	var names []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}
