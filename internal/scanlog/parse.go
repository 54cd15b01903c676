// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scanlog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/gmon2kml/pkg/types"
)

// Header is the first line G-Mon writes to a scan log export.
const Header = "BSSID;LAT;LON;SSID;Crypt;Beacon Interval;Connection Mode;Channel;RXL;Date;Time"

const (
	separator = ";"
	numFields = 11
)

// ErrMalformedRow is matched by every *MalformedRowError.
var ErrMalformedRow = errors.New("malformed row")

// MalformedRowError reports a row that did not split into eleven fields.
type MalformedRowError struct {
	// Line is the 1-based line number in the input file.
	Line int
	// Fields is the number of fields found.
	Fields int
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("line %d: %v: got %d fields, want %d", e.Line, ErrMalformedRow, e.Fields, numFields)
}

// Is lets errors.Is match ErrMalformedRow.
func (e *MalformedRowError) Is(target error) bool {
	return target == ErrMalformedRow
}

// ParseStats describes a parse run.
type ParseStats struct {
	// Rows is the number of data rows turned into records, duplicates included.
	Rows int
	// Skipped holds the rows dropped under the skip policy.
	Skipped []*MalformedRowError
}

// HasHeader reports whether first is the G-Mon header line. Surrounding
// whitespace is ignored; everything else must match exactly.
func HasHeader(first string) bool {
	return strings.TrimSpace(first) == Header
}

// Parse builds a RecordSet from scan log lines. When header is true the first
// line is skipped. A later row for a BSSID replaces every field of the
// earlier one. Blank lines are ignored. Rows with fewer than eleven fields
// either abort the parse (types.MalformedFail, also the zero value) or are
// recorded in ParseStats.Skipped (types.MalformedSkip). The last field keeps
// any extra separators.
func Parse(lines []string, header bool, policy types.MalformedPolicy) (*types.RecordSet, ParseStats, error) {
	var stats ParseStats
	set := types.NewRecordSet()

	start := 0
	if header && len(lines) > 0 {
		start = 1
	}

	for i := start; i < len(lines); i++ {
		line := lines[i]
		if strings.TrimSpace(line) == "" {
			continue
		}

		rec, err := parseRow(line, i+1)
		if err != nil {
			var merr *MalformedRowError
			if policy == types.MalformedSkip && errors.As(err, &merr) {
				stats.Skipped = append(stats.Skipped, merr)
				continue
			}
			return nil, stats, err
		}

		set.Put(rec)
		stats.Rows++
	}

	return set, stats, nil
}

func parseRow(line string, lineNo int) (types.Record, error) {
	f := strings.SplitN(line, separator, numFields)
	if len(f) != numFields {
		return types.Record{}, &MalformedRowError{Line: lineNo, Fields: len(f)}
	}
	return types.Record{
		BSSID:          f[0],
		Lat:            f[1],
		Lon:            f[2],
		SSID:           f[3],
		Crypt:          f[4],
		BeaconInterval: f[5],
		ConnectionMode: f[6],
		Channel:        f[7],
		RXL:            f[8],
		Date:           f[9],
		Time:           f[10],
	}, nil
}
