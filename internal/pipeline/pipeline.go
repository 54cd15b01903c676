// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs a scan log through reading, parsing, filtering and
// KML output. Progress is reported line by line to a diagnostic writer so
// that the KML writer's destination only ever receives the document.
package pipeline

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/pdiddy/gmon2kml/internal/kml"
	"github.com/pdiddy/gmon2kml/internal/scanlog"
	"github.com/pdiddy/gmon2kml/pkg/types"
)

// Summary holds the outcome of one run.
type Summary struct {
	// Lines is the number of lines read, header included.
	Lines int
	// Header reports whether the first line was the G-Mon header.
	Header bool
	// Rows is the number of data rows parsed.
	Rows int
	// Parsed is the number of distinct BSSIDs after parsing.
	Parsed int
	// Skipped is the number of malformed rows dropped.
	Skipped int
	// NoCoords is the number of records removed for missing coordinates.
	NoCoords int
	// NoSSID is the number of records removed for an empty SSID.
	NoSSID int
	// Written is the number of placemarks in the output.
	Written int
}

// Empty reports whether the input had no lines at all.
func (s Summary) Empty() bool {
	return s.Lines == 0
}

// Load reads, parses and filters the scan log at path and returns the
// surviving records. An empty file is not an error; it yields an empty set.
func Load(path string, cfg types.ConvertConfig, diag io.Writer) (*types.RecordSet, Summary, error) {
	var sum Summary

	fmt.Fprintf(diag, "Reading %s ... ", path)
	lines, err := scanlog.ReadLines(path)
	if err != nil {
		fmt.Fprintf(diag, "FAILED, %v\n", rootCause(err))
		return nil, sum, err
	}
	fmt.Fprintln(diag, "OK")

	sum.Lines = len(lines)
	if sum.Empty() {
		return types.NewRecordSet(), sum, nil
	}
	sum.Header = scanlog.HasHeader(lines[0])

	fmt.Fprint(diag, "Parsing data ... ")
	set, stats, err := scanlog.Parse(lines, sum.Header, cfg.OnMalformed)
	if err != nil {
		fmt.Fprintf(diag, "FAILED, %v\n", err)
		return nil, sum, fmt.Errorf("parsing %s: %w", path, err)
	}
	sum.Rows = stats.Rows
	sum.Parsed = set.Len()
	sum.Skipped = len(stats.Skipped)
	fmt.Fprintf(diag, "OK, %d entries added\n", sum.Parsed)
	for _, s := range stats.Skipped {
		fmt.Fprintf(diag, "warning: skipped %v\n", s)
	}

	fmt.Fprint(diag, "Removing entries without coordinates ... ")
	set, sum.NoCoords = scanlog.RemoveNoCoords(set)
	fmt.Fprintf(diag, "OK, %d entries removed\n", sum.NoCoords)

	fmt.Fprint(diag, "Removing entries without SSID ... ")
	set, sum.NoSSID = scanlog.RemoveEmptySSID(set)
	fmt.Fprintf(diag, "OK, %d entries removed\n", sum.NoSSID)

	return set, sum, nil
}

// Run converts the scan log at path and writes KML to out. For an empty
// input nothing is written to out.
func Run(path string, cfg types.ConvertConfig, out, diag io.Writer) (Summary, error) {
	set, sum, err := Load(path, cfg, diag)
	if err != nil {
		return sum, err
	}
	if sum.Empty() {
		return sum, nil
	}

	if err := kml.Write(out, set, cfg.KML); err != nil {
		return sum, err
	}
	sum.Written = set.Len()
	fmt.Fprintf(diag, "Wrote %d placemarks\n", sum.Written)
	return sum, nil
}

// rootCause strips the operation and path from file errors so the
// diagnostic reads like "no such file or directory".
func rootCause(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
