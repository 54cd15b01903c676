// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scanlog reads G-Mon scan logs and turns them into a RecordSet.
// A scan log is a text file with an optional header line followed by rows of
// eleven semicolon-separated fields. Parsing keeps one record per BSSID, and
// the filters drop records that cannot be placed on a map or have no name.
package scanlog

import (
	"bufio"
	"fmt"
	"os"
)

// maxLineSize bounds a single scan log line.
const maxLineSize = 1 << 20

// ReadLines returns the lines of the file at path with line endings removed.
// An empty file yields no lines. Errors from opening or reading the file are
// returned wrapped; the underlying *fs.PathError is reachable with errors.As.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}
