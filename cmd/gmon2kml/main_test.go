// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	header = "BSSID;LAT;LON;SSID;Crypt;Beacon Interval;Connection Mode;Channel;RXL;Date;Time"
	myNet  = "AA:BB:CC:DD:EE:FF;1.0;2.0;MyNet;Open;100;Managed;6;-50;2020-01-01;12:00:00"
)

// execute runs the CLI with args and fresh flag values.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(reset)
	}
	rootCmd.SilenceUsage = false

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeLog(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := ""
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConvertArgCount(t *testing.T) {
	_, stderr, err := execute(t)
	require.Error(t, err)
	assert.Contains(t, stderr, "accepts 1 arg(s), received 0")

	dir := t.TempDir()
	a := writeLog(t, dir, "a.csv", header, myNet)
	b := writeLog(t, dir, "b.csv", header, myNet)
	_, _, err = execute(t, a, b)
	require.Error(t, err)
}

func TestConvert(t *testing.T) {
	path := writeLog(t, t.TempDir(), "scan.csv", header, myNet)

	stdout, stderr, err := execute(t, path)
	require.NoError(t, err)

	assert.Contains(t, stdout, "<name>MyNet</name>")
	assert.Contains(t, stdout, "<styleUrl>#open</styleUrl>")
	assert.Contains(t, stdout, "<coordinates>2.0,1.0</coordinates>")
	assert.NotContains(t, stdout, "Reading")
	assert.Contains(t, stderr, "Parsing data ... OK, 1 entries added")
}

func TestConvertQuiet(t *testing.T) {
	path := writeLog(t, t.TempDir(), "scan.csv", header, myNet)

	stdout, stderr, err := execute(t, "--quiet", "--indent", "0", "--icon-dir", "img", path)
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, "<href>img/open.png</href>")
	assert.Contains(t, stdout, "<Placemark><styleUrl>#open</styleUrl>")
}

func TestConvertEmptyInput(t *testing.T) {
	path := writeLog(t, t.TempDir(), "empty.csv")

	stdout, _, err := execute(t, path)
	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestConvertMissingFile(t *testing.T) {
	stdout, stderr, err := execute(t, filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "FAILED")
}

func TestConvertMalformedPolicy(t *testing.T) {
	path := writeLog(t, t.TempDir(), "scan.csv", header, "broken", myNet)

	_, _, err := execute(t, path)
	require.Error(t, err)

	stdout, stderr, err := execute(t, "--on-malformed", "skip", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "<name>MyNet</name>")
	assert.Contains(t, stderr, "warning: skipped line 2")

	_, _, err = execute(t, "--on-malformed", "ignore", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported on-malformed policy")
}

func TestStoreAndExport(t *testing.T) {
	dir := t.TempDir()
	surveyDir := filepath.Join(dir, "survey")
	first := writeLog(t, dir, "first.csv", header,
		myNet,
		"11:22:33:44:55:66;NaN;NaN;NoFix;WPA2;100;Managed;1;-80;2020-01-01;12:00:01",
	)
	second := writeLog(t, dir, "second.csv", header,
		"AA:BB:CC:DD:EE:FF;1.5;2.5;MyNet;WPA2;100;Managed;6;-40;2020-02-01;09:00:00",
		"66:55:44:33:22:11;3.0;4.0;Cafe;Open;100;Managed;11;-70;2020-02-01;09:00:10",
	)

	_, stderr, err := execute(t, "store", "--survey-dir", surveyDir, first, second)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Store summary: 2 stored, 0 failed (total: 2)")

	stdout, _, err := execute(t, "export", "--survey-dir", surveyDir, "--format", "json")
	require.NoError(t, err)

	var entries []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "AA:BB:CC:DD:EE:FF", entries[0]["bssid"])
	assert.Equal(t, "WPA2", entries[0]["crypt"])
	assert.Equal(t, "1.5", entries[0]["lat"])
	assert.Equal(t, second, entries[0]["source"])
	assert.Equal(t, "Cafe", entries[1]["ssid"])

	stdout, _, err = execute(t, "export", "--survey-dir", surveyDir, "--crypt", "Open")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(stdout, "<Placemark>"))
	assert.Contains(t, stdout, "<name>Cafe</name>")

	_, _, err = execute(t, "export", "--survey-dir", surveyDir, "--format", "csv")
	require.Error(t, err)
}

func TestStoreMissingFile(t *testing.T) {
	dir := t.TempDir()
	_, stderr, err := execute(t, "store", "--survey-dir", filepath.Join(dir, "survey"), filepath.Join(dir, "nope.csv"))
	require.Error(t, err)
	assert.Contains(t, stderr, "1 failed")
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "gmon2kml dev\n", stdout)
}
