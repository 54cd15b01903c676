// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/gmon2kml/internal/scanlog"
	"github.com/pdiddy/gmon2kml/pkg/types"
)

func writeLog(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scan.csv")
	content := ""
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunScenario(t *testing.T) {
	path := writeLog(t,
		scanlog.Header,
		"AA:BB:CC:DD:EE:FF;1.0;2.0;MyNet;Open;100;Managed;6;-50;2020-01-01;12:00:00",
	)

	var out, diag bytes.Buffer
	sum, err := Run(path, types.ConvertConfig{}, &out, &diag)
	require.NoError(t, err)

	assert.True(t, sum.Header)
	assert.Equal(t, 1, sum.Written)
	assert.Equal(t, 1, strings.Count(out.String(), "<Placemark>"))
	assert.Contains(t, out.String(), "<name>MyNet</name>")
	assert.Contains(t, out.String(), "<styleUrl>#open</styleUrl>")
	assert.Contains(t, out.String(), "<coordinates>2.0,1.0</coordinates>")

	// Diagnostics never leak into the document.
	assert.NotContains(t, out.String(), "Reading")
	assert.Contains(t, diag.String(), "Reading "+path+" ... OK")
	assert.Contains(t, diag.String(), "Parsing data ... OK, 1 entries added")
	assert.NotContains(t, diag.String(), "<kml")
}

func TestRunFilters(t *testing.T) {
	path := writeLog(t,
		scanlog.Header,
		"00:00:00:00:00:01;NaN;2.0;NoFix;Wep;100;Managed;1;-50;2020-01-01;12:00:00",
		"00:00:00:00:00:02;1.0;NaN;NoFixLon;Wep;100;Managed;1;-50;2020-01-01;12:00:00",
		"00:00:00:00:00:03;1.0;2.0;;WPA2;100;Managed;1;-50;2020-01-01;12:00:00",
		"00:00:00:00:00:04;1.0;2.0;Keep;WpaPsk;100;Managed;1;-50;2020-01-01;12:00:00",
	)

	var out, diag bytes.Buffer
	sum, err := Run(path, types.ConvertConfig{}, &out, &diag)
	require.NoError(t, err)

	assert.Equal(t, 4, sum.Parsed)
	assert.Equal(t, 2, sum.NoCoords)
	assert.Equal(t, 1, sum.NoSSID)
	assert.Equal(t, 1, sum.Written)
	assert.Contains(t, diag.String(), "Removing entries without coordinates ... OK, 2 entries removed")
	assert.Contains(t, diag.String(), "Removing entries without SSID ... OK, 1 entries removed")

	assert.NotContains(t, out.String(), "NoFix")
	assert.NotContains(t, out.String(), "00:00:00:00:00:03")
	assert.Contains(t, out.String(), "<styleUrl>#wpapsk</styleUrl>")
}

func TestRunEmptyInput(t *testing.T) {
	path := writeLog(t)

	var out, diag bytes.Buffer
	sum, err := Run(path, types.ConvertConfig{}, &out, &diag)
	require.NoError(t, err)
	assert.True(t, sum.Empty())
	assert.Zero(t, out.Len())
}

func TestRunMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.csv")

	var out, diag bytes.Buffer
	_, err := Run(path, types.ConvertConfig{}, &out, &diag)
	require.Error(t, err)
	assert.Zero(t, out.Len())
	assert.Contains(t, diag.String(), "FAILED, no such file or directory")
}

func TestRunMalformed(t *testing.T) {
	path := writeLog(t,
		scanlog.Header,
		"bad;row",
		"AA:BB:CC:DD:EE:FF;1.0;2.0;MyNet;Open;100;Managed;6;-50;2020-01-01;12:00:00",
	)

	t.Run("fail", func(t *testing.T) {
		var out, diag bytes.Buffer
		_, err := Run(path, types.ConvertConfig{OnMalformed: types.MalformedFail}, &out, &diag)
		require.Error(t, err)
		assert.ErrorIs(t, err, scanlog.ErrMalformedRow)
		assert.Zero(t, out.Len(), "no output before serialization starts")
	})

	t.Run("skip", func(t *testing.T) {
		var out, diag bytes.Buffer
		sum, err := Run(path, types.ConvertConfig{OnMalformed: types.MalformedSkip}, &out, &diag)
		require.NoError(t, err)
		assert.Equal(t, 1, sum.Skipped)
		assert.Equal(t, 1, sum.Written)
		assert.Contains(t, diag.String(), "warning: skipped line 2")
	})
}

func TestLoadWithoutHeader(t *testing.T) {
	path := writeLog(t,
		"AA:BB:CC:DD:EE:FF;1.0;2.0;MyNet;Open;100;Managed;6;-50;2020-01-01;12:00:00",
	)

	var diag bytes.Buffer
	set, sum, err := Load(path, types.ConvertConfig{}, &diag)
	require.NoError(t, err)
	assert.False(t, sum.Header)
	assert.Equal(t, 1, set.Len())
}
