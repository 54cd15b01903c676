// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// MalformedPolicy selects what the parser does with a row that does not
// split into the expected number of fields.
type MalformedPolicy string

const (
	// MalformedFail aborts the run on the first malformed row.
	MalformedFail MalformedPolicy = "fail"

	// MalformedSkip drops the row, reports it, and keeps going.
	MalformedSkip MalformedPolicy = "skip"
)

// Valid reports whether p is a known policy.
func (p MalformedPolicy) Valid() bool {
	return p == MalformedFail || p == MalformedSkip
}

// KMLConfig holds settings for the KML writer.
type KMLConfig struct {
	// IconDir is the directory prefix for style icons (default "icons").
	IconDir string `json:"icon_dir" yaml:"icon_dir"`

	// DocumentName is an optional <name> for the KML Document element.
	DocumentName string `json:"name,omitempty" yaml:"name,omitempty"`

	// Indent is the number of spaces per nesting level; 0 writes compact output.
	Indent int `json:"indent" yaml:"indent"`

	// RawDescription inserts the description table as a plain text node with
	// unescaped cell values instead of a CDATA section.
	RawDescription bool `json:"raw_description" yaml:"raw_description"`
}

// ConvertConfig holds settings for a scan log conversion run.
type ConvertConfig struct {
	KML KMLConfig `json:"kml" yaml:"kml"`

	// OnMalformed is the malformed-row policy: fail (default) or skip.
	OnMalformed MalformedPolicy `json:"on_malformed" yaml:"on_malformed"`
}

// SurveyConfig holds settings for the survey database.
type SurveyConfig struct {
	// Dir is the directory containing survey.db (default "survey").
	Dir string `json:"survey_dir" yaml:"survey_dir"`
}
