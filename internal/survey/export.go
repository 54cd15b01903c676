// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package survey

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/gmon2kml/pkg/types"
)

// ExportEntry is an access point with its provenance.
type ExportEntry struct {
	types.Record `yaml:",inline"`

	// Source is the scan log the values were last taken from.
	Source string `json:"source" yaml:"source"`

	// IngestedAt is the RFC 3339 time of that ingest.
	IngestedAt string `json:"ingested_at" yaml:"ingested_at"`
}

// ExportYAML writes the access points matching f to w as a YAML sequence.
func (s *Store) ExportYAML(ctx context.Context, w io.Writer, f Filter) error {
	entries, err := s.exportEntries(ctx, f)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// ExportJSON writes the access points matching f to w as an indented JSON array.
func (s *Store) ExportJSON(ctx context.Context, w io.Writer, f Filter) error {
	entries, err := s.exportEntries(ctx, f)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func (s *Store) exportEntries(ctx context.Context, f Filter) ([]ExportEntry, error) {
	entries, err := s.entries(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}
	if entries == nil {
		entries = []ExportEntry{}
	}
	return entries, nil
}
