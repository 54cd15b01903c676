// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package kml renders a RecordSet as a KML document with one placemark per
// access point. The document is assembled as an element tree so that every
// piece of record text is escaped by the XML writer.
package kml

import (
	"fmt"
	"io"

	"github.com/beevik/etree"

	"github.com/pdiddy/gmon2kml/pkg/types"
)

// Namespace is the KML 2.2 namespace.
const Namespace = "http://www.opengis.net/kml/2.2"

// DefaultIconDir is used when the config leaves IconDir empty.
const DefaultIconDir = "icons"

// Build assembles the KML document for set. Placemarks follow the set's
// iteration order.
func Build(set *types.RecordSet, cfg types.KMLConfig) *etree.Document {
	iconDir := cfg.IconDir
	if iconDir == "" {
		iconDir = DefaultIconDir
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("kml")
	root.CreateAttr("xmlns", Namespace)
	d := root.CreateElement("Document")
	if cfg.DocumentName != "" {
		d.CreateElement("name").SetText(cfg.DocumentName)
	}

	for _, s := range Styles {
		addStyle(d, s, iconDir)
	}
	for _, r := range set.Records() {
		addPlacemark(d, r, cfg.RawDescription)
	}

	if cfg.Indent > 0 {
		doc.Indent(cfg.Indent)
	}
	return doc
}

// Write renders set to w.
func Write(w io.Writer, set *types.RecordSet, cfg types.KMLConfig) error {
	if _, err := Build(set, cfg).WriteTo(w); err != nil {
		return fmt.Errorf("writing KML: %w", err)
	}
	return nil
}

// Render returns the KML document for set as a string.
func Render(set *types.RecordSet, cfg types.KMLConfig) (string, error) {
	s, err := Build(set, cfg).WriteToString()
	if err != nil {
		return "", fmt.Errorf("rendering KML: %w", err)
	}
	return s, nil
}

func addStyle(parent *etree.Element, s Style, iconDir string) {
	st := parent.CreateElement("Style")
	st.CreateAttr("id", s.ID)
	icon := st.CreateElement("IconStyle").CreateElement("Icon")
	icon.CreateElement("href").SetText(s.Href(iconDir))
}

// addPlacemark appends the placemark for r. The description table is kept
// in a CDATA section so viewers receive it as HTML; with raw set it becomes
// an ordinary text node and the writer escapes its markup.
func addPlacemark(parent *etree.Element, r types.Record, raw bool) {
	pm := parent.CreateElement("Placemark")
	pm.CreateElement("styleUrl").SetText(StyleFor(r.Crypt).URL())
	pm.CreateElement("name").SetText(r.SSID)

	desc := pm.CreateElement("description")
	table := descriptionTable(r, raw)
	if raw {
		desc.CreateText(table)
	} else {
		desc.CreateCData(table)
	}

	pm.CreateElement("Point").CreateElement("coordinates").SetText(Coordinates(r))
}

// Coordinates formats the point of r as "lon,lat" using the input strings.
func Coordinates(r types.Record) string {
	return r.Lon + "," + r.Lat
}
