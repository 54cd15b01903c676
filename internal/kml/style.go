// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package kml

import (
	"path"

	"github.com/pdiddy/gmon2kml/pkg/types"
)

// Style is a placemark icon style, one per encryption category.
type Style struct {
	// ID is the Style element id; placemarks refer to it as "#" + ID.
	ID string
	// Icon is the icon file name inside the icon directory.
	Icon string
}

// URL returns the styleUrl value for s.
func (s Style) URL() string {
	return "#" + s.ID
}

// Href returns the icon path for s under iconDir.
func (s Style) Href(iconDir string) string {
	if iconDir == "" {
		return s.Icon
	}
	return path.Join(iconDir, s.Icon)
}

var (
	StyleOpen    = Style{ID: "open", Icon: "open.png"}
	StyleWep     = Style{ID: "wep", Icon: "wep.png"}
	StyleWpaPsk  = Style{ID: "wpapsk", Icon: "wpapsk.png"}
	StyleWPA2    = Style{ID: "wpa2", Icon: "wpa2.png"}
	StyleUnknown = Style{ID: "unknown", Icon: "unknown.png"}
)

// Styles lists every style in document order.
var Styles = []Style{StyleOpen, StyleWep, StyleWpaPsk, StyleWPA2, StyleUnknown}

// StyleFor maps a Crypt value to its style by exact match. Anything not
// recognised, including the empty string, maps to StyleUnknown.
func StyleFor(crypt string) Style {
	switch crypt {
	case types.CryptOpen:
		return StyleOpen
	case types.CryptWep:
		return StyleWep
	case types.CryptWpaPsk:
		return StyleWpaPsk
	case types.CryptWPA2:
		return StyleWPA2
	default:
		return StyleUnknown
	}
}
