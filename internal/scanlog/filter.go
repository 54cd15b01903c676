// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scanlog

import "github.com/pdiddy/gmon2kml/pkg/types"

// RemoveNoCoords drops records whose latitude or longitude is the literal
// "NaN". It returns the remaining records and how many were removed.
func RemoveNoCoords(set *types.RecordSet) (*types.RecordSet, int) {
	return set.Filter(types.Record.HasCoords)
}

// RemoveEmptySSID drops records with an empty network name.
func RemoveEmptySSID(set *types.RecordSet) (*types.RecordSet, int) {
	return set.Filter(func(r types.Record) bool {
		return r.SSID != ""
	})
}
