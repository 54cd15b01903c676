// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for gmon2kml.
// A scan log row becomes a Record; records are collected in a RecordSet keyed
// by BSSID and flow from the parser through the filters to the KML writer and
// the survey store.
package types

// Crypt values as written by G-Mon in the Crypt column. Any other value is
// treated as unknown.
const (
	CryptOpen   = "Open"
	CryptWep    = "Wep"
	CryptWpaPsk = "WpaPsk"
	CryptWPA2   = "WPA2"
)

// NaN is the sentinel G-Mon writes when no GPS fix was available.
const NaN = "NaN"

// Record holds one access point as seen in a scan log. All values are kept
// exactly as they appear in the input; nothing is parsed or reformatted.
type Record struct {
	// BSSID is the hardware address of the access point and the record key.
	BSSID string `json:"bssid" yaml:"bssid"`

	// Lat is the latitude, possibly the literal "NaN".
	Lat string `json:"lat" yaml:"lat"`

	// Lon is the longitude, possibly the literal "NaN".
	Lon string `json:"lon" yaml:"lon"`

	// SSID is the broadcast network name. May be empty for hidden networks.
	SSID string `json:"ssid" yaml:"ssid"`

	// Crypt is the encryption scheme (Open, Wep, WpaPsk, WPA2 or other).
	Crypt string `json:"crypt" yaml:"crypt"`

	BeaconInterval string `json:"beacon_interval" yaml:"beacon_interval"`
	ConnectionMode string `json:"connection_mode" yaml:"connection_mode"`
	Channel        string `json:"channel" yaml:"channel"`

	// RXL is the received signal level.
	RXL string `json:"rxl" yaml:"rxl"`

	Date string `json:"date" yaml:"date"`
	Time string `json:"time" yaml:"time"`
}

// HasCoords reports whether neither coordinate is the NaN sentinel.
// The comparison is an exact, case-sensitive string match.
func (r Record) HasCoords() bool {
	return r.Lat != NaN && r.Lon != NaN
}

// RecordSet maps BSSID to Record. It remembers the order in which each BSSID
// was first added so that iteration is deterministic; overwriting a record
// keeps its original position.
type RecordSet struct {
	order   []string
	records map[string]Record
}

// NewRecordSet returns an empty set.
func NewRecordSet() *RecordSet {
	return &RecordSet{records: make(map[string]Record)}
}

// Put stores r under r.BSSID, replacing every field of any previous record
// with the same BSSID.
func (s *RecordSet) Put(r Record) {
	if _, ok := s.records[r.BSSID]; !ok {
		s.order = append(s.order, r.BSSID)
	}
	s.records[r.BSSID] = r
}

// Get returns the record for bssid.
func (s *RecordSet) Get(bssid string) (Record, bool) {
	r, ok := s.records[bssid]
	return r, ok
}

// Len returns the number of distinct BSSIDs.
func (s *RecordSet) Len() int {
	return len(s.records)
}

// Records returns the records in first-seen order.
func (s *RecordSet) Records() []Record {
	out := make([]Record, 0, len(s.order))
	for _, bssid := range s.order {
		out = append(out, s.records[bssid])
	}
	return out
}

// Filter returns a new set holding the records for which keep returns true,
// and the number of records dropped. The receiver is not modified.
func (s *RecordSet) Filter(keep func(Record) bool) (*RecordSet, int) {
	out := NewRecordSet()
	removed := 0
	for _, r := range s.Records() {
		if keep(r) {
			out.Put(r)
		} else {
			removed++
		}
	}
	return out, removed
}
