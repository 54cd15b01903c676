// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package kml

import (
	"fmt"
	"html"
	"strings"

	"github.com/pdiddy/gmon2kml/pkg/types"
)

// descriptionTable renders the HTML summary shown in a placemark balloon.
// Cell values are HTML-escaped unless raw is set.
func descriptionTable(r types.Record, raw bool) string {
	esc := html.EscapeString
	if raw {
		esc = func(s string) string { return s }
	}

	var b strings.Builder
	b.WriteString("\n<table style=\"width:100%\">\n")
	row(&b, "th", "SSID", esc(r.SSID))
	row(&b, "td", "BSSID", esc(r.BSSID))
	row(&b, "td", "Encryption", "<b>"+esc(r.Crypt)+"</b>")
	row(&b, "td", "Channel", esc(r.Channel))
	row(&b, "td", "Seen", esc(r.Date)+" "+esc(r.Time))
	b.WriteString("</table>\n")
	return b.String()
}

func row(b *strings.Builder, cell, label, value string) {
	b.WriteString("    <tr>\n")
	fmt.Fprintf(b, "        <%s><b>%s</b></%s>\n", cell, label, cell)
	fmt.Fprintf(b, "        <%s>%s</%s>\n", cell, value, cell)
	b.WriteString("    </tr>\n")
}
