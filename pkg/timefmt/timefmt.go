// Package timefmt handles the DD/MM/YYYY HH:MM timestamps stored in the
// JSON collections.
package timefmt

import "time"

const Layout = "02/01/2006 15:04"

const dateLayout = "02/01/2006"

func Format(t time.Time) string {
	return t.Format(Layout)
}

// ParseDate parses only the date part of a stored timestamp. The time of
// day is ignored, matching how cancellation windows are computed.
func ParseDate(s string) (time.Time, error) {
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	return time.Parse(dateLayout, s)
}
