package showtimes

import (
	"fmt"
	"time"

	"github.com/go-playground/locales"
)

// Row is one display line: a single (theater, movie, showtime) triple with
// all fields already formatted for rendering.
type Row struct {
	Theater  string
	Title    string
	Runtime  string
	Datetime string
	Label    string
}

// Flatten expands listings into one Row per showtime. Order is fully
// deterministic: theaters in document order, movies and showtimes in list
// order. len(result) always equals listings.TotalShowtimes().
func Flatten(listings Listings, trans locales.Translator) []Row {
	rows := make([]Row, 0, listings.TotalShowtimes())
	for _, th := range listings {
		for _, m := range th.Movies {
			runtime := FormatRuntime(m.Runtime)
			for _, st := range m.Showtimes {
				rows = append(rows, Row{
					Theater:  th.Name,
					Title:    m.Title,
					Runtime:  runtime,
					Datetime: FormatDatetime(st.Datetime, trans),
					Label:    st.Label,
				})
			}
		}
	}
	return rows
}

// FormatRuntime renders minutes as "2h 35m". Zero or negative minutes mean
// the source had no runtime.
func FormatRuntime(minutes int) string {
	if minutes <= 0 {
		return "Unknown"
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// timestampLayouts covers what the cinema feeds actually emit: full RFC 3339,
// the same without a zone, and the fetcher's older "2006-01-02 15:04" form.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

// FormatDatetime renders an ISO-8601 timestamp as medium date plus short
// time in the translator's locale. An unparseable timestamp renders the
// literal "Invalid Date".
func FormatDatetime(value string, trans locales.Translator) string {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return trans.FmtDateMedium(t) + ", " + trans.FmtTimeShort(t)
		}
	}
	return "Invalid Date"
}
