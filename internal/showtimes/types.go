// Package showtimes holds the listings domain: the nested document the
// fetcher produces, the flat display rows the web UI renders, and the
// transforms between them.
package showtimes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// Showtime is one screening of a movie.
type Showtime struct {
	Datetime string `json:"datetime"`
	Label    string `json:"label,omitempty"`
}

// Movie is one program entry at a theater. Runtime is in minutes; zero means
// the source did not carry one.
type Movie struct {
	Title     string     `json:"title"`
	Runtime   int        `json:"runtime,omitempty"`
	Showtimes []Showtime `json:"showtimes"`
}

// Theater is one cinema and its program.
type Theater struct {
	Name   string
	Movies []Movie
}

// Listings is the full document: every theater in source order. The JSON
// form is an object keyed by theater name, and that key order is meaningful
// for display, so Listings decodes the object itself instead of going
// through a map.
type Listings []Theater

// UnmarshalJSON walks the object token by token so the theater order in the
// source document survives. Duplicate theater keys keep the first occurrence.
func (l *Listings) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("listings: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("listings: expected a JSON object, got %v", tok)
	}

	var out Listings
	seen := make(map[string]struct{})
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("listings: %w", err)
		}
		name := tok.(string)

		var movies []Movie
		if err := dec.Decode(&movies); err != nil {
			return fmt.Errorf("listings: theater %q: %w", name, err)
		}

		if _, dup := seen[name]; dup {
			slog.Warn("duplicate theater in listings, keeping first", "theater", name)
			continue
		}
		seen[name] = struct{}{}
		out = append(out, Theater{Name: name, Movies: movies})
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("listings: %w", err)
	}

	*l = out
	return nil
}

// MarshalJSON writes the object form back out in slice order.
func (l Listings) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, th := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(th.Name)
		if err != nil {
			return nil, err
		}
		movies, err := json.Marshal(th.Movies)
		if err != nil {
			return nil, fmt.Errorf("theater %q: %w", th.Name, err)
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(movies)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// TotalShowtimes counts every screening across all theaters and movies.
func (l Listings) TotalShowtimes() int {
	n := 0
	for _, th := range l {
		for _, m := range th.Movies {
			n += len(m.Showtimes)
		}
	}
	return n
}

// Board is the immutable state the web handlers share: the flattened rows
// and when they were loaded. It is built once at startup and only read
// afterwards, so no locking is needed.
type Board struct {
	Rows     []Row
	LoadedAt time.Time
}
