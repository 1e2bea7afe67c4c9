// Command fetcher pulls the per-cinema JSON feeds, merges them into the
// combined listings document, and writes it to disk for the web service to
// load. A feed that fails is logged and skipped; its theater simply drops
// out of that run's output.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"thirdcoast.systems/marquee/internal/showtimes"
)

// feed is one cinema endpoint. Order matters: the output document keeps the
// theaters in the order the flags were given.
type feed struct {
	Name string
	URL  string
}

type feedFlags []feed

func (f *feedFlags) String() string {
	parts := make([]string, len(*f))
	for i, fd := range *f {
		parts[i] = fd.Name + "=" + fd.URL
	}
	return strings.Join(parts, ",")
}

func (f *feedFlags) Set(value string) error {
	name, url, ok := strings.Cut(value, "=")
	if !ok || name == "" || url == "" {
		return fmt.Errorf("feed must be name=url, got %q", value)
	}
	*f = append(*f, feed{Name: name, URL: url})
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var feeds feedFlags
	out := flag.String("out", "cinemas.json", "output path for the combined listings document")
	timeout := flag.Duration("timeout", 30*time.Second, "per-feed fetch timeout")
	flag.Var(&feeds, "feed", "cinema feed as name=url (repeatable, order preserved)")
	flag.Parse()

	if len(feeds) == 0 {
		slog.Error("no feeds given; use -feed name=url")
		os.Exit(1)
	}

	client := &http.Client{Timeout: *timeout}

	var listings showtimes.Listings
	for _, fd := range feeds {
		movies, err := fetchFeed(ctx, client, fd.URL)
		if err != nil {
			slog.Warn("feed failed, skipping theater", "theater", fd.Name, "url", fd.URL, "error", err)
			continue
		}
		slog.Info("feed fetched", "theater", fd.Name, "movies", len(movies))
		listings = append(listings, showtimes.Theater{Name: fd.Name, Movies: movies})
	}

	if err := writeListings(*out, listings); err != nil {
		slog.Error("failed to write listings", "path", *out, "error", err)
		os.Exit(1)
	}

	slog.Info("listings written", "path", *out,
		"theaters", len(listings), "showtimes", listings.TotalShowtimes())
}

func fetchFeed(ctx context.Context, client *http.Client, url string) ([]showtimes.Movie, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var movies []showtimes.Movie
	if err := json.Unmarshal(body, &movies); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}
	return movies, nil
}

// writeListings writes the document atomically: temp file in the target
// directory, then rename. A crashed run never leaves the web service a
// half-written file to load.
func writeListings(path string, listings showtimes.Listings) error {
	data, err := json.MarshalIndent(listings, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".cinemas-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
