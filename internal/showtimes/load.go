package showtimes

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

var textPolicy = bluemonday.StrictPolicy()

// Load reads the listings document from an http(s) URL or a local file path
// and decodes it. One shot, no retry: any failure is the caller's problem
// and should abort startup.
func Load(ctx context.Context, source string, timeout time.Duration) (Listings, error) {
	data, err := read(ctx, source, timeout)
	if err != nil {
		return nil, fmt.Errorf("read listings: %w", err)
	}

	var listings Listings
	if err := json.Unmarshal(data, &listings); err != nil {
		return nil, fmt.Errorf("decode listings: %w", err)
	}

	listings.sanitize()
	return listings, nil
}

func read(ctx context.Context, source string, timeout time.Duration) ([]byte, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		return os.ReadFile(source)
	}

	client := &http.Client{Timeout: timeout}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, source)
	}

	return io.ReadAll(resp.Body)
}

// sanitize strips markup from every source text field in place. The listings
// document is not trusted; anything that survives here is still escaped
// again at render time.
func (l Listings) sanitize() {
	for ti := range l {
		l[ti].Name = cleanText(l[ti].Name)
		for mi := range l[ti].Movies {
			m := &l[ti].Movies[mi]
			m.Title = cleanText(m.Title)
			for si := range m.Showtimes {
				m.Showtimes[si].Label = cleanText(m.Showtimes[si].Label)
			}
		}
	}
}

// cleanText removes tags and decodes the entity encoding StrictPolicy leaves
// behind, so stored fields are plain text ("AT&T" stays "AT&T").
func cleanText(s string) string {
	return html.UnescapeString(textPolicy.Sanitize(s))
}
