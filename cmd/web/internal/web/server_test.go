package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/locales/en_US"
	"github.com/stretchr/testify/require"
	"thirdcoast.systems/marquee/internal/showtimes"
)

func newTestServer(t *testing.T, doc string) *Webserver {
	t.Helper()

	var listings showtimes.Listings
	require.NoError(t, json.Unmarshal([]byte(doc), &listings))

	board := &showtimes.Board{
		Rows:     showtimes.Flatten(listings, en_US.New()),
		LoadedAt: time.Now(),
	}

	srv, err := NewWebserver(board)
	require.NoError(t, err)
	return srv
}

func TestHomePage_EndToEnd(t *testing.T) {
	srv := newTestServer(t, `{"Grand": [{"title": "Dune", "runtime": 155, "showtimes": [{"datetime": "2024-01-01T18:00:00Z", "label": "IMAX"}]}]}`)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	// Exactly one rendered row with the derived fields.
	require.Equal(t, 2, strings.Count(body, "<tr>")) // header row + one data row
	require.Contains(t, body, `<td class="col-title">Dune</td>`)
	require.Contains(t, body, `<td class="col-runtime">2h 35m</td>`)
	require.Contains(t, body, "<td>IMAX</td>")

	// The datetime column is whatever the configured translator produced.
	trans := en_US.New()
	ts := time.Date(2024, time.January, 1, 18, 0, 0, 0, time.UTC)
	require.Contains(t, body, trans.FmtDateMedium(ts)+", "+trans.FmtTimeShort(ts))

	// Page chrome: search input bound to the q signal, result count footer.
	require.Contains(t, body, `id="showtimes-body"`)
	require.Contains(t, body, "data-bind-q")
	require.Contains(t, body, "Showing 1 of 1 showtimes")
}

func TestFilterEndpoint_EndToEnd(t *testing.T) {
	srv := newTestServer(t, `{
		"Grand": [{"title": "Dune", "runtime": 155, "showtimes": [{"datetime": "2024-01-01T18:00:00Z"}]}],
		"Plaza": [{"title": "Alien", "runtime": 117, "showtimes": [{"datetime": "2024-01-02T21:00:00Z", "label": "IMAX"}]}]
	}`)

	req := httptest.NewRequest(http.MethodPost, "/api/showtimes/index", strings.NewReader(`{"q":"plaza"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "datastar-patch-elements")
	require.Contains(t, body, "Alien")
	require.NotContains(t, body, "Dune")
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, `{}`)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}

func TestStaticStylesheet(t *testing.T) {
	srv := newTestServer(t, `{}`)

	req := httptest.NewRequest(http.MethodGet, "/static/dist/main.css", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/css")
	require.Contains(t, rec.Body.String(), ".board-table")
}
