package showtimes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const sampleDoc = `{
	"Gateway": [
		{"title": "Dune", "runtime": 155, "showtimes": [{"datetime": "2024-01-01T18:00:00Z", "label": "IMAX"}]}
	],
	"Drexel": [
		{"title": "Nosferatu", "showtimes": [{"datetime": "2024-01-03T20:00:00Z"}]}
	]
}`

func TestLoad_FromHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleDoc))
	}))
	defer srv.Close()

	listings, err := Load(context.Background(), srv.URL, 5*time.Second)
	require.NoError(t, err)
	require.Len(t, listings, 2)
	require.Equal(t, "Gateway", listings[0].Name)
	require.Equal(t, 2, listings.TotalShowtimes())
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cinemas.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0o644))

	listings, err := Load(context.Background(), path, 5*time.Second)
	require.NoError(t, err)
	require.Len(t, listings, 2)
}

func TestLoad_HTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := Load(context.Background(), srv.URL, 5*time.Second)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected status 500")
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cinemas.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Gateway": [`), 0o644))

	_, err := Load(context.Background(), path, 5*time.Second)
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.json"), 5*time.Second)
	require.Error(t, err)
}

func TestLoad_SanitizesSourceText(t *testing.T) {
	doc := `{
		"<b>Gateway</b>": [
			{"title": "Dune <script>alert(1)</script>", "showtimes": [{"datetime": "2024-01-01T18:00:00Z", "label": "<i>IMAX</i> & 70mm"}]}
		]
	}`
	path := filepath.Join(t.TempDir(), "cinemas.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	listings, err := Load(context.Background(), path, 5*time.Second)
	require.NoError(t, err)

	require.Equal(t, "Gateway", listings[0].Name)
	require.Equal(t, "Dune ", listings[0].Movies[0].Title)
	// Plain text survives unencoded; only markup is stripped.
	require.Equal(t, "IMAX & 70mm", listings[0].Movies[0].Showtimes[0].Label)
}
