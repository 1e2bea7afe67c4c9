package static

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestNewStaticCache_BuildsEntries(t *testing.T) {
	cache, err := NewStaticCache()
	require.NoError(t, err)
	require.NotNil(t, cache)
	require.NotEmpty(t, cache.entries)

	ci, ok := cache.entries["dist/main.css"]
	require.True(t, ok, "expected dist/main.css to be embedded")

	require.NotEmpty(t, ci.ETag)
	require.True(t, regexp.MustCompile(`^\"[0-9a-f]{64}\"$`).MatchString(ci.ETag))
	require.True(t, ci.Size > 0)
	require.False(t, ci.LastModified.IsZero())
}

func TestServeStaticFile_ETagRoundTrip(t *testing.T) {
	cache, err := NewStaticCache()
	require.NoError(t, err)

	e := echo.New()
	handler := cache.ServeStaticFile("/static/")

	req := httptest.NewRequest(http.MethodGet, "/static/dist/main.css", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)

	// Second request with the ETag should 304.
	req = httptest.NewRequest(http.MethodGet, "/static/dist/main.css", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	require.Equal(t, http.StatusNotModified, rec.Code)
}

func TestServeStaticFile_Missing(t *testing.T) {
	cache, err := NewStaticCache()
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/static/nope.css", nil)
	rec := httptest.NewRecorder()

	err = cache.ServeStaticFile("/static/")(e.NewContext(req, rec))
	require.ErrorIs(t, err, echo.ErrNotFound)
}
