// Package showtimes_api provides the board's render-on-filter endpoint.
package showtimes_api

import (
	"github.com/labstack/echo/v4"
	"github.com/starfederation/datastar-go/datastar"
	"thirdcoast.systems/marquee/cmd/web/templates/components"
	"thirdcoast.systems/marquee/internal/showtimes"
)

// HandleIndex re-renders the showtimes table body for the current search
// query and patches it into the DOM via SSE. Stateless: every request
// recomputes the filtered view from the immutable board rows.
func HandleIndex(board *showtimes.Board) echo.HandlerFunc {
	return func(c echo.Context) error {
		// IMPORTANT: ReadSignals MUST happen BEFORE NewSSE.
		// NewSSE flushes response headers which closes the request body.
		type Signals struct {
			Query string `json:"q"`
		}
		signals := &Signals{}
		if err := datastar.ReadSignals(c.Request(), signals); err != nil {
			// Fallback to query params for non-datastar clients
			signals.Query = c.QueryParam("q")
		}

		matched := showtimes.Filter(board.Rows, signals.Query)

		sse := datastar.NewSSE(c.Response().Writer, c.Request())

		// Both patches morph by element id.
		if err := sse.PatchElementTempl(components.ShowtimesBody(matched)); err != nil {
			return err
		}

		return sse.PatchElementTempl(
			components.ResultCount(len(matched), len(board.Rows), board.LoadedAt),
		)
	}
}
