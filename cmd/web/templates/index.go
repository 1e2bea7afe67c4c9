// Package templates holds the full-page views.
package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"thirdcoast.systems/marquee/cmd/web/templates/components"
	"thirdcoast.systems/marquee/cmd/web/viewtypes"
	"thirdcoast.systems/marquee/internal/showtimes"
)

const datastarSrc = "https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"

// Index is the showtimes board: heading, search input, the table with every
// row server-rendered, and the result-count footer. The search input binds
// the q signal and posts it to the index endpoint on every input event; the
// server patches #showtimes-body and #result-count back over SSE.
func Index(board *showtimes.Board) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html>`+
			`<html lang="en"><head>`+
			`<meta charset="utf-8"/>`+
			`<meta name="viewport" content="width=device-width, initial-scale=1"/>`+
			`<title>Marquee</title>`+
			`<link rel="stylesheet" href="/static/dist/main.css"/>`+
			`<script type="module" src="`+datastarSrc+`"></script>`+
			`</head><body><main class="board">`+
			`<h1 class="`+viewtypes.PageHeading+`">Now Showing</h1>`+
			`<input id="search" type="search" class="`+viewtypes.SearchInput+`"`+
			` placeholder="Search theater, title, or label"`+
			` data-bind-q data-on-input="@post('/api/showtimes/index')"/>`+
			`<table class="`+viewtypes.BoardTable+`"><thead><tr>`+
			`<th>Theater</th><th>Title</th><th>Runtime</th><th>Showtime</th><th>Label</th>`+
			`</tr></thead>`); err != nil {
			return err
		}

		if err := components.ShowtimesBody(board.Rows).Render(ctx, w); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `</table>`); err != nil {
			return err
		}

		if err := components.ResultCount(len(board.Rows), len(board.Rows), board.LoadedAt).Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}
