// Package components holds the view fragments shared between full-page
// renders and SSE patches.
package components

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"thirdcoast.systems/marquee/internal/showtimes"
)

// ShowtimeRows renders one <tr> per row. Both the initial page render and
// the filter re-render go through this component, so the two paths can never
// drift apart. An empty slice renders nothing.
//
// Components are written directly against the templ API; every interpolated
// field goes through templ.EscapeString.
func ShowtimeRows(rows []showtimes.Row) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		for _, r := range rows {
			b.WriteString("<tr>")
			cell(&b, "", r.Theater)
			cell(&b, "col-title", r.Title)
			cell(&b, "col-runtime", r.Runtime)
			cell(&b, "", r.Datetime)
			cell(&b, "", r.Label)
			b.WriteString("</tr>")
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// ShowtimesBody wraps the rows in the tbody the SSE patch morphs by id.
// Patching the whole element (rather than inner HTML) keeps the zero-match
// case well-formed: the patch is then an empty tbody, not an empty string.
func ShowtimesBody(rows []showtimes.Row) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<tbody id="showtimes-body">`); err != nil {
			return err
		}
		if err := ShowtimeRows(rows).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</tbody>`)
		return err
	})
}

func cell(b *strings.Builder, class, text string) {
	if class == "" {
		b.WriteString("<td>")
	} else {
		b.WriteString(`<td class="` + class + `">`)
	}
	b.WriteString(templ.EscapeString(text))
	b.WriteString("</td>")
}
