package components

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/a-h/templ"
	"github.com/dustin/go-humanize"
)

// ResultCount is the footer line under the table. It carries its own id so
// the SSE patch can morph it in place.
func ResultCount(shown, total int, loadedAt time.Time) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<p id="result-count" class="board-footer">Showing %s of %s showtimes &middot; data loaded %s</p>`,
			humanize.Comma(int64(shown)),
			humanize.Comma(int64(total)),
			templ.EscapeString(humanize.Time(loadedAt)),
		)
		return err
	})
}
