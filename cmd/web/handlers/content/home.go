package content

import (
	"github.com/labstack/echo/v4"
	"thirdcoast.systems/marquee/cmd/web/templates"
	"thirdcoast.systems/marquee/internal/showtimes"
)

// HandleHomePage renders the full board with every row. Subsequent filtering
// re-renders only the table body via /api/showtimes/index.
func HandleHomePage(board *showtimes.Board) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
		return templates.Index(board).Render(c.Request().Context(), c.Response())
	}
}
