package web

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"thirdcoast.systems/marquee/cmd/web/handlers/api/showtimes_api"
	"thirdcoast.systems/marquee/cmd/web/handlers/content"
	staticpkg "thirdcoast.systems/marquee/cmd/web/internal/web/utils/static"
	"thirdcoast.systems/marquee/internal/showtimes"
)

type Webserver struct {
	*echo.Echo
	board       *showtimes.Board
	staticCache *staticpkg.StaticCache
}

// NewWebserver wires the board into an echo server. The board is read-only
// after construction; handlers share it by reference.
func NewWebserver(board *showtimes.Board) (*Webserver, error) {
	e := echo.New()

	// Initialize static cache
	staticCache, err := staticpkg.NewStaticCache()
	if err != nil {
		return nil, err
	}

	webserver := &Webserver{
		Echo:        e,
		board:       board,
		staticCache: staticCache,
	}

	webserver.registerRoutes()
	webserver.setupMiddleware()

	return webserver, nil
}

func (s *Webserver) setupMiddleware() {
	s.HideBanner = true
	s.HidePort = true
	s.Use(middleware.BodyLimit("64K"))
	s.Use(middleware.Recover())
	s.Use(middleware.RequestID())
	s.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))
	s.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/healthz"
		},
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  false,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"remote_ip", v.RemoteIP,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				fields = append(fields, "error", v.Error)
			}
			slog.Info("request", fields...)
			return nil
		},
	}))
}

func (s *Webserver) registerRoutes() {
	// Content routes
	s.GET("/", content.HandleHomePage(s.board))

	// Filter re-render endpoint (SSE patch)
	s.POST("/api/showtimes/index", showtimes_api.HandleIndex(s.board))

	// Health check
	s.GET("/healthz", func(c echo.Context) error {
		return c.String(200, "ok")
	})

	// Static file serving
	s.GET("/static/*", s.staticCache.ServeStaticFile("/static/"))
}
