package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"thirdcoast.systems/marquee/cmd/web/internal/web"
	"thirdcoast.systems/marquee/internal/config"
	"thirdcoast.systems/marquee/internal/locale"
	"thirdcoast.systems/marquee/internal/showtimes"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("Starting web service")

	conf, err := config.LoadConfig(ctx)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	trans, err := locale.Match(conf.Locale)
	if err != nil {
		slog.Error("failed to resolve locale", "locale", conf.Locale, "error", err)
		os.Exit(1)
	}

	// The listings load is one-shot: failure here is fatal and the server
	// never starts. No retries, no partially populated board.
	timeout := time.Duration(conf.FetchTimeoutSeconds) * time.Second
	listings, err := showtimes.Load(ctx, conf.ShowtimesSource, timeout)
	if err != nil {
		slog.Error("failed to load showtimes", "source", conf.ShowtimesSource, "error", err)
		os.Exit(1)
	}

	board := &showtimes.Board{
		Rows:     showtimes.Flatten(listings, trans),
		LoadedAt: time.Now(),
	}
	slog.Info("Listings loaded", "theaters", len(listings), "rows", len(board.Rows))

	e, err := web.NewWebserver(board)
	if err != nil {
		slog.Error("failed to create webserver", "error", err)
		os.Exit(1)
	}

	addr := ":" + strconv.Itoa(conf.WebServerPort)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)
	}()

	slog.Info("Listening", "addr", addr)
	if err := e.Start(addr); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		// Echo returns an error on Shutdown; treat it as normal if context is done.
		if ctx.Err() != nil {
			return
		}
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
