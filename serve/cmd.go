package serve

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"log/slog"
	"net/http"
	"time"

	"iconsmith/icon"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Listen          string        `help:"Address to listen on" default:":5000" env:"ICONSMITH_LISTEN"`
	FetchTimeout    time.Duration `help:"Timeout for downloading a source icon" default:"10s" env:"ICONSMITH_FETCH_TIMEOUT"`
	MaxImageBytes   int64         `help:"Largest source icon accepted, in bytes" default:"16777216" env:"ICONSMITH_MAX_IMAGE_BYTES"`
	Strict          bool          `help:"Reject unknown teams instead of keeping the original colors" env:"ICONSMITH_STRICT"`
	Compression     string        `help:"PNG compression of the returned icons" enum:"default,none,speed,best" default:"speed"`
	ShutdownTimeout time.Duration `help:"Grace period for in flight requests on shutdown" default:"5s"`

	level png.CompressionLevel `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	switch {
	case c.FetchTimeout <= 0:
		return fmt.Errorf("invalid fetch timeout: %s", c.FetchTimeout)
	case c.MaxImageBytes <= 0:
		return fmt.Errorf("invalid max image size: %d", c.MaxImageBytes)
	case c.ShutdownTimeout < 0:
		return fmt.Errorf("invalid shutdown timeout: %s", c.ShutdownTimeout)
	}

	var err error
	if c.level, err = icon.ParseCompression(c.Compression); err != nil {
		return err
	}
	return nil
}

// Run serves until ctx is cancelled, then drains in flight requests.
func (c *CLICmd) Run(ctx context.Context) error {
	server := NewServer(
		NewHTTPFetcher(c.FetchTimeout, c.MaxImageBytes),
		icon.NewEncoder(c.level),
		icon.Options{Strict: c.Strict},
	)

	srv := &http.Server{
		Addr:              c.Listen,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", srv.Addr, "strict", c.Strict)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down", "timeout", c.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), c.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown did not complete", "timeout", c.ShutdownTimeout, "error", err)
		if err := srv.Close(); err != nil {
			return fmt.Errorf("could not close server: %w", err)
		}
	}
	if err := <-serverErrors; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
