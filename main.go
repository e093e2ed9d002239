package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"iconsmith/parallel"
	"iconsmith/recolor"
	"iconsmith/serve"

	"github.com/alecthomas/kong"
)

var version = "dev"

type CLI struct {
	Config   kong.ConfigFlag  `help:"YAML configuration file"`
	LogLevel string           `help:"Log level" enum:"debug,info,warn,error" default:"info" env:"ICONSMITH_LOG_LEVEL"`
	Workers  int              `help:"Number of icons processed concurrently, 0 for one per CPU" default:"0"`
	Version  kong.VersionFlag `help:"Print version and exit"`

	Recolor recolor.CLICmd `cmd:"" help:"Recolor every icon of a folder for a faction"`
	Serve   serve.CLICmd   `cmd:"" help:"Serve the recoloring HTTP API"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("iconsmith"),
		kong.Description("Faction recoloring of character icons"),
		kong.UsageOnError(),
		kong.Configuration(YAMLLoader, "/etc/iconsmith.yaml", "~/.config/iconsmith.yaml"),
		kong.Vars{"version": version},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	slog.SetDefault(newLogger(cli.LogLevel))

	pool := parallel.Start(cli.Workers)
	defer pool.Wait()

	err := kctx.Run(pool)
	if err != nil {
		slog.Error("command failed", "command", kctx.Command(), "error", err)
	}
	kctx.FatalIfErrorf(err)
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}
