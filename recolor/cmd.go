package recolor

import (
	"context"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"iconsmith/icon"
	"iconsmith/parallel"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Scan        string `help:"Source folder to scan" default:"."`
	Dest        string `help:"Destination folder for recolored icons. Relative to scan dir if not absolute." default:"recolored"`
	Team        string `help:"Faction of the scanned icons (townsfolk, outsider, minion, demon, traveler, fabled)" required:"" env:"ICONSMITH_TEAM"`
	Strict      bool   `help:"Fail on unknown factions instead of keeping the original colors" env:"ICONSMITH_STRICT"`
	Compression string `help:"PNG compression of the written icons" enum:"default,none,speed,best" default:"default"`

	level png.CompressionLevel `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	scanDir, err := filepath.Abs(c.Scan)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", c.Scan, err)
	}
	c.Scan = scanDir

	if !filepath.IsAbs(c.Dest) {
		c.Dest = filepath.Join(scanDir, c.Dest)
	}

	if _, ok := icon.ParseFaction(c.Team); !ok {
		if c.Strict {
			return fmt.Errorf("invalid team %q: %w", c.Team, icon.ErrUnsupportedFaction)
		}
		slog.Warn("unknown team, icon colors will be kept", "team", c.Team)
	}

	if c.level, err = icon.ParseCompression(c.Compression); err != nil {
		return err
	}

	return nil
}

func (c *CLICmd) Run(pool *parallel.Pool) error {
	if err := os.MkdirAll(c.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	files, err := os.ReadDir(c.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", c.Scan, err)
	}

	enc := icon.NewEncoder(c.level)
	opts := icon.Options{Strict: c.Strict}
	slog.Info("recoloring", "dir", c.Scan, "team", c.Team, "workers", pool.Workers())

	var processedCount, errCount atomic.Uint64
	for _, file := range files {
		if !file.Type().IsRegular() {
			continue
		}

		pool.Do(func() {
			filePath := filepath.Join(c.Scan, file.Name())
			logger := slog.Default().With("file", filePath)

			if err := c.recolor(logger, enc, opts, filePath); err != nil {
				errCount.Add(1)
				logger.Error("could not recolor icon", "error", err)
				return
			}
			processedCount.Add(1)
		})
	}

	pool.Wait()

	processed := processedCount.Load()
	errors := errCount.Load()
	slog.Info("stats", "processed", processed, "errors", errors,
		"total", processed+errors)

	if errors > 0 {
		return fmt.Errorf("error processing %d files", errors)
	}
	return nil
}

func (c *CLICmd) recolor(logger *slog.Logger, enc *icon.Encoder, opts icon.Options, filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("could not read icon: %w", err)
	}

	img, err := icon.Decode(data)
	if err != nil {
		return err
	}

	variants, err := icon.Process(img, c.Team, opts)
	if err != nil {
		return err
	}

	// Encode everything before writing so a failure leaves no partial set.
	encoded, err := enc.EncodeAll(variants)
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	for i, v := range variants {
		destName := fmt.Sprintf("%s-%s.png", base, v.Kind)
		if err := save(encoded[i], c.Dest, destName); err != nil {
			return err
		}
		if logger.Enabled(context.Background(), slog.LevelDebug) {
			logger.Debug("wrote variant", "kind", v.Kind, "dest", destName, "hue", meanHue(v.Image))
		}
	}
	return nil
}
