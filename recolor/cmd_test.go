package recolor

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"iconsmith/icon"
	"iconsmith/parallel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeIcon(t *testing.T, path string, c color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 30, 20))
	for y := 5; y < 15; y++ {
		for x := 5; x < 25; x++ {
			img.SetNRGBA(x, y, c)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func newCmd(t *testing.T, scan, team string) *CLICmd {
	t.Helper()
	cmd := &CLICmd{Scan: scan, Dest: "out", Team: team, Compression: "speed"}
	require.NoError(t, cmd.Validate(nil))
	return cmd
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()

	cmd := newCmd(t, dir, "demon")
	assert.Equal(t, filepath.Join(dir, "out"), cmd.Dest)
	assert.Equal(t, png.BestSpeed, cmd.level)

	abs := filepath.Join(t.TempDir(), "elsewhere")
	cmd = &CLICmd{Scan: dir, Dest: abs, Team: "spy", Compression: "default"}
	require.NoError(t, cmd.Validate(nil))
	assert.Equal(t, abs, cmd.Dest)

	cmd = &CLICmd{Scan: dir, Dest: "out", Team: "spy", Strict: true, Compression: "default"}
	assert.ErrorIs(t, cmd.Validate(nil), icon.ErrUnsupportedFaction)

	file := filepath.Join(dir, "file.png")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	cmd = &CLICmd{Scan: file, Dest: "out", Team: "demon", Compression: "default"}
	assert.ErrorContains(t, cmd.Validate(nil), "not a directory")
}

func TestRunTraveler(t *testing.T) {
	dir := t.TempDir()
	writeIcon(t, filepath.Join(dir, "scapegoat.png"), color.NRGBA{R: 200, G: 40, B: 40, A: 0xff})
	writeIcon(t, filepath.Join(dir, "beggar.png"), color.NRGBA{R: 40, G: 200, B: 40, A: 0xff})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	cmd := newCmd(t, dir, "traveler")
	require.NoError(t, cmd.Run(parallel.Start(2)))

	for _, name := range []string{"scapegoat", "beggar"} {
		for _, kind := range []string{"original", "good", "evil"} {
			data, err := os.ReadFile(filepath.Join(dir, "out", name+"-"+kind+".png"))
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, icon.CanvasSize, icon.CanvasSize), img.Bounds())
		}
	}

	leftovers, err := filepath.Glob(filepath.Join(dir, "out", "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestRunReportsFailures(t *testing.T) {
	dir := t.TempDir()
	writeIcon(t, filepath.Join(dir, "imp.png"), color.NRGBA{R: 200, G: 40, B: 40, A: 0xff})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not an icon"), 0o644))
	writeIcon(t, filepath.Join(dir, "void.png"), color.NRGBA{A: 0xff})

	cmd := newCmd(t, dir, "demon")
	err := cmd.Run(parallel.Start(1))
	assert.EqualError(t, err, "error processing 2 files")

	entries, err := os.ReadDir(filepath.Join(dir, "out"))
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"imp-good.png", "imp-evil.png"}, names)
}

func TestMeanHue(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 0xff, A: 0xff})
	img.SetNRGBA(1, 0, color.NRGBA{G: 0xff, A: 0})
	img.SetNRGBA(0, 1, color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff})
	assert.Equal(t, 0.0, meanHue(img))

	img.SetNRGBA(1, 1, color.NRGBA{R: 0xff, B: 0xff, A: 0xff})
	assert.InDelta(t, 330.0, meanHue(img), 0.1)
}
