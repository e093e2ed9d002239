package recolor

import (
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"

	"github.com/lucasb-eyer/go-colorful"
)

// save writes data next to its final name and renames it into place once
// fully flushed.
func save(data []byte, destDir, destName string) (err error) {
	outFile, err := os.CreateTemp(destDir, destName+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temporary destination %q: %w", destName, err)
	}
	canRename := false
	defer func() {
		if defErr := outFile.Sync(); defErr != nil && err == nil {
			err = fmt.Errorf("could not flush temporary destination %q: %w", destName, defErr)
		}
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close temporary destination %q: %w", destName, defErr)
		}

		if canRename && err == nil {
			if defErr := os.Rename(outFile.Name(), filepath.Join(destDir, destName)); defErr != nil {
				err = fmt.Errorf("could not rename destination file %q: %w", destName, defErr)
			}
		}
		if err != nil {
			_ = os.Remove(outFile.Name())
		}
	}()

	if _, err = outFile.Write(data); err != nil {
		return fmt.Errorf("could not write destination %q: %w", destName, err)
	}

	canRename = true
	return nil
}

// meanHue is the circular mean hue, in degrees, of the visible chromatic
// pixels of img.
func meanHue(img *image.NRGBA) float64 {
	var sx, sy float64
	for i := 0; i < len(img.Pix); i += 4 {
		p := img.Pix[i : i+4 : i+4]
		if p[3] == 0 {
			continue
		}
		h, s, _ := colorful.Color{
			R: float64(p[0]) / 255,
			G: float64(p[1]) / 255,
			B: float64(p[2]) / 255,
		}.Hsv()
		if s == 0 {
			continue
		}
		sx += math.Cos(h * math.Pi / 180)
		sy += math.Sin(h * math.Pi / 180)
	}
	if sx == 0 && sy == 0 {
		return 0
	}

	deg := math.Atan2(sy, sx) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return math.Round(deg*10) / 10
}
