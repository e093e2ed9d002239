package icon

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	black     = color.NRGBA{A: 0xff}
	red       = color.NRGBA{R: 0xff, A: 0xff}
	nearBlack = color.NRGBA{R: 5, G: 5, B: 5, A: 0xff}
)

func fill(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

// iconFixture is a 120x80 opaque black canvas with an 80x60 red figure at
// (20,10), split by a near black vertical stroke.
func iconFixture() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 120, 80))
	fill(img, img.Rect, black)
	fill(img, image.Rect(20, 10, 100, 70), red)
	fill(img, image.Rect(56, 10, 64, 70), nearBlack)
	return img
}

func normalizedFixture(t *testing.T) *image.NRGBA {
	t.Helper()
	img, err := Normalize(iconFixture())
	require.NoError(t, err)
	return img
}

func rgb(img *image.NRGBA, x, y int) [3]uint8 {
	c := img.NRGBAAt(x, y)
	return [3]uint8{c.R, c.G, c.B}
}
