package icon

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRestoreShadows(t *testing.T) {
	original := image.NewNRGBA(image.Rect(0, 0, 4, 1))
	original.SetNRGBA(0, 0, color.NRGBA{})
	original.SetNRGBA(1, 0, color.NRGBA{R: 5, G: 5, B: 5, A: 0xff})
	original.SetNRGBA(2, 0, red)
	original.SetNRGBA(3, 0, color.NRGBA{R: 10, G: 10, B: 10})

	candidate := image.NewNRGBA(original.Rect)
	fill(candidate, candidate.Rect, color.NRGBA{R: 1, G: 2, B: 3, A: 77})

	got := RestoreShadows(original, candidate)
	assert.Equal(t, color.NRGBA{}, got.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 5, G: 5, B: 5, A: 0xff}, got.NRGBAAt(1, 0))
	assert.Equal(t, color.NRGBA{R: 1, G: 2, B: 3, A: 77}, got.NRGBAAt(2, 0))
	assert.Equal(t, color.NRGBA{R: 10, G: 10, B: 10}, got.NRGBAAt(3, 0))
	assert.Equal(t, color.NRGBA{R: 1, G: 2, B: 3, A: 77}, candidate.NRGBAAt(0, 0), "candidate must not be modified")
}

func TestRestoreShadowsPreservesShadowMask(t *testing.T) {
	original := normalizedFixture(t)
	candidate := Matte(RecolorEvil(original))

	got := RestoreShadows(original, candidate)
	var shadows int
	for y := 0; y < CanvasSize; y++ {
		for x := 0; x < CanvasSize; x++ {
			o := original.NRGBAAt(x, y)
			if Luma(o.R, o.G, o.B) > OpacityThreshold {
				assert.Equal(t, candidate.NRGBAAt(x, y), got.NRGBAAt(x, y))
				continue
			}
			shadows++
			if o != got.NRGBAAt(x, y) {
				t.Fatalf("shadow pixel (%d,%d) = %v, want %v", x, y, got.NRGBAAt(x, y), o)
			}
		}
	}
	assert.Positive(t, shadows)
}

func TestRestoreShadowsSizeMismatch(t *testing.T) {
	original := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	candidate := image.NewNRGBA(image.Rect(0, 0, 4, 3))

	assert.Panics(t, func() { RestoreShadows(original, candidate) })

	offset := image.NewNRGBA(image.Rect(10, 10, 14, 14))
	assert.NotPanics(t, func() { RestoreShadows(original, offset) })
}
