package icon

import (
	"image"
	"math"
)

// HSV is an 8-bit hue/saturation/value image. Hue runs over the full byte
// range: 256 steps cover the 360 degree color wheel, so adding to a hue
// wraps modulo 256.
type HSV struct {
	// Pix holds the pixels as H, S, V triples. The pixel at (x, y) starts
	// at Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)*3].
	Pix []uint8
	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
	// Rect is the image's bounds.
	Rect image.Rectangle
}

// NewHSV returns a blank HSV image with the given bounds, three bytes per
// pixel.
func NewHSV(r image.Rectangle) *HSV {
	return &HSV{
		Pix:    make([]uint8, r.Dx()*r.Dy()*3),
		Stride: 3 * r.Dx(),
		Rect:   r,
	}
}

// ToHSV converts the color channels of img. Alpha is ignored.
func ToHSV(img *image.NRGBA) *HSV {
	src := clone(img)
	dst := NewHSV(src.Rect)
	for i, j := 0, 0; i < len(src.Pix); i, j = i+4, j+3 {
		dst.Pix[j], dst.Pix[j+1], dst.Pix[j+2] = RGBToHSV(src.Pix[i], src.Pix[i+1], src.Pix[i+2])
	}
	return dst
}

// NRGBA converts h back to an opaque RGB image.
func (h *HSV) NRGBA() *image.NRGBA {
	dst := image.NewNRGBA(h.Rect)
	for i, j := 0, 0; j < len(h.Pix); i, j = i+4, j+3 {
		dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2] = HSVToRGB(h.Pix[j], h.Pix[j+1], h.Pix[j+2])
		dst.Pix[i+3] = opaque
	}
	return dst
}

// RotateHue adds delta to every hue, wrapping at 256.
func (h *HSV) RotateHue(delta uint8) {
	for i := 0; i < len(h.Pix); i += 3 {
		h.Pix[i] += delta
	}
}

// ReplaceHueAbove sets every hue greater than limit to hue.
func (h *HSV) ReplaceHueAbove(limit, hue uint8) {
	for i := 0; i < len(h.Pix); i += 3 {
		if h.Pix[i] > limit {
			h.Pix[i] = hue
		}
	}
}

// RGBToHSV converts an RGB triple to full range 8-bit HSV.
func RGBToHSV(r, g, b uint8) (h, s, v uint8) {
	maxC := max(r, g, b)
	minC := min(r, g, b)
	diff := float64(maxC - minC)

	v = maxC
	if maxC == 0 || diff == 0 {
		return 0, 0, v
	}
	s = uint8(math.Round(255 * diff / float64(maxC)))

	rf, gf, bf := float64(r), float64(g), float64(b)
	var deg float64
	switch maxC {
	case r:
		deg = 60 * (gf - bf) / diff
	case g:
		deg = 120 + 60*(bf-rf)/diff
	default:
		deg = 240 + 60*(rf-gf)/diff
	}
	if deg < 0 {
		deg += 360
	}

	h = uint8(int(math.Round(deg*256/360)) % 256)
	return h, s, v
}

// HSVToRGB converts a full range 8-bit HSV triple to RGB.
func HSVToRGB(h, s, v uint8) (r, g, b uint8) {
	if s == 0 {
		return v, v, v
	}

	hf := float64(h) * 6 / 256
	sector := int(hf)
	f := hf - float64(sector)

	vf := float64(v)
	sf := float64(s) / 255
	p := channel(vf * (1 - sf))
	q := channel(vf * (1 - sf*f))
	t := channel(vf * (1 - sf*(1-f)))

	switch sector {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

func channel(x float64) uint8 {
	return uint8(max(0, min(255, math.Round(x))))
}
