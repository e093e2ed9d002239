package icon

import "image"

const (
	// OpacityThreshold is the luminance an icon pixel has to exceed to be
	// considered opaque.
	OpacityThreshold = 10

	opaque      = 0xff
	transparent = 0x00
)

// Luma returns the 8-bit Rec. 601 luminance of an RGB triple, using 14-bit
// fixed point weights (0.299, 0.587, 0.114) rounded to nearest.
func Luma(r, g, b uint8) uint8 {
	return uint8((uint32(r)*4899 + uint32(g)*9617 + uint32(b)*1868 + 1<<13) >> 14)
}

func opacity(r, g, b uint8) uint8 {
	if Luma(r, g, b) > OpacityThreshold {
		return opaque
	}
	return transparent
}

// Matte returns a copy of img whose alpha channel is recomputed from the
// color luminance: opaque above OpacityThreshold, transparent otherwise.
// Whatever alpha img carried is discarded.
func Matte(img *image.NRGBA) *image.NRGBA {
	dst := clone(img)
	for i := 0; i < len(dst.Pix); i += 4 {
		p := dst.Pix[i : i+4 : i+4]
		p[3] = opacity(p[0], p[1], p[2])
	}
	return dst
}

// StripAlpha returns a fully opaque copy of img, with the color channels
// left untouched.
func StripAlpha(img *image.NRGBA) *image.NRGBA {
	dst := clone(img)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = opaque
	}
	return dst
}

// Grayscale returns an opaque, desaturated copy of img.
func Grayscale(img *image.NRGBA) *image.NRGBA {
	dst := clone(img)
	for i := 0; i < len(dst.Pix); i += 4 {
		p := dst.Pix[i : i+4 : i+4]
		y := Luma(p[0], p[1], p[2])
		p[0], p[1], p[2], p[3] = y, y, y, opaque
	}
	return dst
}
