package icon

import "image"

// Hue contract of the two faction transforms, in full range 8-bit hue steps.
const (
	EvilHueShift = 100
	GoodHueShift = 75

	// Good hues landing past GoodHueLimit are pink and get forced to red.
	GoodHueLimit       = 150
	GoodHueReplacement = 0
)

// RecolorEvil rotates the hue of a normalized icon into the evil palette.
// The result is opaque RGB.
func RecolorEvil(normalized *image.NRGBA) *image.NRGBA {
	hsv := ToHSV(normalized)
	hsv.RotateHue(EvilHueShift)
	return hsv.NRGBA()
}

// RecolorGood rotates the hue of a normalized icon into the good palette.
// The result is opaque RGB.
func RecolorGood(normalized *image.NRGBA) *image.NRGBA {
	hsv := ToHSV(normalized)
	hsv.RotateHue(GoodHueShift)
	hsv.ReplaceHueAbove(GoodHueLimit, GoodHueReplacement)
	return hsv.NRGBA()
}

// Recolor builds the good and evil variants of a normalized icon for the
// given faction. Both start from normalized; a faction outside a variant's
// color set gets the normalized colors with alpha dropped.
func Recolor(normalized *image.NRGBA, f Faction) (good, evil *image.NRGBA) {
	if f.GoodColored() {
		good = RecolorGood(normalized)
	} else {
		good = StripAlpha(normalized)
	}
	if f.EvilColored() {
		evil = RecolorEvil(normalized)
	} else {
		evil = StripAlpha(normalized)
	}
	return good, evil
}
