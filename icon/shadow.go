package icon

import (
	"fmt"
	"image"
)

// RestoreShadows returns a copy of candidate where every shadow pixel of
// original is copied back from original, alpha included. A shadow pixel is
// one whose color luminance is at or below OpacityThreshold; the alpha of
// original plays no part in that decision.
//
// original and candidate must have the same size; RestoreShadows panics
// otherwise.
func RestoreShadows(original, candidate *image.NRGBA) *image.NRGBA {
	if osz, csz := original.Rect.Size(), candidate.Rect.Size(); osz != csz {
		panic(fmt.Sprintf("icon: shadow source is %v, candidate is %v", osz, csz))
	}

	src := clone(original)
	dst := clone(candidate)
	for i := 0; i < len(src.Pix); i += 4 {
		s := src.Pix[i : i+4 : i+4]
		if Luma(s[0], s[1], s[2]) > OpacityThreshold {
			continue
		}
		copy(dst.Pix[i:i+4], s)
	}
	return dst
}
