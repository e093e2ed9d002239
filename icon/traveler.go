package icon

import (
	"image"

	"golang.org/x/image/draw"
)

// SplitTraveler builds the two half and half traveler icons from the
// normalized original and its recolored (pre matte) variants.
//
// The good icon is the left half of good next to the desaturated right half
// of original; the evil icon is the desaturated left half of original next
// to the right half of evil. Both are matted and skip shadow restoring.
func SplitTraveler(original, good, evil *image.NRGBA) (goodSplit, evilSplit *image.NRGBA) {
	gray := Grayscale(original)
	return Matte(join(good, gray)), Matte(join(gray, evil))
}

// join copies the left half of left and the right half of right into a new
// image. The halves split at Dx/2, the right half owns the odd column.
func join(left, right *image.NRGBA) *image.NRGBA {
	b := left.Rect.Sub(left.Rect.Min)
	mid := b.Dx() / 2
	dst := image.NewNRGBA(b)

	lr := image.Rect(0, 0, mid, b.Dy())
	draw.Draw(dst, lr, left, left.Rect.Min, draw.Src)

	rr := image.Rect(mid, 0, b.Dx(), b.Dy())
	draw.Draw(dst, rr, right, right.Rect.Min.Add(image.Pt(mid, 0)), draw.Src)

	return dst
}
