package icon

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// CanvasSize is the width and height of every normalized icon.
const CanvasSize = 360

// Normalize crops src to its bright content, pads it towards a square and
// scales it to a CanvasSize x CanvasSize canvas.
//
// The alpha channel of src is ignored: opacity is rebuilt from the color
// luminance before cropping. When the side difference is odd the padding
// stays one pixel short of square, the resize absorbs the difference.
// The returned image always has a strictly binary alpha channel.
func Normalize(src image.Image) (*image.NRGBA, error) {
	if src == nil {
		return nil, fmt.Errorf("normalize: %w", ErrDecode)
	}

	img := imaging.Clone(src)
	content, ok := applyOpacityMask(img)
	if !ok {
		return nil, fmt.Errorf("normalize %dx%d image: %w", img.Rect.Dx(), img.Rect.Dy(), ErrDegenerateContent)
	}

	img = pad(imaging.Crop(img, content))
	img = resize(img, CanvasSize)
	binarizeAlpha(img)

	return img, nil
}

// applyOpacityMask overwrites the alpha channel of img with the luminance
// mask and returns the bounds of the opaque pixels.
func applyOpacityMask(img *image.NRGBA) (image.Rectangle, bool) {
	b := img.Rect
	minX, minY, maxX, maxY := b.Max.X, b.Max.Y, b.Min.X-1, b.Min.Y-1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):]
		for x := b.Min.X; x < b.Max.X; x++ {
			p := row[(x-b.Min.X)*4 : (x-b.Min.X)*4+4 : (x-b.Min.X)*4+4]
			p[3] = opacity(p[0], p[1], p[2])
			if p[3] == transparent {
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	if maxX < minX {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}

// pad centers img on a transparent canvas whose short side is grown by half
// the side difference, floor divided, on each end.
func pad(img *image.NRGBA) *image.NRGBA {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	var dx, dy int
	if w > h {
		dy = (w - h) / 2
	} else {
		dx = (h - w) / 2
	}
	if dx == 0 && dy == 0 {
		return img
	}

	canvas := imaging.New(w+2*dx, h+2*dy, color.NRGBA{})
	return imaging.Paste(canvas, img, image.Pt(dx, dy))
}

// resize area averages the color and alpha planes of img independently, so
// transparent pixels still weigh in on the averaged color.
func resize(img *image.NRGBA, size int) *image.NRGBA {
	mask := image.NewGray(image.Rect(0, 0, img.Rect.Dx(), img.Rect.Dy()))
	src := clone(img)
	for i, j := 3, 0; i < len(src.Pix); i, j = i+4, j+1 {
		mask.Pix[j] = src.Pix[i]
	}

	dst := imaging.Resize(StripAlpha(src), size, size, imaging.Box)
	alpha := imaging.Resize(mask, size, size, imaging.Box)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = alpha.Pix[i-3]
	}
	return dst
}

// binarizeAlpha snaps the partial coverage left by area averaging back to
// fully opaque or fully transparent.
func binarizeAlpha(img *image.NRGBA) {
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] >= 0x80 {
			img.Pix[i] = opaque
		} else {
			img.Pix[i] = transparent
		}
	}
}

// clone returns a copy of img with a compact, origin based pixel buffer.
func clone(img *image.NRGBA) *image.NRGBA {
	if img.Rect.Min != (image.Point{}) || img.Stride != 4*img.Rect.Dx() {
		return imaging.Clone(img)
	}
	dst := image.NewNRGBA(img.Rect)
	copy(dst.Pix, img.Pix)
	return dst
}
