package icon

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"sync"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

// Decode reads a still raster image, applying any EXIF orientation.
// Animated formats yield their first frame.
func Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty buffer: %w", ErrDecode)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("zero sized image: %w", ErrDecode)
	}
	return img, nil
}

// CompressionLevels names the PNG compression levels accepted by
// ParseCompression.
var CompressionLevels = map[string]png.CompressionLevel{
	"default": png.DefaultCompression,
	"none":    png.NoCompression,
	"speed":   png.BestSpeed,
	"best":    png.BestCompression,
}

func ParseCompression(name string) (png.CompressionLevel, error) {
	level, ok := CompressionLevels[name]
	if !ok {
		return 0, fmt.Errorf("unsupported PNG compression %q", name)
	}
	return level, nil
}

// Encoder serializes variants as PNG.
type Encoder struct {
	enc png.Encoder
}

func NewEncoder(level png.CompressionLevel) *Encoder {
	return &Encoder{
		enc: png.Encoder{
			CompressionLevel: level,
			BufferPool:       pngBuffers,
		},
	}
}

func (e *Encoder) Encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("could not encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeAll encodes variants in order. It fails as a whole if any variant
// cannot be encoded.
func (e *Encoder) EncodeAll(variants []Variant) ([][]byte, error) {
	out := make([][]byte, 0, len(variants))
	for _, v := range variants {
		b, err := e.Encode(v.Image)
		if err != nil {
			return nil, fmt.Errorf("%s variant: %w", v.Kind, err)
		}
		out = append(out, b)
	}
	return out, nil
}

// encoderBuffers recycles PNG encoder scratch space between encodes.
type encoderBuffers struct {
	sync.Pool
}

func (b *encoderBuffers) Get() *png.EncoderBuffer {
	if buf, ok := b.Pool.Get().(*png.EncoderBuffer); ok {
		return buf
	}
	return new(png.EncoderBuffer)
}

func (b *encoderBuffers) Put(buf *png.EncoderBuffer) {
	b.Pool.Put(buf)
}

var pngBuffers = &encoderBuffers{}
