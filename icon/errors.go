package icon

import "errors"

var (
	// ErrDecode is returned for empty or malformed image buffers.
	ErrDecode = errors.New("invalid image data")
	// ErrDegenerateContent is returned when no pixel is bright enough to
	// be part of the icon.
	ErrDegenerateContent = errors.New("image has no content above the opacity threshold")
	// ErrUnsupportedFaction is returned in strict mode for unknown team tags.
	ErrUnsupportedFaction = errors.New("unsupported faction")
)
