package icon

import (
	"fmt"
	"image"
)

// Kind labels an entry of the pipeline output.
type Kind int

const (
	KindOriginal Kind = iota
	KindGood
	KindEvil
)

func (k Kind) String() string {
	switch k {
	case KindGood:
		return "good"
	case KindEvil:
		return "evil"
	default:
		return "original"
	}
}

// Variant is one produced icon.
type Variant struct {
	Kind  Kind
	Image *image.NRGBA
}

// Options tune Process.
type Options struct {
	// Strict rejects unknown team tags with ErrUnsupportedFaction instead
	// of treating them as a member of no color set.
	Strict bool
}

// Process turns a decoded icon into its faction variants:
//
//	fabled:   [original]
//	traveler: [original, good split, evil split]
//	others:   [good, evil]
//
// On error no variant is returned.
func Process(src image.Image, team string, opts Options) ([]Variant, error) {
	faction, ok := ParseFaction(team)
	if !ok && opts.Strict {
		return nil, fmt.Errorf("team %q: %w", team, ErrUnsupportedFaction)
	}

	normalized, err := Normalize(src)
	if err != nil {
		return nil, err
	}

	switch faction {
	case Fabled:
		return []Variant{{KindOriginal, normalized}}, nil
	case Traveler:
		good, evil := Recolor(normalized, faction)
		goodSplit, evilSplit := SplitTraveler(normalized, good, evil)
		return []Variant{
			{KindOriginal, normalized},
			{KindGood, goodSplit},
			{KindEvil, evilSplit},
		}, nil
	}

	good, evil := Recolor(normalized, faction)
	return []Variant{
		{KindGood, RestoreShadows(normalized, Matte(good))},
		{KindEvil, RestoreShadows(normalized, Matte(evil))},
	}, nil
}
