package icon

import "strings"

// Faction is the team a character icon belongs to.
type Faction int

const (
	// Unknown is any tag that is not one of the known factions. It is
	// recolored as a member of neither the good nor the evil set.
	Unknown Faction = iota
	Townsfolk
	Outsider
	Minion
	Demon
	Traveler
	Fabled
)

var factionNames = map[Faction]string{
	Unknown:   "unknown",
	Townsfolk: "townsfolk",
	Outsider:  "outsider",
	Minion:    "minion",
	Demon:     "demon",
	Traveler:  "traveler",
	Fabled:    "fabled",
}

// ParseFaction maps a team tag to a Faction, ignoring case and surrounding
// spaces, so "Demon" and " demon" both select Demon. Unrecognized tags
// return Unknown and false.
func ParseFaction(s string) (Faction, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for f, name := range factionNames {
		if f != Unknown && name == s {
			return f, true
		}
	}
	return Unknown, false
}

func (f Faction) String() string {
	if name, ok := factionNames[f]; ok {
		return name
	}
	return factionNames[Unknown]
}

// EvilColored reports whether the evil hue transform applies.
func (f Faction) EvilColored() bool {
	switch f {
	case Minion, Demon, Traveler:
		return true
	}
	return false
}

// GoodColored reports whether the good hue transform applies.
func (f Faction) GoodColored() bool {
	switch f {
	case Townsfolk, Outsider, Traveler:
		return true
	}
	return false
}
