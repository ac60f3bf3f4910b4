package theory

import (
	"fmt"
	"slices"
	"strings"
)

// Mode is one of the seven diatonic modes
type Mode int

const (
	Ionian Mode = iota
	Dorian
	Phrygian
	Lydian
	Mixolydian
	Aeolian
	Locrian
)

// ScaleLength is the number of notes in a diatonic scale
const ScaleLength = 7

// canonicalSteps is the whole/half step cycle of the major scale.
// Every mode's pattern is a rotation of it.
var canonicalSteps = [ScaleLength]int{2, 2, 1, 2, 2, 2, 1}

// Modes returns all modes in canonical order
func Modes() []Mode {
	return []Mode{Ionian, Dorian, Phrygian, Lydian, Mixolydian, Aeolian, Locrian}
}

// ParseMode parses a mode name, case-insensitive. "major" and "minor"
// are accepted for Ionian and Aeolian.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ionian", "major":
		return Ionian, nil
	case "dorian":
		return Dorian, nil
	case "phrygian":
		return Phrygian, nil
	case "lydian":
		return Lydian, nil
	case "mixolydian":
		return Mixolydian, nil
	case "aeolian", "minor":
		return Aeolian, nil
	case "locrian":
		return Locrian, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case Ionian:
		return "Ionian"
	case Dorian:
		return "Dorian"
	case Phrygian:
		return "Phrygian"
	case Lydian:
		return "Lydian"
	case Mixolydian:
		return "Mixolydian"
	case Aeolian:
		return "Aeolian"
	case Locrian:
		return "Locrian"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// MarshalText implements encoding.TextMarshaler
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// IntervalPattern returns the six half-step gaps between the seven notes
// of the mode: the canonical cycle rotated left by the mode's position.
func (m Mode) IntervalPattern() []int {
	pattern := make([]int, ScaleLength-1)
	for i := range pattern {
		pattern[i] = canonicalSteps[(int(m)+i)%ScaleLength]
	}
	return pattern
}

// IdentifyMode returns the mode whose interval pattern exactly matches
// the gaps between the given seven notes.
func IdentifyMode(notes []Note) (Mode, error) {
	switch {
	case len(notes) < ScaleLength:
		return 0, fmt.Errorf("%w: got %d notes, too short (want %d)", ErrWrongLength, len(notes), ScaleLength)
	case len(notes) > ScaleLength:
		return 0, fmt.Errorf("%w: got %d notes, too long (want %d)", ErrWrongLength, len(notes), ScaleLength)
	}

	gaps := Intervals(notes)
	for _, m := range Modes() {
		if slices.Equal(gaps, m.IntervalPattern()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %v", ErrUnrecognizedPattern, gaps)
}
