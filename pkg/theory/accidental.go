package theory

import "fmt"

// Accidental is a chromatic alteration. Its value is the semitone offset.
type Accidental int

const (
	DoubleFlat  Accidental = -2
	Flat        Accidental = -1
	Natural     Accidental = 0
	Sharp       Accidental = 1
	DoubleSharp Accidental = 2
)

// ParseAccidental parses one of "bb", "b", "", "#", "##"
func ParseAccidental(s string) (Accidental, error) {
	switch s {
	case "bb":
		return DoubleFlat, nil
	case "b":
		return Flat, nil
	case "":
		return Natural, nil
	case "#":
		return Sharp, nil
	case "##":
		return DoubleSharp, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidAccidental, s)
}

// String returns the textual token; Natural is the empty string
func (a Accidental) String() string {
	switch a {
	case DoubleFlat:
		return "bb"
	case Flat:
		return "b"
	case Natural:
		return ""
	case Sharp:
		return "#"
	case DoubleSharp:
		return "##"
	}
	return fmt.Sprintf("Accidental(%d)", int(a))
}

// Offset returns the alteration in half steps
func (a Accidental) Offset() int {
	return int(a)
}
