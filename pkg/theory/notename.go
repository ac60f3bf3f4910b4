package theory

import (
	"fmt"
	"strings"
)

// NoteName is one of the seven letter names C through B
type NoteName int

const (
	C NoteName = iota
	D
	E
	F
	G
	A
	B
)

const letterCount = 7

// ParseNoteName parses a single letter, case-insensitive
func ParseNoteName(s string) (NoteName, error) {
	switch strings.ToUpper(s) {
	case "C":
		return C, nil
	case "D":
		return D, nil
	case "E":
		return E, nil
	case "F":
		return F, nil
	case "G":
		return G, nil
	case "A":
		return A, nil
	case "B":
		return B, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidNoteName, s)
}

// String returns the upper-case letter
func (n NoteName) String() string {
	switch n {
	case C:
		return "C"
	case D:
		return "D"
	case E:
		return "E"
	case F:
		return "F"
	case G:
		return "G"
	case A:
		return "A"
	case B:
		return "B"
	}
	return fmt.Sprintf("NoteName(%d)", int(n))
}

// semitone is the fixed chromatic position of the letter within an octave
func (n NoteName) semitone() int {
	switch n {
	case C:
		return 0
	case D:
		return 2
	case E:
		return 4
	case F:
		return 5
	case G:
		return 7
	case A:
		return 9
	case B:
		return 11
	}
	panic(fmt.Sprintf("theory: unknown note name %d", int(n)))
}

// Next returns the following letter, wrapping B to C
func (n NoteName) Next() NoteName {
	return (n + 1) % letterCount
}

// Prev returns the preceding letter, wrapping C to B
func (n NoteName) Prev() NoteName {
	return (n + letterCount - 1) % letterCount
}

// Up applies Next steps times
func (n NoteName) Up(steps uint) NoteName {
	for ; steps > 0; steps-- {
		n = n.Next()
	}
	return n
}

// Down applies Prev steps times
func (n NoteName) Down(steps uint) NoteName {
	for ; steps > 0; steps-- {
		n = n.Prev()
	}
	return n
}

// Shift moves up for positive k and down for negative k
func (n NoteName) Shift(k int) NoteName {
	switch {
	case k > 0:
		return n.Up(uint(k))
	case k < 0:
		return n.Down(uint(-k))
	default:
		return n
	}
}

// Dist returns the letter-index difference to other. It is not reduced
// modulo seven, so C.Dist(B) is 6 and B.Dist(C) is -6.
func (n NoteName) Dist(other NoteName) int {
	return int(other) - int(n)
}

// DistHsteps returns the half-step difference between the two letters
// within a single octave, in the range (-12, 12).
func (n NoteName) DistHsteps(other NoteName) int {
	return other.semitone() - n.semitone()
}
