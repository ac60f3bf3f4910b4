package theory

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Note is a letter name with an accidental in a signed octave.
// Octave numbering follows scientific pitch notation (C4 is middle C).
type Note struct {
	Name       NoteName
	Accidental Accidental
	Octave     int
}

// NewNote creates a Note
func NewNote(name NoteName, accidental Accidental, octave int) Note {
	return Note{Name: name, Accidental: accidental, Octave: octave}
}

// ParseNote parses text of the form <letter><accidental><octave>, e.g. "F#3",
// "Bbb-1" or "c4". Checks run strictly left to right: the letter, then the
// accidental run up to the first digit or minus sign, then the octave.
func ParseNote(s string) (Note, error) {
	if s == "" {
		return Note{}, fmt.Errorf("%w: empty note", ErrInvalidNoteName)
	}

	r, size := utf8.DecodeRuneInString(s)
	name, err := ParseNoteName(string(r))
	if err != nil {
		return Note{}, err
	}

	rest := s[size:]
	end := strings.IndexFunc(rest, func(r rune) bool {
		return (r >= '0' && r <= '9') || r == '-'
	})
	if end < 0 {
		end = len(rest)
	}

	accidental, err := ParseAccidental(rest[:end])
	if err != nil {
		return Note{}, err
	}

	octave, err := strconv.Atoi(rest[end:])
	if err != nil {
		return Note{}, fmt.Errorf("%w: %q", ErrInvalidOctave, rest[end:])
	}

	return Note{Name: name, Accidental: accidental, Octave: octave}, nil
}

// MustParseNote is like ParseNote but panics on error
func MustParseNote(s string) Note {
	n, err := ParseNote(s)
	if err != nil {
		panic(err)
	}
	return n
}

// String formats the note so that ParseNote(n.String()) == n
func (n Note) String() string {
	return n.Name.String() + n.Accidental.String() + strconv.Itoa(n.Octave)
}

// MarshalText implements encoding.TextMarshaler
func (n Note) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (n *Note) UnmarshalText(text []byte) error {
	parsed, err := ParseNote(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// DistHsteps returns the signed number of half steps from n up to other.
// Every pitch comparison in this package goes through it.
func (n Note) DistHsteps(other Note) int {
	return 12*(other.Octave-n.Octave) +
		n.Name.DistHsteps(other.Name) +
		other.Accidental.Offset() - n.Accidental.Offset()
}

// WithAccidental returns a copy of n with the accidental replaced
func (n Note) WithAccidental(accidental Accidental) Note {
	n.Accidental = accidental
	return n
}

// NextNatural returns the natural note on the following letter,
// moving into the next octave when crossing from B to C.
func (n Note) NextNatural() Note {
	octave := n.Octave
	if n.Name == B {
		octave++
	}
	return Note{Name: n.Name.Next(), Accidental: Natural, Octave: octave}
}

// PrevNatural returns the natural note on the preceding letter,
// moving into the previous octave when crossing from C to B.
func (n Note) PrevNatural() Note {
	octave := n.Octave
	if n.Name == C {
		octave--
	}
	return Note{Name: n.Name.Prev(), Accidental: Natural, Octave: octave}
}
