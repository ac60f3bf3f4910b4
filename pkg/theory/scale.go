package theory

import (
	"fmt"
	"strings"
)

// DiatonicScale is the seven-note scale of a mode built on a tonic
type DiatonicScale struct {
	Tonic Note   `json:"tonic"`
	Mode  Mode   `json:"mode"`
	Notes []Note `json:"notes"`
}

// NewDiatonicScale walks the letters up from tonic and gives each following
// note the accidental that makes its gap from the previous note match the
// mode's interval pattern. The tonic is kept exactly as given.
//
// Natural letter steps against a diatonic pattern never need more than a
// double accidental, but a tonic that already carries one can: "E##" in
// Lydian would need a triple sharp. NewDiatonicScale panics in that case;
// callers taking tonics from user input should check CheckSpelling first.
func NewDiatonicScale(tonic Note, mode Mode) DiatonicScale {
	notes, err := spell(tonic, mode)
	if err != nil {
		panic("theory: " + err.Error())
	}
	return DiatonicScale{Tonic: tonic, Mode: mode, Notes: notes}
}

// CheckSpelling reports whether every degree of mode on tonic can be
// written with at most a double accidental.
func CheckSpelling(tonic Note, mode Mode) error {
	_, err := spell(tonic, mode)
	return err
}

func spell(tonic Note, mode Mode) ([]Note, error) {
	notes := make([]Note, 1, ScaleLength)
	notes[0] = tonic
	for i, want := range mode.IntervalPattern() {
		prev := notes[len(notes)-1]
		next := prev.NextNatural()
		delta := prev.DistHsteps(next) - want
		acc, ok := correction(delta)
		if !ok {
			return nil, fmt.Errorf("%w: degree %d of %s %s is %d half steps off %s",
				ErrAccidentalOutOfRange, i+2, tonic, mode, delta, next)
		}
		notes = append(notes, next.WithAccidental(acc))
	}
	return notes, nil
}

// correction returns the accidental that closes a gap which is delta half
// steps wider than wanted. Flattening the upper note narrows the gap, so a
// positive delta needs a flat.
func correction(delta int) (Accidental, bool) {
	switch delta {
	case -2:
		return DoubleSharp, true
	case -1:
		return Sharp, true
	case 0:
		return Natural, true
	case 1:
		return Flat, true
	case 2:
		return DoubleFlat, true
	}
	return 0, false
}

// Degree returns the note at the 1-based scale degree d
func (s DiatonicScale) Degree(d int) (Note, error) {
	if d < 1 || d > len(s.Notes) {
		return Note{}, fmt.Errorf("%w: %d (want 1-%d)", ErrDegreeOutOfRange, d, len(s.Notes))
	}
	return s.Notes[d-1], nil
}

// Intervals returns the realized half-step gaps between consecutive degrees
func (s DiatonicScale) Intervals() []int {
	return Intervals(s.Notes)
}

// String returns the notes separated by spaces
func (s DiatonicScale) String() string {
	parts := make([]string, len(s.Notes))
	for i, n := range s.Notes {
		parts[i] = n.String()
	}
	return strings.Join(parts, " ")
}
