// Package theory models pitch notation and derives diatonic scales from a tonic and a mode
package theory

import "errors"

// Parsing and identification errors. Returned errors wrap one of these,
// so callers should match with errors.Is.
var (
	ErrInvalidNoteName     = errors.New("invalid note name")
	ErrInvalidAccidental   = errors.New("invalid accidental")
	ErrInvalidOctave       = errors.New("invalid octave")
	ErrWrongLength         = errors.New("wrong note sequence length")
	ErrUnrecognizedPattern = errors.New("unrecognized interval pattern")
	ErrUnknownMode         = errors.New("unknown mode")
	ErrDegreeOutOfRange    = errors.New("scale degree out of range")

	// ErrAccidentalOutOfRange means a scale degree would need more than a
	// double accidental. NewDiatonicScale panics with it.
	ErrAccidentalOutOfRange = errors.New("accidental out of range")
)
