// Package export renders diatonic scales as MIDI files, text listings and JSON
package export

import "errors"

// ErrKeyOutOfRange is returned for notes outside the MIDI key range 0-127
var ErrKeyOutOfRange = errors.New("note outside MIDI key range")

// MIDIOptions controls how a scale is rendered to MIDI
type MIDIOptions struct {
	Tempo    float64 // Beats per minute
	Velocity uint8   // Note-on velocity (1-127)
	Channel  uint8   // MIDI channel (0-15)
	Descend  bool    // Play back down to the tonic after the top degree
}

// DefaultMIDIOptions returns the options used when none are configured
func DefaultMIDIOptions() MIDIOptions {
	return MIDIOptions{
		Tempo:    120.0,
		Velocity: 100,
		Channel:  0,
	}
}
