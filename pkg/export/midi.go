package export

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/james-see/harmony/pkg/theory"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// keyOrigin is MIDI key 0, so C4 is key 60
var keyOrigin = theory.NewNote(theory.C, theory.Natural, -1)

// Octaves that can hold a MIDI key once accidentals are applied.
// Anything outside is rejected before the distance arithmetic can overflow.
const (
	minKeyOctave = -2
	maxKeyOctave = 10
)

// KeyNumber returns the MIDI key number of a note
func KeyNumber(n theory.Note) (uint8, error) {
	if n.Octave < minKeyOctave || n.Octave > maxKeyOctave {
		return 0, fmt.Errorf("%w: %s is outside octaves %d to %d", ErrKeyOutOfRange, n, minKeyOctave, maxKeyOctave)
	}
	key := keyOrigin.DistHsteps(n)
	if key < 0 || key > 127 {
		return 0, fmt.Errorf("%w: %s is key %d", ErrKeyOutOfRange, n, key)
	}
	return uint8(key), nil
}

// KeyNumbers returns the MIDI key numbers of each note
func KeyNumbers(notes []theory.Note) ([]uint8, error) {
	keys := make([]uint8, 0, len(notes))
	for _, n := range notes {
		k, err := KeyNumber(n)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// MIDIWriter renders scales as Standard MIDI Files
type MIDIWriter struct {
	ticksPerQuarter uint16
	opts            MIDIOptions
}

// NewMIDIWriter creates a MIDI writer
func NewMIDIWriter(opts MIDIOptions) *MIDIWriter {
	if opts.Tempo <= 0 {
		opts.Tempo = 120.0
	}
	if opts.Velocity == 0 || opts.Velocity > 127 {
		opts.Velocity = 100
	}
	return &MIDIWriter{
		ticksPerQuarter: 480,
		opts:            opts,
	}
}

// GenerateMIDI creates a single-track MIDI file playing the scale one
// quarter note per degree
func (m *MIDIWriter) GenerateMIDI(scale theory.DiatonicScale) ([]byte, error) {
	if len(scale.Notes) == 0 {
		return nil, errors.New("empty scale")
	}
	if m.opts.Channel > 15 {
		return nil, fmt.Errorf("invalid MIDI channel %d (max 15)", m.opts.Channel)
	}

	keys, err := KeyNumbers(scale.Notes)
	if err != nil {
		return nil, err
	}
	if m.opts.Descend {
		for i := len(keys) - 2; i >= 0; i-- {
			keys = append(keys, keys[i])
		}
	}

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(m.ticksPerQuarter)

	var track smf.Track
	track.Add(0, smf.MetaTrackSequenceName(fmt.Sprintf("%s %s", scale.Tonic, scale.Mode)))
	track.Add(0, smf.MetaTempo(m.opts.Tempo))
	track.Add(0, smf.MetaMeter(4, 4))

	noteLength := uint32(m.ticksPerQuarter)
	for _, key := range keys {
		track.Add(0, midi.NoteOn(m.opts.Channel, key, m.opts.Velocity))
		track.Add(noteLength, midi.NoteOff(m.opts.Channel, key))
	}
	track.Close(0)

	if err := s.Add(track); err != nil {
		return nil, fmt.Errorf("failed to add track: %w", err)
	}

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write MIDI: %w", err)
	}

	return buf.Bytes(), nil
}
