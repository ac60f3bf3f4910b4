package theory

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseNote(t *testing.T) {
	tests := []struct {
		input    string
		expected Note
	}{
		{"F#5", Note{F, Sharp, 5}},
		{"C3", Note{C, Natural, 3}},
		{"c3", Note{C, Natural, 3}},
		{"Gb3", Note{G, Flat, 3}},
		{"E##3", Note{E, DoubleSharp, 3}},
		{"Abb-3", Note{A, DoubleFlat, -3}},
		{"B##-3", Note{B, DoubleSharp, -3}},
		{"D0", Note{D, Natural, 0}},
		{"A10", Note{A, Natural, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseNote(tt.input)
			if err != nil {
				t.Fatalf("ParseNote(%q) error = %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseNote(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseNoteErrors(t *testing.T) {
	tests := []struct {
		input    string
		expected error
	}{
		{"", ErrInvalidNoteName},
		{"H3", ErrInvalidNoteName},
		{"3C", ErrInvalidNoteName},
		{" C3", ErrInvalidNoteName},
		{"C##", ErrInvalidOctave},
		{"C", ErrInvalidOctave},
		{"C-", ErrInvalidOctave},
		{"C3 ", ErrInvalidOctave},
		{"C3-", ErrInvalidOctave},
		{"C3.5", ErrInvalidOctave},
		{"Cb#3", ErrInvalidAccidental},
		{"C###3", ErrInvalidAccidental},
		{"Cx3", ErrInvalidAccidental},
		{"C+3", ErrInvalidAccidental},
		{"C 3", ErrInvalidAccidental},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseNote(tt.input)
			if !errors.Is(err, tt.expected) {
				t.Errorf("ParseNote(%q) error = %v, want %v", tt.input, err, tt.expected)
			}
		})
	}
}

func TestNoteStringRoundTrip(t *testing.T) {
	names := []NoteName{C, D, E, F, G, A, B}
	accidentals := []Accidental{DoubleFlat, Flat, Natural, Sharp, DoubleSharp}

	for _, name := range names {
		for _, acc := range accidentals {
			for octave := -3; octave <= 9; octave++ {
				n := NewNote(name, acc, octave)
				got, err := ParseNote(n.String())
				if err != nil {
					t.Fatalf("ParseNote(%q) error = %v", n.String(), err)
				}
				if got != n {
					t.Errorf("ParseNote(%q) = %+v, want %+v", n.String(), got, n)
				}
			}
		}
	}

	if got := MustParseNote("F#5").String(); got != "F#5" {
		t.Errorf("String() = %q, want %q", got, "F#5")
	}
}

func TestNoteDistHsteps(t *testing.T) {
	tests := []struct {
		from, to string
		expected int
	}{
		{"C4", "C4", 0},
		{"C4", "D4", 2},
		{"C4", "C5", 12},
		{"B3", "C4", 1},
		{"C4", "B3", -1},
		{"E#4", "F4", 0},
		{"Cb4", "B3", 0},
		{"Bbb3", "C##4", 5},
		{"A0", "C8", 87},
		{"C-1", "G9", 127},
	}

	for _, tt := range tests {
		from, to := MustParseNote(tt.from), MustParseNote(tt.to)
		if got := from.DistHsteps(to); got != tt.expected {
			t.Errorf("%s.DistHsteps(%s) = %d, want %d", tt.from, tt.to, got, tt.expected)
		}
		if got := to.DistHsteps(from); got != -tt.expected {
			t.Errorf("%s.DistHsteps(%s) = %d, want %d", tt.to, tt.from, got, -tt.expected)
		}
	}
}

func TestNoteDistHstepsOctave(t *testing.T) {
	for _, name := range []NoteName{C, D, E, F, G, A, B} {
		for _, acc := range []Accidental{DoubleFlat, Flat, Natural, Sharp, DoubleSharp} {
			for octave := -2; octave <= 8; octave++ {
				lower := NewNote(name, acc, octave)
				upper := NewNote(name, acc, octave+1)
				if got := lower.DistHsteps(upper); got != 12 {
					t.Errorf("%s.DistHsteps(%s) = %d, want 12", lower, upper, got)
				}
			}
		}
	}
}

func TestNoteWithAccidental(t *testing.T) {
	n := MustParseNote("G3")
	got := n.WithAccidental(Flat)
	if got != MustParseNote("Gb3") {
		t.Errorf("WithAccidental(Flat) = %s, want Gb3", got)
	}
	if n != MustParseNote("G3") {
		t.Errorf("WithAccidental modified the receiver: %s", n)
	}
}

func TestNoteNextPrevNatural(t *testing.T) {
	tests := []struct {
		note, next, prev string
	}{
		{"B3", "C4", "A3"},
		{"C4", "D4", "B3"},
		{"F#3", "G3", "E3"},
		{"Cbb0", "D0", "B-1"},
		{"B##-1", "C0", "A-1"},
		{"E3", "F3", "D3"},
	}

	for _, tt := range tests {
		n := MustParseNote(tt.note)
		if got := n.NextNatural(); got != MustParseNote(tt.next) {
			t.Errorf("%s.NextNatural() = %s, want %s", tt.note, got, tt.next)
		}
		if got := n.PrevNatural(); got != MustParseNote(tt.prev) {
			t.Errorf("%s.PrevNatural() = %s, want %s", tt.note, got, tt.prev)
		}
	}
}

func TestNoteJSON(t *testing.T) {
	data, err := json.Marshal([]Note{MustParseNote("F#5"), MustParseNote("Bbb-1")})
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(data) != `["F#5","Bbb-1"]` {
		t.Errorf("json.Marshal() = %s, want %s", data, `["F#5","Bbb-1"]`)
	}

	var notes []Note
	if err := json.Unmarshal(data, &notes); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if notes[0] != MustParseNote("F#5") || notes[1] != MustParseNote("Bbb-1") {
		t.Errorf("json.Unmarshal() = %v", notes)
	}

	if err := json.Unmarshal([]byte(`["H3"]`), &notes); !errors.Is(err, ErrInvalidNoteName) {
		t.Errorf("json.Unmarshal(H3) error = %v, want ErrInvalidNoteName", err)
	}
}
