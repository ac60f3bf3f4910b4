package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/james-see/harmony/pkg/export"
	"github.com/james-see/harmony/pkg/theory"
)

// execute runs the root command with fresh flag state and returns its output
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configFile, verbose, modeName, outputFile, descend, serverPort = "", false, "", "", false, 0

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
		absent   []string
		err      error
	}{
		{
			name:     "scale default mode",
			args:     []string{"scale", "G3"},
			contains: []string{"G3 Ionian", "C4", "F#4", "W W H W W W"},
		},
		{
			name:     "scale with double flat",
			args:     []string{"scale", "Fb3", "--mode", "ionian"},
			contains: []string{"Bbb3", "Cb4", "Eb4"},
		},
		{
			name:     "scale minor alias",
			args:     []string{"scale", "C3", "-m", "minor"},
			contains: []string{"C3 Aeolian", "Ab3", "Bb3"},
		},
		{
			name: "scale needs triple sharp",
			args: []string{"scale", "E##4", "-m", "lydian"},
			err:  theory.ErrAccidentalOutOfRange,
		},
		{
			name: "scale bad tonic",
			args: []string{"scale", "H3"},
			err:  theory.ErrInvalidNoteName,
		},
		{
			name: "scale bad mode",
			args: []string{"scale", "C4", "-m", "blues"},
			err:  theory.ErrUnknownMode,
		},
		{
			name:     "identify aeolian",
			args:     []string{"identify", "C3", "D3", "Eb3", "F3", "G3", "Ab3", "Bb3"},
			contains: []string{"Aeolian", "W H W W H W"},
		},
		{
			name: "identify six notes",
			args: []string{"identify", "C3", "D3", "E3", "F3", "G3", "A3"},
			err:  theory.ErrWrongLength,
		},
		{
			name: "identify chromatic",
			args: []string{"identify", "C3", "C#3", "D3", "D#3", "E3", "F3", "F#3"},
			err:  theory.ErrUnrecognizedPattern,
		},
		{
			name: "identify bad octave",
			args: []string{"identify", "C3", "D3", "E3", "F3", "G#", "A3", "B3"},
			err:  theory.ErrInvalidOctave,
		},
		{
			name:     "distance",
			args:     []string{"distance", "B3", "C##5"},
			contains: []string{"B3 → C##5", "+15"},
		},
		{
			name:     "distance descending",
			args:     []string{"distance", "C4", "B3"},
			contains: []string{"-1"},
		},
		{
			name: "distance bad note",
			args: []string{"distance", "C4", "C##"},
			err:  theory.ErrInvalidOctave,
		},
		{
			name:     "parse",
			args:     []string{"parse", "F#5"},
			contains: []string{"F", "#", "(+1)", "5", "78"},
		},
		{
			name:     "parse outside MIDI range",
			args:     []string{"parse", "C4611686018427387908"},
			contains: []string{"4611686018427387908"},
			absent:   []string{"MIDI key"},
		},
		{
			name:     "modes",
			args:     []string{"modes"},
			contains: []string{"Ionian", "Locrian", "H W W H W W"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("%v error = %v, want %v", tt.args, err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("%v error = %v", tt.args, err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("%v output missing %q:\n%s", tt.args, want, out)
				}
			}
			for _, unwanted := range tt.absent {
				if strings.Contains(out, unwanted) {
					t.Errorf("%v output contains %q:\n%s", tt.args, unwanted, out)
				}
			}
		})
	}
}

func TestScaleOutputFile(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"g-major.mid", "g-major.json", "g-major.txt"} {
		path := filepath.Join(dir, name)
		out, err := execute(t, "scale", "G3", "-o", path, "--descend")
		if err != nil {
			t.Fatalf("scale -o %s error = %v", name, err)
		}
		if !strings.Contains(out, "Wrote "+path) {
			t.Errorf("output missing write confirmation:\n%s", out)
		}
		if info, err := os.Stat(path); err != nil || info.Size() == 0 {
			t.Errorf("%s not written: %v", name, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "g-major.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "7\tF#4\t66") {
		t.Errorf("text export = %q", data)
	}

	if _, err := execute(t, "scale", "G3", "-o", filepath.Join(dir, "g-major.seq")); err == nil {
		t.Error("scale -o .seq expected error")
	}

	if _, err := execute(t, "scale", "E9", "-o", filepath.Join(dir, "high.mid")); !errors.Is(err, export.ErrKeyOutOfRange) {
		t.Errorf("scale E9 -o .mid error = %v, want ErrKeyOutOfRange", err)
	}
}
