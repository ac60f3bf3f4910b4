package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/james-see/harmony/pkg/theory"
)

// Format represents an output file format
type Format string

const (
	FormatMIDI    Format = "midi"
	FormatText    Format = "text"
	FormatJSON    Format = "json"
	FormatUnknown Format = "unknown"
)

// DetectFormat detects the output format from a file extension
func DetectFormat(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".mid", ".midi":
		return FormatMIDI
	case ".txt":
		return FormatText
	case ".json":
		return FormatJSON
	default:
		return FormatUnknown
	}
}

// Render encodes the scale in the given format
func Render(scale theory.DiatonicScale, format Format, opts MIDIOptions) ([]byte, error) {
	switch format {
	case FormatMIDI:
		return NewMIDIWriter(opts).GenerateMIDI(scale)
	case FormatText:
		return Text(scale), nil
	case FormatJSON:
		data, err := json.MarshalIndent(scale, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode JSON: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// Text returns one line per scale degree with its MIDI key when in range
func Text(scale theory.DiatonicScale) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", scale.Tonic, scale.Mode)
	for i, n := range scale.Notes {
		if key, err := KeyNumber(n); err == nil {
			fmt.Fprintf(&b, "%d\t%s\t%d\n", i+1, n, key)
		} else {
			fmt.Fprintf(&b, "%d\t%s\t-\n", i+1, n)
		}
	}
	return []byte(b.String())
}

// WriteFile writes the scale to path in the format implied by its extension
func WriteFile(path string, scale theory.DiatonicScale, opts MIDIOptions) error {
	format := DetectFormat(path)
	if format == FormatUnknown {
		return fmt.Errorf("cannot determine output format from filename %q", path)
	}

	data, err := Render(scale, format, opts)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
