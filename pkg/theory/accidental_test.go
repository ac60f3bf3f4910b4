package theory

import (
	"errors"
	"testing"
)

func TestParseAccidental(t *testing.T) {
	tests := []struct {
		token    string
		expected Accidental
		offset   int
	}{
		{"bb", DoubleFlat, -2},
		{"b", Flat, -1},
		{"", Natural, 0},
		{"#", Sharp, 1},
		{"##", DoubleSharp, 2},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseAccidental(tt.token)
			if err != nil {
				t.Fatalf("ParseAccidental(%q) error = %v", tt.token, err)
			}
			if got != tt.expected {
				t.Errorf("ParseAccidental(%q) = %v, want %v", tt.token, got, tt.expected)
			}
			if got.Offset() != tt.offset {
				t.Errorf("Offset() = %d, want %d", got.Offset(), tt.offset)
			}
			if got.String() != tt.token {
				t.Errorf("String() = %q, want %q", got.String(), tt.token)
			}
		})
	}
}

func TestParseAccidentalInvalid(t *testing.T) {
	for _, bad := range []string{"B", "b#", "#b", "###", "bbb", "x", "This should fail"} {
		if _, err := ParseAccidental(bad); !errors.Is(err, ErrInvalidAccidental) {
			t.Errorf("ParseAccidental(%q) error = %v, want ErrInvalidAccidental", bad, err)
		}
	}
}
