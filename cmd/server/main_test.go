package main

import (
	"testing"

	"github.com/Southclaws/fault/ftag"
)

func TestLoadConfigPortOverride(t *testing.T) {
	tests := []struct {
		name     string
		port     int
		expected int
		wantErr  bool
	}{
		{"no override", 0, 8080, false},
		{"valid override", 9000, 9000, false},
		{"too large", 70000, 0, true},
		{"negative", -1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loadConfig("", tt.port)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("loadConfig(%d) expected error", tt.port)
				}
				if ftag.Get(err) != ftag.InvalidArgument {
					t.Errorf("ftag.Get() = %v, want %v", ftag.Get(err), ftag.InvalidArgument)
				}
				return
			}
			if err != nil {
				t.Fatalf("loadConfig(%d) error = %v", tt.port, err)
			}
			if cfg.Server.Port != tt.expected {
				t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, tt.expected)
			}
		})
	}
}
