// Package config loads harmony settings from an optional YAML file
package config

import (
	"fmt"
	"os"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"github.com/james-see/harmony/pkg/export"
	"github.com/james-see/harmony/pkg/theory"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds all settings
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	MIDI     MIDIConfig     `yaml:"midi"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// ServerConfig configures the API server
type ServerConfig struct {
	Port        int    `yaml:"port"`
	AllowOrigin string `yaml:"allow_origin"`
}

// LogConfig configures logging
type LogConfig struct {
	Level string `yaml:"level"`
}

// MIDIConfig configures MIDI export
type MIDIConfig struct {
	Tempo    float64 `yaml:"tempo"`
	Velocity uint8   `yaml:"velocity"`
	Channel  uint8   `yaml:"channel"`
	Descend  bool    `yaml:"descend"`
}

// DefaultsConfig holds values used when a request leaves them out
type DefaultsConfig struct {
	Mode string `yaml:"mode"`
}

// Default returns the built-in configuration
func Default() Config {
	midi := export.DefaultMIDIOptions()
	return Config{
		Server: ServerConfig{
			Port:        8080,
			AllowOrigin: "*",
		},
		Log: LogConfig{
			Level: "info",
		},
		MIDI: MIDIConfig{
			Tempo:    midi.Tempo,
			Velocity: midi.Velocity,
			Channel:  midi.Channel,
		},
		Defaults: DefaultsConfig{
			Mode: theory.Ionian.String(),
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fault.Wrap(err, fmsg.With(fmt.Sprintf("read config %s", path)))
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fault.Wrap(err,
			fmsg.With(fmt.Sprintf("parse config %s", path)),
			ftag.With(ftag.InvalidArgument))
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fault.Wrap(err, fmsg.With(fmt.Sprintf("config %s", path)))
	}
	return cfg, nil
}

// Validate checks value ranges
func (c Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fault.New(fmt.Sprintf("invalid server port %d", c.Server.Port), ftag.With(ftag.InvalidArgument))
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fault.Wrap(err, ftag.With(ftag.InvalidArgument))
	}
	if c.MIDI.Channel > 15 {
		return fault.New(fmt.Sprintf("invalid MIDI channel %d", c.MIDI.Channel), ftag.With(ftag.InvalidArgument))
	}
	if c.MIDI.Tempo <= 0 {
		return fault.New(fmt.Sprintf("invalid MIDI tempo %g", c.MIDI.Tempo), ftag.With(ftag.InvalidArgument))
	}
	if c.MIDI.Velocity < 1 || c.MIDI.Velocity > 127 {
		return fault.New(fmt.Sprintf("invalid MIDI velocity %d", c.MIDI.Velocity), ftag.With(ftag.InvalidArgument))
	}
	if _, err := theory.ParseMode(c.Defaults.Mode); err != nil {
		return fault.Wrap(err, ftag.With(ftag.InvalidArgument))
	}
	return nil
}

// MIDIOptions converts the MIDI section for the exporter
func (c Config) MIDIOptions() export.MIDIOptions {
	return export.MIDIOptions{
		Tempo:    c.MIDI.Tempo,
		Velocity: c.MIDI.Velocity,
		Channel:  c.MIDI.Channel,
		Descend:  c.MIDI.Descend,
	}
}

// DefaultMode returns the configured default mode
func (c Config) DefaultMode() theory.Mode {
	m, err := theory.ParseMode(c.Defaults.Mode)
	if err != nil {
		return theory.Ionian
	}
	return m
}

// NewLogger creates a logrus logger at the configured level
func (c Config) NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if level, err := logrus.ParseLevel(c.Log.Level); err == nil {
		log.SetLevel(level)
	}
	return log
}
