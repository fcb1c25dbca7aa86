package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ekeskin/globalhook"
)

// Config holds the console knobs. A missing file means defaults.
type Config struct {
	Log LogConfig `yaml:"log"`
	// Tray runs the systray menu, whose loop also pumps the hook thread.
	Tray   bool     `yaml:"tray"`
	Events []string `yaml:"events"`
	// SuppressScanCodes are swallowed system-wide while suppression is on.
	SuppressScanCodes []uint32 `yaml:"suppress_scan_codes"`
	LogMoves          bool     `yaml:"log_moves"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig listens to key downs and mouse moves and swallows scan code 30 (A).
func DefaultConfig() Config {
	return Config{
		Log:               LogConfig{Level: "info", Format: "text"},
		Tray:              true,
		Events:            []string{globalhook.KeyDown.String(), globalhook.MouseMove.String()},
		SuppressScanCodes: []uint32{30},
		LogMoves:          true,
	}
}

// LoadConfig reads a YAML file over the defaults. An empty path or a missing
// file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks log settings and event names.
func (c Config) Validate() error {
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	if _, err := normalizeFormat(c.Log.Format); err != nil {
		return err
	}
	if len(c.Events) == 0 {
		return errors.New("at least one event is required")
	}
	for _, name := range c.Events {
		if _, _, err := parseEvent(name); err != nil {
			return err
		}
	}
	return nil
}

// parseEvent resolves a case-insensitive event name to its mouse or keyboard event.
func parseEvent(name string) (globalhook.MouseEvent, globalhook.KeyEvent, error) {
	trimmed := strings.TrimSpace(name)
	for _, ev := range globalhook.MouseEvents() {
		if strings.EqualFold(ev.String(), trimmed) {
			return ev, -1, nil
		}
	}
	for _, ev := range globalhook.KeyEvents() {
		if strings.EqualFold(ev.String(), trimmed) {
			return -1, ev, nil
		}
	}
	return -1, -1, fmt.Errorf("unknown event %q", name)
}
