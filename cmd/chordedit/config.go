package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/thomaslorincz/ChordDiagram/pkg/chord"
)

// Config holds persistent editor settings
type Config struct {
	Style      string // "arc" or "node"
	ShowLabels bool
	Samples    int    // link curve segments
	LastFile   string // last opened or saved diagram
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Style:      chord.StyleArc.String(),
		ShowLabels: true,
		Samples:    100,
	}
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".chordedit"
	}
	return filepath.Join(home, ".chordedit")
}

// LoadConfig loads configuration from the dotfile, falling back to the
// defaults for anything missing or malformed.
func LoadConfig() Config {
	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		return DefaultConfig()
	}
	return parseConfig(string(data))
}

func parseConfig(text string) Config {
	cfg := DefaultConfig()
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		if uq, err := strconv.Unquote(val); err == nil {
			val = uq
		}

		switch key {
		case "style":
			if _, err := chord.ParseItemStyle(val); err == nil && val != "" {
				cfg.Style = val
			}
		case "show_labels":
			if b, err := strconv.ParseBool(val); err == nil {
				cfg.ShowLabels = b
			}
		case "samples":
			if n, err := strconv.Atoi(val); err == nil && n > 0 {
				cfg.Samples = n
			}
		case "last_file":
			cfg.LastFile = val
		}
	}
	return cfg
}

func formatConfig(cfg Config) string {
	return fmt.Sprintf("# chordedit configuration\nstyle = %q\nshow_labels = %t\nsamples = %d\nlast_file = %q\n",
		cfg.Style, cfg.ShowLabels, cfg.Samples, cfg.LastFile)
}

// SaveConfig saves configuration to the dotfile
func SaveConfig(cfg Config) error {
	return os.WriteFile(ConfigPath(), []byte(formatConfig(cfg)), 0644)
}

// itemStyle returns the configured style, arc if unset.
func (c Config) itemStyle() chord.ItemStyle {
	s, err := chord.ParseItemStyle(c.Style)
	if err != nil {
		return chord.StyleArc
	}
	return s
}
