package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thomaslorincz/ChordDiagram/pkg/chord"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Config
	}{
		{
			name: "empty",
			text: "",
			want: DefaultConfig(),
		},
		{
			name: "all keys",
			text: "style = \"node\"\nshow_labels = false\nsamples = 40\nlast_file = \"/tmp/a b.json\"\n",
			want: Config{Style: "node", ShowLabels: false, Samples: 40, LastFile: "/tmp/a b.json"},
		},
		{
			name: "comments and unquoted",
			text: "# settings\n\nstyle=arc\n  samples = 12  \n",
			want: Config{Style: "arc", ShowLabels: true, Samples: 12},
		},
		{
			name: "malformed values keep defaults",
			text: "style = \"spiral\"\nshow_labels = maybe\nsamples = -3\nnonsense\nunknown = 1\n",
			want: DefaultConfig(),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseConfig(tc.text); got != tc.want {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestFormatConfigRoundTrip(t *testing.T) {
	cfg := Config{Style: "node", ShowLabels: false, Samples: 25, LastFile: `C:\diagrams\"x".json`}
	text := formatConfig(cfg)
	if !strings.HasPrefix(text, "#") {
		t.Errorf("expected a comment header, got %q", text)
	}
	if got := parseConfig(text); got != cfg {
		t.Errorf("round trip: got %+v, want %+v", got, cfg)
	}
}

func TestSaveLoadConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got := LoadConfig(); got != DefaultConfig() {
		t.Errorf("missing file should load defaults, got %+v", got)
	}

	cfg := DefaultConfig()
	cfg.Style = "node"
	cfg.LastFile = "demo.json"
	if err := SaveConfig(cfg); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(home, ".chordedit")); err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if got := LoadConfig(); got != cfg {
		t.Errorf("got %+v, want %+v", got, cfg)
	}
}

func TestConfigItemStyle(t *testing.T) {
	if s := (Config{Style: "node"}).itemStyle(); s != chord.StyleNode {
		t.Errorf("node: got %v", s)
	}
	if s := (Config{}).itemStyle(); s != chord.StyleArc {
		t.Errorf("unset: got %v", s)
	}
}
