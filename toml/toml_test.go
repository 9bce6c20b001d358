package toml

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

type level int

func (l *level) UnmarshalText(b []byte) error {
	switch string(b) {
	case "low":
		*l = 1
	case "high":
		*l = 2
	default:
		return fmt.Errorf("unknown level %q", b)
	}
	return nil
}

// TestUnmarshalConfig verifies the full pipeline from document to tagged struct
func TestUnmarshalConfig(t *testing.T) {
	input := []byte(`
# Console caster settings
title = "Caster # not a comment"

[display]
width = 1_280
height = 720
borderless = true # trailing comment

[loop]
fps = 60
scale = 1.5
exponent = 2e-1

[keys]
fire = ["space", 'mouse1']
level = "high"
empty = []

[audio.mixer]
volume = -1
`)

	type Config struct {
		Title   string `toml:"title"`
		Display struct {
			Width      int  `toml:"width"`
			Height     int  `toml:"height"`
			Borderless bool `toml:"borderless"`
		} `toml:"display"`
		Loop struct {
			FPS      int     `toml:"fps"`
			Scale    float64 `toml:"scale"`
			Exponent float64 `toml:"exponent"`
		} `toml:"loop"`
		Keys struct {
			Fire  []string `toml:"fire"`
			Level level    `toml:"level"`
			Empty []string `toml:"empty"`
		} `toml:"keys"`
		Audio map[string]map[string]float64 `toml:"audio"`
		Kept  string                        `toml:"kept"`
	}

	cfg := Config{Kept: "default"}
	if err := Unmarshal(input, &cfg); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if cfg.Title != "Caster # not a comment" {
		t.Errorf("Title = %q", cfg.Title)
	}
	if cfg.Display.Width != 1280 || cfg.Display.Height != 720 || !cfg.Display.Borderless {
		t.Errorf("Display = %+v", cfg.Display)
	}
	if cfg.Loop.FPS != 60 || cfg.Loop.Scale != 1.5 || cfg.Loop.Exponent != 0.2 {
		t.Errorf("Loop = %+v", cfg.Loop)
	}
	if len(cfg.Keys.Fire) != 2 || cfg.Keys.Fire[0] != "space" || cfg.Keys.Fire[1] != "mouse1" {
		t.Errorf("Keys.Fire = %v", cfg.Keys.Fire)
	}
	if cfg.Keys.Level != 2 {
		t.Errorf("Keys.Level = %d, want 2 via UnmarshalText", cfg.Keys.Level)
	}
	if cfg.Keys.Empty == nil || len(cfg.Keys.Empty) != 0 {
		t.Errorf("Keys.Empty = %#v, want empty non-nil slice", cfg.Keys.Empty)
	}
	if v := cfg.Audio["mixer"]["volume"]; v != -1 {
		t.Errorf("Audio.mixer.volume = %v, want -1 (int promoted to float)", v)
	}
	if cfg.Kept != "default" {
		t.Errorf("Absent field overwritten: %q", cfg.Kept)
	}
}

func TestParseDottedKeysAndQuotedKeys(t *testing.T) {
	doc, err := Parse([]byte(`
a.b = 1
"quoted key" = 'literal \n stays'
[x.y]
z = "esc\tape"
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	a := doc["a"].(map[string]any)
	if a["b"] != int64(1) {
		t.Errorf("a.b = %v", a["b"])
	}
	if doc["quoted key"] != `literal \n stays` {
		t.Errorf("quoted key = %q", doc["quoted key"])
	}
	y := doc["x"].(map[string]any)["y"].(map[string]any)
	if y["z"] != "esc\tape" {
		t.Errorf("x.y.z = %q", y["z"])
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{"missing equals", "key value", 1},
		{"missing value", "\nkey =", 2},
		{"unterminated string", `key = "abc`, 1},
		{"bad header", "[table", 1},
		{"array of tables", "[[servers]]", 1},
		{"duplicate", "a = 1\na = 2", 2},
		{"key redefined as table", "a = 1\n[a]", 2},
		{"invalid bare key", "a b = 1", 1},
		{"unknown literal", "a = yes", 1},
		{"nested array", "a = [[1]]", 1},
	}

	for _, tt := range tests {
		_, err := Parse([]byte(tt.input))
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("%s: got %v, want ParseError", tt.name, err)
			continue
		}
		if pe.Line != tt.line {
			t.Errorf("%s: line = %d, want %d", tt.name, pe.Line, tt.line)
		}
		if !strings.HasPrefix(pe.Error(), "toml: line ") {
			t.Errorf("%s: message %q", tt.name, pe.Error())
		}
	}
}

func TestDecodeTypeMismatch(t *testing.T) {
	var cfg struct {
		FPS   int     `toml:"fps"`
		Small int8    `toml:"small"`
		Name  string  `toml:"name"`
		Rate  float64 `toml:"rate"`
		Skip  string  `toml:"-"`
	}

	cases := []string{
		`fps = "fast"`,
		`small = 300`,
		`name = 5`,
		`rate = true`,
	}
	for _, c := range cases {
		if err := Unmarshal([]byte(c), &cfg); err == nil {
			t.Errorf("Unmarshal(%q) succeeded, want error", c)
		}
	}

	if err := Unmarshal([]byte(`"-" = "x"`), &cfg); err != nil || cfg.Skip != "" {
		t.Errorf("Skipped field decoded: %q, %v", cfg.Skip, err)
	}
	if err := Unmarshal([]byte(`fps = 1`), cfg); err == nil {
		t.Error("Non-pointer target accepted")
	}
}

func TestTextUnmarshalerError(t *testing.T) {
	var cfg struct {
		Level level `toml:"level"`
	}
	if err := Unmarshal([]byte(`level = "extreme"`), &cfg); err == nil {
		t.Error("Expected UnmarshalText error to propagate")
	}
	if err := Unmarshal([]byte(`level = 3`), &cfg); err == nil {
		t.Error("Expected non-string for TextUnmarshaler to fail")
	}
}
