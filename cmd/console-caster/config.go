package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/console-caster/asset"
	"github.com/lixenwraith/console-caster/audio"
	"github.com/lixenwraith/console-caster/engine"
	"github.com/lixenwraith/console-caster/input"
	"github.com/lixenwraith/console-caster/raycast"
	"github.com/lixenwraith/console-caster/toml"
)

// fallbackCellWidth/Height are used when a cell dimension is not configured and cannot be detected
const (
	fallbackCellWidth  = 8
	fallbackCellHeight = 16
)

type displayConfig struct {
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
	CellWidth  int  `toml:"cell_width"`
	CellHeight int  `toml:"cell_height"`
	Borderless bool `toml:"borderless"`
}

type loopConfig struct {
	FPS     int       `toml:"fps"`
	ExitKey input.Key `toml:"exit_key"`
	HoldMS  int       `toml:"hold_ms"`
}

type assetsConfig struct {
	Dir string `toml:"dir"`
}

// appConfig mirrors the sections of asset.DefaultConfig
type appConfig struct {
	Display displayConfig    `toml:"display"`
	Loop    loopConfig       `toml:"loop"`
	Game    raycast.Settings `toml:"game"`
	Keys    raycast.Bindings `toml:"keys"`
	Assets  assetsConfig     `toml:"assets"`
	Audio   audio.Config     `toml:"audio"`
}

// loadConfig decodes the built-in defaults and then layers the user file over them
// Keys absent from the user file keep their default value
func loadConfig(path string) (appConfig, error) {
	var cfg appConfig
	if err := toml.Unmarshal([]byte(asset.DefaultConfig), &cfg); err != nil {
		return cfg, fmt.Errorf("default config: %w", err)
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// HoldWindow returns the key hold window, zero selects the terminal default
func (c appConfig) HoldWindow() time.Duration {
	return time.Duration(c.Loop.HoldMS) * time.Millisecond
}

// options holds the command line; only flags the user actually set override the config
type options struct {
	fs *flag.FlagSet

	configPath string
	debug      bool

	width      int
	height     int
	cellWidth  int
	cellHeight int
	fps        int
	holdMS     int
	borderless bool
	mute       bool
	exitKey    string
	assets     string
}

func parseArgs(args []string) (*options, error) {
	o := &options{fs: flag.NewFlagSet("console-caster", flag.ContinueOnError)}
	fs := o.fs
	fs.StringVar(&o.configPath, "config", "", "Path to a TOML config file")
	fs.BoolVar(&o.debug, "debug", false, "Write a debug log to logs/")
	fs.IntVar(&o.width, "width", 0, "Resolution width in pixels, 0 fits the terminal")
	fs.IntVar(&o.height, "height", 0, "Resolution height in pixels, 0 fits the terminal")
	fs.IntVar(&o.cellWidth, "cell-width", 0, "Glyph width in pixels, 0 detects")
	fs.IntVar(&o.cellHeight, "cell-height", 0, "Glyph height in pixels, 0 detects")
	fs.IntVar(&o.fps, "fps", 30, "Target frame rate, 0 for uncapped")
	fs.IntVar(&o.holdMS, "hold", 150, "Key hold window in milliseconds")
	fs.BoolVar(&o.borderless, "borderless", false, "Draw the grid at the top-left without a frame")
	fs.BoolVar(&o.mute, "mute", false, "Disable audio")
	fs.StringVar(&o.exitKey, "exit-key", "escape", "Key that stops the loop")
	fs.StringVar(&o.assets, "assets", "assets", "Directory searched for sprite images and map.txt")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return o, nil
}

// apply copies explicitly set flags into cfg
func (o *options) apply(cfg *appConfig) error {
	var err error
	o.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Display.Width = o.width
		case "height":
			cfg.Display.Height = o.height
		case "cell-width":
			cfg.Display.CellWidth = o.cellWidth
		case "cell-height":
			cfg.Display.CellHeight = o.cellHeight
		case "borderless":
			cfg.Display.Borderless = o.borderless
		case "fps":
			cfg.Loop.FPS = o.fps
		case "hold":
			cfg.Loop.HoldMS = o.holdMS
		case "exit-key":
			k, e := input.ParseKey(o.exitKey)
			if e != nil {
				err = e
				return
			}
			cfg.Loop.ExitKey = k
		case "assets":
			cfg.Assets.Dir = o.assets
		case "mute":
			cfg.Audio.Enabled = !o.mute
		}
	})
	return err
}

// engineConfig resolves zero dimensions against the terminal
// termCols/termRows are the terminal size in cells, detectCell reports glyph pixels
func engineConfig(cfg appConfig, termCols, termRows int, detectCell func() (int, int)) engine.Config {
	cw, ch := cfg.Display.CellWidth, cfg.Display.CellHeight
	if cw <= 0 || ch <= 0 {
		dw, dh := fallbackCellWidth, fallbackCellHeight
		if detectCell != nil {
			if w, h := detectCell(); w > 0 && h > 0 {
				dw, dh = w, h
			}
		}
		if cw <= 0 {
			cw = dw
		}
		if ch <= 0 {
			ch = dh
		}
	}

	// A frame takes one cell on every side
	cols, rows := termCols, termRows
	if !cfg.Display.Borderless {
		cols -= 2
		rows -= 2
	}

	w := cfg.Display.Width
	if w <= 0 {
		w = max(cols, 1) * cw
	}
	h := cfg.Display.Height
	if h <= 0 {
		h = max(rows, 1) * ch
	}

	return engine.Config{
		Width:      w,
		Height:     h,
		CellWidth:  cw,
		CellHeight: ch,
		TargetRate: cfg.Loop.FPS,
		Borderless: cfg.Display.Borderless,
		ExitKey:    cfg.Loop.ExitKey,
	}
}
