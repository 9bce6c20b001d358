package raycast

import (
	"fmt"
	"math"

	"github.com/lixenwraith/console-caster/input"
	"github.com/lixenwraith/console-caster/render"
)

// Rendering constants
const (
	BillboardScale  = 1.15
	MinDrawDistance = 0.5
	HitTolerance    = 0.2
)

// Untextured parts of a column
const (
	shadeGlyph              = '░'
	skyAttr     render.Attr = 0x40
	groundAttr  render.Attr = 0x80
	markerGlyph             = '▓'
	markerAttr  render.Attr = 0x04
	hudTextAttr render.Attr = 0x0F
)

// Settings are the tunables of the demo, loaded from the [game] config section
type Settings struct {
	StartX          float64 `toml:"start_x"`
	StartY          float64 `toml:"start_y"`
	StartRotation   float64 `toml:"start_rotation"`
	FOV             float64 `toml:"fov"`
	RenderDistance  float64 `toml:"render_distance"`
	WalkSpeed       float64 `toml:"walk_speed"`
	TurnSpeed       float64 `toml:"turn_speed"`
	ProjectileSpeed float64 `toml:"projectile_speed"`
	Jitter          float64 `toml:"jitter"`
	ShowFPS         bool    `toml:"show_fps"`
}

// DefaultSettings returns the stock tuning
func DefaultSettings() Settings {
	return Settings{
		StartX:          9,
		StartY:          9,
		StartRotation:   -math.Pi / 2,
		FOV:             math.Pi / 4,
		RenderDistance:  20,
		WalkSpeed:       3,
		TurnSpeed:       1.5,
		ProjectileSpeed: 8,
		Jitter:          0.05,
		ShowFPS:         true,
	}
}

// Validate rejects settings the renderer cannot use
func (s Settings) Validate() error {
	if s.FOV <= 0 || s.FOV >= 2*math.Pi {
		return fmt.Errorf("fov %v outside (0, 2π)", s.FOV)
	}
	if s.RenderDistance <= MarchStep {
		return fmt.Errorf("render distance %v too small", s.RenderDistance)
	}
	if s.WalkSpeed < 0 || s.TurnSpeed < 0 || s.ProjectileSpeed < 0 || s.Jitter < 0 {
		return fmt.Errorf("speeds and jitter must not be negative")
	}
	return nil
}

// Bindings maps actions to keys, loaded from the [keys] config section
// Movement and turning act while held, fire and respawn on the press edge
type Bindings struct {
	Forward     []input.Key `toml:"forward"`
	Back        []input.Key `toml:"back"`
	StrafeLeft  []input.Key `toml:"strafe_left"`
	StrafeRight []input.Key `toml:"strafe_right"`
	TurnLeft    []input.Key `toml:"turn_left"`
	TurnRight   []input.Key `toml:"turn_right"`
	Fire        []input.Key `toml:"fire"`
	Respawn     []input.Key `toml:"respawn"`
}

// DefaultBindings returns WASD plus arrows, Q/E to turn, Space or left click to fire
func DefaultBindings() Bindings {
	return Bindings{
		Forward:     []input.Key{'W', input.KeyUp},
		Back:        []input.Key{'S', input.KeyDown},
		StrafeLeft:  []input.Key{'A'},
		StrafeRight: []input.Key{'D'},
		TurnLeft:    []input.Key{'Q', input.KeyLeft},
		TurnRight:   []input.Key{'E', input.KeyRight},
		Fire:        []input.Key{input.KeySpace, input.KeyMouseLeft},
		Respawn:     []input.Key{'R'},
	}
}
