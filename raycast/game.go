package raycast

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/console-caster/asset"
	"github.com/lixenwraith/console-caster/engine"
	"github.com/lixenwraith/console-caster/input"
	"github.com/lixenwraith/console-caster/render"
	"github.com/lixenwraith/console-caster/vmath"
)

// ErrNoFloor is returned when the map has nowhere to stand
var ErrNoFloor = errors.New("map has no open cell")

// SpriteSource resolves named sprites, satisfied by asset.Library
type SpriteSource interface {
	Sprite(name string) *render.Sprite
	Score(n int) *render.Sprite
}

// Sounds receives gameplay cues
type Sounds interface {
	PlayShot()
	PlayHit()
	PlayCleared()
}

type silent struct{}

func (silent) PlayShot()    {}
func (silent) PlayHit()     {}
func (silent) PlayCleared() {}

// Player is the viewpoint
type Player struct {
	Pos      vmath.Vec2
	Rotation float64
	FOV      float64
}

// Facing returns the unit view direction
func (p Player) Facing() vmath.Vec2 { return vmath.Heading(p.Rotation) }

// Option configures a Game
type Option func(*Game)

// WithJitter replaces the random fire spread source
func WithJitter(fn func() float64) Option {
	return func(g *Game) { g.jitter = fn }
}

// WithSounds routes gameplay cues to s
func WithSounds(s Sounds) Option {
	return func(g *Game) { g.sounds = s }
}

// Game is the raycaster demo driven by engine.Engine
type Game struct {
	settings Settings
	bindings Bindings
	world    *Map
	sprites  SpriteSource
	jitter   func() float64
	sounds   Sounds

	player  Player
	objects Objects
	depth   []float64
	width   int
	height  int
	targets int
	rate    float64

	wall       *render.Sprite
	target     *render.Sprite
	projectile *render.Sprite
	weapon     *render.Sprite
	minimap    *render.Sprite
}

var _ engine.Game = (*Game)(nil)

// New creates the demo over a parsed map
func New(world *Map, sprites SpriteSource, settings Settings, bindings Bindings, opts ...Option) (*Game, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("game settings: %w", err)
	}

	rng := vmath.NewFastRand(uint64(time.Now().UnixNano()))
	g := &Game{
		settings: settings,
		bindings: bindings,
		world:    world,
		sprites:  sprites,
		sounds:   silent{},
		jitter: func() float64 {
			return rng.Range(-settings.Jitter, settings.Jitter)
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Initialize sizes the depth buffer, loads sprites, places the player and spawns targets
func (g *Game) Initialize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid screen %dx%d", width, height)
	}
	g.width, g.height = width, height
	g.depth = make([]float64, width)

	g.wall = g.sprites.Sprite(asset.NameWall)
	g.target = g.sprites.Sprite(asset.NameTarget)
	g.projectile = g.sprites.Sprite(asset.NameBullet)
	g.weapon = g.sprites.Sprite(asset.NamePistol)
	g.minimap = g.world.Sprite()

	start := vmath.Vec2{X: g.settings.StartX, Y: g.settings.StartY}
	if g.world.Solid(start) {
		floor, ok := g.world.FirstFloor()
		if !ok {
			return ErrNoFloor
		}
		log.Printf("raycast: start (%.2f, %.2f) is solid, using (%.2f, %.2f)", start.X, start.Y, floor.X, floor.Y)
		start = floor
	}
	g.player = Player{Pos: start, Rotation: g.settings.StartRotation, FOV: g.settings.FOV}

	g.objects.Reset()
	g.spawnTargets()
	log.Printf("raycast: %dx%d map, %d targets, screen %dx%d", g.world.Rows(), g.world.Cols(), g.targets, width, height)
	return nil
}

func (g *Game) spawnTargets() {
	for _, p := range g.world.Spawns() {
		g.objects.Add(SceneObject{Pos: p, Kind: KindTarget, Sprite: g.target})
	}
	g.targets = g.objects.Count(KindTarget)
}

// Update runs movement, fire control and object physics
func (g *Game) Update(f engine.Frame) {
	dt := f.Elapsed.Seconds()
	g.rate = f.Rate

	g.move(f.Keys, dt)

	if f.Keys.Any(g.bindings.Fire, input.IsPressed) {
		g.fire()
	}
	if g.objects.Count(KindTarget) == 0 && f.Keys.Any(g.bindings.Respawn, input.IsPressed) {
		g.spawnTargets()
		log.Printf("raycast: respawned %d targets", g.targets)
	}

	g.integrate(dt)
}

func (g *Game) move(keys engine.Keys, dt float64) {
	held := func(k []input.Key) bool { return keys.Any(k, input.IsHeld) }
	facing := g.player.Facing()
	stride := g.settings.WalkSpeed * dt

	// A step that ends inside a wall is rejected whole
	step := func(dir vmath.Vec2) {
		next := g.player.Pos.Add(dir.Scale(stride))
		if !g.world.Solid(next) {
			g.player.Pos = next
		}
	}

	if held(g.bindings.Forward) {
		step(facing)
	}
	if held(g.bindings.Back) {
		step(facing.Scale(-1))
	}
	if held(g.bindings.StrafeLeft) {
		step(facing.Perp())
	}
	if held(g.bindings.StrafeRight) {
		step(facing.Perp().Scale(-1))
	}

	turn := g.settings.TurnSpeed * dt
	if held(g.bindings.TurnLeft) {
		g.player.Rotation -= turn
	}
	if held(g.bindings.TurnRight) {
		g.player.Rotation += turn
	}
	g.player.Rotation = vmath.WrapAngle(g.player.Rotation)
}

func (g *Game) fire() {
	dir := vmath.Heading(g.player.Rotation + g.jitter())
	g.objects.Add(SceneObject{
		Pos:    g.player.Pos,
		Vel:    dir.Scale(g.settings.ProjectileSpeed),
		Kind:   KindProjectile,
		Sprite: g.projectile,
	})
	g.sounds.PlayShot()
}

// integrate moves every object in insertion order
// Targets are only tested against the most recently inserted object, as it stands at that point in the pass
func (g *Game) integrate(dt float64) {
	last := g.objects.Last()
	for i := 0; i < g.objects.Len(); i++ {
		o := g.objects.At(i)
		o.Pos = o.Pos.Add(o.Vel.Scale(dt))

		if g.world.Solid(o.Pos) {
			o.Remove = true
		}

		if o.Kind == KindTarget && last.Kind == KindProjectile && o.Pos.Within(last.Pos, HitTolerance) {
			if !o.Remove {
				g.sounds.PlayHit()
			}
			o.Remove = true
		}
	}
}

// Render draws walls, objects and the HUD, then drops flagged objects
func (g *Game) Render(fb *render.FrameBuffer) {
	g.drawWalls(fb)
	g.drawObjects(fb)
	g.cleanup()
	g.drawHUD(fb)
}

func (g *Game) cleanup() {
	before := g.targets
	g.objects.Compact()
	g.targets = g.objects.Count(KindTarget)
	if before > 0 && g.targets == 0 {
		log.Printf("raycast: all targets cleared")
		g.sounds.PlayCleared()
	}
}

// Player returns the current viewpoint
func (g *Game) Player() Player { return g.player }

// SetPlayer moves the viewpoint
func (g *Game) SetPlayer(p Player) { g.player = p }

// Objects exposes the live scene objects
func (g *Game) Objects() *Objects { return &g.objects }

// Depth returns the per-column wall and object distances of the last render
func (g *Game) Depth() []float64 { return g.depth }

// Targets returns the live target count as of the last render
func (g *Game) Targets() int { return g.targets }
