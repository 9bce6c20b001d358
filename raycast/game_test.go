package raycast

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/console-caster/asset"
	"github.com/lixenwraith/console-caster/engine"
	"github.com/lixenwraith/console-caster/input"
	"github.com/lixenwraith/console-caster/render"
	"github.com/lixenwraith/console-caster/vmath"
)

const eps = 1e-9

// heldKeys is a raw input source with a settable down set
type heldKeys map[input.Key]bool

func (h heldKeys) KeyDown(k input.Key) bool { return h[k] }
func (h heldKeys) Focused() bool            { return true }

type recordedSounds struct {
	shots, hits, cleared int
}

func (r *recordedSounds) PlayShot()    { r.shots++ }
func (r *recordedSounds) PlayHit()     { r.hits++ }
func (r *recordedSounds) PlayCleared() { r.cleared++ }

// harness drives a Game through tracker polls the way the engine loop does
type harness struct {
	t       *testing.T
	game    *Game
	tracker *input.Tracker
	fb      *render.FrameBuffer
	sounds  *recordedSounds
}

func newHarness(t *testing.T, mapText string, s Settings, width, height int) *harness {
	t.Helper()
	sounds := &recordedSounds{}
	g, err := New(mustMap(t, mapText), asset.NewLibrary(""), s, DefaultBindings(),
		WithJitter(func() float64 { return 0 }),
		WithSounds(sounds),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := g.Initialize(width, height); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return &harness{
		t:       t,
		game:    g,
		tracker: input.NewTracker(),
		fb:      render.NewFrameBuffer(width, height),
		sounds:  sounds,
	}
}

func settingsAt(x, y, rot float64) Settings {
	s := DefaultSettings()
	s.StartX, s.StartY, s.StartRotation = x, y, rot
	return s
}

func (h *harness) update(dt time.Duration, down ...input.Key) {
	src := heldKeys{}
	for _, k := range down {
		src[k] = true
	}
	h.tracker.Poll(src)
	h.game.Update(engine.Frame{Elapsed: dt, Keys: h.tracker, Rate: 30})
}

func (h *harness) render() {
	h.fb.Clear()
	h.game.Render(h.fb)
}

func TestCorridorColumn(t *testing.T) {
	h := newHarness(t, corridorMap, settingsAt(1.0, 1.5, math.Pi/2), 20, 10)
	h.update(0)
	h.render()

	mid := 10
	d := h.game.Depth()[mid]
	if math.Abs(d-1.0) > MarchStep+eps {
		t.Errorf("Centre column distance = %v, want 1.0 within one step", d)
	}
	ceiling, floor := Project(10, d)
	if ceiling >= floor {
		t.Errorf("ceiling %d >= floor %d", ceiling, floor)
	}

	// A wall this close covers the whole column with texture
	for y := 0; y < 5; y++ {
		c, _ := h.fb.Cell(mid, y)
		if c.Glyph == shadeGlyph {
			t.Errorf("Row %d of the centre column is shaded, want wall texture", y)
		}
	}
}

func TestColumnBands(t *testing.T) {
	// Long corridor along +Y: the far wall is a narrow band between sky and ground
	h := newHarness(t, "############\n#..........#\n############\n", settingsAt(1.5, 1.5, 0), 40, 30)
	h.update(0)
	h.render()

	x := 20
	d := h.game.Depth()[x]
	ceiling, floor := Project(30, d)
	if ceiling < 0 || floor >= 30 {
		t.Fatalf("Distance %v gives no sky band: %d, %d", d, ceiling, floor)
	}

	if c, _ := h.fb.Cell(x, ceiling); c.Glyph != shadeGlyph || c.Attr != skyAttr {
		t.Errorf("Row %d = %+v, want sky", ceiling, c)
	}
	if c, _ := h.fb.Cell(x, ceiling+1); c.Glyph == shadeGlyph {
		t.Errorf("Row %d = %+v, want wall", ceiling+1, c)
	}
	if c, _ := h.fb.Cell(x, floor+1); c.Glyph != shadeGlyph || c.Attr != groundAttr {
		t.Errorf("Row %d = %+v, want ground", floor+1, c)
	}
}

func TestEulerStepAndWallRemoval(t *testing.T) {
	h := newHarness(t, roomMap, settingsAt(2.5, 2.5, 0), 20, 10)
	objs := h.game.Objects()
	free := objs.Add(SceneObject{Pos: vmath.Vec2{X: 1.25, Y: 1.5}, Vel: vmath.Vec2{X: 2, Y: 0}, Kind: KindProjectile})
	blocked := objs.Add(SceneObject{Pos: vmath.Vec2{X: 3.5, Y: 1.5}, Vel: vmath.Vec2{X: 2, Y: 0}, Kind: KindProjectile})

	h.update(500 * time.Millisecond)

	if got := objs.At(free).Pos; got != (vmath.Vec2{X: 2.25, Y: 1.5}) {
		t.Errorf("Free object at %v, want (2.25, 1.5)", got)
	}
	if objs.At(free).Remove {
		t.Error("Free object flagged")
	}
	if got := objs.At(blocked).Pos; got != (vmath.Vec2{X: 4.5, Y: 1.5}) {
		t.Errorf("Blocked object at %v, want (4.5, 1.5)", got)
	}
	if !objs.At(blocked).Remove {
		t.Error("Object moved into a wall was not flagged")
	}

	h.render()
	if objs.Len() != 1 {
		t.Errorf("After render %d objects remain, want 1", objs.Len())
	}
}

func TestFireOntoColocatedTarget(t *testing.T) {
	h := newHarness(t, "#####\n#.@.#\n#####\n", settingsAt(1.5, 2.5, 0), 20, 10)
	if h.game.Targets() != 1 {
		t.Fatalf("Targets = %d, want 1", h.game.Targets())
	}

	h.update(time.Second/30, input.KeySpace)

	objs := h.game.Objects()
	if objs.Len() != 2 {
		t.Fatalf("Objects = %d, want target plus projectile", objs.Len())
	}
	target, shot := objs.At(0), objs.At(1)
	if target.Kind != KindTarget || shot.Kind != KindProjectile {
		t.Fatalf("Unexpected kinds %v, %v", target.Kind, shot.Kind)
	}
	if !target.Remove {
		t.Error("Target colocated with the new projectile was not flagged")
	}
	if math.Abs(shot.Vel.X) > eps || math.Abs(shot.Vel.Y-8) > eps {
		t.Errorf("Projectile velocity = %v, want (0, 8) with zero jitter", shot.Vel)
	}
	if h.sounds.shots != 1 || h.sounds.hits != 1 {
		t.Errorf("Sounds = %+v, want one shot and one hit", h.sounds)
	}

	h.render()
	if h.game.Targets() != 0 {
		t.Errorf("Targets after render = %d", h.game.Targets())
	}
	if h.sounds.cleared != 1 {
		t.Errorf("Cleared sound played %d times", h.sounds.cleared)
	}
}

func TestFireIsEdgeTriggered(t *testing.T) {
	h := newHarness(t, roomMap, settingsAt(2.5, 2.5, 0), 20, 10)

	for i := 0; i < 3; i++ {
		h.update(0, input.KeySpace)
	}
	if n := h.game.Objects().Len(); n != 1 {
		t.Errorf("Holding fire spawned %d projectiles, want 1", n)
	}

	h.update(0)
	h.update(0, input.KeyMouseLeft)
	if n := h.game.Objects().Len(); n != 2 {
		t.Errorf("Mouse fire did not spawn, have %d", n)
	}
}

func TestOnlyLastInsertedProjectileCollides(t *testing.T) {
	h := newHarness(t, "#######\n#.@...#\n#######\n", settingsAt(1.5, 4.5, 0), 20, 10)
	objs := h.game.Objects()

	// An older projectile sits on the target, a newer one is far away
	objs.Add(SceneObject{Pos: vmath.Vec2{X: 1.5, Y: 2.5}, Kind: KindProjectile})
	objs.Add(SceneObject{Pos: vmath.Vec2{X: 1.5, Y: 5.5}, Kind: KindProjectile})

	h.update(time.Millisecond)
	if objs.At(0).Remove {
		t.Error("Target hit by a projectile that is not the most recent one")
	}
}

func TestMovement(t *testing.T) {
	t.Run("step into wall is rejected", func(t *testing.T) {
		h := newHarness(t, corridorMap, settingsAt(1.5, 1.5, math.Pi/2), 20, 10)
		h.update(time.Second, 'W')
		if p := h.game.Player().Pos; p != (vmath.Vec2{X: 1.5, Y: 1.5}) {
			t.Errorf("Player moved into a wall: %v", p)
		}
	})

	t.Run("forward along facing", func(t *testing.T) {
		h := newHarness(t, roomMap, settingsAt(1.5, 2.5, math.Pi/2), 20, 10)
		h.update(100*time.Millisecond, 'W')
		p := h.game.Player().Pos
		if math.Abs(p.X-1.8) > 1e-6 || math.Abs(p.Y-2.5) > 1e-6 {
			t.Errorf("Player at %v, want (1.8, 2.5)", p)
		}
	})

	t.Run("back and strafe", func(t *testing.T) {
		h := newHarness(t, roomMap, settingsAt(2.5, 2.5, 0), 20, 10)
		h.update(100*time.Millisecond, 'S')
		if p := h.game.Player().Pos; math.Abs(p.Y-2.2) > 1e-6 {
			t.Errorf("Back: Y = %v, want 2.2", p.Y)
		}
		h.update(100*time.Millisecond, 'A')
		if p := h.game.Player().Pos; math.Abs(p.X-2.2) > 1e-6 {
			t.Errorf("Strafe left: X = %v, want 2.2", p.X)
		}
		h.update(200*time.Millisecond, 'D')
		if p := h.game.Player().Pos; math.Abs(p.X-2.8) > 1e-6 {
			t.Errorf("Strafe right: X = %v, want 2.8", p.X)
		}
	})

	t.Run("turning", func(t *testing.T) {
		h := newHarness(t, roomMap, settingsAt(2.5, 2.5, 0), 20, 10)
		h.update(500*time.Millisecond, 'Q')
		if r := h.game.Player().Rotation; math.Abs(r+0.75) > eps {
			t.Errorf("Rotation after turning left = %v, want -0.75", r)
		}
		h.update(time.Second, input.KeyRight)
		if r := h.game.Player().Rotation; math.Abs(r-0.75) > eps {
			t.Errorf("Rotation after turning right = %v, want 0.75", r)
		}
	})
}

func TestBillboardDepthTest(t *testing.T) {
	h := newHarness(t, roomMap, settingsAt(2.5, 2.5, 0), 40, 20)
	g := h.game
	spr := g.sprites.Sprite(asset.NameTarget)

	drawn := func() int {
		n := 0
		for y := 0; y < 20; y++ {
			for x := 0; x < 40; x++ {
				if c, _ := h.fb.Cell(x, y); c != render.BlankCell {
					n++
				}
			}
		}
		return n
	}

	// Wall nearer than the object everywhere: nothing lands
	for i := range g.depth {
		g.depth[i] = 1
	}
	h.fb.Clear()
	g.drawBillboard(h.fb, spr, 0, 3)
	if n := drawn(); n != 0 {
		t.Errorf("Occluded billboard drew %d cells", n)
	}
	for i, d := range g.depth {
		if d != 1 {
			t.Fatalf("Depth[%d] changed to %v by an occluded object", i, d)
		}
	}

	// Open columns: the object draws and claims its columns
	for i := range g.depth {
		g.depth[i] = 10
	}
	h.fb.Clear()
	g.drawBillboard(h.fb, spr, 0, 3)
	if n := drawn(); n == 0 {
		t.Fatal("Visible billboard drew nothing")
	}
	if g.depth[20] != 3 {
		t.Errorf("Centre column depth = %v, want 3", g.depth[20])
	}
	if g.depth[0] != 10 || g.depth[39] != 10 {
		t.Error("Columns outside the billboard were modified")
	}

	// A farther object behind it cannot overwrite the claimed columns
	before := h.fb.Snapshot()
	g.drawBillboard(h.fb, spr, 0, 5)
	after := h.fb.Snapshot()
	for i := range before {
		x := i % 40
		if g.depth[x] == 3 && before[i] != after[i] && before[i] != render.BlankCell {
			t.Fatalf("Farther object overwrote a nearer pixel at column %d", x)
		}
	}
}

func TestObjectVisibility(t *testing.T) {
	h := newHarness(t, "#########\n#.......#\n#.......#\n#.......#\n#########\n", settingsAt(2.5, 4.5, 0), 40, 20)
	objs := h.game.Objects()

	// Behind, too close, and in front
	objs.Add(SceneObject{Pos: vmath.Vec2{X: 2.5, Y: 2.5}, Kind: KindTarget, Sprite: h.game.target})
	objs.Add(SceneObject{Pos: vmath.Vec2{X: 2.5, Y: 4.8}, Kind: KindTarget, Sprite: h.game.target})
	h.update(0)
	h.render()

	for x, d := range h.game.Depth() {
		if d < 3 {
			t.Fatalf("Column %d depth %v: a hidden object was drawn", x, d)
		}
	}

	objs.Add(SceneObject{Pos: vmath.Vec2{X: 2.5, Y: 6.5}, Kind: KindTarget, Sprite: h.game.target})
	h.update(0)
	h.render()
	if d := h.game.Depth()[20]; math.Abs(d-2) > eps {
		t.Errorf("Object in front not composited: centre depth %v, want 2", d)
	}
}

func TestRespawnAfterClear(t *testing.T) {
	h := newHarness(t, "#####\n#.@.#\n#####\n", settingsAt(1.5, 2.5, 0), 20, 10)

	h.update(0, 'R')
	if h.game.Objects().Count(KindTarget) != 1 {
		t.Fatal("Respawn while targets remain should do nothing")
	}

	h.update(time.Second/30, input.KeySpace)
	h.render()
	if h.game.Targets() != 0 {
		t.Fatalf("Targets = %d after hit", h.game.Targets())
	}

	h.update(0)
	h.update(0, 'R')
	h.render()
	if h.game.Targets() != 1 {
		t.Errorf("Targets after respawn = %d, want 1", h.game.Targets())
	}
}

func TestHUD(t *testing.T) {
	h := newHarness(t, roomMap, settingsAt(1.5, 1.5, math.Pi/2), 40, 20)
	h.update(0)
	h.render()

	// 5x5 map scaled into a 6x6 minimap: (1.5, 1.5) lands on cell (2, 2)
	if c, _ := h.fb.Cell(2, 2); c.Glyph != markerGlyph || c.Attr != markerAttr {
		t.Errorf("Player marker = %+v", c)
	}
	if c, _ := h.fb.Cell(1, 1); c.Glyph != GlyphWall || c.Attr != minimapAttr {
		t.Errorf("Minimap corner = %+v, want wall glyph", c)
	}

	// Rate readout below the minimap
	text := ""
	for x := 1; x < 10; x++ {
		c, _ := h.fb.Cell(x, 8)
		text += string(c.Glyph)
	}
	if text != "30.00 fps" {
		t.Errorf("Rate text = %q", text)
	}

	// Scoreboard frame at the top right
	if c, _ := h.fb.Cell(30, 1); c.Attr != 0x70 {
		t.Errorf("Scoreboard corner = %+v", c)
	}
}

func TestInitializeFallbacks(t *testing.T) {
	h := newHarness(t, roomMap, settingsAt(0.5, 0.5, 0), 20, 10)
	if p := h.game.Player().Pos; p != (vmath.Vec2{X: 1.5, Y: 1.5}) {
		t.Errorf("Solid start not replaced: %v", p)
	}

	g, err := New(mustMap(t, "##\n##"), asset.NewLibrary(""), DefaultSettings(), DefaultBindings())
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Initialize(20, 10); err != ErrNoFloor {
		t.Errorf("Initialize on solid map = %v, want ErrNoFloor", err)
	}
	if err := g.Initialize(0, 10); err == nil {
		t.Error("Zero width accepted")
	}

	bad := DefaultSettings()
	bad.FOV = 0
	if _, err := New(mustMap(t, roomMap), asset.NewLibrary(""), bad, DefaultBindings()); err == nil {
		t.Error("Zero fov accepted")
	}
}
