package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/console-caster/input"
	"github.com/lixenwraith/console-caster/render"
)

var (
	// ErrNoDisplay is returned when the engine has no display sink to draw on
	ErrNoDisplay = errors.New("display sink unavailable")

	// ErrAlreadyRun is returned when Run is called a second time
	ErrAlreadyRun = errors.New("engine already ran")
)

// Keys is the per-frame view of edge-triggered key state
type Keys interface {
	Key(k input.Key) input.KeyState
	Any(keys []input.Key, pred func(input.KeyState) bool) bool
}

// Frame carries the per-iteration data handed to Game.Update
type Frame struct {
	Elapsed time.Duration
	Keys    Keys
	Rate    float64 // averaged frames per second
	Number  uint64
}

// Game is a demo driven by the engine runtime
type Game interface {
	// Initialize is called once before the first frame with the grid size
	Initialize(width, height int) error

	// Update advances game state by one frame
	Update(f Frame)

	// Render paints the frame; the buffer is only reachable for the duration of the call
	Render(fb *render.FrameBuffer)
}

// State is the engine lifecycle position
type State int32

const (
	StateConstructed State = iota
	StateRunning
	StateStopped
)

// Engine owns the framebuffer and runs the fixed sequential frame loop
type Engine struct {
	cfg     Config
	sink    render.Sink
	source  input.Source
	game    Game
	time    TimeProvider
	clock   *FrameClock
	tracker *input.Tracker
	fb      *render.FrameBuffer

	state  atomic.Int32
	frames atomic.Uint64
}

// EngineOption configures an Engine
type EngineOption func(*Engine)

// WithTimeProvider replaces the wall clock, used by tests
func WithTimeProvider(tp TimeProvider) EngineOption {
	return func(e *Engine) { e.time = tp }
}

// New creates an engine; the framebuffer is allocated once here
func New(cfg Config, sink render.Sink, source input.Source, game Game, opts ...EngineOption) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}

	e := &Engine{
		cfg:     cfg,
		sink:    sink,
		source:  source,
		game:    game,
		time:    NewMonotonicTimeProvider(),
		tracker: input.NewTracker(),
	}
	for _, opt := range opts {
		opt(e)
	}

	w, h := cfg.ScreenSize()
	e.fb = render.NewFrameBuffer(w, h)
	e.clock = NewFrameClock(e.time, cfg.TargetRate)
	e.state.Store(int32(StateConstructed))
	return e, nil
}

// State returns the lifecycle state
func (e *Engine) State() State { return State(e.state.Load()) }

// Frames returns the number of completed frames
func (e *Engine) Frames() uint64 { return e.frames.Load() }

// Clock exposes the frame clock for rate reporting
func (e *Engine) Clock() *FrameClock { return e.clock }

// ScreenSize returns the grid dimensions
func (e *Engine) ScreenSize() (int, int) { return e.fb.Width(), e.fb.Height() }

// Run executes the loop until the exit key is pressed, the source interrupts, or ctx ends
// Without a sink the loop is never entered
func (e *Engine) Run(ctx context.Context) error {
	if !e.state.CompareAndSwap(int32(StateConstructed), int32(StateRunning)) {
		return ErrAlreadyRun
	}
	defer e.state.Store(int32(StateStopped))

	if e.sink == nil || e.source == nil {
		return ErrNoDisplay
	}

	if err := e.game.Initialize(e.fb.Width(), e.fb.Height()); err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}
	log.Printf("engine: running %dx%d at %d fps (0 = uncapped)", e.fb.Width(), e.fb.Height(), e.cfg.TargetRate)

	e.clock.Start()
	for {
		elapsed := e.clock.Tick()
		e.tracker.Poll(e.source)

		n := e.frames.Load()
		e.game.Update(Frame{
			Elapsed: elapsed,
			Keys:    e.tracker,
			Rate:    e.clock.AverageRate(),
			Number:  n,
		})
		e.game.Render(e.fb)
		e.fb.FlushTo(e.sink)
		e.frames.Add(1)

		e.clock.Wait()

		if e.stopRequested(ctx) {
			log.Printf("engine: stopped after %d frames", e.frames.Load())
			return nil
		}
	}
}

// stopRequested is the between-frames exit check
func (e *Engine) stopRequested(ctx context.Context) bool {
	if e.tracker.Key(e.cfg.ExitKey).Pressed {
		return true
	}
	if in, ok := e.source.(input.Interrupter); ok && in.Interrupted() {
		return true
	}
	return ctx.Err() != nil
}
