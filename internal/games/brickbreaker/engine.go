package brickbreaker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

var (
	// ErrAlreadyStarted is returned by Start when the loops are already running.
	ErrAlreadyStarted = errors.New("engine: already started")
	// ErrNotStarted is returned by Wait when Start was never called.
	ErrNotStarted = errors.New("engine: not started")
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The session id is attached to it.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithRNG replaces the seeded power-up random source.
func WithRNG(r Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithRedraw sets the callback the render loop calls once per tick.
// It runs without the world lock held and must not block for long.
func WithRedraw(fn func()) Option {
	return func(e *Engine) { e.redraw = fn }
}

// Engine owns a World and the four loops that drive it. All loops and all
// external callers serialize on one mutex; paused loops park on a condition
// variable tied to it.
type Engine struct {
	id     string
	cfg    config.Config
	logger *log.Logger
	rng    Rand
	redraw func()

	mu      sync.Mutex
	cond    *sync.Cond
	world   *World
	started bool

	wg       sync.WaitGroup
	stopCh   chan struct{}
	stopOnce sync.Once
	unwatch  func() bool

	errMu sync.Mutex
	errs  []error
}

// New creates an engine with a fresh world. The loops do not run until Start.
func New(cfg config.Config, opts ...Option) *Engine {
	e := &Engine{
		id:     uuid.NewString(),
		cfg:    cfg,
		stopCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	e.logger = e.logger.With("session", e.id)

	if e.rng == nil {
		seed := cfg.Gameplay.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		e.rng = NewSimpleRNG(seed)
	}

	e.cond = sync.NewCond(&e.mu)
	e.world = newWorld(cfg, e.rng)
	e.world.Running = true
	return e
}

// ID returns the session id.
func (e *Engine) ID() string {
	return e.id
}

// updateLoop is one independently ticking world updater.
type updateLoop struct {
	name     string
	interval time.Duration
	update   func(*World)
}

// Start launches the physics, brick collision, power-up and render loops.
// Cancelling ctx stops the engine like Stop, without waiting.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	if e.started {
		e.mu.Unlock()
		return ErrAlreadyStarted
	}
	e.started = true

	timing := e.cfg.Timing
	loops := []updateLoop{
		{"physics", timing.PhysicsInterval(), e.updatePhysics},
		{"bricks", timing.CollisionInterval(), e.updateBricks},
		{"powerups", timing.PowerUpInterval(), e.updatePowerUps},
	}
	e.wg.Add(len(loops) + 1)
	e.unwatch = context.AfterFunc(ctx, e.halt)
	e.mu.Unlock()

	for _, l := range loops {
		go e.runLoop(l)
	}
	go e.runRenderLoop(timing.RenderInterval())

	e.logger.Info("session started", "lives", e.cfg.Gameplay.Lives)
	return nil
}

// Stop clears the running flag, wakes paused loops and waits for every loop
// to exit. It is safe to call more than once and from several goroutines.
func (e *Engine) Stop() {
	e.mu.Lock()
	e.stopLocked()
	unwatch := e.unwatch
	e.mu.Unlock()

	e.wg.Wait()
	if unwatch != nil {
		unwatch()
	}
}

// Wait blocks until every loop has exited and returns the faults that
// stopped the session, if any.
func (e *Engine) Wait() error {
	e.mu.Lock()
	started := e.started
	e.mu.Unlock()
	if !started {
		return ErrNotStarted
	}

	e.wg.Wait()

	e.errMu.Lock()
	defer e.errMu.Unlock()
	return errors.Join(e.errs...)
}

// Done returns a channel closed once the session has been asked to stop.
func (e *Engine) Done() <-chan struct{} {
	return e.stopCh
}

// halt requests shutdown without waiting for the loops.
func (e *Engine) halt() {
	e.mu.Lock()
	e.stopLocked()
	e.mu.Unlock()
}

// stopLocked clears the running flag and wakes everyone. Caller holds e.mu.
func (e *Engine) stopLocked() {
	if e.world.Running {
		e.logger.Info("session stopping", "score", e.world.Score.Score())
	}
	e.world.Running = false
	e.cond.Broadcast()
	e.stopOnce.Do(func() { close(e.stopCh) })
}

// failLocked records a loop fault and stops the session. Caller holds e.mu.
func (e *Engine) failLocked(loop string, r any) {
	e.logger.Error("loop fault", "loop", loop, "panic", r, "stack", string(debug.Stack()))

	e.errMu.Lock()
	e.errs = append(e.errs, fmt.Errorf("engine: %s loop: panic: %v", loop, r))
	e.errMu.Unlock()

	e.stopLocked()
}

// runLoop runs one update loop until the session stops.
func (e *Engine) runLoop(l updateLoop) {
	defer e.wg.Done()

	logger := e.logger.With("loop", l.name)
	logger.Debug("loop started", "interval", l.interval)
	defer logger.Debug("loop stopped")

	timer := time.NewTimer(l.interval)
	defer timer.Stop()

	for {
		if !e.iterate(l) {
			return
		}

		timer.Reset(l.interval)
		select {
		case <-e.stopCh:
			return
		case <-timer.C:
		}
	}
}

// iterate performs one tick of a loop under the world lock. It parks while
// the game is paused and reports false once the loop must exit.
func (e *Engine) iterate(l updateLoop) (ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			e.failLocked(l.name, r)
			ok = false
		}
	}()

	for e.world.Paused && e.world.Running {
		e.cond.Wait()
	}
	if !e.world.Running {
		return false
	}
	if !e.world.GameOver {
		l.update(e.world)
	}
	return true
}

// runRenderLoop requests a redraw every tick. It never mutates the world and
// keeps ticking while paused so the pause overlay is shown.
func (e *Engine) runRenderLoop(interval time.Duration) {
	defer e.wg.Done()

	logger := e.logger.With("loop", "render")
	logger.Debug("loop started", "interval", interval)
	defer logger.Debug("loop stopped")

	timer := time.NewTimer(interval)
	defer timer.Stop()

	for {
		e.mu.Lock()
		running := e.world.Running
		e.mu.Unlock()
		if !running || !e.requestRedraw() {
			return
		}

		timer.Reset(interval)
		select {
		case <-e.stopCh:
			return
		case <-timer.C:
		}
	}
}

func (e *Engine) requestRedraw() (ok bool) {
	if e.redraw == nil {
		return true
	}
	defer func() {
		if r := recover(); r != nil {
			e.mu.Lock()
			e.failLocked("render", r)
			e.mu.Unlock()
			ok = false
		}
	}()
	e.redraw()
	return true
}

func (e *Engine) updatePhysics(w *World) {
	lives := w.Lives
	w.stepPhysics()
	if w.Lives >= lives {
		return
	}
	if w.GameOver {
		e.logger.Info("game over", "score", w.Score.Score())
	} else {
		e.logger.Info("life lost", "lives", w.Lives)
	}
}

func (e *Engine) updateBricks(w *World) {
	if w.stepBricks() > 0 && w.Victory {
		e.logger.Info("victory", "score", w.Score.Score())
	}
}

func (e *Engine) updatePowerUps(w *World) {
	for _, t := range w.stepPowerUps() {
		e.logger.Debug("power-up collected", "type", t, "balls", len(w.Balls), "lives", w.Lives)
	}
}

// Step runs the physics, brick and power-up phases once, in that order, under
// a single lock acquisition. It follows the same pause and game-over rules as
// the loops and is safe to call while they run.
func (e *Engine) Step() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, update := range []func(*World){e.updatePhysics, e.updateBricks, e.updatePowerUps} {
		if !e.world.Running || e.world.Paused || e.world.GameOver {
			return
		}
		update(e.world)
	}
}

// MovePaddle centers the paddle on world x. Ignored while paused or stopped.
func (e *Engine) MovePaddle(x float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.world.Running || e.world.Paused {
		return
	}
	e.world.Paddle.MoveTo(x, e.cfg.World.Width)
}

// NudgePaddle moves the paddle by dx world units. Ignored while paused or stopped.
func (e *Engine) NudgePaddle(dx float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.world.Running || e.world.Paused {
		return
	}
	e.world.Paddle.MoveTo(e.world.Paddle.CenterX()+dx, e.cfg.World.Width)
}

// TogglePause flips the pause flag and returns the new value.
// Unpausing wakes every parked loop.
func (e *Engine) TogglePause() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.world.Paused = !e.world.Paused
	if !e.world.Paused {
		e.cond.Broadcast()
	}
	e.logger.Debug("pause toggled", "paused", e.world.Paused)
	return e.world.Paused
}

// Reset restores the start state atomically and wakes parked loops.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resetLocked()
}

// ResetIfGameOver resets only after a loss or a victory. Reports whether it did.
func (e *Engine) ResetIfGameOver() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.world.GameOver {
		return false
	}
	e.resetLocked()
	return true
}

func (e *Engine) resetLocked() {
	e.world.reset()
	e.cond.Broadcast()
	e.logger.Info("session reset")
}

// View calls fn with the world while holding the lock. fn must not retain
// the world or call back into the engine.
func (e *Engine) View(fn func(*World)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.world)
}

// Snapshot returns a consistent copy of the world.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.world.snapshot()
}

// Render draws the current world, HUD and overlays into dst.
func (e *Engine) Render(dst *core.Screen) {
	e.mu.Lock()
	defer e.mu.Unlock()
	renderWorld(dst, e.world)
}
