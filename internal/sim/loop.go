/*
Package sim
File: loop.go
Description:
    The fixed-timestep scheduler. Each real frame adds elapsed wall-clock
    time (clamped to MaxFrameMS so a stall cannot snowball into a spiral of
    catch-up steps) to an accumulator, then runs every registered system for
    as many whole StepMS iterations as the accumulator permits. Leftover
    sub-step time carries to the next frame. The render callback fires once
    per frame, after all pending steps, which decouples the presentation
    frame rate from the simulation rate.
*/

package sim

import (
	"sync"
	"time"
)

// System advances one slice of the simulation. dt is the fixed step in
// milliseconds; systems convert locally where they need seconds.
type System interface {
	Update(dt float64, w *World)
}

// LoopConfig tunes the scheduler. Zero values fall back to a 60 Hz step and
// a 250 ms frame clamp.
type LoopConfig struct {
	StepMS     float64
	MaxFrameMS float64
}

const (
	defaultStepMS     = 1000.0 / 60.0
	defaultMaxFrameMS = 250.0
)

// GameLoop drives the registered systems in registration order. Order is a
// contract, not an accident: movement and fuel run before the collision
// systems that may zero velocity.
type GameLoop struct {
	world       *World
	config      LoopConfig
	systems     []System
	render      func()
	accumulator float64
	tick        uint64

	// Commands staged from other goroutines (HTTP helm input) and applied
	// at the next frame boundary, on the loop goroutine.
	commandMu sync.Mutex
	commands  []func(*World)
}

func NewGameLoop(w *World, cfg LoopConfig) *GameLoop {
	if cfg.StepMS <= 0 {
		cfg.StepMS = defaultStepMS
	}
	if cfg.MaxFrameMS <= 0 {
		cfg.MaxFrameMS = defaultMaxFrameMS
	}
	return &GameLoop{world: w, config: cfg}
}

// Register appends systems to the update order.
func (l *GameLoop) Register(systems ...System) {
	l.systems = append(l.systems, systems...)
}

// OnRender sets the once-per-frame presentation callback.
func (l *GameLoop) OnRender(fn func()) {
	l.render = fn
}

// Do stages fn to run against the World at the start of the next frame.
// Safe to call from any goroutine.
func (l *GameLoop) Do(fn func(*World)) {
	l.commandMu.Lock()
	l.commands = append(l.commands, fn)
	l.commandMu.Unlock()
}

// Tick reports how many fixed steps have run so far.
func (l *GameLoop) Tick() uint64 {
	return l.tick
}

// Advance consumes one frame's worth of elapsed wall time, in milliseconds,
// and returns the number of fixed steps executed.
func (l *GameLoop) Advance(elapsedMS float64) int {
	if elapsedMS < 0 {
		elapsedMS = 0
	}
	if elapsedMS > l.config.MaxFrameMS {
		elapsedMS = l.config.MaxFrameMS
	}

	l.drainCommands()

	l.accumulator += elapsedMS
	steps := 0
	for l.accumulator >= l.config.StepMS {
		for _, s := range l.systems {
			s.Update(l.config.StepMS, l.world)
		}
		l.accumulator -= l.config.StepMS
		l.tick++
		steps++
	}

	if l.render != nil {
		l.render()
	}
	return steps
}

// Run drives frames off a ticker until the stop channel closes.
func (l *GameLoop) Run(stop <-chan struct{}) {
	interval := time.Duration(l.config.StepMS * float64(time.Millisecond))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			elapsed := float64(now.Sub(last)) / float64(time.Millisecond)
			last = now
			l.Advance(elapsed)
		}
	}
}

func (l *GameLoop) drainCommands() {
	l.commandMu.Lock()
	staged := l.commands
	l.commands = nil
	l.commandMu.Unlock()
	for _, fn := range staged {
		fn(l.world)
	}
}
