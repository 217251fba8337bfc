// Package game implements the shooter's rules as ECS systems over a
// frontend-agnostic World. Frontends feed an Input snapshot to Update once
// per frame and hand a Canvas to Draw.
package game

import (
	"math/rand/v2"
	"time"

	"github.com/plus3/dashshot/ecs"
)

// FrameTime is the fixed step every frontend paces its loop to.
const FrameTime = time.Second / 60

// Options configures a new World.
type Options struct {
	Width, Height int
	// Seed drives enemy placement. Zero picks a random seed.
	Seed uint64
	// Tuning overrides the gameplay constants. The zero value means
	// DefaultTuning.
	Tuning Tuning
	// Registry lets callers add their own components (debug UI items)
	// to the world. The game components are registered into it.
	Registry *ecs.ComponentRegistry
}

// World owns the game storage and the update and draw schedulers.
type World struct {
	Storage *ecs.Storage

	updates *ecs.Scheduler
	draws   *ecs.Scheduler

	state  *ecs.Singleton[State]
	input  *ecs.Singleton[Input]
	screen *ecs.Singleton[Screen]
	tuning *ecs.Singleton[Tuning]
	tally  *ecs.Singleton[Tally]
	target *ecs.Singleton[Target]
}

// RegisterComponents adds every game component to registry.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Bullet](registry)
	ecs.RegisterComponent[Enemy](registry)
}

// NewWorld creates a world in the reset state.
func NewWorld(opts Options) *World {
	tuning := opts.Tuning
	if tuning == (Tuning{}) {
		tuning = DefaultTuning()
	}

	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	registry := opts.Registry
	if registry == nil {
		registry = ecs.NewComponentRegistry()
	}
	RegisterComponents(registry)

	storage := ecs.NewStorage(registry)
	w := &World{
		Storage: storage,
		state:   ecs.NewSingleton[State](storage, NewState(opts.Width, opts.Height, tuning)),
		input:   ecs.NewSingleton[Input](storage),
		screen:  ecs.NewSingleton[Screen](storage, Screen{Width: opts.Width, Height: opts.Height}),
		tuning:  ecs.NewSingleton[Tuning](storage, tuning),
		tally:   ecs.NewSingleton[Tally](storage, Tally{Games: 1}),
		target:  ecs.NewSingleton[Target](storage),
	}

	w.updates = ecs.NewScheduler(storage)
	w.updates.Register(&RestartSystem{})
	w.updates.Register(&DashSystem{})
	w.updates.Register(&MovementSystem{})
	w.updates.Register(&FireSystem{})
	w.updates.Register(&EnemySpawnSystem{Rand: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))})
	w.updates.Register(&BulletSystem{})
	w.updates.Register(&EnemySystem{})
	w.updates.Register(&CollisionSystem{})
	w.updates.Register(&SweepSystem{})

	w.draws = ecs.NewScheduler(storage)
	w.draws.Register(&RenderSystem{})

	return w
}

// Register appends an extra system to the update schedule, after the
// gameplay systems.
func (w *World) Register(system ecs.System) {
	w.updates.Register(system)
}

// Update advances the world by one frame.
func (w *World) Update(in Input) {
	*w.input.Get() = in
	w.updates.Once(FrameTime.Seconds())
}

// Draw renders the current state onto canvas.
func (w *World) Draw(canvas Canvas) {
	w.target.Get().Canvas = canvas
	w.draws.Once(FrameTime.Seconds())
	w.target.Get().Canvas = nil
}

// Reset starts a new game regardless of the current state.
func (w *World) Reset() {
	restart(w.state.Get(), *w.screen.Get(), *w.tuning.Get())
	ecs.Clear[Bullet](w.Storage)
	ecs.Clear[Enemy](w.Storage)
}

// State returns a copy of the world state.
func (w *World) State() State {
	return *w.state.Get()
}

// Tally returns a copy of the event counters.
func (w *World) Tally() Tally {
	return *w.tally.Get()
}

// Screen returns the play field size.
func (w *World) Screen() Screen {
	return *w.screen.Get()
}

// Bullets returns a snapshot of the live bullets in spawn order.
func (w *World) Bullets() []Bullet {
	return snapshot(ecs.NewQuery[Bullet](w.Storage))
}

// Enemies returns a snapshot of the live enemies in spawn order.
func (w *World) Enemies() []Enemy {
	return snapshot(ecs.NewQuery[Enemy](w.Storage))
}

// UpdateStats returns timing statistics for the update systems.
func (w *World) UpdateStats() *ecs.SchedulerStats {
	return w.updates.Stats()
}

// DrawStats returns timing statistics for the draw systems.
func (w *World) DrawStats() *ecs.SchedulerStats {
	return w.draws.Stats()
}

func snapshot[T any](query *ecs.Query[T]) []T {
	out := make([]T, 0, query.Len())
	for value := range query.Values() {
		out = append(out, *value)
	}
	return out
}
