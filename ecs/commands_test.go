package ecs_test

import (
	"testing"

	"github.com/plus3/dashshot/ecs"
	"github.com/stretchr/testify/assert"
)

func TestCommands(t *testing.T) {
	t.Run("flush order: deletes, spawns, defers", func(t *testing.T) {
		storage := ecs.NewStorage(newTestRegistry())
		victim := storage.Spawn(Health{Current: 1})

		var seen []int
		frame := ecs.UpdateFrame{Storage: storage}
		scheduler := ecs.NewScheduler(storage)
		scheduler.Register(systemFunc(func(f *ecs.UpdateFrame) {
			frame = *f
			f.Commands.Spawn(Health{Current: 2})
			f.Commands.Delete(victim)
			f.Commands.Defer(func() {
				for _, h := range ecs.PoolOf[Health](storage).Iter() {
					seen = append(seen, h.Current)
				}
			})
			assert.Equal(t, 3, f.Commands.Pending())
		}))

		scheduler.Once(0)

		assert.Equal(t, []int{2}, seen)
		assert.Equal(t, 0, frame.Commands.Pending())
	})

	t.Run("deleting an unknown entity is ignored", func(t *testing.T) {
		storage := ecs.NewStorage(newTestRegistry())
		storage.Spawn(Position{X: 4})

		scheduler := ecs.NewScheduler(storage)
		scheduler.Register(systemFunc(func(f *ecs.UpdateFrame) {
			f.Commands.Delete(ecs.NewEntityId(40, 2))
		}))

		assert.NotPanics(t, func() { scheduler.Once(0) })
		assert.Equal(t, 1, ecs.PoolOf[Position](storage).Len())
	})
}

type systemFunc func(frame *ecs.UpdateFrame)

func (f systemFunc) Execute(frame *ecs.UpdateFrame) { f(frame) }

func TestSchedulerSkipsEmptyFlush(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 1})

	var pending []int
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(systemFunc(func(f *ecs.UpdateFrame) {
		pending = append(pending, f.Commands.Pending())
	}))

	scheduler.Once(0)
	scheduler.Once(0)

	assert.Equal(t, []int{0, 0}, pending)
	assert.Equal(t, int64(2), scheduler.Stats().Ticks)
	assert.NotNil(t, ecs.PoolOf[Position](storage).Get(id))
}
