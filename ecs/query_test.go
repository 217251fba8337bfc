package ecs_test

import (
	"testing"

	"github.com/plus3/dashshot/ecs"
	"github.com/stretchr/testify/assert"
)

func TestQuery(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	storage.Spawn(Position{X: 1})
	gone := storage.Spawn(Position{X: 2})
	storage.Spawn(Position{X: 3})
	storage.Delete(gone)

	query := ecs.NewQuery[Position](storage)
	assert.Equal(t, 2, query.Len())

	var xs []float32
	for pos := range query.Values() {
		xs = append(xs, pos.X)
	}
	assert.Equal(t, []float32{1, 3}, xs)

	storage.Spawn(Position{X: 4})
	assert.Equal(t, 3, query.Len(), "a bound query sees later spawns")

	var unbound ecs.Query[Position]
	assert.Zero(t, unbound.Len())
	assert.Panics(t, func() {
		for range unbound.Iter() {
		}
	})
}
