package ecs

import (
	"iter"
	"reflect"

	"github.com/kamstrup/intmap"
)

const initialPoolCapacity = 64

// iPool is the type-erased view of a Pool used by Storage and Commands.
type iPool interface {
	spawnAny(component any) EntityId
	delete(id EntityId) bool
	compact()
	len() int
	each(fn func(id EntityId, component any) bool)
	componentType() reflect.Type
}

type poolEntry[T any] struct {
	id    EntityId
	live  bool
	value T
}

// Pool stores every entity of a single component type in spawn order.
// Deleted entities are dropped from lookups immediately but keep their slot
// until Compact runs, so iteration order stays stable within a frame.
type Pool[T any] struct {
	id      uint32
	entries []poolEntry[T]
	index   *intmap.Map[EntityId, int]
	nextSeq uint32
	dirty   bool
}

func newPool[T any](id uint32) *Pool[T] {
	return &Pool[T]{
		id:      id,
		entries: make([]poolEntry[T], 0, initialPoolCapacity),
		index:   intmap.New[EntityId, int](initialPoolCapacity),
	}
}

// Spawn appends a component and returns the id of its entity.
func (p *Pool[T]) Spawn(value T) EntityId {
	p.nextSeq++
	id := NewEntityId(p.id, p.nextSeq)
	p.entries = append(p.entries, poolEntry[T]{id: id, live: true, value: value})
	p.index.Put(id, len(p.entries)-1)
	return id
}

// Get returns the component for id, or nil if the entity does not exist.
// The pointer is valid until the next Spawn or Compact on this pool.
func (p *Pool[T]) Get(id EntityId) *T {
	idx, ok := p.index.Get(id)
	if !ok {
		return nil
	}
	return &p.entries[idx].value
}

// Delete removes the entity from lookups and iteration.
func (p *Pool[T]) Delete(id EntityId) bool {
	idx, ok := p.index.Get(id)
	if !ok {
		return false
	}
	p.entries[idx].live = false
	p.index.Del(id)
	p.dirty = true
	return true
}

// Compact drops the slots of deleted entities, preserving spawn order.
func (p *Pool[T]) Compact() {
	if !p.dirty {
		return
	}

	n := 0
	for _, entry := range p.entries {
		if !entry.live {
			continue
		}
		p.entries[n] = entry
		p.index.Put(entry.id, n)
		n++
	}
	clear(p.entries[n:])
	p.entries = p.entries[:n]
	p.dirty = false
}

// Clear removes every entity. Sequence numbers keep counting so ids
// from before the clear never resolve again.
func (p *Pool[T]) Clear() {
	clear(p.entries)
	p.entries = p.entries[:0]
	p.index = intmap.New[EntityId, int](initialPoolCapacity)
	p.dirty = false
}

// Len returns the number of live entities.
func (p *Pool[T]) Len() int {
	return p.index.Len()
}

// Iter yields live entities in spawn order.
func (p *Pool[T]) Iter() iter.Seq2[EntityId, *T] {
	return func(yield func(EntityId, *T) bool) {
		for i := range p.entries {
			entry := &p.entries[i]
			if !entry.live {
				continue
			}
			if !yield(entry.id, &entry.value) {
				return
			}
		}
	}
}

func (p *Pool[T]) spawnAny(component any) EntityId {
	switch v := component.(type) {
	case T:
		return p.Spawn(v)
	case *T:
		return p.Spawn(*v)
	}
	panic("component of type " + reflect.TypeOf(component).String() +
		" spawned into pool of " + p.componentType().String())
}

func (p *Pool[T]) delete(id EntityId) bool { return p.Delete(id) }
func (p *Pool[T]) compact()                { p.Compact() }
func (p *Pool[T]) len() int                { return p.Len() }

func (p *Pool[T]) each(fn func(id EntityId, component any) bool) {
	for id, value := range p.Iter() {
		if !fn(id, value) {
			return
		}
	}
}

func (p *Pool[T]) componentType() reflect.Type {
	return reflect.TypeFor[T]()
}
