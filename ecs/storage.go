package ecs

import (
	"reflect"
	"sort"
)

type singletonEntry struct {
	ptr reflect.Value
}

// Storage owns the component pools and singletons of one world.
type Storage struct {
	registry   *ComponentRegistry
	pools      map[reflect.Type]iPool
	poolsById  []iPool
	singletons map[reflect.Type]*singletonEntry
}

// NewStorage creates a new ECS storage with the given component registry
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		registry:   registry,
		pools:      make(map[reflect.Type]iPool),
		singletons: make(map[reflect.Type]*singletonEntry),
	}
}

// PoolOf returns the pool for component type T, creating it on first use.
// Panics if T was never registered.
func PoolOf[T any](s *Storage) *Pool[T] {
	return s.poolFor(reflect.TypeFor[T]()).(*Pool[T])
}

func (s *Storage) poolFor(t reflect.Type) iPool {
	if pool, ok := s.pools[t]; ok {
		return pool
	}

	factory := s.registry.getFactory(t)
	if factory == nil {
		panic("component type " + t.String() + " not registered")
	}

	// Pool ids start at 1 so the zero EntityId stays invalid.
	pool := factory(uint32(len(s.poolsById) + 1))
	s.pools[t] = pool
	s.poolsById = append(s.poolsById, pool)
	return pool
}

func (s *Storage) poolById(id uint32) iPool {
	if id == 0 || int(id) > len(s.poolsById) {
		return nil
	}
	return s.poolsById[id-1]
}

// Spawn creates a new entity from a component value or pointer.
func (s *Storage) Spawn(component any) EntityId {
	if component == nil {
		panic("cannot spawn entity without a component")
	}

	compType := reflect.TypeOf(component)
	if compType.Kind() == reflect.Ptr {
		compType = compType.Elem()
	}

	return s.poolFor(compType).spawnAny(component)
}

// Delete removes the entity with the given id. Unknown ids are ignored.
func (s *Storage) Delete(id EntityId) bool {
	pool := s.poolById(id.PoolId())
	if pool == nil {
		return false
	}
	return pool.delete(id)
}

// Clear removes every entity of component type T.
func Clear[T any](s *Storage) {
	PoolOf[T](s).Clear()
}

// Compact reclaims the slots of deleted entities in every pool.
func (s *Storage) Compact() {
	for _, pool := range s.poolsById {
		pool.compact()
	}
}

// AddSingleton stores value as the singleton of its type, replacing any
// previous value in place so existing Singleton accessors see the update.
func (s *Storage) AddSingleton(value any) {
	t := reflect.TypeOf(value)
	if entry, ok := s.singletons[t]; ok {
		entry.ptr.Elem().Set(reflect.ValueOf(value))
		return
	}

	ptr := reflect.New(t)
	ptr.Elem().Set(reflect.ValueOf(value))
	s.singletons[t] = &singletonEntry{ptr: ptr}
}

func (s *Storage) getSingletonEntry(t reflect.Type) *singletonEntry {
	return s.singletons[t]
}

// ReadSingleton stores a pointer to the singleton of type T into target
// (a **T) and reports whether the singleton exists.
func (s *Storage) ReadSingleton(target any) bool {
	targetValue := reflect.ValueOf(target)
	if targetValue.Kind() != reflect.Ptr || targetValue.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton expects a pointer to a pointer")
	}

	entry := s.singletons[targetValue.Elem().Type().Elem()]
	if entry == nil {
		return false
	}
	targetValue.Elem().Set(entry.ptr)
	return true
}

// EachSingleton calls fn with a pointer to every singleton, ordered by
// type name.
func (s *Storage) EachSingleton(fn func(t reflect.Type, ptr any)) {
	types := make([]reflect.Type, 0, len(s.singletons))
	for t := range s.singletons {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		return types[i].String() < types[j].String()
	})

	for _, t := range types {
		fn(t, s.singletons[t].ptr.Interface())
	}
}

// EachEntity calls fn with a pointer to every live component in the pool
// with the given id, in spawn order, until fn returns false.
func (s *Storage) EachEntity(poolId uint32, fn func(id EntityId, component any) bool) {
	if pool := s.poolById(poolId); pool != nil {
		pool.each(fn)
	}
}
