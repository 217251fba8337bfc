package ecs

import "reflect"

// ComponentRegistry manages component type registration for an ECS instance.
// Each Storage owns its pools, so several storages may share one registry.
type ComponentRegistry struct {
	factories map[reflect.Type]func(id uint32) iPool
}

// NewComponentRegistry creates a new component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func(id uint32) iPool),
	}
}

// RegisterComponent registers a new component type with the given registry.
// This must be called for each component type before it can be spawned.
func RegisterComponent[T any](r *ComponentRegistry) {
	t := reflect.TypeFor[T]()
	r.factories[t] = func(id uint32) iPool {
		return newPool[T](id)
	}
}

// getFactory returns the factory function for a given component type.
// Returns nil if the type is not registered.
func (r *ComponentRegistry) getFactory(t reflect.Type) func(id uint32) iPool {
	return r.factories[t]
}
