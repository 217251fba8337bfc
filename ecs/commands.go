package ecs

// Commands buffers structural changes made while systems run. They are
// applied at the end of the frame, after every system has executed, so a
// system never observes an entity spawned or deleted by the same frame.
type Commands struct {
	spawns  []any
	deletes []EntityId
	defers  []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Spawn queues an entity spawn with the given component.
func (c *Commands) Spawn(component any) {
	c.spawns = append(c.spawns, component)
}

// Delete queues an entity deletion.
func (c *Commands) Delete(entity EntityId) {
	c.deletes = append(c.deletes, entity)
}

// Defer queues a function to run after spawns and deletions are applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Pending returns the number of queued operations.
func (c *Commands) Pending() int {
	return len(c.spawns) + len(c.deletes) + len(c.defers)
}

// Flush applies all queued commands to storage and resets the buffer.
func (c *Commands) Flush(storage *Storage) {
	for _, id := range c.deletes {
		storage.Delete(id)
	}

	for _, component := range c.spawns {
		storage.Spawn(component)
	}

	if len(c.deletes) > 0 {
		storage.Compact()
	}

	for _, fn := range c.defers {
		fn()
	}

	clear(c.spawns)
	c.spawns = c.spawns[:0]
	c.deletes = c.deletes[:0]
	clear(c.defers)
	c.defers = c.defers[:0]
}
