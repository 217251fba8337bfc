package ecs

import "iter"

// Query gives a system typed access to every live entity of component T.
type Query[T any] struct {
	pool *Pool[T]
}

// NewQuery creates a Query bound to storage.
func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.Init(storage)
	return q
}

// Init binds the Query to a storage.
// Called by the Scheduler during system registration.
func (q *Query[T]) Init(storage *Storage) {
	q.pool = PoolOf[T](storage)
}

// Iter returns an iterator over entity IDs and component pointers in
// spawn order. Panics if the Query was never bound.
func (q *Query[T]) Iter() iter.Seq2[EntityId, *T] {
	if q.pool == nil {
		panic("Query.Iter() called before Query.Init()")
	}
	return q.pool.Iter()
}

// Values returns an iterator over component pointers only.
func (q *Query[T]) Values() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for _, value := range q.Iter() {
			if !yield(value) {
				return
			}
		}
	}
}

// Len returns the number of live entities matched by the query.
func (q *Query[T]) Len() int {
	if q.pool == nil {
		return 0
	}
	return q.pool.Len()
}
