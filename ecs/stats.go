package ecs

import "sort"

// StorageStats is a point-in-time summary of a Storage.
type StorageStats struct {
	PoolCount        int
	TotalEntityCount int
	SingletonCount   int
	PoolBreakdown    []PoolStats
	SingletonTypes   []string
}

// PoolStats describes a single component pool.
type PoolStats struct {
	ID          uint32
	Component   string
	EntityCount int
}

// CollectStats walks every pool and singleton.
func (s *Storage) CollectStats() *StorageStats {
	stats := &StorageStats{
		PoolCount:      len(s.poolsById),
		SingletonCount: len(s.singletons),
		PoolBreakdown:  make([]PoolStats, 0, len(s.poolsById)),
		SingletonTypes: make([]string, 0, len(s.singletons)),
	}

	for i, pool := range s.poolsById {
		count := pool.len()
		stats.TotalEntityCount += count
		stats.PoolBreakdown = append(stats.PoolBreakdown, PoolStats{
			ID:          uint32(i + 1),
			Component:   pool.componentType().String(),
			EntityCount: count,
		})
	}

	for t := range s.singletons {
		stats.SingletonTypes = append(stats.SingletonTypes, t.String())
	}
	sort.Strings(stats.SingletonTypes)

	return stats
}
