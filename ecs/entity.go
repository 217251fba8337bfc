package ecs

// EntityId encodes the owning pool (upper 32 bits) and a per-pool spawn
// sequence number (lower 32 bits). The zero EntityId is never issued.
type EntityId uint64

// NewEntityId creates an EntityId from a pool ID and sequence number
func NewEntityId(poolId uint32, seq uint32) EntityId {
	return EntityId(uint64(poolId)<<32 | uint64(seq))
}

// PoolId extracts the pool ID from the entity ID
func (e EntityId) PoolId() uint32 {
	return uint32(e >> 32)
}

// Seq extracts the spawn sequence number from the entity ID
func (e EntityId) Seq() uint32 {
	return uint32(e & 0xFFFFFFFF)
}
