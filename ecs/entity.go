package ecs

// Kind identifies which arena an entity lives in. Kind zero is reserved so
// that EntityId(0) never names a live entity.
type Kind uint32

// EntityId encodes both the kind (upper 32 bits) and the arena slot (lower 32 bits)
type EntityId uint64

// NewEntityId creates an EntityId from a kind and a slot index
func NewEntityId(kind Kind, index uint32) EntityId {
	return EntityId(uint64(kind)<<32 | uint64(index))
}

// Kind extracts the kind from the entity ID
func (e EntityId) Kind() Kind {
	return Kind(e >> 32)
}

// Index extracts the slot index from the entity ID
func (e EntityId) Index() uint32 {
	return uint32(e & 0xFFFFFFFF)
}

// Valid reports whether the id carries a non-reserved kind.
func (e EntityId) Valid() bool {
	return e.Kind() != 0
}
