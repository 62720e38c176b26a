package ecs

import "strconv"

// Entity is a generation-checked handle. The low 32 bits hold the slot id,
// the high 32 bits the slot generation.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

// String formats e as "id.gen", e.g. "12.3".
func (e Entity) String() string {
	return strconv.FormatUint(uint64(e.id()), 10) + "." + strconv.FormatUint(uint64(e.generation()), 10)
}

// Valid reports whether e was ever issued by a world.
func (e Entity) Valid() bool {
	return e.id() > 0
}

// Raw returns the handle as stored in components.
func (e Entity) Raw() uint64 {
	return uint64(e)
}

// FromRaw converts a component-stored handle back.
func FromRaw(v uint64) Entity {
	return Entity(v)
}
