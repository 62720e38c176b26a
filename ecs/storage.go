package ecs

// entityStore tracks slot generations. Freed ids are only handed back after
// release, so a slot is never reused inside the tick that killed it.
type entityStore struct {
	gen   []generation
	alive []bool
	free  []entityID
}

func (s *entityStore) create() Entity {
	var id entityID
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.gen = append(s.gen, 0)
		s.alive = append(s.alive, false)
		id = entityID(len(s.gen))
	}
	s.alive[id-1] = true
	return makeEntity(id, s.gen[id-1])
}

// kill marks e dead. It reports false for stale or unknown handles.
func (s *entityStore) kill(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	s.alive[e.id()-1] = false
	return true
}

// release bumps the generation of a dead slot and makes it reusable.
func (s *entityStore) release(e Entity) {
	id := e.id()
	if id == 0 || int(id) > len(s.gen) || s.alive[id-1] || s.gen[id-1] != e.generation() {
		return
	}
	s.gen[id-1]++
	s.free = append(s.free, id)
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.gen) {
		return false
	}
	return s.alive[id-1] && s.gen[id-1] == e.generation()
}
