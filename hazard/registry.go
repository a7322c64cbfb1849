package hazard

import (
	"sync"

	"github.com/irregularpack/cde/geom"
	"github.com/irregularpack/cde/quadtree"
)

// Hazard is a read-only snapshot of one registered hazard, handed out
// by Registry.Lookup and Registry.IterActive.
type Hazard struct {
	Key    quadtree.HazardKey
	Scope  string
	Mode   quadtree.Mode
	Shape  *geom.Shape
	Active bool
}

type slot struct {
	generation uint32
	occupied   bool
	active     bool
	scope      string
	mode       quadtree.Mode
	shape      *geom.Shape
}

// Registry is a generational slot map over hazards, binding active
// ones into a quadtree.Tree (spec.md §4.F). A freed slot is reused only
// after its generation counter is bumped, so a HazardKey minted before
// a Deregister can never alias whatever is registered into that slot
// afterward.
type Registry struct {
	mu    sync.RWMutex
	tree  *quadtree.Tree
	slots []slot
	free  []uint32
}

// NewRegistry returns a registry that binds active hazards into tree.
func NewRegistry(tree *quadtree.Tree) *Registry {
	return &Registry{tree: tree}
}

// Register allocates a new, initially inactive hazard slot and returns
// its key. Call SetActive(key, true) to bind it into the tree.
func (r *Registry) Register(shape *geom.Shape, mode quadtree.Mode, scope string) quadtree.HazardKey {
	r.mu.Lock()
	defer r.mu.Unlock()

	var idx uint32
	if n := len(r.free); n > 0 {
		idx = r.free[n-1]
		r.free = r.free[:n-1]
		r.slots[idx].generation++
	} else {
		idx = uint32(len(r.slots))
		r.slots = append(r.slots, slot{generation: 1})
	}

	s := &r.slots[idx]
	s.occupied = true
	s.active = false
	s.scope = scope
	s.mode = mode
	s.shape = shape
	return quadtree.NewHazardKey(idx, s.generation)
}

// SetActive binds (true) or unbinds (false) key's hazard into the
// tree. It is a no-op if the hazard is already in the requested state.
func (r *Registry) SetActive(key quadtree.HazardKey, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := r.checkKey(key)
	if err != nil {
		return err
	}
	if active == s.active {
		return nil
	}
	if active {
		r.tree.Insert(key, s.shape, s.mode, s.scope)
	} else {
		r.tree.Remove(key)
	}
	s.active = active
	return nil
}

// Deregister frees key's slot, unbinding it from the tree first if it
// was active. The slot's generation is preserved (and will be bumped
// again on reuse), so stale keys are detected rather than aliased.
func (r *Registry) Deregister(key quadtree.HazardKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := r.checkKey(key)
	if err != nil {
		return err
	}
	if s.active {
		r.tree.Remove(key)
	}
	idx := key.Index()
	r.slots[idx] = slot{generation: s.generation}
	r.free = append(r.free, idx)
	return nil
}

// Lookup returns the current state of key's hazard.
func (r *Registry) Lookup(key quadtree.HazardKey) (Hazard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, err := r.checkKey(key)
	if err != nil {
		return Hazard{}, err
	}
	return Hazard{Key: key, Scope: s.scope, Mode: s.mode, Shape: s.shape, Active: s.active}, nil
}

// IterActive calls fn for every active hazard in ascending slot-index
// order, stopping early if fn returns false.
func (r *Registry) IterActive(fn func(Hazard) bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.slots {
		s := &r.slots[i]
		if !s.occupied || !s.active {
			continue
		}
		key := quadtree.NewHazardKey(uint32(i), s.generation)
		if !fn(Hazard{Key: key, Scope: s.scope, Mode: s.mode, Shape: s.shape, Active: true}) {
			return
		}
	}
}

func (r *Registry) checkKey(key quadtree.HazardKey) (*slot, error) {
	idx := key.Index()
	if int(idx) >= len(r.slots) {
		return nil, ErrStaleKey
	}
	s := &r.slots[idx]
	if !s.occupied || s.generation != key.Generation() {
		return nil, ErrStaleKey
	}
	return s, nil
}
