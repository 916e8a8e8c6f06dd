// Package pool provides a fixed-capacity arena of reusable objects.
//
// Slots are allocated once, up front, and handed out by index. A slot is
// either free or active, never both, and only the pool ever holds the
// backing storage.
package pool

// Handle identifies a slot in a Pool. It stays valid for the lifetime of the
// pool but only refers to a live object while the slot is active.
type Handle int32

// NoHandle is returned when no slot could be obtained.
const NoHandle Handle = -1

// Resetter is satisfied by *T when T can clear itself for reuse.
type Resetter[T any] interface {
	*T
	Reset()
}

// Pool recycles values of T. Obtain and Release never allocate once the pool
// has been constructed.
type Pool[T any, P Resetter[T]] struct {
	items   []T
	max     int
	factory func(P)

	free   []Handle
	active []Handle
	// slot[h] is h's index in active, or -1 while h is free.
	slot []int32
}

// New builds a pool that will create at most max objects. factory runs once
// per slot, the first time that slot is needed; it may be nil.
func New[T any, P Resetter[T]](max int, factory func(P)) *Pool[T, P] {
	if max < 0 {
		max = 0
	}
	return &Pool[T, P]{
		items:   make([]T, 0, max),
		max:     max,
		factory: factory,
		free:    make([]Handle, 0, max),
		active:  make([]Handle, 0, max),
		slot:    make([]int32, 0, max),
	}
}

// Obtain moves a slot into the active set, creating it if the free list is
// empty and the pool is below capacity. ok is false when the pool is
// exhausted; the caller is expected to skip whatever it was doing.
func (p *Pool[T, P]) Obtain() (h Handle, ok bool) {
	switch {
	case len(p.free) > 0:
		h = p.free[len(p.free)-1]
		p.free = p.free[:len(p.free)-1]
	case len(p.items) < p.max:
		h = Handle(len(p.items))
		p.items = p.items[:len(p.items)+1]
		p.slot = append(p.slot, -1)
		if p.factory != nil {
			p.factory(P(&p.items[h]))
		}
	default:
		return NoHandle, false
	}

	p.slot[h] = int32(len(p.active))
	p.active = append(p.active, h)
	return h, true
}

// Release resets the object behind h and returns its slot to the free list.
// Releasing a free or unknown handle does nothing and reports false.
func (p *Pool[T, P]) Release(h Handle) bool {
	if !p.IsActive(h) {
		return false
	}

	i := p.slot[h]
	last := p.active[len(p.active)-1]
	p.active[i] = last
	p.slot[last] = i
	p.active = p.active[:len(p.active)-1]
	p.slot[h] = -1

	P(&p.items[h]).Reset()
	p.free = append(p.free, h)
	return true
}

// Get returns the object behind h, or nil when h was never created.
// The pointer stays valid for the pool's lifetime.
func (p *Pool[T, P]) Get(h Handle) P {
	if h < 0 || int(h) >= len(p.items) {
		return nil
	}
	return P(&p.items[h])
}

// IsActive reports whether h is currently in play.
func (p *Pool[T, P]) IsActive(h Handle) bool {
	return h >= 0 && int(h) < len(p.slot) && p.slot[h] >= 0
}

// Active returns the handles currently in play. The slice is owned by the
// pool: do not modify it, and iterate it backwards when releasing during the
// loop (Release swaps the last handle into the released position).
func (p *Pool[T, P]) Active() []Handle { return p.active }

func (p *Pool[T, P]) ActiveCount() int  { return len(p.active) }
func (p *Pool[T, P]) CreatedCount() int { return len(p.items) }
func (p *Pool[T, P]) FreeCount() int    { return len(p.free) }
func (p *Pool[T, P]) Max() int          { return p.max }

// DisposeAll releases every active object through the normal Release path
// and then hands every created object to dispose. Afterwards the pool is
// empty and may be refilled.
func (p *Pool[T, P]) DisposeAll(dispose func(P)) {
	for len(p.active) > 0 {
		p.Release(p.active[len(p.active)-1])
	}
	if dispose != nil {
		for i := range p.items {
			dispose(P(&p.items[i]))
		}
	}
	var zero T
	for i := range p.items {
		p.items[i] = zero
	}
	p.items = p.items[:0]
	p.free = p.free[:0]
	p.slot = p.slot[:0]
}
