package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type thing struct {
	id      int
	alive   bool
	payload int
	resets  int
	created bool
}

func (t *thing) Reset() {
	t.alive = false
	t.payload = 0
	t.resets++
}

func newThings(max int) *Pool[thing, *thing] {
	n := 0
	return New[thing](max, func(t *thing) {
		n++
		t.id = n
		t.created = true
	})
}

func TestObtainReleaseDoesNotGrow(t *testing.T) {
	p := newThings(8)
	for i := 0; i < 100; i++ {
		h, ok := p.Obtain()
		require.True(t, ok)
		p.Get(h).alive = true
		require.True(t, p.Release(h))
	}
	assert.Equal(t, 1, p.CreatedCount())
	assert.Zero(t, p.ActiveCount())
	assert.Equal(t, 1, p.FreeCount())
}

func TestFactoryRunsOncePerSlot(t *testing.T) {
	p := newThings(3)
	a, _ := p.Obtain()
	b, _ := p.Obtain()
	assert.True(t, p.Get(a).created)
	assert.NotEqual(t, p.Get(a).id, p.Get(b).id)

	p.Release(a)
	c, ok := p.Obtain()
	require.True(t, ok)
	assert.Equal(t, a, c, "free slot is reused before a new one is created")
	assert.Equal(t, 2, p.CreatedCount())
}

func TestExhaustionFailsSoftly(t *testing.T) {
	p := newThings(2)
	_, ok1 := p.Obtain()
	_, ok2 := p.Obtain()
	h, ok3 := p.Obtain()

	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.False(t, ok3)
	assert.Equal(t, NoHandle, h)
	assert.Equal(t, 2, p.ActiveCount())
}

func TestZeroCapacityPool(t *testing.T) {
	p := newThings(0)
	_, ok := p.Obtain()
	assert.False(t, ok)
}

func TestDoubleReleaseIsNoop(t *testing.T) {
	p := newThings(4)
	a, _ := p.Obtain()
	b, _ := p.Obtain()

	require.True(t, p.Release(a))
	assert.False(t, p.Release(a))
	assert.False(t, p.Release(NoHandle))
	assert.False(t, p.Release(Handle(99)))

	assert.Equal(t, 1, p.FreeCount())
	assert.Equal(t, []Handle{b}, p.Active())
	assert.Equal(t, 1, p.Get(a).resets, "reset runs once")

	// The free list must not hand the same slot out twice.
	x, _ := p.Obtain()
	y, _ := p.Obtain()
	assert.NotEqual(t, x, y)
}

func TestReleaseResetsState(t *testing.T) {
	p := newThings(1)
	h, _ := p.Obtain()
	obj := p.Get(h)
	obj.alive = true
	obj.payload = 42

	p.Release(h)
	assert.False(t, obj.alive)
	assert.Zero(t, obj.payload)
	assert.False(t, p.IsActive(h))
}

func TestBackwardIterationWhileReleasing(t *testing.T) {
	p := newThings(6)
	for i := 0; i < 6; i++ {
		h, _ := p.Obtain()
		p.Get(h).payload = i
	}

	active := p.Active()
	for i := len(active) - 1; i >= 0; i-- {
		h := active[i]
		if p.Get(h).payload%2 == 0 {
			p.Release(h)
		}
		active = p.Active()
	}

	require.Equal(t, 3, p.ActiveCount())
	for _, h := range p.Active() {
		assert.True(t, p.IsActive(h))
		assert.Equal(t, 1, p.Get(h).payload%2)
	}
}

func TestDisposeAllReleasesBeforeDisposing(t *testing.T) {
	p := newThings(4)
	for i := 0; i < 3; i++ {
		h, _ := p.Obtain()
		p.Get(h).alive = true
	}
	h, _ := p.Obtain()
	p.Release(h)

	disposed := 0
	p.DisposeAll(func(t2 *thing) {
		disposed++
		assert.False(t, t2.alive, "disposed objects went through Release first")
	})

	assert.Equal(t, 4, disposed)
	assert.Zero(t, p.ActiveCount())
	assert.Zero(t, p.CreatedCount())
	assert.Zero(t, p.FreeCount())

	_, ok := p.Obtain()
	assert.True(t, ok, "pool is reusable after teardown")
}

func TestGetUnknownHandle(t *testing.T) {
	p := newThings(2)
	assert.Nil(t, p.Get(0))
	assert.Nil(t, p.Get(NoHandle))
}

func TestSteadyStateDoesNotAllocate(t *testing.T) {
	p := newThings(16)
	hs := make([]Handle, 0, 16)
	for i := 0; i < 16; i++ {
		h, _ := p.Obtain()
		hs = append(hs, h)
	}
	for _, h := range hs {
		p.Release(h)
	}

	allocs := testing.AllocsPerRun(50, func() {
		h, _ := p.Obtain()
		p.Release(h)
	})
	assert.Zero(t, allocs)
}
