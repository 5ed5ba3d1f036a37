package pool_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tchecker-go/tchecker/pool"
)

type rec struct {
	pool.Handle
	value int
	resetCalls int
}

func (r *rec) Reset() {
	r.value = 0
	r.resetCalls++
}

func TestAllocGrowsSlabOnExhaustion(t *testing.T) {
	p := pool.New(2, func() *rec { return &rec{} })
	a := p.Alloc()
	b := p.Alloc()
	require.NotSame(t, a, b)
	require.Equal(t, int32(1), a.RefCount())
	require.Equal(t, int32(1), b.RefCount())

	// free-list is empty, so this Alloc must grow a fresh slab rather
	// than panic or block.
	c := p.Alloc()
	require.NotNil(t, c)
}

func TestReleaseQueuesForGCAndAllocReusesSlot(t *testing.T) {
	p := pool.New(4, func() *rec { return &rec{} })
	p.Start()
	defer p.Stop()

	r := p.Alloc()
	r.value = 42
	require.NoError(t, p.Release(r))

	require.Eventually(t, func() bool {
		return p.Len() > 0
	}, time.Second, time.Millisecond)

	reused := p.Alloc()
	require.Equal(t, 0, reused.value, "reclaimed record must be Reset before reuse")
}

func TestReleaseBelowZeroErrors(t *testing.T) {
	p := pool.New(1, func() *rec { return &rec{} })
	r := p.Alloc()
	require.NoError(t, p.Release(r))
	require.ErrorIs(t, p.Release(r), pool.ErrNegativeRefCount)
}

func TestStopDrainsPendingReleases(t *testing.T) {
	p := pool.New(1, func() *rec { return &rec{} })
	p.Start()
	r := p.Alloc()
	require.NoError(t, p.Release(r))
	p.Stop()
	require.Positive(t, p.Len())
}

func TestFreeAllClearsFreeList(t *testing.T) {
	p := pool.New(1, func() *rec { return &rec{} })
	p.Start()
	r := p.Alloc()
	require.NoError(t, p.Release(r))
	p.Stop()
	require.Positive(t, p.Len())
	p.FreeAll()
	require.Equal(t, 0, p.Len())
}
