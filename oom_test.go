package rtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestInsertFailsWhenAllocatorExhausted exercises the OOM contract in §7:
// once the bounded allocator runs out, Insert must return false rather than
// silently dropping the item or panicking, and the tree must remain
// internally consistent (count unaffected by the failed attempt).
func TestInsertFailsWhenAllocatorExhausted(t *testing.T) {
	alloc := &boundedAllocator{limit: 1}
	tr, err := New[float64, int](2, WithAllocator[float64, int](alloc))
	require.NoError(t, err)

	require.True(t, tr.Insert([]float64{0, 0}, nil, 0))
	require.Equal(t, 1, tr.Count())

	// The allocator has no capacity left for a split, but a single-leaf
	// root has room for more items well before it needs to split, so more
	// inserts succeed until the leaf is full and a branch/second leaf is
	// needed.
	for i := 1; i < DefaultMaxItems; i++ {
		require.True(t, tr.Insert([]float64{float64(i), 0}, nil, i))
	}
	require.Equal(t, DefaultMaxItems, tr.Count())

	// The next insert forces a split, which needs a second node the
	// exhausted allocator cannot provide.
	ok := tr.Insert([]float64{float64(DefaultMaxItems), 0}, nil, DefaultMaxItems)
	require.False(t, ok)
	require.Equal(t, DefaultMaxItems, tr.Count(), "failed insert must not change the item count")
}

func TestAllocatorReleaseCalledOnClose(t *testing.T) {
	alloc := &boundedAllocator{limit: 100}
	tr, err := New[float64, int](2, WithAllocator[float64, int](alloc))
	require.NoError(t, err)
	tr.Insert([]float64{0, 0}, nil, 1)
	before := alloc.allocated
	require.Equal(t, 1, before)
	tr.Close()
	require.Equal(t, 0, alloc.allocated)
}
