package rtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestTree(t *testing.T, opts ...Option[float64, int]) *Tree[float64, int] {
	t.Helper()
	tr, err := New[float64, int](2, opts...)
	require.NoError(t, err)
	return tr
}

func TestNew_RejectsOutOfRangeDims(t *testing.T) {
	_, err := New[float64, int](0)
	require.Error(t, err)
	_, err = New[float64, int](MaxDims + 1)
	require.Error(t, err)
	tr, err := New[float64, int](3)
	require.NoError(t, err)
	require.Equal(t, 3, tr.Dims())
}

func TestEmptyTree(t *testing.T) {
	tr := newTestTree(t)
	require.Equal(t, 0, tr.Count())
	require.Equal(t, 0, tr.Height())

	calls := 0
	tr.Scan(func(min, max []float64, item int) bool { calls++; return true })
	require.Equal(t, 0, calls)

	tr.Search([]float64{0, 0}, []float64{10, 10}, func(min, max []float64, item int) bool {
		calls++
		return true
	})
	require.Equal(t, 0, calls)

	ok := tr.Nearest([]float64{0, 0}, func(item int, distance float64) bool {
		calls++
		return true
	})
	require.True(t, ok)
	require.Equal(t, 0, calls)

	min, max := tr.Bounds()
	require.Equal(t, []float64{0, 0}, min)
	require.Equal(t, []float64{0, 0}, max)
}

func TestSingleItem(t *testing.T) {
	tr := newTestTree(t)
	require.True(t, tr.Insert([]float64{5, 5}, nil, 42))
	require.Equal(t, 1, tr.Count())

	var found []int
	tr.Search([]float64{0, 0}, []float64{10, 10}, func(min, max []float64, item int) bool {
		found = append(found, item)
		return true
	})
	require.Equal(t, []int{42}, found)

	var nearestItem int
	var nearestDist float64
	tr.Nearest([]float64{8, 9}, func(item int, distance float64) bool {
		nearestItem = item
		nearestDist = distance
		return false
	})
	require.Equal(t, 42, nearestItem)
	require.Equal(t, (8.0-5.0)*(8.0-5.0)+(9.0-5.0)*(9.0-5.0), nearestDist)
}

func TestMaxCapacitySplit(t *testing.T) {
	tr := newTestTree(t)
	for i := 0; i < DefaultMaxItems+1; i++ {
		x := float64(i)
		require.True(t, tr.Insert([]float64{x, x}, nil, i))
	}
	require.Equal(t, 2, tr.Height())
	require.True(t, tr.root.kind == branch)
	children := tr.root.children()
	for i := 0; i < int(tr.root.count); i++ {
		require.GreaterOrEqual(t, int(children[i].count), tr.minItems)
		require.LessOrEqual(t, int(children[i].count), tr.maxItems)
	}
}

func TestUniformGridSearch(t *testing.T) {
	tr := newTestTree(t)
	for x := 0; x < 32; x++ {
		for y := 0; y < 32; y++ {
			tr.Insert([]float64{float64(x), float64(y)}, nil, x*1000+y)
		}
	}
	require.Equal(t, 1024, tr.Count())

	count := 0
	tr.Search([]float64{0, 0}, []float64{4, 4}, func(min, max []float64, item int) bool {
		count++
		return true
	})
	require.Equal(t, 25, count) // 5x5 grid: x,y in [0,4]
	require.Equal(t, 1024, tr.Count())
}

func TestInsertDeleteRoundTrip(t *testing.T) {
	tr := newTestTree(t)
	tr.Insert([]float64{1, 1}, []float64{2, 2}, 7)
	require.Equal(t, 1, tr.Count())

	removed := tr.Delete([]float64{1, 1}, []float64{2, 2}, 7)
	require.Equal(t, 1, removed)
	require.Equal(t, 0, tr.Count())

	count := 0
	tr.Scan(func(min, max []float64, item int) bool { count++; return true })
	require.Equal(t, 0, count)
}

func TestDeleteNotFoundReturnsZero(t *testing.T) {
	tr := newTestTree(t)
	tr.Insert([]float64{1, 1}, nil, 1)
	require.Equal(t, 0, tr.Delete([]float64{9, 9}, nil, 1))
	require.Equal(t, 0, tr.Delete([]float64{1, 1}, nil, 2))
}

func TestDuplicateRectDeleteOneByComparator(t *testing.T) {
	tr := newTestTree(t)
	for i := 0; i < 10; i++ {
		tr.Insert([]float64{0, 0}, []float64{1, 1}, i)
	}
	removed := tr.DeleteWithComparator([]float64{0, 0}, []float64{1, 1}, 0,
		func(a, b int) bool { return a == b })
	require.Equal(t, 1, removed)

	var items []int
	tr.Scan(func(min, max []float64, item int) bool {
		items = append(items, item)
		return true
	})
	require.Len(t, items, 9)
}

func TestKNNOrderedByDistance(t *testing.T) {
	tr := newTestTree(t)
	for i := 0; i < 10; i++ {
		tr.Insert([]float64{float64(i), 0}, nil, i)
	}
	var got []int
	var dists []float64
	tr.Nearest([]float64{-1, 0}, func(item int, distance float64) bool {
		got = append(got, item)
		dists = append(dists, distance)
		return len(got) < 3
	})
	require.Equal(t, []int{0, 1, 2}, got)
	require.Equal(t, []float64{1, 4, 9}, dists)
}

func TestCloneIsolatesMutation(t *testing.T) {
	tr := newTestTree(t)
	for i := 0; i < 500; i++ {
		tr.Insert([]float64{float64(i), float64(i)}, nil, i)
	}
	clone := tr.Clone()
	for i := 0; i < 100; i++ {
		removed := clone.Delete([]float64{float64(i), float64(i)}, nil, i)
		require.Equal(t, 1, removed)
	}
	require.Equal(t, 500, tr.Count())
	require.Equal(t, 400, clone.Count())

	count := 0
	tr.Scan(func(min, max []float64, item int) bool { count++; return true })
	require.Equal(t, 500, count)
}

func TestCloneThenFreeLeavesOriginalIntact(t *testing.T) {
	tr := newTestTree(t)
	for i := 0; i < 100; i++ {
		tr.Insert([]float64{float64(i), float64(i)}, nil, i)
	}
	clone := tr.Clone()
	for i := 100; i < 200; i++ {
		clone.Insert([]float64{float64(i), float64(i)}, nil, i)
	}
	clone.Close()
	require.Equal(t, 100, tr.Count())

	count := 0
	tr.Scan(func(min, max []float64, item int) bool { count++; return true })
	require.Equal(t, 100, count)
}
