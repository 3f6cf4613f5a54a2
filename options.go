package rtree

import "fmt"

// Option configures a Tree at construction time. The C core exposed these
// as compile-time #define flags (RTREE_MAXITEMS, RTREE_NOPATHHINT,
// RTREE_NOATOMICS, KNN_USE_EXACT_DISTANCE); Go has no preprocessor, so they
// become instantiation-time functional options, the same pattern
// gaissmai/bart and metacubex/bart use for their table constructors.
type Option[N number, T any] func(*Tree[N, T])

// WithMaxItems overrides the per-node capacity (MAXITEMS), default 64. The
// value must be in [1, arrayCap]; out-of-range values are ignored.
func WithMaxItems[N number, T any](n int) Option[N, T] {
	return func(tr *Tree[N, T]) {
		if n > 0 && n <= arrayCap {
			tr.maxItems = n
		}
	}
}

// WithQueueCapacity sets the initial capacity of the k-NN priority queue,
// default 256.
func WithQueueCapacity[N number, T any](n int) Option[N, T] {
	return func(tr *Tree[N, T]) {
		if n > 0 {
			tr.queueCapacity = n
		}
	}
}

// WithoutPathHint disables the per-depth path-hint cache (RTREE_NOPATHHINT).
// The tree remains correct without it; only choose-subtree and delete fall
// back to a linear scan every time.
func WithoutPathHint[N number, T any]() Option[N, T] {
	return func(tr *Tree[N, T]) { tr.noPathHint = true }
}

// WithRelaxedAtomics enables relaxed-ordering refcount loads at
// construction time, equivalent to calling SetRelaxedAtomics(true)
// immediately after New.
func WithRelaxedAtomics[N number, T any]() Option[N, T] {
	return func(tr *Tree[N, T]) { tr.relaxed = true }
}

// WithAllocator injects a custom node Allocator.
func WithAllocator[N number, T any](a Allocator[N, T]) Option[N, T] {
	return func(tr *Tree[N, T]) {
		if a != nil {
			tr.alloc = a
		}
	}
}

// WithEqual overrides the item-equality predicate used by Delete. The
// default is defaultEqual (exact equality via interface comparison); see
// DESIGN.md for why this port does not reproduce the original C wrapper's
// raw-memcmp equality bug.
func WithEqual[N number, T any](eq func(a, b T) bool) Option[N, T] {
	return func(tr *Tree[N, T]) {
		if eq != nil {
			tr.equal = eq
		}
	}
}

// WithExactDistance enables KNN_USE_EXACT_DISTANCE: Nearest will refine an
// item's bounding-box distance with fn before reporting it, re-queuing the
// item if the exact distance is larger than the next queued key.
func WithExactDistance[N number, T any](fn ExactDistanceFunc[N, T]) Option[N, T] {
	return func(tr *Tree[N, T]) {
		tr.exactDistance = fn
		tr.useExact = fn != nil
	}
}

// New constructs an empty Tree over the given number of dimensions
// (1..MaxDims).
func New[N number, T any](dims int, opts ...Option[N, T]) (*Tree[N, T], error) {
	if dims < 1 || dims > MaxDims {
		return nil, fmt.Errorf("rtree: dims must be in [1, %d], got %d", MaxDims, dims)
	}
	tr := &Tree[N, T]{
		dims:          dims,
		maxItems:      DefaultMaxItems,
		queueCapacity: defaultQueueCapacity,
		equal:         defaultEqual[T],
		alloc:         defaultAllocator[N, T]{},
	}
	for _, opt := range opts {
		opt(tr)
	}
	tr.minItems = tr.maxItems*10/100 + 1
	return tr, nil
}
