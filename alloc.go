package rtree

import "unsafe"

// Allocator is the node allocation hook the spec's handle/config surface
// names as "allocator injection" (the C core's rtree_new_with_allocator,
// tr->malloc/tr->free). Go's make/new cannot fail observably, so the
// default Allocator never reports failure; a capacity-bounded Allocator
// (see alloc_test.go) is how this port exercises the OOM contract end to
// end in a garbage-collected language.
type Allocator[N number, T any] interface {
	NewLeaf() (*node[N, T], bool)
	NewBranch() (*node[N, T], bool)
	Release(n *node[N, T])
}

type defaultAllocator[N number, T any] struct{}

func (defaultAllocator[N, T]) NewLeaf() (*node[N, T], bool) {
	n := &leafNode[N, T]{node: node[N, T]{kind: leaf}}
	return (*node[N, T])(unsafe.Pointer(n)), true
}

func (defaultAllocator[N, T]) NewBranch() (*node[N, T], bool) {
	n := &branchNode[N, T]{node: node[N, T]{kind: branch}}
	return (*node[N, T])(unsafe.Pointer(n)), true
}

func (defaultAllocator[N, T]) Release(*node[N, T]) {}

func (tr *Tree[N, T]) newNode(k kind) (*node[N, T], bool) {
	if k == leaf {
		return tr.alloc.NewLeaf()
	}
	return tr.alloc.NewBranch()
}
