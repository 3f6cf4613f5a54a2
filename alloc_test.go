package rtree

import "unsafe"

// boundedAllocator fails while `limit` of the nodes it handed out are still
// unreleased (Release gives a slot back), giving the OOM contract in §7
// something real to exercise: Go's own make/new cannot be made to fail on
// demand, so this is the analogue of the C core's malloc returning NULL
// once a fixed number of live allocations is reached.
type boundedAllocator struct {
	limit     int
	allocated int
}

func (a *boundedAllocator) NewLeaf() (*node[float64, int], bool) {
	if a.allocated >= a.limit {
		return nil, false
	}
	a.allocated++
	n := &leafNode[float64, int]{node: node[float64, int]{kind: leaf}}
	return (*node[float64, int])(unsafe.Pointer(n)), true
}

func (a *boundedAllocator) NewBranch() (*node[float64, int], bool) {
	if a.allocated >= a.limit {
		return nil, false
	}
	a.allocated++
	n := &branchNode[float64, int]{node: node[float64, int]{kind: branch}}
	return (*node[float64, int])(unsafe.Pointer(n)), true
}

func (a *boundedAllocator) Release(*node[float64, int]) {
	a.allocated--
}
