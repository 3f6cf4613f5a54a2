package rtree

import "sync/atomic"

// rc is "additional references beyond the unique owner": 0 means sole
// owner, k means k+1 owners share the node. rcLoad, rcFetchAdd and
// rcFetchSub are the Go equivalents of the C core's rc_load/rc_fetch_add/
// rc_fetch_sub, preserving the exact convention node_copy/node_free depend
// on (see DESIGN.md Open Question decisions, item 2).

func rcLoad[N number, T any](n *node[N, T], relaxed bool) int32 {
	if relaxed {
		// Single-reader hint: the caller that observes rc == 0 here is
		// the only one who can ever mutate this node, so a plain load
		// is sufficient when the holder guarantees no concurrent
		// sharing.
		return n.rc
	}
	return atomic.LoadInt32(&n.rc)
}

func rcFetchAdd[N number, T any](n *node[N, T], delta int32) int32 {
	return atomic.AddInt32(&n.rc, delta) - delta
}

func rcFetchSub[N number, T any](n *node[N, T], delta int32) int32 {
	return atomic.AddInt32(&n.rc, -delta) + delta
}

// copyNode allocates a private copy of n: a fresh node with rc reset to 0,
// rects and payload bit-copied, and (for a branch) every referenced child's
// rc bumped by one since the copy now also references them.
func (tr *Tree[N, T]) copyNode(n *node[N, T]) (*node[N, T], bool) {
	n2, ok := tr.newNode(n.kind)
	if !ok {
		return nil, false
	}
	*n2 = *n
	n2.rc = 0
	if n2.kind == leaf {
		copy(n2.items()[:n2.count], n.items()[:n.count])
	} else {
		copy(n2.children()[:n2.count], n.children()[:n.count])
		children := n2.children()
		for i := 0; i < int(n2.count); i++ {
			rcFetchAdd(children[i], 1)
		}
	}
	return n2, true
}

// cowLoad is the COW guard: before any mutation of a node reachable
// through *cn, replace it with a private copy if another owner holds a
// reference. A copy failure (simulated OOM from a bounded Allocator)
// aborts without touching *cn.
func (tr *Tree[N, T]) cowLoad(cn **node[N, T]) (*node[N, T], bool) {
	if rcLoad(*cn, tr.relaxed) > 0 {
		n2, ok := tr.copyNode(*cn)
		if !ok {
			return nil, false
		}
		rcFetchSub(*cn, 1)
		*cn = n2
	}
	return *cn, true
}

// freeNode decrements n's refcount; only when the pre-decrement value was
// 0 (no other owner) does it recursively free a branch's children and
// release n's own storage.
func (tr *Tree[N, T]) freeNode(n *node[N, T]) {
	if rcFetchSub(n, 1) > 0 {
		return
	}
	if n.kind == branch {
		children := n.children()
		for i := 0; i < int(n.count); i++ {
			tr.freeNode(children[i])
		}
	}
	tr.alloc.Release(n)
}
