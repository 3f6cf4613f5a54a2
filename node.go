package rtree

import "unsafe"

// SAFETY: node[N, T] is the common header shared by leafNode[N, T] and
// branchNode[N, T]. A *node[N, T] is the only pointer type ever passed
// around; items() and children() check node.kind and reinterpret the
// pointer to reach the tail array that the allocator actually built. This
// keeps one node to one allocation instead of boxing items/children behind
// an interface{} field, the same trick the teacher port
// (buivuanh/rtree, rtreeg2.go) uses for its fused leaf/branch node.
type node[N number, T any] struct {
	rc    int32
	kind  kind
	count int16
	rects [arrayCap]Rect[N]
}

type leafNode[N number, T any] struct {
	node[N, T]
	items [arrayCap]T
}

type branchNode[N number, T any] struct {
	node[N, T]
	children [arrayCap]*node[N, T]
}

func (n *node[N, T]) isLeaf() bool {
	return n.kind == leaf
}

func (n *node[N, T]) items() []T {
	if n.kind != leaf {
		return nil
	}
	return (*leafNode[N, T])(unsafe.Pointer(n)).items[:]
}

func (n *node[N, T]) children() []*node[N, T] {
	if n.kind != branch {
		return nil
	}
	return (*branchNode[N, T])(unsafe.Pointer(n)).children[:]
}

// swap exchanges rects[i] and rects[j] together with whichever payload
// array is live for this node's kind.
func (n *node[N, T]) swap(i, j int) {
	n.rects[i], n.rects[j] = n.rects[j], n.rects[i]
	if n.kind == leaf {
		items := n.items()
		items[i], items[j] = items[j], items[i]
	} else {
		children := n.children()
		children[i], children[j] = children[j], children[i]
	}
}

// moveRectAtIndexInto moves the (rect, payload) pair at index from "from"
// onto the end of "into", backfilling the vacated slot with from's last
// entry. O(1), used by the split's edge-snap redistribution.
func moveRectAtIndexInto[N number, T any](from *node[N, T], index int, into *node[N, T]) {
	last := int(from.count) - 1
	into.rects[into.count] = from.rects[index]
	from.rects[index] = from.rects[last]
	if from.kind == leaf {
		fromItems, intoItems := from.items(), into.items()
		intoItems[into.count] = fromItems[index]
		fromItems[index] = fromItems[last]
		var zero T
		fromItems[last] = zero
	} else {
		fromChildren, intoChildren := from.children(), into.children()
		intoChildren[into.count] = fromChildren[index]
		fromChildren[index] = fromChildren[last]
		fromChildren[last] = nil
	}
	from.count--
	into.count++
}

// rectCalc returns the tight union of a node's count rects. The node must
// hold at least one entry.
func rectCalc[N number, T any](n *node[N, T], dims int) Rect[N] {
	r := n.rects[0]
	for i := 1; i < int(n.count); i++ {
		rectExpand(&r, &n.rects[i], dims)
	}
	return r
}

// qsort is an in-place quicksort over a node's parallel arrays, keyed by
// rects[i].{Min|Max}[axis]. Used by sortByAxis during split rebalancing.
func (n *node[N, T]) qsort(s, e, axis int, rev, useMax bool) {
	count := e - s
	if count < 2 {
		return
	}
	left, right := 0, count-1
	pivot := count / 2
	n.swap(s+pivot, s+right)
	key := func(i int) N {
		if useMax {
			return n.rects[i].Max[axis]
		}
		return n.rects[i].Min[axis]
	}
	pivotKey := key(s + right)
	for i := 0; i < count; i++ {
		k := key(s + i)
		if (!rev && k < pivotKey) || (rev && pivotKey < k) {
			n.swap(s+i, s+left)
			left++
		}
	}
	n.swap(s+left, s+right)
	n.qsort(s, s+left, axis, rev, useMax)
	n.qsort(s+left+1, e, axis, rev, useMax)
}

func sortByAxis[N number, T any](n *node[N, T], axis int, rev, useMax bool) {
	n.qsort(0, int(n.count), axis, rev, useMax)
}
