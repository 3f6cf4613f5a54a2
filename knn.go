package rtree

// ExactDistanceFunc computes a caller-defined exact distance from point to
// the item whose bounding rect is [min, max], used to refine the
// bounding-box lower bound during k-NN refinement (see WithExactDistance).
type ExactDistanceFunc[N number, T any] func(point, min, max []N, item T) N

// distanceBB is the squared distance from point to the nearest point of
// rect, zero when point falls inside rect on every axis.
func distanceBB[N number](point []N, r *Rect[N], dims int) N {
	var dist2 N
	for i := 0; i < dims; i++ {
		if point[i] < r.Min[i] {
			d := r.Min[i] - point[i]
			dist2 += d * d
		} else if point[i] > r.Max[i] {
			d := point[i] - r.Max[i]
			dist2 += d * d
		}
	}
	return dist2
}

func elementKindOf(k kind) elementKind {
	if k == leaf {
		return ekLeaf
	}
	return ekBranch
}

// Nearest performs a best-first traversal from the tree's min-priority
// queue, delivering items to iter in non-decreasing order of the distance
// metric actually used: bounding-box distance, or exact distance when
// WithExactDistance was supplied. iter returning false stops the
// traversal early. Returns false only on allocator/queue-growth failure;
// an empty tree invokes iter zero times and returns true.
//
// The queue is lazily allocated on first use and reset (not reallocated)
// on every subsequent call, matching the C core's reuse of tr->queue —
// except across Clone, where each handle gets its own queue (see
// Tree.Clone): clones share root nodes, never auxiliary search state.
func (tr *Tree[N, T]) Nearest(point []N, iter func(item T, distance N) bool) bool {
	if tr.root == nil {
		return true
	}
	if tr.queue == nil {
		tr.queue = newPriorityQueue[N, T](tr.queueCapacity)
	} else {
		tr.queue.reset()
	}
	q := tr.queue
	if !q.enqueue(element[N, T]{distance: 0, kind: elementKindOf(tr.root.kind), node: tr.root}) {
		return false
	}
	for q.len() > 0 {
		e := q.dequeue()
		switch e.kind {
		case ekItem:
			if !iter(e.item, e.distance) {
				return true
			}
		case ekItemByBB:
			if tr.useExact {
				d := tr.exactDistance(point, e.rect.Min[:tr.dims], e.rect.Max[:tr.dims], e.item)
				if q.len() > 0 && d > q.peek().distance {
					e.distance = d
					e.kind = ekItem
					if !q.enqueue(e) {
						return false
					}
					continue
				}
				e.distance = d
			}
			if !iter(e.item, e.distance) {
				return true
			}
		case ekLeaf:
			leafItems := e.node.items()
			for i := 0; i < int(e.node.count); i++ {
				d := distanceBB(point, &e.node.rects[i], tr.dims)
				ie := element[N, T]{distance: d, kind: ekItemByBB, item: leafItems[i], rect: &e.node.rects[i]}
				if !q.enqueue(ie) {
					return false
				}
			}
		case ekBranch:
			children := e.node.children()
			for i := 0; i < int(e.node.count); i++ {
				d := distanceBB(point, &e.node.rects[i], tr.dims)
				ce := element[N, T]{distance: d, kind: elementKindOf(children[i].kind), node: children[i]}
				if !q.enqueue(ce) {
					return false
				}
			}
		}
	}
	return true
}
