package rtree

// splitNode splits a full node n (whose exact bounding rect is r) into n
// (shrunk) and a freshly allocated sibling, using the largest-axis
// edge-snap heuristic: entries closer to the axis's max edge go right.
// If the snap left one side under MinItems, it is topped back up from the
// other side: n takes the sibling's entries with the lowest Min on the
// axis, or the sibling takes n's entries with the lowest Max on the axis.
func (tr *Tree[N, T]) splitNode(r *Rect[N], n *node[N, T]) (*node[N, T], bool) {
	axis := rectLargestAxis(r, tr.dims)
	right, ok := tr.newNode(n.kind)
	if !ok {
		return nil, false
	}
	for i := 0; i < int(n.count); i++ {
		minDist := n.rects[i].Min[axis] - r.Min[axis]
		maxDist := r.Max[axis] - n.rects[i].Max[axis]
		if maxDist < minDist {
			moveRectAtIndexInto(n, i, right)
			i--
		}
	}
	if int(n.count) < tr.minItems {
		// reverse sort by min axis, then pull entries back from the tail
		sortByAxis(right, axis, true, false)
		for int(n.count) < tr.minItems {
			moveRectAtIndexInto(right, int(right.count)-1, n)
		}
	} else if int(right.count) < tr.minItems {
		// reverse sort by max axis, then push entries over from the tail
		sortByAxis(n, axis, true, true)
		for int(right.count) < tr.minItems {
			moveRectAtIndexInto(n, int(n.count)-1, right)
		}
	}
	return right, true
}
